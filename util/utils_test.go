package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestSanitizeFolderName(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "myserver", "myserver"},
		{"spaces become underscores", "my server", "my_server"},
		{"symbols stripped", "my-server!", "myserver"},
		{"empty falls back", "", "minecraft_server"},
		{"only symbols falls back", "!!!", "minecraft_server"},
		{"padded", "  smp  ", "smp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFolderName(tt.input, "minecraft_server")
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArtifactName(t *testing.T) {
	var tests = []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"mojang server jar", "https://piston-data.mojang.com/v1/objects/8dd1a28015f51b1803213892b50b7b4fc76e594d/server.jar", "server", false},
		{"versioned jar", "https://example.com/files/minecraft_server.1.20.4.jar", "minecraft_server.1.20.4", false},
		{"query string ignored", "https://example.com/server.jar?token=abc", "server", false},
		{"no path", "https://example.com/", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ArtifactName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ArtifactName(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCustomWriterStripsAnsi(t *testing.T) {
	var buf bytes.Buffer
	cw := NewCustomWriter(&buf)

	input := "\x1b[32mINFO\x1b[0m Server installed\n"
	n, err := cw.Write([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	// The count must cover the escape codes too, or an io.MultiWriter wrapping
	// the console and the log file reports a short write.
	if n != len(input) {
		t.Errorf("n = %d, want %d", n, len(input))
	}
	if got := buf.String(); got != "INFO Server installed\n" {
		t.Errorf("got %q", got)
	}
	if strings.Contains(buf.String(), "\x1b") {
		t.Error("escape codes survived the strip")
	}
}
