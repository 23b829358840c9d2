package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseKind(t *testing.T) {
	var tests = []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{"vanilla", "vanilla", KindVanilla, false},
		{"mixed case", "Fabric", KindFabric, false},
		{"padded", " paper ", KindPaper, false},
		{"carpet", "carpet112", KindCarpet112, false},
		{"unknown", "spigot", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// A malformed request must terminate the run in Failed before the loader
// ever resolves its index; the orchestrator here has no reachable network.
func TestOrchestratorRejectsInvalidInput(t *testing.T) {
	orch := NewOrchestrator(t.TempDir(), Options{})

	_, err := orch.Install(KindVanilla, "not a version")
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("got error %v, want *InvalidInputError", err)
	}
	if orch.State() != StateFailed {
		t.Errorf("state = %v, want %v", orch.State(), StateFailed)
	}
}

func TestOrchestratorRejectsOldVanilla(t *testing.T) {
	orch := NewOrchestrator(t.TempDir(), Options{})

	_, err := orch.Install(KindVanilla, "1.1")
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("got error %v, want *InvalidInputError", err)
	}
	if !strings.Contains(err.Error(), MinVanillaVersion) {
		t.Errorf("error %q does not mention the supported floor", err.Error())
	}
}

func TestOrchestratorUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unrecognized kind")
		}
	}()
	orch := NewOrchestrator(t.TempDir(), Options{})
	_, _ = orch.Install(Kind(42), "")
}

func TestFindSingleZip(t *testing.T) {
	var tests = []struct {
		name    string
		files   []string
		want    string
		wantErr bool
	}{
		{"one zip", []string{"Carpet_v19.zip"}, "Carpet_v19.zip", false},
		{"zip among others", []string{"Carpet_v19.zip", "install.log"}, "Carpet_v19.zip", false},
		{"no zip", []string{"install.log"}, "", true},
		{"two zips", []string{"a.zip", "b.zip"}, "", true},
		{"empty dir", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0666); err != nil {
					t.Fatal(err)
				}
			}
			got, err := findSingleZip(dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("findSingleZip error = %v, wantErr %t", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
