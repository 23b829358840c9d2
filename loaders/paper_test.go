package loaders

import (
	"errors"
	"testing"

	"github.com/nowuX/ams/meta"
)

func testPaperProject() meta.PaperProject {
	return meta.PaperProject{
		ProjectID: "paper",
		Versions:  []string{"1.19.4", "1.20.1", "1.20.4"},
	}
}

func TestPaperSelectVersion(t *testing.T) {
	var tests = []struct {
		name    string
		request string
		want    string
		wantErr bool
	}{
		{"empty resolves newest", "", "1.20.4", false},
		{"exact match", "1.20.1", "1.20.1", false},
		{"unknown version", "1.16.5", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Paper{project: testPaperProject()}
			got, err := p.SelectVersion(tt.request)
			if tt.wantErr {
				var notFound *VersionNotFoundError
				if !errors.As(err, &notFound) {
					t.Fatalf("got error %v, want *VersionNotFoundError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaperLatestBuild(t *testing.T) {
	builds := meta.PaperBuilds{Version: "1.20.1"}
	builds.Builds = make([]meta.PaperBuild, 2)
	builds.Builds[0].Build = 10
	builds.Builds[0].Downloads.Application.Name = "paper-1.20.1-10.jar"
	builds.Builds[1].Build = 12
	builds.Builds[1].Downloads.Application.Name = "paper-1.20.1-12.jar"

	build, ok := builds.Latest()
	if !ok {
		t.Fatal("expected a build")
	}
	if build.Build != 12 {
		t.Errorf("got build %d, want 12", build.Build)
	}

	wantURL := "https://api.papermc.io/v2/projects/paper/versions/1.20.1/builds/12/downloads/paper-1.20.1-12.jar"
	if got := meta.PaperDownloadURL("1.20.1", build); got != wantURL {
		t.Errorf("got %q, want %q", got, wantURL)
	}
}

func TestPaperNoBuilds(t *testing.T) {
	var builds meta.PaperBuilds
	if _, ok := builds.Latest(); ok {
		t.Error("expected no build from an empty list")
	}
}
