package meta

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latest":{"release":"1.20.1","snapshot":"23w31a"},"versions":[{"id":"1.20.1","url":"https://example.com/1.20.1.json"}]}`))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	var manifest VersionManifest
	if err := client.getJSON(server.URL, &manifest); err != nil {
		t.Fatal(err)
	}
	if manifest.Latest.Release != "1.20.1" {
		t.Errorf("latest release = %q, want 1.20.1", manifest.Latest.Release)
	}
	if len(manifest.Versions) != 1 || manifest.Versions[0].ID != "1.20.1" {
		t.Errorf("unexpected versions: %+v", manifest.Versions)
	}
}

func TestGetJSONBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	var manifest VersionManifest
	err := client.getJSON(server.URL, &manifest)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("got error %v, want *NetworkError", err)
	}
}

func TestGetJSONUnreachable(t *testing.T) {
	client := NewClient(time.Second)
	var manifest VersionManifest
	err := client.getJSON("http://127.0.0.1:1/manifest.json", &manifest)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("got error %v, want *NetworkError", err)
	}
}

func TestHead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/installer.jar" {
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	if !client.Head(server.URL + "/installer.jar") {
		t.Error("Head should report true for a published artifact")
	}
	if client.Head(server.URL + "/missing.jar") {
		t.Error("Head should report false for a missing artifact")
	}
}

func TestManifestFind(t *testing.T) {
	manifest := VersionManifest{Versions: []ManifestEntry{
		{ID: "1.20.4", URL: "https://example.com/a.json"},
		{ID: "1.20.1", URL: "https://example.com/b.json"},
	}}

	entry, ok := manifest.Find("1.20.1")
	if !ok || entry.URL != "https://example.com/b.json" {
		t.Errorf("Find(1.20.1) = %+v, %t", entry, ok)
	}
	if _, ok := manifest.Find("1.8.9"); ok {
		t.Error("Find(1.8.9) should miss")
	}
}

func TestGetServerURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"downloads":{"server":{"sha1":"abc","size":1,"url":"https://example.com/server.jar"}}}`))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	url, err := client.GetServerURL(ManifestEntry{ID: "1.20.1", URL: server.URL})
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://example.com/server.jar" {
		t.Errorf("got %q", url)
	}
}

func TestGetServerURLMissingDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"downloads":{}}`))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	_, err := client.GetServerURL(ManifestEntry{ID: "0.0.0", URL: server.URL})
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("got error %v, want *NetworkError", err)
	}
}
