package util

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownloadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jar bytes"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "server.jar")
	if err := DownloadFile(dest, server.URL+"/server.jar"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "jar bytes" {
		t.Errorf("got %q", data)
	}
}

func TestDownloadFileFailureLeavesNoFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "server.jar")
	if err := DownloadFile(dest, server.URL+"/server.jar"); err == nil {
		t.Fatal("expected an error for a missing artifact")
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Errorf("destination still present after a failed transfer: %v", err)
	}
}
