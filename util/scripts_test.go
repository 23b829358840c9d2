package util

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestWriteLaunchScripts(t *testing.T) {
	dir := t.TempDir()
	cmd := "java -Xms1G -Xmx2G -jar server.jar nogui"

	if err := WriteLaunchScripts(dir, cmd); err != nil {
		t.Fatal(err)
	}

	bat, err := os.ReadFile(filepath.Join(dir, "start.bat"))
	if err != nil {
		t.Fatal(err)
	}
	if string(bat) != "@echo off\r\n"+cmd+"\r\n" {
		t.Errorf("unexpected start.bat content: %q", bat)
	}

	sh, err := os.ReadFile(filepath.Join(dir, "start.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(sh), "#!/usr/bin/env bash\n") {
		t.Errorf("start.sh missing shebang: %q", sh)
	}
	if !strings.Contains(string(sh), cmd) {
		t.Errorf("start.sh missing command: %q", sh)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, "start.sh"))
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm()&0111 == 0 {
			t.Error("start.sh is not executable")
		}
	}
}
