package util

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// WriteLaunchScripts drops start.bat and start.sh into dir, both wrapping the
// same command. The shell script is made executable on non-Windows systems.
func WriteLaunchScripts(dir string, cmd string) error {
	batPath := filepath.Join(dir, "start.bat")
	if err := os.WriteFile(batPath, []byte(fmt.Sprintf("@echo off\r\n%s\r\n", cmd)), 0666); err != nil {
		return err
	}

	shPath := filepath.Join(dir, "start.sh")
	if err := os.WriteFile(shPath, []byte(fmt.Sprintf("#!/usr/bin/env bash\n%s\n", cmd)), 0666); err != nil {
		return err
	}
	if runtime.GOOS != "windows" {
		if err := os.Chmod(shPath, 0755); err != nil {
			return err
		}
	}
	return nil
}

// StartScript is the platform launch script name, relative to the server dir.
func StartScript() string {
	if runtime.GOOS == "windows" {
		return "start.bat"
	}
	return "./start.sh"
}
