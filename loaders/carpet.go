package loaders

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/nowuX/ams/meta"
	"github.com/nowuX/ams/structs"
	"github.com/nowuX/ams/util"
)

// Carpet112 runs the Carpet mod installer for Minecraft 1.12.2. The
// installer takes no arguments and drops a zipped server build under an
// `update` subdirectory, which has to be renamed to a jar and pulled up into
// the install dir.
type Carpet112 struct {
	InstallDir string
}

// CarpetMcVersion is the only Minecraft version the Carpet installer
// targets.
const CarpetMcVersion = "1.12.2"

// Validate ignores the request: the version is fixed by the installer.
func (c *Carpet112) Validate(string) error { return nil }

// FetchIndex is a no-op: the installer lives at a fixed URL.
func (c *Carpet112) FetchIndex() error { return nil }

func (c *Carpet112) SelectVersion(string) (string, error) {
	return CarpetMcVersion, nil
}

func (c *Carpet112) Acquire(version string) (structs.Descriptor, error) {
	installer := path.Base(meta.Carpet112InstallerURL)
	installerPath := filepath.Join(c.InstallDir, installer)
	updateDir := filepath.Join(c.InstallDir, "update")

	if err := util.DownloadFile(installerPath, meta.Carpet112InstallerURL); err != nil {
		return structs.Descriptor{}, err
	}
	defer func() {
		_ = os.Remove(installerPath)
		_ = os.RemoveAll(updateDir)
	}()

	pterm.Info.Println("Running Carpet installer")
	if err := util.RunJar(c.InstallDir, installer); err != nil {
		return structs.Descriptor{}, err
	}

	zipName, err := findSingleZip(updateDir)
	if err != nil {
		return structs.Descriptor{}, &AcquisitionError{Op: "carpet install", Err: err}
	}

	// The zipped build is already a usable jar under the wrong extension.
	dest := filepath.Join(c.InstallDir, "server.jar")
	if err := os.Rename(filepath.Join(updateDir, zipName), dest); err != nil {
		return structs.Descriptor{}, &AcquisitionError{Op: "moving carpet jar", Err: err}
	}
	pterm.Success.Println("Carpet 1.12 server installed")

	return structs.Descriptor{Name: "server", McVersion: version}, nil
}

func findSingleZip(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	var zips []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".zip") {
			zips = append(zips, entry.Name())
		}
	}
	if len(zips) != 1 {
		return "", fmt.Errorf("expected one zip in %s, found %d", dir, len(zips))
	}
	return zips[0], nil
}
