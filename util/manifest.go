package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/nowuX/ams/structs"
)

const ManifestName = ".ams-manifest.json"

func ReadManifest(dir string) (structs.Manifest, error) {
	pterm.Debug.Println("Reading manifest from", dir)
	file, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return structs.Manifest{}, err
	}

	var manifest structs.Manifest
	if err := json.Unmarshal(file, &manifest); err != nil {
		return structs.Manifest{}, err
	}
	return manifest, nil
}

// WriteManifest records what was installed, so the folder is self-describing.
func WriteManifest(dir string, manifest structs.Manifest) error {
	manifestJson, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal manifest: %s", err.Error())
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), manifestJson, 0666); err != nil {
		return fmt.Errorf("unable to write manifest: %s", err.Error())
	}
	return nil
}
