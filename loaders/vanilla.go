package loaders

import (
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/nowuX/ams/meta"
	"github.com/nowuX/ams/structs"
	"github.com/nowuX/ams/util"
)

// Vanilla downloads the official server jar straight from Mojang. No
// installer subprocess is involved.
type Vanilla struct {
	InstallDir string
	Client     *meta.Client

	manifest meta.VersionManifest
	entry    meta.ManifestEntry
}

func (v *Vanilla) Validate(request string) error {
	if err := ValidateVersion(request); err != nil {
		return err
	}
	return checkVanillaFloor(request)
}

func (v *Vanilla) FetchIndex() error {
	manifest, err := v.Client.GetVersionManifest()
	if err != nil {
		return err
	}
	v.manifest = manifest
	return nil
}

func (v *Vanilla) SelectVersion(request string) (string, error) {
	if request == "" {
		request = v.manifest.Latest.Release
		pterm.Debug.Printfln("Latest release is %s", request)
	}
	entry, ok := v.manifest.Find(request)
	if !ok {
		return "", &VersionNotFoundError{Loader: KindVanilla, Version: request}
	}
	v.entry = entry
	return entry.ID, nil
}

func (v *Vanilla) Acquire(version string) (structs.Descriptor, error) {
	serverURL, err := v.Client.GetServerURL(v.entry)
	if err != nil {
		return structs.Descriptor{}, err
	}

	name, err := util.ArtifactName(serverURL)
	if err != nil {
		return structs.Descriptor{}, &AcquisitionError{Op: "resolving vanilla jar name", Err: err}
	}

	dest := filepath.Join(v.InstallDir, name+".jar")
	if err := util.DownloadFile(dest, serverURL); err != nil {
		return structs.Descriptor{}, err
	}
	pterm.Success.Println("Vanilla server downloaded")

	return structs.Descriptor{Name: name, McVersion: version}, nil
}
