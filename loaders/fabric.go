package loaders

import (
	"os"
	"path"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/nowuX/ams/meta"
	"github.com/nowuX/ams/structs"
	"github.com/nowuX/ams/util"
)

// Fabric downloads the fixed installer jar and runs it as a subprocess. The
// installer itself resolves "latest" for any version flag we leave out.
type Fabric struct {
	InstallDir string
	// LoaderVersion optionally pins the Fabric loader; empty lets the
	// installer pick.
	LoaderVersion string
}

func (f *Fabric) Validate(request string) error {
	if err := ValidateVersion(request); err != nil {
		return err
	}
	return ValidateVersion(f.LoaderVersion)
}

// FetchIndex is a no-op: the installer lives at a fixed URL and carries its
// own version resolution.
func (f *Fabric) FetchIndex() error { return nil }

// SelectVersion passes the request through; an empty result means the
// -mcversion flag is omitted entirely.
func (f *Fabric) SelectVersion(request string) (string, error) {
	return request, nil
}

func (f *Fabric) Acquire(version string) (structs.Descriptor, error) {
	installer := path.Base(meta.FabricInstallerURL)
	installerPath := filepath.Join(f.InstallDir, installer)

	if err := util.DownloadFile(installerPath, meta.FabricInstallerURL); err != nil {
		return structs.Descriptor{}, err
	}
	defer os.Remove(installerPath)

	args := []string{"server"}
	if version != "" {
		args = append(args, "-mcversion", version)
	}
	if f.LoaderVersion != "" {
		args = append(args, "-loader", f.LoaderVersion)
	}
	args = append(args, "-downloadMinecraft")

	pterm.Info.Println("Running Fabric installer")
	if err := util.RunJar(f.InstallDir, installer, args...); err != nil {
		return structs.Descriptor{}, err
	}
	pterm.Success.Println("Fabric server installed")

	return structs.Descriptor{Name: "fabric-server-launch", McVersion: version}, nil
}
