package loaders

import (
	"errors"
	"os"
	"path"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/nowuX/ams/meta"
	"github.com/nowuX/ams/structs"
	"github.com/nowuX/ams/util"
)

// Quilt runs the fixed quilt-installer jar with an explicit install
// directory. Unlike Fabric the installer needs a concrete Minecraft version,
// so an empty request is resolved through the Mojang manifest first.
type Quilt struct {
	InstallDir string
	Client     *meta.Client
}

func (q *Quilt) Validate(request string) error {
	return ValidateVersion(request)
}

// FetchIndex is a no-op: the installer lives at a fixed URL.
func (q *Quilt) FetchIndex() error { return nil }

func (q *Quilt) SelectVersion(request string) (string, error) {
	if request != "" {
		return request, nil
	}
	latest, err := q.Client.GetLatestRelease()
	if err != nil {
		return "", err
	}
	pterm.Debug.Printfln("Latest release is %s", latest)
	return latest, nil
}

func (q *Quilt) Acquire(version string) (structs.Descriptor, error) {
	installer := path.Base(meta.QuiltInstallerURL)
	installerPath := filepath.Join(q.InstallDir, installer)

	if err := util.DownloadFile(installerPath, meta.QuiltInstallerURL); err != nil {
		return structs.Descriptor{}, err
	}
	defer os.Remove(installerPath)

	pterm.Info.Println("Running Quilt installer")
	err := util.RunJar(q.InstallDir, installer,
		"install", "server", version, "--install-dir=.", "--download-server")
	if err != nil {
		return structs.Descriptor{}, err
	}

	// The installer is expected to drop a fixed-name server jar next to the
	// quilt launcher; anything else means the install silently failed.
	serverJar := filepath.Join(q.InstallDir, "server.jar")
	exists, err := util.PathExists(serverJar)
	if err != nil {
		return structs.Descriptor{}, &AcquisitionError{Op: "checking quilt server jar", Err: err}
	}
	if !exists {
		return structs.Descriptor{}, &AcquisitionError{Op: "quilt install", Err: errors.New("server.jar not found after install")}
	}
	pterm.Success.Println("Quilt server installed")

	return structs.Descriptor{Name: "quilt-server-launch", McVersion: version}, nil
}
