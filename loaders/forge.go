package loaders

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	semVer "github.com/hashicorp/go-version"
	"github.com/pterm/pterm"

	"github.com/nowuX/ams/meta"
	"github.com/nowuX/ams/structs"
	"github.com/nowuX/ams/util"
)

// Forge resolves a build through the promotions map, downloads the matching
// installer and runs it with --installServer. Modern Forge no longer
// launches via a flat `java -jar`; the descriptor points at the run script
// the installer generates instead.
type Forge struct {
	InstallDir string
	Client     *meta.Client
	// Latest picks the latest promotion channel instead of recommended.
	Latest bool

	promos meta.ForgePromotions
}

func (f *Forge) Validate(request string) error {
	return ValidateVersion(request)
}

func (f *Forge) FetchIndex() error {
	promos, err := f.Client.GetForgePromotions()
	if err != nil {
		return err
	}
	f.promos = promos
	return nil
}

// SelectVersion resolves request to a full build id "<mc>-<forge>". An empty
// request targets the numerically highest Minecraft version with a
// promotion on the chosen channel.
func (f *Forge) SelectVersion(request string) (string, error) {
	if request == "" {
		request = f.newestPromotedMc()
		if request == "" {
			return "", &VersionNotFoundError{Loader: KindForge, Version: "latest"}
		}
		pterm.Debug.Printfln("Newest promoted Minecraft version is %s", request)
	}
	build, ok := f.promos.Select(request, f.Latest)
	if !ok {
		return "", &VersionNotFoundError{Loader: KindForge, Version: request}
	}
	return build, nil
}

func (f *Forge) newestPromotedMc() string {
	var versions []*semVer.Version
	for _, mc := range f.promos.McVersions() {
		if v, err := semVer.NewVersion(mc); err == nil {
			versions = append(versions, v)
		}
	}
	if len(versions) == 0 {
		return ""
	}
	sort.Sort(semVer.Collection(versions))
	return versions[len(versions)-1].Original()
}

func (f *Forge) Acquire(build string) (structs.Descriptor, error) {
	installerURL := meta.ForgeInstallerURL(build)
	if !f.Client.Head(installerURL) {
		return structs.Descriptor{}, &AcquisitionError{Op: "forge installer lookup", Err: fmt.Errorf("no installer published for %s", build)}
	}
	installer := path.Base(installerURL)
	installerPath := filepath.Join(f.InstallDir, installer)

	if err := util.DownloadFile(installerPath, installerURL); err != nil {
		return structs.Descriptor{}, err
	}
	defer func() {
		_ = os.Remove(installerPath)
		_ = os.Remove(installerPath + ".log")
	}()

	pterm.Info.Println("Running Forge installer")
	if err := util.RunJar(f.InstallDir, installer, "--installServer"); err != nil {
		return structs.Descriptor{}, err
	}
	pterm.Success.Println("Forge server installed")

	mcVersion, _, _ := strings.Cut(build, "-")

	return structs.Descriptor{
		ExternalLauncher: true,
		LaunchHint:       forgeRunScript(),
		McVersion:        mcVersion,
	}, nil
}

// forgeRunScript is the launcher the Forge installer generates, relative to
// the install dir. The POSIX hint is cwd-qualified; a bare name would be
// resolved through PATH by the shell running the launch scripts.
func forgeRunScript() string {
	if runtime.GOOS == "windows" {
		return "run.bat"
	}
	return "./run.sh"
}
