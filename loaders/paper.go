package loaders

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/nowuX/ams/meta"
	"github.com/nowuX/ams/structs"
	"github.com/nowuX/ams/util"
)

// Paper resolves a version against the PaperMC project index, picks the
// newest build for it and downloads the jar directly. No subprocess is
// involved.
type Paper struct {
	InstallDir string
	Client     *meta.Client

	project meta.PaperProject
}

func (p *Paper) Validate(request string) error {
	return ValidateVersion(request)
}

func (p *Paper) FetchIndex() error {
	project, err := p.Client.GetPaperProject()
	if err != nil {
		return err
	}
	p.project = project
	return nil
}

func (p *Paper) SelectVersion(request string) (string, error) {
	if request == "" {
		newest := p.project.Newest()
		if newest == "" {
			return "", &VersionNotFoundError{Loader: KindPaper, Version: "latest"}
		}
		pterm.Debug.Printfln("Newest Paper version is %s", newest)
		return newest, nil
	}
	if !p.project.Has(request) {
		return "", &VersionNotFoundError{Loader: KindPaper, Version: request}
	}
	return request, nil
}

func (p *Paper) Acquire(version string) (structs.Descriptor, error) {
	builds, err := p.Client.GetPaperBuilds(version)
	if err != nil {
		return structs.Descriptor{}, err
	}
	build, ok := builds.Latest()
	if !ok {
		return structs.Descriptor{}, &AcquisitionError{Op: "paper build lookup", Err: errors.New("version has no builds")}
	}
	pterm.Debug.Printfln("Using Paper build %d", build.Build)

	jarName := build.Downloads.Application.Name
	dest := filepath.Join(p.InstallDir, jarName)
	if err := util.DownloadFile(dest, meta.PaperDownloadURL(version, build)); err != nil {
		return structs.Descriptor{}, err
	}
	pterm.Success.Println("Paper server downloaded")

	return structs.Descriptor{
		Name:      strings.TrimSuffix(jarName, ".jar"),
		McVersion: version,
	}, nil
}
