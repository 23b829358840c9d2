package meta

import "fmt"

// PaperProject mirrors /v2/projects/paper. Versions are published oldest
// first.
type PaperProject struct {
	ProjectID string   `json:"project_id"`
	Versions  []string `json:"versions"`
}

// PaperBuilds mirrors /v2/projects/paper/versions/{v}/builds, oldest first.
type PaperBuilds struct {
	Version string       `json:"version"`
	Builds  []PaperBuild `json:"builds"`
}

type PaperBuild struct {
	Build     int    `json:"build"`
	Downloads struct {
		Application struct {
			Name   string `json:"name"`
			Sha256 string `json:"sha256"`
		} `json:"application"`
	} `json:"downloads"`
}

func (c *Client) GetPaperProject() (PaperProject, error) {
	var project PaperProject
	if err := c.getJSON(PaperApiURL, &project); err != nil {
		return PaperProject{}, err
	}
	return project, nil
}

func (c *Client) GetPaperBuilds(version string) (PaperBuilds, error) {
	var builds PaperBuilds
	url := fmt.Sprintf("%s/versions/%s/builds", PaperApiURL, version)
	if err := c.getJSON(url, &builds); err != nil {
		return PaperBuilds{}, err
	}
	return builds, nil
}

// Has reports whether the project publishes version.
func (p PaperProject) Has(version string) bool {
	for _, v := range p.Versions {
		if v == version {
			return true
		}
	}
	return false
}

// Newest returns the most recently published version.
func (p PaperProject) Newest() string {
	if len(p.Versions) == 0 {
		return ""
	}
	return p.Versions[len(p.Versions)-1]
}

// Latest picks the newest build; the build number is never user-chosen.
func (b PaperBuilds) Latest() (PaperBuild, bool) {
	if len(b.Builds) == 0 {
		return PaperBuild{}, false
	}
	return b.Builds[len(b.Builds)-1], true
}

// PaperDownloadURL is the direct artifact URL for a chosen version/build.
func PaperDownloadURL(version string, build PaperBuild) string {
	return fmt.Sprintf("%s/versions/%s/builds/%d/downloads/%s",
		PaperApiURL, version, build.Build, build.Downloads.Application.Name)
}
