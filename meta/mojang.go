package meta

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// VersionManifest mirrors Mojang's version_manifest_v2.json. The per-version
// URL is a second indirection; the manifest itself never carries download
// links.
type VersionManifest struct {
	Latest   ManifestLatest  `json:"latest"`
	Versions []ManifestEntry `json:"versions"`
}

type ManifestLatest struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

type ManifestEntry struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// GetVersionManifest fetches Mojang's version index.
func (c *Client) GetVersionManifest() (VersionManifest, error) {
	var manifest VersionManifest
	if err := c.getJSON(MojangManifestURL, &manifest); err != nil {
		return VersionManifest{}, err
	}
	return manifest, nil
}

// Find returns the manifest entry for id, scanning in published order and
// stopping at the first match.
func (m VersionManifest) Find(id string) (ManifestEntry, bool) {
	for _, v := range m.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return ManifestEntry{}, false
}

// GetServerURL resolves the second hop: the per-version metadata document the
// manifest entry points at, which carries the actual server jar URL.
func (c *Client) GetServerURL(entry ManifestEntry) (string, error) {
	body, err := c.GetRaw(entry.URL)
	if err != nil {
		return "", err
	}
	serverURL := gjson.GetBytes(body, "downloads.server.url").String()
	if serverURL == "" {
		return "", &NetworkError{URL: entry.URL, Err: fmt.Errorf("no server download for %s", entry.ID)}
	}
	return serverURL, nil
}

// GetLatestRelease returns the manifest's latest stable release id.
func (c *Client) GetLatestRelease() (string, error) {
	manifest, err := c.GetVersionManifest()
	if err != nil {
		return "", err
	}
	return manifest.Latest.Release, nil
}
