package meta

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Endpoints for every loader family the installer knows about. Fabric, Quilt
// and Carpet have no queryable index; their installers live at fixed URLs.
const (
	MojangManifestURL     = "https://launchermeta.mojang.com/mc/game/version_manifest_v2.json"
	PaperApiURL           = "https://api.papermc.io/v2/projects/paper"
	ForgePromosURL        = "https://files.minecraftforge.net/net/minecraftforge/forge/promotions_slim.json"
	ForgeMavenURL         = "https://maven.minecraftforge.net/releases/net/minecraftforge/forge"
	FabricInstallerURL    = "https://maven.fabricmc.net/net/fabricmc/fabric-installer/0.11.0/fabric-installer-0.11.0.jar"
	QuiltInstallerURL     = "https://maven.quiltmc.org/repository/release/org/quiltmc/quilt-installer/latest/quilt-installer-latest.jar"
	Carpet112InstallerURL = "https://gitlab.com/Xcom/carpetinstaller/uploads/24d0753d3f9a228e9b8bbd46ce672dbe/carpetInstaller.jar"
)

// UserAgent is stamped by main from the release version.
var UserAgent string

// NetworkError wraps any transport failure, non-200 status or undecodable
// body from a version index endpoint. Index fetches are never retried.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("index request %s failed: %s", e.URL, e.Err.Error())
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client fetches and decodes loader version indexes.
type Client struct {
	rest *resty.Client
}

// NewClient builds an index client. Every call is bounded by timeout; zero
// means no bound, which callers should avoid.
func NewClient(timeout time.Duration) *Client {
	rest := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", UserAgent)
	return &Client{rest: rest}
}

// getJSON decodes the JSON body at url into out.
func (c *Client) getJSON(url string, out any) error {
	resp, err := c.rest.R().SetResult(out).Get(url)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	if resp.StatusCode() != 200 {
		return &NetworkError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status())}
	}
	return nil
}

// GetRaw fetches url and returns the raw body, for documents the caller picks
// single values out of rather than decoding whole.
func (c *Client) GetRaw(url string) ([]byte, error) {
	resp, err := c.rest.R().Get(url)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	if resp.StatusCode() != 200 {
		return nil, &NetworkError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status())}
	}
	return resp.Body(), nil
}

// Head reports whether url answers 200 to a HEAD request.
func (c *Client) Head(url string) bool {
	resp, err := c.rest.R().Head(url)
	return err == nil && resp.StatusCode() == 200
}
