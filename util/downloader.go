package util

import (
	"fmt"
	"os"

	"github.com/cavaliergopher/grab/v3"
	"github.com/pterm/pterm"
)

// UserAgent is stamped by main and sent with every download request.
var UserAgent string

// DownloadFile fetches url to destPath. Partial downloads are never resumed;
// a failed transfer leaves no file behind.
func DownloadFile(destPath, url string) error {
	grab.DefaultClient.UserAgent = UserAgent

	req, err := grab.NewRequest(destPath, url)
	if err != nil {
		return err
	}
	req.NoResume = true

	pterm.Debug.Printfln("Downloading %s to %s", url, destPath)
	resp := grab.DefaultClient.Do(req)
	if err := resp.Err(); err != nil {
		_ = os.Remove(destPath)
		return fmt.Errorf("download of %s failed: %w", url, err)
	}
	return nil
}
