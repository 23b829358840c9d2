package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"

	semVer "github.com/hashicorp/go-version"
	"github.com/minio/selfupdate"
	"github.com/pterm/pterm"

	"github.com/nowuX/ams/util"
)

const (
	ghOrg  = "nowuX"
	ghRepo = "ams"
)

type ghRelease struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Prerelease bool   `json:"prerelease"`
	Draft      bool   `json:"draft"`
}

// latestRelease fetches the newest published release tag, skipping drafts
// and prereleases.
func latestRelease() (string, error) {
	releaseApi := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", ghOrg, ghRepo)
	resp, err := http.Get(releaseApi)
	if err != nil {
		return "", fmt.Errorf("error checking for update: %s", err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status: %s", resp.Status)
	}

	var release ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("error unmarshalling response: %s", err.Error())
	}
	if release.Prerelease || release.Draft {
		return "", nil
	}
	return release.TagName, nil
}

// updateAvailable compares the running version against the latest release.
func updateAvailable() (string, bool, error) {
	latest, err := latestRelease()
	if err != nil || latest == "" {
		return "", false, err
	}

	current, err := semVer.NewVersion(strings.TrimPrefix(util.ReleaseVersion, "v"))
	if err != nil {
		return "", false, fmt.Errorf("error parsing current version: %s", err.Error())
	}
	remote, err := semVer.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return "", false, fmt.Errorf("error parsing latest version: %s", err.Error())
	}
	return latest, remote.GreaterThan(current), nil
}

func notifyUpdate() {
	latest, available, err := updateAvailable()
	if err != nil {
		pterm.Warning.Printfln("Error checking for update: %v", err)
		return
	}
	if available {
		pterm.Info.Printfln("Installer update %s available, run with -update to apply", latest)
		pterm.Println()
	}
}

// doUpdate replaces the running binary with the latest release, verifying
// the published sha256 first.
func doUpdate() error {
	latest, available, err := updateAvailable()
	if err != nil {
		return err
	}
	if !available {
		pterm.Info.Println("Already up to date")
		return nil
	}

	filename := fmt.Sprintf("ams-%s-%s", strings.ToLower(runtime.GOOS), strings.ToLower(runtime.GOARCH))
	if runtime.GOOS == "windows" {
		filename += ".exe"
	}
	downloadUrl := fmt.Sprintf("https://github.com/%s/%s/releases/download/%s/%s", ghOrg, ghRepo, latest, filename)

	hashResp, err := http.Get(downloadUrl + ".sha256")
	if err != nil {
		return fmt.Errorf("error downloading hash: %s", err.Error())
	}
	defer hashResp.Body.Close()
	if hashResp.StatusCode != http.StatusOK {
		return fmt.Errorf("error downloading hash: %s", hashResp.Status)
	}
	hashBytes, err := io.ReadAll(hashResp.Body)
	if err != nil {
		return fmt.Errorf("error reading hash response: %s", err.Error())
	}
	updateHash := strings.TrimSpace(string(hashBytes))
	pterm.Debug.Println("Update hash:", updateHash)

	resp, err := http.Get(downloadUrl)
	if err != nil {
		return fmt.Errorf("error downloading update: %s", err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error downloading update: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading update response: %s", err.Error())
	}

	binHash := fmt.Sprintf("%x", sha256.Sum256(data))
	if updateHash != binHash {
		return fmt.Errorf("update hash does not match")
	}

	if err := selfupdate.Apply(bytes.NewReader(data), selfupdate.Options{}); err != nil {
		return fmt.Errorf("error applying update: %s", err.Error())
	}

	pterm.Success.Println("Update successful!\nPlease restart the program to use the new version.")
	return nil
}
