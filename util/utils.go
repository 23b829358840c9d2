package util

import (
	"errors"
	"io"
	"net/url"
	"os"
	"path"
	"regexp"
	"runtime"
	"strings"

	"github.com/pterm/pterm"
)

var (
	ReleaseVersion string
	GitCommit      string
	LogMw          io.Writer
)

var folderRe = regexp.MustCompile(`\W`)

// SanitizeFolderName strips everything but word characters from a user
// supplied server folder name, mapping spaces to underscores first. An empty
// result falls back to the given default.
func SanitizeFolderName(name, fallback string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	name = folderRe.ReplaceAllString(name, "")
	if name == "" {
		return fallback
	}
	return name
}

// ArtifactName returns the filename at the end of a download URL without its
// extension, e.g. ".../server.jar" -> "server".
func ArtifactName(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	base := path.Base(parsed.Path)
	if base == "." || base == "/" {
		return "", errors.New("url has no file path")
	}
	return strings.TrimSuffix(base, path.Ext(base)), nil
}

func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// PythonCommand is the interpreter name for the running platform. MCDR is a
// python package, so the command differs between Windows and Linux.
func PythonCommand() (string, error) {
	switch runtime.GOOS {
	case "windows":
		return "python", nil
	case "linux", "darwin":
		return "python3", nil
	default:
		return "", errors.New("unsupported platform " + runtime.GOOS)
	}
}

// ConfirmYN asks a yes/no question through pterm's interactive confirm.
func ConfirmYN(text string, value bool, style *pterm.Style) bool {
	if style == nil {
		style = pterm.Info.MessageStyle
	}
	show, err := pterm.DefaultInteractiveConfirm.
		WithDefaultText(text).
		WithDefaultValue(value).
		WithTextStyle(style).
		Show()
	if err != nil {
		pterm.Fatal.Printfln("Interactive confirm error: %s", err.Error())
	}
	return show
}

// CustomWriter strips ANSI escape codes before writing, so the log file stays
// readable while the console keeps its colours.
type CustomWriter struct {
	writer io.Writer
}

func NewCustomWriter(writer io.Writer) *CustomWriter {
	return &CustomWriter{writer: writer}
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Write implements the io.Writer interface. The reported count covers all of
// p; stripping shortens the underlying write and must not look like a short
// write to an io.MultiWriter.
func (cw *CustomWriter) Write(p []byte) (n int, err error) {
	stripped := ansiRe.ReplaceAll(p, []byte{})
	if _, err := cw.writer.Write(stripped); err != nil {
		return 0, err
	}
	return len(p), nil
}
