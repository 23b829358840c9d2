// Package patch mutates persisted server config files by semantic key. Every
// patch replaces exactly one setting's value and leaves all other lines
// byte-identical, so applying the same spec twice is a no-op diff. Files are
// never addressed by line number; upstream tools are free to move settings
// around their templates.
package patch

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Kind selects how the target setting is located and rewritten.
type Kind int

const (
	// YamlScalar replaces the value of a top-level `key: value` mapping line.
	YamlScalar Kind = iota
	// YamlListEntry replaces the first `- item` entry under a `key:` line,
	// inserting one when the list is empty.
	YamlListEntry
	// Property replaces the value of a `key=value` properties line.
	Property
)

// Spec is one named mutation of one file.
type Spec struct {
	File  string
	Key   string
	Value string
	Kind  Kind
}

// FileIOError reports a config file that is missing, unwritable, or does not
// contain the expected setting.
type FileIOError struct {
	Path string
	Err  error
}

func (e *FileIOError) Error() string {
	return fmt.Sprintf("config patch of %s failed: %s", e.Path, e.Err.Error())
}

func (e *FileIOError) Unwrap() error { return e.Err }

// Apply performs the mutation in place.
func Apply(spec Spec) error {
	data, err := os.ReadFile(spec.File)
	if err != nil {
		return &FileIOError{Path: spec.File, Err: err}
	}

	trailingNewline := strings.HasSuffix(string(data), "\n")
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	var patched []string
	switch spec.Kind {
	case YamlScalar:
		patched, err = patchScalar(lines, spec.Key, spec.Value)
	case YamlListEntry:
		patched, err = patchListEntry(lines, spec.Key, spec.Value)
	case Property:
		patched, err = patchProperty(lines, spec.Key, spec.Value)
	default:
		err = fmt.Errorf("unknown patch kind %d", spec.Kind)
	}
	if err != nil {
		return &FileIOError{Path: spec.File, Err: err}
	}

	out := strings.Join(patched, "\n")
	if trailingNewline {
		out += "\n"
	}
	if err := os.WriteFile(spec.File, []byte(out), 0666); err != nil {
		return &FileIOError{Path: spec.File, Err: err}
	}
	return nil
}

func patchScalar(lines []string, key, value string) ([]string, error) {
	re := regexp.MustCompile(`^(\s*)` + regexp.QuoteMeta(key) + `\s*:`)
	for i, line := range lines {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		lines[i] = fmt.Sprintf("%s%s: %s", m[1], key, value)
		return lines, nil
	}
	return nil, fmt.Errorf("key %q not found", key)
}

func patchListEntry(lines []string, key, value string) ([]string, error) {
	keyRe := regexp.MustCompile(`^(\s*)` + regexp.QuoteMeta(key) + `\s*:\s*$`)
	for i, line := range lines {
		m := keyRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entry := fmt.Sprintf("%s- %s", m[1], value)
		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" || strings.HasPrefix(next, "#") {
				continue
			}
			if strings.HasPrefix(next, "- ") || next == "-" {
				lines[j] = entry
				return lines, nil
			}
			break
		}
		// Empty list: insert the single entry right below the key.
		lines = append(lines[:i+1], append([]string{entry}, lines[i+1:]...)...)
		return lines, nil
	}
	return nil, fmt.Errorf("key %q not found", key)
}

func patchProperty(lines []string, key, value string) ([]string, error) {
	prefix := key + "="
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), prefix) {
			continue
		}
		lines[i] = prefix + value
		return lines, nil
	}
	return nil, fmt.Errorf("key %q not found", key)
}

// StartCommand patches the management layer's server start command.
func StartCommand(file, cmd string) Spec {
	return Spec{File: file, Key: "start_command", Value: cmd, Kind: YamlScalar}
}

// ConsoleThread toggles the management layer's console thread.
func ConsoleThread(file string, disabled bool) Spec {
	return Spec{File: file, Key: "disable_console_thread", Value: strconv.FormatBool(disabled), Kind: YamlScalar}
}

// Owner sets the single owner entry of the permission list.
func Owner(file, nickname string) Spec {
	return Spec{File: file, Key: "owner", Value: nickname, Kind: YamlListEntry}
}

// Eula flips the eula.txt acceptance flag.
func Eula(file string, accepted bool) Spec {
	return Spec{File: file, Key: "eula", Value: strconv.FormatBool(accepted), Kind: Property}
}
