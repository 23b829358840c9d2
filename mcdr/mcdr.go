// Package mcdr wires a server install into the MCDReforged process
// management layer: package install, environment init, and the config
// mutations the layer needs to launch the chosen artifact.
package mcdr

import (
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/nowuX/ams/patch"
	"github.com/nowuX/ams/util"
)

const (
	// Package is the pip package name of the management layer.
	Package = "mcdreforged"

	ConfigFile     = "config.yml"
	PermissionFile = "permission.yml"
)

// Manager drives MCDR inside one server folder.
type Manager struct {
	// Dir is the MCDR root, the folder `mcdreforged init` populated.
	Dir string
	// Python is the interpreter command for this platform.
	Python string
}

func New(dir, python string) *Manager {
	return &Manager{Dir: dir, Python: python}
}

// EnsureInstalled checks that the MCDR package imports, installing it
// through pip when it does not.
func (m *Manager) EnsureInstalled() error {
	if err := util.RunCommand("", m.Python, "-m", Package, "--version"); err == nil {
		pterm.Debug.Println("MCDReforged package detected")
		return nil
	}
	pterm.Warning.Println("MCDReforged package not detected, installing...")
	return util.RunCommand("", m.Python, "-m", "pip", "install", Package)
}

// Init populates Dir with MCDR's skeleton (config.yml, permission.yml and
// the server working directory).
func (m *Manager) Init() error {
	return util.RunCommand(m.Dir, m.Python, "-m", Package, "init")
}

// mcdrConfig is the slice of config.yml this tool reads back. Mutations go
// through the patcher instead, so MCDR's own template formatting survives.
type mcdrConfig struct {
	WorkingDirectory string `yaml:"working_directory"`
}

// ServerDir returns the directory MCDR launches the server from, as
// configured in config.yml ("server" in a fresh init).
func (m *Manager) ServerDir() (string, error) {
	data, err := os.ReadFile(filepath.Join(m.Dir, ConfigFile))
	if err != nil {
		return "", err
	}
	var cfg mcdrConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", err
	}
	if cfg.WorkingDirectory == "" {
		cfg.WorkingDirectory = "server"
	}
	return filepath.Join(m.Dir, cfg.WorkingDirectory), nil
}

// SetStartCommand points MCDR at the server launch command.
func (m *Manager) SetStartCommand(cmd string) error {
	return patch.Apply(patch.StartCommand(filepath.Join(m.Dir, ConfigFile), cmd))
}

// SetOwner writes the owner nickname into the permission list.
func (m *Manager) SetOwner(nickname string) error {
	return patch.Apply(patch.Owner(filepath.Join(m.Dir, PermissionFile), nickname))
}

// SetConsoleThread toggles disable_console_thread. The console thread is
// disabled for the unattended first run and re-enabled afterwards.
func (m *Manager) SetConsoleThread(disabled bool) error {
	return patch.Apply(patch.ConsoleThread(filepath.Join(m.Dir, ConfigFile), disabled))
}

// StartCommand is how the user launches MCDR itself.
func (m *Manager) StartCommand() string {
	return m.Python + " -m " + Package + " start"
}
