package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable that overrides the
// configuration file location.
const EnvConfigPath = "SCREENBELL_CONFIG"

// Loader resolves and reads the configuration file.
type Loader struct {
	Version      string // build version; "dev" adds the working-directory candidate
	OverridePath string // highest-precedence path, usually from a flag
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load reads the first configuration file that exists, or returns the
// defaults when there is none.
func (l *Loader) Load() (*Config, error) {
	path := l.ConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Candidates returns the paths probed for a configuration file, in
// precedence order: the explicit override, SCREENBELL_CONFIG, a
// .screenbellrc in the working directory for dev builds, then the
// user configuration directory.
func (l *Loader) Candidates() []string {
	var paths []string
	if l.OverridePath != "" {
		paths = append(paths, l.OverridePath)
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		paths = append(paths, env)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, ".screenbellrc"))
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "screenbell", "config.rc"),
			filepath.Join(dir, "screenbell", "screenbell.rc"),
		)
	}
	return paths
}

// ConfigPath returns the first candidate that exists, or an empty
// string when no configuration file is present.
func (l *Loader) ConfigPath() string {
	for _, path := range l.Candidates() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// SavePath returns where the configuration should be written: the file
// that was loaded if one exists, otherwise the default location in the
// user configuration directory.
func (l *Loader) SavePath() (string, error) {
	if path := l.ConfigPath(); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "screenbell", "config.rc"), nil
}
