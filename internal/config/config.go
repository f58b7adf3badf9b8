// Package config loads optional user configuration: default arguments
// prepended to every invocation and a color theme for the printer.
// Nothing here is required; a missing config directory leaves every
// default in place.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ThemeConfig overrides printer colors per entry kind. Values are
// ANSI/hex colors as understood by the terminal styling layer; empty
// values keep the built-in palette.
type ThemeConfig struct {
	File       string `yaml:"file,omitempty"`
	Directory  string `yaml:"directory,omitempty"`
	Symlink    string `yaml:"symlink,omitempty"`
	SymlinkDir string `yaml:"symlink_dir,omitempty"`
}

// Config is the content of lsr.yaml.
type Config struct {
	// Defaults are extra arguments prepended before the real command
	// line, e.g. ["-A", "--group-directories-first"].
	Defaults []string `yaml:"defaults"`

	// Theme overrides printer colors.
	Theme ThemeConfig `yaml:"theme"`
}

const (
	// ConfigFileName is the YAML config file looked up in Dir().
	ConfigFileName = "lsr.yaml"

	// EnvFileName is an optional dotenv-format file loaded into the
	// environment before flags are read, so LSR_* and NO_COLOR can be
	// pinned per user.
	EnvFileName = "env"
)

// Dir returns the per-user configuration directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "lsr"), nil
}

// Load reads the config from the default directory. A missing
// directory or file yields ErrConfigNotFound.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, ErrConfigNotFound
	}
	return LoadFrom(dir)
}

// LoadFrom reads lsr.yaml from the given directory.
func LoadFrom(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnv loads the optional env file into the process environment.
// Existing variables keep their values; a missing file is not an
// error.
func LoadEnv() error {
	dir, err := Dir()
	if err != nil {
		return nil
	}
	return LoadEnvFrom(dir)
}

// LoadEnvFrom loads the env file from the given directory.
func LoadEnvFrom(dir string) error {
	path := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return godotenv.Load(path)
}
