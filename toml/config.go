// Package toml loads sensei's configuration file.
package toml

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/sensei"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Browsers that can open documentation.
const (
	BrowserSystem = "system"
	BrowserChrome = "chrome"
)

// Config holds user settings. Zero fields take their defaults.
type Config struct {
	RegistryHost string   `toml:"registry_host"`
	StdHost      string   `toml:"std_host"`
	BuildCommand string   `toml:"build_command"`
	Browser      string   `toml:"browser"`
	Phrases      []string `toml:"phrases"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	hosts := sensei.DefaultHosts()
	return &Config{
		RegistryHost: hosts.Registry,
		StdHost:      hosts.Std,
		BuildCommand: sensei.DefaultBuildCommand,
		Browser:      BrowserSystem,
		Phrases:      sensei.DefaultPhrases(),
	}
}

// DefaultPath returns the config file location under the user config directory.
// Returns "" if the user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sensei", "config.toml")
}

// Load reads the config file at path over the defaults.
// A missing file, or an empty path, yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, sensei.Errorf(sensei.EINVALID, "reading config %s: %v", path, err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, sensei.Errorf(sensei.EINVALID, "parsing config %s: %v", path, err)
	}
	return cfg, nil
}

// Parse decodes data into cfg, leaving absent keys untouched.
func Parse(data []byte, cfg *Config) error {
	var file Config
	if err := gotoml.Unmarshal(data, &file); err != nil {
		return err
	}

	if file.RegistryHost != "" {
		cfg.RegistryHost = file.RegistryHost
	}
	if file.StdHost != "" {
		cfg.StdHost = file.StdHost
	}
	if file.BuildCommand != "" {
		cfg.BuildCommand = file.BuildCommand
	}
	if file.Browser != "" {
		cfg.Browser = file.Browser
	}
	if len(file.Phrases) > 0 {
		cfg.Phrases = file.Phrases
	}
	return cfg.Validate()
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	switch c.Browser {
	case BrowserSystem, BrowserChrome:
	default:
		return sensei.Errorf(sensei.EINVALID, "unknown browser %q (want %q or %q)", c.Browser, BrowserSystem, BrowserChrome)
	}
	return nil
}

// Hosts returns the configured documentation hosts.
func (c *Config) Hosts() sensei.Hosts {
	return sensei.Hosts{
		Registry: c.RegistryHost,
		Std:      c.StdHost,
	}
}
