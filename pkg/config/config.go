package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// DefaultConfigPath is the config file looked up when --config is not given.
const DefaultConfigPath = ".config/lancedb-mcp.yml"

// PackagedVersion is the release version this front end was packaged with.
// It is overridden at build time via -ldflags.
var PackagedVersion = "1.2.0"

// Config holds the packaging metadata that drives installation. All values
// are opaque inputs: the release publishes assets under
// <ReleaseHost>/<Repo>/releases/download/v<Version>/.
type Config struct {
	// Name is the base name of the published binary.
	Name string `yaml:"name"`
	// Repo is the "<owner>/<repo>" the releases are published under.
	Repo string `yaml:"repo"`
	// ReleaseHost is the scheme and host assets are downloaded from.
	ReleaseHost string `yaml:"release_host"`
	// Version is the release version to install, without the leading "v".
	Version string `yaml:"version"`
	// BinDir is the directory the binary is installed into. Empty means
	// the directory holding this front end's own executable.
	BinDir string `yaml:"bin_dir"`
}

// SetDefaults fills in any unset field with the packaged defaults.
func (c *Config) SetDefaults() {
	if c.Name == "" {
		c.Name = "lancedb-mcp-server"
	}
	if c.Repo == "" {
		c.Repo = "lancedb/lancedb-mcp-server"
	}
	if c.ReleaseHost == "" {
		c.ReleaseHost = "https://github.com"
	}
	if c.Version == "" {
		c.Version = PackagedVersion
	}
}

// Load reads and parses a config file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file: %s", path)
	}

	cfg.SetDefaults()
	return &cfg, nil
}

// Discover searches for the default config file in the current directory
// and its parents, returning the first match.
func Discover() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get current directory")
	}

	for {
		configPath := filepath.Join(dir, filepath.FromSlash(DefaultConfigPath))
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no %s found in the current directory or any parent", DefaultConfigPath)
}

// LoadOrDefault loads the config at path, or, if path is empty, a discovered
// default config file when one exists, or the packaged defaults when none
// does.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if discovered, err := Discover(); err == nil {
		return Load(discovered)
	}
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg, nil
}
