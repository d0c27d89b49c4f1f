package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Defaults used when neither the global nor the repo config sets a value.
const (
	DefaultRequiredBranch = "main"
	DefaultManifest       = "package.json"
	DefaultReleasePrefix  = "release"
	DefaultHotfixPrefix   = "hotfix"
)

// RepoConfigFile is the per-repository config file name, looked up in the repo root.
const RepoConfigFile = ".relbranch.toml"

// Config represents relbranch configuration from TOML files
type Config struct {
	RequiredBranch string `toml:"required_branch"`
	Manifest       string `toml:"manifest"`
	ReleasePrefix  string `toml:"release_prefix"`
	HotfixPrefix   string `toml:"hotfix_prefix"`
}

// LoadGlobalConfig loads config from the given path.
// Returns empty config if file doesn't exist.
func LoadGlobalConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadRepoConfig loads .relbranch.toml from the given repo root.
// Returns empty config if file doesn't exist.
func LoadRepoConfig(repoRoot string) (*Config, error) {
	path := filepath.Join(repoRoot, RepoConfigFile)
	return LoadGlobalConfig(path)
}

// MergeConfigs combines global and repo configs.
// Non-empty repo values override global ones.
func MergeConfigs(global, repo *Config) *Config {
	merged := &Config{}

	for _, src := range []*Config{global, repo} {
		if src == nil {
			continue
		}
		if src.RequiredBranch != "" {
			merged.RequiredBranch = src.RequiredBranch
		}
		if src.Manifest != "" {
			merged.Manifest = src.Manifest
		}
		if src.ReleasePrefix != "" {
			merged.ReleasePrefix = src.ReleasePrefix
		}
		if src.HotfixPrefix != "" {
			merged.HotfixPrefix = src.HotfixPrefix
		}
	}

	return merged
}

// WithDefaults returns a copy of c with unset fields filled in.
func (c *Config) WithDefaults() *Config {
	out := &Config{}
	if c != nil {
		*out = *c
	}
	if out.RequiredBranch == "" {
		out.RequiredBranch = DefaultRequiredBranch
	}
	if out.Manifest == "" {
		out.Manifest = DefaultManifest
	}
	if out.ReleasePrefix == "" {
		out.ReleasePrefix = DefaultReleasePrefix
	}
	if out.HotfixPrefix == "" {
		out.HotfixPrefix = DefaultHotfixPrefix
	}
	return out
}

// Paths holds default file/directory paths
type Paths struct {
	GlobalConfig string
}

// DefaultPaths returns XDG-compliant default paths
func DefaultPaths() Paths {
	home := os.Getenv("HOME")

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	return Paths{
		GlobalConfig: filepath.Join(configHome, "relbranch", "config.toml"),
	}
}
