package main

import (
	"fmt"
	"os"

	"github.com/niref/relbranch/internal/config"
	"github.com/niref/relbranch/internal/git"
	"github.com/niref/relbranch/internal/release"
)

var (
	configPath   string
	manifestPath string
)

// settings is the merged configuration for one invocation.
type settings struct {
	Dir string
	Cfg *config.Config
}

// loadSettings resolves the working directory and merges global config,
// repo config and command-line overrides.
func loadSettings() (*settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	repoRoot, err := git.FindRepoRoot(cwd)
	if err != nil {
		return nil, fmt.Errorf("not in a git repository")
	}

	path := configPath
	if path == "" {
		path = config.DefaultPaths().GlobalConfig
	}

	globalCfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	repoCfg, err := config.LoadRepoConfig(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("loading repo config: %w", err)
	}
	cfg := config.MergeConfigs(globalCfg, repoCfg)

	if manifestPath != "" {
		cfg.Manifest = manifestPath
	}

	return &settings{Dir: cwd, Cfg: cfg.WithDefaults()}, nil
}

func (s *settings) prefixes() release.Prefixes {
	return release.Prefixes{
		Release: s.Cfg.ReleasePrefix,
		Hotfix:  s.Cfg.HotfixPrefix,
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Override global config path")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "", "Manifest file holding the version (default package.json)")
}
