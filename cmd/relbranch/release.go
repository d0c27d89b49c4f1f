package main

import (
	"github.com/niref/relbranch/internal/release"
	"github.com/spf13/cobra"
)

var (
	releaseBranch    string
	releaseBumpType  string
	releaseAssumeYes bool
	releaseDryRun    bool
)

func runRelease(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	requiredBranch := s.Cfg.RequiredBranch
	if releaseBranch != "" {
		requiredBranch = releaseBranch
	}

	var bump release.BumpType
	if releaseBumpType != "" {
		bump, err = release.ParseBumpType(releaseBumpType)
		if err != nil {
			return err
		}
	}

	opts := release.Options{
		Dir:            s.Dir,
		RequiredBranch: requiredBranch,
		Manifest:       s.Cfg.Manifest,
		Prefixes:       s.prefixes(),
		Bump:           bump,
		AssumeYes:      releaseAssumeYes,
		DryRun:         releaseDryRun,
	}

	_, err = release.Run(opts, newPrompter(), cmd.OutOrStdout())
	return err
}

func init() {
	rootCmd.Flags().StringVar(&releaseBranch, "branch", "", "Branch that releases are cut from (default main)")
	rootCmd.Flags().StringVarP(&releaseBumpType, "type", "t", "", "Bump type: hotfix, minor or major (skips the prompt)")
	rootCmd.Flags().BoolVarP(&releaseAssumeYes, "yes", "y", false, "Create the branch without asking for confirmation")
	rootCmd.Flags().BoolVarP(&releaseDryRun, "dry-run", "n", false, "Show the git command without running it")
}
