package main

import (
	"fmt"
	"path/filepath"

	"github.com/niref/relbranch/internal/manifest"
	"github.com/niref/relbranch/internal/release"
	"github.com/spf13/cobra"
)

var nextPrintBranch bool

var nextCmd = &cobra.Command{
	Use:   "next <hotfix|minor|major>",
	Short: "Show the next version and branch name for a bump type",
	Long:  `Computes the bumped version and branch name without checking the current branch or touching git.`,
	Args:  cobra.ExactArgs(1),
	ValidArgs: []string{
		release.Hotfix.String(),
		release.Minor.String(),
		release.Major.String(),
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		bump, err := release.ParseBumpType(args[0])
		if err != nil {
			return err
		}

		s, err := loadSettings()
		if err != nil {
			return err
		}

		path := s.Cfg.Manifest
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.Dir, path)
		}
		current, err := manifest.ReadVersion(path)
		if err != nil {
			return err
		}

		plan, err := release.Plan(current, bump, s.prefixes())
		if err != nil {
			return err
		}

		if nextPrintBranch {
			fmt.Fprintln(cmd.OutOrStdout(), plan.Branch)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\t%s\n", plan.CurrentVersion, plan.NewVersion, plan.Branch)
		return nil
	},
}

func init() {
	nextCmd.Flags().BoolVar(&nextPrintBranch, "print-branch", false, "Only print the branch name")
	rootCmd.AddCommand(nextCmd)
}
