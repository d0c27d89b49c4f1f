package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relbranch",
	Short: "Create release and hotfix branches from the manifest version",
	Long: `Checks that you are on the release base branch, reads the version from the
manifest (package.json by default), asks for a bump type and creates the
matching release/<version> or hotfix/<version> branch.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRelease,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
