package cmd

import (
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath    string
	providerName  string
	tokenOverride string
	verbose       bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "vcsbus",
	Short: "Uniform project management across hosted VCS platforms",
	Long: `A CLI that manages source-code repository projects on GitHub, GitLab
and Bitbucket through a single uniform interface.

The same six operations (create, update, safe-delete, list, details,
add deploy key) work on every platform; the platform-specific request
shapes, payload fields and endpoint paths are handled internally.

Deletion is always slug-gated: the project is fetched first and only
deleted when the supplied slug matches its stored identifier.`,
}

func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&providerName, "provider", "p", "",
		"Platform to target (github, gitlab, bitbucket); defaults to the first configured one")
	rootCmd.PersistentFlags().StringVar(&tokenOverride, "token", "",
		"Bearer token (bypasses the config file; requires --provider)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}
