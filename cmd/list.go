package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the authenticated user's projects",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	service, err := injectService()
	if err != nil {
		return err
	}

	envelope, err := service.ListProjects(context.Background())
	printEnvelope(envelope)
	return err
}
