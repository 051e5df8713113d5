package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var detailsCmd = &cobra.Command{
	Use:   "details <key>",
	Short: "Show the details of a single project",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetails,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(detailsCmd)
}

func runDetails(cmd *cobra.Command, args []string) error {
	service, err := injectService()
	if err != nil {
		return err
	}

	envelope, err := service.ProjectDetails(context.Background(), args[0])
	printEnvelope(envelope)
	return err
}
