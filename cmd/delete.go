package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var deleteCmd = &cobra.Command{
	Use:   "delete <key> <slug>",
	Short: "Safe-delete a repository project",
	Long: `Delete a repository project on the target platform.

The project details are fetched first and its stored identifier is
compared against <slug>; only on an exact match is the destructive
call made. A mismatch refuses the deletion with a 400 and leaves
the project untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	service, err := injectService()
	if err != nil {
		return err
	}

	envelope, err := service.DeleteProject(context.Background(), args[0], args[1])
	printEnvelope(envelope)
	return err
}
