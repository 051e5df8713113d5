package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/vcsbus/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	updateSlug   string
	updateFields []string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var updateCmd = &cobra.Command{
	Use:   "update <key>",
	Short: "Update a repository project",
	Long: `Update an existing repository project on the target platform.

The key identifies the project (repository name or numeric ID,
platform-dependent). Fields are passed through to the platform
unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	updateCmd.Flags().StringVar(&updateSlug, "slug", "", "New URL slug (platforms that support renaming)")
	updateCmd.Flags().StringArrayVar(&updateFields, "field", nil,
		"Platform-specific payload field, key=value (repeatable)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	service, err := injectService()
	if err != nil {
		return err
	}

	fields, err := parseFields(updateFields)
	if err != nil {
		return err
	}

	envelope, err := service.UpdateProject(context.Background(), args[0], domain.ProjectOptions{
		Slug:   updateSlug,
		Fields: fields,
	})
	printEnvelope(envelope)
	return err
}
