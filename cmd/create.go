package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/vcsbus/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	createSlug   string
	createFields []string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a repository project",
	Long: `Create a repository project on the target platform.

Conservative defaults apply: issues and wiki disabled, private
visibility. Explicit --field values override them key-by-key.
When no --slug is given one is derived from the name
("My Project!" becomes "my-project").`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	createCmd.Flags().StringVar(&createSlug, "slug", "", "Explicit URL slug (default: derived from name)")
	createCmd.Flags().StringArrayVar(&createFields, "field", nil,
		"Extra platform-specific payload field, key=value (repeatable)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	service, err := injectService()
	if err != nil {
		return err
	}

	fields, err := parseFields(createFields)
	if err != nil {
		return err
	}

	envelope, err := service.CreateProject(context.Background(), args[0], domain.ProjectOptions{
		Slug:   createSlug,
		Fields: fields,
	})
	printEnvelope(envelope)
	return err
}
