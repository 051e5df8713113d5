package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/vcsbus/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	deployKeyTitle string
	deployKeyFile  string
	deployKeyWrite bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var addKeyCmd = &cobra.Command{
	Use:   "add-key <project-id>",
	Short: "Add a deploy key to a project",
	Long: `Register an SSH deploy key on a project.

Keys are read-only unless --write is given. Bitbucket has no deploy
key API; targeting it fails immediately without any network call.`,
	Args: cobra.ExactArgs(1),
	RunE: runAddKey,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	addKeyCmd.Flags().StringVar(&deployKeyTitle, "title", "", "Human-readable key title")
	addKeyCmd.Flags().StringVar(&deployKeyFile, "key-file", "", "Path to the SSH public key file")
	addKeyCmd.Flags().BoolVar(&deployKeyWrite, "write", false, "Allow pushes with this key")
	rootCmd.AddCommand(addKeyCmd)
}

func runAddKey(cmd *cobra.Command, args []string) error {
	service, err := injectService()
	if err != nil {
		return err
	}

	material, err := os.ReadFile(deployKeyFile)
	if err != nil {
		return fmt.Errorf("failed to read key file %q: %w", deployKeyFile, err)
	}

	key := domain.DeployKey{
		Title:    deployKeyTitle,
		Key:      strings.TrimSpace(string(material)),
		ReadOnly: !deployKeyWrite,
	}
	if validateErr := validator.New().Struct(&key); validateErr != nil {
		return fmt.Errorf("invalid deploy key: %w", validateErr)
	}

	envelope, err := service.AddDeployKey(context.Background(), args[0], key)
	printEnvelope(envelope)
	return err
}
