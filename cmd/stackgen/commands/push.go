package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stackgen/cmd/stackgen/handlers"
)

// Push returns the command for validating repository access and pushing the
// generated configuration to GitHub.
//
// This command runs the full workflow: it validates the GitHub connection,
// generates all configuration files, and commits them to the target
// repository as a single commit.
//
// Flags:
//
//	--config, -c: Path to project configuration YAML file (default "stackgen.yaml")
//	--token, -t: GitHub personal access token (default: GITHUB_TOKEN environment variable)
//	--deploy-key: Generate an ed25519 deploy key and register it with the repository
func Push() *cobra.Command {
	var (
		configPath string
		token      string
		deployKey  bool
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push generated configuration to the GitHub repository",
		Long: `Validate repository access and push the generated configuration.

The token needs write access to the target repository. It is read from
the --token flag, the GITHUB_TOKEN environment variable, or an
interactive prompt, in that order. It is never stored on disk.

Access is always re-validated immediately before pushing, even if a
previous validation succeeded.

Examples:
  # Push using GITHUB_TOKEN from the environment
  stackgen push

  # Push with an explicit token and register a deploy key
  stackgen push -t ghp_xxx --deploy-key`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Push(cmd.Context(), configPath, token, deployKey)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "stackgen.yaml", "Path to configuration file")
	cmd.Flags().StringVarP(&token, "token", "t", "", "GitHub personal access token")
	cmd.Flags().BoolVar(&deployKey, "deploy-key", false, "Generate and register a repository deploy key")

	return cmd
}
