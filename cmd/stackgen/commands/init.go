package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stackgen/cmd/stackgen/handlers"
)

// Init returns the command for interactively creating a project configuration.
//
// This command guides users through creating a project configuration YAML file
// using an interactive wizard with text inputs and select prompts.
//
// Flags:
//
//	--output, -o: Path to output file (default "stackgen.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a project configuration",
		Long: `Interactively create a project configuration file.

This command guides you through configuring your infrastructure
step by step. It will ask about:

  - Project identity (name and region)
  - Cluster sizing (node size, count, Kubernetes version)
  - Services to deploy (image, port, replicas, ingress host)
  - CI pipeline settings (branch, registry, Go version)
  - GitHub repository connection (owner, repository, branch)

The GitHub token is never written to the configuration file. Provide
it at push time via the --token flag or the GITHUB_TOKEN environment
variable.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "stackgen.yaml", "Output file path")

	return cmd
}
