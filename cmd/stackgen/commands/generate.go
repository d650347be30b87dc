package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stackgen/cmd/stackgen/handlers"
)

// Generate returns the command for rendering configuration files locally.
//
// This command loads the project configuration, generates Terraform
// templates, Kubernetes manifests and the CI pipeline definition, and
// writes them to a local directory instead of pushing them to GitHub.
//
// Flags:
//
//	--config, -c: Path to project configuration YAML file (default "stackgen.yaml")
//	--output, -o: Directory to write generated files into (default ".")
func Generate() *cobra.Command {
	var (
		configPath string
		outputDir  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate configuration files locally",
		Long: `Generate all infrastructure configuration files locally.

This renders the same file set that 'stackgen push' would commit:

  - Terraform provisioning templates (deploy/terraform/)
  - Kubernetes manifests (deploy/kubernetes/)
  - CI pipeline definition (.github/workflows/ci.yaml)

Examples:
  # Generate into the current directory
  stackgen generate

  # Generate from a specific config into ./out
  stackgen generate -c production.yaml -o out`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Generate(configPath, outputDir)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "stackgen.yaml", "Path to configuration file")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory to write generated files into")

	return cmd
}
