package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/stackgen/internal/config"
	"github.com/imamik/stackgen/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the configuration wizard.
	runWizard = wizard.RunWizard

	// buildSpec converts wizard answers into a spec.
	buildSpec = wizard.BuildSpec

	// writeSpec writes the spec to a file.
	writeSpec = wizard.WriteSpec
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	spec := buildSpec(result)

	if err := writeSpec(spec, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, spec)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("stackgen - Infrastructure Configuration Bootstrap")
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println("This wizard collects your cluster, service and pipeline settings")
	fmt.Println("and writes a project configuration with sensible defaults.")
	fmt.Println("Your GitHub token is never written to disk.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, spec *config.Spec) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Project Summary")
	fmt.Println("---------------")
	fmt.Printf("  Name:       %s\n", spec.Project)
	fmt.Printf("  Region:     %s\n", spec.Cluster.Region)
	fmt.Printf("  Nodes:      %d x %s\n", spec.Cluster.NodeCount, spec.Cluster.NodeSize)
	fmt.Printf("  Kubernetes: %s\n", spec.Cluster.KubernetesVersion)
	fmt.Printf("  Services:   %d\n", len(spec.Services))
	fmt.Printf("  Repository: %s/%s (%s)\n", spec.GitHub.Owner, spec.GitHub.Repo, spec.GitHub.Branch)
	fmt.Println()

	// Generated files
	fmt.Println("Generated Files")
	fmt.Println("---------------")
	fmt.Println("  - Terraform provisioning templates (deploy/terraform/)")
	fmt.Println("  - Kubernetes manifests (deploy/kubernetes/)")
	fmt.Println("  - CI pipeline definition (.github/workflows/ci.yaml)")
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Set your GitHub token:")
	fmt.Println("     export GITHUB_TOKEN=<your-token>")
	fmt.Println()
	fmt.Printf("  2. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  3. Push the configuration to your repository:")
	fmt.Println("     stackgen push")
	fmt.Println()
}
