package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Project Identity
	ProjectName string
	Region      string

	// Cluster Shape
	NodeSize          string
	NodeCount         int
	KubernetesVersion string

	// Services
	Services []ServiceAnswer

	// Pipeline
	PipelineBranch string
	Registry       string
	RunTests       bool
	BuildImages    bool
	GoVersion      string

	// GitHub Connection
	GitHubOwner  string
	GitHubRepo   string
	GitHubBranch string
	GitHubToken  string
}

// ServiceAnswer holds the raw answers for a single service. Numeric
// fields are collected as text and parsed by the builder.
type ServiceAnswer struct {
	Name        string
	Image       string
	Port        string
	Replicas    string
	IngressHost string
}

// RunWizard runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runProjectGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("project identity: %w", err)
	}

	if err := runClusterGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("cluster shape: %w", err)
	}

	if err := runServicesGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("services: %w", err)
	}

	if err := runPipelineGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	if err := runGitHubGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("github connection: %w", err)
	}

	return result, nil
}
