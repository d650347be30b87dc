package wizard

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// projectNameRegex validates project names: 1-32 lowercase alphanumeric
// with hyphens.
var projectNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// runProjectGroup prompts for project name and region.
func runProjectGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Description("1-32 lowercase alphanumeric characters or hyphens").
				Placeholder("my-project").
				Value(&result.ProjectName).
				Validate(validateProjectName),
			huh.NewSelect[string]().
				Title("Region").
				Description("Datacenter region for the cluster").
				Options(RegionsToOptions()...).
				Value(&result.Region),
		).Title("Project Identity"),
	).RunWithContext(ctx)
}

// runClusterGroup prompts for node size, count and Kubernetes version.
func runClusterGroup(ctx context.Context, result *Result) error {
	result.NodeSize = "cpx21" // default
	result.NodeCount = 3

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Node Size").
				Description("Server type for cluster nodes").
				Options(NodeSizesToOptions()...).
				Value(&result.NodeSize),
			huh.NewSelect[int]().
				Title("Node Count").
				Description("Number of cluster nodes").
				Options(NodeCountOptions...).
				Value(&result.NodeCount),
			huh.NewSelect[string]().
				Title("Kubernetes Version").
				Options(VersionsToOptions(KubernetesVersions)...).
				Value(&result.KubernetesVersion),
		).Title("Cluster Shape"),
	).RunWithContext(ctx)
}

// runServicesGroup prompts for one or more containerized services.
func runServicesGroup(ctx context.Context, result *Result) error {
	for {
		var svc ServiceAnswer
		svc.Replicas = "2"

		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Service Name").
					Placeholder("api").
					Value(&svc.Name).
					Validate(validateServiceName),
				huh.NewInput().
					Title("Container Image").
					Placeholder("ghcr.io/acme/api:latest").
					Value(&svc.Image).
					Validate(validateImage),
				huh.NewInput().
					Title("Container Port").
					Placeholder("8080").
					Value(&svc.Port).
					Validate(validatePort),
				huh.NewInput().
					Title("Replicas").
					Value(&svc.Replicas).
					Validate(validateReplicas),
				huh.NewInput().
					Title("Ingress Host (Optional)").
					Description("Leave empty for a cluster-internal service").
					Placeholder("api.example.com").
					Value(&svc.IngressHost),
			).Title("Service"),
		).RunWithContext(ctx)
		if err != nil {
			return err
		}

		result.Services = append(result.Services, svc)

		var addAnother bool
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Add another service?").
					Value(&addAnother),
			),
		).RunWithContext(ctx)
		if err != nil {
			return err
		}
		if !addAnother {
			return nil
		}
	}
}

// runPipelineGroup prompts for CI/CD preferences.
func runPipelineGroup(ctx context.Context, result *Result) error {
	result.PipelineBranch = "main"
	result.Registry = "ghcr.io"
	result.RunTests = true
	result.BuildImages = true

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pipeline Branch").
				Description("Branch that triggers the CI pipeline").
				Value(&result.PipelineBranch),
			huh.NewConfirm().
				Title("Run tests in CI?").
				Value(&result.RunTests),
			huh.NewConfirm().
				Title("Build and push container images?").
				Value(&result.BuildImages),
			huh.NewInput().
				Title("Container Registry").
				Description("Registry for built images").
				Value(&result.Registry),
			huh.NewSelect[string]().
				Title("Go Version").
				Description("Toolchain version used by CI jobs").
				Options(VersionsToOptions(GoVersions)...).
				Value(&result.GoVersion),
		).Title("CI/CD Pipeline"),
	).RunWithContext(ctx)
}

// runGitHubGroup prompts for the target repository and access token.
func runGitHubGroup(ctx context.Context, result *Result) error {
	result.GitHubBranch = "main"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Repository Owner").
				Placeholder("acme").
				Value(&result.GitHubOwner).
				Validate(validateOwner),
			huh.NewInput().
				Title("Repository Name").
				Placeholder("infra").
				Value(&result.GitHubRepo).
				Validate(validateRepo),
			huh.NewInput().
				Title("Target Branch").
				Value(&result.GitHubBranch),
			huh.NewInput().
				Title("Access Token").
				Description("Token with write access to the repository. Not persisted.").
				EchoMode(huh.EchoModePassword).
				Value(&result.GitHubToken).
				Validate(validateToken),
		).Title("GitHub Connection"),
	).RunWithContext(ctx)
}

func validateProjectName(s string) error {
	if s == "" {
		return errProjectNameRequired
	}
	if !projectNameRegex.MatchString(s) {
		return errProjectNameInvalid
	}
	return nil
}

func validateServiceName(s string) error {
	if s == "" {
		return errServiceNameRequired
	}
	if !projectNameRegex.MatchString(s) {
		return errProjectNameInvalid
	}
	return nil
}

func validateImage(s string) error {
	if strings.TrimSpace(s) == "" {
		return errImageRequired
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 65535 {
		return errPortInvalid
	}
	return nil
}

func validateReplicas(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errReplicasInvalid
	}
	return nil
}

func validateOwner(s string) error {
	if strings.TrimSpace(s) == "" {
		return errOwnerRequired
	}
	return nil
}

func validateRepo(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRepoRequired
	}
	return nil
}

func validateToken(s string) error {
	if s == "" {
		return errTokenRequired
	}
	return nil
}
