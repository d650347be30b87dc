package wizard

import (
	"strconv"
	"strings"

	"github.com/imamik/stackgen/internal/config"
)

// BuildSpec converts wizard answers into a config.Spec.
// Numeric answers were already validated by the form, so parse failures
// fall back to defaults rather than erroring.
func BuildSpec(result *Result) *config.Spec {
	spec := &config.Spec{
		Project: result.ProjectName,
		Cluster: config.ClusterSpec{
			Name:              result.ProjectName,
			Region:            result.Region,
			NodeCount:         result.NodeCount,
			NodeSize:          result.NodeSize,
			KubernetesVersion: result.KubernetesVersion,
		},
		Pipeline: config.PipelineSpec{
			Branch:      result.PipelineBranch,
			Registry:    result.Registry,
			RunTests:    result.RunTests,
			BuildImages: result.BuildImages,
			GoVersion:   result.GoVersion,
		},
		GitHub: config.GitHubSpec{
			Token:  result.GitHubToken,
			Owner:  strings.TrimSpace(result.GitHubOwner),
			Repo:   strings.TrimSpace(result.GitHubRepo),
			Branch: result.GitHubBranch,
		},
	}

	for _, svc := range result.Services {
		spec.Services = append(spec.Services, config.ServiceSpec{
			Name:        svc.Name,
			Image:       strings.TrimSpace(svc.Image),
			Port:        parseInt32(svc.Port, 8080),
			Replicas:    parseInt32(svc.Replicas, config.DefaultReplicas),
			IngressHost: strings.TrimSpace(svc.IngressHost),
		})
	}

	spec.ApplyDefaults()

	return spec
}

// parseInt32 parses a form answer, returning fallback on failure.
func parseInt32(s string, fallback int32) int32 {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fallback
	}
	return int32(n)
}
