package config

// Default values applied to fields the user left empty.
const (
	DefaultRegion            = "nbg1"
	DefaultNodeCount         = 3
	DefaultNodeSize          = "cpx21"
	DefaultKubernetesVersion = "v1.32.0"
	DefaultBranch            = "main"
	DefaultRegistry          = "ghcr.io"
	DefaultGoVersion         = "1.25"
	DefaultReplicas          = 2
)

// ApplyDefaults fills empty fields with sensible defaults.
func (s *Spec) ApplyDefaults() {
	if s.Cluster.Region == "" {
		s.Cluster.Region = DefaultRegion
	}
	if s.Cluster.NodeCount == 0 {
		s.Cluster.NodeCount = DefaultNodeCount
	}
	if s.Cluster.NodeSize == "" {
		s.Cluster.NodeSize = DefaultNodeSize
	}
	if s.Cluster.KubernetesVersion == "" {
		s.Cluster.KubernetesVersion = DefaultKubernetesVersion
	}
	if s.Cluster.Name == "" {
		s.Cluster.Name = s.Project
	}
	if s.Pipeline.Branch == "" {
		s.Pipeline.Branch = DefaultBranch
	}
	if s.Pipeline.Registry == "" {
		s.Pipeline.Registry = DefaultRegistry
	}
	if s.Pipeline.GoVersion == "" {
		s.Pipeline.GoVersion = DefaultGoVersion
	}
	if s.GitHub.Branch == "" {
		s.GitHub.Branch = DefaultBranch
	}
	for i := range s.Services {
		if s.Services[i].Replicas == 0 {
			s.Services[i].Replicas = DefaultReplicas
		}
	}
}
