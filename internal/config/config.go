package config

// Spec is the root configuration document produced by the wizard.
type Spec struct {
	// Project is the name used to group all generated resources.
	Project string `yaml:"project"`

	// Cluster describes the target Kubernetes cluster.
	Cluster ClusterSpec `yaml:"cluster"`

	// Services lists the containerized services to deploy.
	Services []ServiceSpec `yaml:"services"`

	// Pipeline holds CI/CD preferences.
	Pipeline PipelineSpec `yaml:"pipeline"`

	// GitHub holds the target repository coordinates. The token is
	// transient wizard state and is never marshaled.
	GitHub GitHubSpec `yaml:"github"`
}

// ClusterSpec describes the cloud cluster to provision.
type ClusterSpec struct {
	Name              string `yaml:"name"`
	Region            string `yaml:"region"`
	NodeCount         int    `yaml:"node_count"`
	NodeSize          string `yaml:"node_size"`
	KubernetesVersion string `yaml:"kubernetes_version"`
}

// ServiceSpec describes a single containerized service.
type ServiceSpec struct {
	Name        string            `yaml:"name"`
	Image       string            `yaml:"image"`
	Port        int32             `yaml:"port"`
	Replicas    int32             `yaml:"replicas"`
	Env         map[string]string `yaml:"env,omitempty"`
	IngressHost string            `yaml:"ingress_host,omitempty"`
}

// PipelineSpec holds continuous-integration preferences.
type PipelineSpec struct {
	Branch      string `yaml:"branch"`
	Registry    string `yaml:"registry"`
	RunTests    bool   `yaml:"run_tests"`
	BuildImages bool   `yaml:"build_images"`
	GoVersion   string `yaml:"go_version"`
}

// GitHubSpec holds credentials and coordinates for the target repository.
//
// Token is deliberately excluded from YAML output: it exists only for the
// lifetime of a wizard session and is supplied again on each push.
type GitHubSpec struct {
	Token  string `yaml:"-"`
	Owner  string `yaml:"owner"`
	Repo   string `yaml:"repo"`
	Branch string `yaml:"branch"`
}

// HasConnectionFields reports whether token, owner and repo are all set.
func (g GitHubSpec) HasConnectionFields() bool {
	return g.Token != "" && g.Owner != "" && g.Repo != ""
}
