package wizard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/imamik/stackgen/internal/config"
)

func TestWriteSpec(t *testing.T) {
	spec := &config.Spec{
		Project: "shop",
		Cluster: config.ClusterSpec{
			Name: "shop", Region: "nbg1", NodeCount: 3,
			NodeSize: "cpx21", KubernetesVersion: "v1.32.0",
		},
		Services: []config.ServiceSpec{
			{Name: "api", Image: "api:1", Port: 8080, Replicas: 2},
		},
		Pipeline: config.PipelineSpec{Branch: "main", Registry: "ghcr.io", GoVersion: "1.25"},
		GitHub:   config.GitHubSpec{Token: "ghp_secret", Owner: "acme", Repo: "infra", Branch: "main"},
	}

	path := filepath.Join(t.TempDir(), "stackgen.yaml")
	if err := WriteSpec(spec, path); err != nil {
		t.Fatalf("WriteSpec: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "# stackgen configuration") {
		t.Error("output should start with the generated header")
	}
	if !strings.Contains(out, "project: shop") {
		t.Error("output should contain the project name")
	}
	if strings.Contains(out, "ghp_secret") {
		t.Error("token must never be written to the config file")
	}

	// The written file must load back cleanly.
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Project != "shop" {
		t.Errorf("reloaded project = %q", loaded.Project)
	}
}

func TestWriteSpecFilePermissions(t *testing.T) {
	spec := &config.Spec{Project: "shop"}
	path := filepath.Join(t.TempDir(), "stackgen.yaml")

	if err := WriteSpec(spec, path); err != nil {
		t.Fatalf("WriteSpec: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}
}
