package generate

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/imamik/stackgen/internal/config"
)

const workflowPath = ".github/workflows/ci.yaml"

// workflow is the declarative model of a GitHub Actions workflow file.
type workflow struct {
	Name string                 `yaml:"name"`
	On   workflowTriggers       `yaml:"on"`
	Jobs map[string]workflowJob `yaml:"jobs"`
}

type workflowTriggers struct {
	Push        branchFilter  `yaml:"push"`
	PullRequest *branchFilter `yaml:"pull_request,omitempty"`
}

type branchFilter struct {
	Branches []string `yaml:"branches"`
}

type workflowJob struct {
	RunsOn      string            `yaml:"runs-on"`
	Needs       []string          `yaml:"needs,omitempty"`
	Permissions map[string]string `yaml:"permissions,omitempty"`
	Steps       []workflowStep    `yaml:"steps"`
}

type workflowStep struct {
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
	Run  string            `yaml:"run,omitempty"`
}

// Pipeline generates the CI workflow definition from pipeline
// preferences.
func Pipeline(spec *config.Spec) (FileMap, error) {
	p := spec.Pipeline

	wf := workflow{
		Name: spec.Project,
		On: workflowTriggers{
			Push:        branchFilter{Branches: []string{p.Branch}},
			PullRequest: &branchFilter{Branches: []string{p.Branch}},
		},
		Jobs: map[string]workflowJob{},
	}

	if p.RunTests {
		wf.Jobs["test"] = workflowJob{
			RunsOn: "ubuntu-latest",
			Steps: []workflowStep{
				{Uses: "actions/checkout@v4"},
				{
					Uses: "actions/setup-go@v5",
					With: map[string]string{"go-version": p.GoVersion},
				},
				{Name: "Run tests", Run: "go test ./..."},
			},
		}
	}

	if p.BuildImages {
		job := workflowJob{
			RunsOn: "ubuntu-latest",
			Permissions: map[string]string{
				"contents": "read",
				"packages": "write",
			},
			Steps: []workflowStep{
				{Uses: "actions/checkout@v4"},
				{
					Name: "Log in to registry",
					Uses: "docker/login-action@v3",
					With: map[string]string{
						"registry": p.Registry,
						"username": "${{ github.actor }}",
						"password": "${{ secrets.GITHUB_TOKEN }}",
					},
				},
			},
		}
		if p.RunTests {
			job.Needs = []string{"test"}
		}
		for _, svc := range spec.Services {
			image := imageRef(p.Registry, spec.Project, svc.Name)
			job.Steps = append(job.Steps, workflowStep{
				Name: fmt.Sprintf("Build and push %s", svc.Name),
				Run: strings.Join([]string{
					fmt.Sprintf("docker build -t %s:${{ github.sha }} ./%s", image, svc.Name),
					fmt.Sprintf("docker push %s:${{ github.sha }}", image),
				}, "\n"),
			})
		}
		wf.Jobs["build"] = job
	}

	if len(wf.Jobs) == 0 {
		// A workflow without jobs is rejected by GitHub; emit a noop
		// lint job so the generated file is always valid.
		wf.Jobs["lint"] = workflowJob{
			RunsOn: "ubuntu-latest",
			Steps: []workflowStep{
				{Uses: "actions/checkout@v4"},
				{Name: "Validate manifests", Run: "find deploy -name '*.yaml' -print"},
			},
		}
	}

	data, err := yaml.Marshal(wf)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workflow: %w", err)
	}

	return FileMap{workflowPath: string(data)}, nil
}

// imageRef builds the fully qualified image reference for a service.
func imageRef(registry, project, service string) string {
	return fmt.Sprintf("%s/%s/%s", registry, project, service)
}
