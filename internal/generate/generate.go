package generate

import (
	"fmt"

	"github.com/imamik/stackgen/internal/config"
)

// Generate runs all file generators and merges their output into a
// single FileMap keyed by repository-relative path.
func Generate(spec *config.Spec) (FileMap, error) {
	files := FileMap{}

	tf, err := Terraform(spec)
	if err != nil {
		return nil, fmt.Errorf("terraform generation failed: %w", err)
	}
	files.Merge(tf)

	k8s, err := Kubernetes(spec)
	if err != nil {
		return nil, fmt.Errorf("kubernetes generation failed: %w", err)
	}
	files.Merge(k8s)

	ci, err := Pipeline(spec)
	if err != nil {
		return nil, fmt.Errorf("pipeline generation failed: %w", err)
	}
	files.Merge(ci)

	return files, nil
}
