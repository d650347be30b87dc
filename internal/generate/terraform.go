package generate

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/imamik/stackgen/internal/config"
)

//go:embed templates/*.tf.tmpl
var terraformFS embed.FS

const terraformDir = "deploy/terraform"

// regionZones maps datacenter regions to their network zones.
var regionZones = map[string]string{
	"nbg1": "eu-central",
	"fsn1": "eu-central",
	"hel1": "eu-central",
	"ash":  "us-east",
	"hil":  "us-west",
	"sin":  "ap-southeast",
}

// terraformData is the template input derived from the cluster spec.
type terraformData struct {
	Name        string
	Region      string
	NetworkZone string
	NodeCount   int
	NodeSize    string
}

// Terraform generates the cloud provisioning templates for the cluster.
func Terraform(spec *config.Spec) (FileMap, error) {
	zone, ok := regionZones[spec.Cluster.Region]
	if !ok {
		return nil, fmt.Errorf("no network zone known for region %q", spec.Cluster.Region)
	}

	data := terraformData{
		Name:        spec.Cluster.Name,
		Region:      spec.Cluster.Region,
		NetworkZone: zone,
		NodeCount:   spec.Cluster.NodeCount,
		NodeSize:    spec.Cluster.NodeSize,
	}

	entries, err := terraformFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	files := FileMap{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tf.tmpl") {
			continue
		}

		content, err := terraformFS.ReadFile(path.Join("templates", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}

		rendered, err := renderTemplate(entry.Name(), content, data)
		if err != nil {
			return nil, err
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		files[path.Join(terraformDir, outName)] = rendered
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no terraform templates found")
	}

	return files, nil
}

// renderTemplate processes a template file with the provided data.
func renderTemplate(name string, content []byte, data any) (string, error) {
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
