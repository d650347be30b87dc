package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imamik/stackgen/internal/config"
)

// WriteSpec writes the spec to a YAML file with a descriptive header.
// The GitHub token is excluded from output by the Spec marshaling rules.
func WriteSpec(spec *config.Spec, outputPath string) error {
	yamlBytes, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// generateHeader returns the comment header for generated config files.
func generateHeader(outputPath string) string {
	var sb strings.Builder
	sb.WriteString("# stackgen configuration\n")
	sb.WriteString(fmt.Sprintf("# Generated by the stackgen wizard on %s\n", time.Now().Format("2006-01-02")))
	sb.WriteString("#\n")
	sb.WriteString("# The GitHub access token is intentionally not stored here.\n")
	sb.WriteString(fmt.Sprintf("# Edit this file and run 'stackgen push -c %s' to publish.\n", outputPath))
	return sb.String()
}
