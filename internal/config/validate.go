package config

import (
	"fmt"
	"regexp"
	"sort"
)

// ValidRegions contains all supported datacenter regions.
var ValidRegions = map[string]bool{
	"nbg1": true, // Nuremberg, Germany
	"fsn1": true, // Falkenstein, Germany
	"hel1": true, // Helsinki, Finland
	"ash":  true, // Ashburn, USA
	"hil":  true, // Hillsboro, USA
	"sin":  true, // Singapore
}

// ValidNodeSizes contains all supported node server types.
var ValidNodeSizes = map[string]bool{
	"cpx11": true,
	"cpx21": true,
	"cpx31": true,
	"cpx41": true,
	"cpx51": true,
	"cax11": true,
	"cax21": true,
	"cax31": true,
	"cax41": true,
}

// nameRegex validates resource names: 1-32 lowercase alphanumeric with
// hyphens, starting and ending with alphanumeric.
var nameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// Validate checks the spec for common errors and returns a detailed
// error if validation fails.
func (s *Spec) Validate() error {
	if s.Project == "" {
		return fmt.Errorf("project is required")
	}
	if !nameRegex.MatchString(s.Project) {
		return fmt.Errorf("invalid project name %q: must be 1-32 lowercase alphanumeric characters or hyphens", s.Project)
	}

	if err := s.validateCluster(); err != nil {
		return fmt.Errorf("cluster validation failed: %w", err)
	}
	if err := s.validateServices(); err != nil {
		return fmt.Errorf("service validation failed: %w", err)
	}
	if err := s.validatePipeline(); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}
	return nil
}

func (s *Spec) validateCluster() error {
	c := s.Cluster
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !nameRegex.MatchString(c.Name) {
		return fmt.Errorf("invalid cluster name %q", c.Name)
	}
	if !ValidRegions[c.Region] {
		return fmt.Errorf("invalid region %q: must be one of %v", c.Region, getMapKeys(ValidRegions))
	}
	if !ValidNodeSizes[c.NodeSize] {
		return fmt.Errorf("invalid node size %q: must be one of %v", c.NodeSize, getMapKeys(ValidNodeSizes))
	}
	if c.NodeCount < 1 {
		return fmt.Errorf("node count must be at least 1, got %d", c.NodeCount)
	}
	if c.KubernetesVersion == "" {
		return fmt.Errorf("kubernetes version is required")
	}
	return nil
}

func (s *Spec) validateServices() error {
	seen := make(map[string]bool, len(s.Services))
	for _, svc := range s.Services {
		if svc.Name == "" {
			return fmt.Errorf("service name is required")
		}
		if !nameRegex.MatchString(svc.Name) {
			return fmt.Errorf("invalid service name %q", svc.Name)
		}
		if seen[svc.Name] {
			return fmt.Errorf("duplicate service name %q", svc.Name)
		}
		seen[svc.Name] = true
		if svc.Image == "" {
			return fmt.Errorf("service %s: image is required", svc.Name)
		}
		if svc.Port < 1 || svc.Port > 65535 {
			return fmt.Errorf("service %s: port %d out of range", svc.Name, svc.Port)
		}
		if svc.Replicas < 1 {
			return fmt.Errorf("service %s: replicas must be at least 1", svc.Name)
		}
	}
	return nil
}

func (s *Spec) validatePipeline() error {
	if s.Pipeline.Branch == "" {
		return fmt.Errorf("branch is required")
	}
	if s.Pipeline.BuildImages && s.Pipeline.Registry == "" {
		return fmt.Errorf("registry is required when image builds are enabled")
	}
	return nil
}

// getMapKeys returns the sorted keys of a validation map for error messages.
func getMapKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
