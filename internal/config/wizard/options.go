package wizard

import "github.com/charmbracelet/huh"

// RegionOption represents a datacenter region.
type RegionOption struct {
	Value       string
	Label       string
	Description string
}

// NodeSizeOption represents a cluster node server type.
type NodeSizeOption struct {
	Value       string
	Label       string
	Description string
}

// Regions contains all selectable datacenter regions.
var Regions = []RegionOption{
	{Value: "nbg1", Label: "nbg1", Description: "Nuremberg, Germany"},
	{Value: "fsn1", Label: "fsn1", Description: "Falkenstein, Germany"},
	{Value: "hel1", Label: "hel1", Description: "Helsinki, Finland"},
	{Value: "ash", Label: "ash", Description: "Ashburn, USA"},
	{Value: "hil", Label: "hil", Description: "Hillsboro, USA"},
	{Value: "sin", Label: "sin", Description: "Singapore"},
}

// NodeSizes contains the selectable node server types.
var NodeSizes = []NodeSizeOption{
	{Value: "cpx11", Label: "cpx11", Description: "2 vCPU, 2GB RAM (AMD)"},
	{Value: "cpx21", Label: "cpx21", Description: "3 vCPU, 4GB RAM (AMD)"},
	{Value: "cpx31", Label: "cpx31", Description: "4 vCPU, 8GB RAM (AMD)"},
	{Value: "cpx41", Label: "cpx41", Description: "8 vCPU, 16GB RAM (AMD)"},
	{Value: "cpx51", Label: "cpx51", Description: "16 vCPU, 32GB RAM (AMD)"},
	{Value: "cax11", Label: "cax11", Description: "2 vCPU, 4GB RAM (ARM)"},
	{Value: "cax21", Label: "cax21", Description: "4 vCPU, 8GB RAM (ARM)"},
	{Value: "cax31", Label: "cax31", Description: "8 vCPU, 16GB RAM (ARM)"},
	{Value: "cax41", Label: "cax41", Description: "16 vCPU, 32GB RAM (ARM)"},
}

// KubernetesVersions contains the selectable Kubernetes versions.
var KubernetesVersions = []string{
	"v1.32.0",
	"v1.31.4",
	"v1.30.8",
}

// NodeCountOptions contains the selectable cluster node counts.
var NodeCountOptions = []huh.Option[int]{
	huh.NewOption("1 (development)", 1),
	huh.NewOption("3 (recommended)", 3),
	huh.NewOption("5", 5),
	huh.NewOption("7", 7),
}

// GoVersions contains the selectable Go toolchain versions for CI.
var GoVersions = []string{
	"1.25",
	"1.24",
	"1.23",
}

// RegionsToOptions converts the region catalog to huh options.
func RegionsToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(Regions))
	for _, r := range Regions {
		opts = append(opts, huh.NewOption(r.Label+" - "+r.Description, r.Value))
	}
	return opts
}

// NodeSizesToOptions converts the node size catalog to huh options.
func NodeSizesToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(NodeSizes))
	for _, s := range NodeSizes {
		opts = append(opts, huh.NewOption(s.Label+" - "+s.Description, s.Value))
	}
	return opts
}

// VersionsToOptions converts a version list to huh options.
func VersionsToOptions(versions []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(versions))
	for _, v := range versions {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}
