// Package generate turns a config.Spec into static infrastructure files.
//
// Each generator is a pure function from the spec to a FileMap of
// relative path to file content: Terraform provisioning templates for
// the cluster, Kubernetes manifests for the services, and a GitHub
// Actions workflow for the pipeline. Generate combines all three.
package generate
