// Package config defines the configuration model collected by the
// stackgen wizard.
//
// The [Spec] struct is the canonical representation of a deployment's
// desired state: the target cluster shape, the containerized services to
// run on it, and CI/CD pipeline preferences. It is produced by the
// interactive wizard and consumed by the file generators and the push
// workflow. The GitHub connection (token, owner, repo) lives alongside
// the spec but the token is never written to disk.
package config
