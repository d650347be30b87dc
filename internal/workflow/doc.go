// Package workflow implements the validate-then-push workflow that
// publishes generated configuration to a GitHub repository.
//
// The workflow is a small state machine: connection details are
// collected, validated against the remote repository, and only after a
// successful validation may the generated files be pushed as a single
// commit. Every push re-runs validation first. Failures are converted to
// display messages and never propagate past the step boundary; the user
// may edit and retry indefinitely.
//
// The package is single-threaded by design: a Session is owned by one
// UI loop and must not be shared across goroutines.
package workflow
