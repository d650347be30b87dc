// Package wizard provides the interactive configuration wizard for
// stackgen.
//
// This package implements a TUI-based wizard that guides users through
// describing a cluster, a set of containerized services, CI/CD
// preferences and the target GitHub repository. It uses
// charmbracelet/huh for form-based input collection.
//
// The main entry point is RunWizard, which orchestrates question groups
// and returns a Result. Use BuildSpec to convert results to a
// config.Spec, and WriteSpec to generate the YAML output file.
package wizard
