// Package tui provides a Bubble Tea-based terminal UI for the push workflow.
package tui

// PhaseMsg reports progress of a push workflow phase.
type PhaseMsg struct {
	Phase string
	Done  bool
	Err   error
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the push completed, carrying the commit SHA.
type DoneMsg struct{ CommitSHA string }
