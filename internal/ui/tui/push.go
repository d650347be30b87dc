package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunPushTUI wraps the push workflow with a Bubble Tea TUI.
// pushFn runs the workflow, sending phase updates on the channel and
// returning the commit SHA on success.
// The returned string is the commit SHA of the pushed configuration.
func RunPushTUI(pushFn func(ch chan<- PhaseMsg) (string, error), projectName, repository string) (string, error) {
	m := NewPushModel(projectName, repository)

	p := tea.NewProgram(m)

	// Run the workflow in a background goroutine
	go func() {
		ch := make(chan PhaseMsg, 10)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for msg := range ch {
				p.Send(msg)
			}
		}()

		sha, err := pushFn(ch)
		close(ch)
		<-done
		if err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{CommitSHA: sha})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return "", fm.Err
	}
	return fm.CommitSHA, nil
}
