package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Phase keys reported on the progress channel.
const (
	PhaseValidate = "validate"
	PhaseGenerate = "generate"
	PhasePush     = "push"
)

// Phase represents a single push workflow phase for display.
type Phase struct {
	Name   string
	Key    string
	Done   bool
	Active bool
	Err    error
}

// Model is the Bubble Tea model for the push TUI.
type Model struct {
	// Project info
	ProjectName string
	Repository  string

	// Workflow phases
	Phases     []Phase
	PhasesDone bool

	// Result
	CommitSHA string

	// Animation
	SpinnerFrame int

	// UI state
	Width  int
	Height int
	Err    error
	Done   bool

	StartTime time.Time
}

// NewPushModel creates a model for the push command TUI.
func NewPushModel(projectName, repository string) Model {
	return Model{
		ProjectName: projectName,
		Repository:  repository,
		StartTime:   time.Now(),
		Phases: []Phase{
			{Name: "Validate repository access", Key: PhaseValidate},
			{Name: "Generate configuration files", Key: PhaseGenerate},
			{Name: "Push commit", Key: PhasePush},
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case PhaseMsg:
		m.updatePhase(msg)
		if msg.Err != nil {
			m.Err = msg.Err
			return m, tea.Quit
		}

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		m.CommitSHA = msg.CommitSHA
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) updatePhase(msg PhaseMsg) {
	idx := -1
	for i, phase := range m.Phases {
		if phase.Key == msg.Phase {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// Mark previous phases as done
	for i := 0; i < idx; i++ {
		m.Phases[i].Done = true
		m.Phases[i].Active = false
	}

	if msg.Done {
		m.Phases[idx].Done = true
		m.Phases[idx].Active = false
		if idx == len(m.Phases)-1 {
			m.PhasesDone = true
		}
	} else {
		m.Phases[idx].Active = true
	}

	if msg.Err != nil {
		m.Phases[idx].Err = msg.Err
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
