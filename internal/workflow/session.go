package workflow

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/statekit"
	"github.com/go-logr/logr"

	"github.com/imamik/stackgen/internal/config"
	"github.com/imamik/stackgen/internal/platform/github"
)

// State represents the wizard step the session is in.
type State string

const (
	// StateCollecting indicates connection fields are being edited.
	StateCollecting State = "collecting"
	// StateValidating indicates the access check is running.
	StateValidating State = "validating"
	// StateValidated indicates the connection passed validation.
	StateValidated State = "validated"
	// StatePushing indicates the upload is running.
	StatePushing State = "pushing"
	// StatePushed indicates the commit landed; the next step is unlocked.
	StatePushed State = "pushed"
	// StateErrored indicates the last validation or push failed.
	StateErrored State = "errored"
)

// Event types for the session state machine.
const (
	EventEdit     = "EDIT"
	EventValidate = "VALIDATE"
	EventValid    = "VALID"
	EventInvalid  = "INVALID"
	EventPush     = "PUSH"
	EventPushed   = "PUSHED"
	EventFail     = "FAIL"
)

// sessionContext is the statekit context for the session machine.
type sessionContext struct {
	LastFailure string
}

// Session drives a single wizard user's validate-then-push workflow and
// gates forward navigation. It is not safe for concurrent use; the
// owning UI loop serializes all calls, and a Validate or Push triggered
// while another call would be in flight is a no-op (the UI disables the
// buttons while busy).
type Session struct {
	interp    *statekit.Interpreter[sessionContext]
	validator *Validator
	pusher    *Pusher
	spec      *config.Spec

	validation ValidationResult
	push       PushResult
	log        logr.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger shared by the session, validator and pusher.
func WithLogger(log logr.Logger) SessionOption {
	return func(s *Session) {
		s.log = log
	}
}

// WithSessionGenerateFunc overrides the file generation function.
func WithSessionGenerateFunc(fn GenerateFunc) SessionOption {
	return func(s *Session) {
		s.pusher.generate = fn
	}
}

// NewSession creates a session for the given spec backed by the
// repository manager.
func NewSession(spec *config.Spec, manager github.RepositoryManager, opts ...SessionOption) (*Session, error) {
	s := &Session{
		spec:       spec,
		validation: ValidationResult{Status: ValidationIdle},
		push:       PushResult{Status: PushIdle},
		log:        logr.Discard(),
	}
	s.validator = NewValidator(manager)
	s.pusher = NewPusher(s.validator, manager)

	for _, opt := range opts {
		opt(s)
	}
	s.validator.log = s.log
	s.pusher.log = s.log

	interp, err := buildSessionMachine()
	if err != nil {
		return nil, fmt.Errorf("failed to build state machine: %w", err)
	}
	s.interp = interp
	s.interp.Start()

	return s, nil
}

// buildSessionMachine constructs the step-gating state machine.
func buildSessionMachine() (*statekit.Interpreter[sessionContext], error) {
	machine, err := statekit.NewMachine[sessionContext]("stackgen-push").
		WithInitial(statekit.StateID(StateCollecting)).
		WithContext(sessionContext{}).
		WithAction("recordFailure", func(c *sessionContext, event statekit.Event) {
			if payload, ok := event.Payload.(map[string]interface{}); ok {
				if msg, ok := payload["message"].(string); ok {
					c.LastFailure = msg
				}
			}
		}).
		// Collecting: fields are editable, validation may start.
		State(statekit.StateID(StateCollecting)).
		On(EventEdit).Target(statekit.StateID(StateCollecting)).
		On(EventValidate).Target(statekit.StateID(StateValidating)).Done().
		// Validating: exactly one access check in flight.
		State(statekit.StateID(StateValidating)).
		On(EventValid).Target(statekit.StateID(StateValidated)).
		On(EventInvalid).Target(statekit.StateID(StateErrored)).Done().
		// Validated: push unlocked, revalidation and edits allowed.
		State(statekit.StateID(StateValidated)).
		On(EventPush).Target(statekit.StateID(StatePushing)).
		On(EventValidate).Target(statekit.StateID(StateValidating)).
		On(EventEdit).Target(statekit.StateID(StateCollecting)).Done().
		// Pushing: one upload in flight.
		State(statekit.StateID(StatePushing)).
		On(EventPushed).Target(statekit.StateID(StatePushed)).
		On(EventFail).Target(statekit.StateID(StateErrored)).Done().
		// Pushed: forward navigation unlocked; editing starts over.
		State(statekit.StateID(StatePushed)).
		On(EventEdit).Target(statekit.StateID(StateCollecting)).Done().
		// Errored: the user may edit and retry indefinitely.
		State(statekit.StateID(StateErrored)).
		OnEntry("recordFailure").
		On(EventEdit).Target(statekit.StateID(StateCollecting)).
		On(EventValidate).Target(statekit.StateID(StateValidating)).Done().
		Build()

	if err != nil {
		return nil, err
	}

	return statekit.NewInterpreter(machine), nil
}

// State returns the current wizard step.
func (s *Session) State() State {
	return State(s.interp.State().Value)
}

// ValidationStatus projects the current validation status for the UI.
func (s *Session) ValidationStatus() ValidationStatus {
	if s.State() == StateValidating {
		return ValidationValidating
	}
	return s.validation.Status
}

// PushStatus projects the current push status for the UI.
func (s *Session) PushStatus() PushStatus {
	if s.State() == StatePushing {
		return PushInProgress
	}
	return s.push.Status
}

// Message returns the display message of the last failed step, if any.
func (s *Session) Message() string {
	if s.push.Status == PushError {
		return s.push.Message
	}
	if s.validation.Status == ValidationInvalid {
		return s.validation.Message
	}
	return ""
}

// CanAdvance reports whether forward navigation is unlocked.
func (s *Session) CanAdvance() bool {
	return s.State() == StatePushed
}

// SetConnection updates the connection fields. Any edit resets the
// validation and push outcomes to idle.
func (s *Session) SetConnection(conn config.GitHubSpec) {
	s.spec.GitHub = conn
	s.validation = ValidationResult{Status: ValidationIdle}
	s.push = PushResult{Status: PushIdle}
	s.interp.Send(statekit.Event{Type: EventEdit})
}

// Validate runs the access check. A call while no validation is allowed
// from the current step (for example mid-push) is a no-op and returns
// the previous result.
func (s *Session) Validate(ctx context.Context) ValidationResult {
	switch s.State() {
	case StateCollecting, StateValidated, StateErrored:
	default:
		return s.validation
	}

	s.interp.Send(statekit.Event{Type: EventValidate})
	s.validation = s.validator.Validate(ctx, s.spec.GitHub)

	if s.validation.Status == ValidationValid {
		s.interp.Send(statekit.Event{Type: EventValid})
	} else {
		s.interp.Send(statekit.Event{
			Type:    EventInvalid,
			Payload: map[string]interface{}{"message": s.validation.Message},
		})
	}
	return s.validation
}

// Push uploads the generated files. It may only run from the validated
// step; calls from any other step are no-ops returning the previous
// result. The pusher itself revalidates before committing.
func (s *Session) Push(ctx context.Context) PushResult {
	if s.State() != StateValidated {
		return s.push
	}

	s.interp.Send(statekit.Event{Type: EventPush})
	s.push = s.pusher.Push(ctx, s.spec)

	if s.push.Status == PushSuccess {
		s.interp.Send(statekit.Event{Type: EventPushed})
	} else {
		// A failed revalidation inside the pusher also invalidates the
		// earlier validation outcome.
		s.validation = ValidationResult{Status: ValidationInvalid, Message: s.push.Message}
		s.interp.Send(statekit.Event{
			Type:    EventFail,
			Payload: map[string]interface{}{"message": s.push.Message},
		})
	}
	return s.push
}

// Stop stops the underlying state machine interpreter.
func (s *Session) Stop() {
	s.interp.Stop()
}
