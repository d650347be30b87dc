package workflow

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/stackgen/internal/config"
	"github.com/imamik/stackgen/internal/platform/github"
)

// MissingFieldsMessage is shown when connection fields are incomplete.
const MissingFieldsMessage = "Please fill in all GitHub configuration fields"

// ValidationResult is the outcome of a single validation attempt.
type ValidationResult struct {
	Status  ValidationStatus
	Message string
}

// Validator checks that a GitHub connection can write to its target
// repository. A single Validate call issues at most one remote check and
// never retries.
type Validator struct {
	checker github.AccessChecker
	log     logr.Logger
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithValidatorLogger sets the logger used for validation failures.
func WithValidatorLogger(log logr.Logger) ValidatorOption {
	return func(v *Validator) {
		v.log = log
	}
}

// NewValidator creates a Validator backed by the given access checker.
func NewValidator(checker github.AccessChecker, opts ...ValidatorOption) *Validator {
	v := &Validator{
		checker: checker,
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks the connection. Empty fields fail fast without a
// network call; otherwise exactly one access check is issued. Remote
// error text is preserved verbatim in the result message.
func (v *Validator) Validate(ctx context.Context, conn config.GitHubSpec) ValidationResult {
	if !conn.HasConnectionFields() {
		return ValidationResult{
			Status:  ValidationInvalid,
			Message: MissingFieldsMessage,
		}
	}

	ok, err := v.checker.CheckAccess(ctx, conn.Owner, conn.Repo)
	if err != nil {
		v.log.Error(err, "repository access check failed",
			"owner", conn.Owner, "repo", conn.Repo)
		return ValidationResult{
			Status:  ValidationInvalid,
			Message: err.Error(),
		}
	}
	if !ok {
		return ValidationResult{
			Status:  ValidationInvalid,
			Message: fmt.Sprintf("token does not have write access to %s/%s", conn.Owner, conn.Repo),
		}
	}

	return ValidationResult{Status: ValidationValid}
}
