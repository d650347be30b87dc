package workflow

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/imamik/stackgen/internal/config"
	"github.com/imamik/stackgen/internal/generate"
	"github.com/imamik/stackgen/internal/platform/github"
)

// CommitMessage is the fixed message used for every generated commit.
const CommitMessage = "Add stackgen generated infrastructure configuration"

// GenerateFunc produces the files to commit from a spec.
type GenerateFunc func(*config.Spec) (generate.FileMap, error)

// PushResult is the outcome of a single push attempt.
type PushResult struct {
	Status    PushStatus
	Message   string
	CommitSHA string
}

// Pusher publishes generated files to the target repository. Each Push
// revalidates the connection first, regardless of any earlier validation
// result, then generates files and writes them as one commit. The remote
// commit is treated as atomic: there is no partial-success state.
type Pusher struct {
	validator *Validator
	committer github.Committer
	generate  GenerateFunc
	log       logr.Logger
}

// PusherOption configures a Pusher.
type PusherOption func(*Pusher)

// WithPusherLogger sets the logger used for push failures.
func WithPusherLogger(log logr.Logger) PusherOption {
	return func(p *Pusher) {
		p.log = log
	}
}

// WithGenerateFunc overrides the file generation function.
func WithGenerateFunc(fn GenerateFunc) PusherOption {
	return func(p *Pusher) {
		p.generate = fn
	}
}

// NewPusher creates a Pusher.
func NewPusher(validator *Validator, committer github.Committer, opts ...PusherOption) *Pusher {
	p := &Pusher{
		validator: validator,
		committer: committer,
		generate:  generate.Generate,
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Push revalidates, generates and commits. Any failure is converted to a
// display message; no error escapes the step boundary.
func (p *Pusher) Push(ctx context.Context, spec *config.Spec) PushResult {
	if result := p.validator.Validate(ctx, spec.GitHub); result.Status != ValidationValid {
		return PushResult{Status: PushError, Message: result.Message}
	}

	files, err := p.generate(spec)
	if err != nil {
		p.log.Error(err, "file generation failed", "project", spec.Project)
		return PushResult{Status: PushError, Message: err.Error()}
	}

	sha, err := p.committer.CommitFiles(ctx,
		spec.GitHub.Owner, spec.GitHub.Repo, spec.GitHub.Branch, CommitMessage, files)
	if err != nil {
		p.log.Error(err, "commit upload failed",
			"owner", spec.GitHub.Owner, "repo", spec.GitHub.Repo, "branch", spec.GitHub.Branch)
		return PushResult{Status: PushError, Message: err.Error()}
	}

	p.log.Info("pushed generated configuration",
		"owner", spec.GitHub.Owner, "repo", spec.GitHub.Repo, "commit", sha, "files", len(files))

	return PushResult{Status: PushSuccess, CommitSHA: sha}
}
