package github

import "context"

// AccessChecker defines the interface for repository access checks.
type AccessChecker interface {
	// CheckAccess reports whether the configured token can write to the
	// named repository. A false result with a nil error means the
	// repository exists but the token lacks push permission.
	CheckAccess(ctx context.Context, owner, repo string) (bool, error)
}

// Committer defines the interface for writing generated files.
type Committer interface {
	// CommitFiles writes all files (relative path to text content) to
	// the branch as a single commit and returns the commit SHA.
	CommitFiles(ctx context.Context, owner, repo, branch, message string, files map[string]string) (string, error)
}

// DeployKeyManager defines the interface for managing deploy keys.
type DeployKeyManager interface {
	// AddDeployKey registers a public key on the repository.
	AddDeployKey(ctx context.Context, owner, repo, title, publicKey string, readOnly bool) error
}

// RepositoryManager combines all repository interfaces.
type RepositoryManager interface {
	AccessChecker
	Committer
	DeployKeyManager
}
