package workflow

import (
	"context"

	"github.com/imamik/stackgen/internal/platform/github"
)

// mockRepoManager is a hand-written fake for the GitHub client.
type mockRepoManager struct {
	checkCalls int
	checkOK    bool
	checkErr   error

	commitCalls int
	commitSHA   string
	commitErr   error

	lastOwner   string
	lastRepo    string
	lastBranch  string
	lastMessage string
	lastFiles   map[string]string
}

func (m *mockRepoManager) CheckAccess(_ context.Context, owner, repo string) (bool, error) {
	m.checkCalls++
	m.lastOwner = owner
	m.lastRepo = repo
	if m.checkErr != nil {
		return false, m.checkErr
	}
	return m.checkOK, nil
}

func (m *mockRepoManager) CommitFiles(_ context.Context, owner, repo, branch, message string, files map[string]string) (string, error) {
	m.commitCalls++
	m.lastOwner = owner
	m.lastRepo = repo
	m.lastBranch = branch
	m.lastMessage = message
	m.lastFiles = files
	if m.commitErr != nil {
		return "", m.commitErr
	}
	return m.commitSHA, nil
}

func (m *mockRepoManager) AddDeployKey(context.Context, string, string, string, string, bool) error {
	return nil
}

var _ github.RepositoryManager = (*mockRepoManager)(nil)
