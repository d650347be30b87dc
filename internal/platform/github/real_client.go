package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	gogithub "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// RealClient implements RepositoryManager using the GitHub REST API.
type RealClient struct {
	client *gogithub.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient) error

// WithHTTPClient sets a custom HTTP client. It replaces the default
// token-authenticated transport, so the caller owns auth.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) error {
		c.client = gogithub.NewClient(hc)
		return nil
	}
}

// WithBaseURL points the client at a different API endpoint (useful for
// tests and GitHub Enterprise). The URL must end with a slash.
func WithBaseURL(rawurl string) ClientOption {
	return func(c *RealClient) error {
		if !strings.HasSuffix(rawurl, "/") {
			rawurl += "/"
		}
		u, err := url.Parse(rawurl)
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", rawurl, err)
		}
		c.client.BaseURL = u
		return nil
	}
}

// NewRealClient creates a RealClient authenticated with the given token.
func NewRealClient(token string, opts ...ClientOption) (*RealClient, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	c := &RealClient{client: gogithub.NewClient(tc)}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// CheckAccess reports whether the token can push to owner/repo.
func (c *RealClient) CheckAccess(ctx context.Context, owner, repo string) (bool, error) {
	repository, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return false, fmt.Errorf("failed to check repository access: %w", err)
	}

	perms := repository.GetPermissions()
	return perms["push"], nil
}

// CommitFiles writes all files to the branch as a single commit via the
// Git Data API and returns the new commit SHA.
func (c *RealClient) CommitFiles(ctx context.Context, owner, repo, branch, message string, files map[string]string) (string, error) {
	if len(files) == 0 {
		return "", fmt.Errorf("no files to commit")
	}

	ref, _, err := c.client.Git.GetRef(ctx, owner, repo, "heads/"+branch)
	if err != nil {
		return "", fmt.Errorf("failed to resolve branch %s: %w", branch, err)
	}
	parentSHA := ref.GetObject().GetSHA()

	parent, _, err := c.client.Git.GetCommit(ctx, owner, repo, parentSHA)
	if err != nil {
		return "", fmt.Errorf("failed to read parent commit: %w", err)
	}

	entries := make([]*gogithub.TreeEntry, 0, len(files))
	for _, path := range sortedPaths(files) {
		entries = append(entries, &gogithub.TreeEntry{
			Path:    gogithub.Ptr(path),
			Mode:    gogithub.Ptr("100644"),
			Type:    gogithub.Ptr("blob"),
			Content: gogithub.Ptr(files[path]),
		})
	}

	tree, _, err := c.client.Git.CreateTree(ctx, owner, repo, parent.GetTree().GetSHA(), entries)
	if err != nil {
		return "", fmt.Errorf("failed to create tree: %w", err)
	}

	commit, _, err := c.client.Git.CreateCommit(ctx, owner, repo, &gogithub.Commit{
		Message: gogithub.Ptr(message),
		Tree:    tree,
		Parents: []*gogithub.Commit{{SHA: gogithub.Ptr(parentSHA)}},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create commit: %w", err)
	}

	_, _, err = c.client.Git.UpdateRef(ctx, owner, repo, &gogithub.Reference{
		Ref:    gogithub.Ptr("refs/heads/" + branch),
		Object: &gogithub.GitObject{SHA: commit.SHA},
	}, false)
	if err != nil {
		return "", fmt.Errorf("failed to update branch %s: %w", branch, err)
	}

	return commit.GetSHA(), nil
}

// AddDeployKey registers a public key on the repository.
func (c *RealClient) AddDeployKey(ctx context.Context, owner, repo, title, publicKey string, readOnly bool) error {
	_, _, err := c.client.Repositories.CreateKey(ctx, owner, repo, &gogithub.Key{
		Title:    gogithub.Ptr(title),
		Key:      gogithub.Ptr(publicKey),
		ReadOnly: gogithub.Ptr(readOnly),
	})
	if err != nil {
		return fmt.Errorf("failed to add deploy key: %w", err)
	}
	return nil
}

// sortedPaths returns the file paths in deterministic order so commits
// are reproducible.
func sortedPaths(files map[string]string) []string {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Ensure RealClient implements the full interface.
var _ RepositoryManager = (*RealClient)(nil)
