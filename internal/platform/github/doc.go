// Package github wraps the GitHub REST API for repository access checks
// and atomic multi-file commits.
//
// The package exposes narrow interfaces so workflow code can be tested
// against mocks, with RealClient providing the production implementation
// on top of google/go-github. Multi-file uploads go through the Git Data
// API (blob tree, commit, ref update) so each push lands as exactly one
// commit.
package github
