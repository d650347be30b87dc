// Package main is the entry point for the stackgen CLI.
//
// stackgen is a command-line tool for bootstrapping cloud infrastructure
// configuration. It collects cluster, service and pipeline settings through
// an interactive wizard, generates Terraform templates, Kubernetes manifests
// and a CI pipeline definition, and pushes everything to a GitHub repository
// as a single commit.
//
// Commands: init, generate, push.
//
// For detailed usage information, run:
//
//	stackgen --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/stackgen/cmd/stackgen/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
