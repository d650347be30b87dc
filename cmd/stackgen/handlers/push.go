// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/imamik/stackgen/internal/config"
	"github.com/imamik/stackgen/internal/generate"
	"github.com/imamik/stackgen/internal/keygen"
	"github.com/imamik/stackgen/internal/platform/github"
	"github.com/imamik/stackgen/internal/ui/tui"
	"github.com/imamik/stackgen/internal/workflow"
)

const deployKeyFile = "stackgen_deploy_key"

// Factory function variables for push - can be replaced in tests.
var (
	// loadPushSpec loads the project configuration from file.
	loadPushSpec = config.Load

	// newRepoManager creates the GitHub repository client.
	newRepoManager = func(token string) (github.RepositoryManager, error) {
		return github.NewRealClient(token)
	}

	// newSession creates the push workflow session.
	newSession = workflow.NewSession

	// generateKeyPair generates an ed25519 deploy key pair.
	generateKeyPair = keygen.GenerateED25519KeyPair

	// writeKeyFile writes the deploy key private key.
	writeKeyFile = os.WriteFile

	// promptToken asks for the GitHub token interactively.
	promptToken = func() (string, error) {
		var token string
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("GitHub Token").
					Description("Personal access token with write access to the repository").
					EchoMode(huh.EchoModePassword).
					Value(&token),
			),
		).Run()
		return token, err
	}

	// runPushTUI runs the Bubble Tea push display.
	runPushTUI = tui.RunPushTUI

	// stdoutIsTerminal reports whether stdout is attached to a terminal.
	stdoutIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// Push validates repository access, generates the configuration file set
// and commits it to the configured GitHub repository.
func Push(ctx context.Context, configPath, token string, deployKey bool) error {
	spec, err := loadPushSpec(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	token, err = resolveToken(token)
	if err != nil {
		return err
	}
	spec.GitHub.Token = token

	manager, err := newRepoManager(token)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	tracker := &generateTracker{fn: generateFiles}
	session, err := newSession(spec, manager,
		workflow.WithLogger(newLogger()),
		workflow.WithSessionGenerateFunc(tracker.generate))
	if err != nil {
		return fmt.Errorf("failed to start workflow: %w", err)
	}
	defer session.Stop()

	var sha string
	if stdoutIsTerminal() {
		sha, err = runPushTUI(func(ch chan<- tui.PhaseMsg) (string, error) {
			return runWorkflow(ctx, session, tracker, ch)
		}, spec.Project, spec.GitHub.Owner+"/"+spec.GitHub.Repo)
	} else {
		sha, err = runWorkflowPlain(ctx, session, spec)
	}
	if err != nil {
		return err
	}

	// The key is only registered once the workflow has confirmed access.
	if deployKey {
		if err := registerDeployKey(ctx, manager, spec); err != nil {
			return err
		}
	}

	printPushSuccess(spec, sha)
	return nil
}

// generateTracker wraps the file generation step so a failed push can be
// attributed to generation rather than the commit.
type generateTracker struct {
	fn     workflow.GenerateFunc
	failed bool
}

func (g *generateTracker) generate(spec *config.Spec) (generate.FileMap, error) {
	files, err := g.fn(spec)
	if err != nil {
		g.failed = true
	}
	return files, err
}

// resolveToken picks the token from the flag, the environment, or an
// interactive prompt, in that order.
func resolveToken(token string) (string, error) {
	if token != "" {
		return token, nil
	}
	if env := os.Getenv("GITHUB_TOKEN"); env != "" {
		return env, nil
	}
	token, err := promptToken()
	if err != nil {
		return "", fmt.Errorf("token prompt canceled: %w", err)
	}
	return token, nil
}

// runWorkflow drives the session and reports phase progress on ch.
func runWorkflow(ctx context.Context, session *workflow.Session, tracker *generateTracker, ch chan<- tui.PhaseMsg) (string, error) {
	ch <- tui.PhaseMsg{Phase: tui.PhaseValidate}
	validation := session.Validate(ctx)
	if validation.Status != workflow.ValidationValid {
		err := errors.New(validation.Message)
		ch <- tui.PhaseMsg{Phase: tui.PhaseValidate, Err: err}
		return "", err
	}
	ch <- tui.PhaseMsg{Phase: tui.PhaseValidate, Done: true}

	ch <- tui.PhaseMsg{Phase: tui.PhaseGenerate}
	result := session.Push(ctx)
	if result.Status != workflow.PushSuccess {
		err := errors.New(result.Message)
		if tracker.failed {
			ch <- tui.PhaseMsg{Phase: tui.PhaseGenerate, Err: err}
		} else {
			ch <- tui.PhaseMsg{Phase: tui.PhaseGenerate, Done: true}
			ch <- tui.PhaseMsg{Phase: tui.PhasePush, Err: err}
		}
		return "", err
	}
	ch <- tui.PhaseMsg{Phase: tui.PhaseGenerate, Done: true}
	ch <- tui.PhaseMsg{Phase: tui.PhasePush, Done: true}

	return result.CommitSHA, nil
}

// runWorkflowPlain drives the session without a TUI, printing plain
// progress lines instead.
func runWorkflowPlain(ctx context.Context, session *workflow.Session, spec *config.Spec) (string, error) {
	fmt.Printf("Validating access to %s/%s...\n", spec.GitHub.Owner, spec.GitHub.Repo)
	validation := session.Validate(ctx)
	if validation.Status != workflow.ValidationValid {
		return "", errors.New(validation.Message)
	}

	fmt.Println("Generating configuration files and pushing...")
	result := session.Push(ctx)
	if result.Status != workflow.PushSuccess {
		return "", errors.New(result.Message)
	}
	return result.CommitSHA, nil
}

// registerDeployKey generates an ed25519 key pair, registers the public
// key with the repository and writes the private key next to the config.
func registerDeployKey(ctx context.Context, manager github.RepositoryManager, spec *config.Spec) error {
	pair, err := generateKeyPair(fmt.Sprintf("stackgen-%s", spec.Project))
	if err != nil {
		return fmt.Errorf("failed to generate deploy key: %w", err)
	}

	title := fmt.Sprintf("stackgen deploy key (%s)", spec.Project)
	if err := manager.AddDeployKey(ctx, spec.GitHub.Owner, spec.GitHub.Repo, title, string(pair.PublicKey), true); err != nil {
		return fmt.Errorf("failed to register deploy key: %w", err)
	}

	if err := writeKeyFile(deployKeyFile, pair.PrivateKey, 0o600); err != nil {
		return fmt.Errorf("failed to write deploy key: %w", err)
	}

	fmt.Printf("Deploy key registered. Private key written to %s\n", deployKeyFile)
	return nil
}

// printPushSuccess prints the commit summary and next steps.
func printPushSuccess(spec *config.Spec, sha string) {
	fmt.Println()
	fmt.Println("Configuration pushed!")
	fmt.Println()
	fmt.Printf("  Repository: https://github.com/%s/%s\n", spec.GitHub.Owner, spec.GitHub.Repo)
	fmt.Printf("  Branch:     %s\n", spec.GitHub.Branch)
	fmt.Printf("  Commit:     %s\n", sha)
	fmt.Println()
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Review the commit on GitHub")
	fmt.Println("  2. Run 'terraform init && terraform apply' in deploy/terraform/")
	fmt.Println("  3. Apply the manifests in deploy/kubernetes/ to your cluster")
	fmt.Println()
}
