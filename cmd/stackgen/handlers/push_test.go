package handlers

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/stackgen/internal/config"
	"github.com/imamik/stackgen/internal/generate"
	"github.com/imamik/stackgen/internal/platform/github"
	"github.com/imamik/stackgen/internal/ui/tui"
	"github.com/imamik/stackgen/internal/workflow"
)

// fakeRepoManager is a RepositoryManager stub for handler tests.
type fakeRepoManager struct {
	checkOK     bool
	checkErr    error
	commitSHA   string
	commitErr   error
	keyErr      error
	checkCalls  int
	commitCalls int
	keyCalls    int
	lastKeyRO   bool
}

func (f *fakeRepoManager) CheckAccess(_ context.Context, _, _ string) (bool, error) {
	f.checkCalls++
	return f.checkOK, f.checkErr
}

func (f *fakeRepoManager) CommitFiles(_ context.Context, _, _, _, _ string, _ map[string]string) (string, error) {
	f.commitCalls++
	return f.commitSHA, f.commitErr
}

func (f *fakeRepoManager) AddDeployKey(_ context.Context, _, _, _, _ string, readOnly bool) error {
	f.keyCalls++
	f.lastKeyRO = readOnly
	return f.keyErr
}

var _ github.RepositoryManager = (*fakeRepoManager)(nil)

// saveAndRestorePushFactories saves and restores push factory functions.
func saveAndRestorePushFactories(t *testing.T) {
	origLoadPushSpec := loadPushSpec
	origNewRepoManager := newRepoManager
	origNewSession := newSession
	origGenerateFiles := generateFiles
	origGenerateKeyPair := generateKeyPair
	origWriteKeyFile := writeKeyFile
	origPromptToken := promptToken
	origRunPushTUI := runPushTUI
	origStdoutIsTerminal := stdoutIsTerminal

	t.Cleanup(func() {
		loadPushSpec = origLoadPushSpec
		newRepoManager = origNewRepoManager
		newSession = origNewSession
		generateFiles = origGenerateFiles
		generateKeyPair = origGenerateKeyPair
		writeKeyFile = origWriteKeyFile
		promptToken = origPromptToken
		runPushTUI = origRunPushTUI
		stdoutIsTerminal = origStdoutIsTerminal
	})
}

// stubGenerate replaces the file generators with a canned file set so
// tests do not depend on the real templates.
func stubGenerate() {
	generateFiles = func(*config.Spec) (generate.FileMap, error) {
		return generate.FileMap{"deploy/kubernetes/namespace.yaml": "kind: Namespace\n"}, nil
	}
}

func TestPush_Plain_Success(t *testing.T) {
	saveAndRestorePushFactories(t)

	fake := &fakeRepoManager{checkOK: true, commitSHA: "abc123def456"}
	loadPushSpec = func(string) (*config.Spec, error) { return testSpec(), nil }
	newRepoManager = func(string) (github.RepositoryManager, error) { return fake, nil }
	stubGenerate()
	stdoutIsTerminal = func() bool { return false }

	var err error
	output := captureOutput(func() {
		err = Push(context.Background(), "stackgen.yaml", "ghp_test", false)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Configuration pushed!")
	assert.Contains(t, output, "abc123def456")
	assert.Equal(t, 1, fake.commitCalls)
	// Access is checked once up front and revalidated before the commit.
	assert.Equal(t, 2, fake.checkCalls)
}

func TestPush_MissingFields(t *testing.T) {
	saveAndRestorePushFactories(t)

	spec := testSpec()
	spec.GitHub.Owner = ""

	fake := &fakeRepoManager{checkOK: true}
	loadPushSpec = func(string) (*config.Spec, error) { return spec, nil }
	newRepoManager = func(string) (github.RepositoryManager, error) { return fake, nil }
	stubGenerate()
	stdoutIsTerminal = func() bool { return false }

	var err error
	captureOutput(func() {
		err = Push(context.Background(), "stackgen.yaml", "ghp_test", false)
	})

	require.Error(t, err)
	assert.Equal(t, "Please fill in all GitHub configuration fields", err.Error())
	assert.Zero(t, fake.checkCalls, "no network call for incomplete fields")
	assert.Zero(t, fake.commitCalls)
}

func TestPush_NoWriteAccess(t *testing.T) {
	saveAndRestorePushFactories(t)

	fake := &fakeRepoManager{checkOK: false}
	loadPushSpec = func(string) (*config.Spec, error) { return testSpec(), nil }
	newRepoManager = func(string) (github.RepositoryManager, error) { return fake, nil }
	stubGenerate()
	stdoutIsTerminal = func() bool { return false }

	var err error
	captureOutput(func() {
		err = Push(context.Background(), "stackgen.yaml", "ghp_test", false)
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write access")
	assert.Zero(t, fake.commitCalls)
}

func TestPush_RemoteErrorSurfacesVerbatim(t *testing.T) {
	saveAndRestorePushFactories(t)

	fake := &fakeRepoManager{checkErr: errors.New("insufficient permissions")}
	loadPushSpec = func(string) (*config.Spec, error) { return testSpec(), nil }
	newRepoManager = func(string) (github.RepositoryManager, error) { return fake, nil }
	stubGenerate()
	stdoutIsTerminal = func() bool { return false }

	var err error
	captureOutput(func() {
		err = Push(context.Background(), "stackgen.yaml", "ghp_test", false)
	})

	require.Error(t, err)
	assert.Equal(t, "insufficient permissions", err.Error())
}

func TestPush_DeployKey(t *testing.T) {
	saveAndRestorePushFactories(t)

	fake := &fakeRepoManager{checkOK: true, commitSHA: "abc123"}
	loadPushSpec = func(string) (*config.Spec, error) { return testSpec(), nil }
	newRepoManager = func(string) (github.RepositoryManager, error) { return fake, nil }
	stubGenerate()
	stdoutIsTerminal = func() bool { return false }

	var writtenKey string
	writeKeyFile = func(_ string, data []byte, _ os.FileMode) error {
		writtenKey = string(data)
		return nil
	}

	var err error
	captureOutput(func() {
		err = Push(context.Background(), "stackgen.yaml", "ghp_test", true)
	})

	require.NoError(t, err)
	assert.Equal(t, 1, fake.keyCalls)
	assert.True(t, fake.lastKeyRO, "deploy key should be read-only")
	assert.Contains(t, writtenKey, "PRIVATE KEY")
}

func TestPush_DeployKeyWaitsForValidation(t *testing.T) {
	saveAndRestorePushFactories(t)

	spec := testSpec()
	spec.GitHub.Owner = ""

	fake := &fakeRepoManager{checkOK: true}
	loadPushSpec = func(string) (*config.Spec, error) { return spec, nil }
	newRepoManager = func(string) (github.RepositoryManager, error) { return fake, nil }
	stubGenerate()
	stdoutIsTerminal = func() bool { return false }

	var err error
	captureOutput(func() {
		err = Push(context.Background(), "stackgen.yaml", "ghp_test", true)
	})

	require.Error(t, err)
	assert.Equal(t, "Please fill in all GitHub configuration fields", err.Error())
	assert.Zero(t, fake.keyCalls, "no key registration before validation passes")
}

// collectPhases drains runWorkflow's progress channel and returns the
// phase carrying an error, if any.
func collectPhases(t *testing.T, run func(ch chan<- tui.PhaseMsg) (string, error)) (string, error) {
	t.Helper()

	ch := make(chan tui.PhaseMsg, 16)
	_, err := run(ch)
	close(ch)

	var errPhase string
	for msg := range ch {
		if msg.Err != nil {
			errPhase = msg.Phase
		}
	}
	return errPhase, err
}

func TestRunWorkflow_PhaseAttribution(t *testing.T) {
	t.Run("generation failure marks generate phase", func(t *testing.T) {
		fake := &fakeRepoManager{checkOK: true}
		tracker := &generateTracker{fn: func(*config.Spec) (generate.FileMap, error) {
			return nil, errors.New("template parse error")
		}}
		spec := testSpec()
		spec.GitHub.Token = "ghp_test"
		session, err := workflow.NewSession(spec, fake,
			workflow.WithSessionGenerateFunc(tracker.generate))
		require.NoError(t, err)
		t.Cleanup(session.Stop)

		errPhase, err := collectPhases(t, func(ch chan<- tui.PhaseMsg) (string, error) {
			return runWorkflow(context.Background(), session, tracker, ch)
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "template parse error")
		assert.Equal(t, tui.PhaseGenerate, errPhase)
	})

	t.Run("commit failure marks push phase", func(t *testing.T) {
		fake := &fakeRepoManager{checkOK: true, commitErr: errors.New("422 reference update failed")}
		tracker := &generateTracker{fn: func(*config.Spec) (generate.FileMap, error) {
			return generate.FileMap{"a.yaml": "a: 1"}, nil
		}}
		spec := testSpec()
		spec.GitHub.Token = "ghp_test"
		session, err := workflow.NewSession(spec, fake,
			workflow.WithSessionGenerateFunc(tracker.generate))
		require.NoError(t, err)
		t.Cleanup(session.Stop)

		errPhase, err := collectPhases(t, func(ch chan<- tui.PhaseMsg) (string, error) {
			return runWorkflow(context.Background(), session, tracker, ch)
		})

		require.Error(t, err)
		assert.Equal(t, tui.PhasePush, errPhase)
	})
}

func TestResolveToken_FlagWins(t *testing.T) {
	saveAndRestorePushFactories(t)
	t.Setenv("GITHUB_TOKEN", "from-env")

	token, err := resolveToken("from-flag")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", token)
}

func TestResolveToken_EnvFallback(t *testing.T) {
	saveAndRestorePushFactories(t)
	t.Setenv("GITHUB_TOKEN", "from-env")

	token, err := resolveToken("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestResolveToken_Prompt(t *testing.T) {
	saveAndRestorePushFactories(t)
	t.Setenv("GITHUB_TOKEN", "")

	promptToken = func() (string, error) { return "from-prompt", nil }

	token, err := resolveToken("")
	require.NoError(t, err)
	assert.Equal(t, "from-prompt", token)
}

func TestResolveToken_PromptCanceled(t *testing.T) {
	saveAndRestorePushFactories(t)
	t.Setenv("GITHUB_TOKEN", "")

	promptToken = func() (string, error) { return "", errors.New("ctrl+c") }

	_, err := resolveToken("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token prompt canceled")
}
