package benv

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benv/pkg/store"
)

func captureOutput(f func()) (string, error) {
	// Create a pipe to capture stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	// Save the original stdout
	oldStdout := os.Stdout
	os.Stdout = w

	// Create a channel to capture the output
	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		outputChan <- buf.String()
	}()

	// Execute the function
	f()

	// Restore stdout and close the writer
	os.Stdout = oldStdout
	_ = w.Close()

	// Get the captured output
	output := <-outputChan
	return output, nil
}

// setupTestEnv points every benv directory at a fresh temp tree so commands
// never touch the real XDG locations.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("BENV_DATA_DIR", filepath.Join(tmp, "data"))
	t.Setenv("BENV_CONFIG_DIR", filepath.Join(tmp, "config"))
	t.Setenv("BENV_STATE_DIR", filepath.Join(tmp, "state"))
	return tmp
}

// seedStore opens the database the commands will use, seeds the default
// profile, applies mutate and closes it again so the command under test can
// take the file lock.
func seedStore(t *testing.T, mutate func(t *testing.T, st *store.Store)) {
	t.Helper()
	st, err := store.OpenDefault()
	require.NoError(t, err)
	defer func() { require.NoError(t, st.Close()) }()
	require.NoError(t, st.EnsureSeed())
	if mutate != nil {
		mutate(t, st)
	}
}

func TestRootHelp(t *testing.T) {
	setupTestEnv(t)

	var cmdErr error
	output, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"--help"})
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err)
	require.NoError(t, cmdErr)

	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "COMMANDS:")
	assert.Contains(t, output, "MISC:")
	assert.Contains(t, output, "export")
	assert.Contains(t, output, "docs")
}

func TestVersionFlag(t *testing.T) {
	setupTestEnv(t)

	var cmdErr error
	output, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"--version"})
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err)
	require.NoError(t, cmdErr)

	assert.Contains(t, output, "benv version")
}

func TestVersionCommand(t *testing.T) {
	setupTestEnv(t)

	var cmdErr error
	output, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"version"})
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err)
	require.NoError(t, cmdErr)

	assert.Contains(t, output, "benv version")
	assert.Contains(t, output, "Commit:")
	assert.Contains(t, output, "Built:")
}

func TestCompletionCommand(t *testing.T) {
	setupTestEnv(t)

	var cmdErr error
	output, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"completion", "bash"})
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err)
	require.NoError(t, cmdErr)

	assert.Contains(t, output, "__start_benv")
}

func TestCompletionRequiresShell(t *testing.T) {
	setupTestEnv(t)

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"completion"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	assert.Error(t, cmd.Execute())
}

func TestHelpRendersTopic(t *testing.T) {
	setupTestEnv(t)

	var cmdErr error
	output, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"help", "quoting"})
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err)
	require.NoError(t, cmdErr)

	// Single words only: the renderer reflows paragraphs, so multi-word
	// phrases may straddle a line break.
	assert.Contains(t, output, "Quoting")
	assert.Contains(t, output, "deliberate")
}

func TestHelpTopicsListsAll(t *testing.T) {
	setupTestEnv(t)

	var cmdErr error
	output, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"help", "topics"})
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err)
	require.NoError(t, cmdErr)

	assert.Contains(t, output, "Available help topics:")
	for _, topic := range []string{"items", "profiles", "quoting", "theming", "variables"} {
		assert.Contains(t, output, topic)
	}
}

func TestHelpOnCommandNameShowsCommandHelp(t *testing.T) {
	setupTestEnv(t)

	var cmdErr error
	output, err := captureOutput(func() {
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"help", "export"})
		cmdErr = cmd.Execute()
	})
	require.NoError(t, err)
	require.NoError(t, cmdErr)

	assert.Contains(t, output, "export [profile]")
}
