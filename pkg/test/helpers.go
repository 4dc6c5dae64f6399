package test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// SetupMockFilesystem creates an in-memory filesystem for testing.
// The caller is responsible for setting system.AppFs if needed.
func SetupMockFilesystem(t *testing.T) afero.Fs {
	return afero.NewMemMapFs()
}

// CreateTestFile creates a file with content in the test filesystem.
func CreateTestFile(t *testing.T, fs afero.Fs, path, content string) {
	err := fs.MkdirAll(filepath.Dir(path), 0755)
	require.NoError(t, err)
	err = afero.WriteFile(fs, path, []byte(content), 0644)
	require.NoError(t, err)
}

// RequireBash skips the test when no bash is installed at /bin/bash.
func RequireBash(t *testing.T) {
	t.Helper()
	if _, err := os.Stat("/bin/bash"); err != nil {
		t.Skip("/bin/bash not available")
	}
}

// AssertCommandExecuted checks that a command was run by the mock runner.
func AssertCommandExecuted(t *testing.T, runner *MockCommandRunner, command string) {
	require.Contains(t, runner.Commands, command, "Command should have been executed: %s", command)
}

// AssertCommandStarted checks that a command was launched detached by the mock runner.
func AssertCommandStarted(t *testing.T, runner *MockCommandRunner, command string) {
	require.Contains(t, runner.Started, command, "Command should have been started: %s", command)
}

// AssertLogContains checks that the logger captured a message containing the substring.
func AssertLogContains(t *testing.T, logger *MockLogger, substring string) {
	require.True(t, logger.HasMessage(substring), "Log should contain: %s", substring)
}

// AssertNoTraceLines checks that no echoed line starts with the trace prefix.
func AssertNoTraceLines(t *testing.T, echoed, prefix string) {
	for _, line := range strings.Split(echoed, "\n") {
		require.False(t, strings.HasPrefix(line, prefix), "Unexpected trace line echoed: %q", line)
	}
}
