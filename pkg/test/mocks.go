package test

import (
	"bytes"
	"fmt"
	"log/slog"

	"acceptance/pkg/log"
	"acceptance/pkg/runner"
)

// MockCommandRunner is a shared mock implementation of runner.CommandRunner for testing.
// It tracks launched commands and allows setting up results and errors.
type MockCommandRunner struct {
	Commands  []string                 // Commands passed to Run, in order
	Started   []string                 // Commands passed to Start, in order
	Results   map[string]runner.Result // Result by command
	Errors    map[string]error         // Error by command, for both Run and Start
	Processes []*MockProcess           // Handles returned by Start
	nextPid   int
}

// NewMockCommandRunner creates a new MockCommandRunner with initialized maps.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		Commands: []string{},
		Started:  []string{},
		Results:  make(map[string]runner.Result),
		Errors:   make(map[string]error),
		nextPid:  1000,
	}
}

// Run returns the configured result or error. Unknown commands exit 0 with no output.
func (r *MockCommandRunner) Run(command string) (runner.Result, error) {
	r.Commands = append(r.Commands, command)
	if err, ok := r.Errors[command]; ok {
		return runner.Result{}, err
	}
	return r.Results[command], nil
}

// Start records the command and hands out a MockProcess.
func (r *MockCommandRunner) Start(command string) (runner.Process, error) {
	r.Started = append(r.Started, command)
	if err, ok := r.Errors[command]; ok {
		return nil, err
	}
	r.nextPid++
	proc := &MockProcess{PID: r.nextPid, Command: command}
	r.Processes = append(r.Processes, proc)
	return proc, nil
}

// SetResult configures the combined output and exit status for a command.
func (r *MockCommandRunner) SetResult(command, output string, exitStatus int) {
	r.Results[command] = runner.Result{Output: []byte(output), ExitStatus: exitStatus}
}

// SetError configures an error for a command.
func (r *MockCommandRunner) SetError(command string, err error) {
	r.Errors[command] = err
}

// Reset clears all tracked commands and configured responses.
func (r *MockCommandRunner) Reset() {
	r.Commands = []string{}
	r.Started = []string{}
	r.Results = make(map[string]runner.Result)
	r.Errors = make(map[string]error)
	r.Processes = nil
}

// MockProcess is a detached process handle that never runs anything.
type MockProcess struct {
	PID        int
	Command    string
	ExitStatus int
	Killed     bool
	Waited     bool
}

func (p *MockProcess) Pid() int {
	return p.PID
}

func (p *MockProcess) Wait() (int, error) {
	p.Waited = true
	if p.Killed {
		return -1, nil
	}
	return p.ExitStatus, nil
}

func (p *MockProcess) Kill() error {
	p.Killed = true
	return nil
}

// MockLogger is a shared mock implementation of Logger for testing.
// It captures logged messages for verification.
type MockLogger struct {
	Messages []string
	Level    slog.Level
}

// NewMockLogger creates a new MockLogger with the specified level.
func NewMockLogger(level slog.Level) *MockLogger {
	return &MockLogger{
		Messages: []string{},
		Level:    level,
	}
}

func (l *MockLogger) Debug(msg string, args ...any) {
	if l.Level <= slog.LevelDebug {
		l.captureMessage("DEBUG", msg, args...)
	}
}

func (l *MockLogger) Info(msg string, args ...any) {
	if l.Level <= slog.LevelInfo {
		l.captureMessage("INFO", msg, args...)
	}
}

func (l *MockLogger) Warn(msg string, args ...any) {
	if l.Level <= slog.LevelWarn {
		l.captureMessage("WARN", msg, args...)
	}
}

func (l *MockLogger) Error(msg string, args ...any) {
	if l.Level <= slog.LevelError {
		l.captureMessage("ERROR", msg, args...)
	}
}

func (l *MockLogger) captureMessage(level, msg string, args ...any) {
	buf := &bytes.Buffer{}
	buf.WriteString(level)
	buf.WriteString(": ")
	buf.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(buf, " %v=%v", args[i], args[i+1])
	}
	l.Messages = append(l.Messages, buf.String())
}

// Reset clears all captured messages.
func (l *MockLogger) Reset() {
	l.Messages = []string{}
}

// HasMessage checks if any captured message contains the given substring.
func (l *MockLogger) HasMessage(substring string) bool {
	for _, msg := range l.Messages {
		if bytes.Contains([]byte(msg), []byte(substring)) {
			return true
		}
	}
	return false
}

// SlogLogger creates a real slog logger writing to buf.
func SlogLogger(level slog.Level, buf *bytes.Buffer) log.Logger {
	return log.NewSlogLogger(level, buf)
}
