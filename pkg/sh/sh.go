// Package sh runs shell commands for acceptance-test steps and asserts on
// their results.
//
// Commands run through a shell in trace mode, so the combined output
// interleaves the shell's "+ " echo of every executed line with the command's
// own stdout and stderr. Sh echoes that output to the test log, keeps only the
// command's lines as CapturedOutput and records the exit status of the most
// recent command.
package sh

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"acceptance/pkg/config"
	"acceptance/pkg/log"
	"acceptance/pkg/runner"
	"acceptance/pkg/system"
)

// Sh holds the result of the most recent command run to completion. It is
// meant to be owned by a single test context and is not safe for concurrent use.
type Sh struct {
	ExitStatus     int
	CapturedOutput string

	hasResult   bool
	runner      runner.CommandRunner
	out         io.Writer
	logger      log.Logger
	tracePrefix string
}

// New returns an Sh launching commands through r.
func New(r runner.CommandRunner, opts ...Option) *Sh {
	s := &Sh{
		runner:      r,
		out:         os.Stdout,
		logger:      log.Default(),
		tracePrefix: config.DefaultTracePrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromConfig returns an Sh running commands on the live system as cfg describes.
func FromConfig(cfg *config.Config, out io.Writer) (*Sh, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return New(
		system.NewLiveCommandRunner(cfg.Shell, cfg.ShellFlags...),
		WithOutput(out),
		WithLogger(log.NewSlogLogger(level, os.Stderr)),
		WithTracePrefix(cfg.TracePrefix),
	), nil
}

// HasResult reports whether a command has run to completion on s.
func (s *Sh) HasResult() bool {
	return s.hasResult
}

// Execute runs command and, unless Detach is given, waits for it, echoes its
// output and stores its exit status and trace-free output. A non-zero exit
// status is not an error; errors come from launching or decoding only, and
// leave the stored result untouched.
//
// With Detach the returned Process is owned by the caller, who must Wait on
// it (after Kill if need be). Without Detach the returned Process is nil.
func (s *Sh) Execute(command string, opts ...ExecuteOption) (runner.Process, error) {
	op := &executeOperation{}
	for _, opt := range opts {
		opt(op)
	}

	if op.detach {
		proc, err := s.runner.Start(command)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Detached command started", "command", command, "pid", proc.Pid())
		return proc, nil
	}

	s.logger.Debug("Executing command", "command", command, "suppress_trace", op.suppressTrace)
	res, err := s.runner.Run(command)
	if err != nil {
		return nil, err
	}

	raw := string(bytes.Trim(res.Output, asciiSpace))
	if !utf8.ValidString(raw) {
		return nil, fmt.Errorf("decoding output of %q: %w", command, ErrInvalidEncoding)
	}

	lines := FilterTrace(raw, s.tracePrefix)
	for _, line := range lines {
		if line.Trace && op.suppressTrace {
			continue
		}
		if _, err := fmt.Fprintln(s.out, line.Text); err != nil {
			return nil, fmt.Errorf("writing output of %q: %w", command, err)
		}
	}

	s.ExitStatus = res.ExitStatus
	s.CapturedOutput = joinCommandLines(lines)
	s.hasResult = true
	s.logger.Debug("Command finished", "command", command, "exit_status", res.ExitStatus)
	return nil, nil
}

// RunAndExpectSuccess runs command, echoing trace lines, and asserts it exits 0.
func (s *Sh) RunAndExpectSuccess(command string) error {
	if _, err := s.Execute(command); err != nil {
		return err
	}
	return s.AssertExitStatus(0)
}

// RunAndExpectSuccessSilent is RunAndExpectSuccess without trace lines in the log.
func (s *Sh) RunAndExpectSuccessSilent(command string) error {
	if _, err := s.Execute(command, SuppressTrace()); err != nil {
		return err
	}
	return s.AssertExitStatus(0)
}
