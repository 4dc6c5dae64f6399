package system

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"acceptance/pkg/runner"
)

var _ runner.CommandRunner = (*LiveCommandRunner)(nil)

const (
	DefaultShell = "/bin/bash"
	// DefaultShellFlag runs the command string in trace mode: every line is
	// echoed with a "+ " prefix before it executes.
	DefaultShellFlag = "-xc"
)

// LiveCommandRunner runs command lines through a shell on the live system.
type LiveCommandRunner struct {
	Shell string
	Flags []string
}

// NewLiveCommandRunner returns a runner for the given shell. An empty shell
// means DefaultShell; with no flags the shell runs in trace mode via
// DefaultShellFlag.
func NewLiveCommandRunner(shell string, flags ...string) *LiveCommandRunner {
	return &LiveCommandRunner{Shell: shell, Flags: flags}
}

func (r *LiveCommandRunner) command(command string) *exec.Cmd {
	shell, flags := r.Shell, r.Flags
	if shell == "" {
		shell = DefaultShell
	}
	if len(flags) == 0 {
		flags = []string{DefaultShellFlag}
	}
	args := append(append([]string{}, flags...), command)
	return exec.Command(shell, args...)
}

// Run executes the command and returns its combined output and exit status.
func (r *LiveCommandRunner) Run(command string) (runner.Result, error) {
	cmd := r.command(command)

	// A single buffer for both streams keeps their interleaving.
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return runner.Result{Output: out.Bytes(), ExitStatus: exitErr.ExitCode()}, nil
		}
		return runner.Result{}, fmt.Errorf("executing %s: %w", cmd.Args[0], err)
	}
	return runner.Result{Output: out.Bytes(), ExitStatus: 0}, nil
}

// Start launches the command without waiting for it. Its output is discarded.
func (r *LiveCommandRunner) Start(command string) (runner.Process, error) {
	cmd := r.command(command)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", cmd.Args[0], err)
	}
	return &LiveProcess{cmd: cmd}, nil
}

// LiveProcess is a detached child started by LiveCommandRunner.Start.
type LiveProcess struct {
	cmd *exec.Cmd
}

func (p *LiveProcess) Pid() int {
	return p.cmd.Process.Pid
}

// Wait blocks until the process exits and returns its exit status. A process
// killed by a signal reports -1.
func (p *LiveProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("waiting for pid %d: %w", p.Pid(), err)
	}
	return 0, nil
}

func (p *LiveProcess) Kill() error {
	return p.cmd.Process.Kill()
}
