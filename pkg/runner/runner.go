// Package runner defines interfaces for launching shell commands.
// This package exists to break import cycles between the sh, system and test packages.
package runner

// Result is the outcome of a command that ran to completion.
type Result struct {
	Output     []byte // combined stdout and stderr, in emission order
	ExitStatus int
}

// Process is an owned handle to a command started without waiting for it.
// The holder is responsible for calling Wait so the child is reaped.
type Process interface {
	Pid() int
	Wait() (int, error)
	Kill() error
}

// CommandRunner launches shell command lines.
// This allows for mocking in tests.
type CommandRunner interface {
	// Run blocks until the command exits. A non-zero exit status is not an error.
	Run(command string) (Result, error)
	// Start launches the command and returns immediately.
	Start(command string) (Process, error)
}
