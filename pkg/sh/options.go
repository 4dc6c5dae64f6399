package sh

import (
	"io"

	"acceptance/pkg/log"
)

// Option configures an Sh.
type Option func(*Sh)

// WithOutput sets where command output lines are echoed. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Sh) {
		s.out = w
	}
}

// WithLogger sets the logger for command lifecycle records. Defaults to log.Default.
func WithLogger(logger log.Logger) Option {
	return func(s *Sh) {
		s.logger = logger
	}
}

// WithTracePrefix overrides the prefix identifying shell trace lines.
func WithTracePrefix(prefix string) Option {
	return func(s *Sh) {
		s.tracePrefix = prefix
	}
}

// ExecuteOption tunes a single Execute call.
type ExecuteOption func(*executeOperation)

type executeOperation struct {
	detach        bool
	suppressTrace bool
}

// Detach starts the command and returns without waiting for it. The stored
// result is left untouched.
func Detach() ExecuteOption {
	return func(op *executeOperation) {
		op.detach = true
	}
}

// SuppressTrace keeps trace lines out of the echoed output. They are never
// part of CapturedOutput either way.
func SuppressTrace() ExecuteOption {
	return func(op *executeOperation) {
		op.suppressTrace = true
	}
}
