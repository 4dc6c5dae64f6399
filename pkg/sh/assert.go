package sh

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// AssertExitStatus checks the exit status of the most recent command.
func (s *Sh) AssertExitStatus(expected int) error {
	return s.assertExitStatus(expected, strconv.Itoa(expected))
}

// ReturnCodeShouldBe is AssertExitStatus for expected codes given as text,
// as step definitions receive them.
func (s *Sh) ReturnCodeShouldBe(expected string) error {
	code, err := strconv.Atoi(strings.TrimSpace(expected))
	if err != nil {
		return &ExitStatusParseError{Value: expected, Err: err}
	}
	return s.assertExitStatus(code, expected)
}

func (s *Sh) assertExitStatus(expected int, shown string) error {
	if !s.hasResult {
		return ErrNoResult
	}
	if expected != s.ExitStatus {
		return &AssertionError{
			Message: fmt.Sprintf("Expected return code to be \"%s\" but was \"%d\".", shown, s.ExitStatus),
		}
	}
	return nil
}

// OutputShouldBe checks the captured output of the most recent command
// matches expected exactly. The failure message carries a character diff.
func (s *Sh) OutputShouldBe(expected string) error {
	if !s.hasResult {
		return ErrNoResult
	}
	if expected == s.CapturedOutput {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, s.CapturedOutput, false)
	return &AssertionError{
		Message: strings.Join([]string{
			fmt.Sprintf("Expected output to be %q but was %q.", expected, s.CapturedOutput),
			"--- diff ---",
			dmp.DiffPrettyText(diffs),
			"--- end diff ---",
		}, "\n"),
	}
}

// OutputShouldContain checks the captured output of the most recent command contains substr.
func (s *Sh) OutputShouldContain(substr string) error {
	if !s.hasResult {
		return ErrNoResult
	}
	if !strings.Contains(s.CapturedOutput, substr) {
		return &AssertionError{
			Message: fmt.Sprintf("Expected output to contain %q but was %q.", substr, s.CapturedOutput),
		}
	}
	return nil
}
