package sh

import "strings"

// asciiSpace is the set trimmed from both ends of combined output. Unicode
// spaces such as U+00A0 belong to the command's output and are kept.
const asciiSpace = " \t\n\r\v\f"

// Line is one line of a command's combined output.
type Line struct {
	Text  string
	Trace bool // echoed by the shell before executing, not produced by the command
}

// FilterTrace splits output on line feeds and marks the lines starting with
// prefix as trace lines. Output is expected to be trimmed already; blank lines
// in the middle are kept.
func FilterTrace(output, prefix string) []Line {
	raw := strings.Split(output, "\n")
	lines := make([]Line, 0, len(raw))
	for _, text := range raw {
		lines = append(lines, Line{Text: text, Trace: strings.HasPrefix(text, prefix)})
	}
	return lines
}

// StripTrace returns output without its trace lines.
func StripTrace(output, prefix string) string {
	return joinCommandLines(FilterTrace(output, prefix))
}

// joinCommandLines rejoins the non-trace lines with line feeds.
func joinCommandLines(lines []Line) string {
	var kept []string
	for _, line := range lines {
		if !line.Trace {
			kept = append(kept, line.Text)
		}
	}
	return strings.Join(kept, "\n")
}
