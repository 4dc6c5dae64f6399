package sh

import (
	"testing"

	"acceptance/pkg/test"

	"github.com/stretchr/testify/assert"
)

func TestFilterTrace(t *testing.T) {
	lines := FilterTrace("+ echo hi\nhi\n+x\n  + indented\n+ ", "+ ")

	assert.Equal(t, []Line{
		{Text: "+ echo hi", Trace: true},
		{Text: "hi"},
		{Text: "+x"},
		{Text: "  + indented"},
		{Text: "+ ", Trace: true},
	}, lines)
}

func TestFilterTrace_Empty(t *testing.T) {
	assert.Equal(t, []Line{{Text: ""}}, FilterTrace("", "+ "))
}

func TestStripTrace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed", "+ echo hello\nhello\n+ echo oops\noops\n+ exit 3", "hello\noops"},
		{"only trace", "+ exit 5", ""},
		{"no trace", "a\n\nb", "a\n\nb"},
		{"nested trace prefix", "++ date\n+ echo x\nx", "++ date\nx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripTrace(tt.input, "+ "))
		})
	}
}

func TestStripTrace_Idempotent(t *testing.T) {
	once := StripTrace(test.TracedOutput, "+ ")

	assert.Equal(t, once, StripTrace(once, "+ "))
}
