package test

// TracedOutput is combined output as bash -x produces it for
// `echo hello; echo oops >&2; exit 3`.
const TracedOutput = "+ echo hello\nhello\n+ echo oops\noops\n+ exit 3\n"

// SampleConfigYAML returns a complete harness configuration.
func SampleConfigYAML() string {
	return `shell: /bin/sh
shell-flags:
  - -xc
trace-prefix: "+ "
log-level: debug
`
}

// InvalidConfigYAML returns a configuration that parses but fails validation.
func InvalidConfigYAML() string {
	return `shell: ""
shell-flags:
  - ""
trace-prefix: ""
log-level: loud
`
}
