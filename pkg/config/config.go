// Package config loads harness settings for the acceptance shell helper.
package config

import (
	"fmt"
	"strings"

	"acceptance/pkg/log"
	"acceptance/pkg/system"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const DefaultTracePrefix = "+ "

// Config describes how commands are launched and how their trace is recognised.
type Config struct {
	Shell       string   `yaml:"shell"`
	ShellFlags  []string `yaml:"shell-flags,omitempty"`
	TracePrefix string   `yaml:"trace-prefix"`
	LogLevel    string   `yaml:"log-level"`
}

// Default returns bash in trace mode, which echoes each executed line as "+ <line>".
func Default() *Config {
	return &Config{
		Shell:       system.DefaultShell,
		ShellFlags:  []string{system.DefaultShellFlag},
		TracePrefix: DefaultTracePrefix,
		LogLevel:    "info",
	}
}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	if len(es) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, e := range es {
		sb.WriteString(fmt.Sprintf("  - %s\n", e.Error()))
	}
	return sb.String()
}

func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(c.Shell) == "" {
		errs = append(errs, ValidationError{Field: "shell", Message: "shell cannot be empty"})
	}
	for i, flag := range c.ShellFlags {
		if strings.TrimSpace(flag) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("shell-flags[%d]", i), Message: "shell flag cannot be empty"})
		}
	}
	if c.TracePrefix == "" {
		errs = append(errs, ValidationError{Field: "trace-prefix", Message: "trace prefix cannot be empty"})
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, ValidationError{Field: "log-level", Message: err.Error()})
	}

	return errs
}

// Load reads a YAML file from system.AppFs. Keys absent from the file keep
// their Default values.
func Load(filename string, logger log.Logger) (*Config, error) {
	content, err := afero.ReadFile(system.AppFs, filename)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}

	logger.Debug("Loaded harness config", "path", filename, "shell", cfg.Shell, "trace_prefix", cfg.TracePrefix)
	return cfg, nil
}
