package config

import (
	"log/slog"
	"testing"

	"acceptance/pkg/system"
	"acceptance/pkg/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigTest(t *testing.T) *test.MockLogger {
	system.AppFs = test.SetupMockFilesystem(t)
	return test.NewMockLogger(slog.LevelDebug)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "/bin/bash", cfg.Shell)
	assert.Equal(t, []string{"-xc"}, cfg.ShellFlags)
	assert.Equal(t, "+ ", cfg.TracePrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("successfully loads a full config", func(t *testing.T) {
		logger := setupConfigTest(t)
		test.CreateTestFile(t, system.AppFs, "/etc/acceptance.yaml", test.SampleConfigYAML())

		cfg, err := Load("/etc/acceptance.yaml", logger)
		require.NoError(t, err)

		assert.Equal(t, "/bin/sh", cfg.Shell)
		assert.Equal(t, []string{"-xc"}, cfg.ShellFlags)
		assert.Equal(t, "+ ", cfg.TracePrefix)
		assert.Equal(t, "debug", cfg.LogLevel)
		test.AssertLogContains(t, logger, "Loaded harness config")
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		logger := setupConfigTest(t)
		test.CreateTestFile(t, system.AppFs, "/partial.yaml", "log-level: warn\n")

		cfg, err := Load("/partial.yaml", logger)
		require.NoError(t, err)

		assert.Equal(t, "/bin/bash", cfg.Shell)
		assert.Equal(t, []string{"-xc"}, cfg.ShellFlags)
		assert.Equal(t, "+ ", cfg.TracePrefix)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("empty file yields defaults", func(t *testing.T) {
		logger := setupConfigTest(t)
		test.CreateTestFile(t, system.AppFs, "/empty.yaml", "")

		cfg, err := Load("/empty.yaml", logger)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})
}

func TestLoad_ErrorCases(t *testing.T) {
	tests := []struct {
		name       string
		configYAML string
		create     bool
		errorMsg   string
	}{
		{
			name:     "file does not exist",
			errorMsg: "file does not exist",
		},
		{
			name:       "malformed YAML - unclosed quote",
			configYAML: "shell: \"/bin/bash\ntrace-prefix: x\n",
			create:     true,
			errorMsg:   "failed to parse",
		},
		{
			name:       "invalid YAML structure - array instead of object",
			configYAML: "- shell: /bin/bash\n",
			create:     true,
			errorMsg:   "failed to parse",
		},
		{
			name:       "wrong type for shell flags",
			configYAML: "shell-flags:\n  nested: map\n",
			create:     true,
			errorMsg:   "failed to parse",
		},
		{
			name:       "validation failure",
			configYAML: test.InvalidConfigYAML(),
			create:     true,
			errorMsg:   "configuration validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := setupConfigTest(t)
			if tt.create {
				test.CreateTestFile(t, system.AppFs, "/config.yaml", tt.configYAML)
			}

			cfg, err := Load("/config.yaml", logger)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Shell:       " ",
		ShellFlags:  []string{"-x", ""},
		TracePrefix: "",
		LogLevel:    "loud",
	}

	errs := cfg.Validate()
	require.Len(t, errs, 4)

	fields := []string{}
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"shell", "shell-flags[1]", "trace-prefix", "log-level"}, fields)
	assert.Contains(t, errs.Error(), "  - log-level: invalid log level: loud\n")
}

func TestValidationErrors_Empty(t *testing.T) {
	assert.Equal(t, "", ValidationErrors{}.Error())
}
