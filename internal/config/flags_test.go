package config

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := ParseFlags("useconfig", []string{})

	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.False(t, cfg.Watch)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, DefaultConfigDir, cfg.Options.ConfigDir)
	assert.Equal(t, DefaultFlag, cfg.Options.Flag)
	assert.Equal(t, DefaultConfigKey, cfg.Options.ConfigKey)
	// An empty, non-nil Args stops the loader from falling back to os.Args.
	assert.NotNil(t, cfg.Options.Args)
	assert.Empty(t, cfg.Options.Args)
}

func TestParseFlags_AllFlags(t *testing.T) {
	clearEnvVars(t)

	cfg, err := ParseFlags("useconfig", []string{
		"--dir", "./conf",
		"--flag=$",
		"--delimiter", ":",
		"--key", "profile",
		"--name", "prod",
		"--default-name", "dev",
		"--output", "yaml",
		"--watch",
		"--log-level=debug",
	})

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "./conf", cfg.Options.ConfigDir)
	assert.Equal(t, "$", cfg.Options.Flag)
	assert.Equal(t, ":", cfg.Options.Delimiter)
	assert.Equal(t, "profile", cfg.Options.ConfigKey)
	assert.Equal(t, "prod", cfg.Options.ConfigName)
	assert.Equal(t, "dev", cfg.Options.DefaultConfigName)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.True(t, cfg.Watch)
	assert.Empty(t, cfg.Options.Args)
}

// TestParseFlags_UnknownFlagsPassThrough verifies that argv variables meant
// for the loader survive flag parsing in their original order.
func TestParseFlags_UnknownFlagsPassThrough(t *testing.T) {
	clearEnvVars(t)

	cfg, err := ParseFlags("useconfig", []string{
		"--config", "dev",
		"--dir", "./conf",
		"--mode=fast",
		"plain",
		"--watch",
	})

	require.NoError(t, err)
	assert.Equal(t, "./conf", cfg.Options.ConfigDir)
	assert.True(t, cfg.Watch)
	assert.Equal(t, []string{"--config", "dev", "--mode=fast", "plain"}, cfg.Options.Args)
}

func TestParseFlags_TerminatorKeepsRest(t *testing.T) {
	clearEnvVars(t)

	cfg, err := ParseFlags("useconfig", []string{"--output", "json", "--", "--dir", "x"})

	require.NoError(t, err)
	assert.Equal(t, DefaultConfigDir, cfg.Options.ConfigDir)
	assert.Equal(t, []string{"--", "--dir", "x"}, cfg.Options.Args)
}

func TestParseFlags_EnvFillsUnsetFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"USECONFIG_DIR":  "/etc/app",
		"USECONFIG_NAME": "prod",
	})

	cfg, err := ParseFlags("useconfig", []string{"--name", "staging"})

	require.NoError(t, err)
	assert.Equal(t, "/etc/app", cfg.Options.ConfigDir)
	assert.Equal(t, "staging", cfg.Options.ConfigName)
	assert.Equal(t, "prod", cfg.Options.EnvConfigName)
}

func TestParseFlags_InvalidOutput(t *testing.T) {
	clearEnvVars(t)

	cfg, err := ParseFlags("useconfig", []string{"--output", "toml"})

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestParseFlags_InvalidFlagPrefix(t *testing.T) {
	clearEnvVars(t)

	_, err := ParseFlags("useconfig", []string{"--flag", " "})

	assert.ErrorIs(t, err, ErrInvalidFlag)
}

func TestParseFlags_Help(t *testing.T) {
	clearEnvVars(t)

	_, err := ParseFlags("useconfig", []string{"--help"})

	assert.True(t, errors.Is(err, pflag.ErrHelp))
}

func TestPassthrough(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("dir", "", "")
	fs.Bool("watch", false, "")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "empty", args: []string{}, want: []string{}},
		{name: "value in next token", args: []string{"--dir", "x", "a"}, want: []string{"a"}},
		{name: "inline value", args: []string{"--dir=x", "a"}, want: []string{"a"}},
		{name: "bool flag keeps next", args: []string{"--watch", "a"}, want: []string{"a"}},
		{name: "unknown kept", args: []string{"--config", "dev"}, want: []string{"--config", "dev"}},
		{name: "single dash kept", args: []string{"-x", "$config:dev"}, want: []string{"-x", "$config:dev"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, passthrough(fs, tt.args))
		})
	}
}
