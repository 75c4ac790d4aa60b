package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"USECONFIG_DIR":          "/etc/app",
		"USECONFIG_FLAG":         "$",
		"USECONFIG_DELIMITER":    ":",
		"USECONFIG_KEY":          "profile",
		"USECONFIG_NAME":         "prod",
		"USECONFIG_DEFAULT_NAME": "dev",
	})

	// Act
	opts := &Options{}
	err := parseEnv(opts)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/etc/app", opts.ConfigDir)
	assert.Equal(t, "$", opts.Flag)
	assert.Equal(t, ":", opts.Delimiter)
	assert.Equal(t, "profile", opts.ConfigKey)
	assert.Empty(t, opts.ConfigName)
	assert.Equal(t, "prod", opts.EnvConfigName)
	assert.Equal(t, "dev", opts.DefaultConfigName)
	assert.Nil(t, opts.Args)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"USECONFIG_DIR": "./conf",
	})

	// Act
	opts := &Options{}
	err := parseEnv(opts)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "./conf", opts.ConfigDir)
	assert.Empty(t, opts.Flag)
	assert.Empty(t, opts.ConfigKey)
	assert.Empty(t, opts.EnvConfigName)
}

func TestParseEnv_NoVariables(t *testing.T) {
	clearEnvVars(t)

	opts := &Options{}
	require.NoError(t, parseEnv(opts))
	assert.Equal(t, Options{}, *opts)
}

// TestParseEnv_IgnoresUnprefixed verifies that only USECONFIG_* variables are read.
func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	setEnvVars(t, map[string]string{
		"DIR":  "/wrong",
		"NAME": "wrong",
	})

	opts := &Options{}
	require.NoError(t, parseEnv(opts))
	assert.Empty(t, opts.ConfigDir)
	assert.Empty(t, opts.EnvConfigName)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"USECONFIG_DIR",
		"USECONFIG_FLAG",
		"USECONFIG_DELIMITER",
		"USECONFIG_KEY",
		"USECONFIG_NAME",
		"USECONFIG_DEFAULT_NAME",
	}
	for _, k := range keys {
		if prev, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, prev) })
		}
	}
}
