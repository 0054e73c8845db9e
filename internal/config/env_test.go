package config

import (
	"os"
	"testing"
)

// clearEnv unsets names for the duration of t and restores them afterwards.
func clearEnv(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("unset %s: %v", name, err)
		}
	}
}

// setEnv sets every pair for the duration of t.
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for name, value := range vars {
		t.Setenv(name, value)
	}
}

var baseEnvVars = []string{"ENV", "LOGGER_LEVEL", "LOGGER_FORMAT", "LEVEL", "FORMAT"}
