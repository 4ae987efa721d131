package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"mesto"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	require.Equal(t, "https://auth.nomoreparties.co", cfg.AuthEndpoint)
	require.Equal(t, "https://mesto.nomoreparties.co/v1/cohort-15", cfg.APIEndpoint)
	require.Empty(t, cfg.APIAuthorization)
	require.Equal(t, "mesto.db", cfg.DatabaseDSN)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	withArgs(t)
	t.Setenv("MESTO_AUTH_ENDPOINT", "https://auth.test")
	t.Setenv("MESTO_API_AUTHORIZATION", "env-token")

	cfg := LoadConfig()

	require.Equal(t, "https://auth.test", cfg.AuthEndpoint)
	require.Equal(t, "env-token", cfg.APIAuthorization)
	// untouched fields keep their defaults
	require.Equal(t, "mesto.db", cfg.DatabaseDSN)
}

func TestLoadConfig_JSONOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_endpoint": "https://api.from-json",
		"database_dsn": "json.db"
	}`), 0o600))

	withArgs(t, "-c", path)
	t.Setenv("MESTO_API_ENDPOINT", "https://api.from-env")

	cfg := LoadConfig()

	require.Equal(t, "https://api.from-json", cfg.APIEndpoint)
	require.Equal(t, "json.db", cfg.DatabaseDSN)
	// keys absent from the file stay as earlier layers left them
	require.Equal(t, "https://auth.nomoreparties.co", cfg.AuthEndpoint)
}

func TestLoadConfig_FlagsWinOverAll(t *testing.T) {
	withArgs(t, "-api", "https://api.from-flag", "-t", "flag-token", "-l", "debug")
	t.Setenv("MESTO_API_ENDPOINT", "https://api.from-env")

	cfg := LoadConfig()

	require.Equal(t, "https://api.from-flag", cfg.APIEndpoint)
	require.Equal(t, "flag-token", cfg.APIAuthorization)
	require.Equal(t, "debug", cfg.LogLevel)
}
