package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":5000", cfg.HTTPAddress)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Empty(t, cfg.KafkaBrokers, "event publishing defaults to disabled")
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":8080")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadCredentialsFileOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	contents := `{"secret":"file-secret","issuer":"file-issuer","admin_url":"https://id.example.com","admin_key":"file-key"}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("IDENTITY_CREDENTIALS_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "file-secret", cfg.JWTSecret)
	require.Equal(t, "file-issuer", cfg.JWTIssuer)
	require.Equal(t, "https://id.example.com", cfg.IdentityAdminURL)
	require.Equal(t, "file-key", cfg.IdentityAdminKey)
}

func TestLoadRejectsIncompleteCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"secret":"only"}`), 0o600))

	t.Setenv("IDENTITY_CREDENTIALS_FILE", path)

	_, err := Load()
	require.Error(t, err)
}
