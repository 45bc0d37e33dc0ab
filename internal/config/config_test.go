package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("QF_FIREBASE_CREDENTIALS_FILE", "/etc/qf/key.json")
	t.Setenv("QF_FIREBASE_DATABASE_URL", "https://qf-test.firebaseio.com")

	// explicit path that does not exist: env must still carry the config
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/etc/qf/key.json", cfg.Firebase.CredentialsFile)
	assert.Equal(t, "https://qf-test.firebaseio.com", cfg.Firebase.DatabaseURL)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "firebase:\n" +
		"  credentials_file: key.json\n" +
		"  database_url: https://from-file.firebaseio.com\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	t.Setenv("QF_FIREBASE_DATABASE_URL", "https://from-env.firebaseio.com")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "key.json", cfg.Firebase.CredentialsFile)
	assert.Equal(t, "https://from-env.firebaseio.com", cfg.Firebase.DatabaseURL)
}

func TestLoadMissingFirebaseSettings(t *testing.T) {
	t.Setenv("QF_FIREBASE_CREDENTIALS_FILE", "")
	t.Setenv("QF_FIREBASE_DATABASE_URL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
