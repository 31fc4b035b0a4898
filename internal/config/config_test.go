package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	require.Equal(t, 8008, cfg.Server.Port)
	require.Equal(t, "user-directory.db", cfg.Database.Path)
	require.Equal(t, "messages", cfg.I18n.MessagesDir)
	require.Equal(t, "en", cfg.I18n.DefaultLanguage)
	require.Equal(t, DefaultUserCacheCapacity, cfg.Cache.UserCapacity)
	require.Equal(t, DefaultTranslationCacheCapacity, cfg.Cache.TranslationCapacity)
	require.Equal(t, ":8008", cfg.Addr())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
database:
  path: /tmp/users.db
i18n:
  messagesDir: ./lang
  defaultLanguage: id
cache:
  userCapacity: 50
  translationCapacity: 200
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/users.db", cfg.Database.Path)
	require.Equal(t, "./lang", cfg.I18n.MessagesDir)
	require.Equal(t, "id", cfg.I18n.DefaultLanguage)
	require.Equal(t, 50, cfg.Cache.UserCapacity)
	require.Equal(t, 200, cfg.Cache.TranslationCapacity)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7001")
	t.Setenv("DATABASE_PATH", "/data/override.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, 7001, cfg.Server.Port)
	require.Equal(t, "/data/override.db", cfg.Database.Path)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  userCapacity: -5\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "user cache capacity")
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
