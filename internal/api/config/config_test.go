package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	yaml := []byte(`
server:
  port: 9090
  allowed_origins:
    - "http://localhost:3000"
password:
  cost: 4
database:
  driver: sqlite
  dsn: "blog.db"
jwt:
  secret: "s3cret"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), yaml, 0o644))

	require.NoError(t, LoadConfig())
	assert.Equal(t, 9090, Cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, Cfg.Server.AllowedOrigins)
	assert.Equal(t, 4, Cfg.Password.Cost)
	assert.Equal(t, "sqlite", Cfg.DB.Driver)
	assert.Equal(t, "blog.db", Cfg.DB.DSN)
	assert.Equal(t, "s3cret", Cfg.JWT.Secret)
	// defaults
	assert.Equal(t, 24, Cfg.JWT.ExpirationHours)
	assert.Equal(t, "info", Cfg.Log.Level)
	assert.False(t, Cfg.Redis.Enable)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("BLOG_DATABASE_DSN", "from-env.db")
	t.Setenv("BLOG_DATABASE_DRIVER", "sqlite")

	require.NoError(t, LoadConfig())
	assert.Equal(t, "from-env.db", Cfg.DB.DSN)
	assert.Equal(t, "sqlite", Cfg.DB.Driver)
	assert.Equal(t, 8080, Cfg.Server.Port)
	assert.Equal(t, 10, Cfg.Password.Cost)
}

func TestLoadConfigRequiresDSN(t *testing.T) {
	chdirTemp(t)
	require.Error(t, LoadConfig())
}
