package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-planner/internal/config"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, config.SourceFile, cfg.Network.Source)
	assert.Equal(t, 10*time.Minute, cfg.Cache.RouteCacheTTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFile_EnvFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nNETWORK_SOURCE=Postgres\nDB_HOST=db\nROUTE_CACHE_TTL=30\nCORS_ALLOW_ORIGINS=https://a.example, https://b.example\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("API_PORT", "7070")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, config.SourcePostgres, cfg.Network.Source)
	assert.Equal(t, 30*time.Second, cfg.Cache.RouteCacheTTL)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db port=5432")
}

func TestLoadFile_UnknownSource(t *testing.T) {
	t.Setenv("NETWORK_SOURCE", "ftp")
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
