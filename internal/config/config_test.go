package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Contains(t, cfg.DB.DSN, "port=5432")
	assert.Equal(t, "user:locations", cfg.Geo.IndexKey)
	assert.Equal(t, 10*time.Minute, cfg.Geo.ReconcileInterval)
	assert.Equal(t, "127.0.0.1:50051", cfg.GRPCAddr())
	assert.NotEmpty(t, cfg.App.InstanceID)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("GRPC_PORT", "6000")
	t.Setenv("LOG_SOURCE", "true")
	t.Setenv("GEO_RECONCILE_INTERVAL", "90s")
	t.Setenv("APP_INSTANCE_ID", "node-a")

	cfg := config.New()

	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "nearby:nearby@tcp(db.internal:3306)/nearby?parseTime=true&charset=utf8mb4&loc=UTC", cfg.DB.DSN)
	assert.Equal(t, "6000", cfg.GRPC.Port)
	assert.True(t, cfg.Log.Source)
	assert.Equal(t, 90*time.Second, cfg.Geo.ReconcileInterval)
	assert.Equal(t, "node-a", cfg.App.InstanceID)
}

func TestNew_ExplicitDSNWins(t *testing.T) {
	t.Setenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/legacy")

	cfg := config.New()
	assert.Equal(t, "root:root@tcp(localhost:3306)/legacy", cfg.DB.DSN)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("redis:\n  addr: cache:6380\nnotify:\n  workers: 9\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 9, cfg.Notify.Workers)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("redis: [unterminated"), 0o600))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Cleanup(func() { os.Unsetenv("HTTP_PORT") })

	dir := t.TempDir()
	env := []byte("DB_DRIVER=sqlite\nHTTP_PORT=9191\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), env, 0o600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "9191", cfg.HTTP.Port)
}
