package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg, err := Load()
	require.ErrorIs(t, err, ErrNoDatabase)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 2, cfg.RecomputeWorkers)
	assert.Equal(t, 500*time.Millisecond, cfg.RecomputePoll)
	assert.Equal(t, "0 2 1 * *", cfg.HistoryCron)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://rbs@localhost/rbs")
	t.Setenv("RECOMPUTE_WORKERS", "4")
	t.Setenv("RECOMPUTE_POLL", "2s")
	t.Setenv("HISTORY_CRON", "@daily")
	t.Setenv("RBS_TABLES_FILE", "/etc/rbs/tables.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 4, cfg.RecomputeWorkers)
	assert.Equal(t, 2*time.Second, cfg.RecomputePoll)
	assert.Equal(t, "@daily", cfg.HistoryCron)
	assert.Equal(t, "/etc/rbs/tables.yaml", cfg.TablesFile)
}

func TestEmptyCronDisablesSnapshots(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://rbs@localhost/rbs")
	t.Setenv("HISTORY_CRON", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.HistoryCron)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://rbs@localhost/rbs")

	t.Run("cron", func(t *testing.T) {
		t.Setenv("HISTORY_CRON", "every tuesday")
		_, err := Load()
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoDatabase)
	})
	t.Run("workers", func(t *testing.T) {
		t.Setenv("RECOMPUTE_WORKERS", "-1")
		_, err := Load()
		assert.Error(t, err)
	})
}
