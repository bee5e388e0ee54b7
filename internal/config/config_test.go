package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "smpe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")

	path := writeConfig(t, `
database:
  path: /var/lib/smpe/smpe.db
logging:
  level: debug
  development: true
lookup:
  rate_limit_rps: 50
  burst: 10
declarations: declarations.yaml
scheduler:
  enabled: false
  timezone: Asia/Shanghai
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/smpe/smpe.db", cfg.Database.Path)
	assert.True(t, cfg.Database.Seed, "unset keys keep their defaults")
	assert.Equal(t, Logging{Level: "debug", Development: true}, cfg.Logging)
	assert.Equal(t, Lookup{RateLimitRPS: 50, Burst: 10}, cfg.Lookup)
	assert.Equal(t, "declarations.yaml", cfg.Declarations)
	assert.Equal(t, Scheduler{Enabled: false, Timezone: "Asia/Shanghai"}, cfg.Scheduler)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDBPath, ":memory:")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(writeConfig(t, "database:\n  path: file.db\n"))
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "database: [oops"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = Load(writeConfig(t, "logging:\n  level: loud\nlookup:\n  rate_limit_rps: -1\n"))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), `logging.level "loud"`)
	assert.Contains(t, err.Error(), "rate_limit_rps")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Database.Path = ""
	cfg.Lookup.Burst = -1
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "database.path is required")
	assert.Contains(t, err.Error(), "lookup.burst")

	cfg = Default()
	cfg.Logging.Level = "DEBUG"
	require.NoError(t, cfg.Validate(), "levels are case-insensitive")
}
