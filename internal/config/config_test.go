package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Asia/Seoul", cfg.Timezone)
	assert.Equal(t, ":8484", cfg.Address)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "09:00", cfg.CheckIn)
	assert.Equal(t, "10:00", cfg.CheckOut)
	assert.Equal(t, "09:00", cfg.DaycareStart)
	assert.Equal(t, "16:00", cfg.DaycareEnd)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
env: prod
log_level: debug
timezone: UTC
http_server:
  address: ":9090"
  read_timeout: 2s
  write_timeout: 3s
  idle_timeout: 30s
form:
  checkin: "08:30"
  checkout: "11:00"
  daycare_start: "10:00"
  daycare_end: "18:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 3*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 30*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "08:30", cfg.CheckIn)
	assert.Equal(t, "11:00", cfg.CheckOut)
	assert.Equal(t, "10:00", cfg.DaycareStart)
	assert.Equal(t, "18:00", cfg.DaycareEnd)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
env: prod
http_server:
  address: ":9090"
`)
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("APP_ENV", "dev")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Address)
	assert.Equal(t, "dev", cfg.Env)
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	path := writeConfig(t, "timezone: UTC\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad timezone", "timezone: Mars/Olympus\n", "timezone"},
		{"bad checkin", "form:\n  checkin: \"9am\"\n", "form.checkin"},
		{"bad daycare end", "form:\n  daycare_end: \"25:00\"\n", "form.daycare_end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Asia/Seoul"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Seoul", loc.String())
}
