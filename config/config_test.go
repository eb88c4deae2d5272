package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, 720*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "lifeos_session", cfg.Auth.CookieName)
	assert.Equal(t, []string{"primary"}, cfg.GoogleCalendar.CalendarIDs)
	assert.Equal(t, "00:05", cfg.Scheduler.OverdueSweepAt)
}

func TestLoadFile_Overrides(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `
http_server:
  port: 9090
database:
  dsn: /tmp/x.db
auth:
  session_ttl: 2h
google_calendar:
  calendar_ids: ["primary", "work@example.com"]
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "/tmp/x.db", cfg.Database.DSN)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, []string{"primary", "work@example.com"}, cfg.GoogleCalendar.CalendarIDs)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	t.Setenv("LIFEOS_RATE_LIMIT_REQUESTS_PER_MIN", "30")
	cfg, err := LoadFile(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMin)
}

func TestLoadFile_InvalidTimezone(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "app:\n  timezone: Not/AZone\n"))
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", " c "}))
	assert.Nil(t, splitList([]string{" "}))
}
