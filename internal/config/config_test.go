package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[database]
host = "db"
user = "salon"
dbname = "salon_booking"

[agenda_api]
url = "http://agenda.local/api"

[billing_api]
url = "http://billing.local/api"
timeout = 3
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsAndEnvSecret(t *testing.T) {
	t.Setenv(EnvWebhookSecret, "events-secret")
	t.Setenv(EnvDBPassword, "db-pass")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "events-secret", cfg.Webhook.Secret)
	assert.Equal(t, "db-pass", cfg.Database.Password)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Calendar.SlotDurationMinutes)
	assert.Equal(t, "X-Event-Signature", cfg.Webhook.Headers.Signature)
	assert.False(t, cfg.Webhook.Dedup.Enabled)
	assert.Equal(t, 3, cfg.BillingAPI.Timeout)
	assert.Equal(t, 5, cfg.AgendaAPI.Timeout)
	assert.Contains(t, cfg.Database.DSN(), "password=db-pass")
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv(EnvWebhookSecret, "")

	_, err := Load(writeConfig(t, minimalConfig))
	assert.Error(t, err)
}

func TestLoad_DedupRequiresRedis(t *testing.T) {
	t.Setenv(EnvWebhookSecret, "events-secret")

	_, err := Load(writeConfig(t, minimalConfig+`
[webhook.dedup]
enabled = true
`))
	assert.ErrorContains(t, err, "redis.addr")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_CalendarTimezone(t *testing.T) {
	t.Setenv(EnvWebhookSecret, "events-secret")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)
	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg, err = Load(writeConfig(t, minimalConfig+`
[calendar]
timezone = "America/Bogota"
`))
	require.NoError(t, err)
	loc, err = cfg.Calendar.Location()
	require.NoError(t, err)
	_, offset := time.Date(2025, 3, 12, 16, 0, 0, 0, loc).Zone()
	assert.Equal(t, -5*3600, offset)

	_, err = Load(writeConfig(t, minimalConfig+`
[calendar]
timezone = "Mars/Olympus"
`))
	assert.ErrorContains(t, err, "calendar.timezone")
}
