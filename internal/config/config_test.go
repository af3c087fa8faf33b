package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileIsMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, ":8181", cfg.Listen)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "./calendar.db", cfg.Database.Path)
	assert.True(t, cfg.Pdf.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Pdf.Timeout)
	assert.Equal(t, "Event Calendar", cfg.Calendar.DefaultTitle)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := `
listen: ":9000"
db:
  driver: postgres
  host: db.internal
  port: 6543
pdf:
  timeout: 5s
  landscape: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 5*time.Second, cfg.Pdf.Timeout)
	assert.False(t, cfg.Pdf.Landscape)
	// untouched keys keep their defaults
	assert.Equal(t, "calendar", cfg.Database.User)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db:\n  path: ./from-file.db\n"), 0o600))
	t.Setenv("CALENDAR_DB_PATH", "/var/lib/calendar/events.db")
	t.Setenv("CALENDAR_PDF_ENABLED", "false")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/var/lib/calendar/events.db", cfg.Database.Path)
	assert.False(t, cfg.Pdf.Enabled)
}

func TestLoad_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0o600))

	_, err := Load(path)

	assert.Error(t, err)
}
