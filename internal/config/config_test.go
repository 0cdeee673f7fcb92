package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
http_port = 9090

[logs]
level = "debug"

[wizard]
idle_timeout = 600
max_sessions = 10

[calendar]
timezone = "Europe/Moscow"
closed_day = "Monday"

[catalog]
time_slots = ["10:00", "11:00"]

[[catalog.services]]
id = "cut"
name = "Cut"
duration_minutes = 30
price = 20.5

[submission]
mode = "http"
url = "http://localhost:8081"
timeout = 3
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "default kept")
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 600, cfg.Wizard.IdleTimeout)
	assert.Equal(t, 60, cfg.Wizard.CleanupInterval)
	assert.Equal(t, 10, cfg.Wizard.MaxSessions)

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())

	day, err := cfg.Calendar.Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day)

	slots, err := cfg.Catalog.Slots()
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, slots)

	services := cfg.Catalog.DomainServices()
	require.Len(t, services, 1)
	assert.Equal(t, "cut", services[0].ID)
	assert.Equal(t, 20.5, services[0].Price)

	assert.Equal(t, SubmissionModeHTTP, cfg.Submission.Mode)
	assert.Equal(t, 3, cfg.Submission.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Nil(t, cfg.Catalog.DomainServices())
	assert.Equal(t, 1500*time.Millisecond, cfg.Submission.Delay())

	slots, err := cfg.Catalog.Slots()
	require.NoError(t, err)
	assert.Nil(t, slots)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "broken toml", data: "[server\nhttp_port = 1"},
		{name: "bad port", data: "[server]\nhttp_port = 70000"},
		{name: "bad log level", data: "[logs]\nlevel = \"verbose\""},
		{name: "unknown timezone", data: "[calendar]\ntimezone = \"Mars/Olympus\""},
		{name: "unknown weekday", data: "[calendar]\nclosed_day = \"someday\""},
		{name: "bad slot", data: "[catalog]\ntime_slots = [\"25:00\"]"},
		{name: "service without id", data: "[[catalog.services]]\nname = \"Cut\"\nduration_minutes = 30"},
		{name: "unknown mode", data: "[submission]\nmode = \"queue\""},
		{name: "http mode without url", data: "[submission]\nmode = \"http\""},
		{name: "metrics path", data: "[metrics]\npath = \"metrics\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
