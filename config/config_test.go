package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	a := cfg.Arena()
	assert.Equal(t, 960, a.Width)
	assert.Equal(t, 720, a.Height)
	assert.Equal(t, 640, a.Source.Width)
	assert.Equal(t, 480, a.Source.Height)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeFile(t, `
log_level = "debug"
seed = 7

[camera]
device = 2
max_age = "250ms"

[marker]
lower = [100, 80, 80]
upper = [130, 255, 255]

[audio]
enabled = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 2, cfg.Camera.Device)
	assert.Equal(t, 250*time.Millisecond, cfg.Camera.MaxAge.Duration)
	assert.Equal(t, 640, cfg.Camera.Width, "unset keys keep defaults")
	assert.Equal(t, [3]float64{100, 80, 80}, cfg.Marker.Lower)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "colour = 1\n"},
		{"bad duration", "[camera]\nmax_age = \"soon\"\n"},
		{"bad level", "log_level = \"loud\"\n"},
		{"inverted marker", "[marker]\nlower = [50, 0, 0]\nupper = [10, 255, 255]\n"},
		{"zero window", "[window]\nwidth = 0\n"},
		{"zero audio duration", "[audio]\nduration = \"0s\"\n"},
		{"negative frequency", "[audio]\nfrequency = -440.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestOverridesApply(t *testing.T) {
	cfg, err := Overrides{Camera: -1}.Apply(Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "unset overrides change nothing")

	cfg, err = Overrides{Camera: 3, Seed: 9, Mute: true, LogLevel: "debug"}.Apply(Default())
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Camera.Device)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = Overrides{Camera: -1, LogLevel: "loud"}.Apply(Default())
	assert.Error(t, err, "overrides are validated")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
}
