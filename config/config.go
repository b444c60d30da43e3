// Package config loads game settings from an optional TOML file.
package config

import (
	"log/slog"
	"strings"
	"time"

	"hand-snake/game/types"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string `toml:"log_level"`
	Seed     uint64 `toml:"seed"` // 0 picks a time based seed

	Window Window `toml:"window"`
	Camera Camera `toml:"camera"`
	Marker Marker `toml:"marker"`
	Audio  Audio  `toml:"audio"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Camera struct {
	Device int      `toml:"device"`
	Width  int      `toml:"width"`
	Height int      `toml:"height"`
	Mirror bool     `toml:"mirror"`
	MaxAge Duration `toml:"max_age"` // oldest sample still handed to the game
}

// Marker selects the tracked blob by HSV range (OpenCV scale: H 0-180).
type Marker struct {
	Lower   [3]float64 `toml:"lower"`
	Upper   [3]float64 `toml:"upper"`
	MinArea int        `toml:"min_area"`
}

type Audio struct {
	Enabled   bool     `toml:"enabled"`
	Frequency float64  `toml:"frequency"`
	Duration  Duration `toml:"duration"`
}

// Duration decodes TOML strings such as "120ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "parse duration %q", text)
	}
	d.Duration = v
	return nil
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Window: Window{
			Title:  "Hand-Controlled Snake",
			Width:  types.ArenaWidth,
			Height: types.ArenaHeight,
		},
		Camera: Camera{
			Device: 0,
			Width:  types.SourceWidth,
			Height: types.SourceHeight,
			Mirror: true,
			MaxAge: Duration{100 * time.Millisecond},
		},
		Marker: Marker{
			Lower:   [3]float64{0, 30, 60},
			Upper:   [3]float64{20, 150, 255},
			MinArea: 400,
		},
		Audio: Audio{
			Enabled:   true,
			Frequency: 880,
			Duration:  Duration{80 * time.Millisecond},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		return errors.Errorf("camera size %dx%d must be positive", c.Camera.Width, c.Camera.Height)
	}
	if c.Camera.MaxAge.Duration <= 0 {
		return errors.New("camera max_age must be positive")
	}
	for i := range c.Marker.Lower {
		if c.Marker.Lower[i] > c.Marker.Upper[i] {
			return errors.Errorf("marker lower bound %v exceeds upper %v", c.Marker.Lower, c.Marker.Upper)
		}
	}
	if c.Audio.Frequency <= 0 {
		return errors.Errorf("audio frequency %v must be positive", c.Audio.Frequency)
	}
	if c.Audio.Duration.Duration <= 0 {
		return errors.Errorf("audio duration %v must be positive", c.Audio.Duration.Duration)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Overrides holds command line settings that win over the file.
// Zero values, and a negative Camera, leave the file setting alone.
type Overrides struct {
	Camera   int
	Seed     uint64
	Mute     bool
	LogLevel string
}

// Apply returns c with o applied, validated again.
func (o Overrides) Apply(c Config) (Config, error) {
	if o.Camera >= 0 {
		c.Camera.Device = o.Camera
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Mute {
		c.Audio.Enabled = false
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	return c, c.Validate()
}

// Arena is the play field implied by the window and camera sizes.
func (c Config) Arena() types.Arena {
	return types.Arena{
		Grid:   types.Grid{Width: c.Window.Width, Height: c.Window.Height},
		Source: types.Grid{Width: c.Camera.Width, Height: c.Camera.Height},
	}
}

func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return l, errors.Wrapf(err, "log level %q", s)
	}
	return l, nil
}
