// Package config loads the searchfield CLI configuration from YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/searchfield/cmd/searchfield/internal/script"
	"github.com/go-drift/searchfield/pkg/animation"
	"github.com/go-drift/searchfield/pkg/graphics"
	"github.com/go-drift/searchfield/pkg/icons"
	"github.com/go-drift/searchfield/pkg/searchfield"
)

// File is the on-disk configuration.
type File struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	FPS    int `yaml:"fps" toml:"fps"`

	Hint       string              `yaml:"hint" toml:"hint"`
	Text       string              `yaml:"text" toml:"text"`
	Accent     graphics.Color      `yaml:"accent" toml:"accent"`
	Background graphics.Color      `yaml:"background" toml:"background"`
	Foreground graphics.Color      `yaml:"foreground" toml:"foreground"`
	Selection  graphics.Color      `yaml:"selection" toml:"selection"`
	Insets     graphics.EdgeInsets `yaml:"insets" toml:"insets"`
	FontSize   float64             `yaml:"font_size" toml:"font_size"`

	Animation Animation `yaml:"animation" toml:"animation"`

	Icons     string      `yaml:"icons,omitempty" toml:"icons,omitempty"`
	IconNames icons.Names `yaml:"icon_names,omitempty" toml:"icon_names,omitempty"`

	Output string   `yaml:"output" toml:"output"`
	Script []string `yaml:"script" toml:"script"`
	Corpus []string `yaml:"corpus" toml:"corpus"`

	// path is where the file was loaded from; relative paths resolve against its directory.
	path string
}

// Animation holds the reveal timing.
type Animation struct {
	Duration     Duration `yaml:"duration" toml:"duration"`
	Resolution   Duration `yaml:"resolution" toml:"resolution"`
	Acceleration float64  `yaml:"acceleration" toml:"acceleration"`
	Deceleration float64  `yaml:"deceleration" toml:"deceleration"`
	// Curve names an easing curve that replaces acceleration/deceleration.
	Curve string `yaml:"curve,omitempty" toml:"curve,omitempty"`
}

// Duration is a time.Duration written as a string such as "300ms".
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *File {
	w := searchfield.DefaultConfig()
	return &File{
		Width:      240,
		Height:     40,
		FPS:        60,
		Hint:       w.HintText,
		Accent:     w.Accent,
		Background: w.Background,
		Foreground: w.Foreground,
		Selection:  w.SelectionColor,
		Insets:     w.Insets,
		FontSize:   w.FontSize,
		Animation: Animation{
			Duration:     Duration(w.Duration),
			Resolution:   Duration(w.Resolution),
			Acceleration: w.Acceleration,
			Deceleration: w.Deceleration,
		},
		Output: "frames",
		Script: []string{"click", "wait 400ms", "done", "wait 400ms"},
		Corpus: []string{"animation", "canvas", "gradient", "search", "slider", "spinner"},
	}
}

// Load reads path over Default and validates the result. The format is
// chosen by extension: .toml for TOML, anything else for YAML. An empty
// path returns the defaults.
func Load(path string) (*File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := Decode(cfg, filepath.Ext(path), data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.path = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg using the format implied by ext.
func Decode(cfg *File, ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Validate checks the frame settings, the script and the widget config.
func (f *File) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("size must be positive, got %dx%d", f.Width, f.Height)
	}
	if f.FPS < 1 || f.FPS > 240 {
		return fmt.Errorf("fps must be between 1 and 240, got %d", f.FPS)
	}
	if f.Output == "" {
		return errors.New("output must not be empty")
	}
	if _, err := f.Steps(); err != nil {
		return err
	}
	if _, err := animation.ParseCurve(f.Animation.Curve); err != nil {
		return err
	}
	return f.Widget().Validate()
}

// Widget returns the field configuration. An unparsable curve is left
// unset; Validate reports it.
func (f *File) Widget() searchfield.Config {
	curve, _ := animation.ParseCurve(f.Animation.Curve)
	return searchfield.Config{
		Curve:          curve,
		HintText:       f.Hint,
		Accent:         f.Accent,
		Background:     f.Background,
		Foreground:     f.Foreground,
		SelectionColor: f.Selection,
		Insets:         f.Insets,
		FontSize:       f.FontSize,
		Duration:       time.Duration(f.Animation.Duration),
		Resolution:     time.Duration(f.Animation.Resolution),
		Acceleration:   f.Animation.Acceleration,
		Deceleration:   f.Animation.Deceleration,
	}
}

// Steps parses the script.
func (f *File) Steps() ([]script.Step, error) {
	return script.Parse(f.Script)
}

// FrameDuration is the clock step between rendered frames.
func (f *File) FrameDuration() time.Duration {
	return time.Second / time.Duration(f.FPS)
}

// Path returns the file the configuration was loaded from, if any.
func (f *File) Path() string {
	return f.path
}

// Resolve returns p relative to the config file's directory. Absolute
// paths and configs without a file are returned unchanged.
func (f *File) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || f.path == "" {
		return p
	}
	return filepath.Join(filepath.Dir(f.path), p)
}
