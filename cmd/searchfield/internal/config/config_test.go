package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/searchfield/pkg/graphics"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 240 || cfg.Height != 40 || cfg.FPS != 60 {
		t.Errorf("defaults = %dx%d @%d", cfg.Width, cfg.Height, cfg.FPS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q for defaults", cfg.Path())
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "field.yaml", `
width: 320
height: 48
hint: Find a file
accent: "#FF8800"
background: "#222"
animation:
  duration: 500ms
  acceleration: 0.2
  deceleration: 0.3
script:
  - type gopher
  - click
  - wait 1s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 48 || cfg.Hint != "Find a file" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Accent != graphics.Color(0xFFFF8800) || cfg.Background != graphics.Color(0xFF222222) {
		t.Errorf("colors = %v %v", cfg.Accent, cfg.Background)
	}
	if cfg.Foreground != graphics.ColorBlack {
		t.Errorf("unset foreground = %v, want default", cfg.Foreground)
	}
	w := cfg.Widget()
	if w.Duration != 500*time.Millisecond || w.Acceleration != 0.2 || w.Deceleration != 0.3 {
		t.Errorf("animation = %+v", cfg.Animation)
	}
	if cfg.FPS != 60 {
		t.Errorf("unset fps = %d, want default", cfg.FPS)
	}
	if len(cfg.Script) != 3 {
		t.Errorf("script = %v", cfg.Script)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "field.toml", `
width = 200
fps = 30
accent = "#03AFFF"
corpus = ["alpha", "beta"]

[animation]
duration = "250ms"

[insets]
left = 12
right = 44
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 200 || cfg.FPS != 30 || cfg.Height != 40 {
		t.Errorf("cfg = %dx%d @%d", cfg.Width, cfg.Height, cfg.FPS)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if time.Duration(cfg.Animation.Duration) != 250*time.Millisecond {
		t.Errorf("duration = %v", time.Duration(cfg.Animation.Duration))
	}
	if cfg.Insets.Left != 12 || cfg.Insets.Right != 44 {
		t.Errorf("insets = %+v", cfg.Insets)
	}
	if cfg.FrameDuration() != time.Second/30 {
		t.Errorf("frame = %v", cfg.FrameDuration())
	}
	if len(cfg.Corpus) != 2 {
		t.Errorf("corpus = %v", cfg.Corpus)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, file, body, want string
	}{
		{"bad color", "a.yaml", "accent: purple\n", "invalid color"},
		{"bad duration", "a.toml", "[animation]\nduration = \"soon\"\n", "failed to parse"},
		{"zero size", "a.yaml", "width: 0\n", "size must be positive"},
		{"fps", "a.yaml", "fps: 1000\n", "fps"},
		{"script", "a.yaml", "script: [jump]\n", "unknown step"},
		{"easing", "a.yaml", "animation:\n  acceleration: 0.9\n", "invalid"},
		{"curve", "a.yaml", "animation:\n  curve: bounce\n", "unknown curve"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolve(t *testing.T) {
	path := writeConfig(t, "field.yaml", "icons: assets\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Resolve(cfg.Icons), filepath.Join(filepath.Dir(path), "assets"); got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
	if got := cfg.Resolve("/abs/out"); got != "/abs/out" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := Default().Resolve("frames"); got != "frames" {
		t.Errorf("default resolve = %q", got)
	}
}

func TestLoad_Curve(t *testing.T) {
	cfg, err := Load(writeConfig(t, "c.yaml", "animation:\n  curve: ease-in-out\n"))
	if err != nil {
		t.Fatal(err)
	}
	if curve := cfg.Widget().Curve; curve == nil || curve(1) != 1 {
		t.Fatal("curve not applied")
	}
	if Default().Widget().Curve != nil {
		t.Error("default config should use the acceleration curve")
	}
}
