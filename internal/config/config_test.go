package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Display.Width != MinWidth {
		t.Errorf("Display.Width = %d, want %d", cfg.Display.Width, MinWidth)
	}
	if got := cfg.Display.GetWeekStart(); got != time.Monday {
		t.Errorf("GetWeekStart() = %v, want Monday", got)
	}
	if cfg.Display.Color != "auto" {
		t.Errorf("Display.Color = %q, want auto", cfg.Display.Color)
	}
	if got := cfg.Log.GetLevel(); got != zapcore.WarnLevel {
		t.Errorf("GetLevel() = %v, want warn", got)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
display:
  width: 40
  week_start: sunday
  color: never
log:
  file: logs/month-calendar.log
  level: debug
`)

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", path, err)
	}

	if cfg.Display.Width != 40 {
		t.Errorf("Display.Width = %d, want 40", cfg.Display.Width)
	}
	if got := cfg.Display.GetWeekStart(); got != time.Sunday {
		t.Errorf("GetWeekStart() = %v, want Sunday", got)
	}
	if cfg.Display.Color != "never" {
		t.Errorf("Display.Color = %q, want never", cfg.Display.Color)
	}
	if cfg.Log.File != "logs/month-calendar.log" {
		t.Errorf("Log.File = %q", cfg.Log.File)
	}
	if got := cfg.Log.GetLevel(); got != zapcore.DebugLevel {
		t.Errorf("GetLevel() = %v, want debug", got)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if err == nil {
		t.Fatal("Load() with missing explicit file returned nil error")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "display:\n  width: 30\n")
	t.Setenv("MONTH_CALENDAR_DISPLAY_WIDTH", "36")
	t.Setenv("MONTH_CALENDAR_DISPLAY_WEEK_START", "sun")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Display.Width != 36 {
		t.Errorf("Display.Width = %d, want 36", cfg.Display.Width)
	}
	if got := cfg.Display.GetWeekStart(); got != time.Sunday {
		t.Errorf("GetWeekStart() = %v, want Sunday", got)
	}
}

func TestLoad_FlagOverride(t *testing.T) {
	path := writeConfig(t, "display:\n  width: 30\n  color: always\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("width", MinWidth, "")
	flags.String("color", "auto", "")
	flags.String("week-start", "monday", "")
	if err := flags.Parse([]string{"--width", "50"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Display.Width != 50 {
		t.Errorf("Display.Width = %d, want 50 from flag", cfg.Display.Width)
	}
	if cfg.Display.Color != "always" {
		t.Errorf("Display.Color = %q, want always from file", cfg.Display.Color)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Display: DisplayConfig{Width: MinWidth, WeekStart: "monday", Color: "auto"},
			Log:     LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"narrow width", func(c *Config) { c.Display.Width = 20 }, "display.width"},
		{"bad week start", func(c *Config) { c.Display.WeekStart = "someday" }, "display.week_start"},
		{"padded upper-case color", func(c *Config) { c.Display.Color = " Always " }, ""},
		{"empty color", func(c *Config) { c.Display.Color = "" }, ""},
		{"bad color", func(c *Config) { c.Display.Color = "rainbow" }, "display.color"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestDisplayConfig_GetColor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"always", "always"},
		{" always", "always"},
		{"NEVER ", "never"},
		{"", "auto"},
		{"  ", "auto"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := DisplayConfig{Color: tt.input}

			if got := c.GetColor(); got != tt.want {
				t.Errorf("GetColor() with %q = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoad_PaddedColorFromFile(t *testing.T) {
	path := writeConfig(t, "display:\n  color: \" always\"\n")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.Display.GetColor(); got != "always" {
		t.Errorf("GetColor() = %q, want always", got)
	}
}
