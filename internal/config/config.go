package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/notepad/internal/validation"
)

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

const (
	AppName        = "notepad"
	ConfigFileName = "config.yaml"
	DayLayout      = "2006-01-02"
)

// Exit codes returned by the CLI.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var Themes = []string{"classic", "neon", "mono"}

// Config is the on-disk YAML configuration. Zero fields mean "use default".
type Config struct {
	Theme   string `yaml:"theme" validate:"oneof=classic neon mono"`
	Locale  string `yaml:"locale"`
	Data    string `yaml:"data"`     // dataset JSON; empty = built-in cards
	LogFile string `yaml:"log_file"` // empty = no logging
	Debug   bool   `yaml:"debug"`
	Today   string `yaml:"today" validate:"omitempty,datetime=2006-01-02"` // fixed reference date
	Watch   bool   `yaml:"watch"`
}

func Default() Config {
	return Config{Theme: "classic", Locale: "en"}
}

// DefaultPath is ~/.config/notepad/config.yaml (platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, AppName, ConfigFileName), nil
}

// Load merges the YAML file at path over the defaults. When explicit is
// false a missing file is fine; an explicitly requested file must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Data = expandHome(cfg.Data)
	cfg.LogFile = expandHome(cfg.LogFile)
	return cfg, cfg.Validate()
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}

// Validate checks the theme name (case-insensitively) and the Today date.
func (c Config) Validate() error {
	c.Theme = strings.ToLower(c.Theme)
	err := validation.Struct(c)
	fe, ok := validation.First(err)
	if !ok {
		return err
	}
	switch fe.StructField() {
	case "Theme":
		return fmt.Errorf("unknown theme %q (want one of %s)", fe.Value(), strings.Join(Themes, ", "))
	case "Today":
		return fmt.Errorf("today: %q is not a %s date", fe.Value(), DayLayout)
	}
	return fmt.Errorf("config: %w", err)
}

// Clock abstracts time.Now for deterministic rendering in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (f FixedClock) Now() time.Time { return time.Time(f) }

// ReferenceClock returns the clock the heatmap window ends on: Today when
// set, the wall clock otherwise.
func (c Config) ReferenceClock() (Clock, error) {
	if c.Today == "" {
		return RealClock{}, nil
	}
	d, err := time.ParseInLocation(DayLayout, c.Today, time.Local)
	if err != nil {
		return nil, fmt.Errorf("today: %w", err)
	}
	return FixedClock(d), nil
}
