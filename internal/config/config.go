// Package config resolves run settings from defaults, a TOML file, a .env
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/abhisek/trifactor/internal/catalog"
	"github.com/abhisek/trifactor/internal/followup"
	"github.com/abhisek/trifactor/internal/run"
)

// Config holds the application settings.
type Config struct {
	// Lens preselects a lens. Empty means ask.
	Lens string `toml:"lens,omitempty"`

	InitialCount  int `toml:"initial_count,omitempty"`
	FollowupCount int `toml:"followup_count,omitempty"`

	// Seed fixes the sampling sequence. 0 seeds from the clock.
	Seed uint64 `toml:"seed,omitempty"`

	// LogFile receives JSON logs. Empty disables logging.
	LogFile string `toml:"log_file,omitempty"`

	// ExportDir is where snapshot files are written.
	ExportDir string `toml:"export_dir,omitempty"`
}

// Default returns a Config with the built-in values.
func Default() Config {
	return Config{
		InitialCount:  run.DefaultInitialCount,
		FollowupCount: followup.DefaultCount,
		ExportDir:     ".",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/trifactor/config.toml, falling back
// to ~/.config.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "trifactor", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "trifactor", "config.toml")
}

// LoadFile overlays the TOML file at path onto cfg. A missing file is not
// an error when optional is set.
func LoadFile(cfg Config, path string, optional bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays TRIFACTOR_* environment variables onto cfg.
func FromEnv(cfg Config) (Config, error) {
	if v := os.Getenv("TRIFACTOR_LENS"); v != "" {
		cfg.Lens = v
	}
	if v := os.Getenv("TRIFACTOR_INITIAL_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("TRIFACTOR_INITIAL_COUNT: %w", err)
		}
		cfg.InitialCount = n
	}
	if v := os.Getenv("TRIFACTOR_FOLLOWUP_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("TRIFACTOR_FOLLOWUP_COUNT: %w", err)
		}
		cfg.FollowupCount = n
	}
	if v := os.Getenv("TRIFACTOR_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("TRIFACTOR_SEED: %w", err)
		}
		cfg.Seed = n
	}
	if v := os.Getenv("TRIFACTOR_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TRIFACTOR_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	return cfg, nil
}

// Load resolves the configuration: defaults, then the TOML file, then .env
// and the environment. An empty path reads DefaultPath if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	var err error
	if path == "" {
		cfg, err = LoadFile(cfg, DefaultPath(), true)
	} else {
		cfg, err = LoadFile(cfg, path, false)
	}
	if err != nil {
		return cfg, err
	}

	// .env is optional and never overrides variables already set.
	_ = godotenv.Load()

	return FromEnv(cfg)
}

// Validate rejects settings a run cannot start with.
func (c Config) Validate() error {
	if c.InitialCount <= 0 {
		return fmt.Errorf("initial_count must be > 0, got %d", c.InitialCount)
	}
	if c.FollowupCount <= 0 {
		return fmt.Errorf("followup_count must be > 0, got %d", c.FollowupCount)
	}
	if c.Lens != "" {
		if _, err := catalog.ParseLens(c.Lens); err != nil {
			return err
		}
	}
	return nil
}

// ParsedLens returns the configured lens, if any.
func (c Config) ParsedLens() (catalog.Lens, bool) {
	if c.Lens == "" {
		return "", false
	}
	l, err := catalog.ParseLens(c.Lens)
	if err != nil {
		return "", false
	}
	return l, true
}

// Rand returns the random source for sampling.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// MachineOptions returns run options for this configuration.
func (c Config) MachineOptions() run.Options {
	return run.Options{
		InitialCount:  c.InitialCount,
		FollowupCount: c.FollowupCount,
		Rand:          c.Rand(),
	}
}
