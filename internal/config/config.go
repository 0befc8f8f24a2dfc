package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Config is the optional user configuration for lx.
//
// Every field is optional; a missing file behaves like Default().
type Config struct {
	Version     int          `yaml:"version"`
	DefaultArgs []string     `yaml:"default_args"`
	Ignore      IgnoreConfig `yaml:"ignore"`
}

// IgnoreConfig adds ignore rules on top of the command line.
type IgnoreConfig struct {
	Globs        []string `yaml:"globs"`
	UseGitignore bool     `yaml:"use_gitignore"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Version:     1,
		DefaultArgs: []string{},
		Ignore: IgnoreConfig{
			Globs:        []string{},
			UseGitignore: false,
		},
	}
}

// Load reads and validates a config file. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml %s: %w", path, err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Version != 1 {
		return Config{}, fmt.Errorf("unsupported config version %d", cfg.Version)
	}
	cfg = mergeDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func mergeDefaults(cfg Config) Config {
	def := Default()
	if cfg.DefaultArgs == nil {
		cfg.DefaultArgs = def.DefaultArgs
	}
	if cfg.Ignore.Globs == nil {
		cfg.Ignore.Globs = def.Ignore.Globs
	}
	return cfg
}

// Validate enforces basic schema constraints.
func Validate(cfg Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("version must be 1")
	}
	for i, a := range cfg.DefaultArgs {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("default_args[%d] is empty", i)
		}
		switch a {
		case "--help", "-?", "--version", "-v":
			return fmt.Errorf("default_args must not contain %s", a)
		}
	}
	for i, g := range cfg.Ignore.Globs {
		if strings.TrimSpace(g) == "" {
			return fmt.Errorf("ignore.globs[%d] is empty", i)
		}
		if !doublestar.ValidatePattern(g) {
			return fmt.Errorf("ignore.globs[%d]: invalid glob pattern %q", i, g)
		}
	}
	return nil
}

// Write writes the config to disk with safe permissions.
func Write(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
