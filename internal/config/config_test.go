package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestFindConfigPathPrecedence(t *testing.T) {
	t.Setenv("LX_CONFIG", "/tmp/from-env.yaml")

	if got := FindConfigPath("/tmp/explicit.yaml"); got != "/tmp/explicit.yaml" {
		t.Fatalf("FindConfigPath explicit=%q", got)
	}
	if got := FindConfigPath(""); got != "/tmp/from-env.yaml" {
		t.Fatalf("FindConfigPath env=%q", got)
	}

	t.Setenv("LX_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	got := FindConfigPath("")
	if !strings.HasSuffix(got, filepath.Join("lx", "config.yaml")) {
		t.Fatalf("FindConfigPath default=%q", got)
	}
}

func TestLoadMissingFileIsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("cfg=%+v want default", cfg)
	}

	cfg, err = Load("")
	if err != nil || !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("Load(\"\")=%+v err=%v", cfg, err)
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	// Intentionally sparse to exercise merge/default behavior.
	yaml := `
default_args: ["--group-directories-first", "-F"]
ignore:
  use_gitignore: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("Version=%d want 1", cfg.Version)
	}
	if !reflect.DeepEqual(cfg.DefaultArgs, []string{"--group-directories-first", "-F"}) {
		t.Fatalf("DefaultArgs=%v", cfg.DefaultArgs)
	}
	if cfg.Ignore.Globs == nil {
		t.Fatalf("Ignore.Globs should be defaulted")
	}
	if !cfg.Ignore.UseGitignore {
		t.Fatalf("UseGitignore should be true")
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
		want string
	}{
		{"yaml", "default_args: [", "parse yaml"},
		{"version", "version: 2\n", "unsupported config version 2"},
		{"glob", "ignore:\n  globs: [\"[abc\"]\n", "invalid glob pattern"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load err=%v want containing %q", err, tc.want)
			}
		})
	}
}

func TestValidateRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty default arg", func(t *testing.T) {
		cfg := Default()
		cfg.DefaultArgs = []string{"-l", " "}
		err := Validate(cfg)
		if err == nil || !strings.Contains(err.Error(), "default_args[1]") {
			t.Fatalf("Validate err=%v", err)
		}
	})

	t.Run("help in default args", func(t *testing.T) {
		cfg := Default()
		cfg.DefaultArgs = []string{"--help"}
		err := Validate(cfg)
		if err == nil || !strings.Contains(err.Error(), "--help") {
			t.Fatalf("Validate err=%v", err)
		}
	})

	t.Run("empty glob", func(t *testing.T) {
		cfg := Default()
		cfg.Ignore.Globs = []string{""}
		err := Validate(cfg)
		if err == nil || !strings.Contains(err.Error(), "ignore.globs[0]") {
			t.Fatalf("Validate err=%v", err)
		}
	})
}

func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.DefaultArgs = []string{"-a"}
	cfg.Ignore.Globs = []string{"*.pyc"}
	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("got=%+v want=%+v", got, cfg)
	}
}
