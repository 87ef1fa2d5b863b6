package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMergeConfig(t *testing.T) {
	t.Run("overrides non-zero string fields", func(t *testing.T) {
		dst := &Config{Format: FormatConfig{Binary: "clang-format", Style: "file"}}
		src := &Config{Format: FormatConfig{Binary: "clang-format-18"}}
		mergeConfig(dst, src)

		if dst.Format.Binary != "clang-format-18" {
			t.Errorf("Binary = %q, want %q", dst.Format.Binary, "clang-format-18")
		}
		if dst.Format.Style != "file" {
			t.Errorf("Style = %q, want %q (should not be overwritten by zero value)", dst.Format.Style, "file")
		}
	})

	t.Run("zero values do not override", func(t *testing.T) {
		yes := true
		dst := &Config{
			AllowNonASCII: &yes,
			Format: FormatConfig{
				Binary:          "clang-format",
				RequiredVersion: "version 18",
				Extensions:      []string{".cc"},
				SkipPatterns:    []string{"vendor/**"},
			},
			Lint: LintConfig{Binary: "flake8", Extensions: []string{".py"}},
		}
		src := &Config{} // all zero values
		mergeConfig(dst, src)

		if dst.AllowNonASCII == nil || !*dst.AllowNonASCII {
			t.Error("AllowNonASCII was overwritten by zero value")
		}
		if dst.Format.RequiredVersion != "version 18" {
			t.Error("RequiredVersion was overwritten by zero value")
		}
		if len(dst.Format.SkipPatterns) != 1 {
			t.Error("SkipPatterns was overwritten by zero value")
		}
	})

	t.Run("explicit false pointer overrides", func(t *testing.T) {
		no := false
		dst := &Config{}
		src := &Config{Stash: StashConfig{Enabled: &no}}
		mergeConfig(dst, src)

		if dst.Stash.Enabled == nil || *dst.Stash.Enabled {
			t.Error("explicit stash.enabled=false was not applied")
		}
	})

	t.Run("slices replace entirely", func(t *testing.T) {
		dst := &Config{Format: FormatConfig{Extensions: []string{".c", ".h"}}}
		src := &Config{Format: FormatConfig{Extensions: []string{".cpp"}}}
		mergeConfig(dst, src)

		if len(dst.Format.Extensions) != 1 || dst.Format.Extensions[0] != ".cpp" {
			t.Errorf("Extensions = %v, want [.cpp]", dst.Format.Extensions)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults when no config files exist", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := Load(dir)
		if err != nil {
			t.Fatal(err)
		}

		if cfg.Format.Binary != "clang-format" {
			t.Errorf("Format.Binary = %q, want %q", cfg.Format.Binary, "clang-format")
		}
		if cfg.Format.Style != "file" {
			t.Errorf("Format.Style = %q, want %q", cfg.Format.Style, "file")
		}
		if cfg.Lint.Binary != "flake8" {
			t.Errorf("Lint.Binary = %q, want %q", cfg.Lint.Binary, "flake8")
		}
		if len(cfg.Lint.Extensions) != 1 || cfg.Lint.Extensions[0] != ".py" {
			t.Errorf("Lint.Extensions = %v, want [.py]", cfg.Lint.Extensions)
		}
		if !cfg.EffectiveStashEnabled() {
			t.Error("stash should default to enabled")
		}
		if cfg.EffectiveAllowNonASCII() {
			t.Error("non-ASCII filenames should default to disallowed")
		}
		if !cfg.Format.EffectiveFilterExtensions() {
			t.Error("extension filtering should default to on")
		}
	})

	t.Run("repo-local .prehook.toml overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, ".prehook.toml"), []byte(`
allow_non_ascii = true

[format]
binary = "clang-format-18"
required_version = "version 18"
skip_patterns = ["third_party/**"]

[stash]
enabled = false
`), 0644)
		if err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatal(err)
		}

		if !cfg.EffectiveAllowNonASCII() {
			t.Error("allow_non_ascii = true not applied")
		}
		if cfg.Format.Binary != "clang-format-18" {
			t.Errorf("Format.Binary = %q, want %q", cfg.Format.Binary, "clang-format-18")
		}
		if cfg.Format.RequiredVersion != "version 18" {
			t.Errorf("RequiredVersion = %q", cfg.Format.RequiredVersion)
		}
		if cfg.EffectiveStashEnabled() {
			t.Error("stash.enabled = false not applied")
		}
		// Untouched fields keep their defaults
		if cfg.Lint.Binary != "flake8" {
			t.Errorf("Lint.Binary = %q, want default flake8", cfg.Lint.Binary)
		}
	})

	t.Run("bad toml is an error", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".prehook.toml"), []byte("[format\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(dir); err == nil {
			t.Error("expected error for malformed toml")
		}
	})
}
