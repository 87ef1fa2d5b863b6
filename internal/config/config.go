package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all prehook configuration. Every field has a sensible default.
// Resolved via: defaults → global (~/.config/prehook/config.toml) → repo-local
// .prehook.toml in the repository root.
type Config struct {
	// AllowNonASCII disables the non-ASCII filename check. The git setting
	// hooks.allownonascii has the same effect; either one enables it.
	// Pointer so we can distinguish "not set" (nil) from "explicitly false".
	AllowNonASCII *bool `toml:"allow_non_ascii"`

	// Stash configures the unstaged-change stashing done before checks run.
	Stash StashConfig `toml:"stash"`

	// Format configures the external formatter verification.
	Format FormatConfig `toml:"format"`

	// Lint configures the Python linter verification.
	Lint LintConfig `toml:"lint"`
}

// StashConfig controls the stash guard.
type StashConfig struct {
	// Enabled controls whether unstaged changes are stashed before checks
	// and restored afterwards. Default: true.
	Enabled *bool `toml:"enabled"`
}

// FormatConfig controls the formatter stage.
type FormatConfig struct {
	// Binary is the formatter command. Default: "clang-format".
	Binary string `toml:"binary"`

	// RequiredVersion is a substring the formatter's --version output must
	// contain. Empty disables the version check.
	RequiredVersion string `toml:"required_version"`

	// Style is passed to the formatter as -style=<value>. Default: "file",
	// which makes clang-format read .clang-format from the repo.
	Style string `toml:"style"`

	// Extensions is the allow-list of file extensions to format-check.
	Extensions []string `toml:"extensions"`

	// FilterExtensions controls whether Extensions is applied. When false
	// every staged file is checked. Default: true.
	FilterExtensions *bool `toml:"filter_extensions"`

	// SkipPatterns are doublestar globs; matching staged paths are not
	// format-checked (e.g. "third_party/**", "**/*.pb.h").
	SkipPatterns []string `toml:"skip_patterns"`
}

// LintConfig controls the linter stage.
type LintConfig struct {
	// Binary is the linter command. Default: "flake8".
	Binary string `toml:"binary"`

	// Extensions selects the staged files handed to the linter.
	// Default: [".py"].
	Extensions []string `toml:"extensions"`
}

// Load reads config with layered precedence:
//  1. Hardcoded defaults
//  2. Global (~/.config/prehook/config.toml)
//  3. Repo-local (.prehook.toml in the repository root)
//
// Each layer only overrides fields it explicitly sets.
func Load(dir string) (*Config, error) {
	cfg := &Config{
		Format: FormatConfig{
			Binary:     "clang-format",
			Style:      "file",
			Extensions: []string{".c", ".cc", ".cpp", ".h", ".hh", ".hpp", ".m", ".mm"},
		},
		Lint: LintConfig{
			Binary:     "flake8",
			Extensions: []string{".py"},
		},
	}

	if globalPath, err := globalConfigPath(); err == nil {
		if data, err := os.ReadFile(globalPath); err == nil {
			var gc Config
			if err := toml.Unmarshal(data, &gc); err != nil {
				return nil, fmt.Errorf("global config (%s): %w", globalPath, err)
			}
			mergeConfig(cfg, &gc)
		}
	}

	repoPath := filepath.Join(dir, ".prehook.toml")
	if data, err := os.ReadFile(repoPath); err == nil {
		var rc Config
		if err := toml.Unmarshal(data, &rc); err != nil {
			return nil, fmt.Errorf("repo config (%s): %w", repoPath, err)
		}
		mergeConfig(cfg, &rc)
	}

	return cfg, nil
}

// mergeConfig copies non-zero fields from src into dst.
func mergeConfig(dst, src *Config) {
	if src.AllowNonASCII != nil {
		dst.AllowNonASCII = src.AllowNonASCII
	}
	if src.Stash.Enabled != nil {
		dst.Stash.Enabled = src.Stash.Enabled
	}
	if src.Format.Binary != "" {
		dst.Format.Binary = src.Format.Binary
	}
	if src.Format.RequiredVersion != "" {
		dst.Format.RequiredVersion = src.Format.RequiredVersion
	}
	if src.Format.Style != "" {
		dst.Format.Style = src.Format.Style
	}
	if len(src.Format.Extensions) > 0 {
		dst.Format.Extensions = src.Format.Extensions
	}
	if src.Format.FilterExtensions != nil {
		dst.Format.FilterExtensions = src.Format.FilterExtensions
	}
	if len(src.Format.SkipPatterns) > 0 {
		dst.Format.SkipPatterns = src.Format.SkipPatterns
	}
	if src.Lint.Binary != "" {
		dst.Lint.Binary = src.Lint.Binary
	}
	if len(src.Lint.Extensions) > 0 {
		dst.Lint.Extensions = src.Lint.Extensions
	}
}

// globalConfigPath returns ~/.config/prehook/config.toml.
func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "prehook", "config.toml"), nil
}

// EffectiveAllowNonASCII reports whether non-ASCII filenames are permitted.
func (c *Config) EffectiveAllowNonASCII() bool {
	return c.AllowNonASCII != nil && *c.AllowNonASCII
}

// EffectiveStashEnabled reports whether the stash guard runs, defaulting
// to true.
func (c *Config) EffectiveStashEnabled() bool {
	return c.Stash.Enabled == nil || *c.Stash.Enabled
}

// EffectiveFilterExtensions reports whether the format stage applies its
// extension allow-list, defaulting to true.
func (f *FormatConfig) EffectiveFilterExtensions() bool {
	return f.FilterExtensions == nil || *f.FilterExtensions
}
