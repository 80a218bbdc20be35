package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/circleback/internal/config/colors"
	"github.com/thenoetrevino/circleback/internal/models"
)

func TestThemeFileLoading(t *testing.T) {
	clearEnv(t)

	themeContent := []byte(`theme:
  accent: "#FF0000"
  ghosted: "#00FF00"
  completed: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Ghosted != "#00FF00" {
		t.Errorf("Expected ghosted to be #00FF00, got %s", cfg.ColorScheme.Ghosted)
	}
	if cfg.ColorScheme.Completed != "#0000FF" {
		t.Errorf("Expected completed to be #0000FF, got %s", cfg.ColorScheme.Completed)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Postponed != DefaultColorScheme().Postponed {
		t.Error("Expected postponed to keep its default value")
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvThemeFile, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Expected default accent, got %s", cfg.ColorScheme.Accent)
	}
}

func TestColorScheme_ForCategory(t *testing.T) {
	scheme := DefaultColorScheme()

	tests := []struct {
		category models.Category
		want     string
	}{
		{models.CategoryGhosted, scheme.Ghosted},
		{models.CategoryPostponed, scheme.Postponed},
		{models.CategoryInProgress, scheme.InProgress},
		{models.CategoryCompleted, scheme.Completed},
		{models.Category("other"), scheme.Normal},
	}
	for _, tt := range tests {
		if got := scheme.ForCategory(tt.category); got != tt.want {
			t.Errorf("ForCategory(%s) = %s, want %s", tt.category, got, tt.want)
		}
	}
}

func TestColorScheme_MergeFrom(t *testing.T) {
	base := colors.ColorScheme{Accent: "#111111", Ghosted: "#222222"}

	base.MergeFrom(colors.ColorScheme{Accent: "#AAAAAA", Postponed: "#BBBBBB"}, false)
	if base.Accent != "#111111" {
		t.Errorf("fill-only merge overwrote accent: %s", base.Accent)
	}
	if base.Postponed != "#BBBBBB" {
		t.Errorf("fill-only merge did not fill postponed: %s", base.Postponed)
	}

	base.MergeFrom(colors.ColorScheme{Accent: "#AAAAAA"}, true)
	if base.Accent != "#AAAAAA" {
		t.Errorf("override merge did not replace accent: %s", base.Accent)
	}
	if base.Ghosted != "#222222" {
		t.Errorf("override merge cleared ghosted: %s", base.Ghosted)
	}
}

func TestGetPreset(t *testing.T) {
	if colors.GetPreset("monochrome").Preset != "monochrome" {
		t.Error("expected monochrome preset")
	}
	if colors.GetPreset("unknown").Preset != "default" {
		t.Error("unknown preset should fall back to default")
	}
}
