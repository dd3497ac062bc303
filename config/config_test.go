package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.FPS != 20 || cfg.Defaults.Format != "gif" {
		t.Errorf("unexpected defaults: %+v", cfg.Defaults)
	}
	if len(cfg.Subtitles.Languages) != 1 || cfg.Subtitles.Languages[0] != "eng" {
		t.Errorf("unexpected language defaults: %v", cfg.Subtitles.Languages)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[defaults]
fps = 30
format = "mp4"

[subtitles]
languages = ["jpn", "eng"]
include_cc = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.Defaults.FPS)
	}
	if cfg.Defaults.Format != "mp4" {
		t.Errorf("format = %q, want mp4", cfg.Defaults.Format)
	}
	// Untouched values keep their defaults.
	if cfg.Defaults.FontSize != 24 {
		t.Errorf("font_size = %d, want 24", cfg.Defaults.FontSize)
	}
	if !cfg.Subtitles.IncludeCC || len(cfg.Subtitles.Languages) != 2 {
		t.Errorf("subtitles = %+v", cfg.Subtitles)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[defaults]\nformat = \"avi\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestSampleConfigParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	// Second write must refuse to clobber.
	if err := WriteSample(path); err == nil {
		t.Fatal("expected error overwriting existing config")
	}
}
