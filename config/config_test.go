package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.World.Width != 64 || cfg.World.Height != 64 {
		t.Fatalf("expected a 64x64 default world, got %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.World.Seed != 0 {
		t.Fatalf("expected a zero default seed (derive at startup), got %d", cfg.World.Seed)
	}
	if !cfg.Audio.Enabled || !cfg.Display.ShowHUD {
		t.Fatal("expected audio and the HUD enabled by default")
	}
}

func TestLoadOverridesOnlyMentionedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[world]\nwidth = 32\nseed = 7\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Width != 32 {
		t.Fatalf("expected overridden width 32, got %d", cfg.World.Width)
	}
	if cfg.World.Seed != 7 {
		t.Fatalf("expected overridden seed 7, got %d", cfg.World.Seed)
	}
	if cfg.World.Height != 64 {
		t.Fatalf("expected height to keep its default 64 (not mentioned in the file), got %d", cfg.World.Height)
	}
	if !cfg.Audio.Enabled {
		t.Fatal("expected audio to keep its default enabled state")
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.toml"); err == nil {
		t.Fatal("expected an error loading a nonexistent config file")
	}
}
