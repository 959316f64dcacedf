package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ContentDir != "" || cfg.MenuCollection != "" || cfg.OutputFormat != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{
		ContentDir:     "/srv/site/content",
		MenuCollection: "nav",
		OutputFormat:   "json",
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Fatalf("roundtrip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("\t: bad"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSetKnownAndUnknownKeys(t *testing.T) {
	var cfg Config
	if err := cfg.Set("content_dir", "content"); err != nil {
		t.Fatalf("set content_dir: %v", err)
	}
	if err := cfg.Set("menu_collection", "nav"); err != nil {
		t.Fatalf("set menu_collection: %v", err)
	}
	if err := cfg.Set("output_format", "yaml"); err != nil {
		t.Fatalf("set output_format: %v", err)
	}
	if cfg.ContentDir != "content" || cfg.MenuCollection != "nav" || cfg.OutputFormat != "yaml" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if err := cfg.Set("mystery", "x"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}
