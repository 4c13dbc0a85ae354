package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmplrun.yaml")
	if err := os.WriteFile(path, []byte("root_template: home\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RootTemplate != "home" {
		t.Errorf("RootTemplate = %q, want home", cfg.RootTemplate)
	}
	if cfg.TemplateDir != "." {
		t.Errorf("TemplateDir = %q, want default %q", cfg.TemplateDir, ".")
	}
	if cfg.LiveReload.Addr != "127.0.0.1:7331" {
		t.Errorf("LiveReload.Addr = %q, want default", cfg.LiveReload.Addr)
	}
}

func TestLoadRejectsEmptyRootTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmplrun.yaml")
	if err := os.WriteFile(path, []byte("template_dir: ./views\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load: want error for missing root_template, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Fatal("Load: want error for missing file, got nil")
	}
}
