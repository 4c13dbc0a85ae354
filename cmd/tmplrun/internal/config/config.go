// Package config loads the tmplrun CLI's on-disk configuration: which
// directory to load *.tmpl files from, which template to execute as the
// root, and optional live-reload/cache-store settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root of a tmplrun.yaml file.
type Config struct {
	// RootTemplate is the name of the template to execute, looked up in
	// TemplateSet by this name.
	RootTemplate string `yaml:"root_template"`

	// TemplateDir is scanned for *.tmpl files; each is parsed under its
	// base filename (minus extension).
	TemplateDir string `yaml:"template_dir"`

	// Funcs names the functions the parser should accept as calls; their
	// implementations are wired up in code, not configured here.
	Funcs []string `yaml:"funcs"`

	LiveReload LiveReloadConfig `yaml:"live_reload"`
	Cache      CacheConfig      `yaml:"cache"`
}

// LiveReloadConfig configures the websocket dev server in internal/liveserver.
type LiveReloadConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// CacheConfig configures the sqlite-backed template-source cache in
// internal/templatestore.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns a Config with the values tmplrun falls back to when a
// field is absent from the file.
func Default() Config {
	return Config{
		TemplateDir: ".",
		LiveReload: LiveReloadConfig{
			Enabled: false,
			Addr:    "127.0.0.1:7331",
		},
		Cache: CacheConfig{
			Enabled: false,
			Path:    "tmplrun-cache.db",
		},
	}
}

// Load reads and parses the YAML file at path, starting from Default() so
// unset fields keep their default value rather than zeroing out.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.RootTemplate == "" {
		return Config{}, fmt.Errorf("config: %s: root_template must not be empty", path)
	}
	return cfg, nil
}
