package commands

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/corvidrun/tmplengine/cmd/tmplrun/internal/config"
	"github.com/corvidrun/tmplengine/internal/liveserver"
)

// Watch serves cfg's live-reload websocket and polls cfg.TemplateDir for
// *.tmpl modifications, broadcasting a reload notice whenever a file's
// mtime advances. It blocks until addr fails to bind or the process is
// killed.
func Watch(cfg config.Config, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if !cfg.LiveReload.Enabled {
		logger.Printf("watch: live_reload is disabled in config, nothing to serve")
		return nil
	}

	hub := liveserver.NewHub(logger)
	go pollTemplateDir(cfg.TemplateDir, hub, logger)

	logger.Printf("watch: serving live-reload websocket on %s", cfg.LiveReload.Addr)
	return http.ListenAndServe(cfg.LiveReload.Addr, hub)
}

// pollTemplateDir checks every second for any *.tmpl file whose mtime has
// advanced since the previous poll, broadcasting once per poll that finds
// a change. A polling loop, not fsnotify, keeps the dependency surface to
// what is already wired elsewhere in this module.
func pollTemplateDir(dir string, hub *liveserver.Hub, logger *log.Logger) {
	seen := make(map[string]time.Time)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		changed := false
		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Printf("watch: read dir %s: %v", dir, err)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if prev, ok := seen[path]; !ok || info.ModTime().After(prev) {
				seen[path] = info.ModTime()
				if ok {
					changed = true
				}
			}
		}
		if changed {
			logger.Printf("watch: template change detected, broadcasting reload")
			hub.Broadcast()
		}
	}
}
