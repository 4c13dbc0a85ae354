// Package commands implements tmplrun's subcommands: render, watch, and
// migrate. Each is a plain function taking parsed flags, in the teacher's
// own no-framework, switch-dispatched CLI style (cmd/lvt/main.go) rather
// than a cobra/urfave command tree.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tmplengine "github.com/corvidrun/tmplengine"
	"github.com/corvidrun/tmplengine/cmd/tmplrun/internal/config"
	"github.com/corvidrun/tmplengine/internal/postprocess"
	"github.com/corvidrun/tmplengine/value"
)

// LoadTreeSet parses every *.tmpl file under cfg.TemplateDir into a single
// TreeSet, each registered under its base filename.
func LoadTreeSet(cfg config.Config) (*tmplengine.TreeSet, error) {
	ts := tmplengine.NewTreeSet()
	entries, err := os.ReadDir(cfg.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("commands: read template dir %s: %w", cfg.TemplateDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}
		path := filepath.Join(cfg.TemplateDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("commands: read %s: %w", path, err)
		}
		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		if err := ts.ParseString(name, string(data), cfg.Funcs); err != nil {
			return nil, fmt.Errorf("commands: parse %s: %w", path, err)
		}
	}
	return ts, nil
}

// RenderOptions configures a single Render invocation.
type RenderOptions struct {
	Minify   bool
	Validate bool
}

// Render parses cfg's template directory, executes cfg.RootTemplate against
// dot, and writes the result to w.
func Render(w io.Writer, cfg config.Config, funcs *tmplengine.FuncMap, dot value.Value, opts RenderOptions) error {
	ts, err := LoadTreeSet(cfg)
	if err != nil {
		return err
	}
	if funcs == nil {
		funcs = tmplengine.NewFuncMap()
	}
	engine := tmplengine.New(cfg.RootTemplate, ts, funcs)

	out, err := engine.Render(tmplengine.From(dot))
	if err != nil {
		return fmt.Errorf("commands: render %s: %w", cfg.RootTemplate, err)
	}

	if opts.Minify {
		out, err = postprocess.HTML(out)
		if err != nil {
			return fmt.Errorf("commands: minify output: %w", err)
		}
	}
	if opts.Validate {
		if err := postprocess.ValidateHTML(out); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("commands: write output: %w", err)
	}
	return nil
}
