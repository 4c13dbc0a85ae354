// Command tmplrun is a small CLI front end over the tmplengine package: it
// renders a configured template against a value, optionally watches the
// template directory for live-reload, and can drive an interactive preview
// REPL. It has no subcommand framework — like the teacher's own cmd/lvt,
// dispatch is a plain switch on os.Args[1].
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	tmplengine "github.com/corvidrun/tmplengine"
	"github.com/corvidrun/tmplengine/cmd/tmplrun/commands"
	"github.com/corvidrun/tmplengine/cmd/tmplrun/internal/config"
	"github.com/corvidrun/tmplengine/cmd/tmplrun/internal/tui"
	"github.com/corvidrun/tmplengine/value"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "render":
		os.Exit(runRender(args))
	case "watch":
		os.Exit(runWatch(args))
	case "migrate":
		os.Exit(runMigrate(args))
	case "preview":
		os.Exit(runPreview(args))
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "tmplrun: unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: tmplrun <command> [flags]

commands:
  render   execute the configured root template once and print the result
  watch    serve the live-reload websocket and poll the template directory
  migrate  apply pending template-cache migrations
  preview  open an interactive render-preview REPL`)
}

func runRender(args []string) int {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	path := fs.String("config", "tmplrun.yaml", "path to the tmplrun config file")
	minify := fs.Bool("minify", false, "minify HTML output")
	validate := fs.Bool("validate", false, "validate HTML output parses cleanly")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	funcs := tmplengine.NewFuncMap()
	opts := commands.RenderOptions{Minify: *minify, Validate: *validate}
	if err := commands.Render(os.Stdout, cfg, funcs, value.Nil(), opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	path := fs.String("config", "tmplrun.yaml", "path to the tmplrun config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := log.New(os.Stderr, "tmplrun: ", log.LstdFlags)
	if err := commands.Watch(cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runMigrate(args []string) int {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	path := fs.String("config", "tmplrun.yaml", "path to the tmplrun config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := log.New(os.Stderr, "tmplrun: ", log.LstdFlags)
	if err := commands.Migrate(cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runPreview(args []string) int {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	path := fs.String("config", "tmplrun.yaml", "path to the tmplrun config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ts, err := commands.LoadTreeSet(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	engine := tmplengine.New(cfg.RootTemplate, ts, tmplengine.NewFuncMap())

	model := tui.New(engine, nil)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
