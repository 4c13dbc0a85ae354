// Package tui is tmplrun's interactive live-preview REPL: type a dot value
// as JSON-ish key=value pairs on the left, see the rendered template
// output on the right, re-rendering on every keystroke. It is a thin
// bubbletea front end over the engine; all template semantics live in the
// root tmplengine package.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	tmplengine "github.com/corvidrun/tmplengine"
	"github.com/corvidrun/tmplengine/value"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// DotParser turns the input pane's raw text into a root Value. The CLI
// supplies one that treats each "key=value" line as a String field on an
// Object; callers embedding this package for richer input can supply their
// own.
type DotParser func(text string) value.Value

// DefaultDotParser parses "key=value" lines into an Object of Strings.
func DefaultDotParser(text string) value.Value {
	fields := make(map[string]value.Value)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(k)] = value.String(strings.TrimSpace(v))
	}
	return value.Object(fields)
}

// Model is the bubbletea model driving the preview loop.
type Model struct {
	engine    *tmplengine.Engine
	parseDot  DotParser
	input     textarea.Model
	output    viewport.Model
	width     int
	height    int
	lastError error
}

// New builds a Model that renders through engine, reparsing the input pane
// on every change via parseDot (DefaultDotParser if nil).
func New(engine *tmplengine.Engine, parseDot DotParser) Model {
	if parseDot == nil {
		parseDot = DefaultDotParser
	}
	input := textarea.New()
	input.Placeholder = "Name=ada\nAge=36"
	input.Focus()

	return Model{
		engine:   engine,
		parseDot: parseDot,
		input:    input,
		output:   viewport.New(40, 20),
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		half := m.width / 2
		m.input.SetWidth(half - 4)
		m.input.SetHeight(m.height - 4)
		m.output.Width = half - 4
		m.output.Height = m.height - 4

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.render()
	return m, cmd
}

// render re-executes the engine against the current input pane's parsed
// dot value and refreshes the output pane, recording (rather than
// propagating) any execution error so the REPL stays interactive.
func (m *Model) render() {
	dot := m.parseDot(m.input.Value())
	out, err := m.engine.Render(tmplengine.From(dot))
	if err != nil {
		m.lastError = err
		m.output.SetContent(errorStyle.Render(fmt.Sprintf("error: %v", err)))
		return
	}
	m.lastError = nil
	m.output.SetContent(out)
}

func (m Model) View() string {
	left := paneStyle.Render(m.input.View())
	right := paneStyle.Render(m.output.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
