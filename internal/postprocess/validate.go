package postprocess

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ValidateHTML parses output as an HTML fragment and reports the first
// parse error, if any. It is a dev-time sanity check — the engine itself
// never validates its own output, since output format is a Non-goal of the
// execution engine's own scope.
func ValidateHTML(output string) error {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	if _, err := html.ParseFragment(strings.NewReader(output), context); err != nil {
		return fmt.Errorf("postprocess: invalid HTML output: %w", err)
	}
	return nil
}
