package tmplengine

import (
	"fmt"
	"sort"
	"text/template/parse"
)

// TreeSet is the concrete TemplateSet: a set of named trees built by the
// standard library's text/template/parse package, the "well-known Go
// templating syntax" parser this engine is compatible with. {{define}} and
// {{block}} are both handled by parse.Parse itself — block is already
// desugared into a define plus a template invocation by the time a *Tree
// reaches this set, so the engine needs no separate block-handling code.
type TreeSet struct {
	trees map[string]*parse.Tree
}

// NewTreeSet returns an empty set.
func NewTreeSet() *TreeSet {
	return &TreeSet{trees: make(map[string]*parse.Tree)}
}

// ParseString parses text under name, registering it and every tree
// produced by nested {{define}}/{{block}} blocks. funcNames need only name
// the identifiers the parser should accept as function calls; their
// implementations are looked up later, at execution time, via
// FuncRegistry.
func (ts *TreeSet) ParseString(name, text string, funcNames []string) error {
	funcMap := make(map[string]interface{}, len(funcNames))
	for _, n := range funcNames {
		funcMap[n] = func() {} // parse.Parse only inspects the key set
	}
	parsed, err := parse.Parse(name, text, "{{", "}}", funcMap)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}
	for treeName, tree := range parsed {
		ts.trees[treeName] = tree
	}
	return nil
}

// Lookup implements TemplateSet.
func (ts *TreeSet) Lookup(name string) (*parse.Tree, bool) {
	t, ok := ts.trees[name]
	return t, ok
}

// Names returns every registered template name, sorted, primarily for
// diagnostics (e.g. listing "defined templates are: ..." alongside an
// IncompleteTemplateError).
func (ts *TreeSet) Names() []string {
	names := make([]string, 0, len(ts.trees))
	for n := range ts.trees {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
