package tmplengine

import (
	"io"
	"text/template/parse"

	"github.com/corvidrun/tmplengine/value"
)

// Writer is an append-only byte sink. Any io.Writer satisfies it.
type Writer = io.Writer

// TemplateSet maps a template name to its parsed tree. Parsing template
// source into a *parse.Tree is an external concern (see templateset.go for
// the concrete implementation backed by text/template/parse); the engine
// only ever looks trees up by name.
type TemplateSet interface {
	Lookup(name string) (*parse.Tree, bool)
}

// FuncRegistry maps a registered identifier to a callable. eval_function
// (spec.md §4.3) consults it when a command's first argument is an
// IdentifierNode.
type FuncRegistry interface {
	Lookup(name string) (value.Function, bool)
}
