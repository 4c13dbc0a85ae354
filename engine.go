package tmplengine

import (
	"bytes"
	"unicode/utf8"
)

// Engine is the public execution surface described in spec.md §6: it walks
// the template named by its own name from its tree set, evaluating
// pipelines against a supplied root Context.
type Engine struct {
	name      string
	templates TemplateSet
	funcs     FuncRegistry
}

// New builds an Engine that executes the tree named name out of templates,
// resolving registered function identifiers through funcs.
func New(name string, templates TemplateSet, funcs FuncRegistry) *Engine {
	return &Engine{name: name, templates: templates, funcs: funcs}
}

// Execute walks the template named by the engine's own name, writing
// output incrementally to w and returning on the first error. A partial
// write followed by an error means w already holds the partial output;
// per spec.md §4.1 it is the caller's responsibility to discard it.
func (e *Engine) Execute(w Writer, ctx Context) error {
	tree, ok := e.templates.Lookup(e.name)
	if !ok || tree.Root == nil {
		return IncompleteTemplateError{Name: e.name}
	}
	st := &execState{
		writer:    w,
		templates: e.templates,
		funcs:     e.funcs,
		scope:     newScope(ctx.Dot()),
	}
	return st.walk(ctx, tree.Root)
}

// Render captures Execute's output into a string, failing with
// Utf8ConversionFailedError if the produced bytes are not valid UTF-8.
func (e *Engine) Render(ctx Context) (string, error) {
	var buf bytes.Buffer
	if err := e.Execute(&buf, ctx); err != nil {
		return "", err
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", Utf8ConversionFailedError{}
	}
	return buf.String(), nil
}
