package tmplengine

import "text/template/parse"

// walkTemplate implements spec.md §4.7. The engine's AST collaborator is
// the standard library's text/template/parse package, whose TemplateNode
// carries only a literal Name — the "pipeline that must yield a String"
// dynamic-name form spec.md §4.7 allows for is a capability of a richer
// AST than that parser produces, so PipelineMustYieldStringError is
// defined (§7) but no code path raises it: the name is always taken
// verbatim from t.Name.
func (s *execState) walkTemplate(ctx Context, t *parse.TemplateNode) error {
	name := t.Name

	if s.depth >= MaxTemplateDepth {
		return MaxTemplateDepthError{}
	}

	tree, ok := s.templates.Lookup(name)
	if !ok {
		return TemplateNotDefinedError{Name: name}
	}
	if tree.Root == nil {
		return IncompleteTemplateError{Name: name}
	}

	innerDot, _, err := s.evalPipe(ctx, t.Pipe)
	if err != nil {
		return err
	}

	nested := s.nested(From(innerDot))
	return nested.walk(From(innerDot), tree.Root)
}
