package tmplengine

import (
	"io"
	"text/template/parse"

	"github.com/corvidrun/tmplengine/value"
)

// walk drives node types per spec.md §4.1. A partial write followed by an
// error aborts execution; the caller is responsible for discarding whatever
// was already appended to the writer.
func (s *execState) walk(ctx Context, node parse.Node) error {
	switch n := node.(type) {
	case *parse.TextNode:
		if _, err := s.writer.Write(n.Text); err != nil {
			return IOError{Cause: err}
		}
		return nil

	case *parse.ActionNode:
		val, hasDecl, err := s.evalPipe(ctx, n.Pipe)
		if err != nil {
			return err
		}
		if hasDecl {
			return nil
		}
		return s.print(val)

	case *parse.IfNode:
		return s.walkIfOrWith(ctx, n.Pipe, n.List, n.ElseList, false)

	case *parse.WithNode:
		return s.walkIfOrWith(ctx, n.Pipe, n.List, n.ElseList, true)

	case *parse.RangeNode:
		return s.walkRange(ctx, n)

	case *parse.ListNode:
		for _, child := range n.Nodes {
			if err := s.walk(ctx, child); err != nil {
				return err
			}
		}
		return nil

	case *parse.TemplateNode:
		return s.walkTemplate(ctx, n)

	default:
		return UnknownNodeError{Node: node}
	}
}

// print appends the canonical textual form of val, per spec.md §4.8.
func (s *execState) print(val value.Value) error {
	if _, err := io.WriteString(s.writer, val.String()); err != nil {
		return IOError{Cause: err}
	}
	return nil
}
