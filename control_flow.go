package tmplengine

import (
	"sort"
	"text/template/parse"

	"github.com/corvidrun/tmplengine/value"
)

// walkIfOrWith implements spec.md §4.5. if and with are identical except
// that with rebinds dot to the pipeline's value on the true branch.
func (s *execState) walkIfOrWith(ctx Context, pipe *parse.PipeNode, list, elseList *parse.ListNode, rebindDot bool) error {
	val, _, err := s.evalPipe(ctx, pipe)
	if err != nil {
		return err
	}
	if value.IsTrue(val) {
		if rebindDot {
			return s.walk(ctx.WithDot(val), list)
		}
		return s.walk(ctx, list)
	}
	if elseList != nil {
		return s.walk(ctx, elseList)
	}
	return nil
}

// walkRange implements spec.md §4.6.
func (s *execState) walkRange(ctx Context, r *parse.RangeNode) error {
	val, _, err := s.evalPipe(ctx, r.Pipe)
	if err != nil {
		return err
	}
	numDecl := len(r.Pipe.Decl)

	switch val.Kind() {
	case value.KindArray:
		arr, _ := val.AsArray()
		if len(arr) == 0 {
			return s.rangeElse(ctx, r)
		}
		for i, elem := range arr {
			if err := s.rangeIteration(ctx, r, numDecl, value.Int(int64(i)), elem); err != nil {
				return err
			}
		}
		return nil

	case value.KindMap, value.KindObject:
		keys, _ := val.Keys()
		if len(keys) == 0 {
			return s.rangeElse(ctx, r)
		}
		sort.Strings(keys)
		for _, k := range keys {
			var elem value.Value
			if val.Kind() == value.KindMap {
				elem, _ = val.MapGet(k)
			} else {
				elem, _ = val.ObjectGet(k)
			}
			if err := s.rangeIteration(ctx, r, numDecl, value.String(k), elem); err != nil {
				return err
			}
		}
		return nil

	default:
		return InvalidRangeError{Got: val.Kind()}
	}
}

func (s *execState) rangeElse(ctx Context, r *parse.RangeNode) error {
	if r.ElseList != nil {
		return s.walk(ctx, r.ElseList)
	}
	return nil
}

// rangeIteration places the loop variables (declared one frame up, by the
// range pipeline's own evaluation) and walks the body in a fresh frame so
// body-local declarations don't leak across iterations.
func (s *execState) rangeIteration(ctx Context, r *parse.RangeNode, numDecl int, key, elem value.Value) error {
	if numDecl >= 1 {
		if err := s.scope.setFromEnd(1, elem); err != nil {
			return err
		}
	}
	if numDecl >= 2 {
		if err := s.scope.setFromEnd(2, key); err != nil {
			return err
		}
	}
	s.scope.push()
	err := s.walk(ctx.WithDot(elem), r.List)
	s.scope.pop()
	return err
}
