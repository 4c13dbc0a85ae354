package tmplengine

import (
	"text/template/parse"

	"github.com/corvidrun/tmplengine/value"
)

// evalChainNode evaluates (expr).a.b: the base expression first, then the
// field chain (spec.md §4.3, §4.4).
func (s *execState) evalChainNode(ctx Context, chain *parse.ChainNode, args []parse.Node, final *value.Value) (value.Value, error) {
	if _, isNil := chain.Node.(*parse.NilNode); isNil {
		return value.Value{}, NullInChainError{}
	}
	base, err := s.evalArg(ctx, chain.Node)
	if err != nil {
		return value.Value{}, err
	}
	if len(chain.Field) == 0 {
		return value.Value{}, NoFieldsInEvalChainNodeError{}
	}
	return s.evalFieldChain(ctx, base, chain.Field, args, final)
}

// evalVariableNode resolves $x or $x.a.b.
func (s *execState) evalVariableNode(ctx Context, v *parse.VariableNode, args []parse.Node, final *value.Value) (value.Value, error) {
	val, ok := s.scope.lookup(v.Ident[0])
	if !ok {
		return value.Value{}, VariableNotFoundError{Name: v.Ident[0]}
	}
	if len(v.Ident) == 1 {
		if err := notAFunction(args, final, v.Ident[0]); err != nil {
			return value.Value{}, err
		}
		return val, nil
	}
	return s.evalFieldChain(ctx, val, v.Ident[1:], args, final)
}

// evalFieldChain resolves .a.b.c against receiver, per spec.md §4.4:
// intermediate identifiers are resolved with no arguments, and only the
// final identifier sees args/final.
func (s *execState) evalFieldChain(ctx Context, receiver value.Value, ident []string, args []parse.Node, final *value.Value) (value.Value, error) {
	if len(ident) == 0 {
		return value.Value{}, FieldChainWithoutFieldsError{}
	}
	for i := 0; i < len(ident)-1; i++ {
		v, err := s.evalField(ctx, receiver, ident[i], nil, nil)
		if err != nil {
			return value.Value{}, err
		}
		receiver = v
	}
	return s.evalField(ctx, receiver, ident[len(ident)-1], args, final)
}

// evalField implements eval_field from spec.md §4.4.
func (s *execState) evalField(ctx Context, receiver value.Value, name string, args []parse.Node, final *value.Value) (value.Value, error) {
	if len(args) > 1 || final != nil {
		return value.Value{}, NotAFunctionButArgumentsError{Name: name}
	}

	switch receiver.Kind() {
	case value.KindObject:
		v, found := receiver.ObjectGet(name)
		if !found {
			return value.Value{}, NoFieldForError{Name: name, Receiver: receiver.Kind()}
		}
		return s.invokeIfFunction(v, receiver)
	case value.KindMap:
		v, _ := receiver.MapGet(name)
		return s.invokeIfFunction(v, receiver)
	default:
		return value.Value{}, OnlyMapsAndObjectsHaveFieldsError{Name: name, Receiver: receiver.Kind()}
	}
}

// invokeIfFunction implements the "bound method via field" rule: a
// Function-valued field is always called with the receiver as its sole
// argument.
func (s *execState) invokeIfFunction(v, receiver value.Value) (value.Value, error) {
	if !v.IsFunction() {
		return v, nil
	}
	result, err := v.Call([]value.Value{receiver})
	if err != nil {
		return value.Value{}, FunctionCallFailedError{Cause: err}
	}
	return result, nil
}
