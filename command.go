package tmplengine

import (
	"strings"
	"text/template/parse"

	"github.com/corvidrun/tmplengine/value"
)

// evalCommand dispatches on a command's first argument per the table in
// spec.md §4.3. final is the piped-in result of the previous command in the
// pipeline, or nil for the first command.
func (s *execState) evalCommand(ctx Context, cmd *parse.CommandNode, final *value.Value) (value.Value, error) {
	if len(cmd.Args) == 0 {
		return value.Value{}, NoArgsForCommandNodeError{}
	}
	first := cmd.Args[0]

	switch n := first.(type) {
	case *parse.FieldNode:
		return s.evalFieldChain(ctx, ctx.Dot(), n.Ident, cmd.Args, final)
	case *parse.ChainNode:
		return s.evalChainNode(ctx, n, cmd.Args, final)
	case *parse.VariableNode:
		return s.evalVariableNode(ctx, n, cmd.Args, final)
	case *parse.IdentifierNode:
		return s.evalFunction(ctx, n, cmd.Args, final)
	case *parse.PipeNode:
		v, _, err := s.evalPipe(ctx, n)
		return v, err
	}

	if err := notAFunction(cmd.Args, final, literalName(first)); err != nil {
		return value.Value{}, err
	}
	switch n := first.(type) {
	case *parse.BoolNode:
		return value.Bool(n.True), nil
	case *parse.DotNode:
		return ctx.Dot(), nil
	case *parse.NilNode:
		return value.Value{}, CannotEvaluateCommandError{Node: first}
	case *parse.NumberNode:
		return numberFromNode(n)
	case *parse.StringNode:
		return value.String(n.Text), nil
	}
	return value.Value{}, CannotEvaluateCommandError{Node: first}
}

// evalArg evaluates a node in argument position: like evalCommand but
// always recursive, with no trailing arguments and no piped-in value
// (spec.md §4.3).
func (s *execState) evalArg(ctx Context, node parse.Node) (value.Value, error) {
	switch n := node.(type) {
	case *parse.FieldNode:
		return s.evalFieldChain(ctx, ctx.Dot(), n.Ident, nil, nil)
	case *parse.ChainNode:
		return s.evalChainNode(ctx, n, nil, nil)
	case *parse.VariableNode:
		return s.evalVariableNode(ctx, n, nil, nil)
	case *parse.IdentifierNode:
		return s.evalFunction(ctx, n, []parse.Node{n}, nil)
	case *parse.PipeNode:
		v, _, err := s.evalPipe(ctx, n)
		return v, err
	case *parse.BoolNode:
		return value.Bool(n.True), nil
	case *parse.DotNode:
		return ctx.Dot(), nil
	case *parse.NumberNode:
		return numberFromNode(n)
	case *parse.StringNode:
		return value.String(n.Text), nil
	}
	// NilNode falls through here deliberately: original_source/src/exec.rs's
	// eval_arg comments out its own Nodes::Nil arm and falls to
	// InvalidArgument, so a bare `nil` in argument position is a parse-level
	// literal with no evaluated form, not an argument value. This module
	// keeps that behavior rather than inventing a value.Nil() case for it.
	return value.Value{}, InvalidArgumentError{Node: node}
}

// notAFunction implements the "not a function" rule: it is an error to
// supply trailing arguments or a piped-in value to a non-callable
// literal/accessor.
func notAFunction(args []parse.Node, final *value.Value, name string) error {
	if len(args) > 1 || final != nil {
		return ArgumentForNonFunctionError{Name: name}
	}
	return nil
}

func literalName(n parse.Node) string {
	return n.String()
}

// numberFromNode resolves a parsed numeric literal the way the reference
// implementation's "ideal constant" rule does: the literal's own syntax
// (decimal point, exponent) picks float over int when both are plausible.
func numberFromNode(n *parse.NumberNode) (value.Value, error) {
	looksFloat := strings.ContainsAny(n.Text, ".eE") && !strings.HasPrefix(n.Text, "0x") && !strings.HasPrefix(n.Text, "0X")
	switch {
	case n.IsFloat && looksFloat:
		return value.Float(n.Float64), nil
	case n.IsInt:
		return value.Int(n.Int64), nil
	case n.IsUint:
		return value.Uint(n.Uint64), nil
	case n.IsFloat:
		return value.Float(n.Float64), nil
	default:
		return value.Value{}, CannotEvaluateCommandError{Node: n}
	}
}

// evalFunction calls a registered function named by an IdentifierNode,
// which is always a function name in command position (spec.md §4.3).
func (s *execState) evalFunction(ctx Context, ident *parse.IdentifierNode, cmdArgs []parse.Node, final *value.Value) (value.Value, error) {
	fn, ok := s.funcs.Lookup(ident.Ident)
	if !ok {
		return value.Value{}, UndefinedFunctionError{Name: ident.Ident}
	}
	var argNodes []parse.Node
	if len(cmdArgs) > 1 {
		argNodes = cmdArgs[1:]
	}
	return s.callFunction(ctx, fn, ident.Ident, argNodes, final)
}

// callFunction evaluates argNodes (always recursively, via evalArg),
// appends final if present, and invokes fn.
func (s *execState) callFunction(ctx Context, fn value.Function, name string, argNodes []parse.Node, final *value.Value) (value.Value, error) {
	args := make([]value.Value, 0, len(argNodes)+1)
	for _, a := range argNodes {
		v, err := s.evalArg(ctx, a)
		if err != nil {
			return value.Value{}, err
		}
		args = append(args, v)
	}
	if final != nil {
		args = append(args, *final)
	}
	result, err := fn(args)
	if err != nil {
		return value.Value{}, FunctionCallFailedError{Name: name, Cause: err}
	}
	return result, nil
}
