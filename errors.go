package tmplengine

import (
	"fmt"
	"text/template/parse"

	"github.com/corvidrun/tmplengine/value"
)

// MaxTemplateDepth is the recursion limit for nested {{template}}
// invocations; exceeding it is a fatal execution error (spec.md §3).
const MaxTemplateDepth = 100000

// IncompleteTemplateError is returned when the engine's own root template
// name has no associated tree.
type IncompleteTemplateError struct{ Name string }

func (e IncompleteTemplateError) Error() string {
	return fmt.Sprintf("template: %q is an incomplete or empty template", e.Name)
}

// TemplateNotDefinedError is returned when a nested {{template}} names a
// tree the template set does not contain.
type TemplateNotDefinedError struct{ Name string }

func (e TemplateNotDefinedError) Error() string {
	return fmt.Sprintf("template: %q is not defined", e.Name)
}

// MaxTemplateDepthError is returned when nested template invocation would
// exceed MaxTemplateDepth.
type MaxTemplateDepthError struct{}

func (e MaxTemplateDepthError) Error() string {
	return fmt.Sprintf("template: exceeded maximum template recursion depth of %d", MaxTemplateDepth)
}

// PipelineMustYieldStringError is returned when a dynamic {{template}} name
// pipeline evaluates to a non-String value.
type PipelineMustYieldStringError struct{ Got value.Kind }

func (e PipelineMustYieldStringError) Error() string {
	return fmt.Sprintf("template: name pipeline must yield a string, got %s", e.Got)
}

// ErrorEvaluatingPipeError is returned when a pipeline's command list is
// empty, so no value was ever produced.
type ErrorEvaluatingPipeError struct{}

func (e ErrorEvaluatingPipeError) Error() string {
	return "template: pipeline produced no value"
}

// NoArgsForCommandNodeError is returned for a command with zero arguments;
// unreachable for any tree produced by text/template/parse, which never
// emits an empty CommandNode, but checked defensively at the evaluator
// boundary.
type NoArgsForCommandNodeError struct{}

func (e NoArgsForCommandNodeError) Error() string {
	return "template: command node has no arguments"
}

// CannotEvaluateCommandError is returned when a command's first argument is
// not one of the evaluable forms in spec.md §4.3's table.
type CannotEvaluateCommandError struct{ Node parse.Node }

func (e CannotEvaluateCommandError) Error() string {
	return fmt.Sprintf("template: cannot evaluate command %q", e.Node)
}

// UndefinedFunctionError is returned when an IdentifierNode names a
// function absent from the FuncRegistry.
type UndefinedFunctionError struct{ Name string }

func (e UndefinedFunctionError) Error() string {
	return fmt.Sprintf("template: %q is not a defined function", e.Name)
}

// ArgumentForNonFunctionError is returned when trailing arguments or a
// piped-in value are supplied to a resolved value that is not callable.
type ArgumentForNonFunctionError struct{ Name string }

func (e ArgumentForNonFunctionError) Error() string {
	return fmt.Sprintf("template: %q is not a function but has arguments", e.Name)
}

// NotAFunctionButArgumentsError is the field-resolution counterpart of
// ArgumentForNonFunctionError, raised by eval_field (spec.md §4.4).
type NotAFunctionButArgumentsError struct{ Name string }

func (e NotAFunctionButArgumentsError) Error() string {
	return fmt.Sprintf("template: %q is not a function but has arguments", e.Name)
}

// InvalidArgumentError is returned when a node in argument position cannot
// be evaluated by eval_arg.
type InvalidArgumentError struct{ Node parse.Node }

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("template: cannot evaluate argument %q", e.Node)
}

// FieldChainWithoutFieldsError is returned for a field-access chain node
// whose identifier list is empty; unreachable for any tree produced by
// text/template/parse, checked defensively at the evaluator boundary.
type FieldChainWithoutFieldsError struct{}

func (e FieldChainWithoutFieldsError) Error() string {
	return "template: field chain without fields"
}

// NoFieldForError is returned when an Object field access names a field the
// Object does not have.
type NoFieldForError struct {
	Name     string
	Receiver value.Kind
}

func (e NoFieldForError) Error() string {
	return fmt.Sprintf("template: %s is not a field of %s", e.Name, e.Receiver)
}

// OnlyMapsAndObjectsHaveFieldsError is returned when field access targets a
// scalar, array, nil, or function receiver.
type OnlyMapsAndObjectsHaveFieldsError struct {
	Name     string
	Receiver value.Kind
}

func (e OnlyMapsAndObjectsHaveFieldsError) Error() string {
	return fmt.Sprintf("template: can't evaluate field %s in %s", e.Name, e.Receiver)
}

// NullInChainError is returned when a chain's base expression is the nil
// literal.
type NullInChainError struct{}

func (e NullInChainError) Error() string {
	return "template: nil pointer evaluating field chain"
}

// NoFieldsInEvalChainNodeError is returned for a ChainNode with an empty
// identifier list; unreachable for any tree produced by
// text/template/parse, checked defensively at the evaluator boundary.
type NoFieldsInEvalChainNodeError struct{}

func (e NoFieldsInEvalChainNodeError) Error() string {
	return "template: internal error: no fields in chain node"
}

// VariableNotFoundError is returned on a stack lookup miss, including the
// bug fixed per spec.md §9: `=` reassignment of an undeclared variable.
type VariableNotFoundError struct{ Name string }

func (e VariableNotFoundError) Error() string {
	return fmt.Sprintf("template: undefined variable: %s", e.Name)
}

// EmptyStackError signals an internal invariant violation: the scope stack
// had zero frames. It should be unreachable.
type EmptyStackError struct{}

func (e EmptyStackError) Error() string {
	return "template: internal error: empty variable stack"
}

// VarContextTooSmallError signals an internal invariant violation: a range
// iteration tried to overwrite a loop-variable slot that the preceding
// pipeline evaluation never created.
type VarContextTooSmallError struct{ Want int }

func (e VarContextTooSmallError) Error() string {
	return fmt.Sprintf("template: internal error: variable context too small for position %d", e.Want)
}

// InvalidRangeError is returned when a {{range}} pipeline does not produce
// an Array, Map, or Object.
type InvalidRangeError struct{ Got value.Kind }

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("template: range can't iterate over value of kind %s", e.Got)
}

// ExpectedIfOrWithError signals an internal dispatch mismatch between the
// tree walker and the if/with handler.
type ExpectedIfOrWithError struct{}

func (e ExpectedIfOrWithError) Error() string {
	return "template: internal error: expected if or with node"
}

// UnknownNodeError is returned for a node kind the tree walker does not
// handle at statement position.
type UnknownNodeError struct{ Node parse.Node }

func (e UnknownNodeError) Error() string {
	return fmt.Sprintf("template: unknown node: %s", e.Node)
}

// IOError wraps a writer failure.
type IOError struct{ Cause error }

func (e IOError) Error() string { return fmt.Sprintf("template: write error: %v", e.Cause) }
func (e IOError) Unwrap() error { return e.Cause }

// FunctionCallFailedError wraps an error a user function returned.
type FunctionCallFailedError struct {
	Name  string
	Cause error
}

func (e FunctionCallFailedError) Error() string {
	return fmt.Sprintf("template: error calling %s: %v", e.Name, e.Cause)
}
func (e FunctionCallFailedError) Unwrap() error { return e.Cause }

// Utf8ConversionFailedError is returned by Render when the accumulated
// output bytes are not valid UTF-8.
type Utf8ConversionFailedError struct{}

func (e Utf8ConversionFailedError) Error() string {
	return "template: render output is not valid UTF-8"
}
