package tmplengine

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/corvidrun/tmplengine/value"
)

// funcSpec describes a registration request; go-playground/validator
// enforces the shape a registered function must have before it is ever
// reachable from a template, the same struct-tag validation style the
// teacher uses for request payloads (examples/todos/main.go).
type funcSpec struct {
	Name  string `validate:"required,alphanum"`
	Arity int    `validate:"gte=0"`
}

var funcSpecValidator = validator.New()

// FuncMap is the concrete FuncRegistry: a validated, name-addressed table
// of callables.
type FuncMap struct {
	m map[string]value.Function
}

// NewFuncMap returns an empty registry.
func NewFuncMap() *FuncMap {
	return &FuncMap{m: make(map[string]value.Function)}
}

// Register adds fn under name. arity is the function's fixed argument
// count, used only for validation (0 for variadic-only functions such as
// print); it does not constrain how the function is actually called.
func (f *FuncMap) Register(name string, arity int, fn value.Function) error {
	spec := funcSpec{Name: name, Arity: arity}
	if err := funcSpecValidator.Struct(spec); err != nil {
		return fmt.Errorf("invalid function registration for %q: %w", name, err)
	}
	f.m[name] = fn
	return nil
}

// Lookup implements FuncRegistry.
func (f *FuncMap) Lookup(name string) (value.Function, bool) {
	fn, ok := f.m[name]
	return fn, ok
}

// Names returns every registered function name, used by TreeSet.ParseString
// callers that want to parse against exactly what is registered.
func (f *FuncMap) Names() []string {
	names := make([]string, 0, len(f.m))
	for n := range f.m {
		names = append(names, n)
	}
	return names
}
