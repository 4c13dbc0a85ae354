package tmplengine

import "github.com/corvidrun/tmplengine/value"

// Context wraps the current "dot" value. It is immutable; with and range
// construct a new Context when they bind a new dot rather than mutating one
// in place.
type Context struct {
	dot value.Value
}

// Empty returns a root context whose dot is absent.
func Empty() Context {
	return Context{dot: value.Nil()}
}

// From constructs a root context around v.
func From(v value.Value) Context {
	return Context{dot: v}
}

// Dot returns the current dot value.
func (c Context) Dot() value.Value {
	return c.dot
}

// WithDot returns a new Context with the given dot, leaving c unmodified.
func (c Context) WithDot(v value.Value) Context {
	return Context{dot: v}
}
