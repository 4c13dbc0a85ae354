// Package tmplengine is a template execution engine compatible with the
// well-known Go templating syntax: given a parsed template tree (a
// text/template/parse.Tree) and a root data value, it walks the tree,
// evaluates pipelines, dispatches to registered functions, and manages
// nested lexical scopes for range and with.
//
// Parsing template source into a tree, the dynamic value model, the
// function registry, and the output sink are external collaborators; see
// collaborators.go.
package tmplengine
