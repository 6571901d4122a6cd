package evaluator

import "github.com/toakleaf/sass.go/internal/ast"
import "github.com/toakleaf/sass.go/internal/env"

// UserFunction is a `@function` definition closed over the scope it was
// declared in, so it can be called from anywhere its name is in scope
// (including, via meta.get-function, after the defining scope is gone).
type UserFunction struct {
	Name    string
	Params  []ast.Param
	Body    *ast.Block
	Closure env.Snapshot
}

func (f *UserFunction) CallableName() string { return f.Name }

// UserMixin is a `@mixin` definition, closed over its declaration scope
// the same way.
type UserMixin struct {
	Name    string
	Params  []ast.Param
	Body    *ast.Block
	Closure env.Snapshot
}

func (m *UserMixin) CallableName() string { return m.Name }

// ContentMixin wraps the block passed to `@include ... { ... }`, captured
// at the call site (not the mixin body) so `@content` evaluates in the
// lexical environment where the `@include` was written, per §4.3.
// Registered into the mixin body's scope under the literal name
// "@content", the convention internal/builtins/meta.go's content-exists
// also checks.
type ContentMixin struct {
	Params  []ast.Param
	Body    *ast.Block
	Closure env.Snapshot
}

func (c *ContentMixin) CallableName() string { return "@content" }
