package evaluator

import (
	"strings"

	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/builtins"
	"github.com/toakleaf/sass.go/internal/csstree"
	"github.com/toakleaf/sass.go/internal/env"
	"github.com/toakleaf/sass.go/internal/sasserr"
	"github.com/toakleaf/sass.go/internal/source"
	"github.com/toakleaf/sass.go/internal/value"
)

// invokeCallable dispatches any env.Callable-shaped value — a
// user-defined function or a native builtin wrapped for meta.get-function
// — to its concrete implementation.
func (e *Evaluator) invokeCallable(c env.Callable, args ast.ArgInvocation, sp source.Span) (value.Value, error) {
	switch fn := c.(type) {
	case *UserFunction:
		return e.invokeUserFunction(fn, args, sp)
	case *builtins.Builtin:
		return e.invokeBuiltin(fn, args, sp)
	default:
		return nil, e.fail(sasserr.TypeMismatch, sp, "%s is not callable as a function", c.CallableName())
	}
}

func (e *Evaluator) invokeUserFunction(fn *UserFunction, args ast.ArgInvocation, sp source.Span) (value.Value, error) {
	if err := e.enterRecursion(sp); err != nil {
		return nil, err
	}
	defer e.exitRecursion()
	result := value.Value(value.NullValue)
	var callErr error
	e.Scope.Enter(fn.Closure, func() {
		if err := e.bindParams(fn.Name, fn.Params, args, sp); err != nil {
			callErr = err
			return
		}
		v, returned, err := e.execBlock(fn.Body)
		if err != nil {
			callErr = err
			return
		}
		if !returned {
			callErr = e.fail(sasserr.Custom, sp, "function %s finished without @return", fn.Name)
			return
		}
		result = v
	})
	if callErr != nil {
		return nil, sasserr.AsCompileError(callErr).WithFrame(sp, "function `"+fn.Name+"`")
	}
	return result, nil
}

// invokeUserMixin runs a mixin's body, appending the CSS it produces into
// out (mixins emit directly into their call site's surrounding context,
// unlike functions, which return a value instead). content, if non-nil,
// is registered under the "@content" mixin name for the body's `@content`
// statements to find.
func (e *Evaluator) invokeUserMixin(m *UserMixin, args ast.ArgInvocation, content *ContentMixin, sp source.Span, out *[]csstree.Node) error {
	if err := e.enterRecursion(sp); err != nil {
		return err
	}
	defer e.exitRecursion()
	var callErr error
	e.Scope.Enter(m.Closure, func() {
		if err := e.bindParams(m.Name, m.Params, args, sp); err != nil {
			callErr = err
			return
		}
		if content != nil {
			e.Scope.SetMixin("@content", content)
		}
		callErr = e.evalBlockFlat(m.Body, out)
	})
	if callErr != nil {
		return sasserr.AsCompileError(callErr).WithFrame(sp, "mixin `"+m.Name+"`")
	}
	return nil
}

// resolveModule resolves a `@use`/`@forward` alias to its loaded Module,
// or (nil, nil) when the alias names a built-in "sass:" namespace instead
// of a user module.
func (e *Evaluator) resolveModule(ns string, sp source.Span) (*Module, error) {
	target, ok := e.namespaceAlias[ns]
	if !ok {
		return nil, e.fail(sasserr.InvalidValue, sp, "there is no module with namespace \"%s\" (did you forget to @use it?)", ns)
	}
	if strings.HasPrefix(target, "sass:") {
		return nil, nil
	}
	mod, ok := e.modules[target]
	if !ok {
		return nil, e.fail(sasserr.InvalidValue, sp, "module \"%s\" failed to load", ns)
	}
	return mod, nil
}
