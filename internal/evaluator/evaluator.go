// Package evaluator walks a parsed stylesheet's Stmt/Expr tree (§4.3) and
// produces an internal/csstree.Root: it resolves selectors against the
// enclosing selector stack, evaluates SassScript expressions down to
// internal/value.Value, runs control flow, binds and invokes user-defined
// and built-in functions/mixins, and records @extend declarations into a
// shared internal/selector.Extender, applying them to the evaluated tree
// before the Cssize pass runs.
//
// Grounded on the teacher's less/eval.go recursive-descent tree-walk
// (Node.Eval(ctx) producing a new Node, ctx threading the current
// frame/selector/import stack), generalized from Less's single frame kind
// into spec.md's three-namespace env.Scope and extended with the
// module system (@use/@forward) and the fixed-point @extend pass Less
// doesn't have.
package evaluator

import (
	"fmt"

	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/builtins"
	"github.com/toakleaf/sass.go/internal/csstree"
	"github.com/toakleaf/sass.go/internal/env"
	"github.com/toakleaf/sass.go/internal/sasserr"
	"github.com/toakleaf/sass.go/internal/sasslog"
	"github.com/toakleaf/sass.go/internal/selector"
	"github.com/toakleaf/sass.go/internal/source"
	"github.com/toakleaf/sass.go/internal/value"
)

// MaxRecursionDepth is §5's default call-stack budget.
const MaxRecursionDepth = 512

// Resolver resolves and loads `@use`/`@forward`/dynamic `@import` targets.
// internal/importer supplies the real filesystem/package implementation;
// tests can supply an in-memory stub.
type Resolver interface {
	// Resolve turns target (as written at fromURL) into a canonical,
	// cache-keyable absolute identifier.
	Resolve(fromURL, target string) (string, error)
	// Load returns the contents and syntax of a canonical identifier
	// previously returned by Resolve.
	Load(canonical string) (text string, syntax source.Syntax, err error)
}

// Module is one `@use`d or `@forward`ed stylesheet's evaluation result:
// its top-level bindings (for namespaced lookups) and the CSS nodes its
// own body produced. That CSS is kept on the Module only: evalUseRule and
// evalForwardRule do not copy it into the using stylesheet's output.
type Module struct {
	Scope *env.Scope
	CSS   []csstree.Node
}

// Evaluator is a single compilation's mutable evaluation state.
type Evaluator struct {
	Scope    *env.Scope
	Registry *builtins.Registry
	Logger   *sasslog.Logger
	Sources  *source.Set
	Resolver Resolver

	Extender *selector.Extender

	selectorStack []*selector.List
	depth         int

	modules       map[string]*Module // canonical URL -> loaded module
	moduleASTs    map[string]*ast.Stylesheet
	importStack   []string
	namespaceAlias map[string]string // `@use`/`@forward` alias -> "sass:xxx" or a canonical module URL
	CurrentURL    string
}

// New creates an Evaluator with builtins installed as unqualified globals
// (the pre-modules compatibility behavior real Sass keeps, §4.2).
func New(sources *source.Set, logger *sasslog.Logger, resolver Resolver) *Evaluator {
	scope := env.New()
	registry := builtins.NewRegistry()
	builtins.InstallGlobals(registry, scope)
	return &Evaluator{
		Scope:      scope,
		Registry:   registry,
		Logger:     logger,
		Sources:    sources,
		Resolver:   resolver,
		Extender:   selector.NewExtender(),
		modules:    map[string]*Module{},
		moduleASTs: map[string]*ast.Stylesheet{},
		namespaceAlias: map[string]string{},
	}
}

// Compile evaluates a whole stylesheet into a Root, then runs Cssize so
// the result is legal (non-nested) CSS, and reports any @extend that was
// required but never matched (§4.4's Failure semantics).
func (e *Evaluator) Compile(sheet *ast.Stylesheet) (*csstree.Root, error) {
	if sheet.Source != nil {
		e.CurrentURL = sheet.Source.URL
	}
	var out []csstree.Node
	if err := e.evalBlockFlat(sheet.Body, &out); err != nil {
		return nil, err
	}
	root := &csstree.Root{Children: out}
	e.applyExtends(root.Children)
	root = csstree.Cssize(root)
	if unmatched := e.Extender.UnmatchedRequired(); len(unmatched) > 0 {
		return root, sasserr.New(sasserr.UnsatisfiedExtend, source.Span{}, fmt.Sprintf("%d required @extend(s) never matched a selector", len(unmatched)))
	}
	return root, nil
}

// applyExtends walks the evaluated tree applying every registered @extend
// to each style rule's selector, in place, before Cssize flattens nesting.
func (e *Evaluator) applyExtends(nodes []csstree.Node) {
	for _, n := range nodes {
		switch t := n.(type) {
		case *csstree.StyleRule:
			t.Selector = e.Extender.Apply(t.Selector)
			e.applyExtends(t.Children)
		case *csstree.AtRule:
			e.applyExtends(t.Children)
		case *csstree.MediaRule:
			e.applyExtends(t.Children)
		case *csstree.SupportsRule:
			e.applyExtends(t.Children)
		case *csstree.KeyframesRule:
			e.applyExtends(t.Children)
		}
	}
}

func (e *Evaluator) fail(kind sasserr.Kind, span source.Span, format string, args ...any) error {
	return sasserr.Newf(kind, span, format, args...)
}

func (e *Evaluator) currentSelector() *selector.List {
	if len(e.selectorStack) == 0 {
		return nil
	}
	return e.selectorStack[len(e.selectorStack)-1]
}

func (e *Evaluator) enterRecursion(span source.Span) error {
	e.depth++
	if e.depth > MaxRecursionDepth {
		return e.fail(sasserr.RecursionLimit, span, "max call stack depth exceeded")
	}
	return nil
}

func (e *Evaluator) exitRecursion() { e.depth-- }

// evalInterpolationText evaluates every #{} part of an interpolation and
// concatenates it with the literal parts, the unquoted-CSS-text form used
// for selectors, property names, and at-rule parameters.
func (e *Evaluator) evalInterpolationText(interp *ast.Interpolation) (string, error) {
	if interp == nil {
		return "", nil
	}
	if interp.IsPlainText() {
		return interp.PlainText(), nil
	}
	out := ""
	for _, p := range interp.Parts {
		if p.Expr == nil {
			out += p.Literal
			continue
		}
		v, err := e.evalExpr(p.Expr)
		if err != nil {
			return "", err
		}
		out += valueToCSSText(v)
	}
	return out, nil
}

// valueToCSSText renders a value the way it appears spliced into CSS text
// (a property value, selector, or at-rule prelude): unquoted strings stay
// unquoted, everything else uses its Inspect form.
func valueToCSSText(v value.Value) string {
	if s, ok := v.(*value.SassString); ok {
		return s.Text
	}
	if isNullValue(v) {
		return ""
	}
	return v.Inspect()
}

func isNullValue(v value.Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(value.Null)
	return ok
}
