package evaluator

import (
	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/csstree"
	"github.com/toakleaf/sass.go/internal/parser"
	"github.com/toakleaf/sass.go/internal/sasserr"
	"github.com/toakleaf/sass.go/internal/source"
)

// parseModule loads and parses the stylesheet at a canonical identifier
// previously returned by Resolver.Resolve.
func (e *Evaluator) parseModule(canonical string) (*ast.Stylesheet, error) {
	if cached, ok := e.moduleASTs[canonical]; ok {
		return cached, nil
	}
	if e.Resolver == nil {
		return nil, e.fail(sasserr.IO, source.Span{}, "cannot load %q: no importer configured", canonical)
	}
	text, syntax, err := e.Resolver.Load(canonical)
	if err != nil {
		return nil, err
	}
	src := e.Sources.Add(canonical, text, syntax)
	sheet, err := parser.New(e.Sources, src).Parse()
	if err != nil {
		return nil, err
	}
	e.moduleASTs[canonical] = sheet
	return sheet, nil
}

// loadModule evaluates a module's stylesheet once (subsequent uses of the
// same canonical URL share the cached Module, per §4.2's load-once rule),
// in a fresh child Evaluator that shares this evaluator's logger, sources,
// resolver, extender and module caches but starts from a clean scope and
// its own builtin registry.
func (e *Evaluator) loadModule(canonical string, sp source.Span) (*Module, error) {
	if mod, ok := e.modules[canonical]; ok {
		return mod, nil
	}
	for _, active := range e.importStack {
		if active == canonical {
			return nil, e.fail(sasserr.IO, sp, "module loop: %q", canonical)
		}
	}
	sheet, err := e.parseModule(canonical)
	if err != nil {
		return nil, e.fail(sasserr.Syntax, sp, "failed to parse %q: %s", canonical, err)
	}

	child := New(e.Sources, e.Logger, e.Resolver)
	child.Extender = e.Extender
	child.modules = e.modules
	child.moduleASTs = e.moduleASTs
	child.importStack = append(append([]string{}, e.importStack...), canonical)
	child.CurrentURL = canonical

	var out []csstree.Node
	if err := child.evalBlockFlat(sheet.Body, &out); err != nil {
		return nil, err
	}
	mod := &Module{Scope: child.Scope, CSS: out}
	e.modules[canonical] = mod
	return mod, nil
}

func (e *Evaluator) evalUseRule(t *ast.UseRule) error {
	canonical, err := e.Resolver.Resolve(e.CurrentURL, t.URL)
	if err != nil {
		return e.fail(sasserr.IO, t.Span(), "failed to resolve @use %q: %s", t.URL, err)
	}
	// Module configuration (`@use "x" with (...)`) would override the
	// target's `!default` variables before it runs; not implemented, so a
	// configured module evaluates with its own defaults regardless of
	// t.ConfigWith.
	mod, err := e.loadModule(canonical, t.Span())
	if err != nil {
		return err
	}
	ns := t.Namespace
	if ns == "" {
		ns = defaultNamespace(t.URL)
	}
	if ns == "*" {
		vars, funcs, mixins := mod.Scope.RootBindings()
		for k, v := range vars {
			e.Scope.SetGlobal(k, v)
		}
		for k, f := range funcs {
			e.Scope.SetFunc(k, f)
		}
		for k, m := range mixins {
			e.Scope.SetMixin(k, m)
		}
		return nil
	}
	e.namespaceAlias[ns] = canonical
	return nil
}

func (e *Evaluator) evalForwardRule(t *ast.ForwardRule) error {
	canonical, err := e.Resolver.Resolve(e.CurrentURL, t.URL)
	if err != nil {
		return e.fail(sasserr.IO, t.Span(), "failed to resolve @forward %q: %s", t.URL, err)
	}
	mod, err := e.loadModule(canonical, t.Span())
	if err != nil {
		return err
	}
	vars, funcs, mixins := mod.Scope.RootBindings()
	visible := func(name string) bool {
		if len(t.Show) > 0 {
			for _, s := range t.Show {
				if s == name {
					return true
				}
			}
			return false
		}
		for _, h := range t.Hide {
			if h == name {
				return false
			}
		}
		return true
	}
	for k, v := range vars {
		if visible(k) {
			e.Scope.SetGlobal(t.Prefix+k, v)
		}
	}
	for k, f := range funcs {
		if visible(k) {
			e.Scope.SetFunc(t.Prefix+k, f)
		}
	}
	for k, m := range mixins {
		if visible(k) {
			e.Scope.SetMixin(t.Prefix+k, m)
		}
	}
	return nil
}

// defaultNamespace implements §4.2's implicit namespace derivation: the
// last URL segment, minus extension and any leading partial underscore.
// A final "index" segment takes its namespace from the directory above
// it instead (`foo/index.scss` is namespaced "foo").
func defaultNamespace(url string) string {
	segs := splitSegments(url)
	if len(segs) == 0 {
		return url
	}
	last := stripUnderscoreAndExt(segs[len(segs)-1])
	if last == "index" && len(segs) >= 2 {
		return stripUnderscoreAndExt(segs[len(segs)-2])
	}
	return last
}

func splitSegments(url string) []string {
	var segs []string
	start := 0
	for i := 0; i <= len(url); i++ {
		if i == len(url) || url[i] == '/' {
			if i > start {
				segs = append(segs, url[start:i])
			}
			start = i + 1
		}
	}
	return segs
}

func stripUnderscoreAndExt(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			name = name[:i]
			break
		}
	}
	if len(name) > 0 && name[0] == '_' {
		name = name[1:]
	}
	return name
}
