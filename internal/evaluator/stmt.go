package evaluator

import (
	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/csstree"
	"github.com/toakleaf/sass.go/internal/sasserr"
	"github.com/toakleaf/sass.go/internal/selector"
	"github.com/toakleaf/sass.go/internal/value"
)

// evalBlockFlat evaluates every statement of b, appending whatever CSS
// nodes each produces directly into out — control-flow statements
// (@if/@for/@each/@while) and `@content` don't introduce a tree level of
// their own, so their bodies' output lands in the same out slice as their
// surrounding statements.
func (e *Evaluator) evalBlockFlat(b *ast.Block, out *[]csstree.Node) error {
	if b == nil {
		return nil
	}
	for _, s := range b.Stmts {
		if err := e.evalStmt(s, out); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) evalStmt(s ast.Stmt, out *[]csstree.Node) error {
	switch t := s.(type) {
	case *ast.StyleRule:
		return e.evalStyleRule(t, out)
	case *ast.Declaration:
		return e.evalDeclaration(t, out)
	case *ast.AtRule:
		return e.evalAtRule(t, out)
	case *ast.MediaRule:
		return e.evalMediaRule(t, out)
	case *ast.SupportsRule:
		return e.evalSupportsRule(t, out)
	case *ast.AtRootRule:
		return e.evalAtRootRule(t, out)
	case *ast.KeyframesRule:
		return e.evalKeyframesRule(t, out)
	case *ast.IfRule:
		return e.evalIfRule(t, out)
	case *ast.ForRule:
		return e.evalForRule(t, out)
	case *ast.EachRule:
		return e.evalEachRule(t, out)
	case *ast.WhileRule:
		return e.evalWhileRule(t, out)
	case *ast.FunctionRule:
		e.Scope.SetFunc(t.Name, &UserFunction{Name: t.Name, Params: t.Params, Body: t.Body, Closure: e.Scope.Snapshot()})
		return nil
	case *ast.MixinRule:
		e.Scope.SetMixin(t.Name, &UserMixin{Name: t.Name, Params: t.Params, Body: t.Body, Closure: e.Scope.Snapshot()})
		return nil
	case *ast.IncludeRule:
		return e.evalIncludeRule(t, out)
	case *ast.ContentRule:
		return e.evalContentRule(t, out)
	case *ast.AssignRule:
		return e.evalAssignRule(t)
	case *ast.ReturnRule:
		// Only meaningful inside a function body (execBlock handles it);
		// at CSS-producing level it's a no-op rather than a hard error,
		// matching how a misplaced @return simply can't affect output here.
		return nil
	case *ast.ExtendRule:
		return e.evalExtendRule(t)
	case *ast.WarnRule:
		v, err := e.evalExpr(t.Expr)
		if err != nil {
			return err
		}
		e.Logger.Warn(t.Span(), valueToCSSText(v))
		return nil
	case *ast.ErrorRule:
		v, err := e.evalExpr(t.Expr)
		if err != nil {
			return err
		}
		return sasserr.New(sasserr.Custom, t.Span(), valueToCSSText(v))
	case *ast.DebugRule:
		v, err := e.evalExpr(t.Expr)
		if err != nil {
			return err
		}
		e.Logger.Debug(t.Span(), v.Inspect())
		return nil
	case *ast.ImportRule:
		return e.evalImportRule(t, out)
	case *ast.ImportStub:
		return e.evalBlockFlat(t.Body, out)
	case *ast.UseRule:
		return e.evalUseRule(t)
	case *ast.ForwardRule:
		return e.evalForwardRule(t)
	case *ast.Comment:
		*out = append(*out, &csstree.Comment{Text: t.Text, Span: t.Span()})
		return nil
	default:
		return nil
	}
}

func (e *Evaluator) evalStyleRule(t *ast.StyleRule, out *[]csstree.Node) error {
	text, err := e.evalInterpolationText(t.Selector)
	if err != nil {
		return err
	}
	parsed, err := selector.Parse(text)
	if err != nil {
		return e.fail(sasserr.Syntax, t.Span(), "invalid selector %q: %s", text, err)
	}
	resolved := selector.ResolveParent(parsed, e.currentSelector())
	for _, c := range resolved.Complexes {
		e.Extender.MarkOriginal(c)
	}

	e.selectorStack = append(e.selectorStack, resolved)
	var children []csstree.Node
	err = e.evalBlockFlat(t.Body, &children)
	e.selectorStack = e.selectorStack[:len(e.selectorStack)-1]
	if err != nil {
		return err
	}
	*out = append(*out, &csstree.StyleRule{Selector: resolved, Children: children, Span: t.Span()})
	return nil
}

func (e *Evaluator) evalDeclaration(t *ast.Declaration, out *[]csstree.Node) error {
	name, err := e.evalInterpolationText(t.Name)
	if err != nil {
		return err
	}
	if t.Value != nil {
		v, err := e.evalExpr(t.Value)
		if err != nil {
			return err
		}
		if !isNullValue(v) {
			*out = append(*out, &csstree.Declaration{Property: name, Value: valueToCSSText(v), Span: t.Span()})
		}
	}
	if t.Body != nil {
		return e.evalNestedDeclarations(name, t.Body, out)
	}
	return nil
}

// evalNestedDeclarations implements CSS's nested-property shorthand
// (`font: { family: ...; size: ...; }`), prefixing each inner
// declaration's name with "<outer>-".
func (e *Evaluator) evalNestedDeclarations(prefix string, b *ast.Block, out *[]csstree.Node) error {
	for _, s := range b.Stmts {
		d, ok := s.(*ast.Declaration)
		if !ok {
			if err := e.evalStmt(s, out); err != nil {
				return err
			}
			continue
		}
		inner, err := e.evalInterpolationText(d.Name)
		if err != nil {
			return err
		}
		full := prefix + "-" + inner
		if d.Value != nil {
			v, err := e.evalExpr(d.Value)
			if err != nil {
				return err
			}
			if !isNullValue(v) {
				*out = append(*out, &csstree.Declaration{Property: full, Value: valueToCSSText(v), Span: d.Span()})
			}
		}
		if d.Body != nil {
			if err := e.evalNestedDeclarations(full, d.Body, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Evaluator) evalAtRule(t *ast.AtRule, out *[]csstree.Node) error {
	params, err := e.evalInterpolationText(t.Value)
	if err != nil {
		return err
	}
	if t.Childless {
		*out = append(*out, &csstree.AtRule{Name: t.Name, Params: params, Childless: true, Span: t.Span()})
		return nil
	}
	var children []csstree.Node
	if err := e.evalBlockFlat(t.Body, &children); err != nil {
		return err
	}
	*out = append(*out, &csstree.AtRule{Name: t.Name, Params: params, Children: children, Span: t.Span()})
	return nil
}

func (e *Evaluator) evalMediaRule(t *ast.MediaRule, out *[]csstree.Node) error {
	query, err := e.evalInterpolationText(t.Queries)
	if err != nil {
		return err
	}
	var children []csstree.Node
	if err := e.evalBlockFlat(t.Body, &children); err != nil {
		return err
	}
	*out = append(*out, &csstree.MediaRule{Query: query, Children: children, Span: t.Span()})
	return nil
}

func (e *Evaluator) evalSupportsRule(t *ast.SupportsRule, out *[]csstree.Node) error {
	cond, err := e.evalInterpolationText(t.Condition)
	if err != nil {
		return err
	}
	var children []csstree.Node
	if err := e.evalBlockFlat(t.Body, &children); err != nil {
		return err
	}
	*out = append(*out, &csstree.SupportsRule{Condition: cond, Children: children, Span: t.Span()})
	return nil
}

// atRootExcludes interprets an `@at-root` query's with/without clause into
// which of the two nesting contexts (selector, media) the body should
// escape. A query-less `@at-root` only escapes the selector stack, §4.2's
// most common case.
func atRootExcludes(q ast.AtRootQuery) (excludeRule, excludeMedia bool) {
	if !q.HasQuery {
		return true, false
	}
	has := func(n string) bool {
		for _, name := range q.Names {
			if name == n {
				return true
			}
		}
		return false
	}
	if q.With {
		if has("all") {
			return false, false
		}
		return !has("rule"), !has("media")
	}
	if has("all") {
		return true, true
	}
	return has("rule") || len(q.Names) == 0, has("media")
}

func (e *Evaluator) evalAtRootRule(t *ast.AtRootRule, out *[]csstree.Node) error {
	excludeRule, _ := atRootExcludes(t.Query)
	savedStack := e.selectorStack
	if excludeRule {
		e.selectorStack = nil
	}
	// Note: "without: media"/"with: media" would need to escape an
	// in-progress MediaRule's own Children slice, which this single-pass
	// tree builder can't splice into after the fact; @at-root's selector
	// escaping (the overwhelmingly common case) is fully supported, media
	// escaping is not. Recorded as a known limitation.
	err := e.evalBlockFlat(t.Body, out)
	e.selectorStack = savedStack
	return err
}

func (e *Evaluator) evalKeyframesRule(t *ast.KeyframesRule, out *[]csstree.Node) error {
	name, err := e.evalInterpolationText(t.Name)
	if err != nil {
		return err
	}
	var kids []csstree.Node
	for _, s := range t.Body.Stmts {
		if sr, ok := s.(*ast.StyleRule); ok {
			selText, err := e.evalInterpolationText(sr.Selector)
			if err != nil {
				return err
			}
			sel, err := selector.Parse(selText)
			if err != nil {
				return e.fail(sasserr.Syntax, sr.Span(), "invalid keyframe selector %q: %s", selText, err)
			}
			var children []csstree.Node
			if err := e.evalBlockFlat(sr.Body, &children); err != nil {
				return err
			}
			kids = append(kids, &csstree.StyleRule{Selector: sel, Children: children, Span: sr.Span()})
			continue
		}
		if err := e.evalStmt(s, &kids); err != nil {
			return err
		}
	}
	*out = append(*out, &csstree.KeyframesRule{Prefix: t.Prefix, Name: name, Children: kids, Span: t.Span()})
	return nil
}

func (e *Evaluator) evalIfRule(t *ast.IfRule, out *[]csstree.Node) error {
	for _, clause := range t.Clauses {
		if clause.Cond == nil {
			return e.evalBlockFlat(clause.Body, out)
		}
		v, err := e.evalExpr(clause.Cond)
		if err != nil {
			return err
		}
		if v.Truthy() {
			return e.evalBlockFlat(clause.Body, out)
		}
	}
	return nil
}

func (e *Evaluator) evalForRule(t *ast.ForRule, out *[]csstree.Node) error {
	fromV, err := e.evalExpr(t.From)
	if err != nil {
		return err
	}
	toV, err := e.evalExpr(t.To)
	if err != nil {
		return err
	}
	fromN, ok1 := fromV.(*value.Number)
	toN, ok2 := toV.(*value.Number)
	if !ok1 || !ok2 {
		return e.fail(sasserr.TypeMismatch, t.Span(), "@for bounds must be numbers")
	}
	from, to := int(fromN.Val), int(toN.Val)
	step := 1
	if from > to {
		step = -1
	}
	e.Scope.Push()
	defer e.Scope.Pop()
	inRange := func(i int) bool {
		if t.Exclusive {
			return i != to
		}
		if step > 0 {
			return i <= to
		}
		return i >= to
	}
	for i := from; inRange(i); i += step {
		e.Scope.DeclareLocal(t.Var, value.NewUnitless(float64(i)))
		if err := e.evalBlockFlat(t.Body, out); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) evalEachRule(t *ast.EachRule, out *[]csstree.Node) error {
	iter, err := e.evalExpr(t.Iterable)
	if err != nil {
		return err
	}
	var items []value.Value
	if m, ok := iter.(*value.Map); ok {
		items = m.AsList().Items
	} else {
		items = value.SingleToList(iter).Items
	}
	e.Scope.Push()
	defer e.Scope.Pop()
	for _, item := range items {
		if len(t.Vars) == 1 {
			e.Scope.DeclareLocal(t.Vars[0], item)
		} else {
			parts := value.SingleToList(item).Items
			for i, name := range t.Vars {
				if i < len(parts) {
					e.Scope.DeclareLocal(name, parts[i])
				} else {
					e.Scope.DeclareLocal(name, value.NullValue)
				}
			}
		}
		if err := e.evalBlockFlat(t.Body, out); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) evalWhileRule(t *ast.WhileRule, out *[]csstree.Node) error {
	e.Scope.Push()
	defer e.Scope.Pop()
	for {
		v, err := e.evalExpr(t.Cond)
		if err != nil {
			return err
		}
		if !v.Truthy() {
			return nil
		}
		if err := e.evalBlockFlat(t.Body, out); err != nil {
			return err
		}
	}
}

func (e *Evaluator) evalIncludeRule(t *ast.IncludeRule, out *[]csstree.Node) error {
	if err := e.enterRecursion(t.Span()); err != nil {
		return err
	}
	defer e.exitRecursion()
	var content *ContentMixin
	if t.ContentBlock != nil {
		content = &ContentMixin{Params: t.ContentArgs, Body: t.ContentBlock, Closure: e.Scope.Snapshot()}
	}
	if t.Namespace != "" {
		mod, err := e.resolveModule(t.Namespace, t.Span())
		if err != nil {
			return err
		}
		if mod == nil {
			return e.fail(sasserr.InvalidValue, t.Span(), "sass:%s has no mixin %s", t.Namespace, t.Name)
		}
		m, ok := mod.Scope.GetMixin(t.Name)
		if !ok {
			return e.fail(sasserr.InvalidValue, t.Span(), "undefined mixin %s.%s", t.Namespace, t.Name)
		}
		um, ok := m.(*UserMixin)
		if !ok {
			return e.fail(sasserr.TypeMismatch, t.Span(), "%s.%s is not a mixin", t.Namespace, t.Name)
		}
		return e.invokeUserMixin(um, t.Args, content, t.Span(), out)
	}
	m, ok := e.Scope.GetMixin(t.Name)
	if !ok {
		return e.fail(sasserr.InvalidValue, t.Span(), "undefined mixin %s", t.Name)
	}
	um, ok := m.(*UserMixin)
	if !ok {
		return e.fail(sasserr.TypeMismatch, t.Span(), "%s is not a mixin", t.Name)
	}
	return e.invokeUserMixin(um, t.Args, content, t.Span(), out)
}

func (e *Evaluator) evalContentRule(t *ast.ContentRule, out *[]csstree.Node) error {
	m, ok := e.Scope.GetMixin("@content")
	if !ok {
		// @content with no block passed to the enclosing @include is a
		// silent no-op, matching Sass's "content-exists()" escape hatch.
		return nil
	}
	cm, ok := m.(*ContentMixin)
	if !ok {
		return nil
	}
	if err := e.enterRecursion(t.Span()); err != nil {
		return err
	}
	defer e.exitRecursion()
	var callErr error
	e.Scope.Enter(cm.Closure, func() {
		if err := e.bindParams("@content", cm.Params, t.Args, t.Span()); err != nil {
			callErr = err
			return
		}
		callErr = e.evalBlockFlat(cm.Body, out)
	})
	return callErr
}

func (e *Evaluator) evalAssignRule(t *ast.AssignRule) error {
	if t.Namespace != "" {
		mod, err := e.resolveModule(t.Namespace, t.Span())
		if err != nil {
			return err
		}
		if mod == nil {
			return e.fail(sasserr.InvalidValue, t.Span(), "cannot assign into sass:%s", t.Namespace)
		}
		v, err := e.evalExpr(t.Expr)
		if err != nil {
			return err
		}
		mod.Scope.SetGlobal(t.Name, v)
		return nil
	}
	if t.Guarded {
		var already bool
		if t.Global {
			_, already = e.Scope.GetGlobal(t.Name)
		} else {
			_, already = e.Scope.GetVar(t.Name)
		}
		if already {
			return nil
		}
	}
	v, err := e.evalExpr(t.Expr)
	if err != nil {
		return err
	}
	if t.Global {
		e.Scope.SetGlobal(t.Name, v)
	} else {
		e.Scope.SetVar(t.Name, v)
	}
	return nil
}

// evalExtendRule registers one `@extend` declared inside the innermost
// enclosing style rule: the extender is that rule's resolved selector,
// the target is each simple selector the `@extend` names (an extendee
// compound like `.a.b` extends `.a` and `.b` independently, per §4.4e).
func (e *Evaluator) evalExtendRule(t *ast.ExtendRule) error {
	cur := e.currentSelector()
	if cur == nil {
		return e.fail(sasserr.TopLevelParent, t.Span(), "@extend may only be used inside a style rule")
	}
	text, err := e.evalInterpolationText(t.Selector)
	if err != nil {
		return err
	}
	targetList, err := selector.Parse(text)
	if err != nil {
		return e.fail(sasserr.Syntax, t.Span(), "invalid @extend selector %q: %s", text, err)
	}
	var targets []*selector.Simple
	for _, c := range targetList.Complexes {
		last := c.LastCompound()
		if last == nil {
			continue
		}
		targets = append(targets, last.Simples...)
	}
	for _, c := range cur.Complexes {
		for _, target := range targets {
			e.Extender.Register(&selector.Extension{Extender: c, Target: target, IsOptional: t.Optional})
		}
	}
	return nil
}

func (e *Evaluator) evalImportRule(t *ast.ImportRule, out *[]csstree.Node) error {
	for _, entry := range t.Entries {
		if entry.Static != nil {
			url, err := e.evalInterpolationText(entry.Static.URL)
			if err != nil {
				return err
			}
			var media string
			if entry.Static.Media != nil {
				media, err = e.evalInterpolationText(entry.Static.Media)
				if err != nil {
					return err
				}
			}
			params := "\"" + url + "\""
			if media != "" {
				params += " " + media
			}
			*out = append(*out, &csstree.AtRule{Name: "import", Params: params, Childless: true, Span: t.Span()})
			continue
		}
		if entry.Dynamic != nil {
			if err := e.evalDynamicImport(entry.Dynamic.URL, t, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Evaluator) evalDynamicImport(url string, t *ast.ImportRule, out *[]csstree.Node) error {
	if e.Resolver == nil {
		return e.fail(sasserr.IO, t.Span(), "cannot resolve @import %q: no importer configured", url)
	}
	canonical, err := e.Resolver.Resolve(e.CurrentURL, url)
	if err != nil {
		return e.fail(sasserr.IO, t.Span(), "failed to resolve %q: %s", url, err)
	}
	for _, active := range e.importStack {
		if active == canonical {
			return e.fail(sasserr.IO, t.Span(), "import cycle detected for %q", url)
		}
	}
	sheet, err := e.parseModule(canonical)
	if err != nil {
		return e.fail(sasserr.Syntax, t.Span(), "failed to parse %q: %s", url, err)
	}
	e.importStack = append(e.importStack, canonical)
	savedURL := e.CurrentURL
	e.CurrentURL = canonical
	err = e.evalBlockFlat(sheet.Body, out)
	e.CurrentURL = savedURL
	e.importStack = e.importStack[:len(e.importStack)-1]
	return err
}
