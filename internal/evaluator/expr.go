package evaluator

import (
	"fmt"
	"strings"

	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/builtins"
	"github.com/toakleaf/sass.go/internal/sasserr"
	"github.com/toakleaf/sass.go/internal/source"
	"github.com/toakleaf/sass.go/internal/value"
)

func (e *Evaluator) evalExpr(expr ast.Expr) (value.Value, error) {
	switch t := expr.(type) {
	case *ast.Literal:
		return t.Value, nil
	case *ast.Variable:
		return e.evalVariable(t)
	case *ast.BinaryOp:
		return e.evalBinary(t)
	case *ast.UnaryOp:
		return e.evalUnary(t)
	case *ast.FunctionCall:
		return e.evalFunctionCall(t)
	case *ast.IfExpression:
		cond, err := e.evalExpr(t.Cond)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return e.evalExpr(t.Then)
		}
		return e.evalExpr(t.Else)
	case *ast.ListExpression:
		items := make([]value.Value, len(t.Items))
		for i, it := range t.Items {
			v, err := e.evalExpr(it)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return value.NewList(items, t.Separator, t.Brackets), nil
	case *ast.MapExpression:
		m := value.NewMap()
		for _, pair := range t.Pairs {
			k, err := e.evalExpr(pair.Key)
			if err != nil {
				return nil, err
			}
			v, err := e.evalExpr(pair.Value)
			if err != nil {
				return nil, err
			}
			m.Set(k, v)
		}
		return m, nil
	case *ast.Interpolation:
		text, err := e.evalInterpolationText(t)
		if err != nil {
			return nil, err
		}
		return value.NewString(text, t.Quoted), nil
	case *ast.ParenExpr:
		return e.evalExpr(t.Inner)
	default:
		return nil, fmt.Errorf("evaluator: unhandled expression %T", expr)
	}
}

func (e *Evaluator) evalVariable(v *ast.Variable) (value.Value, error) {
	if v.Namespace != "" {
		mod, err := e.resolveModule(v.Namespace, v.Span())
		if err != nil {
			return nil, err
		}
		if mod == nil { // a "sass:" namespace has no variables
			return nil, e.fail(sasserr.InvalidValue, v.Span(), "sass:%s has no variable $%s", v.Namespace, v.Name)
		}
		if val, ok := mod.Scope.GetVar(v.Name); ok {
			return val, nil
		}
		return nil, e.fail(sasserr.InvalidValue, v.Span(), "undefined variable %s.$%s", v.Namespace, v.Name)
	}
	if val, ok := e.Scope.GetVar(v.Name); ok {
		return val, nil
	}
	return nil, e.fail(sasserr.InvalidValue, v.Span(), "undefined variable $%s", v.Name)
}

func (e *Evaluator) evalBinary(b *ast.BinaryOp) (value.Value, error) {
	switch b.Op {
	case ast.OpOr:
		l, err := e.evalExpr(b.Lhs)
		if err != nil {
			return nil, err
		}
		if l.Truthy() {
			return l, nil
		}
		return e.evalExpr(b.Rhs)
	case ast.OpAnd:
		l, err := e.evalExpr(b.Lhs)
		if err != nil {
			return nil, err
		}
		if !l.Truthy() {
			return l, nil
		}
		return e.evalExpr(b.Rhs)
	}

	l, err := e.evalExpr(b.Lhs)
	if err != nil {
		return nil, err
	}
	r, err := e.evalExpr(b.Rhs)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case ast.OpEq:
		return value.Boolean(value.Equal(l, r)), nil
	case ast.OpNeq:
		return value.Boolean(!value.Equal(l, r)), nil
	case ast.OpLt, ast.OpLte, ast.OpGt, ast.OpGte:
		ln, lok := l.(*value.Number)
		rn, rok := r.(*value.Number)
		if !lok || !rok {
			return nil, e.fail(sasserr.TypeMismatch, b.Span(), "%s and %s are not comparable", l.Inspect(), r.Inspect())
		}
		cmp, err := ln.Compare(rn)
		if err != nil {
			return nil, e.fail(sasserr.IncompatibleUnits, b.Span(), "%s", err)
		}
		switch b.Op {
		case ast.OpLt:
			return value.Boolean(cmp < 0), nil
		case ast.OpLte:
			return value.Boolean(cmp <= 0), nil
		case ast.OpGt:
			return value.Boolean(cmp > 0), nil
		default:
			return value.Boolean(cmp >= 0), nil
		}
	case ast.OpAdd:
		return e.evalAdd(l, r, b.Span())
	case ast.OpSub:
		return e.evalSub(l, r, b.Span())
	case ast.OpMul:
		ln, lok := l.(*value.Number)
		rn, rok := r.(*value.Number)
		if !lok || !rok {
			return nil, e.fail(sasserr.TypeMismatch, b.Span(), "%s and %s can't be multiplied", l.Inspect(), r.Inspect())
		}
		return ln.Mul(rn), nil
	case ast.OpDiv:
		ln, lok := l.(*value.Number)
		rn, rok := r.(*value.Number)
		if lok && rok {
			res := ln.Div(rn)
			if b.PreserveSlash {
				res.AsSlash = &value.SlashPair{Num: ln, Den: rn}
			}
			return res, nil
		}
		return value.NewString(valueToCSSText(l)+"/"+valueToCSSText(r), false), nil
	case ast.OpMod:
		ln, lok := l.(*value.Number)
		rn, rok := r.(*value.Number)
		if !lok || !rok {
			return nil, e.fail(sasserr.TypeMismatch, b.Span(), "%s and %s can't be used with %%", l.Inspect(), r.Inspect())
		}
		m, err := ln.Mod(rn)
		if err != nil {
			return nil, e.fail(sasserr.IncompatibleUnits, b.Span(), "%s", err)
		}
		return m, nil
	}
	return nil, fmt.Errorf("evaluator: unhandled binary operator")
}

func (e *Evaluator) evalAdd(l, r value.Value, span source.Span) (value.Value, error) {
	if lc, ok := l.(*value.Color); ok {
		if rc, ok2 := r.(*value.Color); ok2 {
			return value.NewRGBA(lc.R+rc.R, lc.G+rc.G, lc.B+rc.B, (lc.A+rc.A)/2), nil
		}
	}
	if ln, ok := l.(*value.Number); ok {
		if rn, ok2 := r.(*value.Number); ok2 {
			res, err := ln.Add(rn)
			if err != nil {
				return nil, e.fail(sasserr.IncompatibleUnits, span, "%s", err)
			}
			return res, nil
		}
	}
	return concatValues(l, r), nil
}

func (e *Evaluator) evalSub(l, r value.Value, span source.Span) (value.Value, error) {
	if lc, ok := l.(*value.Color); ok {
		if rc, ok2 := r.(*value.Color); ok2 {
			return value.NewRGBA(lc.R-rc.R, lc.G-rc.G, lc.B-rc.B, (lc.A+rc.A)/2), nil
		}
	}
	if ln, ok := l.(*value.Number); ok {
		if rn, ok2 := r.(*value.Number); ok2 {
			res, err := ln.Sub(rn)
			if err != nil {
				return nil, e.fail(sasserr.IncompatibleUnits, span, "%s", err)
			}
			return res, nil
		}
	}
	return value.NewString(valueToCSSText(l)+"-"+valueToCSSText(r), false), nil
}

func concatValues(a, b value.Value) value.Value {
	quoted := false
	if as, ok := a.(*value.SassString); ok {
		quoted = as.Quoted
	}
	return value.NewString(valueToCSSText(a)+valueToCSSText(b), quoted)
}

func (e *Evaluator) evalUnary(u *ast.UnaryOp) (value.Value, error) {
	v, err := e.evalExpr(u.Operand)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case ast.UnNeg:
		if n, ok := v.(*value.Number); ok {
			return n.Neg(), nil
		}
		return value.NewString("-"+valueToCSSText(v), false), nil
	case ast.UnPlus:
		if n, ok := v.(*value.Number); ok {
			return n, nil
		}
		return value.NewString("+"+valueToCSSText(v), false), nil
	case ast.UnSlash:
		return value.NewString("/"+valueToCSSText(v), false), nil
	case ast.UnNot:
		return value.Boolean(!v.Truthy()), nil
	}
	return nil, fmt.Errorf("evaluator: unhandled unary operator")
}

// evalFunctionCall dispatches a named or first-class-function call site.
func (e *Evaluator) evalFunctionCall(fc *ast.FunctionCall) (value.Value, error) {
	if fc.Ref != nil {
		refVal, err := e.evalExpr(fc.Ref)
		if err != nil {
			return nil, err
		}
		sf, ok := refVal.(*value.SassFunction)
		if !ok {
			return nil, e.fail(sasserr.TypeMismatch, fc.Span(), "%s is not a function reference", refVal.Inspect())
		}
		return e.invokeCallable(sf.Ref, fc.Args, fc.Span())
	}
	if err := e.enterRecursion(fc.Span()); err != nil {
		return nil, err
	}
	defer e.exitRecursion()
	return e.callNamedFunction(fc.Name, fc.Namespace, fc.Args, fc.Span())
}

func (e *Evaluator) callNamedFunction(name, ns string, args ast.ArgInvocation, sp source.Span) (value.Value, error) {
	if ns != "" {
		mod, err := e.resolveModule(ns, sp)
		if err != nil {
			return nil, err
		}
		if mod == nil {
			bns := strings.TrimPrefix(e.namespaceAlias[ns], "sass:")
			b, ok := e.Registry.Lookup(bns, name)
			if !ok {
				return nil, e.fail(sasserr.InvalidValue, sp, "undefined function sass:%s.%s", bns, name)
			}
			return e.invokeBuiltin(b, args, sp)
		}
		if fn, ok := mod.Scope.GetFunc(name); ok {
			return e.invokeCallable(fn, args, sp)
		}
		return nil, e.fail(sasserr.InvalidValue, sp, "undefined function %s.%s", ns, name)
	}
	if fn, ok := e.Scope.GetFunc(name); ok {
		return e.invokeCallable(fn, args, sp)
	}
	if b, ok := e.Registry.Global(name); ok {
		return e.invokeBuiltin(b, args, sp)
	}
	// Unknown plain function: pass through as literal CSS (calc(), url(),
	// translateX(), vendor functions, ...), per §4.3's plain-CSS-function
	// fallback.
	return e.literalCallText(name, args)
}

func (e *Evaluator) literalCallText(name string, args ast.ArgInvocation) (value.Value, error) {
	parts := make([]string, 0, len(args.Positional)+len(args.KeywordNames))
	for _, a := range args.Positional {
		v, err := e.evalExpr(a)
		if err != nil {
			return nil, err
		}
		parts = append(parts, v.Inspect())
	}
	for _, k := range args.KeywordNames {
		v, err := e.evalExpr(args.Keywords[k])
		if err != nil {
			return nil, err
		}
		parts = append(parts, "$"+k+": "+v.Inspect())
	}
	return value.NewString(name+"("+strings.Join(parts, ", ")+")", false), nil
}

// invokeBuiltin binds args against b's declared parameters and runs its
// Fn/ScopedFn, whichever it defines. DispatchFn receives a rest parameter
// as one ArgList; for Fn its positional values are spread in its place.
func (e *Evaluator) invokeBuiltin(b *builtins.Builtin, args ast.ArgInvocation, sp source.Span) (value.Value, error) {
	bound, err := e.bindBuiltinArgs(b.CallableName(), b.Params, args, sp)
	if err != nil {
		return nil, err
	}
	if b.DispatchFn != nil {
		return b.DispatchFn(bound, e.Scope, e)
	}
	if b.ScopedFn != nil {
		return b.ScopedFn(bound, e.Scope)
	}
	if n := len(b.Params); n > 0 && b.Params[n-1].Rest {
		if al, ok := bound[n-1].(*value.ArgList); ok {
			bound = append(bound[:n-1:n-1], al.Positional...)
		}
	}
	return b.Fn(bound)
}

// Call implements builtins.Dispatcher, letting meta.call() invoke any
// first-class function value — user-defined or builtin — with arguments
// that are already evaluated, by wrapping each back into an ast.Literal
// and reusing the ordinary call-binding path.
func (e *Evaluator) Call(c value.Callable, positional []value.Value, keywords *value.Map) (value.Value, error) {
	args := ast.ArgInvocation{Keywords: map[string]ast.Expr{}}
	for _, v := range positional {
		args.Positional = append(args.Positional, ast.NewLiteral(source.Span{}, v))
	}
	if keywords != nil {
		for _, me := range keywords.Entries {
			ks, ok := me.Key.(*value.SassString)
			if !ok {
				continue
			}
			args.KeywordNames = append(args.KeywordNames, ks.Text)
			args.Keywords[ks.Text] = ast.NewLiteral(source.Span{}, me.Value)
		}
	}
	return e.invokeCallable(c, args, source.Span{})
}
