package evaluator

import (
	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/builtins"
	"github.com/toakleaf/sass.go/internal/sasserr"
	"github.com/toakleaf/sass.go/internal/source"
	"github.com/toakleaf/sass.go/internal/value"
)

// evalArgs evaluates an ArgInvocation's positional and keyword
// expressions plus its `...` spread, producing the flat argument pools
// bindParams/bindBuiltinArgs then distribute across formal parameters.
// Grounded on original_source/src/bind.cpp's ARGS::bind: positional
// arguments fill parameters left to right first, keyword arguments fill
// whatever named parameters remain, and a trailing spread contributes to
// both pools depending on what it spreads.
func (e *Evaluator) evalArgs(args ast.ArgInvocation) (positional []value.Value, keywords map[string]value.Value, err error) {
	positional = make([]value.Value, len(args.Positional))
	for i, pe := range args.Positional {
		v, err := e.evalExpr(pe)
		if err != nil {
			return nil, nil, err
		}
		positional[i] = v
	}
	keywords = map[string]value.Value{}
	for _, name := range args.KeywordNames {
		v, err := e.evalExpr(args.Keywords[name])
		if err != nil {
			return nil, nil, err
		}
		keywords[name] = v
	}
	if args.Rest != nil {
		rv, err := e.evalExpr(args.Rest)
		if err != nil {
			return nil, nil, err
		}
		switch t := rv.(type) {
		case *value.ArgList:
			positional = append(positional, t.Positional...)
			for _, me := range t.Keywords.Entries {
				if ks, ok := me.Key.(*value.SassString); ok {
					keywords[ks.Text] = me.Value
				}
			}
		case *value.Map:
			for _, me := range t.Entries {
				if ks, ok := me.Key.(*value.SassString); ok {
					keywords[ks.Text] = me.Value
				}
			}
		default:
			l := value.SingleToList(rv)
			positional = append(positional, l.Items...)
		}
	}
	return positional, keywords, nil
}

// bindParams binds a user-defined function/mixin's declared parameters
// against a call site's arguments, declaring each into the current
// (already-pushed) scope frame so later defaults can reference earlier
// parameters by name.
func (e *Evaluator) bindParams(fnName string, params []ast.Param, args ast.ArgInvocation, callSpan source.Span) error {
	positional, keywords, err := e.evalArgs(args)
	if err != nil {
		return err
	}
	posIdx := 0
	used := map[string]bool{}
	for _, p := range params {
		if p.IsRest {
			restPositional := append([]value.Value{}, positional[posIdx:]...)
			restKeywords := value.NewMap()
			for k, v := range keywords {
				if !used[k] {
					restKeywords.Set(value.NewString(k, true), v)
					used[k] = true
				}
			}
			e.Scope.DeclareLocal(p.Name, value.NewArgList(restPositional, restKeywords, value.SepComma))
			posIdx = len(positional)
			continue
		}
		if posIdx < len(positional) {
			e.Scope.DeclareLocal(p.Name, positional[posIdx])
			posIdx++
			continue
		}
		if kv, ok := keywords[p.Name]; ok {
			used[p.Name] = true
			e.Scope.DeclareLocal(p.Name, kv)
			continue
		}
		if p.Default != nil {
			dv, err := e.evalExpr(p.Default)
			if err != nil {
				return err
			}
			e.Scope.DeclareLocal(p.Name, dv)
			continue
		}
		return e.fail(sasserr.MissingArgument, callSpan, "%s: missing required argument $%s", fnName, p.Name)
	}
	if posIdx < len(positional) {
		return e.fail(sasserr.MissingArgument, callSpan, "%s: only %d positional argument(s) allowed", fnName, posIdx)
	}
	for k := range keywords {
		if !used[k] {
			return e.fail(sasserr.MissingArgument, callSpan, "%s: no parameter named $%s", fnName, k)
		}
	}
	return nil
}

// bindBuiltinArgs is bindParams' counterpart for native builtins.Param
// lists: it returns a flat, positionally-ordered slice rather than
// declaring into scope, since builtins.Builtin.Fn/ScopedFn take plain
// []value.Value.
func (e *Evaluator) bindBuiltinArgs(fnName string, params []builtins.Param, args ast.ArgInvocation, callSpan source.Span) ([]value.Value, error) {
	positional, keywords, err := e.evalArgs(args)
	if err != nil {
		return nil, err
	}
	result := make([]value.Value, len(params))
	posIdx := 0
	used := map[string]bool{}
	for i, p := range params {
		if p.Rest {
			restPositional := append([]value.Value{}, positional[posIdx:]...)
			restKeywords := value.NewMap()
			for k, v := range keywords {
				if !used[k] {
					restKeywords.Set(value.NewString(k, true), v)
					used[k] = true
				}
			}
			result[i] = value.NewArgList(restPositional, restKeywords, value.SepComma)
			posIdx = len(positional)
			continue
		}
		if posIdx < len(positional) {
			result[i] = positional[posIdx]
			posIdx++
			continue
		}
		if kv, ok := keywords[p.Name]; ok {
			used[p.Name] = true
			result[i] = kv
			continue
		}
		if p.Default != nil {
			result[i] = p.Default
			continue
		}
		return nil, e.fail(sasserr.MissingArgument, callSpan, "%s: missing required argument $%s", fnName, p.Name)
	}
	if posIdx < len(positional) {
		return nil, e.fail(sasserr.MissingArgument, callSpan, "%s: only %d positional argument(s) allowed", fnName, posIdx)
	}
	for k := range keywords {
		if !used[k] {
			return nil, e.fail(sasserr.MissingArgument, callSpan, "%s: no parameter named $%s", fnName, k)
		}
	}
	return result, nil
}
