package evaluator

import (
	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/sasserr"
	"github.com/toakleaf/sass.go/internal/value"
)

// execBlock runs a function body's statements until a `@return` fires or
// the block runs out, unlike evalBlockFlat, which never produces a
// value and instead accumulates CSS nodes. The bool result reports
// whether a `@return` was actually hit, since falling off the end of a
// function body is itself an error the caller (invokeUserFunction)
// reports.
func (e *Evaluator) execBlock(b *ast.Block) (value.Value, bool, error) {
	if b == nil {
		return nil, false, nil
	}
	for _, s := range b.Stmts {
		v, returned, err := e.execStmt(s)
		if err != nil {
			return nil, false, err
		}
		if returned {
			return v, true, nil
		}
	}
	return nil, false, nil
}

// execStmt evaluates one function-body statement. Only the subset of
// ast.Stmt that's legal inside a `@function` body (§4.3's "no style
// rules, no declarations") is handled meaningfully; anything else
// reaching here is a parser/evaluator mismatch and is simply ignored
// rather than panicking.
func (e *Evaluator) execStmt(s ast.Stmt) (value.Value, bool, error) {
	switch t := s.(type) {
	case *ast.ReturnRule:
		v, err := e.evalExpr(t.Expr)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	case *ast.AssignRule:
		return nil, false, e.evalAssignRule(t)
	case *ast.IfRule:
		for _, clause := range t.Clauses {
			if clause.Cond == nil {
				return e.execBlock(clause.Body)
			}
			cond, err := e.evalExpr(clause.Cond)
			if err != nil {
				return nil, false, err
			}
			if cond.Truthy() {
				return e.execBlock(clause.Body)
			}
		}
		return nil, false, nil
	case *ast.ForRule:
		return e.execForRule(t)
	case *ast.EachRule:
		return e.execEachRule(t)
	case *ast.WhileRule:
		return e.execWhileRule(t)
	case *ast.WarnRule:
		v, err := e.evalExpr(t.Expr)
		if err != nil {
			return nil, false, err
		}
		e.Logger.Warn(t.Span(), valueToCSSText(v))
		return nil, false, nil
	case *ast.ErrorRule:
		v, err := e.evalExpr(t.Expr)
		if err != nil {
			return nil, false, err
		}
		return nil, false, sasserr.New(sasserr.Custom, t.Span(), valueToCSSText(v))
	case *ast.DebugRule:
		v, err := e.evalExpr(t.Expr)
		if err != nil {
			return nil, false, err
		}
		e.Logger.Debug(t.Span(), v.Inspect())
		return nil, false, nil
	case *ast.FunctionRule:
		e.Scope.SetFunc(t.Name, &UserFunction{Name: t.Name, Params: t.Params, Body: t.Body, Closure: e.Scope.Snapshot()})
		return nil, false, nil
	case *ast.Comment:
		return nil, false, nil
	default:
		return nil, false, nil
	}
}

func (e *Evaluator) execForRule(t *ast.ForRule) (value.Value, bool, error) {
	fromV, err := e.evalExpr(t.From)
	if err != nil {
		return nil, false, err
	}
	toV, err := e.evalExpr(t.To)
	if err != nil {
		return nil, false, err
	}
	fromN, ok1 := fromV.(*value.Number)
	toN, ok2 := toV.(*value.Number)
	if !ok1 || !ok2 {
		return nil, false, e.fail(sasserr.TypeMismatch, t.Span(), "@for bounds must be numbers")
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
		v, returned, err := e.execBlock(t.Body)
		if err != nil {
			return nil, false, err
		}
		if returned {
			return v, true, nil
		}
	}
	return nil, false, nil
}

func (e *Evaluator) execEachRule(t *ast.EachRule) (value.Value, bool, error) {
	iter, err := e.evalExpr(t.Iterable)
	if err != nil {
		return nil, false, err
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
		v, returned, err := e.execBlock(t.Body)
		if err != nil {
			return nil, false, err
		}
		if returned {
			return v, true, nil
		}
	}
	return nil, false, nil
}

func (e *Evaluator) execWhileRule(t *ast.WhileRule) (value.Value, bool, error) {
	e.Scope.Push()
	defer e.Scope.Pop()
	for {
		cond, err := e.evalExpr(t.Cond)
		if err != nil {
			return nil, false, err
		}
		if !cond.Truthy() {
			return nil, false, nil
		}
		v, returned, err := e.execBlock(t.Body)
		if err != nil {
			return nil, false, err
		}
		if returned {
			return v, true, nil
		}
	}
}
