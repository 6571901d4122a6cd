// Package ast is the typed tree spec.md §3 describes: statements,
// expressions, and (via internal/value, internal/selector) the value and
// selector families, each a closed set of concrete Go types rather than
// the teacher's `*Node`-embedding class hierarchy, matching the "tagged
// sum types, not inheritance" design note of spec.md §9. Every node
// carries a source.Span (invariant 1, §3).
package ast

import (
	"github.com/toakleaf/sass.go/internal/source"
	"github.com/toakleaf/sass.go/internal/value"
)

// Expr is satisfied by every SassScript expression node.
type Expr interface {
	Span() source.Span
}

type base struct{ span source.Span }

func (b base) Span() source.Span { return b.span }

// Literal wraps an already-evaluated Value — produced by the parser for
// number/color/string/bool/null tokens, which need no further evaluation.
type Literal struct {
	base
	Value value.Value
}

func NewLiteral(span source.Span, v value.Value) *Literal { return &Literal{base{span}, v} }

// Variable references `$name`, optionally namespaced (`module.$name`).
type Variable struct {
	base
	Name      string
	Namespace string
}

func NewVariable(span source.Span, name, ns string) *Variable {
	return &Variable{base{span}, name, ns}
}

// BinOp is the set of SassScript binary operators, ordered low to high
// precedence per §4.3.
type BinOp int

const (
	OpOr BinOp = iota
	OpAnd
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

type BinaryOp struct {
	base
	Op       BinOp
	Lhs, Rhs Expr
	// PreserveSlash marks an OpDiv node written as plain `12px/16px`
	// shorthand outside parens, with neither side itself the product of
	// arithmetic — the parser sets this so the evaluator keeps the
	// original operands around (value.Number.AsSlash) instead of only
	// keeping their quotient, letting `font: 12px/16px` round-trip.
	PreserveSlash bool
}

func NewBinaryOp(span source.Span, op BinOp, lhs, rhs Expr) *BinaryOp {
	return &BinaryOp{base{span}, op, lhs, rhs, false}
}

type UnOp int

const (
	UnNeg UnOp = iota
	UnPlus
	UnSlash
	UnNot
)

type UnaryOp struct {
	base
	Op      UnOp
	Operand Expr
}

func NewUnaryOp(span source.Span, op UnOp, operand Expr) *UnaryOp {
	return &UnaryOp{base{span}, op, operand}
}

// ArgInvocation is the call-site argument shape spec.md §9 prescribes:
// positional expressions, an insertion-ordered keyword map, and optional
// rest/keyword-rest spreads (`...`).
type ArgInvocation struct {
	Positional []Expr
	KeywordNames []string // insertion order
	Keywords     map[string]Expr
	Rest         Expr // the `...`-spread expression, or nil
}

// FunctionCall invokes a named function/mixin/plain-CSS function, or a
// Ref expression (meta.call with a first-class function value) when Ref
// is non-nil.
type FunctionCall struct {
	base
	Name      string
	Namespace string
	Ref       Expr // set instead of Name for meta.call($fn, ...)
	Args      ArgInvocation
}

func NewFunctionCall(span source.Span, name, ns string, args ArgInvocation) *FunctionCall {
	return &FunctionCall{base: base{span}, Name: name, Namespace: ns, Args: args}
}

// IfExpression is the three-argument `if($cond, $then, $else)` form (a
// plain function call with lazy argument evaluation — kept as its own
// node so the evaluator can special-case its short-circuiting, matching
// how the grammar family §4.1 calls it out).
type IfExpression struct {
	base
	Cond, Then, Else Expr
}

func NewIfExpression(span source.Span, cond, then, els Expr) *IfExpression {
	return &IfExpression{base{span}, cond, then, els}
}

type ListExpression struct {
	base
	Items     []Expr
	Separator value.Separator
	Brackets  bool
}

func NewListExpression(span source.Span, items []Expr, sep value.Separator, brackets bool) *ListExpression {
	return &ListExpression{base{span}, items, sep, brackets}
}

type MapPair struct{ Key, Value Expr }

type MapExpression struct {
	base
	Pairs []MapPair
}

func NewMapExpression(span source.Span, pairs []MapPair) *MapExpression {
	return &MapExpression{base{span}, pairs}
}

// InterpolationPart is either a literal string chunk or an embedded
// `#{...}` expression; spec.md §4.1 requires each `#{` span be recorded so
// per-segment errors can be reported.
type InterpolationPart struct {
	Literal string
	Expr    Expr // nil when this part is Literal text
	ExprSpan source.Span
}

type Interpolation struct {
	base
	Parts []InterpolationPart
	// Quoted marks an interpolation that appeared inside `"..."`/`'...'`
	// delimiters, so the evaluator produces a quoted SassString instead of
	// an unquoted one.
	Quoted bool
}

func NewInterpolation(span source.Span, parts []InterpolationPart) *Interpolation {
	return &Interpolation{base: base{span}, Parts: parts}
}

// NewQuotedInterpolation is NewInterpolation for text that appeared inside
// string-quote delimiters (a quoted string with one or more `#{}` parts).
func NewQuotedInterpolation(span source.Span, parts []InterpolationPart) *Interpolation {
	return &Interpolation{base: base{span}, Parts: parts, Quoted: true}
}

// IsPlainText reports whether the interpolation contains no `#{}` parts,
// letting callers (e.g. the selector prelude) skip evaluation entirely.
func (i *Interpolation) IsPlainText() bool {
	for _, p := range i.Parts {
		if p.Expr != nil {
			return false
		}
	}
	return true
}

func (i *Interpolation) PlainText() string {
	var out string
	for _, p := range i.Parts {
		out += p.Literal
	}
	return out
}

type ParenExpr struct {
	base
	Inner Expr
}

func NewParenExpr(span source.Span, inner Expr) *ParenExpr { return &ParenExpr{base{span}, inner} }
