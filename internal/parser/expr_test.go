package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/source"
)

func parseExprText(t *testing.T, text string) ast.Expr {
	t.Helper()
	set := &source.Set{}
	src := set.Add("test.scss", text, source.SyntaxSCSS)
	p := New(set, src)
	expr, err := p.ParseExpr()
	require.NoError(t, err)
	return expr
}

func TestParseBareSlashMarksPreserveSlash(t *testing.T) {
	expr := parseExprText(t, "12px/16px")
	bo, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpDiv, bo.Op)
	assert.True(t, bo.PreserveSlash)
}

func TestParseParenthesizedSlashDoesNotPreserve(t *testing.T) {
	expr := parseExprText(t, "(12px/16px)")
	paren, ok := expr.(*ast.ParenExpr)
	require.True(t, ok)
	bo, ok := paren.Inner.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpDiv, bo.Op)
	assert.False(t, bo.PreserveSlash)
}

func TestParseSlashWithArithmeticOperandDoesNotPreserve(t *testing.T) {
	expr := parseExprText(t, "(10px * 2) / 4")
	bo, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpDiv, bo.Op)
	assert.False(t, bo.PreserveSlash)
}

func TestParseChainedDivisionDoesNotPreserveSecondSlash(t *testing.T) {
	// `$a/$b/$c` parses left-associatively as `($a/$b)/$c`; the inner
	// division's result is itself the product of arithmetic, so the
	// outer `/` is real division rather than shorthand.
	expr := parseExprText(t, "$a / $b / $c")
	outer, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpDiv, outer.Op)
	assert.False(t, outer.PreserveSlash)

	inner, ok := outer.Lhs.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpDiv, inner.Op)
	assert.True(t, inner.PreserveSlash)
}
