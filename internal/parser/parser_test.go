package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/source"
)

func parseSCSS(t *testing.T, text string) *ast.Stylesheet {
	t.Helper()
	set := &source.Set{}
	src := set.Add("test.scss", text, source.SyntaxSCSS)
	p := New(set, src)
	sheet, err := p.Parse()
	require.NoError(t, err)
	return sheet
}

func TestParseStyleRuleWithDeclaration(t *testing.T) {
	sheet := parseSCSS(t, `.a { color: red; }`)
	require.Len(t, sheet.Body.Stmts, 1)
	rule, ok := sheet.Body.Stmts[0].(*ast.StyleRule)
	require.True(t, ok)
	assert.Equal(t, ".a", strings.TrimSpace(rule.Selector.PlainText()))
	require.Len(t, rule.Body.Stmts, 1)
	decl, ok := rule.Body.Stmts[0].(*ast.Declaration)
	require.True(t, ok)
	assert.Equal(t, "color", decl.Name.PlainText())
}

func TestParseNestedStyleRule(t *testing.T) {
	sheet := parseSCSS(t, `.a { .b { display: block; } }`)
	rule := sheet.Body.Stmts[0].(*ast.StyleRule)
	nested, ok := rule.Body.Stmts[0].(*ast.StyleRule)
	require.True(t, ok)
	assert.Equal(t, ".b", strings.TrimSpace(nested.Selector.PlainText()))
}

func TestParseVariableAssignment(t *testing.T) {
	sheet := parseSCSS(t, `$color: #336699;`)
	assign, ok := sheet.Body.Stmts[0].(*ast.AssignRule)
	require.True(t, ok)
	assert.Equal(t, "color", assign.Name)
	assert.False(t, assign.Guarded)
}

func TestParseGuardedDefaultAssignment(t *testing.T) {
	sheet := parseSCSS(t, `$color: red !default;`)
	assign := sheet.Body.Stmts[0].(*ast.AssignRule)
	assert.True(t, assign.Guarded)
}

func TestParseIfElseRule(t *testing.T) {
	sheet := parseSCSS(t, `
.a {
  @if $x == 1 {
    color: red;
  } @else if $x == 2 {
    color: blue;
  } @else {
    color: green;
  }
}
`)
	rule := sheet.Body.Stmts[0].(*ast.StyleRule)
	ifRule, ok := rule.Body.Stmts[0].(*ast.IfRule)
	require.True(t, ok)
	require.Len(t, ifRule.Clauses, 3)
	assert.NotNil(t, ifRule.Clauses[0].Cond)
	assert.NotNil(t, ifRule.Clauses[1].Cond)
	assert.Nil(t, ifRule.Clauses[2].Cond)
}

func TestParseEachRuleMultipleVars(t *testing.T) {
	sheet := parseSCSS(t, `@each $k, $v in $map { color: $v; }`)
	each, ok := sheet.Body.Stmts[0].(*ast.EachRule)
	require.True(t, ok)
	assert.Equal(t, []string{"k", "v"}, each.Vars)
}

func TestParseForRuleExclusiveVsInclusive(t *testing.T) {
	sheet := parseSCSS(t, `
@for $i from 1 through 3 { width: $i; }
`)
	forRule := sheet.Body.Stmts[0].(*ast.ForRule)
	assert.False(t, forRule.Exclusive)
}

func TestParseMixinWithDefaultParam(t *testing.T) {
	sheet := parseSCSS(t, `@mixin box($w, $h: $w) { width: $w; height: $h; }`)
	mixin, ok := sheet.Body.Stmts[0].(*ast.MixinRule)
	require.True(t, ok)
	require.Len(t, mixin.Params, 2)
	assert.Equal(t, "w", mixin.Params[0].Name)
	assert.Nil(t, mixin.Params[0].Default)
	assert.Equal(t, "h", mixin.Params[1].Name)
	assert.NotNil(t, mixin.Params[1].Default)
}

func TestParseIncludeWithContentBlock(t *testing.T) {
	sheet := parseSCSS(t, `
.a { @include box() { color: red; } }
`)
	rule := sheet.Body.Stmts[0].(*ast.StyleRule)
	include, ok := rule.Body.Stmts[0].(*ast.IncludeRule)
	require.True(t, ok)
	assert.Equal(t, "box", include.Name)
	require.NotNil(t, include.ContentBlock)
}

func TestParseFunctionWithReturn(t *testing.T) {
	sheet := parseSCSS(t, `@function double($n) { @return $n * 2; }`)
	fn, ok := sheet.Body.Stmts[0].(*ast.FunctionRule)
	require.True(t, ok)
	require.Len(t, fn.Body.Stmts, 1)
	_, ok = fn.Body.Stmts[0].(*ast.ReturnRule)
	assert.True(t, ok)
}

func TestParseUseRuleWithNamespace(t *testing.T) {
	sheet := parseSCSS(t, `@use "sass:math" as m;`)
	use, ok := sheet.Body.Stmts[0].(*ast.UseRule)
	require.True(t, ok)
	assert.Equal(t, "sass:math", use.URL)
	assert.Equal(t, "m", use.Namespace)
}

func TestParseForwardRuleWithShow(t *testing.T) {
	sheet := parseSCSS(t, `@forward "colors" show $primary, darken;`)
	fwd, ok := sheet.Body.Stmts[0].(*ast.ForwardRule)
	require.True(t, ok)
	assert.Equal(t, "colors", fwd.URL)
	assert.Contains(t, fwd.Show, "primary")
	assert.Contains(t, fwd.Show, "darken")
}

func TestParseExtendRuleOptional(t *testing.T) {
	sheet := parseSCSS(t, `.a { @extend .b !optional; }`)
	rule := sheet.Body.Stmts[0].(*ast.StyleRule)
	extend, ok := rule.Body.Stmts[0].(*ast.ExtendRule)
	require.True(t, ok)
	assert.True(t, extend.Optional)
	assert.Equal(t, ".b", strings.TrimSpace(extend.Selector.PlainText()))
}

func TestParseLoudCommentPreservedSilentDropped(t *testing.T) {
	sheet := parseSCSS(t, "/* keep */\n.a { color: red; // drop\n}")
	require.Len(t, sheet.Body.Stmts, 2)
	_, ok := sheet.Body.Stmts[0].(*ast.Comment)
	assert.True(t, ok)
	rule := sheet.Body.Stmts[1].(*ast.StyleRule)
	require.Len(t, rule.Body.Stmts, 1)
}

func TestParseMediaRule(t *testing.T) {
	sheet := parseSCSS(t, `@media (min-width: 100px) { .a { color: red; } }`)
	media, ok := sheet.Body.Stmts[0].(*ast.MediaRule)
	require.True(t, ok)
	assert.Contains(t, media.Queries.PlainText(), "min-width")
}

func TestParseIndentedSyntaxNestedRuleAndVariable(t *testing.T) {
	text := "$color: red\n.a\n  color: $color\n  .b\n    display: block\n"
	set := &source.Set{}
	src := set.Add("test.sass", text, source.SyntaxSass)
	p := New(set, src)
	sheet, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, sheet.Body.Stmts, 2)
	_, ok := sheet.Body.Stmts[0].(*ast.AssignRule)
	require.True(t, ok)
	rule, ok := sheet.Body.Stmts[1].(*ast.StyleRule)
	require.True(t, ok)
	require.Len(t, rule.Body.Stmts, 2)
	decl, ok := rule.Body.Stmts[0].(*ast.Declaration)
	require.True(t, ok)
	assert.Equal(t, "color", decl.Name.PlainText())
	nested, ok := rule.Body.Stmts[1].(*ast.StyleRule)
	require.True(t, ok)
	assert.Equal(t, ".b", strings.TrimSpace(nested.Selector.PlainText()))
}

func TestIndentedToSCSSDedentsClosesBlocks(t *testing.T) {
	out := IndentedToSCSS(".a\n  color: red\n.b\n  color: blue\n")
	assert.Contains(t, out, "}")
}

func TestParseWhileRule(t *testing.T) {
	sheet := parseSCSS(t, `@while $i > 0 { width: $i; }`)
	while, ok := sheet.Body.Stmts[0].(*ast.WhileRule)
	require.True(t, ok)
	require.NotNil(t, while.Cond)
	require.Len(t, while.Body.Stmts, 1)
}

func TestParseSupportsRule(t *testing.T) {
	sheet := parseSCSS(t, `@supports (display: grid) { .a { color: red; } }`)
	supports, ok := sheet.Body.Stmts[0].(*ast.SupportsRule)
	require.True(t, ok)
	assert.Contains(t, supports.Condition.PlainText(), "display")
}

func TestParseAtRootRuleWithoutQuery(t *testing.T) {
	sheet := parseSCSS(t, `.a { @at-root { .b { color: red; } } }`)
	rule := sheet.Body.Stmts[0].(*ast.StyleRule)
	atRoot, ok := rule.Body.Stmts[0].(*ast.AtRootRule)
	require.True(t, ok)
	assert.False(t, atRoot.Query.HasQuery)
	require.Len(t, atRoot.Body.Stmts, 1)
}

func TestParseAtRootRuleWithWithoutQuery(t *testing.T) {
	sheet := parseSCSS(t, `.a { @at-root (without: media) { color: red; } }`)
	rule := sheet.Body.Stmts[0].(*ast.StyleRule)
	atRoot, ok := rule.Body.Stmts[0].(*ast.AtRootRule)
	require.True(t, ok)
	assert.True(t, atRoot.Query.HasQuery)
	assert.False(t, atRoot.Query.With)
	assert.Contains(t, atRoot.Query.Names, "media")
}

func TestParseKeyframesRuleWithVendorPrefix(t *testing.T) {
	sheet := parseSCSS(t, `@-webkit-keyframes spin { from { opacity: 0; } to { opacity: 1; } }`)
	kf, ok := sheet.Body.Stmts[0].(*ast.KeyframesRule)
	require.True(t, ok)
	assert.Equal(t, "-webkit-", kf.Prefix)
	assert.Contains(t, kf.Name.PlainText(), "spin")
	require.Len(t, kf.Body.Stmts, 2)
}

func TestParseImportRuleDynamicAndStatic(t *testing.T) {
	sheet := parseSCSS(t, `@import "partial", "https://fonts.example.com/a.css";`)
	imp, ok := sheet.Body.Stmts[0].(*ast.ImportRule)
	require.True(t, ok)
	require.Len(t, imp.Entries, 2)
	require.NotNil(t, imp.Entries[0].Dynamic)
	assert.Equal(t, "partial", imp.Entries[0].Dynamic.URL)
	require.NotNil(t, imp.Entries[1].Static)
}
