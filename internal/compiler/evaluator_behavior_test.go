package compiler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/emitter"
	"github.com/toakleaf/sass.go/internal/source"
)

// memResolver is an in-memory evaluator.Resolver stub for @use/@forward
// tests: canonical identifiers are just the map keys, so Resolve is a
// pass-through lookup rather than a real path search.
type memResolver struct {
	files map[string]string
}

func (m *memResolver) Resolve(fromURL, target string) (string, error) {
	if _, ok := m.files[target]; !ok {
		return "", fmt.Errorf("no such module %q", target)
	}
	return target, nil
}

func (m *memResolver) Load(canonical string) (string, source.Syntax, error) {
	text, ok := m.files[canonical]
	if !ok {
		return "", source.SyntaxSCSS, fmt.Errorf("no such module %q", canonical)
	}
	return text, source.SyntaxSCSS, nil
}

func compileWithResolver(t *testing.T, src string, resolver *memResolver) (Result, error) {
	t.Helper()
	c := New(Options{
		EntryText:   src,
		OutputStyle: emitter.Expanded,
		Resolver:    resolver,
	})
	require.NoError(t, c.Parse())
	if err := c.Compile(); err != nil {
		return Result{}, err
	}
	require.NoError(t, c.Render())
	return c.Result(), nil
}

func TestSlashShorthandSurvivesUnevaluated(t *testing.T) {
	res := compileString(t, `.a { font: 12px/16px; }`, emitter.Expanded)
	assert.Contains(t, res.CSS, "font: 12px/16px;")
}

func TestParenthesizedDivisionComputesQuotient(t *testing.T) {
	res := compileString(t, `.a { width: (10px * 2) / 4; }`, emitter.Expanded)
	assert.Contains(t, res.CSS, "width: 5px;")
}

func TestGetFunctionAndCallDispatchToUserDefinedFunction(t *testing.T) {
	res := compileString(t, `
@function double($n) {
  @return $n * 2;
}
.a { width: call(get-function("double"), 5px); }
`, emitter.Expanded)
	assert.Contains(t, res.CSS, "width: 10px;")
}

func TestCallForwardsKeywordArgumentsToUserDefinedFunction(t *testing.T) {
	res := compileString(t, `
@function box($w, $h) {
  @return $w + $h;
}
.a { width: call(get-function("box"), $h: 3px, $w: 4px); }
`, emitter.Expanded)
	assert.Contains(t, res.CSS, "width: 7px;")
}

func TestCallStillDispatchesToBuiltinFunction(t *testing.T) {
	res := compileString(t, `.a { width: call(get-function("floor", $module: "math"), 4.7); }`, emitter.Expanded)
	assert.Contains(t, res.CSS, "width: 4;")
}

func TestBindKeywordArgumentFillsNamedParameter(t *testing.T) {
	res := compileString(t, `
@mixin box($w, $h) {
  width: $w;
  height: $h;
}
.a { @include box($h: 20px, $w: 10px); }
`, emitter.Expanded)
	assert.Contains(t, res.CSS, "width: 10px;")
	assert.Contains(t, res.CSS, "height: 20px;")
}

func TestBindDefaultParamReferencesEarlierParam(t *testing.T) {
	res := compileString(t, `
@mixin box($w, $h: $w) {
  width: $w;
  height: $h;
}
.a { @include box(10px); }
`, emitter.Expanded)
	assert.Contains(t, res.CSS, "width: 10px;")
	assert.Contains(t, res.CSS, "height: 10px;")
}

func TestBindRestParamCollectsExtraPositionalArgs(t *testing.T) {
	res := compileString(t, `
@function count-args($args...) {
  @return length($args);
}
.a { width: count-args(1, 2, 3); }
`, emitter.Expanded)
	assert.Contains(t, res.CSS, "width: 3;")
}

func TestBindMissingRequiredArgumentErrors(t *testing.T) {
	_, err := compileWithResolver(t, `
@mixin box($w, $h) { width: $w; height: $h; }
.a { @include box(10px); }
`, &memResolver{files: map[string]string{}})
	require.Error(t, err)
}

func TestBindUnknownKeywordArgumentErrors(t *testing.T) {
	_, err := compileWithResolver(t, `
@mixin box($w) { width: $w; }
.a { @include box($nope: 1px); }
`, &memResolver{files: map[string]string{}})
	require.Error(t, err)
}

func TestBindTooManyPositionalArgumentsErrors(t *testing.T) {
	_, err := compileWithResolver(t, `
@mixin box($w) { width: $w; }
.a { @include box(1px, 2px); }
`, &memResolver{files: map[string]string{}})
	require.Error(t, err)
}

func TestRecursionLimitExceededErrors(t *testing.T) {
	_, err := compileWithResolver(t, `
@function loop($n) {
  @return loop($n + 1);
}
.a { width: loop(0); }
`, &memResolver{files: map[string]string{}})
	require.Error(t, err)
}

func TestUseRuleNamespacesFunctionsAndVariables(t *testing.T) {
	resolver := &memResolver{files: map[string]string{
		"colors": `
$primary: #336699;
@function double($n) { @return $n * 2; }
`,
	}}
	res, err := compileWithResolver(t, `
@use "colors" as c;
.a {
  color: c.$primary;
  width: c.double(5px);
}
`, resolver)
	require.NoError(t, err)
	assert.Contains(t, res.CSS, "color: #336699;")
	assert.Contains(t, res.CSS, "width: 10px;")
}

func TestUseRuleWildcardNamespaceExposesGlobalNames(t *testing.T) {
	resolver := &memResolver{files: map[string]string{
		"colors": `$primary: #336699;`,
	}}
	res, err := compileWithResolver(t, `
@use "colors" as *;
.a { color: $primary; }
`, resolver)
	require.NoError(t, err)
	assert.Contains(t, res.CSS, "color: #336699;")
}

func TestForwardRuleShowFiltersVisibleNames(t *testing.T) {
	resolver := &memResolver{files: map[string]string{
		"colors": `
$primary: #336699;
$secret: #000000;
`,
		"palette": `@forward "colors" show $primary;`,
	}}
	res, err := compileWithResolver(t, `
@use "palette" as p;
.a { color: p.$primary; }
`, resolver)
	require.NoError(t, err)
	assert.Contains(t, res.CSS, "color: #336699;")
}

func TestForwardRulePrefixRenamesForwardedMembers(t *testing.T) {
	resolver := &memResolver{files: map[string]string{
		"colors":  `$primary: #336699;`,
		"palette": `@forward "colors" as color-*;`,
	}}
	res, err := compileWithResolver(t, `
@use "palette" as p;
.a { color: p.$color-primary; }
`, resolver)
	require.NoError(t, err)
	assert.Contains(t, res.CSS, "color: #336699;")
}
