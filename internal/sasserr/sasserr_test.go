package sasserr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/source"
)

func TestKindStringNamesEveryCategory(t *testing.T) {
	assert.Equal(t, "SyntaxError", Syntax.String())
	assert.Equal(t, "TypeError", TypeMismatch.String())
	assert.Equal(t, "InvalidValueError", InvalidValue.String())
	assert.Equal(t, "IncompatibleUnitsError", IncompatibleUnits.String())
	assert.Equal(t, "ZeroDivisionError", ZeroDivision.String())
	assert.Equal(t, "UndefinedOperationError", UndefinedOperation.String())
	assert.Equal(t, "MissingArgumentError", MissingArgument.String())
	assert.Equal(t, "UnsatisfiedExtendError", UnsatisfiedExtend.String())
	assert.Equal(t, "ExtendAcrossMediaError", ExtendAcrossMedia.String())
	assert.Equal(t, "InvalidParentError", InvalidParent.String())
	assert.Equal(t, "TopLevelParentError", TopLevelParent.String())
	assert.Equal(t, "RecursionLimitError", RecursionLimit.String())
	assert.Equal(t, "Error", Custom.String())
	assert.Equal(t, "IOError", IO.String())
}

func TestNewfFormatsMessage(t *testing.T) {
	err := Newf(TypeMismatch, source.Span{}, "%s is not a %s", "1px", "color")
	assert.Equal(t, "1px is not a color", err.Message)
	assert.Equal(t, TypeMismatch, err.Kind)
}

func TestCompileErrorErrorStringPrefixesKind(t *testing.T) {
	err := New(ZeroDivision, source.Span{}, "division by zero")
	assert.Equal(t, "ZeroDivisionError: division by zero", err.Error())
}

func TestAsCompileErrorPassesThroughExisting(t *testing.T) {
	orig := New(IO, source.Span{}, "disk fell over")
	assert.Same(t, orig, AsCompileError(orig))
}

func TestAsCompileErrorWrapsForeignErrorAsCustom(t *testing.T) {
	foreign := errors.New("boom")
	wrapped := AsCompileError(foreign)
	assert.Equal(t, Custom, wrapped.Kind)
	assert.Equal(t, "boom", wrapped.Message)
}

func TestWithFrameAppendsWithoutMutatingOriginal(t *testing.T) {
	orig := New(TypeMismatch, source.Span{}, "bad value")
	framed := orig.WithFrame(source.Span{}, "mixin `box`")

	require.Len(t, framed.Trace, 1)
	assert.Equal(t, "mixin `box`", framed.Trace[0].Desc)
	assert.Empty(t, orig.Trace)
}

func TestWithFrameChainsMultipleFrames(t *testing.T) {
	orig := New(TypeMismatch, source.Span{}, "bad value")
	framed := orig.WithFrame(source.Span{}, "function `double`").WithFrame(source.Span{}, "mixin `box`")

	require.Len(t, framed.Trace, 2)
	assert.Equal(t, "function `double`", framed.Trace[0].Desc)
	assert.Equal(t, "mixin `box`", framed.Trace[1].Desc)
}

func TestFormatIncludesKindMessageAndFrames(t *testing.T) {
	set := &source.Set{}
	src := set.Add("test.scss", "a\nb\n.c { color: red; }", source.SyntaxSCSS)
	span := source.Span{SourceId: src.Id(), Start: 0, Length: 1}
	err := New(TypeMismatch, span, "bad value").WithFrame(span, "mixin `box`")

	out := err.Format(set)
	assert.Contains(t, out, "TypeError: bad value")
	assert.Contains(t, out, "mixin `box`")
	assert.Contains(t, out, "on line 1 column 1 of test.scss")
}
