package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/env"
	"github.com/toakleaf/sass.go/internal/value"
)

type fakeCallable string

func (f fakeCallable) CallableName() string { return string(f) }

// builtinDispatcher is a Dispatcher stand-in that forwards only to
// native builtins, enough to exercise meta.call without an evaluator.
type builtinDispatcher struct{}

func (builtinDispatcher) Call(c value.Callable, positional []value.Value, keywords *value.Map) (value.Value, error) {
	return c.(*Builtin).Fn(positional)
}

func TestMetaTypeOfReportsSassTypeName(t *testing.T) {
	r := NewRegistry()
	typeOf, ok := r.Lookup("meta", "type-of")
	require.True(t, ok)
	v, err := typeOf.Fn([]value.Value{value.NewUnitless(1)})
	require.NoError(t, err)
	assert.Equal(t, "number", v.(*value.SassString).Text)
}

func TestMetaInspectRendersDebugForm(t *testing.T) {
	r := NewRegistry()
	inspect, _ := r.Lookup("meta", "inspect")
	v, err := inspect.Fn([]value.Value{value.Boolean(true)})
	require.NoError(t, err)
	assert.Equal(t, "true", v.(*value.SassString).Text)
}

func TestMetaUnitAndUnitless(t *testing.T) {
	r := NewRegistry()
	unit, _ := r.Lookup("meta", "unit")
	v, err := unit.Fn([]value.Value{value.NewNumber(5, value.SingleUnit("px"))})
	require.NoError(t, err)
	assert.Equal(t, "px", v.(*value.SassString).Text)

	unitless, _ := r.Lookup("meta", "unitless")
	v, err = unitless.Fn([]value.Value{value.NewUnitless(5)})
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(true), v)
}

func TestMetaFeatureExistsKnownAndUnknown(t *testing.T) {
	r := NewRegistry()
	featureExists, _ := r.Lookup("meta", "feature-exists")
	v, err := featureExists.Fn([]value.Value{value.NewString("at-error", true)})
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(true), v)

	v, err = featureExists.Fn([]value.Value{value.NewString("no-such-feature", true)})
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(false), v)
}

func TestMetaGetFunctionFindsGlobalBuiltin(t *testing.T) {
	r := NewRegistry()
	getFn, ok := r.Lookup("meta", "get-function")
	require.True(t, ok)
	v, err := getFn.ScopedFn([]value.Value{value.NewString("rgba", true), value.Boolean(false), value.NullValue}, env.New())
	require.NoError(t, err)
	fn := v.(*value.SassFunction)
	assert.Equal(t, "sass:color.rgba", fn.Ref.CallableName())
}

func TestMetaGetFunctionMissingErrors(t *testing.T) {
	r := NewRegistry()
	getFn, _ := r.Lookup("meta", "get-function")
	_, err := getFn.ScopedFn([]value.Value{value.NewString("not-a-function", true), value.Boolean(false), value.NullValue}, env.New())
	assert.Error(t, err)
}

func TestMetaVariableExistsConsultsScope(t *testing.T) {
	r := NewRegistry()
	s := env.New()
	s.SetVar("x", value.NewUnitless(1))

	varExists, ok := r.Lookup("meta", "variable-exists")
	require.True(t, ok)
	v, err := varExists.ScopedFn([]value.Value{value.NewString("x", true)}, s)
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(true), v)

	v, err = varExists.ScopedFn([]value.Value{value.NewString("nope", true)}, s)
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(false), v)
}

func TestMetaMixinExistsConsultsScope(t *testing.T) {
	r := NewRegistry()
	s := env.New()
	s.SetMixin("box", fakeCallable("box"))

	mixinExists, ok := r.Lookup("meta", "mixin-exists")
	require.True(t, ok)
	v, err := mixinExists.ScopedFn([]value.Value{value.NewString("box", true)}, s)
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(true), v)
}

func TestMetaCallInvokesBuiltin(t *testing.T) {
	r := NewRegistry()
	s := env.New()
	upper, _ := r.Lookup("string", "to-upper-case")

	call, ok := r.Lookup("meta", "call")
	require.True(t, ok)
	args := value.NewArgList([]value.Value{value.NewString("abc", true)}, nil, value.SepComma)
	v, err := call.DispatchFn([]value.Value{&value.SassFunction{Ref: upper}, args}, s, builtinDispatcher{})
	require.NoError(t, err)
	assert.Equal(t, "ABC", v.(*value.SassString).Text)
}
