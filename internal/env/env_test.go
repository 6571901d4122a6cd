package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toakleaf/sass.go/internal/value"
)

func TestHyphenUnderscoreEquivalence(t *testing.T) {
	s := New()
	s.SetVar("foo_bar", value.NewUnitless(1))
	v, ok := s.GetVar("foo-bar")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.(*value.Number).Val)
}

func TestSetVarUpdatesEnclosingFrame(t *testing.T) {
	s := New()
	s.SetVar("x", value.NewUnitless(1))
	s.Push()
	s.SetVar("x", value.NewUnitless(2))
	s.Pop()
	v, _ := s.GetVar("x")
	assert.Equal(t, 2.0, v.(*value.Number).Val)
}

func TestDeclareLocalDoesNotLeakToParent(t *testing.T) {
	s := New()
	s.SetVar("x", value.NewUnitless(1))
	s.Push()
	s.DeclareLocal("x", value.NewUnitless(99))
	v, _ := s.GetVar("x")
	assert.Equal(t, 99.0, v.(*value.Number).Val)
	s.Pop()
	v, _ = s.GetVar("x")
	assert.Equal(t, 1.0, v.(*value.Number).Val)
}

func TestSetGlobalReachesRootFromNestedFrame(t *testing.T) {
	s := New()
	s.Push()
	s.Push()
	s.SetGlobal("g", value.NewUnitless(7))
	s.Pop()
	s.Pop()
	v, ok := s.GetVar("g")
	require.True(t, ok)
	assert.Equal(t, 7.0, v.(*value.Number).Val)
}

func TestGetGlobalIgnoresLocalShadow(t *testing.T) {
	s := New()
	s.SetVar("x", value.NewUnitless(1))
	s.Push()
	s.DeclareLocal("x", value.NewUnitless(2))
	_, hasGlobal := s.GetGlobal("x")
	require.True(t, hasGlobal)
	v, _ := s.GetGlobal("x")
	assert.Equal(t, 1.0, v.(*value.Number).Val)
}

func TestSnapshotEnterRestoresClosureScope(t *testing.T) {
	s := New()
	s.SetVar("x", value.NewUnitless(1))
	snap := s.Snapshot()

	s.Push()
	s.DeclareLocal("x", value.NewUnitless(2))

	var seen float64
	s.Enter(snap, func() {
		v, _ := s.GetVar("x")
		seen = v.(*value.Number).Val
	})
	assert.Equal(t, 1.0, seen)

	v, _ := s.GetVar("x")
	assert.Equal(t, 2.0, v.(*value.Number).Val)
}

func TestPopOnRootPanics(t *testing.T) {
	s := New()
	assert.Panics(t, func() { s.Pop() })
}
