// Package env implements the lexically scoped evaluation environment of
// spec.md §4.3/§9: nested frames of variables, functions, and mixins,
// each frame closing over its defining scope so `@mixin`/`@function`
// bodies that reference outer variables keep working after the call
// stack unwinds past the defining scope. Grounded on the teacher's
// less/contexts.go (Eval/Parse context chains with explicit frame
// push/pop), adapted from its single "frame" concept into three
// separate namespaces since SassScript keeps variables, functions, and
// mixins in distinct lookup spaces that don't shadow one another.
package env

import "github.com/toakleaf/sass.go/internal/value"

// Callable is implemented by user-defined functions/mixins (built from
// ast.FunctionRule/MixinRule by the evaluator) and by internal/builtins'
// native entries, so Scope can hold both without importing either.
type Callable interface {
	CallableName() string
}

// normalize makes `$foo-bar` and `$foo_bar` the same variable, per the
// GLOSSARY's "hyphen/underscore equivalence" rule.
func normalize(name string) string {
	out := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '_' {
			out[i] = '-'
		} else {
			out[i] = name[i]
		}
	}
	return string(out)
}

// frame is one lexical scope: a module's top level, a mixin/function
// body, a control-flow block, or `@content`'s captured closure.
type frame struct {
	vars   map[string]value.Value
	funcs  map[string]Callable
	mixins map[string]Callable
	parent *frame
}

// Scope is the evaluator's current lexical environment. It is a thin
// handle onto a frame chain; Push/Pop mutate a stack of these handles in
// place rather than requiring callers to thread a new Scope value
// through every call, matching the teacher's style of a single mutable
// context object passed by pointer through recursive descent.
type Scope struct {
	top *frame
}

// New creates a root scope (a compilation's global frame).
func New() *Scope {
	return &Scope{top: newFrame(nil)}
}

func newFrame(parent *frame) *frame {
	return &frame{
		vars:   map[string]value.Value{},
		funcs:  map[string]Callable{},
		mixins: map[string]Callable{},
		parent: parent,
	}
}

// Push opens a new child frame, e.g. on entering a mixin/function body,
// `@if`/`@for`/`@each`/`@while` block, or `@content` invocation.
func (s *Scope) Push() { s.top = newFrame(s.top) }

// Pop discards the innermost frame, returning to its parent. Calling Pop
// on the root frame is a programming error in the evaluator and panics,
// matching the teacher's assumption that push/pop always balance.
func (s *Scope) Pop() {
	if s.top.parent == nil {
		panic("env: Pop called on root scope")
	}
	s.top = s.top.parent
}

// Snapshot captures the current frame pointer so a closure (a mixin's
// `@content` block, a function literal passed to meta.call) can later
// resume evaluation in the scope it was defined in rather than the
// scope it happens to be invoked from.
type Snapshot struct{ f *frame }

func (s *Scope) Snapshot() Snapshot { return Snapshot{s.top} }

// Enter temporarily switches to a captured closure scope for the
// duration of fn, then restores the previous scope — used to evaluate
// `@content` in its lexical (not dynamic) environment per §4.3.
func (s *Scope) Enter(snap Snapshot, fn func()) {
	saved := s.top
	s.top = newFrame(snap.f)
	fn()
	s.top = saved
}

// GetVar looks up a variable through the frame chain, honoring
// hyphen/underscore equivalence.
func (s *Scope) GetVar(name string) (value.Value, bool) {
	name = normalize(name)
	for f := s.top; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// SetVar assigns a variable. Without !global, it assigns to the nearest
// frame that already declares the name (so assignment inside a block
// updates the enclosing variable, per ordinary Sass scoping), or
// declares it fresh in the current frame if no frame has it yet.
func (s *Scope) SetVar(name string, v value.Value) {
	name = normalize(name)
	for f := s.top; f != nil; f = f.parent {
		if _, ok := f.vars[name]; ok {
			f.vars[name] = v
			return
		}
	}
	s.top.vars[name] = v
}

// SetGlobal implements `!global`: assigns in the root frame regardless
// of nesting.
func (s *Scope) SetGlobal(name string, v value.Value) {
	name = normalize(name)
	root := s.top
	for root.parent != nil {
		root = root.parent
	}
	root.vars[name] = v
}

// DeclareLocal forces a fresh binding in the current (innermost) frame,
// used for mixin/function parameters and loop variables, which must
// never leak into or overwrite an enclosing frame's variable of the
// same name.
func (s *Scope) DeclareLocal(name string, v value.Value) {
	s.top.vars[normalize(name)] = v
}

// HasLocal reports whether name is declared in the current frame
// specifically (not an ancestor) — used to implement `!default`'s "only
// assign if unset in this exact scope" rule at the top level, where
// `!default` at global scope checks the global frame only.
func (s *Scope) HasLocal(name string) bool {
	_, ok := s.top.vars[normalize(name)]
	return ok
}

func (s *Scope) GetFunc(name string) (Callable, bool) {
	name = normalize(name)
	for f := s.top; f != nil; f = f.parent {
		if fn, ok := f.funcs[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

func (s *Scope) SetFunc(name string, c Callable) { s.top.funcs[normalize(name)] = c }

// GetGlobal looks up a variable in the root frame only, implementing
// `global-variable-exists()`'s "global" (as opposed to merely
// outer-scope) semantics.
func (s *Scope) GetGlobal(name string) (value.Value, bool) {
	name = normalize(name)
	root := s.top
	for root.parent != nil {
		root = root.parent
	}
	v, ok := root.vars[name]
	return v, ok
}

// RootBindings copies the root frame's variable/function/mixin tables,
// used by `@use ... as *` and `@forward` to re-export a module's
// top-level members into another scope.
func (s *Scope) RootBindings() (vars map[string]value.Value, funcs, mixins map[string]Callable) {
	root := s.top
	for root.parent != nil {
		root = root.parent
	}
	vars = make(map[string]value.Value, len(root.vars))
	for k, v := range root.vars {
		vars[k] = v
	}
	funcs = make(map[string]Callable, len(root.funcs))
	for k, v := range root.funcs {
		funcs[k] = v
	}
	mixins = make(map[string]Callable, len(root.mixins))
	for k, v := range root.mixins {
		mixins[k] = v
	}
	return
}

func (s *Scope) GetMixin(name string) (Callable, bool) {
	name = normalize(name)
	for f := s.top; f != nil; f = f.parent {
		if m, ok := f.mixins[name]; ok {
			return m, true
		}
	}
	return nil, false
}

func (s *Scope) SetMixin(name string, c Callable) { s.top.mixins[normalize(name)] = c }
