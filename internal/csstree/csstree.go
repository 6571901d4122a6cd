// Package csstree is the evaluator's output tree: a much smaller family
// than ast's (no control flow, no variables — everything has already
// been evaluated down to CSS-shaped structure) plus the Cssize pass
// (§4.5) that hoists nested rules so the tree is actually legal CSS
// before the emitter walks it. Grounded on the teacher's generated
// `less/tree` node-per-kind-with-GenCSS style, adapted from Less's
// single flat rule list into the nested-then-flattened shape Sass's
// bubbling rules require.
package csstree

import (
	"github.com/toakleaf/sass.go/internal/selector"
	"github.com/toakleaf/sass.go/internal/source"
)

// Node is satisfied by every CSS-tree element.
type Node interface {
	cssNode()
}

type nodeBase struct{}

func (nodeBase) cssNode() {}

// Root is the top of one compiled stylesheet's tree.
type Root struct {
	nodeBase
	Children []Node
}

// StyleRule is a selector plus its declarations/comments/nested rules.
// Immediately after evaluation it may still contain nested StyleRule/
// MediaRule/SupportsRule children (mirroring source nesting); Cssize
// bubbles those out before the emitter runs.
type StyleRule struct {
	nodeBase
	Selector *selector.List
	Children []Node
	Span     source.Span
}

// Declaration is one `property: value;` pair, already serialized to its
// final CSS text by the evaluator (operator evaluation, interpolation,
// and value.Inspect-style formatting all happen before this node exists).
type Declaration struct {
	nodeBase
	Property string
	Value    string
	Span     source.Span
}

// AtRule is a generic at-rule the evaluator didn't need to special-case
// (e.g. `@font-face`, `@page`, vendor at-rules) — preserved with its
// already-evaluated parameter text.
type AtRule struct {
	nodeBase
	Name      string
	Params    string
	Children  []Node // nil for a childless at-rule
	Childless bool
	Span      source.Span
}

type MediaRule struct {
	nodeBase
	Query    string
	Children []Node
	Span     source.Span
}

type SupportsRule struct {
	nodeBase
	Condition string
	Children  []Node
	Span      source.Span
}

type KeyframesRule struct {
	nodeBase
	Prefix   string
	Name     string
	Children []Node
	Span     source.Span
}

// Comment is a loud (`/* ... */`) comment preserved to the output.
type Comment struct {
	nodeBase
	Text string
	Span source.Span
}

// HasContent reports whether a node (after placeholder removal) still
// emits anything, used by Cssize's empty-rule-dropping pass (§4.5).
func HasContent(n Node) bool {
	switch t := n.(type) {
	case *StyleRule:
		if t.Selector == nil || t.Selector.IsEmpty() {
			return false
		}
		for _, c := range t.Children {
			if HasContent(c) {
				return true
			}
		}
		return false
	case *Declaration:
		return true
	case *Comment:
		return true
	case *AtRule:
		if t.Childless {
			return true
		}
		for _, c := range t.Children {
			if HasContent(c) {
				return true
			}
		}
		return false
	case *MediaRule:
		for _, c := range t.Children {
			if HasContent(c) {
				return true
			}
		}
		return false
	case *SupportsRule:
		for _, c := range t.Children {
			if HasContent(c) {
				return true
			}
		}
		return false
	case *KeyframesRule:
		return len(t.Children) > 0
	default:
		return false
	}
}
