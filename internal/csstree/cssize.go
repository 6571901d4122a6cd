package csstree

import "github.com/toakleaf/sass.go/internal/selector"

// Cssize hoists nested structures so the result conforms to CSS (§4.5):
// a nested StyleRule bubbles out as a sibling (its selector was already
// parent-resolved by the evaluator's selector stack); a MediaRule or
// SupportsRule nested inside a StyleRule bubbles outward, reproducing
// the enclosing style rule's declarations inside it. Grounded on
// original_source/src/cssize.cpp's rule that an outer @media/@supports
// bubbles before an inner one (innermost last) — this is naturally what
// the recursive flatten below produces, since the outer call's results
// are appended after its own wrapped rule but the inner bubbling already
// happened by the time the outer frame runs.
func Cssize(root *Root) *Root {
	var out []Node
	for _, c := range root.Children {
		out = append(out, flatten(c, nil)...)
	}
	out = dropEmpty(out)
	out = mergeAdjacentMedia(out)
	return &Root{Children: out}
}

// flatten returns the top-level-ready nodes n expands to. ctxSelector is
// the nearest enclosing StyleRule's selector, used to re-wrap
// declarations found directly inside a bubbled MediaRule/SupportsRule/
// AtRule so they still apply to the right elements once hoisted.
func flatten(n Node, ctxSelector *selector.List) []Node {
	switch t := n.(type) {
	case *StyleRule:
		var plain, results []Node
		for _, c := range t.Children {
			switch cc := c.(type) {
			case *Declaration, *Comment:
				plain = append(plain, c)
			case *StyleRule:
				results = append(results, flatten(cc, cc.Selector)...)
			case *MediaRule, *SupportsRule, *AtRule:
				results = append(results, flatten(c, t.Selector)...)
			default:
				plain = append(plain, c)
			}
		}
		wrapped := &StyleRule{Selector: t.Selector, Children: plain, Span: t.Span}
		return append([]Node{wrapped}, results...)

	case *MediaRule:
		children := bubbleBlockChildren(t.Children, ctxSelector)
		return []Node{&MediaRule{Query: t.Query, Children: children, Span: t.Span}}

	case *SupportsRule:
		children := bubbleBlockChildren(t.Children, ctxSelector)
		return []Node{&SupportsRule{Condition: t.Condition, Children: children, Span: t.Span}}

	case *AtRule:
		if t.Childless {
			return []Node{t}
		}
		children := bubbleBlockChildren(t.Children, ctxSelector)
		return []Node{&AtRule{Name: t.Name, Params: t.Params, Children: children, Span: t.Span}}

	case *KeyframesRule:
		// Keyframes' children (percentage/from/to blocks) never bubble.
		return []Node{t}

	default:
		return []Node{n}
	}
}

// bubbleBlockChildren is the shared body of MediaRule/SupportsRule/AtRule
// bubbling: direct declarations get wrapped in a clone of the enclosing
// style rule's selector (so `a { @media … { color: red } }` becomes
// `@media … { a { color: red } }`); nested rules recurse, staying inside
// this block since @media-in-@media and style-rules-in-@media are both
// already legal CSS.
func bubbleBlockChildren(kids []Node, ctxSelector *selector.List) []Node {
	var plain, nested []Node
	for _, c := range kids {
		switch cc := c.(type) {
		case *Declaration, *Comment:
			plain = append(plain, c)
		case *StyleRule:
			nested = append(nested, flatten(cc, cc.Selector)...)
		case *MediaRule, *SupportsRule, *AtRule:
			nested = append(nested, flatten(c, ctxSelector)...)
		default:
			plain = append(plain, c)
		}
	}
	var children []Node
	if len(plain) > 0 && ctxSelector != nil {
		children = append(children, &StyleRule{Selector: ctxSelector, Children: plain})
	} else {
		children = append(children, plain...)
	}
	children = append(children, nested...)
	return children
}

// dropEmpty removes any rule whose content vanished after placeholder
// removal/selector resolution, recursively.
func dropEmpty(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		switch t := n.(type) {
		case *StyleRule:
			if !HasContent(t) {
				continue
			}
		case *MediaRule:
			t.Children = dropEmpty(t.Children)
			if len(t.Children) == 0 {
				continue
			}
		case *SupportsRule:
			t.Children = dropEmpty(t.Children)
			if len(t.Children) == 0 {
				continue
			}
		case *AtRule:
			if !t.Childless {
				t.Children = dropEmpty(t.Children)
				if len(t.Children) == 0 {
					continue
				}
			}
		}
		out = append(out, n)
	}
	return out
}

// mergeAdjacentMedia combines consecutive @media rules with textually
// identical queries (§4.5's "adjacent media rules with equivalent
// queries merge").
func mergeAdjacentMedia(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		if mr, ok := n.(*MediaRule); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*MediaRule); ok && prev.Query == mr.Query {
				prev.Children = append(prev.Children, mr.Children...)
				continue
			}
		}
		out = append(out, n)
	}
	return out
}
