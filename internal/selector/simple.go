// Package selector implements the selector model and the extension engine
// of spec.md §4.4: specificity, unification, weaving, superselector checks,
// and @extend resolution. It is grounded on the teacher's flat, one-struct-
// per-node style (less/attribute.go's Attribute, NewAttribute, GenCSS
// trio) but replaces the teacher's `any`-typed children with a closed,
// typed Simple sum, matching spec.md §9's "tagged sum types, not
// inheritance" design note.
package selector

import "strings"

// SimpleKind tags which of the §3 SimpleSelector variants a Simple is.
type SimpleKind int

const (
	KindType SimpleKind = iota
	KindUniversal
	KindID
	KindClass
	KindPlaceholder
	KindAttribute
	KindPseudo
)

// Simple is one simple selector: a type/universal/id/class/placeholder/
// attribute/pseudo. Only the fields relevant to Kind are populated; this
// mirrors the closed-variant style spec.md §9 asks for while staying a
// single concrete type so compound selectors can hold a plain slice.
type Simple struct {
	Kind SimpleKind

	// KindType / KindUniversal
	Namespace string // "" = no namespace constraint; "*" = any namespace
	Name      string // "" for KindUniversal

	// KindID / KindClass / KindPlaceholder
	Ident string

	// KindAttribute
	AttrName     string
	AttrOp       string // "", "=", "~=", "|=", "^=", "$=", "*="
	AttrValue    string
	AttrModifier string // "i" or "s", or ""

	// KindPseudo
	PseudoName    string
	PseudoElement bool   // ::name vs :name
	PseudoArg     string // raw argument text when it isn't a nested selector (e.g. nth-child expr)
	PseudoInner   *List  // parsed inner selector list, for :is/:not/:has/:matches/...
}

func Type(ns, name string) *Simple { return &Simple{Kind: KindType, Namespace: ns, Name: name} }
func Universal(ns string) *Simple  { return &Simple{Kind: KindUniversal, Namespace: ns} }
func ID(name string) *Simple       { return &Simple{Kind: KindID, Ident: name} }
func Class(name string) *Simple    { return &Simple{Kind: KindClass, Ident: name} }
func Placeholder(name string) *Simple { return &Simple{Kind: KindPlaceholder, Ident: name} }

// selectorPseudos recurse into a nested selector list (§4.1).
var selectorPseudos = map[string]bool{
	"is": true, "not": true, "matches": true, "has": true,
	"host": true, "host-context": true, "slotted": true,
	"current": true, "where": true,
	"nth-child": true, "nth-last-child": true,
}

func TakesSelectorArgument(name string) bool {
	return selectorPseudos[strings.ToLower(name)]
}

func (s *Simple) IsUniversal() bool { return s.Kind == KindUniversal }

// String renders the simple selector as CSS text.
func (s *Simple) String() string {
	switch s.Kind {
	case KindType:
		return nsPrefix(s.Namespace) + s.Name
	case KindUniversal:
		return nsPrefix(s.Namespace) + "*"
	case KindID:
		return "#" + s.Ident
	case KindClass:
		return "." + s.Ident
	case KindPlaceholder:
		return "%" + s.Ident
	case KindAttribute:
		var b strings.Builder
		b.WriteByte('[')
		b.WriteString(s.AttrName)
		if s.AttrOp != "" {
			b.WriteString(s.AttrOp)
			b.WriteString(s.AttrValue)
		}
		if s.AttrModifier != "" {
			b.WriteByte(' ')
			b.WriteString(s.AttrModifier)
		}
		b.WriteByte(']')
		return b.String()
	case KindPseudo:
		var b strings.Builder
		if s.PseudoElement {
			b.WriteString("::")
		} else {
			b.WriteString(":")
		}
		b.WriteString(s.PseudoName)
		if s.PseudoInner != nil {
			b.WriteByte('(')
			b.WriteString(s.PseudoInner.String())
			b.WriteByte(')')
		} else if s.PseudoArg != "" {
			b.WriteByte('(')
			b.WriteString(s.PseudoArg)
			b.WriteByte(')')
		}
		return b.String()
	}
	return ""
}

func nsPrefix(ns string) string {
	if ns == "" {
		return ""
	}
	return ns + "|"
}

// Equal is simple-selector identity, used by unification and dedup.
func (s *Simple) Equal(o *Simple) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case KindType, KindUniversal:
		return s.Namespace == o.Namespace && s.Name == o.Name
	case KindID, KindClass, KindPlaceholder:
		return s.Ident == o.Ident
	case KindAttribute:
		return s.AttrName == o.AttrName && s.AttrOp == o.AttrOp && s.AttrValue == o.AttrValue && s.AttrModifier == o.AttrModifier
	case KindPseudo:
		if s.PseudoName != o.PseudoName || s.PseudoElement != o.PseudoElement || s.PseudoArg != o.PseudoArg {
			return false
		}
		if (s.PseudoInner == nil) != (o.PseudoInner == nil) {
			return false
		}
		if s.PseudoInner != nil {
			return s.PseudoInner.Equal(o.PseudoInner)
		}
		return true
	}
	return false
}

// unifyNS is §4.4(c): two namespaces unify if equal or one is
// universal ("" / "*" both act as "any" for this purpose).
func unifyNS(a, b string) (string, bool) {
	if a == b {
		return a, true
	}
	if a == "" || a == "*" {
		return b, true
	}
	if b == "" || b == "*" {
		return a, true
	}
	return "", false
}

// Unify implements simple-selector unification (§4.4c): concatenation with
// constraints. Returns nil if the two cannot coexist.
func (s *Simple) Unify(o *Simple) *Simple {
	if s.Kind != o.Kind {
		return nil
	}
	switch s.Kind {
	case KindType:
		if s.Name != o.Name {
			return nil
		}
		ns, ok := unifyNS(s.Namespace, o.Namespace)
		if !ok {
			return nil
		}
		return Type(ns, s.Name)
	case KindUniversal:
		ns, ok := unifyNS(s.Namespace, o.Namespace)
		if !ok {
			return nil
		}
		return Universal(ns)
	case KindID:
		if s.Ident != o.Ident {
			return nil
		}
		return s
	case KindClass, KindPlaceholder, KindAttribute:
		if s.Equal(o) {
			return s
		}
		return nil
	case KindPseudo:
		if s.PseudoElement != o.PseudoElement {
			return nil
		}
		if s.Equal(o) {
			return s
		}
		return nil
	}
	return nil
}
