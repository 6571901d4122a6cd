// Package emitter serializes an internal/csstree.Root into CSS text
// under one of the four documented output styles, recording a
// generated-position -> source-span mapping for each declaration and
// selector as it writes them, so internal/sourcemap can encode a source
// map alongside the text. Grounded on the teacher's `less/tree`
// `GenCSS(output *Output)` visitor style (each node writes itself into a
// shared output buffer/context rather than returning a string), adapted
// from Less's single output style into spec.md §6's four styles.
package emitter

import (
	"strings"

	"github.com/toakleaf/sass.go/internal/csstree"
	"github.com/toakleaf/sass.go/internal/source"
)

// Style is one of spec.md §6's four documented output styles.
type Style int

const (
	Expanded Style = iota
	Nested
	Compact
	Compressed
)

// Mapping is one generated-position -> original-position correspondence,
// the unit internal/sourcemap encodes as a VLQ segment.
type Mapping struct {
	GeneratedLine   int // 0-based
	GeneratedColumn int // 0-based
	SourceIndex     int
	OriginalLine    int // 0-based
	OriginalColumn  int // 0-based
}

// Result is the emitter's output: the rendered text plus the mappings
// recorded while writing it.
type Result struct {
	CSS      string
	Mappings []Mapping
}

// Emit serializes root under style, resolving each node's recorded Span
// against sources to build the mapping list.
func Emit(root *csstree.Root, style Style, sources *source.Set) Result {
	w := &writer{style: style, sources: sources}
	w.writeChildren(root.Children, 0)
	if style != Compressed && w.buf.Len() > 0 {
		if !strings.HasSuffix(w.buf.String(), "\n") {
			w.buf.WriteByte('\n')
		}
	}
	return Result{CSS: w.buf.String(), Mappings: w.mappings}
}

type writer struct {
	style    Style
	sources  *source.Set
	buf      strings.Builder
	mappings []Mapping
	line     int
	col      int
}

func (w *writer) write(s string) {
	for _, r := range s {
		if r == '\n' {
			w.line++
			w.col = 0
		} else {
			w.col++
		}
	}
	w.buf.WriteString(s)
}

func (w *writer) mark(sp source.Span) {
	if w.sources == nil {
		return
	}
	line, col := sp.LineCol(w.sources)
	w.mappings = append(w.mappings, Mapping{
		GeneratedLine:   w.line,
		GeneratedColumn: w.col,
		SourceIndex:     sp.SourceId,
		OriginalLine:    line - 1,
		OriginalColumn:  col - 1,
	})
}

func (w *writer) indent(depth int) string {
	if w.style == Compressed || w.style == Compact {
		return ""
	}
	return strings.Repeat("  ", depth)
}

func (w *writer) nl() {
	if w.style != Compressed {
		w.write("\n")
	}
}

// isRuleNode reports whether n is a brace-delimited rule (as opposed to a
// declaration or comment), the §4.5 unit that gets a blank line between
// consecutive siblings in Expanded/Nested output.
func isRuleNode(n csstree.Node) bool {
	switch n.(type) {
	case *csstree.StyleRule, *csstree.AtRule, *csstree.MediaRule, *csstree.SupportsRule, *csstree.KeyframesRule:
		return true
	default:
		return false
	}
}

// writeChildren writes a sibling list (Root's children or a rule's
// body), each at the given nesting depth. Per §4.5, Expanded/Nested
// output gets a blank line between two consecutive rules (but not before
// the first rule, and not around declarations/comments).
func (w *writer) writeChildren(nodes []csstree.Node, depth int) {
	prevWasRule := false
	for _, n := range nodes {
		isRule := isRuleNode(n)
		if isRule && prevWasRule && (w.style == Expanded || w.style == Nested) {
			w.nl()
		}
		switch t := n.(type) {
		case *csstree.StyleRule:
			w.writeStyleRule(t, depth)
		case *csstree.Declaration:
			w.writeDeclaration(t, depth)
		case *csstree.AtRule:
			w.writeAtRule(t, depth)
		case *csstree.MediaRule:
			w.writeMediaRule(t, depth)
		case *csstree.SupportsRule:
			w.writeSupportsRule(t, depth)
		case *csstree.KeyframesRule:
			w.writeKeyframesRule(t, depth)
		case *csstree.Comment:
			w.writeComment(t, depth)
		}
		prevWasRule = isRule
	}
}

func (w *writer) writeStyleRule(t *csstree.StyleRule, depth int) {
	w.mark(t.Span)
	w.write(w.indent(depth))
	w.write(t.Selector.String())
	w.openBrace()
	w.writeDeclBody(t.Children, depth+1)
	w.closeBrace(depth)
}

func (w *writer) writeDeclaration(t *csstree.Declaration, depth int) {
	w.mark(t.Span)
	if w.style != Compact {
		w.write(w.indent(depth))
	}
	w.write(t.Property)
	w.write(":")
	if w.style != Compressed {
		w.write(" ")
	}
	w.write(t.Value)
	w.write(";")
	if w.style == Compact {
		w.write(" ")
	} else {
		w.nl()
	}
}

func (w *writer) writeAtRule(t *csstree.AtRule, depth int) {
	w.mark(t.Span)
	w.write(w.indent(depth))
	w.write("@" + t.Name)
	if t.Params != "" {
		w.write(" " + t.Params)
	}
	if t.Childless {
		w.write(";")
		w.nl()
		return
	}
	w.openBrace()
	w.writeDeclBody(t.Children, depth+1)
	w.closeBrace(depth)
}

func (w *writer) writeMediaRule(t *csstree.MediaRule, depth int) {
	w.mark(t.Span)
	w.write(w.indent(depth))
	w.write("@media " + t.Query)
	w.openBrace()
	w.writeChildren(t.Children, depth+1)
	w.closeBrace(depth)
}

func (w *writer) writeSupportsRule(t *csstree.SupportsRule, depth int) {
	w.mark(t.Span)
	w.write(w.indent(depth))
	w.write("@supports " + t.Condition)
	w.openBrace()
	w.writeChildren(t.Children, depth+1)
	w.closeBrace(depth)
}

func (w *writer) writeKeyframesRule(t *csstree.KeyframesRule, depth int) {
	w.mark(t.Span)
	w.write(w.indent(depth))
	w.write("@" + t.Prefix + "keyframes " + t.Name)
	w.openBrace()
	w.writeChildren(t.Children, depth+1)
	w.closeBrace(depth)
}

func (w *writer) writeComment(t *csstree.Comment, depth int) {
	if w.style == Compressed {
		return
	}
	w.mark(t.Span)
	w.write(w.indent(depth))
	w.write(t.Text)
	w.nl()
}

// writeDeclBody writes a style-rule/at-rule's direct declaration/comment
// children, which, unlike a Root or @media's children, never themselves
// contain a nested StyleRule after Cssize has run.
func (w *writer) writeDeclBody(nodes []csstree.Node, depth int) {
	w.writeChildren(nodes, depth)
}

func (w *writer) openBrace() {
	switch w.style {
	case Compressed:
		w.write("{")
	case Compact:
		w.write(" { ")
	default:
		w.write(" {")
		w.nl()
	}
}

func (w *writer) closeBrace(depth int) {
	switch w.style {
	case Compressed:
		w.write("}")
	case Compact:
		w.write("}")
		w.nl()
	default:
		w.write(w.indent(depth))
		w.write("}")
		w.nl()
	}
}
