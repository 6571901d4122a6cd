package parser

import (
	"fmt"

	"github.com/toakleaf/sass.go/internal/scanner"
	"github.com/toakleaf/sass.go/internal/source"
)

// Parser drives a scanner.Scanner to build an AST. One Parser instance
// handles one Source; the stylesheet parser (Parse) is the entry point,
// and `#{...}` interpolations are parsed by a fresh Parser wrapping a
// throwaway Source holding just the interpolated text, since the scanner
// only ever reads forward.
type Parser struct {
	sc   *scanner.Scanner
	set  *source.Set
	// The Sass indented syntax needs no state here: New rewrites its
	// indentation into the same brace/semicolon token stream the SCSS
	// grammar consumes (see sass_indent.go) rather than giving the
	// recursive-descent grammar two parallel implementations.

	// parenDepth counts enclosing `(...)` nesting while parsing an
	// expression, so a `/` parsed at depth 0 can be told apart from one
	// written inside parens (see BinaryOp.PreserveSlash in expr.go).
	parenDepth int
}

func New(set *source.Set, src *source.Source) *Parser {
	text := src.Text
	if src.Syntax == source.SyntaxSass {
		text = IndentedToSCSS(text)
		src = &source.Source{URL: src.URL, Text: text, Syntax: src.Syntax}
		// Re-intern so spans still resolve through set; the rewritten
		// source keeps the same URL for diagnostics.
		reinterned := set.Add(src.URL, text, source.SyntaxSass)
		src = reinterned
	}
	return &Parser{sc: scanner.New(src), set: set}
}

func (p *Parser) span(start scanner.State) source.Span {
	return source.NewSpan(p.sc.Src.Id(), start.Pos, p.sc.Pos()-start.Pos)
}

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{Span: source.NewSpan(p.sc.Src.Id(), p.sc.Pos(), 0), Message: fmt.Sprintf(format, args...)}
}

// SyntaxError is a parse-time failure carrying the offending span, per
// §4.1 "Failure".
type SyntaxError struct {
	Span    source.Span
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }

func (p *Parser) skipWS() {
	for {
		p.sc.ScanWhile(isWhitespace)
		if p.sc.Peek() == '/' && p.sc.PeekAt(1) == '/' {
			p.sc.ScanWhile(func(r rune) bool { return r != '\n' })
			continue
		}
		if p.sc.Peek() == '/' && p.sc.PeekAt(1) == '*' {
			p.sc.Next()
			p.sc.Next()
			for !p.sc.AtEnd() {
				if p.sc.Peek() == '*' && p.sc.PeekAt(1) == '/' {
					p.sc.Next()
					p.sc.Next()
					break
				}
				p.sc.Next()
			}
			continue
		}
		return
	}
}

// tryLoudComment captures a `/* ... */` comment's text without consuming
// leading whitespace past it, used where loud comments must be preserved
// as Comment statements rather than skipped.
func (p *Parser) tryLoudComment() (string, bool) {
	if p.sc.Peek() != '/' || p.sc.PeekAt(1) != '*' {
		return "", false
	}
	start := p.sc.Pos()
	p.sc.Next()
	p.sc.Next()
	for !p.sc.AtEnd() {
		if p.sc.Peek() == '*' && p.sc.PeekAt(1) == '/' {
			p.sc.Next()
			p.sc.Next()
			break
		}
		p.sc.Next()
	}
	return p.sc.Src.Text[start:p.sc.Pos()], true
}

func (p *Parser) skipInlineWS() {
	p.sc.ScanWhile(func(r rune) bool { return r == ' ' || r == '\t' })
}

func (p *Parser) parseIdent() string {
	sp := p.sc.ScanWhile(isIdentChar)
	return sp.Text(p.set)
}

func (p *Parser) match(lit string) bool { return p.sc.Match(lit) }
