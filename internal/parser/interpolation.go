package parser

import (
	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/scanner"
	"github.com/toakleaf/sass.go/internal/source"
)

// parseInterpolatedUntil reads text, honoring nested `#{...}` expressions,
// until stop returns true (at paren/bracket depth 0) or EOF. It builds an
// *ast.Interpolation per §4.1, recording each `#{`'s span.
func (p *Parser) parseInterpolatedUntil(stop func(r rune) bool) (*ast.Interpolation, error) {
	start := p.sc.Mark()
	var parts []ast.InterpolationPart
	var lit []rune
	depth := 0
	flush := func() {
		if len(lit) > 0 {
			parts = append(parts, ast.InterpolationPart{Literal: string(lit)})
			lit = nil
		}
	}
	for !p.sc.AtEnd() {
		r := p.sc.Peek()
		if depth == 0 && stop(r) {
			break
		}
		if r == '#' && p.sc.PeekAt(1) == '{' {
			flush()
			exprStart := p.sc.Mark()
			p.sc.Next()
			p.sc.Next()
			exprText, err := p.readBalanced('}')
			if err != nil {
				return nil, err
			}
			scratchSrc := p.set.Add(p.sc.Src.URL, exprText, source.SyntaxSCSS)
			sub := &Parser{sc: scanner.New(scratchSrc), set: p.set}
			expr, err := sub.ParseExpr()
			if err != nil {
				return nil, err
			}
			parts = append(parts, ast.InterpolationPart{Expr: expr, ExprSpan: p.span(exprStart)})
			continue
		}
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case '\'', '"':
			flush()
			strStart := p.sc.Pos()
			p.skipQuotedString(r)
			parts = append(parts, ast.InterpolationPart{Literal: p.sc.Src.Text[strStart:p.sc.Pos()]})
			continue
		}
		lit = append(lit, r)
		p.sc.Next()
	}
	flush()
	return ast.NewInterpolation(p.span(start), parts), nil
}

func (p *Parser) skipQuotedString(quote rune) {
	p.sc.Next()
	for !p.sc.AtEnd() {
		r := p.sc.Next()
		if r == '\\' && !p.sc.AtEnd() {
			p.sc.Next()
			continue
		}
		if r == quote {
			return
		}
	}
}

// readBalanced consumes up to (and including) the matching close rune,
// honoring nested `{`/`[`/`(`, and returns the text strictly inside.
func (p *Parser) readBalanced(close rune) (string, error) {
	open := matchingOpen(close)
	start := p.sc.Pos()
	depth := 1
	for {
		if p.sc.AtEnd() {
			return "", p.errorf("unterminated interpolation")
		}
		r := p.sc.Peek()
		if r == '\'' || r == '"' {
			p.skipQuotedString(r)
			continue
		}
		if r == open {
			depth++
		} else if r == close {
			depth--
			if depth == 0 {
				text := p.sc.Src.Text[start:p.sc.Pos()]
				p.sc.Next()
				return text, nil
			}
		}
		p.sc.Next()
	}
}

func matchingOpen(close rune) rune {
	switch close {
	case '}':
		return '{'
	case ')':
		return '('
	case ']':
		return '['
	}
	return close
}

