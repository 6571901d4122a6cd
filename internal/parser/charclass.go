// Package parser implements the scanner-driven recursive-descent parser
// family of spec.md §4.1: the stylesheet parser (for both the SCSS and
// Sass indented dialects), the expression parser, and interpolation
// parsing. Selectors and media queries are kept here as interpolated
// text; selector parsing itself lives in internal/selector. Grounded on the teacher's
// less/parser_regexes.go (character-class predicates backing a hand
// written scanner) but replacing precompiled-regex dispatch with the
// scanner primitives of internal/scanner, per spec.md §9's note that
// speculative parsing should snapshot scanner position rather than use
// exceptions/backtracking.
package parser

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 127
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
