// Package scanner implements the character-by-character cursor the parser
// family in internal/parser drives. It is the Go analogue of the teacher's
// less/parser_regexes.go: instead of precompiled regexes run against a
// whole buffer, it exposes peek/consume/expect primitives with explicit
// line/column bookkeeping, matching the coroutine-like-restart design note
// in spec.md §9 (snapshot the position instead of rolling back via panics).
package scanner

import (
	"unicode/utf8"

	"github.com/toakleaf/sass.go/internal/source"
)

// Scanner walks one Source's text by byte offset, decoding runes lazily.
// It never mutates the underlying text and is safe to snapshot cheaply
// (State is a plain value).
type Scanner struct {
	Src    *source.Source
	pos    int
	line   int
	col    int
}

func New(src *source.Source) *Scanner {
	return &Scanner{Src: src, pos: 0, line: 1, col: 1}
}

// State is a cheap snapshot of scanner position for speculative parses
// (e.g. declaration-vs-style-rule lookahead in the stylesheet parser).
type State struct {
	Pos, Line, Col int
}

func (s *Scanner) Mark() State { return State{s.pos, s.line, s.col} }

func (s *Scanner) Reset(st State) { s.pos, s.line, s.col = st.Pos, st.Line, st.Col }

func (s *Scanner) Pos() int  { return s.pos }
func (s *Scanner) Line() int { return s.line }
func (s *Scanner) Col() int  { return s.col }

func (s *Scanner) AtEnd() bool { return s.pos >= len(s.Src.Text) }

// Peek returns the rune at the cursor without consuming it, or 0 at EOF.
func (s *Scanner) Peek() rune {
	return s.PeekAt(0)
}

// PeekAt looks offset runes ahead without consuming.
func (s *Scanner) PeekAt(offset int) rune {
	p := s.pos
	var r rune
	for i := 0; i <= offset; i++ {
		if p >= len(s.Src.Text) {
			return 0
		}
		var size int
		r, size = utf8.DecodeRuneInString(s.Src.Text[p:])
		p += size
	}
	return r
}

// Next consumes and returns the current rune, advancing line/column.
func (s *Scanner) Next() rune {
	if s.AtEnd() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s.Src.Text[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// Match consumes literal if the text at the cursor starts with it
// (case-sensitive), returning whether it matched.
func (s *Scanner) Match(literal string) bool {
	if len(s.Src.Text)-s.pos < len(literal) {
		return false
	}
	if s.Src.Text[s.pos:s.pos+len(literal)] != literal {
		return false
	}
	for range literal {
		s.Next()
	}
	return true
}

// MatchFold is Match case-insensitively, for keywords like @MEDIA/@Media.
func (s *Scanner) MatchFold(literal string) bool {
	if len(s.Src.Text)-s.pos < len(literal) {
		return false
	}
	for i := 0; i < len(literal); i++ {
		a := s.Src.Text[s.pos+i]
		b := literal[i]
		if toLower(a) != toLower(b) {
			return false
		}
	}
	for range literal {
		s.Next()
	}
	return true
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

// ScanWhile consumes runes while predicate holds, returning the consumed
// text's span.
func (s *Scanner) ScanWhile(predicate func(rune) bool) source.Span {
	start := s.pos
	for !s.AtEnd() && predicate(s.Peek()) {
		s.Next()
	}
	return source.NewSpan(s.Src.Id(), start, s.pos-start)
}

// Expect consumes ch or returns an error positioned at the cursor.
func (s *Scanner) Expect(ch rune) error {
	if s.Peek() != ch {
		return s.ErrorHere("expected \"" + string(ch) + "\"")
	}
	s.Next()
	return nil
}

// ErrorHere builds a *Error anchored at the current zero-width position.
func (s *Scanner) ErrorHere(expected string) error {
	return &Error{
		Span:     source.NewSpan(s.Src.Id(), s.pos, 0),
		Expected: expected,
		Line:     s.line,
		Col:      s.col,
	}
}

// Error is a scanner/parser-level syntax failure; internal/sasserr wraps
// it into the compiler-wide error sum at the evaluator boundary.
type Error struct {
	Span     source.Span
	Expected string
	Line, Col int
}

func (e *Error) Error() string {
	return "expected " + e.Expected
}
