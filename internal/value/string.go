package value

import "strings"

// SassString is Sass's string value: text plus whether it was
// quoted, which `+` concatenation and serialization must preserve (§4.3).
type SassString struct {
	Text   string
	Quoted bool
}

func NewString(text string, quoted bool) *SassString {
	return &SassString{Text: text, Quoted: quoted}
}

func (s *SassString) TypeName() string { return "string" }
func (s *SassString) Truthy() bool     { return true }

func (s *SassString) Inspect() string {
	if !s.Quoted {
		return s.Text
	}
	return quoteString(s.Text)
}

// quoteString picks the quote character per spec.md §4.5: prefer double
// quotes unless the text contains a double quote and no single quote.
func quoteString(text string) string {
	hasSingle := strings.ContainsRune(text, '\'')
	hasDouble := strings.ContainsRune(text, '"')
	quote := byte('"')
	if hasDouble && !hasSingle {
		quote = '\''
	}
	var b strings.Builder
	b.WriteByte(quote)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == quote || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte(quote)
	return b.String()
}
