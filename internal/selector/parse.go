package selector

import (
	"strings"
)

// Parse parses already-interpolated selector text (§4.1's selector
// grammar, invoked by the evaluator once a StyleRule's prelude
// interpolation has been resolved to plain text) into a List. It is a
// small hand-rolled scanner over a string rather than reusing
// internal/scanner, since selector text never needs span tracking for
// sub-expressions the way SassScript does — only the whole selector's
// span, which the caller already has from the originating Interpolation.
func Parse(text string) (*List, error) {
	p := &selParser{text: text}
	list, err := p.parseList()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if p.pos < len(p.text) {
		return nil, &Error{Message: "unexpected text after selector", Pos: p.pos}
	}
	return list, nil
}

// Error is a selector-text parse failure.
type Error struct {
	Message string
	Pos     int
}

func (e *Error) Error() string { return e.Message }

type selParser struct {
	text string
	pos  int
}

func (p *selParser) peek() byte {
	if p.pos >= len(p.text) {
		return 0
	}
	return p.text[p.pos]
}

func (p *selParser) peekAt(n int) byte {
	if p.pos+n >= len(p.text) {
		return 0
	}
	return p.text[p.pos+n]
}

func (p *selParser) next() byte {
	b := p.peek()
	if b != 0 {
		p.pos++
	}
	return b
}

func (p *selParser) skipWS() {
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case ' ', '\t', '\n', '\r', '\f':
			p.pos++
		default:
			return
		}
	}
}

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '-' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func (p *selParser) parseIdentText() string {
	start := p.pos
	for p.pos < len(p.text) {
		b := p.text[p.pos]
		if isIdentByte(b) || (b == '\\' && p.pos+1 < len(p.text)) {
			if b == '\\' {
				p.pos += 2
				continue
			}
			p.pos++
			continue
		}
		break
	}
	return p.text[start:p.pos]
}

func (p *selParser) parseList() (*List, error) {
	var complexes []*Complex
	for {
		p.skipWS()
		cx, err := p.parseComplex()
		if err != nil {
			return nil, err
		}
		complexes = append(complexes, cx)
		p.skipWS()
		if p.peek() != ',' {
			break
		}
		p.next()
	}
	return NewList(complexes), nil
}

func (p *selParser) parseComplex() (*Complex, error) {
	var components []Component
	sawSpace := false
	for {
		p.skipWS()
		switch p.peek() {
		case 0, ',', ')':
			goto done
		case '>':
			p.next()
			components = append(components, CombinatorComponent(Child))
			sawSpace = false
			continue
		case '+':
			p.next()
			components = append(components, CombinatorComponent(Sibling))
			sawSpace = false
			continue
		case '~':
			p.next()
			components = append(components, CombinatorComponent(GeneralSibling))
			sawSpace = false
			continue
		}
		if len(components) > 0 && !components[len(components)-1].IsCombinator && sawSpace {
			components = append(components, CombinatorComponent(Descendant))
		}
		before := p.pos
		cmp, err := p.parseCompound()
		if err != nil {
			return nil, err
		}
		if cmp == nil {
			if p.pos == before {
				goto done
			}
			continue
		}
		components = append(components, CompoundComponent(cmp))
		sawSpace = p.skipInlineSpaceTrack()
	}
done:
	if len(components) == 0 {
		return nil, &Error{Message: "expected selector", Pos: p.pos}
	}
	return NewComplex(trimCombinatorEnds(components)), nil
}

// skipInlineSpaceTrack consumes whitespace, reporting whether any was
// found, so the caller can tell a descendant combinator from direct
// adjacency (`a b` vs `ab`, which can't actually occur post-tokenizing
// but keeps the loop structure uniform with the combinator cases above).
func (p *selParser) skipInlineSpaceTrack() bool {
	start := p.pos
	p.skipWS()
	return p.pos > start
}

func trimCombinatorEnds(components []Component) []Component {
	start := 0
	for start < len(components) && components[start].IsCombinator {
		start++
	}
	end := len(components)
	for end > start && components[end-1].IsCombinator {
		end--
	}
	return components[start:end]
}

func (p *selParser) parseCompound() (*Compound, error) {
	var simples []*Simple
	for {
		switch p.peek() {
		case '&':
			p.next()
			simples = append(simples, ParentRef())
		case '*':
			p.next()
			if p.peek() == '|' {
				p.next()
				name := p.parseIdentText()
				simples = append(simples, Type("*", name))
			} else {
				simples = append(simples, Universal(""))
			}
		case '.':
			p.next()
			simples = append(simples, Class(p.parseIdentText()))
		case '#':
			if p.peekAt(1) == '{' {
				goto stop
			}
			p.next()
			simples = append(simples, ID(p.parseIdentText()))
		case '%':
			p.next()
			simples = append(simples, Placeholder(p.parseIdentText()))
		case '[':
			attr, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}
			simples = append(simples, attr)
		case ':':
			ps, err := p.parsePseudo()
			if err != nil {
				return nil, err
			}
			simples = append(simples, ps)
		default:
			if isIdentStartByte(p.peek()) {
				name := p.parseIdentText()
				if p.peek() == '|' && p.peekAt(1) != '|' {
					p.next()
					local := p.parseIdentText()
					simples = append(simples, Type(name, local))
				} else {
					simples = append(simples, Type("", name))
				}
				continue
			}
			goto stop
		}
		continue
	stop:
		break
	}
	if len(simples) == 0 {
		return nil, nil
	}
	return NewCompound(simples), nil
}

func (p *selParser) parseAttribute() (*Simple, error) {
	p.next() // [
	p.skipWS()
	ns := ""
	name := p.parseIdentText()
	if p.peek() == '|' && p.peekAt(1) != '=' {
		p.next()
		ns = name
		name = p.parseIdentText()
	}
	p.skipWS()
	s := &Simple{Kind: KindAttribute, AttrName: nsJoin(ns, name)}
	switch {
	case p.peek() == '=':
		p.next()
		s.AttrOp = "="
	case p.matchOp("~="):
		s.AttrOp = "~="
	case p.matchOp("|="):
		s.AttrOp = "|="
	case p.matchOp("^="):
		s.AttrOp = "^="
	case p.matchOp("$="):
		s.AttrOp = "$="
	case p.matchOp("*="):
		s.AttrOp = "*="
	}
	if s.AttrOp != "" {
		p.skipWS()
		s.AttrValue = p.parseAttrValue()
		p.skipWS()
		if p.peek() == 'i' || p.peek() == 'I' || p.peek() == 's' || p.peek() == 'S' {
			s.AttrModifier = string(p.next())
			p.skipWS()
		}
	}
	if p.peek() == ']' {
		p.next()
	}
	return s, nil
}

func nsJoin(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + "|" + name
}

func (p *selParser) matchOp(op string) bool {
	if p.pos+len(op) > len(p.text) || p.text[p.pos:p.pos+len(op)] != op {
		return false
	}
	p.pos += len(op)
	return true
}

func (p *selParser) parseAttrValue() string {
	if p.peek() == '"' || p.peek() == '\'' {
		quote := p.next()
		start := p.pos
		for p.pos < len(p.text) && p.text[p.pos] != quote {
			p.pos++
		}
		val := p.text[start:p.pos]
		if p.pos < len(p.text) {
			p.pos++
		}
		return val
	}
	start := p.pos
	for p.pos < len(p.text) && p.text[p.pos] != ']' && p.text[p.pos] != ' ' {
		p.pos++
	}
	return p.text[start:p.pos]
}

func (p *selParser) parsePseudo() (*Simple, error) {
	p.next() // first ':'
	elementForm := false
	if p.peek() == ':' {
		p.next()
		elementForm = true
	}
	name := p.parseIdentText()
	s := &Simple{Kind: KindPseudo, PseudoName: name, PseudoElement: elementForm || isAlwaysElement(name)}
	if p.peek() != '(' {
		return s, nil
	}
	p.next()
	if TakesSelectorArgument(name) {
		inner, rest, err := p.parseNestedSelectorArg(name)
		if err != nil {
			return nil, err
		}
		s.PseudoInner = inner
		s.PseudoArg = rest
	} else {
		start := p.pos
		depth := 1
		for p.pos < len(p.text) && depth > 0 {
			switch p.text[p.pos] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					s.PseudoArg = p.text[start:p.pos]
				}
			}
			p.pos++
		}
	}
	return s, nil
}

// parseNestedSelectorArg parses the selector-list argument of :is/:not/
// :has/etc, including the libsass/Sass-specific `:nth-child(An+B of <sel>)`
// shorthand, which sass.go keeps as a selector inner list plus the raw
// "An+B" text in PseudoArg.
func (p *selParser) parseNestedSelectorArg(name string) (*List, string, error) {
	if strings.EqualFold(name, "nth-child") || strings.EqualFold(name, "nth-last-child") {
		start := p.pos
		depth := 1
		ofIdx := -1
		for p.pos < len(p.text) && depth > 0 {
			if depth == 1 && p.pos+4 <= len(p.text) && strings.EqualFold(p.text[p.pos:p.pos+4], " of ") {
				ofIdx = p.pos
			}
			switch p.text[p.pos] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth > 0 {
				p.pos++
			}
		}
		full := p.text[start:p.pos]
		if p.pos < len(p.text) {
			p.pos++ // )
		}
		if ofIdx == -1 {
			return nil, full, nil
		}
		an := strings.TrimSpace(full[:ofIdx-start])
		selText := strings.TrimSpace(full[ofIdx-start+4:])
		inner, err := Parse(selText)
		if err != nil {
			return nil, "", err
		}
		return inner, an, nil
	}
	start := p.pos
	depth := 1
	for p.pos < len(p.text) && depth > 0 {
		switch p.text[p.pos] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				selText := p.text[start:p.pos]
				p.pos++
				inner, err := Parse(selText)
				if err != nil {
					return nil, "", err
				}
				return inner, "", nil
			}
		}
		p.pos++
	}
	return nil, "", &Error{Message: "unterminated " + name + "()", Pos: start}
}

func isAlwaysElement(name string) bool {
	switch strings.ToLower(name) {
	case "before", "after", "first-line", "first-letter":
		return true
	}
	return false
}
