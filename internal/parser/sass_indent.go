package parser

import "strings"

// IndentedToSCSS rewrites the indentation-delimited Sass dialect into the
// brace-delimited SCSS grammar the rest of this package parses, so the
// stylesheet grammar (§4.1) has a single implementation. This is a
// deliberate simplification over hand-rolling two parallel grammars: the
// Sass indented syntax differs from SCSS only in how block nesting and
// statement termination are spelled, never in expression or selector
// grammar, so translating the whitespace structure up front (same idea as
// the teacher's stylesheet-vs-declaration lookahead disambiguation —
// resolve structure before semantics) lets one recursive-descent grammar
// serve both.
func IndentedToSCSS(src string) string {
	lines := splitLines(src)
	var out strings.Builder
	// indents[i] is the indentation width that opened brace-depth i.
	indents := []int{0}

	flushLine := func(line string, indent int) {
		trimmed := strings.TrimRight(line, " \t\r")
		content := strings.TrimLeft(trimmed, " \t")
		if content == "" {
			out.WriteByte('\n')
			return
		}
		for len(indents) > 1 && indent < indents[len(indents)-1] {
			indents = indents[:len(indents)-1]
			out.WriteString("}\n")
		}
		isSilentComment := strings.HasPrefix(content, "//")
		if isSilentComment {
			out.WriteByte('\n')
			return
		}
		out.WriteString(content)
		out.WriteByte('\n')
	}

	for li, line := range lines {
		indent := leadingWidth(line)
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out.WriteByte('\n')
			continue
		}
		opensBlock := lineOpensBlock(trimmed)
		needsSemi := !opensBlock && !strings.HasSuffix(trimmed, ";") && !strings.HasPrefix(trimmed, "//") && !strings.HasPrefix(trimmed, "/*")

		nextIndent := nextNonBlankIndent(lines, li)
		if opensBlock {
			flushLine(trimmed, indent)
			out.WriteString("{\n")
			indents = append(indents, nextIndentOrSelf(nextIndent, indent))
		} else {
			if needsSemi {
				flushLine(trimmed+";", indent)
			} else {
				flushLine(trimmed, indent)
			}
		}
	}
	for len(indents) > 1 {
		indents = indents[:len(indents)-1]
		out.WriteString("}\n")
	}
	return out.String()
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func leadingWidth(line string) int {
	n := 0
	for _, r := range line {
		if r == ' ' {
			n++
		} else if r == '\t' {
			n += 2
		} else {
			break
		}
	}
	return n
}

func nextNonBlankIndent(lines []string, from int) int {
	for i := from + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return leadingWidth(lines[i])
		}
	}
	return -1
}

func nextIndentOrSelf(next, cur int) int {
	if next > cur {
		return next
	}
	return cur + 1
}

// lineOpensBlock decides whether a logical line introduces a nested block
// in the indented syntax: selectors, at-rules with a body, and any
// declaration-shorthand whose value is itself a nested block all share
// the same rule in real Sass — the line has no trailing value that would
// make it a statement, and a deeper-indented line follows. We approximate
// this by the set of keywords/forms that always open a block in SCSS.
func lineOpensBlock(trimmed string) bool {
	if strings.HasSuffix(trimmed, "{") {
		return true
	}
	// Heuristic: statements ending in one of these never open a block
	// themselves (they're complete statements); anything else that isn't
	// clearly a `name: value` declaration and isn't a control-flow
	// statement keyword is treated as a selector/at-rule that nests.
	firstWord := trimmed
	if sp := strings.IndexAny(trimmed, " ("); sp != -1 {
		firstWord = trimmed[:sp]
	}
	switch firstWord {
	case "@else", "@if", "@each", "@for", "@while", "@mixin", "@function",
		"@media", "@supports", "@at-root", "@keyframes", "@-webkit-keyframes",
		"@-moz-keyframes", "@content", "@use", "@forward", "@import",
		"@include", "@extend", "@warn", "@error", "@debug", "@return":
		switch firstWord {
		case "@content", "@use", "@forward", "@import", "@extend",
			"@warn", "@error", "@debug", "@return":
			return strings.HasSuffix(trimmed, "{")
		}
		return true
	}
	if strings.HasPrefix(trimmed, "@") {
		return !looksLikeColonDeclaration(trimmed)
	}
	if looksLikeColonDeclaration(trimmed) {
		return false
	}
	return true
}

// looksLikeColonDeclaration distinguishes `prop: value` from a selector
// that happens to contain `:` (e.g. `a:hover`), using the same signal the
// brace-delimited grammar's speculative lookahead uses: a `:` followed by
// whitespace (or end of line) outside of any pseudo-class/attribute
// selector, with no `{` later on the same logical line.
func looksLikeColonDeclaration(trimmed string) bool {
	depth := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ':':
			if depth == 0 && i+1 <= len(trimmed) {
				if i+1 == len(trimmed) || trimmed[i+1] == ' ' || trimmed[i+1] == '\t' {
					return true
				}
			}
		}
	}
	return false
}
