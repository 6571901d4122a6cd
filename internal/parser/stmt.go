package parser

import (
	"strings"

	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/scanner"
	"github.com/toakleaf/sass.go/internal/source"
)

// Parse parses an entire stylesheet, dispatching at-rules by name and
// resolving the declaration-vs-style-rule ambiguity via a speculative
// lookahead (mark the scanner, try a declaration, fall back to a
// selector+block on failure) rather than two-pass tokenizing, matching
// the "snapshot position, not exception-based backtracking" note the
// scanner package documents.
func (p *Parser) Parse() (*ast.Stylesheet, error) {
	body, err := p.parseStmts(true)
	if err != nil {
		return nil, err
	}
	return &ast.Stylesheet{Source: p.sc.Src, Body: body}, nil
}

// parseStmts parses a sequence of statements until `}` or EOF. topLevel
// statements (@use/@forward) are only legal at the true top of a file.
func (p *Parser) parseStmts(topLevel bool) (*ast.Block, error) {
	block := &ast.Block{}
	for {
		p.skipInertTokens()
		if p.sc.AtEnd() || p.sc.Peek() == '}' {
			return block, nil
		}
		stmt, err := p.parseStmt(topLevel && len(block.Stmts) == 0)
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
		topLevel = topLevel && isModuleStmt(stmt)
	}
}

func isModuleStmt(s ast.Stmt) bool {
	switch s.(type) {
	case *ast.UseRule, *ast.ForwardRule, *ast.Comment, nil:
		return true
	}
	return false
}

// skipInertTokens consumes whitespace and comments, but stops short of
// consuming a loud comment that a caller may want to preserve as a
// Comment statement — callers must re-check for one after this returns.
func (p *Parser) skipInertTokens() {
	for {
		p.sc.ScanWhile(isWhitespace)
		if p.sc.Peek() == ';' {
			p.sc.Next()
			continue
		}
		if p.sc.Peek() == '/' && p.sc.PeekAt(1) == '/' {
			p.sc.ScanWhile(func(r rune) bool { return r != '\n' })
			continue
		}
		return
	}
}

func (p *Parser) parseStmt(atTop bool) (ast.Stmt, error) {
	if text, ok := p.tryLoudComment(); ok {
		return ast.NewComment(p.span(scannerMarkBefore(text, p)), text), nil
	}
	if p.sc.Peek() == '@' {
		return p.parseAtRule(atTop)
	}
	return p.parseDeclarationOrStyleRule()
}

// scannerMarkBefore reconstructs the start-of-comment mark from its
// already-consumed text, since tryLoudComment doesn't return one; spans
// for comments only need to be approximately right for diagnostics, so we
// back up by the comment's length in bytes.
func scannerMarkBefore(text string, p *Parser) scanner.State {
	st := p.sc.Mark()
	st.Pos -= len(text)
	return st
}

func (p *Parser) parseAtRule(atTop bool) (ast.Stmt, error) {
	start := p.sc.Mark()
	p.sc.Next() // @
	name := strings.ToLower(p.parseIdent())
	switch name {
	case "use":
		return p.parseUseRule(start)
	case "forward":
		return p.parseForwardRule(start)
	case "import":
		return p.parseImportRule(start)
	case "if":
		return p.parseIfRule(start)
	case "for":
		return p.parseForRule(start)
	case "each":
		return p.parseEachRule(start)
	case "while":
		return p.parseWhileRule(start)
	case "function":
		return p.parseFunctionRule(start)
	case "mixin":
		return p.parseMixinRule(start)
	case "include":
		return p.parseIncludeRule(start)
	case "content":
		return p.parseContentRule(start)
	case "return":
		return p.parseReturnRule(start)
	case "extend":
		return p.parseExtendRule(start)
	case "warn":
		return p.parseMsgRule(start, func(s source.Span, e ast.Expr) ast.Stmt { return ast.NewWarnRule(s, e) })
	case "error":
		return p.parseMsgRule(start, func(s source.Span, e ast.Expr) ast.Stmt { return ast.NewErrorRule(s, e) })
	case "debug":
		return p.parseMsgRule(start, func(s source.Span, e ast.Expr) ast.Stmt { return ast.NewDebugRule(s, e) })
	case "media":
		return p.parseMediaRule(start)
	case "supports":
		return p.parseSupportsRule(start)
	case "at-root":
		return p.parseAtRootRule(start)
	case "keyframes", "-webkit-keyframes", "-moz-keyframes", "-o-keyframes":
		return p.parseKeyframesRule(start, name)
	default:
		return p.parseGenericAtRule(start, name)
	}
}

func (p *Parser) parseMsgRule(start scanner.State, build func(source.Span, ast.Expr) ast.Stmt) (ast.Stmt, error) {
	p.skipInlineWS()
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	return build(p.span(start), expr), nil
}

func (p *Parser) parseIfRule(start scanner.State) (ast.Stmt, error) {
	var clauses []ast.IfClause
	p.skipInlineWS()
	cond, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	clauses = append(clauses, ast.IfClause{Cond: cond, Body: body})
	for {
		save := p.sc.Mark()
		p.skipWS()
		if !p.sc.Match("@else") {
			p.sc.Reset(save)
			break
		}
		p.skipInlineWS()
		if p.sc.Match("if") {
			p.skipInlineWS()
			c, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			p.skipWS()
			b, err := p.parseBracedBlock()
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, ast.IfClause{Cond: c, Body: b})
			continue
		}
		p.skipWS()
		b, err := p.parseBracedBlock()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, ast.IfClause{Cond: nil, Body: b})
		break
	}
	return ast.NewIfRule(p.span(start), clauses), nil
}

func (p *Parser) parseForRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	if err := p.sc.Expect('$'); err != nil {
		return nil, err
	}
	v := p.parseIdent()
	p.skipInlineWS()
	if !p.matchKeyword("from") {
		return nil, p.errorf("expected \"from\"")
	}
	p.skipInlineWS()
	from, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.skipInlineWS()
	exclusive := true
	if p.matchKeyword("to") {
		exclusive = true
	} else if p.matchKeyword("through") {
		exclusive = false
	} else {
		return nil, p.errorf("expected \"to\" or \"through\"")
	}
	p.skipInlineWS()
	to, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewForRule(p.span(start), v, from, to, exclusive, body), nil
}

func (p *Parser) parseEachRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	var vars []string
	for {
		if err := p.sc.Expect('$'); err != nil {
			return nil, err
		}
		vars = append(vars, p.parseIdent())
		p.skipInlineWS()
		if p.sc.Peek() != ',' {
			break
		}
		p.sc.Next()
		p.skipInlineWS()
	}
	if !p.matchKeyword("in") {
		return nil, p.errorf("expected \"in\"")
	}
	p.skipInlineWS()
	iter, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewEachRule(p.span(start), vars, iter, body), nil
}

func (p *Parser) parseWhileRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	cond, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileRule(p.span(start), cond, body), nil
}

func (p *Parser) parseParams() ([]ast.Param, error) {
	if err := p.sc.Expect('('); err != nil {
		return nil, err
	}
	var params []ast.Param
	p.skipWS()
	for p.sc.Peek() != ')' {
		if err := p.sc.Expect('$'); err != nil {
			return nil, err
		}
		name := p.parseIdent()
		p.skipWS()
		param := ast.Param{Name: name}
		if p.sc.Match("...") {
			param.IsRest = true
		} else if p.sc.Peek() == ':' {
			p.sc.Next()
			p.skipWS()
			def, err := p.parseSpaceList()
			if err != nil {
				return nil, err
			}
			param.Default = def
		}
		params = append(params, param)
		p.skipWS()
		if p.sc.Peek() == ',' {
			p.sc.Next()
			p.skipWS()
		}
	}
	p.sc.Next() // )
	return params, nil
}

func (p *Parser) parseFunctionRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	name := p.parseIdentDashes()
	p.skipWS()
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionRule(p.span(start), name, params, body), nil
}

func (p *Parser) parseMixinRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	name := p.parseIdentDashes()
	p.skipWS()
	var params []ast.Param
	if p.sc.Peek() == '(' {
		var err error
		params, err = p.parseParams()
		if err != nil {
			return nil, err
		}
		p.skipWS()
	}
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewMixinRule(p.span(start), name, params, body), nil
}

func (p *Parser) parseIncludeRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	name := p.parseIdentDashes()
	ns := ""
	if p.sc.Peek() == '.' {
		p.sc.Next()
		ns = name
		name = p.parseIdentDashes()
	}
	var args ast.ArgInvocation
	p.skipInlineWS()
	if p.sc.Peek() == '(' {
		var err error
		args, err = p.parseArgInvocation()
		if err != nil {
			return nil, err
		}
	}
	p.skipInlineWS()
	var cParams []ast.Param
	if p.matchKeyword("using") {
		p.skipInlineWS()
		var err error
		cParams, err = p.parseParams()
		if err != nil {
			return nil, err
		}
	}
	p.skipWS()
	var content *ast.Block
	if p.sc.Peek() == '{' {
		b, err := p.parseBracedBlock()
		if err != nil {
			return nil, err
		}
		content = b
	} else if err := p.sc.Expect(';'); err != nil {
		return nil, err
	}
	return ast.NewIncludeRule(p.span(start), name, ns, args, cParams, content), nil
}

func (p *Parser) parseContentRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	var args ast.ArgInvocation
	if p.sc.Peek() == '(' {
		var err error
		args, err = p.parseArgInvocation()
		if err != nil {
			return nil, err
		}
	}
	p.skipWS()
	if p.sc.Peek() == ';' {
		p.sc.Next()
	}
	return ast.NewContentRule(p.span(start), args), nil
}

func (p *Parser) parseReturnRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if p.sc.Peek() == ';' {
		p.sc.Next()
	}
	return ast.NewReturnRule(p.span(start), expr), nil
}

func (p *Parser) parseExtendRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	sel, err := p.parseInterpolatedUntil(func(r rune) bool { return r == ';' || r == '}' || r == '!' || r == 0 })
	if err != nil {
		return nil, err
	}
	p.skipWS()
	optional := false
	if p.sc.Peek() == '!' {
		save := p.sc.Mark()
		p.sc.Next()
		if p.matchKeyword("optional") {
			optional = true
		} else {
			p.sc.Reset(save)
		}
	}
	p.skipWS()
	if p.sc.Peek() == ';' {
		p.sc.Next()
	}
	return ast.NewExtendRule(p.span(start), sel, optional), nil
}

func (p *Parser) parseUseRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	url, err := p.parseQuotedLiteralText()
	if err != nil {
		return nil, err
	}
	p.skipInlineWS()
	ns := ""
	if p.matchKeyword("as") {
		p.skipInlineWS()
		if p.sc.Peek() == '*' {
			p.sc.Next()
			ns = "*"
		} else {
			ns = p.parseIdentDashes()
		}
		p.skipInlineWS()
	}
	config := map[string]ast.Expr{}
	if p.matchKeyword("with") {
		p.skipWS()
		if err := p.sc.Expect('('); err != nil {
			return nil, err
		}
		p.skipWS()
		for p.sc.Peek() != ')' {
			if err := p.sc.Expect('$'); err != nil {
				return nil, err
			}
			k := p.parseIdent()
			p.skipWS()
			if err := p.sc.Expect(':'); err != nil {
				return nil, err
			}
			p.skipWS()
			v, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			config[k] = v
			p.skipWS()
			if p.sc.Peek() == ',' {
				p.sc.Next()
				p.skipWS()
			}
		}
		p.sc.Next()
	}
	p.skipWS()
	if p.sc.Peek() == ';' {
		p.sc.Next()
	}
	return ast.NewUseRule(p.span(start), url, ns, config), nil
}

func (p *Parser) parseForwardRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	url, err := p.parseQuotedLiteralText()
	if err != nil {
		return nil, err
	}
	p.skipInlineWS()
	prefix := ""
	if p.matchKeyword("as") {
		p.skipInlineWS()
		prefix = p.parseIdentDashes()
		if p.sc.Match("*") {
		}
		p.skipInlineWS()
	}
	var show, hide []string
	if p.matchKeyword("show") {
		show = p.parseIdentListDollarOk()
	} else if p.matchKeyword("hide") {
		hide = p.parseIdentListDollarOk()
	}
	config := map[string]ast.Expr{}
	if p.matchKeyword("with") {
		p.skipWS()
		p.sc.Expect('(')
		p.skipWS()
		for p.sc.Peek() != ')' {
			p.sc.Expect('$')
			k := p.parseIdent()
			p.skipWS()
			p.sc.Expect(':')
			p.skipWS()
			v, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			config[k] = v
			p.skipWS()
			if p.sc.Peek() == ',' {
				p.sc.Next()
				p.skipWS()
			}
		}
		p.sc.Next()
	}
	p.skipWS()
	if p.sc.Peek() == ';' {
		p.sc.Next()
	}
	return ast.NewForwardRule(p.span(start), url, prefix, show, hide, config), nil
}

func (p *Parser) parseIdentListDollarOk() []string {
	var out []string
	p.skipInlineWS()
	for {
		if p.sc.Peek() == '$' {
			p.sc.Next()
		}
		out = append(out, p.parseIdentDashes())
		p.skipInlineWS()
		if p.sc.Peek() != ',' {
			break
		}
		p.sc.Next()
		p.skipInlineWS()
	}
	return out
}

func (p *Parser) parseImportRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	var entries []ast.ImportEntry
	for {
		url, err := p.parseQuotedLiteralText()
		if err != nil {
			return nil, err
		}
		if isPlainCSSImport(url) {
			p.skipInlineWS()
			var media *ast.Interpolation
			if p.sc.Peek() != ',' && p.sc.Peek() != ';' && p.sc.Peek() != '}' {
				m, err := p.parseInterpolatedUntil(func(r rune) bool { return r == ',' || r == ';' || r == '}' || r == 0 })
				if err != nil {
					return nil, err
				}
				media = m
			}
			urlInterp := ast.NewInterpolation(p.span(start), []ast.InterpolationPart{{Literal: url}})
			entries = append(entries, ast.ImportEntry{Static: &ast.StaticImport{URL: urlInterp, Media: media}})
		} else {
			entries = append(entries, ast.ImportEntry{Dynamic: &ast.DynamicImport{URL: url}})
		}
		p.skipInlineWS()
		if p.sc.Peek() != ',' {
			break
		}
		p.sc.Next()
		p.skipInlineWS()
	}
	p.skipWS()
	if p.sc.Peek() == ';' {
		p.sc.Next()
	}
	return ast.NewImportRule(p.span(start), entries), nil
}

func isPlainCSSImport(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "//") || strings.HasSuffix(url, ".css") ||
		strings.HasPrefix(url, "url(")
}

func (p *Parser) parseMediaRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	queries, err := p.parseInterpolatedUntil(func(r rune) bool { return r == '{' || r == 0 })
	if err != nil {
		return nil, err
	}
	p.skipWS()
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewMediaRule(p.span(start), queries, body), nil
}

func (p *Parser) parseSupportsRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	cond, err := p.parseInterpolatedUntil(func(r rune) bool { return r == '{' || r == 0 })
	if err != nil {
		return nil, err
	}
	p.skipWS()
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewSupportsRule(p.span(start), cond, body), nil
}

func (p *Parser) parseAtRootRule(start scanner.State) (ast.Stmt, error) {
	p.skipInlineWS()
	var q ast.AtRootQuery
	if p.sc.Peek() == '(' {
		p.sc.Next()
		p.skipWS()
		q.HasQuery = true
		if p.matchKeyword("with") {
			q.With = true
		} else if p.matchKeyword("without") {
			q.With = false
		}
		p.skipWS()
		if p.sc.Peek() == ':' {
			p.sc.Next()
			p.skipWS()
			q.Names = p.parseIdentListDollarOk()
		}
		p.skipWS()
		p.sc.Expect(')')
		p.skipInlineWS()
	}
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewAtRootRule(p.span(start), q, body), nil
}

func (p *Parser) parseKeyframesRule(start scanner.State, atName string) (ast.Stmt, error) {
	prefix := ""
	if atName != "keyframes" {
		prefix = strings.TrimSuffix(atName, "keyframes")
	}
	p.skipInlineWS()
	name, err := p.parseInterpolatedUntil(func(r rune) bool { return r == '{' || r == 0 })
	if err != nil {
		return nil, err
	}
	p.skipWS()
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewKeyframesRule(p.span(start), prefix, name, body), nil
}

// parseGenericAtRule handles every at-rule this front end has no typed
// node for (@charset, @font-face, @page, @namespace, vendor at-rules,
// ...), preserving it verbatim per §4.1.
func (p *Parser) parseGenericAtRule(start scanner.State, name string) (ast.Stmt, error) {
	p.skipInlineWS()
	var value *ast.Interpolation
	if p.sc.Peek() != '{' && p.sc.Peek() != ';' && p.sc.Peek() != '}' && !p.sc.AtEnd() {
		v, err := p.parseInterpolatedUntil(func(r rune) bool { return r == '{' || r == ';' || r == '}' || r == 0 })
		if err != nil {
			return nil, err
		}
		value = v
	}
	p.skipWS()
	if p.sc.Peek() == '{' {
		body, err := p.parseBracedBlock()
		if err != nil {
			return nil, err
		}
		return ast.NewAtRule(p.span(start), name, value, body, false), nil
	}
	if p.sc.Peek() == ';' {
		p.sc.Next()
	}
	return ast.NewAtRule(p.span(start), name, value, nil, true), nil
}

func (p *Parser) parseBracedBlock() (*ast.Block, error) {
	if err := p.sc.Expect('{'); err != nil {
		return nil, err
	}
	body, err := p.parseStmts(false)
	if err != nil {
		return nil, err
	}
	if err := p.sc.Expect('}'); err != nil {
		return nil, err
	}
	return body, nil
}

// parseDeclarationOrStyleRule resolves the central ambiguity of §4.1:
// `foo: bar` is a declaration, `foo:hover { ... }` is a selector. We
// speculatively try the declaration grammar first (colon immediately
// followed by whitespace/value, no nested selector-only tokens) and
// fall back to the full selector parse on any mismatch, restoring the
// scanner each time rather than unwinding via panics.
func (p *Parser) parseDeclarationOrStyleRule() (ast.Stmt, error) {
	start := p.sc.Mark()
	if decl, ok, err := p.tryParseDeclaration(start); ok {
		return decl, err
	}
	p.sc.Reset(start)
	return p.parseStyleRule(start)
}

func (p *Parser) tryParseDeclaration(start scanner.State) (ast.Stmt, bool, error) {
	if p.sc.Peek() == '$' {
		return p.parseVariableAssign(start)
	}
	save := p.sc.Mark()
	name, ok := p.tryDeclarationName()
	if !ok {
		p.sc.Reset(save)
		return nil, false, nil
	}
	spacedColon := isWhitespace(p.sc.Peek())
	p.skipInlineWS()
	if p.sc.Peek() == '{' {
		body, err := p.parseBracedBlock()
		if err != nil {
			return nil, true, err
		}
		return ast.NewDeclaration(p.span(start), name, nil, body), true, nil
	}
	value, err := p.ParseExpr()
	if err != nil {
		p.sc.Reset(save)
		return nil, false, nil
	}
	p.skipWS()
	var body *ast.Block
	if p.sc.Peek() == '{' {
		if !spacedColon {
			// `a:hover { ... }`: no space after the colon, so a selector.
			p.sc.Reset(save)
			return nil, false, nil
		}
		b, err := p.parseBracedBlock()
		if err != nil {
			return nil, true, err
		}
		body = b
	} else {
		if p.sc.Peek() == ';' {
			p.sc.Next()
		} else if p.sc.Peek() != '}' && !p.sc.AtEnd() {
			p.sc.Reset(save)
			return nil, false, nil
		}
	}
	return ast.NewDeclaration(p.span(start), name, value, body), true, nil
}

// tryDeclarationName scans `ident-with-interpolation :` (a single colon,
// never `::`). Whether whitespace follows the colon is left to
// tryParseDeclaration, which needs it only before a nested-property block.
func (p *Parser) tryDeclarationName() (*ast.Interpolation, bool) {
	if !isIdentStart(p.sc.Peek()) && p.sc.Peek() != '-' && !(p.sc.Peek() == '#' && p.sc.PeekAt(1) == '{') {
		return nil, false
	}
	name := p.parseIdentWithInterpolation()
	if p.sc.Peek() != ':' || p.sc.PeekAt(1) == ':' {
		return nil, false
	}
	p.sc.Next()
	return name, true
}

func (p *Parser) parseVariableAssign(start scanner.State) (ast.Stmt, bool, error) {
	save := p.sc.Mark()
	p.sc.Next() // $
	name := p.parseIdentDashes()
	ns := ""
	if p.sc.Peek() == '.' {
		p.sc.Next()
		ns = name
		name = p.parseIdentDashes()
	}
	p.skipInlineWS()
	if p.sc.Peek() != ':' {
		p.sc.Reset(save)
		return nil, false, nil
	}
	p.sc.Next()
	p.skipWS()
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, true, err
	}
	guarded, global := false, false
	for {
		p.skipInlineWS()
		if p.sc.Peek() != '!' {
			break
		}
		save2 := p.sc.Mark()
		p.sc.Next()
		if p.matchKeyword("default") {
			guarded = true
			continue
		}
		if p.matchKeyword("global") {
			global = true
			continue
		}
		p.sc.Reset(save2)
		break
	}
	p.skipWS()
	if p.sc.Peek() == ';' {
		p.sc.Next()
	}
	return ast.NewAssignRule(p.span(start), name, ns, expr, guarded, global), true, nil
}

func (p *Parser) parseStyleRule(start scanner.State) (ast.Stmt, error) {
	sel, err := p.parseInterpolatedUntil(func(r rune) bool { return r == '{' || r == 0 })
	if err != nil {
		return nil, err
	}
	p.skipWS()
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewStyleRule(p.span(start), sel, body), nil
}

func (p *Parser) parseIdentDashes() string {
	start := p.sc.Pos()
	p.sc.ScanWhile(isIdentChar)
	return p.sc.Src.Text[start:p.sc.Pos()]
}

// parseQuotedLiteralText reads a `"..."`/`'...'` string with no
// interpolation support (URLs in @use/@import/@forward never interpolate).
func (p *Parser) parseQuotedLiteralText() (string, error) {
	if p.sc.Peek() != '"' && p.sc.Peek() != '\'' {
		return "", p.errorf("expected string")
	}
	quote := p.sc.Next()
	start := p.sc.Pos()
	for {
		if p.sc.AtEnd() {
			return "", p.errorf("unterminated string")
		}
		r := p.sc.Next()
		if r == quote {
			return p.sc.Src.Text[start : p.sc.Pos()-1], nil
		}
	}
}
