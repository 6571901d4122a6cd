package parser

import (
	"strconv"

	"github.com/toakleaf/sass.go/internal/ast"
	"github.com/toakleaf/sass.go/internal/scanner"
	"github.com/toakleaf/sass.go/internal/value"
)

// ParseExpr parses one SassScript expression, honoring the precedence
// ladder of §4.3: or, and, equality, relational, additive, multiplicative,
// then unary/primary.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.parseListExpr()
}

// parseListExpr handles the top-level comma list (and space list within
// each comma-separated item), since a bare list is itself a valid
// expression (e.g. a function argument or a property value).
func (p *Parser) parseListExpr() (ast.Expr, error) {
	start := p.sc.Mark()
	first, err := p.parseSpaceList()
	if err != nil {
		return nil, err
	}
	items := []ast.Expr{first}
	for {
		p.skipWS()
		if p.sc.Peek() != ',' {
			break
		}
		p.sc.Next()
		p.skipWS()
		if p.atExprEnd() {
			break
		}
		item, err := p.parseSpaceList()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return ast.NewListExpression(p.span(start), items, value.SepComma, false), nil
}

func (p *Parser) atExprEnd() bool {
	p.skipWS()
	r := p.sc.Peek()
	return r == 0 || r == ';' || r == '{' || r == '}' || r == ')' || r == ']' || r == ','
}

func (p *Parser) parseSpaceList() (ast.Expr, error) {
	start := p.sc.Mark()
	first, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	items := []ast.Expr{first}
	for {
		save := p.sc.Mark()
		p.skipInlineWSOnly()
		if p.atExprEnd() || p.sc.Peek() == ':' {
			p.sc.Reset(save)
			break
		}
		if !startsExpr(p.sc.Peek()) {
			p.sc.Reset(save)
			break
		}
		item, err := p.parseOr()
		if err != nil {
			p.sc.Reset(save)
			break
		}
		items = append(items, item)
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return ast.NewListExpression(p.span(start), items, value.SepSpace, false), nil
}

func (p *Parser) skipInlineWSOnly() {
	p.sc.ScanWhile(func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' })
}

func startsExpr(r rune) bool {
	if r == 0 {
		return false
	}
	if isIdentStart(r) || isDigit(r) {
		return true
	}
	switch r {
	case '$', '(', '"', '\'', '#', '-', '+', '!', '%':
		return true
	}
	return false
}

func (p *Parser) parseOr() (ast.Expr, error) { return p.binaryLevel(0) }

var levelOps = [][2]string{
	{"or", ""},
	{"and", ""},
	{"==", "!="},
	{"<=", ">="}, // relational handled specially below (also plain < / >)
	{"+", "-"},
	{"*", "/"},
}

func (p *Parser) binaryLevel(level int) (ast.Expr, error) {
	if level == 3 {
		return p.parseRelational()
	}
	if level >= len(levelOps) {
		return p.parseUnary()
	}
	start := p.sc.Mark()
	lhs, err := p.binaryLevel(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		save := p.sc.Mark()
		p.skipWS()
		op, ok := p.matchOpWord(level)
		if !ok {
			p.sc.Reset(save)
			break
		}
		p.skipWS()
		rhs, err := p.binaryLevel(level + 1)
		if err != nil {
			return nil, err
		}
		bo := ast.NewBinaryOp(p.span(start), op, lhs, rhs)
		if op == ast.OpDiv {
			bo.PreserveSlash = p.parenDepth == 0 && isPlainSlashOperand(lhs) && isPlainSlashOperand(rhs)
		}
		lhs = bo
	}
	return lhs, nil
}

// isPlainSlashOperand reports whether e is a bare value — not itself the
// result of arithmetic or a parenthesized sub-expression — making it
// eligible to sit beside a `/` kept as slash shorthand rather than real
// division (e.g. the `12px` and `16px` in `font: 12px/16px`).
func isPlainSlashOperand(e ast.Expr) bool {
	switch e.(type) {
	case *ast.BinaryOp, *ast.UnaryOp, *ast.ParenExpr:
		return false
	default:
		return true
	}
}

func (p *Parser) matchOpWord(level int) (ast.BinOp, bool) {
	switch level {
	case 0:
		if p.matchKeyword("or") {
			return ast.OpOr, true
		}
	case 1:
		if p.matchKeyword("and") {
			return ast.OpAnd, true
		}
	case 2:
		if p.sc.Match("==") {
			return ast.OpEq, true
		}
		if p.sc.Match("!=") {
			return ast.OpNeq, true
		}
	case 4:
		if p.sc.Peek() == '+' && !p.isNextUnaryAmbiguous() {
			p.sc.Next()
			return ast.OpAdd, true
		}
		if p.sc.Peek() == '-' && p.sc.PeekAt(1) != '-' {
			p.sc.Next()
			return ast.OpSub, true
		}
	case 5:
		if p.sc.Peek() == '*' {
			p.sc.Next()
			return ast.OpMul, true
		}
		if p.sc.Peek() == '%' {
			p.sc.Next()
			return ast.OpMod, true
		}
		if p.sc.Peek() == '/' && p.sc.PeekAt(1) != '/' && p.sc.PeekAt(1) != '*' {
			p.sc.Next()
			return ast.OpDiv, true
		}
	}
	return 0, false
}

func (p *Parser) isNextUnaryAmbiguous() bool { return false }

func (p *Parser) matchKeyword(kw string) bool {
	save := p.sc.Mark()
	if !p.sc.Match(kw) {
		return false
	}
	if isIdentChar(p.sc.Peek()) {
		p.sc.Reset(save)
		return false
	}
	return true
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	start := p.sc.Mark()
	lhs, err := p.binaryLevel(4)
	if err != nil {
		return nil, err
	}
	for {
		save := p.sc.Mark()
		p.skipWS()
		var op ast.BinOp
		matched := true
		switch {
		case p.sc.Match("<="):
			op = ast.OpLte
		case p.sc.Match(">="):
			op = ast.OpGte
		case p.sc.Peek() == '<':
			p.sc.Next()
			op = ast.OpLt
		case p.sc.Peek() == '>':
			p.sc.Next()
			op = ast.OpGt
		default:
			matched = false
		}
		if !matched {
			p.sc.Reset(save)
			break
		}
		p.skipWS()
		rhs, err := p.binaryLevel(4)
		if err != nil {
			return nil, err
		}
		lhs = ast.NewBinaryOp(p.span(start), op, lhs, rhs)
	}
	return lhs, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	start := p.sc.Mark()
	if p.matchKeyword("not") {
		p.skipWS()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(p.span(start), ast.UnNot, operand), nil
	}
	switch p.sc.Peek() {
	case '-':
		p.sc.Next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(p.span(start), ast.UnNeg, operand), nil
	case '+':
		p.sc.Next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(p.span(start), ast.UnPlus, operand), nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	start := p.sc.Mark()
	switch r := p.sc.Peek(); {
	case r == '$':
		p.sc.Next()
		name := p.parseIdent()
		return ast.NewVariable(p.span(start), name, ""), nil
	case r == '(':
		return p.parseParenOrMap()
	case r == '"' || r == '\'':
		return p.parseQuotedString()
	case r == '#' && p.sc.PeekAt(1) == '{':
		return p.parseInterpolatedUntil(func(r rune) bool {
			return r == ';' || r == '{' || r == '}' || r == ')' || r == ',' || r == 0
		})
	case isDigit(r) || (r == '.' && isDigit(p.sc.PeekAt(1))):
		return p.parseNumber()
	case isIdentStart(r):
		return p.parseIdentOrCall()
	}
	return nil, p.errorf("expected expression")
}

func (p *Parser) parseParenOrMap() (ast.Expr, error) {
	start := p.sc.Mark()
	p.sc.Next() // (
	p.parenDepth++
	defer func() { p.parenDepth-- }()
	p.skipWS()
	if p.sc.Peek() == ')' {
		p.sc.Next()
		return ast.NewListExpression(p.span(start), nil, value.SepUndecided, false), nil
	}
	first, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if p.sc.Peek() == ':' {
		p.sc.Next()
		p.skipWS()
		return p.parseMapTail(start, first)
	}
	inner, err := p.finishListOrExpr(start, first)
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if err := p.sc.Expect(')'); err != nil {
		return nil, err
	}
	return ast.NewParenExpr(p.span(start), inner), nil
}

// parseMapTail parses the remainder of a `(k1: v1, k2: v2, ...)` map
// literal once the first `key:` has been recognized.
func (p *Parser) parseMapTail(start scanner.State, firstKey ast.Expr) (ast.Expr, error) {
	firstVal, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	pairs := []ast.MapPair{{Key: firstKey, Value: firstVal}}
	for {
		p.skipWS()
		if p.sc.Peek() != ',' {
			break
		}
		p.sc.Next()
		p.skipWS()
		if p.sc.Peek() == ')' {
			break
		}
		k, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		p.skipWS()
		if err := p.sc.Expect(':'); err != nil {
			return nil, err
		}
		p.skipWS()
		v, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ast.MapPair{Key: k, Value: v})
	}
	p.skipWS()
	if err := p.sc.Expect(')'); err != nil {
		return nil, err
	}
	return ast.NewMapExpression(p.span(start), pairs), nil
}

// finishListOrExpr continues parsing a parenthesized `(a, b, c)` list
// (comma-then-space precedence, same as the top level) once its first
// space-list item has been parsed.
func (p *Parser) finishListOrExpr(start scanner.State, first ast.Expr) (ast.Expr, error) {
	firstSpace, err := p.continueSpaceList(start, first)
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if p.sc.Peek() != ',' {
		return firstSpace, nil
	}
	items := []ast.Expr{firstSpace}
	brackets := false
	for p.sc.Peek() == ',' {
		p.sc.Next()
		p.skipWS()
		if p.sc.Peek() == ')' {
			break
		}
		item, err := p.parseSpaceList()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		p.skipWS()
	}
	return ast.NewListExpression(p.span(start), items, value.SepComma, brackets), nil
}

// continueSpaceList extends an already-parsed first operand into a
// space-separated list, mirroring parseSpaceList but starting from a value
// parsed one level up (used inside parens where the first token was
// consumed to check for a map key).
func (p *Parser) continueSpaceList(start scanner.State, first ast.Expr) (ast.Expr, error) {
	items := []ast.Expr{first}
	for {
		save := p.sc.Mark()
		p.skipInlineWSOnly()
		if p.atExprEnd() || p.sc.Peek() == ':' {
			p.sc.Reset(save)
			break
		}
		if !startsExpr(p.sc.Peek()) {
			p.sc.Reset(save)
			break
		}
		item, err := p.parseOr()
		if err != nil {
			p.sc.Reset(save)
			break
		}
		items = append(items, item)
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return ast.NewListExpression(p.span(start), items, value.SepSpace, false), nil
}

func (p *Parser) parseQuotedString() (ast.Expr, error) {
	start := p.sc.Mark()
	quote := p.sc.Next()
	var parts []ast.InterpolationPart
	var lit []rune
	flush := func() {
		if len(lit) > 0 {
			parts = append(parts, ast.InterpolationPart{Literal: string(lit)})
			lit = nil
		}
	}
	for {
		if p.sc.AtEnd() {
			return nil, p.errorf("unterminated string")
		}
		r := p.sc.Peek()
		if r == quote {
			p.sc.Next()
			break
		}
		if r == '\\' {
			p.sc.Next()
			esc := p.sc.Next()
			lit = append(lit, esc)
			continue
		}
		if r == '#' && p.sc.PeekAt(1) == '{' {
			flush()
			p.sc.Next()
			p.sc.Next()
			exprStart := p.sc.Mark()
			text, err := p.readBalanced('}')
			if err != nil {
				return nil, err
			}
			_ = exprStart
			scratchSrc := p.set.Add(p.sc.Src.URL, text, p.sc.Src.Syntax)
			sub := &Parser{sc: scanner.New(scratchSrc), set: p.set}
			expr, err := sub.ParseExpr()
			if err != nil {
				return nil, err
			}
			parts = append(parts, ast.InterpolationPart{Expr: expr})
			continue
		}
		lit = append(lit, r)
		p.sc.Next()
	}
	flush()
	if len(parts) == 1 && parts[0].Expr == nil {
		return ast.NewLiteral(p.span(start), value.NewString(parts[0].Literal, true)), nil
	}
	if len(parts) == 0 {
		return ast.NewLiteral(p.span(start), value.NewString("", true)), nil
	}
	return ast.NewQuotedInterpolation(p.span(start), parts), nil
}

func (p *Parser) parseNumber() (ast.Expr, error) {
	start := p.sc.Mark()
	numStart := p.sc.Pos()
	p.sc.ScanWhile(isDigit)
	if p.sc.Peek() == '.' && isDigit(p.sc.PeekAt(1)) {
		p.sc.Next()
		p.sc.ScanWhile(isDigit)
	}
	if (p.sc.Peek() == 'e' || p.sc.Peek() == 'E') && (isDigit(p.sc.PeekAt(1)) || ((p.sc.PeekAt(1) == '+' || p.sc.PeekAt(1) == '-') && isDigit(p.sc.PeekAt(2)))) {
		p.sc.Next()
		if p.sc.Peek() == '+' || p.sc.Peek() == '-' {
			p.sc.Next()
		}
		p.sc.ScanWhile(isDigit)
	}
	numText := p.sc.Src.Text[numStart:p.sc.Pos()]
	v, _ := strconv.ParseFloat(numText, 64)
	unitStart := p.sc.Pos()
	if p.sc.Peek() == '%' {
		p.sc.Next()
		return ast.NewLiteral(p.span(start), value.NewNumber(v, value.SingleUnit("%"))), nil
	}
	if isIdentStart(p.sc.Peek()) {
		p.sc.ScanWhile(isIdentChar)
	}
	unit := p.sc.Src.Text[unitStart:p.sc.Pos()]
	return ast.NewLiteral(p.span(start), value.NewNumber(v, value.SingleUnit(unit))), nil
}

// parseIdentOrCall parses a bare identifier, which may turn out to be a
// keyword literal (true/false/null), a function call `name(...)`, a
// namespaced reference `ns.name`, or a plain CSS identifier/keyword value.
func (p *Parser) parseIdentOrCall() (ast.Expr, error) {
	start := p.sc.Mark()
	name := p.parseIdentWithInterpolation()
	switch name.PlainText() {
	case "true":
		if name.IsPlainText() {
			return ast.NewLiteral(p.span(start), value.Boolean(true)), nil
		}
	case "false":
		if name.IsPlainText() {
			return ast.NewLiteral(p.span(start), value.Boolean(false)), nil
		}
	case "null":
		if name.IsPlainText() {
			return ast.NewLiteral(p.span(start), value.NullValue), nil
		}
	}
	if p.sc.Peek() == '.' && name.IsPlainText() {
		save := p.sc.Mark()
		p.sc.Next()
		if p.sc.Peek() == '$' {
			p.sc.Next()
			varName := p.parseIdent()
			return ast.NewVariable(p.span(start), varName, name.PlainText()), nil
		}
		if isIdentStart(p.sc.Peek()) {
			fnName := p.parseIdent()
			if p.sc.Peek() == '(' {
				args, err := p.parseArgInvocation()
				if err != nil {
					return nil, err
				}
				return ast.NewFunctionCall(p.span(start), fnName, name.PlainText(), args), nil
			}
		}
		p.sc.Reset(save)
	}
	if p.sc.Peek() == '(' && name.IsPlainText() {
		args, err := p.parseArgInvocation()
		if err != nil {
			return nil, err
		}
		if name.PlainText() == "if" {
			if len(args.Positional) == 3 {
				return ast.NewIfExpression(p.span(start), args.Positional[0], args.Positional[1], args.Positional[2]), nil
			}
		}
		return ast.NewFunctionCall(p.span(start), name.PlainText(), "", args), nil
	}
	if name.IsPlainText() {
		return ast.NewLiteral(p.span(start), value.NewString(name.PlainText(), false)), nil
	}
	return ast.NewQuotedInterpolation(p.span(start), name.Parts), nil
}

// parseIdentWithInterpolation parses a CSS identifier that may itself
// contain `#{}` segments (e.g. `.icon-#{$name}`), returning the pieces as
// an Interpolation even when there turns out to be no `#{}` at all.
func (p *Parser) parseIdentWithInterpolation() *ast.Interpolation {
	start := p.sc.Mark()
	var parts []ast.InterpolationPart
	var lit []rune
	flush := func() {
		if len(lit) > 0 {
			parts = append(parts, ast.InterpolationPart{Literal: string(lit)})
			lit = nil
		}
	}
	for {
		r := p.sc.Peek()
		if r == '#' && p.sc.PeekAt(1) == '{' {
			flush()
			p.sc.Next()
			p.sc.Next()
			text, err := p.readBalanced('}')
			if err == nil {
				scratchSrc := p.set.Add(p.sc.Src.URL, text, p.sc.Src.Syntax)
				sub := &Parser{sc: scanner.New(scratchSrc), set: p.set}
				expr, exprErr := sub.ParseExpr()
				if exprErr == nil {
					parts = append(parts, ast.InterpolationPart{Expr: expr})
				}
			}
			continue
		}
		if isIdentChar(r) {
			lit = append(lit, r)
			p.sc.Next()
			continue
		}
		break
	}
	flush()
	return ast.NewInterpolation(p.span(start), parts)
}

// parseArgInvocation parses `(arg1, $kw: arg2, $rest...)`.
func (p *Parser) parseArgInvocation() (ast.ArgInvocation, error) {
	var inv ast.ArgInvocation
	inv.Keywords = map[string]ast.Expr{}
	p.sc.Next() // (
	p.skipWS()
	for p.sc.Peek() != ')' {
		if p.sc.AtEnd() {
			return inv, p.errorf("unterminated argument list")
		}
		save := p.sc.Mark()
		if p.sc.Peek() == '$' {
			p.sc.Next()
			kwName := p.parseIdent()
			p.skipWS()
			if p.sc.Peek() == ':' {
				p.sc.Next()
				p.skipWS()
				val, err := p.parseOr()
				if err != nil {
					return inv, err
				}
				inv.KeywordNames = append(inv.KeywordNames, kwName)
				inv.Keywords[kwName] = val
				p.skipWS()
				if p.sc.Peek() == ',' {
					p.sc.Next()
					p.skipWS()
				}
				continue
			}
			p.sc.Reset(save)
		}
		val, err := p.parseOr()
		if err != nil {
			return inv, err
		}
		p.skipWS()
		if p.sc.Match("...") {
			inv.Rest = val
			p.skipWS()
			if p.sc.Peek() == ',' {
				p.sc.Next()
				p.skipWS()
			}
			continue
		}
		inv.Positional = append(inv.Positional, val)
		p.skipWS()
		if p.sc.Peek() == ',' {
			p.sc.Next()
			p.skipWS()
		}
	}
	p.sc.Next() // )
	return inv, nil
}
