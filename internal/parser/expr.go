package parser

import (
	"strconv"

	"hotreload/internal/ast"
	"hotreload/internal/diag"
	"hotreload/internal/token"
)

// parseExpr is the grammar's sole entry point: additive is the lowest
// precedence level the DSL supports (§4.1 lists only "+ - * /").
func (p *Parser) parseExpr() (*ast.Expr, bool) {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() (*ast.Expr, bool) {
	lhs, ok := p.parseMultiplicative()
	if !ok {
		return nil, false
	}
	for p.at(token.Plus) || p.at(token.Minus) {
		op := ast.OpAdd
		if p.at(token.Minus) {
			op = ast.OpSub
		}
		p.advance()
		rhs, ok := p.parseMultiplicative()
		if !ok {
			return nil, false
		}
		lhs = &ast.Expr{Kind: ast.ExprBinary, Span: lhs.Span.Cover(rhs.Span), BinOp: op, Lhs: lhs, Rhs: rhs}
	}
	return lhs, true
}

func (p *Parser) parseMultiplicative() (*ast.Expr, bool) {
	lhs, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for p.at(token.Star) || p.at(token.Slash) {
		op := ast.OpMul
		if p.at(token.Slash) {
			op = ast.OpDiv
		}
		p.advance()
		rhs, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		lhs = &ast.Expr{Kind: ast.ExprBinary, Span: lhs.Span.Cover(rhs.Span), BinOp: op, Lhs: lhs, Rhs: rhs}
	}
	return lhs, true
}

// parseUnary handles prefix "+", "-", "++", "--", and "await".
func (p *Parser) parseUnary() (*ast.Expr, bool) {
	switch {
	case p.at(token.Minus):
		sp := p.advance().Span
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprPrefixUnary, Span: sp.Cover(operand.Span), UnOp: ast.OpNeg, Operand: operand}, true
	case p.at(token.Plus):
		sp := p.advance().Span
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprPrefixUnary, Span: sp.Cover(operand.Span), UnOp: ast.OpPos, Operand: operand}, true
	case p.at(token.PlusPlus):
		sp := p.advance().Span
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprPrefixUnary, Span: sp.Cover(operand.Span), UnOp: ast.OpInc, Operand: operand}, true
	case p.at(token.MinusMinus):
		sp := p.advance().Span
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprPrefixUnary, Span: sp.Cover(operand.Span), UnOp: ast.OpDec, Operand: operand}, true
	case p.at(token.KwAwait):
		sp := p.advance().Span
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprAwait, Span: sp.Cover(operand.Span), Awaited: operand}, true
	default:
		return p.parsePostfix()
	}
}

// parsePostfix handles trailing "++" and "--".
func (p *Parser) parsePostfix() (*ast.Expr, bool) {
	e, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for p.at(token.PlusPlus) || p.at(token.MinusMinus) {
		op := ast.OpInc
		if p.at(token.MinusMinus) {
			op = ast.OpDec
		}
		sp := p.advance().Span
		e = &ast.Expr{Kind: ast.ExprPostfixUnary, Span: e.Span.Cover(sp), UnOp: op, Operand: e}
	}
	return e, true
}

func (p *Parser) parsePrimary() (*ast.Expr, bool) {
	switch {
	case p.at(token.NumberLit):
		tok := p.advance()
		n, err := strconv.ParseInt(tok.Text, 10, 32)
		if err != nil {
			p.report(diag.LowUnsupportedExpr, tok.Span, "numeric literal out of range for a 32-bit integer")
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprNumberLit, Span: tok.Span, NumberValue: int32(n)}, true

	case p.at(token.KwTrue):
		tok := p.advance()
		return &ast.Expr{Kind: ast.ExprBoolLit, Span: tok.Span, BoolValue: true}, true

	case p.at(token.KwFalse):
		tok := p.advance()
		return &ast.Expr{Kind: ast.ExprBoolLit, Span: tok.Span, BoolValue: false}, true

	case p.at(token.KwSelf):
		start := p.advance().Span
		if _, ok := p.expect(token.Dot, diag.ValBadSelfAccess, "'self' must be followed by '.' and a member name"); !ok {
			return nil, false
		}
		nameTok, ok := p.expect(token.Ident, diag.ValBadSelfAccess, "expected member name after 'self.'")
		if !ok {
			return nil, false
		}
		e := &ast.Expr{Kind: ast.ExprSelf, Span: start.Cover(nameTok.Span), Name: nameTok.Text}
		return p.maybeCall(e, nameTok.Text)

	case p.at(token.Ident):
		tok := p.advance()
		e := &ast.Expr{Kind: ast.ExprIdent, Span: tok.Span, Name: tok.Text}
		return p.maybeCall(e, tok.Text)

	case p.at(token.LParen):
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close parenthesized expression"); !ok {
			return nil, false
		}
		return inner, true

	default:
		p.report(diag.SynUnexpectedToken, p.lx.Peek().Span, "expected an expression")
		return nil, false
	}
}

// maybeCall rewrites base into an ExprCall if it's immediately followed by
// an argument list; callee is always a bare identifier (§4.1).
func (p *Parser) maybeCall(base *ast.Expr, callee string) (*ast.Expr, bool) {
	if !p.at(token.LParen) {
		return base, true
	}
	p.advance()
	var args []*ast.Expr
	if !p.at(token.RParen) {
		for {
			a, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			args = append(args, a)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	end, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close call arguments")
	if !ok {
		return nil, false
	}
	return &ast.Expr{Kind: ast.ExprCall, Span: base.Span.Cover(end.Span), Callee: callee, Args: args}, true
}
