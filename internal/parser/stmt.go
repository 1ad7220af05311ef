package parser

import (
	"hotreload/internal/ast"
	"hotreload/internal/diag"
	"hotreload/internal/token"
)

func (p *Parser) parseBlock() (*ast.Block, bool) {
	start, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return nil, false
	}
	block := &ast.Block{}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		s, ok := p.parseStmt()
		if !ok {
			p.resyncToStmtBoundary()
			continue
		}
		block.Stmts = append(block.Stmts, s)
	}
	end, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close block")
	if !ok {
		return nil, false
	}
	block.Span = start.Span.Cover(end.Span)
	return block, true
}

func (p *Parser) resyncToStmtBoundary() {
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			return
		}
		p.advance()
	}
}

func (p *Parser) parseStmt() (*ast.Stmt, bool) {
	switch {
	case p.at(token.LBrace):
		b, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return &ast.Stmt{Kind: ast.StmtBlock, Span: b.Span, Block: b}, true
	case p.at(token.KwVar):
		return p.parseVarDecl()
	case p.at(token.KwWhile):
		return p.parseWhile()
	case p.at(token.KwFor):
		return p.parseFor()
	case p.at(token.KwReturn):
		return p.parseReturn()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseVarDecl() (*ast.Stmt, bool) {
	s, ok := p.parseVarDeclNoSemi()
	if !ok {
		return nil, false
	}
	end, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after variable declaration")
	if !ok {
		return nil, false
	}
	s.Span = s.Span.Cover(end.Span)
	return s, true
}

// parseVarDeclNoSemi parses "var name[: type] = init" without consuming a
// trailing ';' — shared by statement-level declarations and the for-loop
// initializer slot.
func (p *Parser) parseVarDeclNoSemi() (*ast.Stmt, bool) {
	start := p.advance().Span // 'var'
	nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected variable name")
	if !ok {
		return nil, false
	}
	typ := ast.TypeInvalid
	if p.at(token.Colon) {
		p.advance()
		typ, ok = p.parseType()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "variable declaration requires an initializer"); !ok {
		return nil, false
	}
	init, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Stmt{
		Kind: ast.StmtVarDecl, Span: start.Cover(init.Span),
		VarName: nameTok.Text, VarType: typ, Init: init,
	}, true
}

func (p *Parser) parseWhile() (*ast.Stmt, bool) {
	start := p.advance().Span // 'while'
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'"); !ok {
		return nil, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after while condition"); !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.Stmt{Kind: ast.StmtWhile, Span: start.Cover(body.Span), Cond: cond, Body: body}, true
}

// parseFor parses "for (init?; cond?; post?) block", with all three header
// slots optional per §4.1.
func (p *Parser) parseFor() (*ast.Stmt, bool) {
	start := p.advance().Span // 'for'
	if _, ok := p.expect(token.LParen, diag.SynForBadHeader, "expected '(' after 'for'"); !ok {
		return nil, false
	}

	var init *ast.Stmt
	if !p.at(token.Semicolon) {
		var ok bool
		if p.at(token.KwVar) {
			init, ok = p.parseVarDeclNoSemi()
		} else {
			init, ok = p.parseExprStmtNoSemi()
		}
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after for-loop initializer"); !ok {
		return nil, false
	}

	var cond *ast.Expr
	if !p.at(token.Semicolon) {
		var ok bool
		cond, ok = p.parseExpr()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after for-loop condition"); !ok {
		return nil, false
	}

	var post *ast.Stmt
	if !p.at(token.RParen) {
		var ok bool
		post, ok = p.parseExprStmtNoSemi()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynForBadHeader, "expected ')' to close for-loop header"); !ok {
		return nil, false
	}

	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.Stmt{
		Kind: ast.StmtFor, Span: start.Cover(body.Span),
		ForInit: init, ForCond: cond, ForPost: post, Body: body,
	}, true
}

func (p *Parser) parseReturn() (*ast.Stmt, bool) {
	start := p.advance().Span // 'return'
	var val *ast.Expr
	if !p.at(token.Semicolon) {
		var ok bool
		val, ok = p.parseExpr()
		if !ok {
			return nil, false
		}
	}
	end, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return statement")
	if !ok {
		return nil, false
	}
	return &ast.Stmt{Kind: ast.StmtReturn, Span: start.Cover(end.Span), Value: val}, true
}

func (p *Parser) parseExprStmt() (*ast.Stmt, bool) {
	s, ok := p.parseExprStmtNoSemi()
	if !ok {
		return nil, false
	}
	end, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression statement")
	if !ok {
		return nil, false
	}
	s.Span = s.Span.Cover(end.Span)
	return s, true
}

// parseExprStmtNoSemi parses a bare expression statement without consuming
// its trailing ';' — used for the for-loop init/post slots.
func (p *Parser) parseExprStmtNoSemi() (*ast.Stmt, bool) {
	e, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Stmt{Kind: ast.StmtExpr, Span: e.Span, Expr: e}, true
}
