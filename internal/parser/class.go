package parser

import (
	"hotreload/internal/ast"
	"hotreload/internal/diag"
	"hotreload/internal/token"
)

// parseProgram parses "class Name extends Base { method* }", per invariant
// P1: exactly one top-level class declaration.
func (p *Parser) parseProgram() (*ast.Program, bool) {
	start := p.lx.Peek().Span

	if _, ok := p.expect(token.KwClass, diag.SynUnexpectedToken, "expected a single top-level 'class' declaration"); !ok {
		return nil, false
	}
	nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected class name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwExtends, diag.SynUnexpectedToken, "expected 'extends'"); !ok {
		return nil, false
	}
	baseTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected base class name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); !ok {
		return nil, false
	}

	prog := &ast.Program{ClassName: nameTok.Text, BaseName: baseTok.Text}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		m, ok := p.parseMethod()
		if !ok {
			p.resyncToMethodBoundary()
			continue
		}
		prog.Methods = append(prog.Methods, m)
	}
	end, _ := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close class body")
	prog.Span = start.Cover(end.Span)
	return prog, true
}

// resyncToMethodBoundary skips tokens until the next plausible method start
// or the class's closing brace, so one malformed method does not cascade
// into spurious diagnostics for the rest of the class.
func (p *Parser) resyncToMethodBoundary() {
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.At) || p.at(token.Ident) {
			return
		}
		p.advance()
	}
}

func (p *Parser) parseMethod() (*ast.Method, bool) {
	start := p.lx.Peek().Span

	var annot *ast.Annotation
	if p.at(token.At) {
		atSp := p.advance().Span
		nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected annotation name after '@'")
		if !ok {
			return nil, false
		}
		annot = &ast.Annotation{Name: nameTok.Text, Span: atSp.Cover(nameTok.Span)}
	}

	nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected method name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after method name"); !ok {
		return nil, false
	}
	params, ok := p.parseParams()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close parameter list"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "method return type must be explicit"); !ok {
		return nil, false
	}
	retType, ok := p.parseType()
	if !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	return &ast.Method{
		Name:       nameTok.Text,
		Params:     params,
		ReturnType: retType,
		Annotation: annot,
		Body:       body,
		Span:       start.Cover(body.Span),
	}, true
}

func (p *Parser) parseParams() ([]ast.Param, bool) {
	var params []ast.Param
	if p.at(token.RParen) {
		return params, true
	}
	for {
		nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected parameter name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "parameter type must be explicit"); !ok {
			return nil, false
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		params = append(params, ast.Param{Name: nameTok.Text, Type: typ, Span: nameTok.Span})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return params, true
}

// parseType accepts only the DSL's closed type set (§4.1): "number",
// "void", or "Promise<number>".
func (p *Parser) parseType() (ast.Type, bool) {
	switch {
	case p.at(token.KwNumber):
		p.advance()
		return ast.TypeNumber, true
	case p.at(token.KwVoid):
		p.advance()
		return ast.TypeVoid, true
	case p.at(token.KwPromise):
		p.advance()
		if _, ok := p.expect(token.Lt, diag.SynUnexpectedToken, "expected '<' after 'Promise'"); !ok {
			return ast.TypeInvalid, false
		}
		if _, ok := p.expect(token.KwNumber, diag.SynUnexpectedToken, "Promise<T> only supports T = number"); !ok {
			return ast.TypeInvalid, false
		}
		if _, ok := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close 'Promise<number>'"); !ok {
			return ast.TypeInvalid, false
		}
		return ast.TypePromiseNumber, true
	default:
		p.report(diag.ValUnsupportedType, p.lx.Peek().Span, "unsupported type; only 'number', 'void', and 'Promise<number>' are allowed")
		return ast.TypeInvalid, false
	}
}
