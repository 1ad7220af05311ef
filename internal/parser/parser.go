// Package parser turns a token stream into an ast.Program. It implements
// only the restricted grammar of §4.1: a single class declaration, method
// members, and the narrow statement/expression subset the lowerer can emit.
package parser

import (
	"hotreload/internal/ast"
	"hotreload/internal/diag"
	"hotreload/internal/lexer"
	"hotreload/internal/source"
	"hotreload/internal/token"
)

// Options configures a parse.
type Options struct {
	Reporter diag.Reporter
}

// Result is the outcome of parsing one source file.
type Result struct {
	Program *ast.Program
	OK      bool
}

// Parser holds per-file parse state.
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	lastSpan source.Span
	errCount int
}

// ParseFile is the entry point: it parses file's token stream into an
// ast.Program. OK is false if the file does not contain a valid class
// declaration or if any syntax error was reported; Program may still hold
// the partially parsed class in that case.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := &Parser{lx: lx, opts: opts}
	prog, ok := p.parseProgram()
	return Result{Program: prog, OK: ok && p.errCount == 0}
}

func (p *Parser) at(k token.Kind) bool { return p.lx.Peek().Kind == k }

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.lx.Peek().Span
	p.report(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	p.errCount++
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
