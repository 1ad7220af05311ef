package lexer

import (
	"hotreload/internal/source"
	"hotreload/internal/token"
)

// Lexer scans a single source.File into a token stream. It has no leading
// trivia model: the DSL's diagnostics never need to reproduce comments, and
// comments are skipped as whitespace.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
}

// New constructs a Lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), opts: opts}
}

// Next returns the next significant token. Past EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		sp := lx.emptySpan()
		return token.Token{Kind: token.EOF, Span: sp}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipTrivia consumes whitespace and line comments ("// ...").
func (lx *Lexer) skipTrivia() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
		case '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' || b1 != '/' {
				return
			}
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
