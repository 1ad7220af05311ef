package lexer

import "hotreload/internal/token"

// scanNumber scans a run of decimal digits. The DSL's sole numeric type
// lowers to a 32-bit signed integer (§4.1), so there is no float, hex, or
// exponent syntax to recognize here.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
