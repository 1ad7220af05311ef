package lexer

import "hotreload/internal/source"

// Reporter is a thin sink the lexer reports lexical errors through,
// kept free of the diag package so this package has no upward dependency.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Options configures a Lexer.
type Options struct {
	// Reporter may be nil, in which case lexical errors are swallowed and
	// scanning continues (the parser will fail on the resulting Invalid
	// tokens instead).
	Reporter Reporter
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
