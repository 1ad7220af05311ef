package lexer

import (
	"hotreload/internal/diag"
	"hotreload/internal/source"
)

// ReporterAdapter adapts a diag.Bag into the lexer's minimal Reporter
// interface, tagging every lexical finding as diag.LexUnknownChar's
// family of codes.
type ReporterAdapter struct {
	Bag *diag.Bag
}

func (r *ReporterAdapter) Reporter() Reporter { return bagReporter{r.Bag} }

type bagReporter struct{ bag *diag.Bag }

func (b bagReporter) Report(kind string, sp source.Span, msg string) {
	if b.bag == nil {
		return
	}
	code := diag.LexUnknownChar
	switch kind {
	case "UnterminatedString":
		code = diag.LexUnterminatedString
	case "BadNumber":
		code = diag.LexBadNumber
	}
	b.bag.Add(diag.NewError(code, sp, msg))
}
