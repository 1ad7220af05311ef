package diag

import (
	"hotreload/internal/source"
)

// Note attaches a secondary span and message to a Diagnostic, for example
// pointing at the previous signature of a hot-reload function that a
// rejected edit tried to change.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the unit every phase (lexer, parser, validator, lowerer,
// compiler invoker, watcher) reports through. There is no Fix/autofix
// machinery here — this system has no `--fix` surface to apply one.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
