// Package diag defines the diagnostic model shared by every pipeline phase:
// lexer, parser, validator, lowerer, compiler invoker, and watcher.
//
// Diagnostic carries a Severity (INFO/WARN/ERROR/FATAL, per spec §7), a
// Code, a human message, and a primary source span. Producers emit through
// a Reporter rather than writing to stderr directly; BagReporter collects
// into a Bag, which supports stable sorting for deterministic output.
//
// Rendering (colorized stderr lines) lives next to the driver, not here —
// this package stays free of formatting and I/O so it can be used from
// tests without a terminal.
package diag
