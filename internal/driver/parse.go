// Package driver orchestrates the whole pipeline L→V→C→A→K, launches the
// generated program, and hands off to W for the watch loop (§2, §5).
package driver

import (
	"hotreload/internal/ast"
	"hotreload/internal/diag"
	"hotreload/internal/lexer"
	"hotreload/internal/parser"
	"hotreload/internal/source"
)

// ParseResult is the outcome of L, bundled with the FileSet it parsed
// against so spans in later diagnostics can still be rendered.
type ParseResult struct {
	FileSet *source.FileSet
	Program *ast.Program
	Bag     *diag.Bag
	OK      bool
}

// Parse loads filePath and runs L over it, collecting diagnostics into a
// fresh Bag sized maxDiagnostics.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lexAdapter := &lexer.ReporterAdapter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: lexAdapter.Reporter()})
	pres := parser.ParseFile(lx, parser.Options{Reporter: reporter})

	return &ParseResult{FileSet: fs, Program: pres.Program, Bag: bag, OK: pres.OK}, nil
}
