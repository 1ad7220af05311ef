package lexer_test

import (
	"testing"

	"hotreload/internal/diag"
	"hotreload/internal/lexer"
	"hotreload/internal/source"
	"hotreload/internal/token"
)

type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(kind string, sp source.Span, msg string) {
	r.diagnostics = append(r.diagnostics, diag.NewError(diag.LexUnknownChar, sp, msg))
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.hr", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestLexerKeywordsAndIdents(t *testing.T) {
	lx, rep := makeTestLexer("class Counter extends HotReloadProgram { }")
	toks := collectAllTokens(lx)

	want := []token.Kind{
		token.KwClass, token.Ident, token.KwExtends, token.Ident,
		token.LBrace, token.RBrace, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v (%q)", i, toks[i].Kind, k, toks[i].Text)
		}
	}
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
	}
}

func TestLexerNumberAndOps(t *testing.T) {
	lx, _ := makeTestLexer("a = a + 1;\nb++;")
	toks := collectAllTokens(lx)
	want := []token.Kind{
		token.Ident, token.Assign, token.Ident, token.Plus, token.NumberLit, token.Semicolon,
		token.Ident, token.PlusPlus, token.Semicolon, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v (%q)", i, toks[i].Kind, k, toks[i].Text)
		}
	}
}

func TestLexerSkipsLineComments(t *testing.T) {
	lx, _ := makeTestLexer("// a comment\nvar x: number = 1;")
	toks := collectAllTokens(lx)
	if toks[0].Kind != token.KwVar {
		t.Fatalf("expected comment to be skipped, got first token %v", toks[0].Kind)
	}
}

func TestLexerUnknownCharReportsDiagnostic(t *testing.T) {
	lx, rep := makeTestLexer("var x = #;")
	_ = collectAllTokens(lx)
	if len(rep.diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(rep.diagnostics))
	}
	if rep.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("got code %v, want LexUnknownChar", rep.diagnostics[0].Code)
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("return 5;")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text {
		t.Fatalf("Peek/Next mismatch: %+v vs %+v", p, n)
	}
}
