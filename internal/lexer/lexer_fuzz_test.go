package lexer_test

import (
	"testing"

	"hotreload/internal/lexer"
	"hotreload/internal/source"
	"hotreload/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// FuzzLexerTokens asserts only that the lexer never panics and always
// terminates at EOF, regardless of input — it makes no claim about which
// tokens a malformed input produces.
func FuzzLexerTokens(f *testing.F) {
	f.Add([]byte("class Counter extends HotReloadProgram { main(): void { var i: number = 0; } }"))
	f.Add([]byte(""))
	f.Add([]byte("@@@ 0x 999999999999999999999999 // comment\n\"\x00"))

	f.Fuzz(func(_ *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}

		fs := source.NewFileSet()
		id := fs.AddVirtual("fuzz.hr", input)
		lx := lexer.New(fs.Get(id), lexer.Options{})

		for i := 0; i < maxFuzzInput+1; i++ {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				return
			}
		}
		f.Fatalf("lexer did not reach EOF within a bounded number of tokens")
	})
}
