package parser_test

import (
	"testing"

	"hotreload/internal/ast"
	"hotreload/internal/lexer"
	"hotreload/internal/parser"
	"hotreload/internal/source"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hr", []byte(src))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	res := parser.ParseFile(lx, parser.Options{})
	if !res.OK {
		t.Fatalf("parse failed for:\n%s", src)
	}
	return res.Program
}

func TestParseMinimalProgram(t *testing.T) {
	prog := parse(t, `
class Counter extends HotReloadProgram {
  @reload
  scale(a: number): number {
    return a * 1;
  }

  main(): void {
    var i: number = 0;
    while (true) {
      print(scale(i));
      i++;
    }
  }
}`)

	if prog.ClassName != "Counter" || prog.BaseName != "HotReloadProgram" {
		t.Fatalf("unexpected class header: %+v", prog)
	}
	if len(prog.Methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(prog.Methods))
	}
	scale := prog.Methods[0]
	if scale.Name != "scale" || scale.Annotation == nil || scale.Annotation.Name != "reload" {
		t.Fatalf("unexpected scale method: %+v", scale)
	}
	main := prog.Methods[1]
	if main.Name != "main" || main.Annotation != nil {
		t.Fatalf("unexpected main method: %+v", main)
	}
}

func TestParseForLoopAllSlotsOptional(t *testing.T) {
	prog := parse(t, `
class P extends HotReloadProgram {
  main(): void {
    for (;;) {
      return;
    }
  }
}`)
	body := prog.Methods[0].Body.Stmts[0]
	if body.Kind != ast.StmtFor || body.ForInit != nil || body.ForCond != nil || body.ForPost != nil {
		t.Fatalf("expected bare for-loop, got %+v", body)
	}
}

func TestParseCallAndSelfAccess(t *testing.T) {
	prog := parse(t, `
class P extends HotReloadProgram {
  helper(): number {
    return 1;
  }
  main(): void {
    var x: number = self.helper();
  }
}`)
	decl := prog.Methods[1].Body.Stmts[0]
	if decl.Init.Kind != ast.ExprCall || decl.Init.Callee != "helper" {
		t.Fatalf("expected self.helper() to lower to a bare call, got %+v", decl.Init)
	}
}

func TestParseRejectsMissingReturnType(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("bad.hr", []byte(`
class P extends HotReloadProgram {
  main() {
    return;
  }
}`))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	res := parser.ParseFile(lx, parser.Options{})
	if res.OK {
		t.Fatal("expected parse failure for missing return type")
	}
}
