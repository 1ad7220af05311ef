package lowerer_test

import (
	"strings"
	"testing"

	"hotreload/internal/artifact"
	"hotreload/internal/lexer"
	"hotreload/internal/lowerer"
	"hotreload/internal/parser"
	"hotreload/internal/source"
	"hotreload/internal/validator"
)

const program = `
class Counter extends HotReloadProgram {
  @reload
  scale(a: number): number {
    return a * 1;
  }

  helper(a: number): number {
    return a + 1;
  }

  main(): void {
    var i: number = 0;
    while (true) {
      print(scale(helper(i)));
      i++;
    }
  }
}`

func buildOutput(t *testing.T) lowerer.Output {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hr", []byte(program))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	pres := parser.ParseFile(lx, parser.Options{})
	if !pres.OK {
		t.Fatal("parse failed")
	}
	vres := validator.Validate(pres.Program, nil)
	if !vres.OK {
		t.Fatal("validate failed")
	}

	mgr, err := artifact.New()
	if err != nil {
		t.Fatalf("artifact.New: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })

	paths := map[string]artifact.Paths{}
	for _, u := range vres.Units {
		paths[u.Name] = mgr.PathsFor(u.Name)
	}

	out, err := lowerer.Lower(pres.Program, vres, paths)
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	return out
}

func TestLowerProducesOneUnitPerReloadableMethod(t *testing.T) {
	out := buildOutput(t)
	if len(out.Units) != 1 || out.Units[0].Name != "scale" {
		t.Fatalf("expected 1 unit 'scale', got %+v", out.Units)
	}
	if !strings.Contains(out.Units[0].Source, `extern "C" int32_t scale(int32_t a)`) {
		t.Fatalf("unit source missing expected C-linkage signature:\n%s", out.Units[0].Source)
	}
}

func TestLowerCallSiteRewrite(t *testing.T) {
	out := buildOutput(t)
	if !strings.Contains(out.MainSource, "scale.get()(helper(i))") {
		t.Fatalf("expected reloadable call rewritten through .get(), static call direct; got:\n%s", out.MainSource)
	}
}

func TestLowerEmitsHotReloadInstance(t *testing.T) {
	out := buildOutput(t)
	if !strings.Contains(out.MainSource, "hotreload_runtime::HotReload<int32_t(int32_t)> scale(") {
		t.Fatalf("expected HotReload instance declaration for scale, got:\n%s", out.MainSource)
	}
}

func TestLowerDeterministicGivenFixedPaths(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hr", []byte(program))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	pres := parser.ParseFile(lx, parser.Options{})
	vres := validator.Validate(pres.Program, nil)

	paths := map[string]artifact.Paths{
		"scale": {Src: "/tmp/scale.src", Lib: "/tmp/scale.lib", Copy: "/tmp/scale.copy", Lock: "/tmp/scale.lock"},
	}

	a, err := lowerer.Lower(pres.Program, vres, paths)
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	b, err := lowerer.Lower(pres.Program, vres, paths)
	if err != nil {
		t.Fatalf("Lower: %v", err)
	}
	if a.MainSource != b.MainSource {
		t.Fatal("expected byte-identical re-emission for an unchanged program and fixed paths (L7)")
	}
	for i := range a.Units {
		if a.Units[i].Source != b.Units[i].Source {
			t.Fatalf("unit %q not byte-identical across re-emission", a.Units[i].Name)
		}
	}
}
