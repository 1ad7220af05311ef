// Package lowerer implements C: it turns a validated ast.Program into one
// per-hotreload TU per reloadable method and the main TU. It does not emit
// a build configuration: the compile commands are assembled by package
// compiler from its own flags and the artifact paths. Emission order is deterministic (§4.2's tie-break): static
// functions in source order, then hotreload wiring in source order, then
// main last.
package lowerer

import (
	"hotreload/internal/artifact"
	"hotreload/internal/ast"
	"hotreload/internal/runtimeembed"
	"hotreload/internal/validator"
)

// Unit is the lowered source for a single reloadable function.
type Unit struct {
	Name      string
	Source    string // the per-hotreload TU, ready to write to paths.Src
	Signature string
}

// Output is everything C produces from one validated program.
type Output struct {
	MainSource string
	Units      []Unit
}

// Lower emits MainSource and one Unit per res.Units, given the artifact
// paths A has already allocated for each reloadable function.
func Lower(prog *ast.Program, res validator.Result, paths map[string]artifact.Paths) (Output, error) {
	header, err := runtimeembed.Header()
	if err != nil {
		return Output{}, err
	}

	l := &lowerer{header: string(header), paths: paths}

	var units []Unit
	for _, m := range res.Units {
		units = append(units, l.lowerUnit(m))
	}

	main := l.lowerMain(prog, res)
	return Output{MainSource: main, Units: units}, nil
}

type lowerer struct {
	header string
	paths  map[string]artifact.Paths
}
