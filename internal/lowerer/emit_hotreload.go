package lowerer

import (
	"hotreload/internal/ast"
	"hotreload/internal/types"
)

// lowerUnit emits a single per-hotreload TU (§4.2.1): one externally-visible
// C-linkage function named after the method, with the validated parameter
// and return types.
func (l *lowerer) lowerUnit(m *ast.Method) Unit {
	sig := types.Signature(m)

	src := l.header + "\n" +
		"extern \"C\" " + functionHeader(m) + " " + l.emitBlock(m.Body, "")

	return Unit{Name: m.Name, Source: src, Signature: sig}
}

func functionHeader(m *ast.Method) string {
	h := types.CxxName(m.ReturnType) + " " + m.Name + "("
	for i, p := range m.Params {
		if i > 0 {
			h += ", "
		}
		h += types.CxxName(p.Type) + " " + p.Name
	}
	h += ")"
	return h
}
