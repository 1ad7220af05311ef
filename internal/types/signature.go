// Package types maps ast.Type to the generated C++ surface and builds the
// canonical signature strings used for the hot-reload protocol's R1
// (signature stability) check.
package types

import (
	"strings"

	"hotreload/internal/ast"
)

// CxxName returns the C++ spelling of t as it appears in generated source.
// TypePromiseNumber collapses to "int32_t" per §4.1: "a return type
// Promise<number> is treated as number".
func CxxName(t ast.Type) string {
	switch t {
	case ast.TypeNumber, ast.TypePromiseNumber:
		return "int32_t"
	case ast.TypeVoid:
		return "void"
	default:
		return "<invalid>"
	}
}

// Signature builds the canonical return-and-parameter type string for m,
// e.g. "int32_t(int32_t,int32_t)". Two methods have the same Signature iff
// their lowered C-ABI shape is identical; the watcher compares this string
// across reloads to enforce R1.
func Signature(m *ast.Method) string {
	var b strings.Builder
	b.WriteString(CxxName(m.ReturnType))
	b.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(CxxName(p.Type))
	}
	b.WriteByte(')')
	return b.String()
}
