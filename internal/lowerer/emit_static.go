package lowerer

import "hotreload/internal/ast"

// emitStatic renders a non-reloadable, non-main method as a free function.
// C linkage is not required here (§4.2): only reloadable functions need a
// stable external symbol name for dlsym.
func (l *lowerer) emitStatic(m *ast.Method) string {
	return functionHeader(m) + " " + l.emitBlock(m.Body, "")
}
