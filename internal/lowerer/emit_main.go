package lowerer

import (
	"fmt"
	"strings"

	"hotreload/internal/ast"
	"hotreload/internal/types"
	"hotreload/internal/validator"
)

// lowerMain emits the main TU (§4.2.2): the runtime header, every static
// method as a free function, a HotReload<Signature> instance per
// reloadable function bound to its file-path triplet, and finally main
// itself.
func (l *lowerer) lowerMain(prog *ast.Program, res validator.Result) string {
	var sb strings.Builder
	sb.WriteString(l.header)
	sb.WriteString("\n")

	for _, m := range res.Statics {
		sb.WriteString(l.emitStatic(m))
		sb.WriteString("\n")
	}

	for _, m := range res.Units {
		sb.WriteString(l.emitHotReloadInstance(m))
	}
	sb.WriteString("\n")

	sb.WriteString(l.emitMainFunction(res.Main))
	return sb.String()
}

func (l *lowerer) emitHotReloadInstance(m *ast.Method) string {
	p := l.paths[m.Name]
	sig := types.Signature(m)
	return fmt.Sprintf(
		"hotreload_runtime::HotReload<%s> %s(%q, %q, %q, %q);\n",
		sig, m.Name, m.Name, p.Lib, p.Copy, p.Lock,
	)
}

// emitMainFunction renders the validated main method as a real C++ main().
// main never carries C linkage requirements beyond the platform default.
func (l *lowerer) emitMainFunction(main *ast.Method) string {
	return "int main() " + l.emitBlock(main.Body, "")
}
