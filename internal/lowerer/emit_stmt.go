package lowerer

import (
	"strings"

	"hotreload/internal/ast"
	"hotreload/internal/types"
)

// emitBlock renders a block's statements, indented one level deeper than
// the caller's indent.
func (l *lowerer) emitBlock(b *ast.Block, indent string) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	inner := indent + "  "
	for _, s := range b.Stmts {
		sb.WriteString(l.emitStmt(s, inner))
	}
	sb.WriteString(indent + "}\n")
	return sb.String()
}

func (l *lowerer) emitStmt(s *ast.Stmt, indent string) string {
	switch s.Kind {
	case ast.StmtBlock:
		return indent + l.emitBlock(s.Block, indent)
	case ast.StmtVarDecl:
		return indent + l.emitVarDeclHeader(s) + " = " + l.emitExpr(s.Init) + ";\n"
	case ast.StmtWhile:
		return indent + "while (" + l.emitExpr(s.Cond) + ") " + l.emitBlock(s.Body, indent)
	case ast.StmtFor:
		return indent + l.emitFor(s, indent)
	case ast.StmtReturn:
		if s.Value == nil {
			return indent + "return;\n"
		}
		return indent + "return " + l.emitExpr(s.Value) + ";\n"
	case ast.StmtExpr:
		return indent + l.emitExpr(s.Expr) + ";\n"
	default:
		return indent + "/* unsupported statement */;\n"
	}
}

// emitVarDeclHeader renders "type name" for a var declaration. A local
// without an explicit type annotation lowers to "auto" (§4.2's tie-break);
// parameters and return types are never auto.
func (l *lowerer) emitVarDeclHeader(s *ast.Stmt) string {
	if s.VarType == ast.TypeInvalid {
		return "auto " + s.VarName
	}
	return types.CxxName(s.VarType) + " " + s.VarName
}

// emitFor renders a for-loop header with all three slots rendered
// bare-statement style (no trailing ';' duplication from emitStmt's block
// form, since the header itself supplies the separators).
func (l *lowerer) emitFor(s *ast.Stmt, indent string) string {
	var sb strings.Builder
	sb.WriteString("for (")
	if s.ForInit != nil {
		sb.WriteString(l.emitForClause(s.ForInit))
	}
	sb.WriteString("; ")
	if s.ForCond != nil {
		sb.WriteString(l.emitExpr(s.ForCond))
	}
	sb.WriteString("; ")
	if s.ForPost != nil {
		sb.WriteString(l.emitForClause(s.ForPost))
	}
	sb.WriteString(") ")
	sb.WriteString(l.emitBlock(s.Body, indent))
	return sb.String()
}

// emitForClause renders an init/post clause without its statement
// terminator, since the for-header supplies its own ';' separators.
func (l *lowerer) emitForClause(s *ast.Stmt) string {
	switch s.Kind {
	case ast.StmtVarDecl:
		return l.emitVarDeclHeader(s) + " = " + l.emitExpr(s.Init)
	case ast.StmtExpr:
		return l.emitExpr(s.Expr)
	default:
		return "/* unsupported for-clause */"
	}
}
