package validator

import (
	"hotreload/internal/ast"
	"hotreload/internal/diag"
)

// validateSelfAccess walks m's body looking for ExprSelf nodes the parser
// could not rewrite into a call. The only legal "self.x" form is an
// immediately-called method reference, which parsePrimary already folds
// into ExprCall; anything left as ExprSelf is a bare property access,
// which §4.1 forbids outright ("V ... forbids any other self-rooted
// access").
func (v *validator) validateSelfAccess(m *ast.Method) {
	if m.Body == nil {
		return
	}
	v.walkBlock(m.Body)
}

func (v *validator) walkBlock(b *ast.Block) {
	for _, s := range b.Stmts {
		v.walkStmt(s)
	}
}

func (v *validator) walkStmt(s *ast.Stmt) {
	if s == nil {
		return
	}
	switch s.Kind {
	case ast.StmtBlock:
		v.walkBlock(s.Block)
	case ast.StmtVarDecl:
		v.walkExpr(s.Init)
	case ast.StmtWhile:
		v.walkExpr(s.Cond)
		v.walkBlock(s.Body)
	case ast.StmtFor:
		v.walkStmt(s.ForInit)
		v.walkExpr(s.ForCond)
		v.walkStmt(s.ForPost)
		v.walkBlock(s.Body)
	case ast.StmtReturn:
		v.walkExpr(s.Value)
	case ast.StmtExpr:
		v.walkExpr(s.Expr)
	}
}

func (v *validator) walkExpr(e *ast.Expr) {
	if e == nil {
		return
	}
	switch e.Kind {
	case ast.ExprSelf:
		v.report(diag.ValBadSelfAccess, diag.SevFatal, e.Span,
			"self-rooted access must reference a method of this class, e.g. 'self.name()'")
	case ast.ExprCall:
		for _, a := range e.Args {
			v.walkExpr(a)
		}
	case ast.ExprBinary:
		v.walkExpr(e.Lhs)
		v.walkExpr(e.Rhs)
	case ast.ExprPrefixUnary, ast.ExprPostfixUnary:
		v.walkExpr(e.Operand)
	case ast.ExprAwait:
		v.walkExpr(e.Awaited)
	}
}
