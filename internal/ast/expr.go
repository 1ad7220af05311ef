package ast

import "hotreload/internal/source"

// ExprKind tags the admissible expression forms (§4.1).
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprIdent
	ExprNumberLit
	ExprBoolLit
	ExprCall
	ExprBinary
	ExprPrefixUnary
	ExprPostfixUnary
	ExprAwait
	ExprSelf // self.name not followed by a call; the validator rejects it
)

// BinaryOp is the set of supported binary operators.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// UnaryOp is the set of supported prefix/postfix unary operators.
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota // prefix -
	OpPos                // prefix +
	OpInc                // ++
	OpDec                // --
)

// Expr is one node of an expression tree.
type Expr struct {
	Kind ExprKind
	Span source.Span

	// ExprIdent, ExprSelf
	Name string

	// ExprNumberLit
	NumberValue int32

	// ExprBoolLit
	BoolValue bool

	// ExprCall
	Callee string
	Args   []*Expr

	// ExprBinary
	BinOp BinaryOp
	Lhs   *Expr
	Rhs   *Expr

	// ExprPrefixUnary, ExprPostfixUnary
	UnOp    UnaryOp
	Operand *Expr

	// ExprAwait
	Awaited *Expr
}
