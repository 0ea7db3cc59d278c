package ast

import "github.com/bas2js/bas2js/internal/lexer"

type Expr interface {
	ExprNode()
}

type Ident struct {
	Name string
}

// NumberLit keeps the source spelling verbatim, including the VB6 &H hex
// and & octal prefixes.
type NumberLit struct {
	Value string
}

type StringLit struct {
	Value string
}

type DateLit struct {
	Value string
}

type BoolLit struct {
	Value bool
}

type NothingLit struct{}

type EmptyLit struct{}

type UnaryExpr struct {
	Op      lexer.TokenKind
	Operand Expr
}

type BinaryExpr struct {
	Op    lexer.TokenKind
	Left  Expr
	Right Expr
}

type CallExpr struct {
	Target Expr
	Args   []Expr
}

type MemberExpr struct {
	Target Expr
	Member string
}

type ParenExpr struct {
	Inner Expr
}

func (i *Ident) ExprNode()      {}
func (n *NumberLit) ExprNode()  {}
func (s *StringLit) ExprNode()  {}
func (d *DateLit) ExprNode()    {}
func (b *BoolLit) ExprNode()    {}
func (n *NothingLit) ExprNode() {}
func (e *EmptyLit) ExprNode()   {}
func (u *UnaryExpr) ExprNode()  {}
func (b *BinaryExpr) ExprNode() {}
func (c *CallExpr) ExprNode()   {}
func (m *MemberExpr) ExprNode() {}
func (p *ParenExpr) ExprNode()  {}
