package ast

type Stmt interface {
	StmtNode()
}

type DimStmt struct {
	Name     string
	DataType string
}

type AssignStmt struct {
	Target Expr
	Value  Expr
}

type CallStmt struct {
	Target Expr
	Args   []Expr
}

// IfStmt holds one condition and its two branches. An ElseIf chain parses
// into a nested IfStmt as the sole statement of Else.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

type ForStmt struct {
	Var  string
	From Expr
	To   Expr
	Step Expr
	Body []Stmt
}

type WhileStmt struct {
	Cond Expr
	Body []Stmt
}

// DoStmt covers the five Do..Loop shapes. Cond is nil for the bare
// Do..Loop; Pre marks a condition written on the Do line rather than the
// Loop line; Until marks an inverted test.
type DoStmt struct {
	Cond  Expr
	Pre   bool
	Until bool
	Body  []Stmt
}

type ExitKind int

const (
	ExitSub ExitKind = iota
	ExitFunction
	ExitProperty
	ExitFor
	ExitDo
)

func (k ExitKind) String() string {
	switch k {
	case ExitSub:
		return "Sub"
	case ExitFunction:
		return "Function"
	case ExitProperty:
		return "Property"
	case ExitFor:
		return "For"
	case ExitDo:
		return "Do"
	}

	return "Sub"
}

type ExitStmt struct {
	What ExitKind
}

func (d *DimStmt) StmtNode()    {}
func (a *AssignStmt) StmtNode() {}
func (c *CallStmt) StmtNode()   {}
func (i *IfStmt) StmtNode()     {}
func (f *ForStmt) StmtNode()    {}
func (w *WhileStmt) StmtNode()  {}
func (d *DoStmt) StmtNode()     {}
func (e *ExitStmt) StmtNode()   {}
