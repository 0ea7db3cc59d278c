package ast

// Module is the compilation unit: one VB6 .bas module. The parser produces
// it once per compile and nothing mutates it afterwards.
type Module struct {
	Name         string
	Declarations []*Declaration
	Procedures   []*Procedure
	Types        []*UserDefinedType
}

type Visibility int

const (
	Private Visibility = iota
	Public
	Global
)

func (v Visibility) String() string {
	switch v {
	case Private:
		return "Private"
	case Public:
		return "Public"
	case Global:
		return "Global"
	}

	return "Private"
}

// Declaration is a module-level Dim/Const/Static binding. Value is the
// optional Const initializer, nil otherwise.
type Declaration struct {
	Name       string
	DataType   string
	Visibility Visibility
	Static     bool
	Const      bool
	Value      Expr
	Line       int
}

type ProcKind int

const (
	SubProc ProcKind = iota
	FunctionProc
	PropertyGetProc
	PropertyLetProc
	PropertySetProc
)

func (k ProcKind) String() string {
	switch k {
	case SubProc:
		return "Sub"
	case FunctionProc:
		return "Function"
	case PropertyGetProc:
		return "Property Get"
	case PropertyLetProc:
		return "Property Let"
	case PropertySetProc:
		return "Property Set"
	}

	return "Sub"
}

type Procedure struct {
	Name       string
	Kind       ProcKind
	Visibility Visibility
	Params     []Parameter
	ReturnType string
	Body       []Stmt
	Line       int
}

// Parameter passing defaults to ByRef in VB6 when unspecified. Default is
// the optional `Optional x As T = <expr>` value, nil otherwise.
type Parameter struct {
	Name     string
	DataType string
	ByVal    bool
	Optional bool
	Default  Expr
}

type UserDefinedType struct {
	Name   string
	Fields []TypeField
	Line   int
}

type TypeField struct {
	Name     string
	DataType string
}
