package emitter

import (
	"fmt"
	"strings"

	"github.com/bas2js/bas2js/internal/ast"
	"github.com/bas2js/bas2js/internal/lexer"
)

const runtimeHeader = `"use strict";
// Generated from VB6 source. The VB6 runtime (Len, Mid, MsgBox, vbCrLf, ...)
// must be provided in the execution scope before this module runs.
`

// Emitter regenerates a Module tree as JavaScript. It never mutates the
// tree, and it is total over every statement shape the parser produces;
// anything else degrades to a comment marker instead of failing the
// compile.
type Emitter struct {
	sb     strings.Builder
	indent int

	// Name of the result variable while inside a Function or Property Get
	// body; VB6 returns by assigning to the procedure name.
	returnVar string
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) Emit(module *ast.Module) string {
	e.sb.Reset()
	e.indent = 0
	e.returnVar = ""

	e.writeLine(runtimeHeader)

	for _, udt := range module.Types {
		e.emitUserDefinedType(udt)
		e.writeLine("")
	}

	e.emitModuleClass(module)

	e.writeLine("")
	e.writeLine(fmt.Sprintf("module.exports = { %s };", module.Name))

	return e.sb.String()
}

func (e *Emitter) emitUserDefinedType(udt *ast.UserDefinedType) {
	e.writeLine(fmt.Sprintf("class %s {", udt.Name))
	e.indent++

	e.writeLine("constructor() {")
	e.indent++
	for _, field := range udt.Fields {
		e.writeLine(fmt.Sprintf("this.%s = %s;", field.Name, defaultValue(field.DataType)))
	}
	e.indent--
	e.writeLine("}")

	e.indent--
	e.writeLine("}")
}

func (e *Emitter) emitModuleClass(module *ast.Module) {
	e.writeLine(fmt.Sprintf("class %s {", module.Name))
	e.indent++

	e.writeLine("constructor() {")
	e.indent++
	for _, decl := range module.Declarations {
		value := defaultValue(decl.DataType)
		if decl.Const && decl.Value != nil {
			value = e.emitTopExpr(decl.Value)
		}
		e.writeLine(fmt.Sprintf("this.%s = %s;", decl.Name, value))
	}
	e.indent--
	e.writeLine("}")

	for _, proc := range module.Procedures {
		e.writeLine("")
		e.emitProcedure(proc)
	}

	e.indent--
	e.writeLine("}")
}

func (e *Emitter) emitProcedure(proc *ast.Procedure) {
	params := make([]string, len(proc.Params))
	for i, param := range proc.Params {
		switch {
		case param.Default != nil:
			params[i] = fmt.Sprintf("%s = %s", param.Name, e.emitTopExpr(param.Default))
		case param.Optional:
			params[i] = fmt.Sprintf("%s = null", param.Name)
		default:
			params[i] = param.Name
		}
	}
	paramList := strings.Join(params, ", ")

	switch proc.Kind {
	case ast.PropertyGetProc:
		e.writeLine(fmt.Sprintf("get %s() {", proc.Name))
	case ast.PropertyLetProc, ast.PropertySetProc:
		e.writeLine(fmt.Sprintf("set %s(%s) {", proc.Name, paramList))
	default:
		e.writeLine(fmt.Sprintf("%s(%s) {", proc.Name, paramList))
	}
	e.indent++

	usesReturnVar := proc.Kind == ast.FunctionProc || proc.Kind == ast.PropertyGetProc
	if usesReturnVar {
		e.returnVar = proc.Name
		e.writeLine(fmt.Sprintf("let %s = %s;", proc.Name, defaultValue(proc.ReturnType)))
	}

	for _, stmt := range proc.Body {
		e.emitStmt(stmt)
	}

	if usesReturnVar {
		e.writeLine(fmt.Sprintf("return %s;", proc.Name))
		e.returnVar = ""
	}

	e.indent--
	e.writeLine("}")
}

// Per-type default values. Anything not in the table, user-defined types
// included, defaults to null.
func defaultValue(dataType string) string {
	switch {
	case strings.EqualFold(dataType, "Boolean"):
		return "false"
	case strings.EqualFold(dataType, "Byte"),
		strings.EqualFold(dataType, "Integer"),
		strings.EqualFold(dataType, "Long"),
		strings.EqualFold(dataType, "Single"),
		strings.EqualFold(dataType, "Double"),
		strings.EqualFold(dataType, "Currency"):
		return "0"
	case strings.EqualFold(dataType, "String"):
		return "\"\""
	case strings.EqualFold(dataType, "Date"):
		return "new Date(0)"
	}

	return "null"
}

func (e *Emitter) emitStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.DimStmt:
		e.writeLine(fmt.Sprintf("let %s = %s;", s.Name, defaultValue(s.DataType)))

	case *ast.AssignStmt:
		e.writeLine(fmt.Sprintf("%s = %s;", e.emitExpr(s.Target), e.emitTopExpr(s.Value)))

	case *ast.CallStmt:
		e.writeLine(fmt.Sprintf("%s(%s);", e.emitExpr(s.Target), e.emitArgs(s.Args)))

	case *ast.IfStmt:
		e.emitIfStmt(s)

	case *ast.ForStmt:
		e.emitForStmt(s)

	case *ast.WhileStmt:
		e.writeLine(fmt.Sprintf("while (%s) {", e.emitTopExpr(s.Cond)))
		e.emitBody(s.Body)
		e.writeLine("}")

	case *ast.DoStmt:
		e.emitDoStmt(s)

	case *ast.ExitStmt:
		e.emitExitStmt(s)

	default:
		e.writeLine("/* unsupported statement */")
	}
}

func (e *Emitter) emitIfStmt(s *ast.IfStmt) {
	e.writeLine(fmt.Sprintf("if (%s) {", e.emitTopExpr(s.Cond)))
	e.emitBody(s.Then)

	// ElseIf chains nest as a single IfStmt in Else; flatten them back
	// into else-if for readable output.
	elseBody := s.Else
	for len(elseBody) == 1 {
		nested, ok := elseBody[0].(*ast.IfStmt)
		if !ok {
			break
		}

		e.writeLine(fmt.Sprintf("} else if (%s) {", e.emitTopExpr(nested.Cond)))
		e.emitBody(nested.Then)
		elseBody = nested.Else
	}

	if len(elseBody) > 0 {
		e.writeLine("} else {")
		e.emitBody(elseBody)
	}

	e.writeLine("}")
}

func (e *Emitter) emitForStmt(s *ast.ForStmt) {
	comparison := "<="
	if isNegativeConstant(s.Step) {
		// A constant negative Step counts down; VB6 then loops while the
		// counter is still >= the bound.
		comparison = ">="
	}

	step := "1"
	if s.Step != nil {
		step = e.emitTopExpr(s.Step)
	}

	e.writeLine(fmt.Sprintf("for (%s = %s; %s %s %s; %s += %s) {",
		s.Var, e.emitTopExpr(s.From),
		s.Var, comparison, e.emitTopExpr(s.To),
		s.Var, step))
	e.emitBody(s.Body)
	e.writeLine("}")
}

func (e *Emitter) emitDoStmt(s *ast.DoStmt) {
	switch {
	case s.Cond == nil:
		// Bare Do..Loop relies on an inner Exit Do.
		e.writeLine("while (true) {")
		e.emitBody(s.Body)
		e.writeLine("}")

	case s.Pre:
		cond := e.emitTopExpr(s.Cond)
		if s.Until {
			cond = fmt.Sprintf("!(%s)", cond)
		}
		e.writeLine(fmt.Sprintf("while (%s) {", cond))
		e.emitBody(s.Body)
		e.writeLine("}")

	default:
		cond := e.emitTopExpr(s.Cond)
		if s.Until {
			cond = fmt.Sprintf("!(%s)", cond)
		}
		e.writeLine("do {")
		e.emitBody(s.Body)
		e.writeLine(fmt.Sprintf("} while (%s);", cond))
	}
}

func (e *Emitter) emitExitStmt(s *ast.ExitStmt) {
	switch s.What {
	case ast.ExitFor, ast.ExitDo:
		e.writeLine("break;")
	case ast.ExitFunction, ast.ExitProperty:
		// Inside a Function or Property Get the result variable is live and
		// an early exit still yields it; Exit Property in a Let/Set has no
		// result variable and falls back to a bare return.
		if e.returnVar != "" {
			e.writeLine(fmt.Sprintf("return %s;", e.returnVar))
			return
		}
		e.writeLine("return;")
	default:
		e.writeLine("return;")
	}
}

func (e *Emitter) emitBody(body []ast.Stmt) {
	e.indent++
	for _, stmt := range body {
		e.emitStmt(stmt)
	}
	e.indent--
}

func isNegativeConstant(expr ast.Expr) bool {
	for {
		paren, ok := expr.(*ast.ParenExpr)
		if !ok {
			break
		}
		expr = paren.Inner
	}

	unary, ok := expr.(*ast.UnaryExpr)
	if !ok || unary.Op != lexer.MINUS {
		return false
	}

	_, isNumber := unary.Operand.(*ast.NumberLit)
	return isNumber
}

func (e *Emitter) emitArgs(args []ast.Expr) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = e.emitTopExpr(arg)
	}

	return strings.Join(parts, ", ")
}

// emitTopExpr renders an expression for a position that supplies its own
// bracketing (conditions, assignment right sides, argument slots), so the
// outermost binary operator is not parenthesized.
func (e *Emitter) emitTopExpr(expr ast.Expr) string {
	if binary, ok := expr.(*ast.BinaryExpr); ok {
		return e.emitBinaryExpr(binary, false)
	}

	return e.emitExpr(expr)
}

func (e *Emitter) emitExpr(expr ast.Expr) string {
	switch x := expr.(type) {
	case *ast.Ident:
		return x.Name

	case *ast.NumberLit:
		return translateNumber(x.Value)

	case *ast.StringLit:
		return quoteJS(x.Value)

	case *ast.DateLit:
		return fmt.Sprintf("new Date(%s)", quoteJS(x.Value))

	case *ast.BoolLit:
		if x.Value {
			return "true"
		}
		return "false"

	case *ast.NothingLit:
		return "null"

	case *ast.EmptyLit:
		return "null"

	case *ast.UnaryExpr:
		if x.Op == lexer.NOT {
			return fmt.Sprintf("!(%s)", e.emitTopExpr(x.Operand))
		}
		return fmt.Sprintf("-%s", e.emitExpr(x.Operand))

	case *ast.BinaryExpr:
		return e.emitBinaryExpr(x, true)

	case *ast.CallExpr:
		return fmt.Sprintf("%s(%s)", e.emitExpr(x.Target), e.emitArgs(x.Args))

	case *ast.MemberExpr:
		return fmt.Sprintf("%s.%s", e.emitExpr(x.Target), x.Member)

	case *ast.ParenExpr:
		return fmt.Sprintf("(%s)", e.emitTopExpr(x.Inner))
	}

	return "/* unsupported expression */"
}

var binaryOps = map[lexer.TokenKind]string{
	lexer.PLUS:  "+",
	lexer.MINUS: "-",
	lexer.STAR:  "*",
	lexer.SLASH: "/",
	lexer.EQ:    "===",
	lexer.NEQ:   "!==",
	lexer.LT:    "<",
	lexer.LEQ:   "<=",
	lexer.GT:    ">",
	lexer.GEQ:   ">=",
	lexer.AND:   "&&",
	lexer.OR:    "||",
	lexer.XOR:   "^",
	lexer.MOD:   "%",
	lexer.IS:    "===",
}

func (e *Emitter) emitBinaryExpr(x *ast.BinaryExpr, wrap bool) string {
	left := e.emitExpr(x.Left)
	right := e.emitExpr(x.Right)

	// VB6 string concatenation is a distinct operator from numeric '+';
	// both sides are coerced to strings so the two never blur together.
	switch x.Op {
	case lexer.AMP:
		core := fmt.Sprintf("String(%s) + String(%s)", left, right)
		if wrap {
			return "(" + core + ")"
		}
		return core
	case lexer.BACKSLASH:
		return fmt.Sprintf("Math.trunc(%s / %s)", left, right)
	case lexer.CARET:
		return fmt.Sprintf("Math.pow(%s, %s)", left, right)
	}

	op, ok := binaryOps[x.Op]
	if !ok {
		op = "/* unsupported operator */"
	}

	core := fmt.Sprintf("%s %s %s", left, op, right)
	if wrap {
		return "(" + core + ")"
	}

	return core
}

// quoteJS renders a double-quoted JavaScript string literal. Go's
// strconv.Quote would produce escapes like \a that JavaScript reads as a
// plain letter, so non-printables get \u00XX spellings instead.
func quoteJS(value string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04X`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')

	return sb.String()
}

// translateNumber maps the VB6 &H and & literal prefixes onto JavaScript
// hex and octal spellings; everything else passes through verbatim.
func translateNumber(value string) string {
	if len(value) >= 2 && value[0] == '&' && (value[1] == 'H' || value[1] == 'h') {
		return "0x" + value[2:]
	}

	if len(value) >= 2 && value[0] == '&' {
		return "0o" + value[1:]
	}

	return value
}

func (e *Emitter) writeLine(line string) {
	if line == "" {
		e.sb.WriteByte('\n')
		return
	}

	for i := 0; i < e.indent; i++ {
		e.sb.WriteString("  ")
	}
	e.sb.WriteString(line)
	e.sb.WriteByte('\n')
}
