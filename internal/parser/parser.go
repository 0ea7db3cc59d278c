package parser

import (
	"fmt"

	"slices"

	"github.com/bas2js/bas2js/internal/ast"
	"github.com/bas2js/bas2js/internal/compiler_errors"
	"github.com/bas2js/bas2js/internal/lexer"
)

type UnexpectedExpectedError struct {
	Unexpected lexer.TokenKind
	Expected   lexer.TokenKind

	Line   int
	Column int
}

func (e *UnexpectedExpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected token: '%s', expected: '%s'", e.Unexpected.String(), e.Expected.String())
}

func (e *UnexpectedExpectedError) GetLine() int   { return e.Line }
func (e *UnexpectedExpectedError) GetColumn() int { return e.Column }

func (e *UnexpectedExpectedError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.GetMessage())
}

type UnexpectedExpectedManyError struct {
	Unexpected lexer.TokenKind
	Expected   []lexer.TokenKind

	Line   int
	Column int
}

func (e *UnexpectedExpectedManyError) GetMessage() string {
	expectedKinds := make([]string, len(e.Expected))
	for i, kind := range e.Expected {
		expectedKinds[i] = kind.String()
	}
	return fmt.Sprintf("unexpected token: '%s', expected one of: '%s'", e.Unexpected.String(), expectedKinds)
}

func (e *UnexpectedExpectedManyError) GetLine() int   { return e.Line }
func (e *UnexpectedExpectedManyError) GetColumn() int { return e.Column }

func (e *UnexpectedExpectedManyError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.GetMessage())
}

type UnexpectedError struct {
	Unexpected lexer.TokenKind

	Line   int
	Column int
}

func (e *UnexpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected token: '%s'", e.Unexpected.String())
}

func (e *UnexpectedError) GetLine() int   { return e.Line }
func (e *UnexpectedError) GetColumn() int { return e.Column }

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.GetMessage())
}

// UnclosedBlockError carries the line of the opening keyword, not the point
// where parsing gave up.
type UnclosedBlockError struct {
	Construct string
	Closer    string

	Line int
}

func (e *UnclosedBlockError) GetMessage() string {
	return fmt.Sprintf("'%s' block opened on line %d is never closed, missing '%s'", e.Construct, e.Line, e.Closer)
}

func (e *UnclosedBlockError) GetLine() int { return e.Line }

func (e *UnclosedBlockError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.GetMessage())
}

// Parser builds a Module tree from a comment-free token stream. Errors are
// recorded in the compile session and recovery skips to the next statement
// boundary, so a single compile can surface several diagnostics.
type Parser struct {
	moduleName string

	scanner lexer.TokenScanner
	session *compiler_errors.Session

	curr lexer.Token
}

var bindingPowerLookup = map[lexer.TokenKind]int{
	lexer.OR:  10,
	lexer.XOR: 10,

	lexer.AND: 20,

	lexer.EQ:  30,
	lexer.NEQ: 30,
	lexer.LT:  30,
	lexer.LEQ: 30,
	lexer.GT:  30,
	lexer.GEQ: 30,
	lexer.IS:  30,

	lexer.AMP: 40,

	lexer.PLUS:  50,
	lexer.MINUS: 50,

	lexer.STAR:      60,
	lexer.SLASH:     60,
	lexer.BACKSLASH: 60,
	lexer.MOD:       60,

	lexer.CARET: 70,
}

// Not sits between And and the comparison tier; unary minus binds looser
// than '^' so that -2^2 keeps VB6's -(2^2) reading.
const (
	notBindingPower        = 25
	unaryMinusBindingPower = 65
)

func NewParser(moduleName string, scanner lexer.TokenScanner, session *compiler_errors.Session) *Parser {
	return &Parser{
		moduleName: moduleName,
		scanner:    scanner,
		session:    session,
		curr:       scanner.Read(),
	}
}

// Parse consumes the whole token stream. It returns nil if any error was
// recorded; there is no partial tree on failure.
func (p *Parser) Parse() *ast.Module {
	module := &ast.Module{
		Name:         p.moduleName,
		Declarations: make([]*ast.Declaration, 0),
		Procedures:   make([]*ast.Procedure, 0),
		Types:        make([]*ast.UserDefinedType, 0),
	}

	for {
		p.skipSeparators()
		if p.curr.Kind == lexer.EOF {
			break
		}

		p.parseTopLevel(module)
	}

	if p.session.HasErrors() {
		return nil
	}

	return module
}

func (p *Parser) parseTopLevel(module *ast.Module) {
	visibility := ast.Private
	explicitVisibility := false

	switch p.curr.Kind {
	case lexer.PUBLIC:
		visibility = ast.Public
		explicitVisibility = true
		p.read()
	case lexer.PRIVATE:
		visibility = ast.Private
		explicitVisibility = true
		p.read()
	case lexer.GLOBAL:
		visibility = ast.Global
		explicitVisibility = true
		p.read()
	}

	switch p.curr.Kind {
	case lexer.SUB, lexer.FUNCTION, lexer.PROPERTY:
		proc, err := p.parseProcedure(visibility)
		if err != nil {
			p.fail(err)
			p.synchronize()
			return
		}
		module.Procedures = append(module.Procedures, proc)

	case lexer.TYPE:
		udt, err := p.parseTypeBlock()
		if err != nil {
			p.fail(err)
			p.synchronize()
			return
		}
		module.Types = append(module.Types, udt)

	case lexer.DIM, lexer.STATIC, lexer.CONST:
		decls, err := p.parseDeclarations(visibility)
		if err != nil {
			p.fail(err)
			p.synchronize()
			return
		}
		module.Declarations = append(module.Declarations, decls...)

	case lexer.IDENT:
		if explicitVisibility {
			decls, err := p.parseDeclarations(visibility)
			if err != nil {
				p.fail(err)
				p.synchronize()
				return
			}
			module.Declarations = append(module.Declarations, decls...)
			return
		}
		p.skipUnrecognized()

	default:
		p.skipUnrecognized()
	}
}

// skipUnrecognized advances past one run of tokens the top-level grammar has
// no rule for. VB6 tolerates stray text between procedures; that tolerance
// is kept, but each skipped run is surfaced as a warning.
func (p *Parser) skipUnrecognized() {
	line := p.curr.Line
	first := p.curr.String()
	count := 0

	for p.curr.Kind != lexer.NEWLINE && p.curr.Kind != lexer.COLON && p.curr.Kind != lexer.EOF {
		count++
		p.read()
	}

	p.session.AddWarning(line, "skipped %d unrecognized token(s) starting with %s", count, first)
}

func (p *Parser) parseDeclarations(visibility ast.Visibility) ([]*ast.Declaration, error) {
	isStatic := false
	isConst := false

	for p.curr.Kind == lexer.STATIC || p.curr.Kind == lexer.CONST || p.curr.Kind == lexer.DIM {
		switch p.curr.Kind {
		case lexer.STATIC:
			isStatic = true
		case lexer.CONST:
			isConst = true
		}
		p.read()
	}

	decls := make([]*ast.Declaration, 0, 1)
	for {
		if err := p.expect(lexer.IDENT); err != nil {
			return nil, err
		}
		decl := &ast.Declaration{
			Name:       p.curr.Value,
			DataType:   "Variant",
			Visibility: visibility,
			Static:     isStatic,
			Const:      isConst,
			Line:       p.curr.Line,
		}
		p.read()

		if p.curr.Kind == lexer.AS {
			p.read()
			dataType, err := p.parseTypeName()
			if err != nil {
				return nil, err
			}
			decl.DataType = dataType
		}

		if isConst && p.curr.Kind == lexer.EQ {
			p.read()
			value, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			decl.Value = value
		}

		decls = append(decls, decl)

		if p.curr.Kind != lexer.COMMA {
			break
		}
		p.read()
	}

	return decls, nil
}

var builtinTypeKinds = []lexer.TokenKind{
	lexer.BOOLEAN,
	lexer.BYTE,
	lexer.INTEGER,
	lexer.LONG,
	lexer.SINGLE,
	lexer.DOUBLE,
	lexer.CURRENCY,
	lexer.STRING_TYPE,
	lexer.DATE_TYPE,
	lexer.OBJECT,
	lexer.VARIANT,
}

func (p *Parser) parseTypeName() (string, error) {
	if p.curr.Kind == lexer.IDENT || slices.Contains(builtinTypeKinds, p.curr.Kind) {
		name := p.curr.Value
		p.read()
		return name, nil
	}

	return "", &UnexpectedExpectedError{
		Unexpected: p.curr.Kind,
		Expected:   lexer.IDENT,
		Line:       p.curr.Line,
		Column:     p.curr.Column,
	}
}

func (p *Parser) parseTypeBlock() (*ast.UserDefinedType, error) {
	openLine := p.curr.Line
	p.read()

	if err := p.expect(lexer.IDENT); err != nil {
		return nil, err
	}
	udt := &ast.UserDefinedType{
		Name:   p.curr.Value,
		Fields: make([]ast.TypeField, 0),
		Line:   openLine,
	}
	p.read()

	for {
		p.skipSeparators()

		if p.curr.Kind == lexer.END && p.scanner.Peek().Kind == lexer.TYPE {
			p.read()
			p.read()
			return udt, nil
		}

		if p.curr.Kind == lexer.EOF || p.curr.Kind == lexer.END {
			return nil, &UnclosedBlockError{
				Construct: "Type",
				Closer:    "End Type",
				Line:      openLine,
			}
		}

		if err := p.expect(lexer.IDENT); err != nil {
			return nil, err
		}
		field := ast.TypeField{
			Name:     p.curr.Value,
			DataType: "Variant",
		}
		p.read()

		if p.curr.Kind == lexer.AS {
			p.read()
			dataType, err := p.parseTypeName()
			if err != nil {
				return nil, err
			}
			field.DataType = dataType
		}

		udt.Fields = append(udt.Fields, field)
	}
}

func (p *Parser) parseProcedure(visibility ast.Visibility) (*ast.Procedure, error) {
	openLine := p.curr.Line

	var kind ast.ProcKind
	var closerKind lexer.TokenKind
	var closerName string
	switch p.curr.Kind {
	case lexer.SUB:
		kind = ast.SubProc
		closerKind = lexer.SUB
		closerName = "End Sub"
		p.read()
	case lexer.FUNCTION:
		kind = ast.FunctionProc
		closerKind = lexer.FUNCTION
		closerName = "End Function"
		p.read()
	case lexer.PROPERTY:
		p.read()
		switch p.curr.Kind {
		case lexer.GET:
			kind = ast.PropertyGetProc
		case lexer.LET:
			kind = ast.PropertyLetProc
		case lexer.SET:
			kind = ast.PropertySetProc
		default:
			return nil, &UnexpectedExpectedManyError{
				Unexpected: p.curr.Kind,
				Expected:   []lexer.TokenKind{lexer.GET, lexer.LET, lexer.SET},
				Line:       p.curr.Line,
				Column:     p.curr.Column,
			}
		}
		closerKind = lexer.PROPERTY
		closerName = "End Property"
		p.read()
	}

	if err := p.expect(lexer.IDENT); err != nil {
		return nil, err
	}
	proc := &ast.Procedure{
		Name:       p.curr.Value,
		Kind:       kind,
		Visibility: visibility,
		Params:     make([]ast.Parameter, 0),
		Line:       openLine,
	}
	p.read()

	if p.curr.Kind == lexer.LPAREN {
		p.read()
		for p.curr.Kind != lexer.RPAREN && p.curr.Kind != lexer.EOF {
			param, err := p.parseParameter()
			if err != nil {
				return nil, err
			}
			proc.Params = append(proc.Params, param)

			if p.curr.Kind == lexer.COMMA {
				p.read()
			}
		}

		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		p.read()
	}

	if (kind == ast.FunctionProc || kind == ast.PropertyGetProc) && p.curr.Kind == lexer.AS {
		p.read()
		returnType, err := p.parseTypeName()
		if err != nil {
			return nil, err
		}
		proc.ReturnType = returnType
	}

	proc.Body = p.parseStatements()

	if p.curr.Kind != lexer.END || p.scanner.Peek().Kind != closerKind {
		return nil, &UnclosedBlockError{
			Construct: kind.String(),
			Closer:    closerName,
			Line:      openLine,
		}
	}
	p.read()
	p.read()

	return proc, nil
}

func (p *Parser) parseParameter() (ast.Parameter, error) {
	param := ast.Parameter{
		DataType: "Variant",
	}

	for {
		switch p.curr.Kind {
		case lexer.OPTIONAL:
			param.Optional = true
			p.read()
			continue
		case lexer.BYVAL:
			param.ByVal = true
			p.read()
			continue
		case lexer.BYREF, lexer.PARAMARRAY:
			p.read()
			continue
		}
		break
	}

	if err := p.expect(lexer.IDENT); err != nil {
		return ast.Parameter{}, err
	}
	param.Name = p.curr.Value
	p.read()

	if p.curr.Kind == lexer.AS {
		p.read()
		dataType, err := p.parseTypeName()
		if err != nil {
			return ast.Parameter{}, err
		}
		param.DataType = dataType
	}

	if param.Optional && p.curr.Kind == lexer.EQ {
		p.read()
		value, err := p.parseExpr(0)
		if err != nil {
			return ast.Parameter{}, err
		}
		param.Default = value
	}

	return param, nil
}

// parseStatements collects statements until a block terminator (End, Else,
// ElseIf, Next, Loop, Wend) or end of input. The terminator itself is left
// for the caller; that is how nested block parsers know where to stop.
func (p *Parser) parseStatements() []ast.Stmt {
	stmts := make([]ast.Stmt, 0)

	for {
		p.skipSeparators()

		switch p.curr.Kind {
		case lexer.EOF, lexer.END, lexer.ELSE, lexer.ELSEIF, lexer.NEXT, lexer.LOOP, lexer.WEND:
			return stmts
		}

		if p.curr.Kind == lexer.DIM {
			dims, err := p.parseDimStmt()
			if err != nil {
				p.fail(err)
				p.synchronize()
				continue
			}
			stmts = append(stmts, dims...)
			continue
		}

		stmt, err := p.parseStatement()
		if err != nil {
			p.fail(err)
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.curr.Kind {
	case lexer.IF:
		return p.parseIfChain(p.curr.Line)
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.DO:
		return p.parseDoStmt()
	case lexer.EXIT:
		return p.parseExitStmt()
	case lexer.CALL:
		return p.parseCallKeywordStmt()
	case lexer.IDENT:
		return p.parseIdentLeadingStmt()
	}

	return nil, &UnexpectedError{
		Unexpected: p.curr.Kind,
		Line:       p.curr.Line,
		Column:     p.curr.Column,
	}
}

func (p *Parser) parseDimStmt() ([]ast.Stmt, error) {
	p.read()

	stmts := make([]ast.Stmt, 0, 1)
	for {
		if err := p.expect(lexer.IDENT); err != nil {
			return nil, err
		}
		dim := &ast.DimStmt{
			Name:     p.curr.Value,
			DataType: "Variant",
		}
		p.read()

		if p.curr.Kind == lexer.AS {
			p.read()
			dataType, err := p.parseTypeName()
			if err != nil {
				return nil, err
			}
			dim.DataType = dataType
		}

		stmts = append(stmts, dim)

		if p.curr.Kind != lexer.COMMA {
			break
		}
		p.read()
	}

	return stmts, nil
}

// parseIfChain handles If..Then with any number of ElseIf arms; each arm
// nests as the sole statement of the previous arm's Else. The single
// End If is consumed by the innermost arm.
func (p *Parser) parseIfChain(openLine int) (ast.Stmt, error) {
	p.read()

	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.THEN); err != nil {
		return nil, err
	}
	p.read()

	stmt := &ast.IfStmt{
		Cond: cond,
		Then: p.parseStatements(),
	}

	switch p.curr.Kind {
	case lexer.ELSEIF:
		nested, err := p.parseIfChain(p.curr.Line)
		if err != nil {
			return nil, err
		}
		stmt.Else = []ast.Stmt{nested}
		return stmt, nil

	case lexer.ELSE:
		p.read()
		stmt.Else = p.parseStatements()
	}

	if p.curr.Kind != lexer.END || p.scanner.Peek().Kind != lexer.IF {
		return nil, &UnclosedBlockError{
			Construct: "If",
			Closer:    "End If",
			Line:      openLine,
		}
	}
	p.read()
	p.read()

	return stmt, nil
}

func (p *Parser) parseForStmt() (ast.Stmt, error) {
	openLine := p.curr.Line
	p.read()

	if err := p.expect(lexer.IDENT); err != nil {
		return nil, err
	}
	stmt := &ast.ForStmt{
		Var: p.curr.Value,
	}
	p.read()

	if err := p.expect(lexer.EQ); err != nil {
		return nil, err
	}
	p.read()

	from, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	stmt.From = from

	if err := p.expect(lexer.TO); err != nil {
		return nil, err
	}
	p.read()

	to, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	stmt.To = to

	if p.curr.Kind == lexer.STEP {
		p.read()
		step, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		stmt.Step = step
	}

	stmt.Body = p.parseStatements()

	if p.curr.Kind != lexer.NEXT {
		return nil, &UnclosedBlockError{
			Construct: "For",
			Closer:    "Next",
			Line:      openLine,
		}
	}
	p.read()

	// Optional loop-variable echo after Next.
	if p.curr.Kind == lexer.IDENT {
		p.read()
	}

	return stmt, nil
}

func (p *Parser) parseWhileStmt() (ast.Stmt, error) {
	openLine := p.curr.Line
	p.read()

	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}

	stmt := &ast.WhileStmt{
		Cond: cond,
		Body: p.parseStatements(),
	}

	if p.curr.Kind != lexer.WEND {
		return nil, &UnclosedBlockError{
			Construct: "While",
			Closer:    "Wend",
			Line:      openLine,
		}
	}
	p.read()

	return stmt, nil
}

func (p *Parser) parseDoStmt() (ast.Stmt, error) {
	openLine := p.curr.Line
	p.read()

	stmt := &ast.DoStmt{}

	switch p.curr.Kind {
	case lexer.WHILE:
		p.read()
		cond, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		stmt.Cond = cond
		stmt.Pre = true
	case lexer.UNTIL:
		p.read()
		cond, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		stmt.Cond = cond
		stmt.Pre = true
		stmt.Until = true
	}

	stmt.Body = p.parseStatements()

	if p.curr.Kind != lexer.LOOP {
		return nil, &UnclosedBlockError{
			Construct: "Do",
			Closer:    "Loop",
			Line:      openLine,
		}
	}
	p.read()

	if stmt.Cond == nil && (p.curr.Kind == lexer.WHILE || p.curr.Kind == lexer.UNTIL) {
		stmt.Until = p.curr.Kind == lexer.UNTIL
		p.read()
		cond, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		stmt.Cond = cond
	}

	return stmt, nil
}

func (p *Parser) parseExitStmt() (ast.Stmt, error) {
	p.read()

	var what ast.ExitKind
	switch p.curr.Kind {
	case lexer.SUB:
		what = ast.ExitSub
	case lexer.FUNCTION:
		what = ast.ExitFunction
	case lexer.PROPERTY:
		what = ast.ExitProperty
	case lexer.FOR:
		what = ast.ExitFor
	case lexer.DO:
		what = ast.ExitDo
	default:
		return nil, &UnexpectedExpectedManyError{
			Unexpected: p.curr.Kind,
			Expected:   []lexer.TokenKind{lexer.SUB, lexer.FUNCTION, lexer.PROPERTY, lexer.FOR, lexer.DO},
			Line:       p.curr.Line,
			Column:     p.curr.Column,
		}
	}
	p.read()

	return &ast.ExitStmt{What: what}, nil
}

func (p *Parser) parseCallKeywordStmt() (ast.Stmt, error) {
	p.read()

	target, err := p.parsePostfixExpr()
	if err != nil {
		return nil, err
	}

	if call, ok := target.(*ast.CallExpr); ok {
		return &ast.CallStmt{Target: call.Target, Args: call.Args}, nil
	}

	return &ast.CallStmt{Target: target, Args: nil}, nil
}

// parseIdentLeadingStmt resolves the VB6 statement-level ambiguity: an
// identifier starts an assignment when '=' follows its target form, a call
// when '(' does, and otherwise a no-parens call (`Foo arg1, arg2`).
func (p *Parser) parseIdentLeadingStmt() (ast.Stmt, error) {
	target, err := p.parsePostfixExpr()
	if err != nil {
		return nil, err
	}

	if p.curr.Kind == lexer.EQ {
		p.read()
		value, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Target: target, Value: value}, nil
	}

	if call, ok := target.(*ast.CallExpr); ok {
		return &ast.CallStmt{Target: call.Target, Args: call.Args}, nil
	}

	stmt := &ast.CallStmt{Target: target, Args: nil}
	if p.startsExpression() {
		stmt.Args = make([]ast.Expr, 0, 1)
		for {
			arg, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			stmt.Args = append(stmt.Args, arg)

			if p.curr.Kind != lexer.COMMA {
				break
			}
			p.read()
		}
	}

	return stmt, nil
}

func (p *Parser) startsExpression() bool {
	switch p.curr.Kind {
	case lexer.NUMBER, lexer.STRING_LIT, lexer.DATE_LIT, lexer.IDENT,
		lexer.TRUE, lexer.FALSE, lexer.NOTHING, lexer.EMPTY,
		lexer.LPAREN, lexer.MINUS, lexer.NOT:
		return true
	}

	return false
}

func (p *Parser) parseExpr(minBindingPower int) (ast.Expr, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		bindingPower, ok := bindingPowerLookup[p.curr.Kind]
		if !ok || bindingPower < minBindingPower {
			return left, nil
		}

		op := p.curr.Kind
		p.read()

		right, err := p.parseExpr(bindingPower + 1)
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Op:    op,
			Left:  left,
			Right: right,
		}
	}
}

func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	switch p.curr.Kind {
	case lexer.NOT:
		p.read()
		operand, err := p.parseExpr(notBindingPower + 1)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: lexer.NOT, Operand: operand}, nil

	case lexer.MINUS:
		p.read()
		operand, err := p.parseExpr(unaryMinusBindingPower)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: lexer.MINUS, Operand: operand}, nil
	}

	return p.parsePostfixExpr()
}

func (p *Parser) parsePostfixExpr() (ast.Expr, error) {
	expr, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		switch p.curr.Kind {
		case lexer.DOT:
			p.read()
			if err := p.expect(lexer.IDENT); err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{
				Target: expr,
				Member: p.curr.Value,
			}
			p.read()

		case lexer.LPAREN:
			p.read()
			args := make([]ast.Expr, 0)
			for p.curr.Kind != lexer.RPAREN && p.curr.Kind != lexer.EOF {
				arg, err := p.parseExpr(0)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)

				if p.curr.Kind == lexer.COMMA {
					p.read()
				}
			}
			if err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			p.read()

			expr = &ast.CallExpr{
				Target: expr,
				Args:   args,
			}

		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	switch p.curr.Kind {
	case lexer.NUMBER:
		expr := &ast.NumberLit{Value: p.curr.Value}
		p.read()
		return expr, nil

	case lexer.STRING_LIT:
		expr := &ast.StringLit{Value: p.curr.Value}
		p.read()
		return expr, nil

	case lexer.DATE_LIT:
		expr := &ast.DateLit{Value: p.curr.Value}
		p.read()
		return expr, nil

	case lexer.TRUE:
		p.read()
		return &ast.BoolLit{Value: true}, nil

	case lexer.FALSE:
		p.read()
		return &ast.BoolLit{Value: false}, nil

	case lexer.NOTHING:
		p.read()
		return &ast.NothingLit{}, nil

	case lexer.EMPTY:
		p.read()
		return &ast.EmptyLit{}, nil

	case lexer.IDENT:
		expr := &ast.Ident{Name: p.curr.Value}
		p.read()
		return expr, nil

	case lexer.LPAREN:
		p.read()
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		p.read()
		return &ast.ParenExpr{Inner: inner}, nil
	}

	return nil, &UnexpectedError{
		Unexpected: p.curr.Kind,
		Line:       p.curr.Line,
		Column:     p.curr.Column,
	}
}

func (p *Parser) skipSeparators() {
	for p.curr.Kind == lexer.NEWLINE || p.curr.Kind == lexer.COLON || p.curr.Kind == lexer.COMMENT {
		p.read()
	}
}

// synchronize skips to the next statement boundary after a recorded error.
// Block closers are boundaries too so that an error inside a block does not
// swallow the block's terminator.
func (p *Parser) synchronize() {
	for {
		switch p.curr.Kind {
		case lexer.EOF, lexer.NEWLINE, lexer.COLON,
			lexer.END, lexer.ELSE, lexer.ELSEIF, lexer.NEXT, lexer.LOOP, lexer.WEND:
			return
		}
		p.read()
	}
}

func (p *Parser) fail(err error) {
	if ce, ok := err.(compiler_errors.CompilerError); ok {
		p.session.AddError(ce)
		return
	}

	p.session.AddError(&UnexpectedError{
		Unexpected: p.curr.Kind,
		Line:       p.curr.Line,
		Column:     p.curr.Column,
	})
}

func (p *Parser) read() lexer.Token {
	p.curr = p.scanner.Read()
	return p.curr
}

func (p *Parser) expect(kind lexer.TokenKind) error {
	if p.curr.Kind != kind {
		return &UnexpectedExpectedError{
			Unexpected: p.curr.Kind,
			Expected:   kind,
			Line:       p.curr.Line,
			Column:     p.curr.Column,
		}
	}

	return nil
}
