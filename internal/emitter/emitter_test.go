package emitter_test

import (
	"strings"
	"testing"

	"github.com/bas2js/bas2js/internal/ast"
	"github.com/bas2js/bas2js/internal/compiler_errors"
	"github.com/bas2js/bas2js/internal/emitter"
	"github.com/bas2js/bas2js/internal/lexer"
	"github.com/bas2js/bas2js/internal/parser"
)

func emitSource(t *testing.T, source string) string {
	t.Helper()

	tokens, err := lexer.NewLexer([]byte(source)).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	sanitized := make([]lexer.Token, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind == lexer.COMMENT {
			continue
		}
		sanitized = append(sanitized, token)
	}

	session := compiler_errors.NewSession()
	module := parser.NewParser("TestModule", lexer.NewTokenScanner(sanitized), session).Parse()
	if module == nil {
		t.Fatalf("parse failed: %v", session.Errors())
	}

	return emitter.NewEmitter().Emit(module)
}

func TestForLoopEmission(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Sub T()",
		"    For i = 1 To 5",
		"        Foo(i)",
		"    Next i",
		"End Sub",
	}, "\n"))

	if !strings.Contains(js, "for (i = 1; i <= 5; i += 1) {") {
		t.Errorf("missing counted loop, got:\n%s", js)
	}
}

func TestForLoopNegativeConstantStep(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Sub T()",
		"    For i = 10 To 1 Step -1",
		"    Next",
		"End Sub",
	}, "\n"))

	if !strings.Contains(js, "for (i = 10; i >= 1; i += -1) {") {
		t.Errorf("descending step should compare with >=, got:\n%s", js)
	}
}

func TestDoVariantEmission(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"pre-while", "Do While x < 10\nLoop", "while (x < 10) {"},
		{"pre-until", "Do Until x = 10\nLoop", "while (!(x === 10)) {"},
		{"post-while", "Do\nLoop While x < 10", "} while (x < 10);"},
		{"post-until", "Do\nLoop Until x = 10", "} while (!(x === 10));"},
		{"unconditional", "Do\n    Exit Do\nLoop", "while (true) {"},
	}

	for _, tt := range tests {
		js := emitSource(t, "Sub T()\n"+tt.body+"\nEnd Sub")
		if !strings.Contains(js, tt.want) {
			t.Errorf("%s: expected %q in output:\n%s", tt.name, tt.want, js)
		}
	}
}

func TestPostConditionLoopOpensWithDo(t *testing.T) {
	js := emitSource(t, "Sub T()\nDo\nLoop Until x = 10\nEnd Sub")

	if !strings.Contains(js, "do {") {
		t.Errorf("expected a post-condition do block:\n%s", js)
	}
}

func TestWhileWendEmission(t *testing.T) {
	js := emitSource(t, "Sub T()\nWhile x < 3\n    x = x + 1\nWend\nEnd Sub")

	if !strings.Contains(js, "while (x < 3) {") {
		t.Errorf("missing while loop:\n%s", js)
	}
}

func TestIfElseEmission(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Sub T()",
		"    If x = 1 Then",
		"        a = 1",
		"    ElseIf x = 2 Then",
		"        a = 2",
		"    Else",
		"        a = 3",
		"    End If",
		"End Sub",
	}, "\n"))

	if !strings.Contains(js, "if (x === 1) {") {
		t.Errorf("missing if:\n%s", js)
	}
	if !strings.Contains(js, "} else if (x === 2) {") {
		t.Errorf("missing else-if:\n%s", js)
	}
	if !strings.Contains(js, "} else {") {
		t.Errorf("missing else:\n%s", js)
	}
}

func TestExitEmission(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Sub T()",
		"    For i = 1 To 5",
		"        Exit For",
		"    Next",
		"    Exit Sub",
		"End Sub",
	}, "\n"))

	if !strings.Contains(js, "break;") {
		t.Errorf("Exit For should emit break:\n%s", js)
	}
	if !strings.Contains(js, "return;") {
		t.Errorf("Exit Sub should emit return:\n%s", js)
	}
}

func TestFunctionReturnProtocol(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Function Add(a As Integer, b As Integer) As Integer",
		"    Add = a + b",
		"End Function",
	}, "\n"))

	if !strings.Contains(js, "let Add = 0;") {
		t.Errorf("missing result variable initialization:\n%s", js)
	}
	if !strings.Contains(js, "Add = a + b;") {
		t.Errorf("missing result assignment:\n%s", js)
	}
	if !strings.Contains(js, "return Add;") {
		t.Errorf("missing final return of the result variable:\n%s", js)
	}
}

func TestExitFunctionReturnsResultVariable(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Function F() As Long",
		"    Exit Function",
		"End Function",
	}, "\n"))

	if !strings.Contains(js, "return F;") {
		t.Errorf("Exit Function should return the result variable:\n%s", js)
	}
}

func TestExitPropertyReturnsResultVariable(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Public Property Get Count() As Long",
		"    If cached Then",
		"        Exit Property",
		"    End If",
		"    Count = 42",
		"End Property",
	}, "\n"))

	if !strings.Contains(js, "return Count;") {
		t.Fatalf("Exit Property in a getter should return the result variable:\n%s", js)
	}
	if strings.Contains(js, "return;") {
		t.Errorf("a getter must never return undefined:\n%s", js)
	}
}

func TestExitPropertyInSetterReturnsBare(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Public Property Let Count(value As Long)",
		"    Exit Property",
		"End Property",
	}, "\n"))

	if !strings.Contains(js, "return;") {
		t.Errorf("Exit Property in a setter has no result to return:\n%s", js)
	}
}

func TestConcatenationStaysDistinctFromAddition(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Sub T()",
		"    s = a & b",
		"    n = a + b",
		"End Sub",
	}, "\n"))

	if !strings.Contains(js, "s = String(a) + String(b);") {
		t.Errorf("'&' should coerce both sides to strings:\n%s", js)
	}
	if !strings.Contains(js, "n = a + b;") {
		t.Errorf("'+' should stay numeric:\n%s", js)
	}
}

func TestOperatorTranslation(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Sub T()",
		"    r = a And b Or Not c",
		"    m = a Mod b",
		"    q = a \\ b",
		"    p = a ^ b",
		"    e = a <> b",
		"End Sub",
	}, "\n"))

	wants := []string{
		"(a && b) || !(c)",
		"m = a % b;",
		"q = Math.trunc(a / b);",
		"p = Math.pow(a, b);",
		"e = a !== b;",
	}
	for _, want := range wants {
		if !strings.Contains(js, want) {
			t.Errorf("expected %q in output:\n%s", want, js)
		}
	}
}

func TestLiteralTranslation(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Sub T()",
		"    a = True",
		"    b = False",
		"    c = Nothing",
		"    d = Empty",
		"    h = 0&H4D",
		"    o = 0&17",
		"    w = #12/25/2020#",
		"End Sub",
	}, "\n"))

	wants := []string{
		"a = true;",
		"b = false;",
		"c = null;",
		"d = null;",
		"h = 0x4D;",
		"o = 0o17;",
		`w = new Date("12/25/2020");`,
	}
	for _, want := range wants {
		if !strings.Contains(js, want) {
			t.Errorf("expected %q in output:\n%s", want, js)
		}
	}
}

func TestStringLiteralsUseJavaScriptEscapes(t *testing.T) {
	module := &ast.Module{
		Name: "M",
		Procedures: []*ast.Procedure{
			{Name: "T", Kind: ast.SubProc, Body: []ast.Stmt{
				&ast.AssignStmt{
					Target: &ast.Ident{Name: "s"},
					Value:  &ast.StringLit{Value: "bell\a tab\t \"quoted\""},
				},
			}},
		},
	}

	js := emitter.NewEmitter().Emit(module)

	if !strings.Contains(js, `s = "bell\u0007 tab\t \"quoted\"";`) {
		t.Errorf("expected JavaScript escapes in the literal:\n%s", js)
	}
	if strings.Contains(js, `\a`) {
		t.Errorf(`Go-only escapes like \a must not leak into output:`+"\n%s", js)
	}
}

func TestDefaultValueTable(t *testing.T) {
	module := &ast.Module{
		Name: "Defaults",
		Declarations: []*ast.Declaration{
			{Name: "flag", DataType: "Boolean"},
			{Name: "count", DataType: "Integer"},
			{Name: "price", DataType: "Currency"},
			{Name: "title", DataType: "String"},
			{Name: "when", DataType: "Date"},
			{Name: "ref", DataType: "Object"},
			{Name: "anything", DataType: "Variant"},
			{Name: "custom", DataType: "TPerson"},
		},
	}

	js := emitter.NewEmitter().Emit(module)

	wants := []string{
		"this.flag = false;",
		"this.count = 0;",
		"this.price = 0;",
		`this.title = "";`,
		"this.when = new Date(0);",
		"this.ref = null;",
		"this.anything = null;",
		"this.custom = null;",
	}
	for _, want := range wants {
		if !strings.Contains(js, want) {
			t.Errorf("expected %q in output:\n%s", want, js)
		}
	}

	if strings.Contains(js, "undefined") {
		t.Errorf("defaults must never be undefined:\n%s", js)
	}
}

func TestUserDefinedTypeClass(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Type Point",
		"    X As Double",
		"    Y As Double",
		"End Type",
	}, "\n"))

	if !strings.Contains(js, "class Point {") {
		t.Errorf("missing UDT class:\n%s", js)
	}
	if !strings.Contains(js, "this.X = 0;") {
		t.Errorf("missing field default:\n%s", js)
	}
}

func TestConstInitializerEmission(t *testing.T) {
	js := emitSource(t, "Private Const MAX_RETRIES As Integer = 5")

	if !strings.Contains(js, "this.MAX_RETRIES = 5;") {
		t.Errorf("Const initializer should be emitted:\n%s", js)
	}
}

func TestHeaderAndFooter(t *testing.T) {
	js := emitSource(t, "Sub T()\nEnd Sub")

	if !strings.HasPrefix(js, "\"use strict\";") {
		t.Errorf("missing runtime header:\n%s", js)
	}
	if !strings.Contains(js, "module.exports = { TestModule };") {
		t.Errorf("missing export footer:\n%s", js)
	}
}

func TestPropertyAccessors(t *testing.T) {
	js := emitSource(t, strings.Join([]string{
		"Public Property Get Count() As Long",
		"End Property",
		"Public Property Let Count(value As Long)",
		"End Property",
	}, "\n"))

	if !strings.Contains(js, "get Count() {") {
		t.Errorf("missing getter:\n%s", js)
	}
	if !strings.Contains(js, "set Count(value) {") {
		t.Errorf("missing setter:\n%s", js)
	}
}

type bogusStmt struct{}

func (b *bogusStmt) StmtNode() {}

func TestUnknownStatementDegradesToComment(t *testing.T) {
	module := &ast.Module{
		Name: "M",
		Procedures: []*ast.Procedure{
			{Name: "T", Kind: ast.SubProc, Body: []ast.Stmt{&bogusStmt{}}},
		},
	}

	js := emitter.NewEmitter().Emit(module)

	if !strings.Contains(js, "/* unsupported statement */") {
		t.Errorf("expected a comment marker for unknown statements:\n%s", js)
	}
}
