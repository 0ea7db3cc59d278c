package lexer

import "fmt"

type TokenKind int

const (
	EOF TokenKind = iota

	NEWLINE
	COMMENT

	NUMBER
	STRING_LIT
	DATE_LIT

	IDENT

	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	BACKSLASH // \
	CARET     // ^
	AMP       // &

	EQ  // =
	LT  // <
	GT  // >
	LEQ // <=
	GEQ // >=
	NEQ // <>

	LPAREN // (
	RPAREN // )
	COMMA  // ,
	DOT    // .
	COLON  // :

	DIM
	AS
	PUBLIC
	PRIVATE
	GLOBAL
	STATIC
	CONST
	SUB
	FUNCTION
	PROPERTY
	GET
	LET
	SET
	END
	IF
	THEN
	ELSE
	ELSEIF
	FOR
	TO
	STEP
	NEXT
	WHILE
	WEND
	DO
	LOOP
	UNTIL
	SELECT
	CASE
	TYPE
	EXIT
	CALL
	BYVAL
	BYREF
	OPTIONAL
	PARAMARRAY
	AND
	OR
	NOT
	XOR
	MOD
	TRUE
	FALSE
	NOTHING
	EMPTY
	BOOLEAN
	BYTE
	INTEGER
	LONG
	SINGLE
	DOUBLE
	CURRENCY
	STRING_TYPE
	DATE_TYPE
	OBJECT
	VARIANT
	REDIM
	WITH
	NEW
	IS
	LIKE
	GOTO
	ON
	ERROR
	RESUME
	DECLARE
	ENUM
	EACH
	IN
)

var tokenKindNames = [...]string{
	EOF:     "EOF",
	NEWLINE: "NEWLINE",
	COMMENT: "COMMENT",

	NUMBER:     "NUMBER",
	STRING_LIT: "STRING",
	DATE_LIT:   "DATE",

	IDENT: "IDENT",

	PLUS:      "PLUS",
	MINUS:     "MINUS",
	STAR:      "STAR",
	SLASH:     "SLASH",
	BACKSLASH: "BACKSLASH",
	CARET:     "CARET",
	AMP:       "AMP",

	EQ:  "EQ",
	LT:  "LT",
	GT:  "GT",
	LEQ: "LEQ",
	GEQ: "GEQ",
	NEQ: "NEQ",

	LPAREN: "LPAREN",
	RPAREN: "RPAREN",
	COMMA:  "COMMA",
	DOT:    "DOT",
	COLON:  "COLON",

	DIM:         "DIM",
	AS:          "AS",
	PUBLIC:      "PUBLIC",
	PRIVATE:     "PRIVATE",
	GLOBAL:      "GLOBAL",
	STATIC:      "STATIC",
	CONST:       "CONST",
	SUB:         "SUB",
	FUNCTION:    "FUNCTION",
	PROPERTY:    "PROPERTY",
	GET:         "GET",
	LET:         "LET",
	SET:         "SET",
	END:         "END",
	IF:          "IF",
	THEN:        "THEN",
	ELSE:        "ELSE",
	ELSEIF:      "ELSEIF",
	FOR:         "FOR",
	TO:          "TO",
	STEP:        "STEP",
	NEXT:        "NEXT",
	WHILE:       "WHILE",
	WEND:        "WEND",
	DO:          "DO",
	LOOP:        "LOOP",
	UNTIL:       "UNTIL",
	SELECT:      "SELECT",
	CASE:        "CASE",
	TYPE:        "TYPE",
	EXIT:        "EXIT",
	CALL:        "CALL",
	BYVAL:       "BYVAL",
	BYREF:       "BYREF",
	OPTIONAL:    "OPTIONAL",
	PARAMARRAY:  "PARAMARRAY",
	AND:         "AND",
	OR:          "OR",
	NOT:         "NOT",
	XOR:         "XOR",
	MOD:         "MOD",
	TRUE:        "TRUE",
	FALSE:       "FALSE",
	NOTHING:     "NOTHING",
	EMPTY:       "EMPTY",
	BOOLEAN:     "BOOLEAN",
	BYTE:        "BYTE",
	INTEGER:     "INTEGER",
	LONG:        "LONG",
	SINGLE:      "SINGLE",
	DOUBLE:      "DOUBLE",
	CURRENCY:    "CURRENCY",
	STRING_TYPE: "STRING_TYPE",
	DATE_TYPE:   "DATE_TYPE",
	OBJECT:      "OBJECT",
	VARIANT:     "VARIANT",
	REDIM:       "REDIM",
	WITH:        "WITH",
	NEW:         "NEW",
	IS:          "IS",
	LIKE:        "LIKE",
	GOTO:        "GOTO",
	ON:          "ON",
	ERROR:       "ERROR",
	RESUME:      "RESUME",
	DECLARE:     "DECLARE",
	ENUM:        "ENUM",
	EACH:        "EACH",
	IN:          "IN",
}

func (tk TokenKind) String() string {
	if int(tk) < 0 || int(tk) >= len(tokenKindNames) || tokenKindNames[tk] == "" {
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", int(tk)))
	}

	return tokenKindNames[tk]
}

// IsKeyword reports whether the kind is one of the reserved words.
func (tk TokenKind) IsKeyword() bool {
	return tk >= DIM && tk <= IN
}

// Token is one lexeme of VB6 source. Tokens are immutable once produced;
// every token stream ends with exactly one EOF sentinel.
type Token struct {
	Kind   TokenKind
	Value  string
	Line   int
	Column int
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case NUMBER, STRING_LIT, DATE_LIT, IDENT, COMMENT:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}
