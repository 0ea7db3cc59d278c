package lexer

import "fmt"

type LexerError struct {
	Message string
	Line    int
	Column  int
}

func newUnexpectedError(unexpected byte, line, col int) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("unexpected character: '%s'", string(unexpected)),
		Line:    line,
		Column:  col,
	}
}

func newExpectedError(expected byte, line, col int) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("expected '%s'", string(expected)),
		Line:    line,
		Column:  col,
	}
}

func (e *LexerError) GetMessage() string { return e.Message }
func (e *LexerError) GetLine() int       { return e.Line }
func (e *LexerError) GetColumn() int     { return e.Column }

func (e *LexerError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Message)
}

// Lexer turns VB6 source text into a token stream. Newlines are significant
// (they separate statements) and comments are kept as tokens so the parser
// can drop them in one pass. An instance is reusable across calls but not
// from two goroutines at once; Tokenize resets the cursor on entry.
type Lexer struct {
	buf []byte
	pos int

	line, col int
}

func NewLexer(buf []byte) *Lexer {
	return &Lexer{
		buf: buf,

		line: 1,
		col:  1,
	}
}

func (l *Lexer) Tokenize() ([]Token, error) {
	l.pos = 0
	l.line = 1
	l.col = 1

	tokens := make([]Token, 0)

	for l.hasChars() {
		switch {
		case l.read() == ' ' || l.read() == '\t':
			l.advance()

		case l.isCurrNewline():
			tokens = append(tokens, l.processNewlines())

		case l.read() == '\'':
			tokens = append(tokens, l.processComment())

		case l.read() == '"':
			token, err := l.processStringLiteral()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)

		case l.read() == '#':
			token, err := l.processDateLiteral()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)

		case l.isCurrDigit():
			tokens = append(tokens, l.processNumber())

		case l.isCurrIdentifier():
			tokens = append(tokens, l.processIdentifier())

		case l.isCurrPunctuation():
			tokens = append(tokens, l.processPunctuation())

		default:
			return nil, newUnexpectedError(l.read(), l.line, l.col)
		}
	}

	tokens = append(tokens, Token{
		Kind:   EOF,
		Value:  EOF.String(),
		Line:   l.line,
		Column: l.col,
	})

	return tokens, nil
}

func (l *Lexer) isCurrIdentifier() bool {
	return (l.read() >= 'a' && l.read() <= 'z') || (l.read() >= 'A' && l.read() <= 'Z') || l.read() == '_'
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrNewline() bool {
	return l.read() == '\n' || l.read() == '\r'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '*', '/', '\\', '^', '&', '=', '<', '>', '(', ')', ',', '.', ':':
		return true
	}

	return false
}

// processNewlines collapses a run of '\n'/'\r' into a single NEWLINE token.
func (l *Lexer) processNewlines() Token {
	token := Token{
		Kind:   NEWLINE,
		Value:  "\n",
		Line:   l.line,
		Column: l.col,
	}

	for l.hasChars() && l.isCurrNewline() {
		// "\r\n" counts once, on the '\n'; a lone '\r' is a line break too.
		if l.read() == '\n' || !(l.hasNext() && l.next() == '\n') {
			l.line++
			l.col = 0
		}
		l.advance()
	}

	return token
}

func (l *Lexer) processComment() Token {
	token := Token{
		Kind:   COMMENT,
		Line:   l.line,
		Column: l.col,
	}

	l.advance()
	content := make([]byte, 0)
	for l.hasChars() && !l.isCurrNewline() {
		content = append(content, l.read())
		l.advance()
	}

	token.Value = string(content)
	return token
}

// processStringLiteral lexes a double-quoted string. A doubled quote is the
// escape for a literal quote; there is no backslash escaping in VB6.
func (l *Lexer) processStringLiteral() (Token, error) {
	token := Token{
		Kind:   STRING_LIT,
		Line:   l.line,
		Column: l.col,
	}

	l.advance()
	content := make([]byte, 0)
	for {
		if !l.hasChars() || l.isCurrNewline() {
			return Token{}, newExpectedError('"', l.line, l.col)
		}

		if l.read() == '"' {
			if l.hasNext() && l.next() == '"' {
				content = append(content, '"')
				l.advance()
				l.advance()
				continue
			}

			l.advance()
			break
		}

		content = append(content, l.read())
		l.advance()
	}

	token.Value = string(content)
	return token, nil
}

// processDateLiteral lexes #...# with the contents kept verbatim; calendar
// parsing is the runtime's problem, not the tokenizer's.
func (l *Lexer) processDateLiteral() (Token, error) {
	token := Token{
		Kind:   DATE_LIT,
		Line:   l.line,
		Column: l.col,
	}

	l.advance()
	content := make([]byte, 0)
	for {
		if !l.hasChars() || l.isCurrNewline() {
			return Token{}, newExpectedError('#', l.line, l.col)
		}

		if l.read() == '#' {
			l.advance()
			break
		}

		content = append(content, l.read())
		l.advance()
	}

	token.Value = string(content)
	return token, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (l *Lexer) processNumber() Token {
	token := Token{
		Kind:   NUMBER,
		Line:   l.line,
		Column: l.col,
	}

	numberBuf := make([]byte, 0)
	numberBuf = append(numberBuf, l.read())
	l.advance()

	// VB6 quirk: a lone '0' followed by &H is a hexadecimal literal, by '&'
	// plus digits an octal one. The prefix is kept verbatim in the token.
	if len(numberBuf) == 1 && numberBuf[0] == '0' && l.hasChars() && l.read() == '&' && l.hasNext() {
		if l.next() == 'H' || l.next() == 'h' {
			hexBuf := []byte{'&', l.next()}
			l.advance()
			l.advance()
			for l.hasChars() && isHexDigit(l.read()) {
				hexBuf = append(hexBuf, l.read())
				l.advance()
			}

			token.Value = string(hexBuf)
			return token
		}

		if l.next() >= '0' && l.next() <= '7' {
			octBuf := []byte{'&'}
			l.advance()
			for l.hasChars() && l.read() >= '0' && l.read() <= '7' {
				octBuf = append(octBuf, l.read())
				l.advance()
			}

			token.Value = string(octBuf)
			return token
		}
	}

	for l.hasChars() && l.isCurrDigit() {
		numberBuf = append(numberBuf, l.read())
		l.advance()
	}

	if l.hasChars() && l.read() == '.' && l.hasNext() && l.next() >= '0' && l.next() <= '9' {
		numberBuf = append(numberBuf, l.read())
		l.advance()
		for l.hasChars() && l.isCurrDigit() {
			numberBuf = append(numberBuf, l.read())
			l.advance()
		}
	}

	if l.hasChars() && (l.read() == 'e' || l.read() == 'E') {
		exponentStart := l.pos
		expBuf := []byte{l.read()}
		l.advance()

		if l.hasChars() && (l.read() == '+' || l.read() == '-') {
			expBuf = append(expBuf, l.read())
			l.advance()
		}

		if l.hasChars() && l.isCurrDigit() {
			for l.hasChars() && l.isCurrDigit() {
				expBuf = append(expBuf, l.read())
				l.advance()
			}
			numberBuf = append(numberBuf, expBuf...)
		} else {
			// Not an exponent after all, e.g. "5E" before "nd"; rewind.
			l.col -= l.pos - exponentStart
			l.pos = exponentStart
		}
	}

	token.Value = string(numberBuf)
	return token
}

func (l *Lexer) processIdentifier() Token {
	token := Token{
		Line:   l.line,
		Column: l.col,
	}

	identifierBuf := make([]byte, 0)
	identifierBuf = append(identifierBuf, l.read())
	l.advance()

	for l.hasChars() && (l.isCurrIdentifier() || l.isCurrDigit()) {
		identifierBuf = append(identifierBuf, l.read())
		l.advance()
	}
	identifier := string(identifierBuf)

	kind, isKeyword := LookupKeyword(identifier)
	if isKeyword {
		token.Kind = kind
	} else {
		token.Kind = IDENT
	}

	token.Value = identifier
	return token
}

func (l *Lexer) processPunctuation() Token {
	token := Token{
		Line:   l.line,
		Column: l.col,
	}

	// Greedy two-character operators first.
	if l.read() == '<' && l.hasNext() {
		switch l.next() {
		case '=':
			l.advance()
			l.advance()
			token.Kind, token.Value = LEQ, "<="
			return token
		case '>':
			l.advance()
			l.advance()
			token.Kind, token.Value = NEQ, "<>"
			return token
		}
	}

	if l.read() == '>' && l.hasNext() && l.next() == '=' {
		l.advance()
		l.advance()
		token.Kind, token.Value = GEQ, ">="
		return token
	}

	c := l.read()
	l.advance()

	switch c {
	case '+':
		token.Kind = PLUS
	case '-':
		token.Kind = MINUS
	case '*':
		token.Kind = STAR
	case '/':
		token.Kind = SLASH
	case '\\':
		token.Kind = BACKSLASH
	case '^':
		token.Kind = CARET
	case '&':
		token.Kind = AMP
	case '=':
		token.Kind = EQ
	case '<':
		token.Kind = LT
	case '>':
		token.Kind = GT
	case '(':
		token.Kind = LPAREN
	case ')':
		token.Kind = RPAREN
	case ',':
		token.Kind = COMMA
	case '.':
		token.Kind = DOT
	case ':':
		token.Kind = COLON
	default:
		panic("unreachable")
	}

	token.Value = string(c)
	return token
}

func (l *Lexer) hasChars() bool { return l.pos < len(l.buf) }
func (l *Lexer) hasNext() bool  { return l.pos+1 < len(l.buf) }

func (l *Lexer) advance() {
	l.pos++
	l.col++
}

func (l *Lexer) next() byte { return l.buf[l.pos+1] }
func (l *Lexer) read() byte { return l.buf[l.pos] }
