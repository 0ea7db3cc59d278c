package lexer

import "testing"

func tokenize(t *testing.T, source string) []Token {
	t.Helper()

	tokens, err := NewLexer([]byte(source)).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", source, err)
	}

	return tokens
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	for _, source := range []string{"dim", "Dim", "DIM", "dIm"} {
		tokens := tokenize(t, source)
		if len(tokens) != 2 {
			t.Fatalf("Tokenize(%q): expected keyword + EOF, got %d tokens", source, len(tokens))
		}
		if tokens[0].Kind != DIM {
			t.Errorf("Tokenize(%q): expected DIM, got %s", source, tokens[0].Kind)
		}
	}
}

func TestTokenizeResetsCursorBetweenCalls(t *testing.T) {
	lx := NewLexer([]byte("Dim a\nDim b\nDim c"))
	if _, err := lx.Tokenize(); err != nil {
		t.Fatalf("first Tokenize failed: %v", err)
	}

	lx.buf = []byte("x")
	tokens, err := lx.Tokenize()
	if err != nil {
		t.Fatalf("second Tokenize failed: %v", err)
	}

	if tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Errorf("expected cursor reset to 1:1, got %d:%d", tokens[0].Line, tokens[0].Column)
	}
}

func TestNewlineRunsCollapse(t *testing.T) {
	tokens := tokenize(t, "a\r\n\r\n\nb")

	kinds := []TokenKind{IDENT, NEWLINE, IDENT, EOF}
	if len(tokens) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d: %v", len(kinds), len(tokens), tokens)
	}
	for i, kind := range kinds {
		if tokens[i].Kind != kind {
			t.Errorf("token %d: expected %s, got %s", i, kind, tokens[i].Kind)
		}
	}

	if tokens[2].Line != 4 {
		t.Errorf("expected b on line 4, got %d", tokens[2].Line)
	}
}

func TestCarriageReturnOnlyLineEndings(t *testing.T) {
	tokens := tokenize(t, "a\rb\r\nc")

	kinds := []TokenKind{IDENT, NEWLINE, IDENT, NEWLINE, IDENT, EOF}
	if len(tokens) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d: %v", len(kinds), len(tokens), tokens)
	}

	if tokens[2].Line != 2 {
		t.Errorf("expected b on line 2, got %d", tokens[2].Line)
	}
	if tokens[4].Line != 3 {
		t.Errorf("expected c on line 3, got %d", tokens[4].Line)
	}
}

func TestCommentsBecomeTokens(t *testing.T) {
	tokens := tokenize(t, "x ' trailing comment")

	if tokens[1].Kind != COMMENT {
		t.Fatalf("expected COMMENT, got %s", tokens[1].Kind)
	}
	if tokens[1].Value != " trailing comment" {
		t.Errorf("unexpected comment text: %q", tokens[1].Value)
	}
}

func TestStringLiteralDoubledQuoteEscape(t *testing.T) {
	tokens := tokenize(t, `"say ""hi"" now"`)

	if tokens[0].Kind != STRING_LIT {
		t.Fatalf("expected STRING, got %s", tokens[0].Kind)
	}
	if tokens[0].Value != `say "hi" now` {
		t.Errorf("unexpected string value: %q", tokens[0].Value)
	}
}

func TestUnterminatedStringFails(t *testing.T) {
	_, err := NewLexer([]byte("x = \"oops\nEnd")).Tokenize()
	if err == nil {
		t.Fatal("expected an error for unterminated string")
	}

	lexErr, ok := err.(*LexerError)
	if !ok {
		t.Fatalf("expected *LexerError, got %T", err)
	}
	if lexErr.GetLine() != 1 {
		t.Errorf("expected error on line 1, got %d", lexErr.GetLine())
	}
}

func TestDateLiteralKeptVerbatim(t *testing.T) {
	tokens := tokenize(t, "#12/25/2020#")

	if tokens[0].Kind != DATE_LIT {
		t.Fatalf("expected DATE, got %s", tokens[0].Kind)
	}
	if tokens[0].Value != "12/25/2020" {
		t.Errorf("unexpected date value: %q", tokens[0].Value)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		source string
		value  string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"1e5", "1e5"},
		{"2.5E-3", "2.5E-3"},
		{"0&H4D", "&H4D"},
		{"0&h4d", "&h4d"},
		{"0&17", "&17"},
	}

	for _, tt := range tests {
		tokens := tokenize(t, tt.source)
		if tokens[0].Kind != NUMBER {
			t.Errorf("Tokenize(%q): expected NUMBER, got %s", tt.source, tokens[0].Kind)
			continue
		}
		if tokens[0].Value != tt.value {
			t.Errorf("Tokenize(%q): expected value %q, got %q", tt.source, tt.value, tokens[0].Value)
		}
	}
}

func TestTwoCharOperatorsMatchGreedily(t *testing.T) {
	tokens := tokenize(t, "a <= b >= c <> d < e > f")

	kinds := []TokenKind{IDENT, LEQ, IDENT, GEQ, IDENT, NEQ, IDENT, LT, IDENT, GT, IDENT, EOF}
	if len(tokens) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d", len(kinds), len(tokens))
	}
	for i, kind := range kinds {
		if tokens[i].Kind != kind {
			t.Errorf("token %d: expected %s, got %s", i, kind, tokens[i].Kind)
		}
	}
}

func TestUnrecognizedCharacterFails(t *testing.T) {
	_, err := NewLexer([]byte("Dim x\ny = $")).Tokenize()
	if err == nil {
		t.Fatal("expected an error for unrecognized character")
	}

	lexErr, ok := err.(*LexerError)
	if !ok {
		t.Fatalf("expected *LexerError, got %T", err)
	}
	if lexErr.GetLine() != 2 {
		t.Errorf("expected error on line 2, got %d", lexErr.GetLine())
	}
	if lexErr.GetColumn() != 5 {
		t.Errorf("expected error at column 5, got %d", lexErr.GetColumn())
	}
}

func TestStreamEndsWithSingleEOF(t *testing.T) {
	tokens := tokenize(t, "Dim x")

	eofCount := 0
	for _, token := range tokens {
		if token.Kind == EOF {
			eofCount++
		}
	}
	if eofCount != 1 {
		t.Errorf("expected exactly one EOF sentinel, got %d", eofCount)
	}
	if tokens[len(tokens)-1].Kind != EOF {
		t.Errorf("expected EOF last, got %s", tokens[len(tokens)-1].Kind)
	}
}

func TestColonIsPunctuation(t *testing.T) {
	tokens := tokenize(t, "a = 1: b = 2")

	foundColon := false
	for _, token := range tokens {
		if token.Kind == COLON {
			foundColon = true
		}
	}
	if !foundColon {
		t.Error("expected a COLON token")
	}
}
