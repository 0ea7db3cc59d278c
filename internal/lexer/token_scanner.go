package lexer

type TokenScanner interface {
	Read() Token
	Unread() Token
	Peek() Token
	PeekAt(offset int) Token
	HasTokens() bool
}

// SimpleTokenScanner walks a token slice. Reading past the end keeps
// returning the trailing EOF sentinel.
type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) Read() Token {
	token := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}

	return token
}

func (s *SimpleTokenScanner) Unread() Token {
	if s.pos > 0 {
		s.pos--
	}

	return s.tokens[s.pos]
}

func (s *SimpleTokenScanner) Peek() Token {
	return s.tokens[s.pos]
}

func (s *SimpleTokenScanner) PeekAt(offset int) Token {
	idx := s.pos + offset
	if idx >= len(s.tokens) {
		idx = len(s.tokens) - 1
	}

	return s.tokens[idx]
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.pos < len(s.tokens)-1
}
