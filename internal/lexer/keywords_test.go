package lexer

import "testing"

func TestLookupKeywordFoldsCase(t *testing.T) {
	tests := []struct {
		word string
		kind TokenKind
	}{
		{"Dim", DIM},
		{"dim", DIM},
		{"DIM", DIM},
		{"elseif", ELSEIF},
		{"WEND", WEND},
		{"byval", BYVAL},
		{"paramarray", PARAMARRAY},
		{"string", STRING_TYPE},
		{"currency", CURRENCY},
	}

	for _, tt := range tests {
		kind, ok := LookupKeyword(tt.word)
		if !ok {
			t.Errorf("LookupKeyword(%q): expected a keyword", tt.word)
			continue
		}
		if kind != tt.kind {
			t.Errorf("LookupKeyword(%q): expected %s, got %s", tt.word, tt.kind, kind)
		}
	}
}

func TestLookupKeywordRejectsIdentifiers(t *testing.T) {
	for _, word := range []string{"", "D", "Dims", "counter", "x1", "my_var", "Els"} {
		if _, ok := LookupKeyword(word); ok {
			t.Errorf("LookupKeyword(%q): expected no keyword match", word)
		}
	}
}

func TestLookupKeywordRejectsNonLetters(t *testing.T) {
	for _, word := range []string{"Dim2", "_if", "end_"} {
		if _, ok := LookupKeyword(word); ok {
			t.Errorf("LookupKeyword(%q): expected no keyword match", word)
		}
	}
}
