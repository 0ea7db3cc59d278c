package lexer

// The keyword classifier is a prefix tree over the reserved-word set.
// Edges are normalized to uppercase on insertion and on lookup, which is
// how VB6's case-insensitive keywords are handled without allocating a
// folded copy of every identifier.

type trieNode struct {
	children [26]*trieNode
	kind     TokenKind
	terminal bool
}

var keywordTrie = buildKeywordTrie()

var keywordKinds = map[string]TokenKind{
	"Dim":        DIM,
	"As":         AS,
	"Public":     PUBLIC,
	"Private":    PRIVATE,
	"Global":     GLOBAL,
	"Static":     STATIC,
	"Const":      CONST,
	"Sub":        SUB,
	"Function":   FUNCTION,
	"Property":   PROPERTY,
	"Get":        GET,
	"Let":        LET,
	"Set":        SET,
	"End":        END,
	"If":         IF,
	"Then":       THEN,
	"Else":       ELSE,
	"ElseIf":     ELSEIF,
	"For":        FOR,
	"To":         TO,
	"Step":       STEP,
	"Next":       NEXT,
	"While":      WHILE,
	"Wend":       WEND,
	"Do":         DO,
	"Loop":       LOOP,
	"Until":      UNTIL,
	"Select":     SELECT,
	"Case":       CASE,
	"Type":       TYPE,
	"Exit":       EXIT,
	"Call":       CALL,
	"ByVal":      BYVAL,
	"ByRef":      BYREF,
	"Optional":   OPTIONAL,
	"ParamArray": PARAMARRAY,
	"And":        AND,
	"Or":         OR,
	"Not":        NOT,
	"Xor":        XOR,
	"Mod":        MOD,
	"True":       TRUE,
	"False":      FALSE,
	"Nothing":    NOTHING,
	"Empty":      EMPTY,
	"Boolean":    BOOLEAN,
	"Byte":       BYTE,
	"Integer":    INTEGER,
	"Long":       LONG,
	"Single":     SINGLE,
	"Double":     DOUBLE,
	"Currency":   CURRENCY,
	"String":     STRING_TYPE,
	"Date":       DATE_TYPE,
	"Object":     OBJECT,
	"Variant":    VARIANT,
	"ReDim":      REDIM,
	"With":       WITH,
	"New":        NEW,
	"Is":         IS,
	"Like":       LIKE,
	"GoTo":       GOTO,
	"On":         ON,
	"Error":      ERROR,
	"Resume":     RESUME,
	"Declare":    DECLARE,
	"Enum":       ENUM,
	"Each":       EACH,
	"In":         IN,
}

func buildKeywordTrie() *trieNode {
	root := &trieNode{}

	for word, kind := range keywordKinds {
		node := root
		for i := 0; i < len(word); i++ {
			idx, ok := foldLetter(word[i])
			if !ok {
				panic("keyword contains a non-letter: " + word)
			}

			if node.children[idx] == nil {
				node.children[idx] = &trieNode{}
			}
			node = node.children[idx]
		}

		node.kind = kind
		node.terminal = true
	}

	return root
}

func foldLetter(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	}

	return 0, false
}

// LookupKeyword classifies a word against the reserved-word set,
// case-insensitively and in O(len(word)). The second return is false for
// plain identifiers.
func LookupKeyword(word string) (TokenKind, bool) {
	node := keywordTrie
	for i := 0; i < len(word); i++ {
		idx, ok := foldLetter(word[i])
		if !ok {
			return IDENT, false
		}

		node = node.children[idx]
		if node == nil {
			return IDENT, false
		}
	}

	if !node.terminal {
		return IDENT, false
	}

	return node.kind, true
}
