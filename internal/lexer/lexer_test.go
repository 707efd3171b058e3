package lexer

import (
	"testing"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

func lexAll(t *testing.T, input string) []plexer.Token {
	t.Helper()
	l, err := MustNew().LexString("test", input)
	if err != nil {
		t.Fatalf("LexString: %v", err)
	}
	var out []plexer.Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, tok)
		if tok.EOF() {
			return out
		}
	}
}

func TestNextToken(t *testing.T) {
	input := `total_sum = (a + 10) * b;
c - 2 / x;
`
	tests := []struct {
		expectedType    plexer.TokenType
		expectedLiteral string
	}{
		{Ident, "total_sum"},
		{Punct, "="},
		{Punct, "("},
		{Ident, "a"},
		{Punct, "+"},
		{Int, "10"},
		{Punct, ")"},
		{Punct, "*"},
		{Ident, "b"},
		{Punct, ";"},
		{Ident, "c"},
		{Punct, "-"},
		{Int, "2"},
		{Punct, "/"},
		{Ident, "x"},
		{Punct, ";"},
		{plexer.EOF, ""},
	}

	tokens := lexAll(t, input)
	if len(tokens) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tests), tokens)
	}
	for i, tt := range tests {
		if tokens[i].Type != tt.expectedType {
			t.Errorf("tests[%d] - type wrong. expected=%d, got=%d", i, tt.expectedType, tokens[i].Type)
		}
		if tokens[i].Value != tt.expectedLiteral {
			t.Errorf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tokens[i].Value)
		}
	}
}

func TestPositions(t *testing.T) {
	tokens := lexAll(t, "a = 1;\n  bb;")
	tests := []struct {
		value                string
		offset, line, column int
	}{
		{"a", 0, 1, 1},
		{"=", 2, 1, 3},
		{"1", 4, 1, 5},
		{";", 5, 1, 6},
		{"bb", 9, 2, 3},
		{";", 11, 2, 5},
		{"", 12, 2, 6},
	}
	for i, tt := range tests {
		pos := tokens[i].Pos
		if tokens[i].Value != tt.value || pos.Offset != tt.offset || pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("tests[%d] - got %q at %d:%d (offset %d), want %q at %d:%d (offset %d)",
				i, tokens[i].Value, pos.Line, pos.Column, pos.Offset, tt.value, tt.line, tt.column, tt.offset)
		}
		if pos.Filename != "test" {
			t.Errorf("tests[%d] - filename %q", i, pos.Filename)
		}
	}
}

func TestInvalidCharacters(t *testing.T) {
	tokens := lexAll(t, "Xy @ é1")
	tests := []struct {
		expectedType    plexer.TokenType
		expectedLiteral string
	}{
		{Invalid, "X"},
		{Ident, "y"},
		{Invalid, "@"},
		{Invalid, "é"},
		{Int, "1"},
		{plexer.EOF, ""},
	}
	if len(tokens) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tests), tokens)
	}
	for i, tt := range tests {
		if tokens[i].Type != tt.expectedType || tokens[i].Value != tt.expectedLiteral {
			t.Errorf("tests[%d] - got (%d, %q), want (%d, %q)",
				i, tokens[i].Type, tokens[i].Value, tt.expectedType, tt.expectedLiteral)
		}
	}
	if col := tokens[4].Pos.Column; col != 7 {
		t.Errorf("column after multibyte rune = %d, want 7", col)
	}
}

func TestEmptyInput(t *testing.T) {
	tokens := lexAll(t, " \t\r\n")
	if len(tokens) != 1 || !tokens[0].EOF() {
		t.Fatalf("expected only EOF, got %v", tokens)
	}
}

func TestSymbols(t *testing.T) {
	syms := MustNew().Symbols()
	for _, name := range []string{"EOF", "Ident", "Int", "Punct", "Invalid"} {
		if _, ok := syms[name]; !ok {
			t.Errorf("missing symbol %s", name)
		}
	}
}
