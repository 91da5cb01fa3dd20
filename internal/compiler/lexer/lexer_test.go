package lexer

import (
	"testing"

	"github.com/corelang/pytocpp/internal/compiler/token"
)

func collectRaw(src string) []token.Token {
	l := New(src)
	var out []token.Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Type == token.EOF {
			return out
		}
	}
}

func typesOf(toks []token.Token) []token.Type {
	types := make([]token.Type, len(toks))
	for i, t := range toks {
		types[i] = t.Type
	}
	return types
}

func TestNextTokenOperators(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"==", token.EQUALITY},
		{"!=", token.INEQUALITY},
		{"<=", token.LESSER_EQUAL},
		{">=", token.GREATER_EQUAL},
		{"<<", token.L_SHIFT},
		{">>", token.R_SHIFT},
		{"**=", token.EXPONENTIATION_ASSIGNMENT},
		{"**", token.DOUBLE_STAR},
		{"//=", token.FLOOR_DIVISION_ASSIGNMENT},
		{"//", token.DOUBLE_SLASH},
		{"+=", token.ADDITION_ASSIGNMENT},
		{"-=", token.SUBTRACTION_ASSIGNMENT},
		{"*=", token.MULTIPLICATION_ASSIGNMENT},
		{"/=", token.DIVISION_ASSIGNMENT},
		{"%=", token.MODULO_ASSIGNMENT},
		{"=", token.ASSIGNMENT},
		{"+", token.PLUS},
		{"-", token.MINUS},
		{"*", token.STAR},
		{"/", token.SLASH},
		{"%", token.PERCENT},
		{"|", token.PIPE},
		{"^", token.CARET},
		{"&", token.AMPERSAND},
	}

	for _, tt := range tests {
		l := New(tt.input)
		got := l.NextToken()
		if got.Type != tt.want {
			t.Errorf("NextToken(%q) = %v, want %v", tt.input, got.Type, tt.want)
		}
		if got.Literal != tt.input {
			t.Errorf("NextToken(%q).Literal = %q, want %q", tt.input, got.Literal, tt.input)
		}
	}
}

func TestNextTokenKeywordsAndIdentifiers(t *testing.T) {
	toks := collectRaw("def if True x_1")
	want := []token.Type{token.DEF, token.WHITESPACE, token.IF, token.WHITESPACE, token.TRUE, token.WHITESPACE, token.IDENT, token.EOF}
	got := typesOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNextTokenNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   token.Type
	}{
		{"0x1F", token.INT},
		{"0o17", token.INT},
		{"0b101", token.INT},
		{"42", token.INT},
		{"3.14", token.FLOAT},
		{"3.", token.FLOAT},
		{"1e10", token.FLOAT},
		{"1.5e-3", token.FLOAT},
	}
	for _, tt := range tests {
		l := New(tt.input)
		got := l.NextToken()
		if got.Type != tt.typ {
			t.Errorf("NextToken(%q).Type = %v, want %v", tt.input, got.Type, tt.typ)
		}
		if got.Literal != tt.input {
			t.Errorf("NextToken(%q).Literal = %q, want %q", tt.input, got.Literal, tt.input)
		}
	}
}

func TestNextTokenStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"line\nbreak"`, "line\nbreak"},
		{`"tab\ttab"`, "tab\ttab"},
		{`"quote\"inside"`, `quote"inside`},
		{`"""triple"""`, "triple"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		got := l.NextToken()
		if got.Type != token.STRING {
			t.Errorf("NextToken(%q).Type = %v, want STRING", tt.input, got.Type)
		}
		if got.Literal != tt.want {
			t.Errorf("NextToken(%q).Literal = %q, want %q", tt.input, got.Literal, tt.want)
		}
	}
}

func TestNextTokenCommentsProduceNoToken(t *testing.T) {
	toks := collectRaw("x = 1 # trailing comment\ny = 2")
	for _, tok := range toks {
		if tok.Type == token.COMMENT {
			t.Errorf("comments must not produce a token, got %v", toks)
		}
	}
}

func TestNextTokenUnrecognizedSequence(t *testing.T) {
	l := New("$")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Errorf("NextToken(%q).Type = %v, want ILLEGAL", "$", tok.Type)
	}
}
