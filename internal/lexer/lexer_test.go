package lexer

import (
	"testing"

	"github.com/kplang/kplc/internal/errors"
	"github.com/kplang/kplc/pkg/token"
)

func TestNextToken(t *testing.T) {
	input := `program demo;
const max = 10;
var x : integer;
begin
  x := max * 2;
  if x <> 20 then x := x - 1
end.`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.PROGRAM, "program"},
		{token.IDENT, "demo"},
		{token.SEMICOLON, ";"},
		{token.CONST, "const"},
		{token.IDENT, "max"},
		{token.EQ, "="},
		{token.NUMBER, "10"},
		{token.SEMICOLON, ";"},
		{token.VAR, "var"},
		{token.IDENT, "x"},
		{token.COLON, ":"},
		{token.INTEGER, "integer"},
		{token.SEMICOLON, ";"},
		{token.BEGIN, "begin"},
		{token.IDENT, "x"},
		{token.ASSIGN, ":="},
		{token.IDENT, "max"},
		{token.ASTERISK, "*"},
		{token.NUMBER, "2"},
		{token.SEMICOLON, ";"},
		{token.IF, "if"},
		{token.IDENT, "x"},
		{token.NOT_EQ, "<>"},
		{token.NUMBER, "20"},
		{token.THEN, "then"},
		{token.IDENT, "x"},
		{token.ASSIGN, ":="},
		{token.IDENT, "x"},
		{token.MINUS, "-"},
		{token.NUMBER, "1"},
		{token.END, "end"},
		{token.DOT, "."},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%s, got=%s (%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
	if errs := l.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected lexer errors: %v", errs)
	}
}

func TestNumberValue(t *testing.T) {
	l := New("42 0 1234567")
	for _, want := range []int64{42, 0, 1234567} {
		tok := l.NextToken()
		if tok.Type != token.NUMBER {
			t.Fatalf("expected NUMBER, got %s", tok.Type)
		}
		if tok.Value != want {
			t.Errorf("NUMBER value = %d, want %d", tok.Value, want)
		}
	}
}

func TestCharLiteral(t *testing.T) {
	l := New("'a' 'Z' '0'")
	for _, want := range []string{"a", "Z", "0"} {
		tok := l.NextToken()
		if tok.Type != token.CHARLIT {
			t.Fatalf("expected CHARLIT, got %s (%q)", tok.Type, tok.Literal)
		}
		if tok.Literal != want {
			t.Errorf("CHARLIT literal = %q, want %q", tok.Literal, want)
		}
	}
}

func TestPositions(t *testing.T) {
	input := "var x\n  y := 1"

	tests := []struct {
		line, column int
	}{
		{1, 1}, // var
		{1, 5}, // x
		{2, 3}, // y
		{2, 5}, // :=
		{2, 8}, // 1
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Pos.Line != tt.line || tok.Pos.Column != tt.column {
			t.Errorf("tests[%d] (%s %q) - pos = %d:%d, want %d:%d",
				i, tok.Type, tok.Literal, tok.Pos.Line, tok.Pos.Column, tt.line, tt.column)
		}
	}
}

func TestComments(t *testing.T) {
	input := `(* header *) x (* mid
spanning lines *) y`

	l := New(input)
	for _, want := range []string{"x", "y"} {
		tok := l.NextToken()
		if tok.Type != token.IDENT || tok.Literal != want {
			t.Fatalf("expected IDENT %q, got %s %q", want, tok.Type, tok.Literal)
		}
	}
	if tok := l.NextToken(); tok.Type != token.EOF {
		t.Fatalf("expected EOF, got %s", tok.Type)
	}
}

func TestUnterminatedComment(t *testing.T) {
	l := New("x (* never closed")
	if tok := l.NextToken(); tok.Type != token.IDENT {
		t.Fatalf("expected IDENT, got %s", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}

	errs := l.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(errs))
	}
	if errs[0].Kind != errors.UnterminatedComment {
		t.Errorf("error kind = %v, want UnterminatedComment", errs[0].Kind)
	}
	if errs[0].Pos.Line != 1 || errs[0].Pos.Column != 3 {
		t.Errorf("error pos = %d:%d, want 1:3", errs[0].Pos.Line, errs[0].Pos.Column)
	}
}

func TestUnterminatedCharLiteral(t *testing.T) {
	tests := []string{"'", "'a", "'ab'"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			l := New(input)
			tok := l.NextToken()
			if tok.Type != token.ILLEGAL {
				t.Fatalf("expected ILLEGAL, got %s (%q)", tok.Type, tok.Literal)
			}
			errs := l.Errors()
			if len(errs) == 0 || errs[0].Kind != errors.UnterminatedChar {
				t.Fatalf("expected UnterminatedChar error, got %v", errs)
			}
		})
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("x ! y")
	l.NextToken() // x
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL || tok.Literal != "!" {
		t.Fatalf("expected ILLEGAL %q, got %s %q", "!", tok.Type, tok.Literal)
	}
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Kind != errors.IllegalCharacter {
		t.Fatalf("expected IllegalCharacter error, got %v", errs)
	}
	// Scanning continues past the offending character.
	if tok := l.NextToken(); tok.Type != token.IDENT || tok.Literal != "y" {
		t.Fatalf("expected IDENT y after illegal char, got %s %q", tok.Type, tok.Literal)
	}
}

func TestCaseSensitivity(t *testing.T) {
	l := New("Begin BEGIN begin")
	if tok := l.NextToken(); tok.Type != token.IDENT {
		t.Errorf("Begin should be IDENT, got %s", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != token.IDENT {
		t.Errorf("BEGIN should be IDENT, got %s", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != token.BEGIN {
		t.Errorf("begin should be BEGIN, got %s", tok.Type)
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := New("")
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != token.EOF {
			t.Fatalf("call %d: expected EOF, got %s", i, tok.Type)
		}
	}
}
