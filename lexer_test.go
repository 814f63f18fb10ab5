// lexer_test.go
package crisp

import (
	"reflect"
	"testing"
)

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := Tokenize(src)
	if !reflect.DeepEqual(tokenTypes(got), want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, tokenTypes(got))
	}
	return got
}

func Test_Lexer_Empty(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\t  \n"} {
		if got := Tokenize(src); len(got) != 0 {
			t.Fatalf("Tokenize(%q) = %v, want empty", src, got)
		}
	}
}

func Test_Lexer_ParensNeedNoWhitespace(t *testing.T) {
	wantTypes(t, "(+(* 2 3)4)", []TokenType{
		LPAREN, SYMBOL, LPAREN, SYMBOL, INTEGER, INTEGER, RPAREN, INTEGER, RPAREN,
	})
}

func Test_Lexer_Literals(t *testing.T) {
	toks := wantTypes(t, `(f 42 -7 2.5 1e3 "hi" x "a)`, []TokenType{
		LPAREN, SYMBOL, INTEGER, INTEGER, FLOAT, FLOAT, STRING, SYMBOL, SYMBOL, RPAREN,
	})
	if toks[2].Literal.(int64) != 42 || toks[3].Literal.(int64) != -7 {
		t.Fatalf("integer literals: %v %v", toks[2].Literal, toks[3].Literal)
	}
	if toks[4].Literal.(float64) != 2.5 || toks[5].Literal.(float64) != 1000 {
		t.Fatalf("float literals: %v %v", toks[4].Literal, toks[5].Literal)
	}
	if toks[6].Literal.(string) != "hi" || toks[6].Lexeme != `"hi"` {
		t.Fatalf("string literal: %#v", toks[6])
	}
	if toks[8].Lexeme != `"a` {
		t.Fatalf("unterminated quote should be a symbol, got %#v", toks[8])
	}
}

func Test_Lexer_Priority(t *testing.T) {
	cases := []struct {
		word string
		want TokenType
	}{
		{"0", INTEGER},
		{"+5", INTEGER},
		{"9223372036854775807", INTEGER},
		{"9223372036854775808", FLOAT}, // does not fit int64
		{"3.", FLOAT},
		{".5", FLOAT},
		{`""`, STRING},
		{`"`, SYMBOL},
		{"+", SYMBOL},
		{"-", SYMBOL},
		{"<=", SYMBOL},
		{"define", SYMBOL},
	}
	for _, c := range cases {
		got := Tokenize(c.word)
		if len(got) != 1 || got[0].Type != c.want {
			t.Fatalf("Tokenize(%q) = %v, want one %s", c.word, got, c.want)
		}
	}
}

func Test_Lexer_StringsDoNotSpanWhitespace(t *testing.T) {
	toks := wantTypes(t, `(print "hello world")`, []TokenType{
		LPAREN, SYMBOL, SYMBOL, SYMBOL, RPAREN,
	})
	if toks[2].Lexeme != `"hello` || toks[3].Lexeme != `world"` {
		t.Fatalf("unexpected split: %q %q", toks[2].Lexeme, toks[3].Lexeme)
	}
}
