// lexer.go: turns crisp source text into a flat token sequence.
package crisp

import (
	"strconv"
	"strings"
)

// TokenType represents the kind of token.
type TokenType int

const (
	LPAREN  TokenType = iota // "("
	RPAREN                   // ")"
	INTEGER                  // int64 literal
	FLOAT                    // float64 literal
	STRING                   // "..." with no inner whitespace
	SYMBOL                   // anything else
)

var tokenNames = [...]string{
	LPAREN:  "LPAREN",
	RPAREN:  "RPAREN",
	INTEGER: "INTEGER",
	FLOAT:   "FLOAT",
	STRING:  "STRING",
	SYMBOL:  "SYMBOL",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "ILLEGAL"
	}
	return tokenNames[t]
}

// Token is a lexical token with its parsed literal value.
// Tokens carry no source positions.
type Token struct {
	Type    TokenType
	Lexeme  string // raw word
	Literal any    // int64, float64 or string (STRING: contents without quotes)
}

// Tokenize splits src into tokens. It never fails: every word that is not a
// parenthesis, number or quoted string becomes a SYMBOL. Empty or
// whitespace-only input yields an empty slice.
//
// Strings have no escapes and cannot contain whitespace, because words are
// split on whitespace before classification.
func Tokenize(src string) []Token {
	src = strings.ReplaceAll(src, "(", " ( ")
	src = strings.ReplaceAll(src, ")", " ) ")
	words := strings.Fields(src)
	out := make([]Token, 0, len(words))
	for _, w := range words {
		out = append(out, classify(w))
	}
	return out
}

// classify applies the fixed priority order:
// paren → integer → float → quoted string → symbol.
func classify(w string) Token {
	switch w {
	case "(":
		return Token{Type: LPAREN, Lexeme: w}
	case ")":
		return Token{Type: RPAREN, Lexeme: w}
	}
	if n, err := strconv.ParseInt(w, 10, 64); err == nil {
		return Token{Type: INTEGER, Lexeme: w, Literal: n}
	}
	if f, err := strconv.ParseFloat(w, 64); err == nil {
		return Token{Type: FLOAT, Lexeme: w, Literal: f}
	}
	if len(w) >= 2 && w[0] == '"' && w[len(w)-1] == '"' {
		return Token{Type: STRING, Lexeme: w, Literal: w[1 : len(w)-1]}
	}
	return Token{Type: SYMBOL, Lexeme: w, Literal: w}
}
