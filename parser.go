// parser.go: recursive-descent parser producing a single Atom tree.
//
// OVERVIEW
// --------
// The grammar accepts exactly one parenthesized form per call:
//
//	program := list
//	list    := '(' item* ')'
//	item    := list | Integer | Float | String | Symbol
//
// The parser walks the token slice with a forward cursor. A bare top-level
// atom, an unmatched ')', a missing ')' and trailing tokens after the form are
// all reported as *Error{Kind: KindParse}; nothing is silently truncated.
// ParseExpr additionally accepts a source made of one bare atom.
//
// Input that ends while a list is still open is additionally flagged as
// Incomplete (see IsIncomplete in errors.go) so that interactive shells can
// prompt for a continuation line instead of reporting a hard error.
//
// Dependencies
// ------------
//   - lexer.go (Tokenize, Token)
//   - atom.go  (Atom constructors)
//   - errors.go (*Error, parseErr, incompleteErr)
package crisp

////////////////////////////////////////////////////////////////////////////////
//                                  PUBLIC API
////////////////////////////////////////////////////////////////////////////////

// Parse tokenizes src and parses exactly one top-level list.
func Parse(src string) (Atom, error) {
	return ParseTokens(Tokenize(src))
}

// ParseExpr is Parse relaxed at the top level: a source consisting of a
// single bare atom ("x", "42") parses to that atom. Evaluation entry points use
// it so that a lone symbol can be looked up.
func ParseExpr(src string) (Atom, error) {
	toks := Tokenize(src)
	if len(toks) == 1 && toks[0].Type != LPAREN && toks[0].Type != RPAREN {
		return literal(toks[0]), nil
	}
	return ParseTokens(toks)
}

// ParseTokens parses exactly one top-level list from toks.
func ParseTokens(toks []Token) (Atom, error) {
	p := &parser{toks: toks}
	if p.atEnd() {
		return Atom{}, incompleteErr("empty program")
	}
	a, err := p.form()
	if err != nil {
		return Atom{}, err
	}
	if !p.atEnd() {
		return Atom{}, parseErr("unexpected trailing input after top-level form: %s", p.peek().Lexeme)
	}
	return a, nil
}

// ParseAll parses a sequence of top-level lists (file mode). Empty input
// yields an empty slice and no error.
func ParseAll(src string) ([]Atom, error) {
	p := &parser{toks: Tokenize(src)}
	var forms []Atom
	for !p.atEnd() {
		a, err := p.form()
		if err != nil {
			return nil, err
		}
		forms = append(forms, a)
	}
	return forms, nil
}

//// END_OF_PUBLIC

////////////////////////////////////////////////////////////////////////////////
///////////////////////////// PRIVATE IMPLEMENTATION ///////////////////////////
////////////////////////////////////////////////////////////////////////////////

type parser struct {
	toks []Token
	i    int
}

func (p *parser) atEnd() bool { return p.i >= len(p.toks) }
func (p *parser) peek() Token { return p.toks[p.i] }
func (p *parser) next() Token {
	t := p.toks[p.i]
	p.i++
	return t
}

// form parses one top-level list; bare atoms are rejected.
func (p *parser) form() (Atom, error) {
	switch t := p.peek(); t.Type {
	case LPAREN:
		p.i++
		return p.list()
	case RPAREN:
		return Atom{}, parseErr("unexpected ')'")
	default:
		return Atom{}, parseErr("expected '(' at top level, got %s", t.Lexeme)
	}
}

// list parses items up to and including the closing ')'. The opening '(' has
// already been consumed.
func (p *parser) list() (Atom, error) {
	var items []Atom
	for !p.atEnd() {
		t := p.next()
		switch t.Type {
		case RPAREN:
			return List(items...), nil
		case LPAREN:
			sub, err := p.list()
			if err != nil {
				return Atom{}, err
			}
			items = append(items, sub)
		default:
			items = append(items, literal(t))
		}
	}
	return Atom{}, incompleteErr("unexpected end of input: missing ')'")
}

func literal(t Token) Atom {
	switch t.Type {
	case INTEGER:
		return Int(t.Literal.(int64))
	case FLOAT:
		return Float(t.Literal.(float64))
	case STRING:
		return Str(t.Literal.(string))
	default:
		return Sym(t.Lexeme)
	}
}
