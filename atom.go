// atom.go: the single value/AST type of the crisp language.
//
// An Atom is both syntax (what Parse produces) and runtime value (what the
// evaluator returns). A List used as an unevaluated form and a List returned
// as a value share the same representation.
//
// Atoms are immutable: constructors copy the slices they receive, and no code
// in this package writes into an Atom after it has been built.
package crisp

import "fmt"

////////////////////////////////////////////////////////////////////////////////
//                              PUBLIC TYPES & CTORS
////////////////////////////////////////////////////////////////////////////////

// AtomTag enumerates the variants an Atom may hold.
// The tag determines the dynamic type of Atom.Data.
type AtomTag int

const (
	AVoid   AtomTag = iota // no payload
	AInt                   // int64
	AFloat                 // float64
	ABool                  // bool
	AStr                   // string (contents, quotes stripped)
	ASym                   // string (name)
	ALambda                // *Lambda
	AList                  // []Atom
)

var tagNames = [...]string{
	AVoid:   "void",
	AInt:    "integer",
	AFloat:  "float",
	ABool:   "bool",
	AStr:    "string",
	ASym:    "symbol",
	ALambda: "lambda",
	AList:   "list",
}

func (t AtomTag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return fmt.Sprintf("AtomTag(%d)", int(t))
	}
	return tagNames[t]
}

// Atom is a closed tagged union.
//
// Invariants:
//   - Tag==AVoid  → Data is nil.
//   - Tag==ALambda → Data is *Lambda.
//   - Tag==AList  → Data is []Atom (possibly empty, never nil after List()).
type Atom struct {
	Tag  AtomTag
	Data any
}

// Lambda is an unevaluated function: ordered parameter names and the ordered
// body expressions. It captures no environment.
type Lambda struct {
	Params []string
	Body   []Atom
}

// Void is the no-value result of statements (define, do, print).
func Void() Atom { return Atom{Tag: AVoid} }

func Int(n int64) Atom     { return Atom{Tag: AInt, Data: n} }
func Float(f float64) Atom { return Atom{Tag: AFloat, Data: f} }
func Bool(b bool) Atom     { return Atom{Tag: ABool, Data: b} }
func Str(s string) Atom    { return Atom{Tag: AStr, Data: s} }
func Sym(name string) Atom { return Atom{Tag: ASym, Data: name} }

// List builds a list atom from a copy of items.
func List(items ...Atom) Atom {
	cp := make([]Atom, len(items))
	copy(cp, items)
	return Atom{Tag: AList, Data: cp}
}

// LambdaAtom builds a lambda value from copies of params and body.
func LambdaAtom(params []string, body []Atom) Atom {
	ps := make([]string, len(params))
	copy(ps, params)
	bs := make([]Atom, len(body))
	copy(bs, body)
	return Atom{Tag: ALambda, Data: &Lambda{Params: ps, Body: bs}}
}

// Accessors. Each panics if the tag does not match; check Tag first.

func (a Atom) AsInt() int64        { return a.Data.(int64) }
func (a Atom) AsFloat() float64    { return a.Data.(float64) }
func (a Atom) AsBool() bool        { return a.Data.(bool) }
func (a Atom) AsStr() string       { return a.Data.(string) }
func (a Atom) AsSym() string       { return a.Data.(string) }
func (a Atom) AsLambda() *Lambda   { return a.Data.(*Lambda) }
func (a Atom) AsList() []Atom      { return a.Data.([]Atom) }
func (a Atom) IsSym(n string) bool { return a.Tag == ASym && a.Data.(string) == n }

// String renders the natural text form (see FormatAtom).
func (a Atom) String() string { return FormatAtom(a) }

// Equal reports structural equality. Floats compare with ==, so NaN != NaN.
func Equal(a, b Atom) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case AVoid:
		return true
	case AInt:
		return a.AsInt() == b.AsInt()
	case AFloat:
		return a.AsFloat() == b.AsFloat()
	case ABool:
		return a.AsBool() == b.AsBool()
	case AStr, ASym:
		return a.Data.(string) == b.Data.(string)
	case ALambda:
		x, y := a.AsLambda(), b.AsLambda()
		if len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if x.Params[i] != y.Params[i] {
				return false
			}
		}
		return equalSlices(x.Body, y.Body)
	case AList:
		return equalSlices(a.AsList(), b.AsList())
	}
	return false
}

func equalSlices(xs, ys []Atom) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}
