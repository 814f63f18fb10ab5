package crisp

import "testing"

func Test_Atom_ConstructorsCopy(t *testing.T) {
	items := []Atom{Int(1), Int(2)}
	l := List(items...)
	items[0] = Sym("changed")
	if !Equal(l, List(Int(1), Int(2))) {
		t.Fatalf("List shares its input slice: %s", l)
	}

	params := []string{"a"}
	body := []Atom{Sym("a")}
	lam := LambdaAtom(params, body)
	params[0] = "b"
	body[0] = Int(0)
	if lam.AsLambda().Params[0] != "a" || !lam.AsLambda().Body[0].IsSym("a") {
		t.Fatalf("LambdaAtom shares its input slices: %s", lam)
	}
}

func Test_Atom_Equal(t *testing.T) {
	if Equal(Int(1), Float(1)) {
		t.Fatalf("int and float must differ structurally")
	}
	if Equal(Str("a"), Sym("a")) {
		t.Fatalf("string and symbol must differ")
	}
	if !Equal(Void(), Void()) {
		t.Fatalf("void != void")
	}
	a := LambdaAtom([]string{"x"}, []Atom{Sym("x")})
	b := LambdaAtom([]string{"x"}, []Atom{Sym("x")})
	c := LambdaAtom([]string{"y"}, []Atom{Sym("x")})
	if !Equal(a, b) || Equal(a, c) {
		t.Fatalf("lambda equality broken")
	}
	if Equal(List(Int(1)), List(Int(1), Int(2))) {
		t.Fatalf("lists of different length compared equal")
	}
}

func Test_Atom_TagString(t *testing.T) {
	if ALambda.String() != "lambda" || AInt.String() != "integer" {
		t.Fatalf("tag names: %s %s", ALambda, AInt)
	}
}
