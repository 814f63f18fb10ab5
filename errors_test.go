package crisp

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", sub, s)
	}
}

func Test_Errors_Rendering(t *testing.T) {
	ip, _ := newTestInterp(t)
	cases := []struct {
		src    string
		header string
		detail string
	}{
		{"(+ 1 2", "PARSE ERROR:", "missing ')'"},
		{"(define 1 2)", "INVALID FORM:", "must be a symbol"},
		{"(if (< 1 2) 1)", "INVALID FORM:", "'if' expects exactly 4 elements, got 3"},
		{"(do 1)", "INVALID FORM:", "at least 3"},
		{"nope", "UNBOUND SYMBOL:", "nope"},
		{`(+ 1 "x")`, "TYPE MISMATCH:", "expected number, got string x"},
		{"(/ 3 0)", "DIVISION BY ZERO:", "(/ 3 0)"},
		{"(+ 9223372036854775807 9223372036854775807)", "INTEGER OVERFLOW:", "64 bits"},
	}
	for _, c := range cases {
		_, err := ip.EvalSource(c.src)
		if err == nil {
			t.Fatalf("%s: expected error", c.src)
		}
		msg := err.Error()
		if !strings.HasPrefix(msg, c.header) {
			t.Fatalf("%s: message %q lacks header %q", c.src, msg, c.header)
		}
		mustContain(t, msg, c.detail)
	}

	mustEval(t, ip, "(define k 1)")
	mustEval(t, ip, "(define f (lambda (a b) (+ a b)))")
	_, err := ip.EvalSource("(k)")
	mustContain(t, err.Error(), "NOT CALLABLE: k is bound to a integer")
	_, err = ip.EvalSource("(f 1)")
	mustContain(t, err.Error(), "ARITY ERROR: f expects 2 argument(s), got 1")
}

func Test_Errors_KindHelpersSeeWrappedErrors(t *testing.T) {
	_, err := Evaluate("(/ 1 0)", NewEnv())
	wrapped := fmt.Errorf("running script: %w", err)

	if k, ok := KindOf(wrapped); !ok || k != KindDivisionByZero {
		t.Fatalf("KindOf(wrapped) = %v, %v", k, ok)
	}
	if !IsKind(wrapped, KindDivisionByZero) || IsKind(wrapped, KindParse) {
		t.Fatalf("IsKind mismatch for %v", wrapped)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatalf("plain errors have no kind")
	}
	if IsIncomplete(wrapped) {
		t.Fatalf("division error is not incomplete")
	}
	_, perr := Parse("(a (b")
	if !IsIncomplete(fmt.Errorf("repl: %w", perr)) {
		t.Fatalf("wrapped incomplete parse error not recognised")
	}
}

func Test_Errors_KindString(t *testing.T) {
	if KindArity.String() != "ARITY ERROR" {
		t.Fatalf("KindArity = %q", KindArity.String())
	}
	if got := ErrorKind(99).String(); got != "ErrorKind(99)" {
		t.Fatalf("unknown kind = %q", got)
	}
}
