// errors.go: the closed error taxonomy of the crisp evaluation pipeline.
//
// What this file does
// -------------------
// Every failure produced by the parser or the evaluator is a *Error carrying
// an ErrorKind plus whatever structured context applies to that kind (the
// offending symbol, the expected vs. actual runtime type, the arity wanted vs.
// given). Callers branch on the kind with KindOf / IsKind instead of matching
// message text:
//
//	v, err := crisp.Evaluate("(/ 1 0)", env)
//	if crisp.IsKind(err, crisp.KindDivisionByZero) { ... }
//
// Rendering
// ---------
// Error() produces a one-line, plain-text message with an upper-case header:
//
//	DIVISION BY ZERO: (/ 1 0)
//	UNBOUND SYMBOL: undefined_symbol
//
// Dependencies (other files)
// --------------------------
//   - parser.go raises KindParse (and marks unterminated input as Incomplete).
//   - eval.go raises every other kind.
package crisp

import (
	"errors"
	"fmt"
)

/* ===========================
   PUBLIC API
   =========================== */

// ErrorKind enumerates the failure classes of the pipeline.
type ErrorKind int

const (
	KindParse          ErrorKind = iota // unbalanced or malformed parenthesis structure
	KindInvalidForm                     // special form with wrong arity or shape
	KindUnboundSymbol                   // no binding in the scope chain
	KindNotCallable                     // call position bound to a non-lambda
	KindTypeMismatch                    // operand of the wrong runtime type
	KindDivisionByZero                  // integer '/' or '%' by zero
	KindArity                           // fewer arguments than parameters
	KindOverflow                        // int64 arithmetic overflow
	KindStackOverflow                   // call depth limit exceeded
)

var kindLabels = [...]string{
	KindParse:          "PARSE ERROR",
	KindInvalidForm:    "INVALID FORM",
	KindUnboundSymbol:  "UNBOUND SYMBOL",
	KindNotCallable:    "NOT CALLABLE",
	KindTypeMismatch:   "TYPE MISMATCH",
	KindDivisionByZero: "DIVISION BY ZERO",
	KindArity:          "ARITY ERROR",
	KindOverflow:       "INTEGER OVERFLOW",
	KindStackOverflow:  "STACK OVERFLOW",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindLabels) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindLabels[k]
}

// Error is the structured failure returned by Parse and every Eval entry point.
//
// Only the fields relevant to Kind are populated:
//   - Symbol: KindUnboundSymbol, KindNotCallable, KindArity (callee), KindInvalidForm (form name)
//   - Expected, Actual: KindTypeMismatch (type names)
//   - Want, Got: KindInvalidForm and KindArity (counts)
//   - Incomplete: KindParse when input ended inside an open list
type Error struct {
	Kind       ErrorKind
	Msg        string
	Symbol     string
	Expected   string
	Actual     string
	Want       int
	Got        int
	Incomplete bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// KindOf reports the kind of err when it is (or wraps) a *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is (or wraps) a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// IsIncomplete reports whether err is a parse error caused by input that ended
// before every list was closed. REPLs use it to request a continuation line.
func IsIncomplete(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindParse && e.Incomplete
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: constructors
   =========================== */

func parseErr(format string, args ...any) *Error {
	return &Error{Kind: KindParse, Msg: fmt.Sprintf(format, args...)}
}

func incompleteErr(msg string) *Error {
	return &Error{Kind: KindParse, Msg: msg, Incomplete: true}
}

func formErr(form string, want, got int, msg string) *Error {
	return &Error{Kind: KindInvalidForm, Symbol: form, Want: want, Got: got, Msg: msg}
}

func arityFormErr(form string, want, got int, atLeast bool) *Error {
	q := "exactly"
	if atLeast {
		q = "at least"
	}
	return formErr(form, want, got,
		fmt.Sprintf("'%s' expects %s %d elements, got %d", form, q, want, got))
}

func unboundErr(name string) *Error {
	return &Error{Kind: KindUnboundSymbol, Symbol: name, Msg: name}
}

func notCallableErr(name string, v Atom) *Error {
	return &Error{
		Kind:   KindNotCallable,
		Symbol: name,
		Actual: v.Tag.String(),
		Msg:    fmt.Sprintf("%s is bound to a %s, not a lambda", name, v.Tag),
	}
}

func typeErr(context, expected string, got Atom) *Error {
	return &Error{
		Kind:     KindTypeMismatch,
		Expected: expected,
		Actual:   got.Tag.String(),
		Msg:      fmt.Sprintf("%s: expected %s, got %s %s", context, expected, got.Tag, FormatAtom(got)),
	}
}

func arityErr(name string, want, got int) *Error {
	return &Error{
		Kind:   KindArity,
		Symbol: name,
		Want:   want,
		Got:    got,
		Msg:    fmt.Sprintf("%s expects %d argument(s), got %d", name, want, got),
	}
}
