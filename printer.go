// printer.go: textual rendering of Atoms.
//
// FormatAtom is the natural text form used by `print` and by shells:
//
//	Void            → Void
//	Int / Float     → 42, 3.5, 3 (floats use the shortest 'g' form)
//	Bool            → true / false
//	String          → raw contents (no quotes)
//	Symbol          → its name
//	Lambda          → Lambda(x y ) (+ x y)
//	List            → (a b c)
//
// FormatResult applies the shell convention on top: a Void result prints
// nothing at all.
package crisp

import (
	"strconv"
	"strings"
)

// FormatAtom renders a in its natural text form.
func FormatAtom(a Atom) string {
	var b strings.Builder
	writeAtom(&b, a)
	return b.String()
}

// FormatResult renders a top-level evaluation result. ok is false for Void,
// which shells display as nothing.
func FormatResult(a Atom) (s string, ok bool) {
	if a.Tag == AVoid {
		return "", false
	}
	return FormatAtom(a), true
}

func writeAtom(b *strings.Builder, a Atom) {
	switch a.Tag {
	case AVoid:
		b.WriteString("Void")
	case AInt:
		b.WriteString(strconv.FormatInt(a.AsInt(), 10))
	case AFloat:
		b.WriteString(strconv.FormatFloat(a.AsFloat(), 'g', -1, 64))
	case ABool:
		b.WriteString(strconv.FormatBool(a.AsBool()))
	case AStr, ASym:
		b.WriteString(a.Data.(string))
	case ALambda:
		lam := a.AsLambda()
		b.WriteString("Lambda(")
		for _, p := range lam.Params {
			b.WriteString(p)
			b.WriteByte(' ')
		}
		b.WriteByte(')')
		for _, x := range lam.Body {
			b.WriteByte(' ')
			writeAtom(b, x)
		}
	case AList:
		b.WriteByte('(')
		for i, x := range a.AsList() {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeAtom(b, x)
		}
		b.WriteByte(')')
	default:
		b.WriteString("<unknown>")
	}
}
