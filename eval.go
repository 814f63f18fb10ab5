// eval.go: evaluation rules: special forms, arithmetic, calls.
package crisp

import (
	"fmt"
	"log/slog"
	"math"
)

// Special-form and operator names recognised in head position. They are
// matched before any environment lookup, so they cannot be rebound.
const (
	formDefine = "define"
	formIf     = "if"
	formDo     = "do"
	formLambda = "lambda"
	formQuote  = "quote"
	formPrint  = "print"
)

var binaryOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"<": true, "<=": true, ">": true, ">=": true, "=": true, "!=": true,
}

func (ip *Interpreter) eval(a Atom, s Scope) (Atom, error) {
	switch a.Tag {
	case AVoid, AInt, AFloat, ABool, AStr:
		return a, nil
	case ASym:
		v, ok := ip.Env.Get(s, a.AsSym())
		if !ok {
			return Atom{}, unboundErr(a.AsSym())
		}
		return v, nil
	case ALambda:
		return Void(), nil
	case AList:
		return ip.evalList(a.AsList(), s)
	}
	return Atom{}, fmt.Errorf("crisp: unknown atom tag %d", a.Tag)
}

func (ip *Interpreter) evalList(xs []Atom, s Scope) (Atom, error) {
	if len(xs) == 0 || xs[0].Tag != ASym {
		return ip.evalSequence(xs, s)
	}
	head := xs[0].AsSym()
	if binaryOps[head] {
		return ip.evalBinary(head, xs, s)
	}
	switch head {
	case formDefine:
		return ip.evalDefine(xs, s)
	case formIf:
		return ip.evalIf(xs, s)
	case formDo:
		return ip.evalDo(xs, s)
	case formLambda:
		return evalLambda(xs)
	case formQuote:
		if len(xs) < 2 {
			return Atom{}, arityFormErr(formQuote, 2, len(xs), true)
		}
		return xs[1], nil
	case formPrint:
		return ip.evalPrint(xs, s)
	default:
		return ip.evalCall(head, xs, s)
	}
}

// evalSequence evaluates each element independently, dropping Void results.
func (ip *Interpreter) evalSequence(xs []Atom, s Scope) (Atom, error) {
	out := make([]Atom, 0, len(xs))
	for _, x := range xs {
		v, err := ip.eval(x, s)
		if err != nil {
			return Atom{}, err
		}
		if v.Tag != AVoid {
			out = append(out, v)
		}
	}
	return Atom{Tag: AList, Data: out}, nil
}

/* ===========================
   special forms
   =========================== */

func (ip *Interpreter) evalDefine(xs []Atom, s Scope) (Atom, error) {
	if len(xs) != 3 {
		return Atom{}, arityFormErr(formDefine, 3, len(xs), false)
	}
	if xs[1].Tag != ASym {
		return Atom{}, formErr(formDefine, 3, len(xs),
			fmt.Sprintf("'define' target must be a symbol, got %s", xs[1].Tag))
	}
	v, err := ip.eval(xs[2], s)
	if err != nil {
		return Atom{}, err
	}
	name := xs[1].AsSym()
	ip.Env.Set(s, name, v)
	ip.log.Debug("define", slog.String("name", name), slog.Int("scope", int(s)))
	return Void(), nil
}

func (ip *Interpreter) evalIf(xs []Atom, s Scope) (Atom, error) {
	if len(xs) != 4 {
		return Atom{}, arityFormErr(formIf, 4, len(xs), false)
	}
	c, err := ip.eval(xs[1], s)
	if err != nil {
		return Atom{}, err
	}
	if c.Tag != ABool {
		return Atom{}, typeErr("if condition", ABool.String(), c)
	}
	if c.AsBool() {
		return ip.eval(xs[2], s)
	}
	return ip.eval(xs[3], s)
}

func (ip *Interpreter) evalDo(xs []Atom, s Scope) (Atom, error) {
	if len(xs) < 3 {
		return Atom{}, arityFormErr(formDo, 3, len(xs), true)
	}
	c, err := ip.eval(xs[1], s)
	if err != nil {
		return Atom{}, err
	}
	if c.Tag != AInt {
		return Atom{}, typeErr("do count", AInt.String(), c)
	}
	body := xs[2:]
	for i := int64(0); i < c.AsInt(); i++ {
		for _, b := range body {
			if _, err := ip.eval(b, s); err != nil {
				return Atom{}, err
			}
		}
	}
	return Void(), nil
}

func evalLambda(xs []Atom) (Atom, error) {
	if len(xs) != 3 {
		return Atom{}, arityFormErr(formLambda, 3, len(xs), false)
	}
	if xs[1].Tag != AList {
		return Atom{}, formErr(formLambda, 3, len(xs),
			fmt.Sprintf("'lambda' parameters must be a list, got %s", xs[1].Tag))
	}
	ps := xs[1].AsList()
	params := make([]string, 0, len(ps))
	for _, p := range ps {
		if p.Tag != ASym {
			return Atom{}, formErr(formLambda, 3, len(xs),
				fmt.Sprintf("'lambda' parameter must be a symbol, got %s %s", p.Tag, FormatAtom(p)))
		}
		params = append(params, p.AsSym())
	}
	if xs[2].Tag != AList {
		return Atom{}, formErr(formLambda, 3, len(xs),
			fmt.Sprintf("'lambda' body must be a list, got %s", xs[2].Tag))
	}
	return LambdaAtom(params, xs[2].AsList()), nil
}

func (ip *Interpreter) evalPrint(xs []Atom, s Scope) (Atom, error) {
	if len(xs) < 2 {
		return Atom{}, arityFormErr(formPrint, 2, len(xs), true)
	}
	v, err := ip.eval(xs[1], s)
	if err != nil {
		return Atom{}, err
	}
	if _, err := fmt.Fprintln(ip.out, FormatAtom(v)); err != nil {
		return Atom{}, fmt.Errorf("print: %w", err)
	}
	return Void(), nil
}

/* ===========================
   calls
   =========================== */

func (ip *Interpreter) evalCall(name string, xs []Atom, s Scope) (Atom, error) {
	fn, ok := ip.Env.Get(s, name)
	if !ok {
		return Atom{}, unboundErr(name)
	}
	if fn.Tag != ALambda {
		return Atom{}, notCallableErr(name, fn)
	}
	lam := fn.AsLambda()
	args := xs[1:]
	if len(args) < len(lam.Params) {
		return Atom{}, arityErr(name, len(lam.Params), len(args))
	}
	if ip.maxCallDepth > 0 && ip.callDepth >= ip.maxCallDepth {
		return Atom{}, &Error{
			Kind:   KindStackOverflow,
			Symbol: name,
			Want:   ip.maxCallDepth,
			Got:    ip.callDepth + 1,
			Msg:    fmt.Sprintf("call depth limit %d exceeded in %s", ip.maxCallDepth, name),
		}
	}

	// Arguments are evaluated in the caller's frame before any binding, so
	// argument i never sees parameter i-1. Surplus arguments are ignored.
	vals := make([]Atom, len(lam.Params))
	for i := range lam.Params {
		v, err := ip.eval(args[i], s)
		if err != nil {
			return Atom{}, err
		}
		vals[i] = v
	}

	child := ip.Env.Extend(s)
	defer ip.Env.Release(child)
	for i, p := range lam.Params {
		ip.Env.Set(child, p, vals[i])
	}

	ip.callDepth++
	defer func() { ip.callDepth-- }()
	ip.log.Debug("function call",
		slog.String("name", name),
		slog.Int("argc", len(args)),
		slog.Int("depth", ip.callDepth))

	return ip.eval(Atom{Tag: AList, Data: lam.Body}, child)
}

/* ===========================
   arithmetic & comparison
   =========================== */

func (ip *Interpreter) evalBinary(op string, xs []Atom, s Scope) (Atom, error) {
	if len(xs) != 3 {
		return Atom{}, arityFormErr(op, 3, len(xs), false)
	}
	l, err := ip.eval(xs[1], s)
	if err != nil {
		return Atom{}, err
	}
	r, err := ip.eval(xs[2], s)
	if err != nil {
		return Atom{}, err
	}
	if !isNumeric(l) {
		return Atom{}, typeErr("left operand of '"+op+"'", "number", l)
	}
	if !isNumeric(r) {
		return Atom{}, typeErr("right operand of '"+op+"'", "number", r)
	}
	if l.Tag == AInt && r.Tag == AInt {
		return intOp(op, l.AsInt(), r.AsInt())
	}
	return floatOp(op, toFloat(l), toFloat(r)), nil
}

func isNumeric(a Atom) bool { return a.Tag == AInt || a.Tag == AFloat }

func toFloat(a Atom) float64 {
	if a.Tag == AInt {
		return float64(a.AsInt())
	}
	return a.AsFloat()
}

func intOp(op string, a, b int64) (Atom, error) {
	switch op {
	case "+":
		r := a + b
		if (b > 0 && r < a) || (b < 0 && r > a) {
			return Atom{}, overflowErr(op, a, b)
		}
		return Int(r), nil
	case "-":
		r := a - b
		if (b > 0 && r > a) || (b < 0 && r < a) {
			return Atom{}, overflowErr(op, a, b)
		}
		return Int(r), nil
	case "*":
		if a == 0 || b == 0 {
			return Int(0), nil
		}
		r := a * b
		if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return Atom{}, overflowErr(op, a, b)
		}
		return Int(r), nil
	case "/":
		if b == 0 {
			return Atom{}, divZeroErr(op, a)
		}
		if a == math.MinInt64 && b == -1 {
			return Atom{}, overflowErr(op, a, b)
		}
		return Int(a / b), nil
	case "%":
		if b == 0 {
			return Atom{}, divZeroErr(op, a)
		}
		return Int(a % b), nil
	case "<":
		return Bool(a < b), nil
	case "<=":
		return Bool(a <= b), nil
	case ">":
		return Bool(a > b), nil
	case ">=":
		return Bool(a >= b), nil
	case "=":
		return Bool(a == b), nil
	default: // "!="
		return Bool(a != b), nil
	}
}

func floatOp(op string, a, b float64) Atom {
	switch op {
	case "+":
		return Float(a + b)
	case "-":
		return Float(a - b)
	case "*":
		return Float(a * b)
	case "/":
		return Float(a / b)
	case "%":
		return Float(math.Mod(a, b))
	case "<":
		return Bool(a < b)
	case "<=":
		return Bool(a <= b)
	case ">":
		return Bool(a > b)
	case ">=":
		return Bool(a >= b)
	case "=":
		return Bool(a == b)
	default: // "!="
		return Bool(a != b)
	}
}

func overflowErr(op string, a, b int64) *Error {
	return &Error{Kind: KindOverflow, Symbol: op, Msg: fmt.Sprintf("(%s %d %d) does not fit in 64 bits", op, a, b)}
}

func divZeroErr(op string, a int64) *Error {
	return &Error{Kind: KindDivisionByZero, Symbol: op, Msg: fmt.Sprintf("(%s %d 0)", op, a)}
}
