// interpreter.go: SINGLE PUBLIC API SURFACE for evaluating crisp programs.
//
// OVERVIEW
// ========
// The pipeline is: source text → Tokenize → Parse → one Atom → evaluation in
// an *Env → result Atom or *Error. This file exposes the entry points; the
// evaluation rules live in eval.go.
//
// EXECUTION & SCOPING SEMANTICS
// -----------------------------
//   - Every entry point evaluates in the Root frame of the interpreter's Env.
//     `define` at top level therefore persists for the life of the Env, which
//     is how a REPL session accumulates state.
//   - A function call pushes a child frame of the *calling* frame (dynamic
//     scoping) and releases it when the call returns, successfully or not.
//   - There are no ambient globals: the Env is created by the caller (or by
//     NewInterpreter) and passed around explicitly.
//
// ERRORS
// ------
// All Eval* methods return (Atom, error). Language failures are *Error values
// carrying an ErrorKind (errors.go). A failed call leaves the Env usable;
// side effects that already happened (a `print`, a top-level `define` inside a
// sequence) are not rolled back.
//
// OUTPUT
// ------
// `print` writes to the interpreter's output sink (stdout by default). Result
// formatting for shells is in printer.go.
package crisp

import (
	"io"
	"log/slog"
	"os"
)

// DefaultMaxCallDepth bounds nested lambda calls unless overridden.
const DefaultMaxCallDepth = 10000

// Interpreter is an explicitly constructed evaluation context.
//
// Public fields:
//   - Env: the session environment; its Root frame receives top-level defines.
type Interpreter struct {
	Env *Env

	out          io.Writer
	log          *slog.Logger
	maxCallDepth int
	callDepth    int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithEnv evaluates in env instead of a fresh one.
func WithEnv(env *Env) Option { return func(ip *Interpreter) { ip.Env = env } }

// WithOutput sets the sink that `print` writes to.
func WithOutput(w io.Writer) Option { return func(ip *Interpreter) { ip.out = w } }

// WithLogger sets the structured logger used for debug tracing.
func WithLogger(l *slog.Logger) Option { return func(ip *Interpreter) { ip.log = l } }

// WithMaxCallDepth bounds nested calls; n <= 0 removes the bound.
func WithMaxCallDepth(n int) Option { return func(ip *Interpreter) { ip.maxCallDepth = n } }

// NewInterpreter returns a ready-to-use interpreter. Without options it owns a
// fresh Env, prints to stdout, discards logs and uses DefaultMaxCallDepth.
func NewInterpreter(opts ...Option) *Interpreter {
	ip := &Interpreter{maxCallDepth: DefaultMaxCallDepth}
	for _, o := range opts {
		o(ip)
	}
	if ip.Env == nil {
		ip.Env = NewEnv()
	}
	if ip.out == nil {
		ip.out = os.Stdout
	}
	if ip.log == nil {
		ip.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return ip
}

// Evaluate parses src as one top-level form (or one bare atom) and evaluates
// it in env's Root frame, writing `print` output to stdout.
func Evaluate(src string, env *Env) (Atom, error) {
	return NewInterpreter(WithEnv(env)).EvalSource(src)
}

// EvalSource parses src as one top-level form (or one bare atom) and
// evaluates it in Root.
func (ip *Interpreter) EvalSource(src string) (Atom, error) {
	ast, err := ParseExpr(src)
	if err != nil {
		return Atom{}, err
	}
	return ip.EvalAtom(ast)
}

// EvalAtom evaluates an already parsed form in Root.
func (ip *Interpreter) EvalAtom(a Atom) (Atom, error) {
	mark := ip.Env.Depth()
	ip.callDepth = 0
	v, err := ip.eval(a, Root)
	// A frame can only survive here if evaluation unwound abnormally.
	if ip.Env.Depth() > mark {
		ip.Env.Release(Scope(mark))
	}
	return v, err
}

// EvalAll evaluates every top-level form of src in order (file mode). It stops
// at the first error and otherwise returns the last non-Void result, or Void.
func (ip *Interpreter) EvalAll(src string) (Atom, error) {
	forms, err := ParseAll(src)
	if err != nil {
		return Atom{}, err
	}
	ip.log.Debug("parsed program", slog.Int("forms", len(forms)))
	last := Void()
	for _, f := range forms {
		v, err := ip.EvalAtom(f)
		if err != nil {
			return Atom{}, err
		}
		if v.Tag != AVoid {
			last = v
		}
	}
	return last, nil
}
