package crisp

import "sort"

// Scope addresses one frame in an Env arena.
type Scope int

const (
	// Root is the session-wide frame created by NewEnv.
	Root Scope = 0
	// NoParent marks the root frame's parent link.
	NoParent Scope = -1
)

type frame struct {
	parent Scope
	table  map[string]Atom
}

// Env is an arena of scope frames addressed by index. Each frame holds its
// own bindings and the index of its parent; lookups walk parent indices.
//
// Call frames are pushed by Extend and popped by Release in LIFO order, which
// holds because lambdas never capture a frame. An Env is owned by a single
// session and must not be used from more than one goroutine.
type Env struct {
	frames []frame
}

// NewEnv creates an arena holding only the Root frame.
func NewEnv() *Env {
	return &Env{frames: []frame{{parent: NoParent, table: map[string]Atom{}}}}
}

// Extend pushes a new empty frame whose parent is parent and returns it.
func (e *Env) Extend(parent Scope) Scope {
	e.frames = append(e.frames, frame{parent: parent, table: map[string]Atom{}})
	return Scope(len(e.frames) - 1)
}

// Get returns the nearest binding of name visible from s.
func (e *Env) Get(s Scope, name string) (Atom, bool) {
	for s != NoParent && int(s) < len(e.frames) {
		f := &e.frames[s]
		if v, ok := f.table[name]; ok {
			return v, true
		}
		s = f.parent
	}
	return Atom{}, false
}

// Set binds name in frame s itself, shadowing (never rebinding) any ancestor.
func (e *Env) Set(s Scope, name string, v Atom) {
	e.frames[s].table[name] = v
}

// Release discards s and every frame pushed after it. Releasing Root or an
// already released frame is a no-op.
func (e *Env) Release(s Scope) {
	if s <= Root || int(s) >= len(e.frames) {
		return
	}
	for i := int(s); i < len(e.frames); i++ {
		e.frames[i] = frame{}
	}
	e.frames = e.frames[:s]
}

// Depth reports the number of live frames, Root included.
func (e *Env) Depth() int { return len(e.frames) }

// Names lists the names bound directly in s, sorted.
func (e *Env) Names(s Scope) []string {
	if int(s) < 0 || int(s) >= len(e.frames) {
		return nil
	}
	names := make([]string, 0, len(e.frames[s].table))
	for k := range e.frames[s].table {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
