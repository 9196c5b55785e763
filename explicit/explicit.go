// Package explicit is a reference CTL model checker that works
// directly over an explicit, enumerated state set rather than a BDD
// encoding. It exists only to cross-check the symbolic checker package
// in tests: the two must agree on every formula over every small
// transition system, since they compute the same least/greatest
// fixed-point equations by different means.
package explicit

import (
	"github.com/RoaringBitmap/roaring/v2"

	"ctlcheck/ctl"
)

// TransitionSystem is the explicit-state counterpart of ts.TransitionSystem:
// a finite set of states [0, NumStates), a transition relation given as
// (from, to) pairs, a labeling, and an initial set.
type TransitionSystem struct {
	NumStates int
	Labeling  map[int][]string
	Init      []int

	pred map[int][]int // pred[v] = states u such that (u,v) is a transition
	succ map[int][]int
}

// New builds a TransitionSystem from the same kind of inputs ts.New
// accepts.
func New(numStates int, transitions [][2]int, labeling map[int][]string, init []int) *TransitionSystem {
	t := &TransitionSystem{
		NumStates: numStates,
		Labeling:  labeling,
		Init:      init,
		pred:      make(map[int][]int),
		succ:      make(map[int][]int),
	}
	for _, tr := range transitions {
		u, v := tr[0], tr[1]
		t.succ[u] = append(t.succ[u], v)
		t.pred[v] = append(t.pred[v], u)
	}
	return t
}

func (t *TransitionSystem) all() *roaring.Bitmap {
	b := roaring.New()
	for s := 0; s < t.NumStates; s++ {
		b.AddInt(s)
	}
	return b
}

func (t *TransitionSystem) ap(name string) *roaring.Bitmap {
	b := roaring.New()
	for s := 0; s < t.NumStates; s++ {
		for _, p := range t.Labeling[s] {
			if p == name {
				b.AddInt(s)
				break
			}
		}
	}
	return b
}

// pre returns {s | some successor of s is in x}.
func (t *TransitionSystem) pre(x *roaring.Bitmap) *roaring.Bitmap {
	b := roaring.New()
	for s := 0; s < t.NumStates; s++ {
		for _, v := range t.succ[s] {
			if x.ContainsInt(v) {
				b.AddInt(s)
				break
			}
		}
	}
	return b
}

func not(t *TransitionSystem, x *roaring.Bitmap) *roaring.Bitmap {
	b := t.all()
	b.AndNot(x)
	return b
}

// Checker evaluates CTL formulas over a TransitionSystem by explicit
// fixed-point iteration on sets of state indices.
type Checker struct {
	ts *TransitionSystem
}

// NewChecker returns a Checker bound to ts.
func NewChecker(ts *TransitionSystem) *Checker { return &Checker{ts: ts} }

// Eval returns the set of states satisfying formula.
func (c *Checker) Eval(formula ctl.Node) *roaring.Bitmap {
	switch n := formula.(type) {
	case ctl.Atom:
		return c.ts.ap(n.Name)
	case ctl.Not:
		return not(c.ts, c.Eval(n.X))
	case ctl.And:
		x, y := c.Eval(n.X), c.Eval(n.Y)
		return roaring.And(x, y)
	case ctl.Or:
		x, y := c.Eval(n.X), c.Eval(n.Y)
		return roaring.Or(x, y)
	case ctl.EX:
		return c.ts.pre(c.Eval(n.X))
	case ctl.AX:
		return not(c.ts, c.ts.pre(not(c.ts, c.Eval(n.X))))
	case ctl.EF:
		x := c.Eval(n.X)
		return c.leastFix(func(y *roaring.Bitmap) *roaring.Bitmap {
			return roaring.Or(x, c.ts.pre(y))
		})
	case ctl.AF:
		x := c.Eval(n.X)
		return c.leastFix(func(y *roaring.Bitmap) *roaring.Bitmap {
			return roaring.Or(x, not(c.ts, c.ts.pre(not(c.ts, y))))
		})
	case ctl.EG:
		x := c.Eval(n.X)
		return c.greatestFix(func(y *roaring.Bitmap) *roaring.Bitmap {
			return roaring.And(x, c.ts.pre(y))
		})
	case ctl.AG:
		x := c.Eval(n.X)
		return c.greatestFix(func(y *roaring.Bitmap) *roaring.Bitmap {
			return roaring.And(x, not(c.ts, c.ts.pre(not(c.ts, y))))
		})
	case ctl.EU:
		phi, psi := c.Eval(n.X), c.Eval(n.Y)
		return c.leastFix(func(y *roaring.Bitmap) *roaring.Bitmap {
			return roaring.Or(psi, roaring.And(phi, c.ts.pre(y)))
		})
	case ctl.AU:
		phi, psi := c.Eval(n.X), c.Eval(n.Y)
		return c.leastFix(func(y *roaring.Bitmap) *roaring.Bitmap {
			return roaring.Or(psi, roaring.And(phi, not(c.ts, c.ts.pre(not(c.ts, y)))))
		})
	default:
		panic("explicit: unhandled node kind")
	}
}

// Satisfies reports whether every initial state satisfies formula.
func (c *Checker) Satisfies(formula ctl.Node) bool {
	result := c.Eval(formula)
	for _, s := range c.ts.Init {
		if !result.ContainsInt(s) {
			return false
		}
	}
	return true
}

func (c *Checker) leastFix(step func(*roaring.Bitmap) *roaring.Bitmap) *roaring.Bitmap {
	y := roaring.New()
	for {
		next := step(y)
		if next.Equals(y) {
			return y
		}
		y = next
	}
}

func (c *Checker) greatestFix(step func(*roaring.Bitmap) *roaring.Bitmap) *roaring.Bitmap {
	y := c.ts.all()
	for {
		next := step(y)
		if next.Equals(y) {
			return y
		}
		y = next
	}
}
