// Package checker evaluates CTL formulas symbolically over a
// transition system, returning the BDD of states satisfying each
// subformula by iterating the standard least/greatest fixed-point
// characterizations of the temporal operators.
package checker

import (
	"fmt"

	"go.uber.org/zap"

	"ctlcheck/bdd"
	"ctlcheck/ctl"
	"ctlcheck/ts"
)

// Checker evaluates formulas against a fixed TransitionSystem.
type Checker struct {
	ts     *ts.TransitionSystem
	b      *bdd.BDD
	logger *zap.Logger
}

// New returns a Checker bound to system.
func New(system *ts.TransitionSystem, opts ...Option) *Checker {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Checker{ts: system, b: system.BDD(), logger: cfg.logger}
}

// Eval returns the BDD of states satisfying formula.
func (c *Checker) Eval(formula ctl.Node) bdd.Node {
	switch n := formula.(type) {
	case ctl.Atom:
		return c.ts.APBDD(n.Name)
	case ctl.Not:
		return c.b.Not(c.Eval(n.X))
	case ctl.And:
		return c.b.And(c.Eval(n.X), c.Eval(n.Y))
	case ctl.Or:
		return c.b.Or(c.Eval(n.X), c.Eval(n.Y))
	case ctl.EX:
		return c.ts.Pre(c.Eval(n.X))
	case ctl.AX:
		return c.b.Not(c.ts.Pre(c.b.Not(c.Eval(n.X))))
	case ctl.EF:
		x := c.Eval(n.X)
		return c.leastFix("ef", func(y bdd.Node) bdd.Node {
			return c.b.Or(x, c.ts.Pre(y))
		})
	case ctl.AF:
		x := c.Eval(n.X)
		return c.leastFix("af", func(y bdd.Node) bdd.Node {
			return c.b.Or(x, c.b.Not(c.ts.Pre(c.b.Not(y))))
		})
	case ctl.EG:
		x := c.Eval(n.X)
		return c.greatestFix("eg", func(y bdd.Node) bdd.Node {
			return c.b.And(x, c.ts.Pre(y))
		})
	case ctl.AG:
		x := c.Eval(n.X)
		return c.greatestFix("ag", func(y bdd.Node) bdd.Node {
			return c.b.And(x, c.b.Not(c.ts.Pre(c.b.Not(y))))
		})
	case ctl.EU:
		phi, psi := c.Eval(n.X), c.Eval(n.Y)
		return c.leastFix("eu", func(y bdd.Node) bdd.Node {
			return c.b.Or(psi, c.b.And(phi, c.ts.Pre(y)))
		})
	case ctl.AU:
		phi, psi := c.Eval(n.X), c.Eval(n.Y)
		return c.leastFix("au", func(y bdd.Node) bdd.Node {
			return c.b.Or(psi, c.b.And(phi, c.b.Not(c.ts.Pre(c.b.Not(y)))))
		})
	default:
		panic(fmt.Sprintf("checker: unhandled node kind %T", formula))
	}
}

// Satisfies reports whether every initial state of the bound
// TransitionSystem satisfies formula, i.e. whether Init implies
// Eval(formula). formula is either a ctl.Node (already parsed) or a
// string, parsed internally with ctl.Parse; any other type is an
// error, as is a string that fails to parse.
func (c *Checker) Satisfies(formula interface{}) (bool, error) {
	node, err := asNode(formula)
	if err != nil {
		return false, err
	}
	result := c.Eval(node)
	init := c.ts.Init()
	return c.b.And(init, c.b.Not(result)) == bdd.False, nil
}

func asNode(formula interface{}) (ctl.Node, error) {
	switch f := formula.(type) {
	case ctl.Node:
		return f, nil
	case string:
		return ctl.Parse(f)
	default:
		return nil, fmt.Errorf("checker: Satisfies expects a string or ctl.Node, got %T", formula)
	}
}

func (c *Checker) leastFix(op string, step func(bdd.Node) bdd.Node) bdd.Node {
	y := bdd.False
	iters := 0
	for {
		next := step(y)
		iters++
		if next == y {
			c.logger.Debug("least fixed point reached", zap.String("op", op), zap.Int("iterations", iters))
			return y
		}
		y = next
	}
}

func (c *Checker) greatestFix(op string, step func(bdd.Node) bdd.Node) bdd.Node {
	y := bdd.True
	iters := 0
	for {
		next := step(y)
		iters++
		if next == y {
			c.logger.Debug("greatest fixed point reached", zap.String("op", op), zap.Int("iterations", iters))
			return y
		}
		y = next
	}
}
