// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"sync/atomic"
)

var substCounter int64

// Substitution describes a simultaneous variable-to-variable replacement,
// built with NewSubstitution and consumed by Let. "Simultaneous" matters:
// all substitutions happen together against the original variable
// indices, not one after another. NewSubstitution rejects any variable
// that appears in both old and new, so swaps and chains of renamings
// cannot be expressed.
type Substitution struct {
	id    int64
	image []int32 // image[old level] = new level
	last  int32   // highest old level actually substituted, to bound recursion
}

func (s *Substitution) String() string {
	res := fmt.Sprintf("subst(last: %d)[", s.last)
	first := true
	for k, v := range s.image {
		if k != int(v) {
			if !first {
				res += ", "
			}
			first = false
			res += fmt.Sprintf("%d<-%d", k, v)
		}
	}
	return res + "]"
}

func (s *Substitution) at(level int32) (int32, bool) {
	if level > s.last {
		return level, false
	}
	return s.image[level], true
}

// NewSubstitution builds a Substitution replacing old[k] with new[k] for
// every k. Returns an error if the slices differ in length, name the
// same old variable twice, or reference an index outside [0,Varnum).
func (b *BDD) NewSubstitution(old, new []int) (*Substitution, error) {
	if len(old) != len(new) {
		return nil, fmt.Errorf("bdd: substitution slices have different lengths (%d vs %d)", len(old), len(new))
	}
	s := &Substitution{id: atomic.AddInt64(&substCounter, 1)}
	seen := make([]bool, b.varnum)
	s.image = make([]int32, b.varnum)
	for k := range s.image {
		s.image[k] = int32(k)
	}
	for k, v := range old {
		if err := b.checkVar(v); err != nil {
			return nil, fmt.Errorf("bdd: invalid variable in old (%d): %w", v, err)
		}
		if err := b.checkVar(new[k]); err != nil {
			return nil, fmt.Errorf("bdd: invalid variable in new (%d): %w", new[k], err)
		}
		if seen[v] {
			return nil, fmt.Errorf("bdd: variable %d named twice in old", v)
		}
		seen[v] = true
		s.image[v] = int32(new[k])
		if int32(v) > s.last {
			s.last = int32(v)
		}
	}
	for _, v := range new {
		if int(s.image[v]) != v {
			return nil, fmt.Errorf("bdd: variable %d appears in both old and new", v)
		}
	}
	return s, nil
}

// Let applies subst to n, returning the node obtained by simultaneously
// substituting every variable subst names.
func (b *BDD) Let(n Node, subst *Substitution) Node {
	return b.let(n, subst)
}

func (b *BDD) let(n Node, subst *Substitution) Node {
	image, ok := subst.at(b.level(n))
	if !ok {
		return n
	}
	key := letKey{f: n, id: int(subst.id)}
	if res, ok := b.letMemo[key]; ok {
		return res
	}
	low := b.let(b.low(n), subst)
	high := b.let(b.high(n), subst)
	res := b.correctify(image, low, high)
	b.letMemo[key] = res
	return res
}

// correctify rebuilds a node at the target level, reordering through
// low/high as needed when the substitution moves a variable past
// others it used to be above or below.
func (b *BDD) correctify(level int32, low, high Node) Node {
	lowLvl, highLvl := b.level(low), b.level(high)
	if level < lowLvl && level < highLvl {
		return b.makenode(level, low, high)
	}
	if lowLvl == highLvl {
		left := b.correctify(level, b.low(low), b.low(high))
		right := b.correctify(level, b.high(low), b.high(high))
		return b.makenode(lowLvl, left, right)
	}
	if lowLvl < highLvl {
		left := b.correctify(level, b.low(low), high)
		right := b.correctify(level, b.high(low), high)
		return b.makenode(lowLvl, left, right)
	}
	left := b.correctify(level, low, b.low(high))
	right := b.correctify(level, low, b.high(high))
	return b.makenode(highLvl, left, right)
}
