// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Not returns the negation of n.
func (b *BDD) Not(n Node) Node {
	return b.not(n)
}

func (b *BDD) not(n Node) Node {
	if n == False {
		return True
	}
	if n == True {
		return False
	}
	if res, ok := b.notMemo[n]; ok {
		return res
	}
	low := b.not(b.low(n))
	high := b.not(b.high(n))
	res := b.makenode(b.level(n), low, high)
	b.notMemo[n] = res
	return res
}

// And, Or, Xor, Implies and Equiv are the Apply specializations used
// throughout the rest of this module; Apply itself stays available for
// the few cases (Diff, Less, InvImp) that only matter for diagnostics.
// And and Or are variadic since conjunctions/disjunctions of more than
// two terms are common when building atomic-proposition and transition
// BDDs.
func (b *BDD) And(ns ...Node) Node {
	res := True
	for _, n := range ns {
		res = b.Apply(res, n, OPand)
	}
	return res
}

func (b *BDD) Or(ns ...Node) Node {
	res := False
	for _, n := range ns {
		res = b.Apply(res, n, OPor)
	}
	return res
}

func (b *BDD) Xor(left, right Node) Node     { return b.Apply(left, right, OPxor) }
func (b *BDD) Implies(left, right Node) Node { return b.Apply(left, right, OPimp) }
func (b *BDD) Equiv(left, right Node) Node   { return b.Apply(left, right, OPbiimp) }

// Apply performs one of the binary operations described by Operator on
// left and right, memoizing intermediate results in a shared computed
// table keyed by (op, left, right).
func (b *BDD) Apply(left, right Node, op Operator) Node {
	return b.apply(op, left, right)
}

func (b *BDD) apply(op Operator, left, right Node) Node {
	switch op {
	case OPand:
		if left == right {
			return left
		}
		if left == False || right == False {
			return False
		}
		if left == True {
			return right
		}
		if right == True {
			return left
		}
	case OPor:
		if left == right {
			return left
		}
		if left == True || right == True {
			return True
		}
		if left == False {
			return right
		}
		if right == False {
			return left
		}
	case OPxor:
		if left == right {
			return False
		}
		if left == False {
			return right
		}
		if right == False {
			return left
		}
	case OPnand:
		if left == False || right == False {
			return True
		}
	case OPnor:
		if left == True || right == True {
			return False
		}
	}

	if left < 2 && right < 2 {
		return Node(opres[op][left][right])
	}

	key := applyKey{op, left, right}
	if res, ok := b.applyMemo[key]; ok {
		return res
	}

	leftLvl, rightLvl := b.level(left), b.level(right)
	var res Node
	switch {
	case leftLvl == rightLvl:
		low := b.apply(op, b.low(left), b.low(right))
		high := b.apply(op, b.high(left), b.high(right))
		res = b.makenode(leftLvl, low, high)
	case leftLvl < rightLvl:
		low := b.apply(op, b.low(left), right)
		high := b.apply(op, b.high(left), right)
		res = b.makenode(leftLvl, low, high)
	default:
		low := b.apply(op, left, b.low(right))
		high := b.apply(op, left, b.high(right))
		res = b.makenode(rightLvl, low, high)
	}
	b.applyMemo[key] = res
	return res
}

// Ite (if-then-else) returns the BDD for (f ∧ g) ∨ (¬f ∧ h), computed
// directly rather than through three separate Apply calls.
func (b *BDD) Ite(f, g, h Node) Node {
	switch {
	case f == True:
		return g
	case f == False:
		return h
	case g == h:
		return g
	case g == True && h == False:
		return f
	case g == False && h == True:
		return b.not(f)
	}
	key := iteKey{f, g, h}
	if res, ok := b.iteMemo[key]; ok {
		return res
	}
	p, q, r := b.level(f), b.level(g), b.level(h)
	lvl := min3(p, q, r)
	low := b.Ite(iteBranch(p, q, r, f, b.low), iteBranch(q, p, r, g, b.low), iteBranch(r, p, q, h, b.low))
	high := b.Ite(iteBranch(p, q, r, f, b.high), iteBranch(q, p, r, g, b.high), iteBranch(r, p, q, h, b.high))
	res := b.makenode(lvl, low, high)
	b.iteMemo[key] = res
	return res
}

// iteBranch picks n's low/high branch (via accessor) when n's level is
// the smallest of the triple, otherwise returns n unchanged: the
// standard Ite recursion only descends into the nodes that are not
// already "ahead" of the current top level.
func iteBranch(p, q, r int32, n Node, accessor func(Node) Node) Node {
	if p > q || p > r {
		return n
	}
	return accessor(n)
}

func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r {
			return p
		}
		return r
	}
	if q <= r {
		return q
	}
	return r
}

// varsetKey builds a stable cache key for a quantified variable set so
// Exists calls over the same variables hit the same computed-table
// entries regardless of which *bitset.BitSet instance was passed.
func varsetKey(vars *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := vars.NextSet(0); ok; i, ok = vars.NextSet(i + 1) {
		sb.WriteString(strconv.FormatUint(i, 10))
		sb.WriteByte(',')
	}
	return sb.String()
}

func varsetMax(vars *bitset.BitSet) int32 {
	max := int32(-1)
	for i, ok := vars.NextSet(0); ok; i, ok = vars.NextSet(i + 1) {
		if int32(i) > max {
			max = int32(i)
		}
	}
	return max
}

// Exists returns the existential quantification of n over the variables
// named by vars (by their declared index), i.e. OR over restrict(n, v=0)
// and restrict(n, v=1) for every v in vars.
func (b *BDD) Exists(n Node, vars *bitset.BitSet) Node {
	if vars.None() {
		return n
	}
	last := varsetMax(vars)
	return b.exists(n, vars, last)
}

func (b *BDD) exists(n Node, vars *bitset.BitSet, last int32) Node {
	if n < 2 || b.level(n) > last {
		return n
	}
	key := existsKey{f: n, vars: varsetKey(vars)}
	if res, ok := b.existsMemo[key]; ok {
		return res
	}
	low := b.exists(b.low(n), vars, last)
	high := b.exists(b.high(n), vars, last)
	var res Node
	if vars.Test(uint(b.level(n))) {
		res = b.apply(OPor, low, high)
	} else {
		res = b.makenode(b.level(n), low, high)
	}
	b.existsMemo[key] = res
	return res
}

// AndExist computes Exists(vars, Apply(left, right, op)). For OPand and
// OPor it works in a single bottom-up pass, without materializing the
// intermediate Apply result; for any other operator it builds the Apply
// result first and then quantifies it. This is the relational-product shortcut used to compute pre-images
// over a transition relation; see the ts package.
func (b *BDD) AndExist(left, right Node, op Operator, vars *bitset.BitSet) Node {
	if vars.None() {
		return b.apply(op, left, right)
	}
	last := varsetMax(vars)
	return b.andExist(op, left, right, vars, last)
}

func (b *BDD) andExist(op Operator, left, right Node, vars *bitset.BitSet, last int32) Node {
	switch op {
	case OPand:
		if left == False || right == False {
			return False
		}
		if left == right {
			return b.exists(left, vars, last)
		}
		if left == True {
			return b.exists(right, vars, last)
		}
		if right == True {
			return b.exists(left, vars, last)
		}
	case OPor:
		if left == True || right == True {
			return True
		}
		if left == right {
			return b.exists(left, vars, last)
		}
		if left == False {
			return b.exists(right, vars, last)
		}
		if right == False {
			return b.exists(left, vars, last)
		}
	default:
		return b.exists(b.apply(op, left, right), vars, last)
	}

	if left < 2 && right < 2 {
		return Node(opres[op][left][right])
	}
	if b.level(left) > last && b.level(right) > last {
		return b.apply(op, left, right)
	}

	leftLvl, rightLvl := b.level(left), b.level(right)
	var res Node
	switch {
	case leftLvl == rightLvl:
		low := b.andExist(op, b.low(left), b.low(right), vars, last)
		high := b.andExist(op, b.high(left), b.high(right), vars, last)
		if vars.Test(uint(leftLvl)) {
			res = b.apply(OPor, low, high)
		} else {
			res = b.makenode(leftLvl, low, high)
		}
	case leftLvl < rightLvl:
		low := b.andExist(op, b.low(left), right, vars, last)
		high := b.andExist(op, b.high(left), right, vars, last)
		if vars.Test(uint(leftLvl)) {
			res = b.apply(OPor, low, high)
		} else {
			res = b.makenode(leftLvl, low, high)
		}
	default:
		low := b.andExist(op, left, b.low(right), vars, last)
		high := b.andExist(op, left, b.high(right), vars, last)
		if vars.Test(uint(rightLvl)) {
			res = b.apply(OPor, low, high)
		} else {
			res = b.makenode(rightLvl, low, high)
		}
	}
	return res
}

// Satcount returns the number of satisfying variable assignments for n,
// using arbitrary-precision arithmetic since the count can exceed the
// range of a machine int well before Varnum reaches 64.
func (b *BDD) Satcount(n Node) *big.Int {
	res := big.NewInt(0)
	res.SetBit(res, int(b.level(n)), 1)
	memo := make(map[Node]*big.Int)
	return res.Mul(res, b.satcount(n, memo))
}

func (b *BDD) satcount(n Node, memo map[Node]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	if res, ok := memo[n]; ok {
		return res
	}
	level := b.level(n)
	low, high := b.low(n), b.high(n)

	res := big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, int(b.level(low)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(low, memo)))
	two = big.NewInt(0)
	two.SetBit(two, int(b.level(high)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(high, memo)))
	memo[n] = res
	return res
}

// Allsat calls f once for every satisfying assignment of n, passing a
// slice of length Varnum where each entry is 0 (false), 1 (true), or -1
// (don't care). Iteration stops early if f returns an error.
func (b *BDD) Allsat(n Node, f func([]int) error) error {
	prof := make([]int, b.varnum)
	for i := range prof {
		prof[i] = -1
	}
	return b.allsat(n, prof, f)
}

func (b *BDD) allsat(n Node, prof []int, f func([]int) error) error {
	if n == True {
		return f(prof)
	}
	if n == False {
		return nil
	}
	if low := b.low(n); low != False {
		prof[b.level(n)] = 0
		for v := b.level(low) - 1; v > b.level(n); v-- {
			prof[v] = -1
		}
		if err := b.allsat(low, prof, f); err != nil {
			return err
		}
	}
	if high := b.high(n); high != False {
		prof[b.level(n)] = 1
		for v := b.level(high) - 1; v > b.level(n); v-- {
			prof[v] = -1
		}
		if err := b.allsat(high, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// Allnodes calls f once for every live node reachable from n (or from
// every node in the table if n is omitted), passing its id, level, and
// low/high successors.
func (b *BDD) Allnodes(f func(id int, level int, low, high Node) error, n ...Node) error {
	if len(n) == 0 {
		for id, v := range b.nodes {
			if err := f(id, int(v.level), v.low, v.high); err != nil {
				return err
			}
		}
		return nil
	}
	seen := make(map[Node]bool)
	var visit func(Node) error
	visit = func(m Node) error {
		if seen[m] {
			return nil
		}
		seen[m] = true
		v := b.nodes[m]
		if err := f(int(m), int(v.level), v.low, v.high); err != nil {
			return err
		}
		if m >= 2 {
			if err := visit(v.low); err != nil {
				return err
			}
			if err := visit(v.high); err != nil {
				return err
			}
		}
		return nil
	}
	for _, m := range n {
		if err := visit(m); err != nil {
			return err
		}
	}
	return nil
}
