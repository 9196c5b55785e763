// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"
)

// milnerCyclers builds the reachable state space of a ring of N
// "cyclers" (Milner's classic mutual-exclusion example from the BuDDy
// distribution) using the AndExist + Let fixed-point idiom this module
// relies on for symbolic pre-image computation: quantify the current
// state variables out of (state ∧ transition), then rename the
// resulting primed variables back to unprimed ones, and repeat until
// the frontier stops growing. It exists to validate that idiom against
// an independently known closed-form answer before it is trusted for
// CTL evaluation.
func milnerCyclers(t *testing.T, n int) (*BDD, Node) {
	b, err := New(n * 6)
	require.NoError(t, err)

	c := make([]Node, n)
	cp := make([]Node, n)
	tt := make([]Node, n)
	ttp := make([]Node, n)
	h := make([]Node, n)
	hp := make([]Node, n)
	for i := 0; i < n; i++ {
		c[i] = b.Var(i * 6)
		cp[i] = b.Var(i*6 + 1)
		tt[i] = b.Var(i*6 + 2)
		ttp[i] = b.Var(i*6 + 3)
		h[i] = b.Var(i*6 + 4)
		hp[i] = b.Var(i*6 + 5)
	}

	curVars := make([]int, 3*n)
	primeVars := make([]int, 3*n)
	for i := 0; i < 3*n; i++ {
		curVars[i] = i * 2
		primeVars[i] = i*2 + 1
	}
	unprime, err := b.NewSubstitution(primeVars, curVars)
	require.NoError(t, err)

	curSet := bitset.New(uint(n * 6))
	for _, v := range curVars {
		curSet.Set(uint(v))
	}

	unchanged := func(x, y []Node, skip int) Node {
		res := True
		for i := 0; i < n; i++ {
			if i != skip {
				res = b.And(res, b.Equiv(x[i], y[i]))
			}
		}
		return res
	}

	init := b.And(c[0], b.not(h[0]), b.not(tt[0]))
	for i := 1; i < n; i++ {
		init = b.And(init, b.not(c[i]), b.not(h[i]), b.not(tt[i]))
	}

	transition := False
	for i := 0; i < n; i++ {
		p1 := b.And(c[i], b.not(cp[i]), ttp[i], b.not(tt[i]), hp[i], unchanged(c, cp, i), unchanged(tt, ttp, i), unchanged(h, hp, i))
		p2 := b.And(h[i], b.not(hp[i]), cp[(i+1)%n], unchanged(c, cp, (i+1)%n), unchanged(h, hp, i), unchanged(tt, ttp, n))
		enter := b.And(tt[i], b.not(ttp[i]), unchanged(tt, ttp, i), unchanged(h, hp, n), unchanged(c, cp, n))
		transition = b.Or(transition, p1, p2, enter)
	}

	reached := init
	for {
		image := b.AndExist(reached, transition, OPand, curSet)
		next := b.Or(b.Let(image, unprime), reached)
		if next == reached {
			break
		}
		reached = next
	}
	return b, reached
}

func TestMilnerCyclersReachability(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		b, r := milnerCyclers(t, n)
		expected := big.NewInt(int64(n))
		pow := big.NewInt(0)
		pow.SetBit(pow, 4*n+1, 1)
		expected.Mul(expected, pow)
		require.Equal(t, 0, b.Satcount(r).Cmp(expected), "Milner(%d): expected %s states, got %s", n, expected, b.Satcount(r))
	}
}
