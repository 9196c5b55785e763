// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMin3(t *testing.T) {
	var tests = []struct {
		p, q, r  int32
		expected int32
	}{
		{3, 2, 3, 2},
		{4, 4, 4, 4},
		{2, 3, 3, 2},
		{3, 2, 2, 2},
		{3, 3, 2, 2},
		{1, 2, 3, 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, min3(tt.p, tt.q, tt.r))
	}
}

func TestIte(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)
	f := b.Var(0)
	g := b.Or(b.Var(2), b.Var(3))
	h := b.not(g)
	actual := b.Equiv(b.Ite(f, g, h), b.Or(b.And(f, g), b.And(b.not(f), h)))
	require.Equal(t, True, actual, "ite(f,g,h) <=> (f and g) or (not f and h)")
}

func TestXor(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)
	p, q := b.Var(0), b.Var(1)

	require.Equal(t, False, b.Xor(p, p))
	require.Equal(t, True, b.Equiv(b.Xor(p, q), b.Or(b.And(p, b.not(q)), b.And(b.not(p), q))))
}

func TestImplies(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)
	p, q := b.Var(0), b.Var(1)

	require.Equal(t, True, b.Implies(False, p))
	require.Equal(t, True, b.Implies(p, True))
	require.Equal(t, True, b.Equiv(b.Implies(p, q), b.Or(b.not(p), q)))
}

func TestAllsatCoversEveryAssignment(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)
	varnum := 4

	check := func(x Node) {
		sum := False
		remainder := x
		b.Allsat(x, func(varset []int) error {
			term := True
			for k, v := range varset {
				switch v {
				case 0:
					term = b.And(term, b.NVar(k))
				case 1:
					term = b.And(term, b.Var(k))
				}
			}
			sum = b.Or(sum, term)
			remainder = b.Apply(remainder, term, OPdiff)
			return nil
		})
		require.Equal(t, x, sum, "Allsat should reconstruct the original BDD")
		require.Equal(t, False, remainder, "Allsat should exhaust the original BDD")
	}

	a, c2, d := b.Var(0), b.Var(2), b.Var(3)
	na, nb, nc := b.NVar(0), b.NVar(1), b.NVar(2)

	check(True)
	check(False)
	check(b.Or(b.And(a, b.Var(1)), b.And(na, nb)))
	check(b.Or(b.And(a, b.Var(1)), b.And(c2, d)))

	for i := 0; i < varnum; i++ {
		check(b.Var(i))
		check(b.NVar(i))
	}

	set := True
	for i := 0; i < 50; i++ {
		v := rand.Intn(varnum)
		if rand.Intn(2) == 0 {
			set = b.And(set, b.Var(v))
		} else {
			set = b.And(set, b.NVar(v))
		}
		check(set)
	}
}
