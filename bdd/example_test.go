// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"fmt"

	"ctlcheck/bdd"
)

// This example shows the basic usage of the package: build a BDD over a
// handful of variables, combine them with And, and query the number of
// satisfying assignments.
func Example_basic() {
	b, _ := bdd.New(3)
	n := b.And(b.Var(0), b.Var(1))
	fmt.Printf("Number of sat. assignments is %s\n", b.Satcount(n))
	// Output:
	// Number of sat. assignments is 2
}

// Allsat reports one callback per satisfying path, collapsing don't-care
// variables instead of expanding them into separate assignments.
func Example_allsat() {
	b, _ := bdd.New(3)
	n := b.And(b.Var(0), b.Var(1))
	acc := 0
	b.Allsat(n, func(varset []int) error {
		acc++
		return nil
	})
	fmt.Printf("Number of sat. assignments (without don't care) is %d", acc)
	// Output:
	// Number of sat. assignments (without don't care) is 1
}

// Allnodes counts nodes either across the whole table or only those
// reachable from a given root.
func Example_allnodes() {
	b, _ := bdd.New(3)
	n := b.And(b.Var(0), b.Var(1))
	total := 0
	count := func(id, level int, low, high bdd.Node) error {
		total++
		return nil
	}
	b.Allnodes(count)
	fmt.Printf("Number of nodes in the table is %d\n", total)
	total = 0
	b.Allnodes(count, n)
	fmt.Printf("Number of nodes reachable from n is %d", total)
	// Output:
	// Number of nodes in the table is 9
	// Number of nodes reachable from n is 4
}
