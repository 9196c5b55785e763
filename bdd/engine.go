// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"log"
	"sync"
)

// Node is a handle to a node in a BDD's node table. 0 and 1 are reserved
// for the constants False and True. Two nodes built from semantically
// equal expressions are always the same Node value: hash-consing makes
// == on Node exactly structural BDD equality.
type Node int

const (
	False Node = 0
	True  Node = 1
)

// node is the internal (level, low, high) triple behind a Node handle.
type node struct {
	level int32
	low   Node
	high  Node
}

type nodeKey struct {
	level     int32
	low, high Node
}

// BDD owns the node table, the unique (hash-consing) table, and the
// computed tables for every operation in this package. Adding a node to
// the node and unique tables takes an exclusive lock, but the computed
// tables are read and written without it, so operations such as Not,
// Apply, Ite, Exists and Let must not run concurrently on one BDD.
type BDD struct {
	mu     sync.RWMutex
	nodes  []node
	unique map[nodeKey]Node
	varnum int
	varset [][2]Node // varset[i] = {low-branch var, high-branch var} for level i

	notMemo    map[Node]Node
	applyMemo  map[applyKey]Node
	iteMemo    map[iteKey]Node
	existsMemo map[existsKey]Node
	letMemo    map[letKey]Node

	logger *log.Logger // non-nil only in debug builds, see debug.go
}

// New builds an empty BDD with varnum declared boolean variables, at
// levels 0..varnum-1 in that order. Returns ErrUnknownVariable's sibling
// validation error if varnum is out of range.
func New(varnum int) (*BDD, error) {
	if varnum < 1 || varnum > maxVar {
		return nil, fmt.Errorf("bdd: bad number of variables (%d)", varnum)
	}
	b := &BDD{
		nodes:      make([]node, 2, 2*varnum+64),
		unique:     make(map[nodeKey]Node, 2*varnum),
		varnum:     varnum,
		varset:     make([][2]Node, varnum),
		notMemo:    make(map[Node]Node),
		applyMemo:  make(map[applyKey]Node),
		iteMemo:    make(map[iteKey]Node),
		existsMemo: make(map[existsKey]Node),
		letMemo:    make(map[letKey]Node),
	}
	b.nodes[False] = node{level: int32(varnum), low: False, high: False}
	b.nodes[True] = node{level: int32(varnum), low: True, high: True}
	initDebugLog(b)
	for k := 0; k < varnum; k++ {
		v1 := b.makenode(int32(k), False, True)
		v0 := b.makenode(int32(k), True, False)
		b.varset[k] = [2]Node{v0, v1}
	}
	b.debugf("new BDD, varnum=%d", varnum)
	return b, nil
}

// Varnum returns the number of declared variables.
func (b *BDD) Varnum() int {
	return b.varnum
}

// Var returns the node for the i-th declared variable (true exactly when
// that variable is true). Panics if i is out of [0,Varnum()) — the
// caller is expected to validate variable indices once, at the ts/ctl
// boundary, per ErrUnknownVariable.
func (b *BDD) Var(i int) Node {
	return b.varset[i][1]
}

// NVar returns the negation of the i-th declared variable.
func (b *BDD) NVar(i int) Node {
	return b.varset[i][0]
}

func (b *BDD) level(n Node) int32 { return b.nodes[n].level }
func (b *BDD) low(n Node) Node    { return b.nodes[n].low }
func (b *BDD) high(n Node) Node   { return b.nodes[n].high }

// makenode returns the (unique) node for (level, low, high), reducing it
// to the low branch directly when low == high, and reusing an existing
// node from the unique table when one already represents this triple.
func (b *BDD) makenode(level int32, low, high Node) Node {
	if low == high {
		return low
	}
	key := nodeKey{level, low, high}
	b.mu.RLock()
	if n, ok := b.unique[key]; ok {
		b.mu.RUnlock()
		return n
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	if n, ok := b.unique[key]; ok {
		return n
	}
	id := Node(len(b.nodes))
	b.nodes = append(b.nodes, node{level, low, high})
	b.unique[key] = id
	b.debugf("makenode %d = (level=%d, low=%d, high=%d)", id, level, low, high)
	return id
}

// Size returns the total number of nodes currently held by the BDD,
// including the two constants.
func (b *BDD) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.nodes)
}
