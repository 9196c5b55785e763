// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// The computed tables below memoize Apply, Exists and Ite (ops.go) and
// Let (subst.go). Unlike the prime-sized array caches this package's ancestor
// used (sized to bound memory under a resizing node table), these are
// plain Go maps: this engine never discards nodes mid-lifetime, so there
// is nothing to evict and no collision policy to tune.

type applyKey struct {
	op   Operator
	f, g Node
}

type existsKey struct {
	f    Node
	vars string // varsetKey(set), see ops.go
}

type iteKey struct {
	f, g, h Node
}

type letKey struct {
	f  Node
	id int
}

func (b *BDD) resetCaches() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notMemo = make(map[Node]Node)
	b.applyMemo = make(map[applyKey]Node)
	b.iteMemo = make(map[iteKey]Node)
	b.existsMemo = make(map[existsKey]Node)
	b.letMemo = make(map[letKey]Node)
}
