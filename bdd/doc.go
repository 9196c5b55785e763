// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd implements Reduced Ordered Binary Decision Diagrams, a data
structure used to efficiently represent Boolean functions over a fixed
set of variables or, equivalently, sets of Boolean vectors of a fixed
size.

Basics

Each BDD has a fixed number of variables, Varnum, declared when it is
initialized (using New) and each variable is represented by an integer
index in the interval [0..Varnum), called a level. A single process can
hold multiple BDD values, each with its own variable count.

Most operations return a Node, an index into the diagram's internal node
table; 1 (respectively 0) denotes the constant function True
(respectively False). Nodes are hash-consed: two nodes built from
semantically equal expressions are always the same Go value, so Node
equality via == is exactly BDD equality, with no separate Equal method
required.

Lineage

The node table, Apply-based operation dispatch, and the Ite/Exist/Replace
algorithms in this package descend from a Go reimplementation of the
BuDDy C library's hashmap-backed "hudd" core. This package keeps only
that backend: there is no array-based buddy-style backend and no
per-call garbage collection, because nodes here are built once when a
transition system or formula encoding is constructed and then only ever
read, never freed individually. The whole BDD is reclaimed together when
it is no longer referenced.

Use of the debug build tag

Compiling with the `debug` build tag turns on logging of BDD creation
and of every new node added to the unique table, letting you watch the
unique table grow without instrumenting call sites by hand. Computed
table activity is not logged.
*/
package bdd
