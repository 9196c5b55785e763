// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"

	"github.com/pkg/errors"
)

// maxVar bounds the number of variables a single BDD may declare. We use
// only the first 21 bits of a level to encode a variable index, leaving
// headroom in int32 for future bookkeeping without ever risking overflow
// on 32-bit architectures.
const maxVar = 0x1FFFFF

// ErrUnknownVariable is returned when an operation is asked to act on a
// variable index outside the range declared by New.
type ErrUnknownVariable struct {
	Index int
}

func (e *ErrUnknownVariable) Error() string {
	return fmt.Sprintf("bdd: unknown variable %d", e.Index)
}

// ErrInternal signals an invariant violation inside the engine itself
// (a malformed substitution, a hash-consing mismatch). No function in
// this package returns it.
var ErrInternal = errors.New("bdd: internal invariant violation")

func (b *BDD) checkVar(i int) error {
	if i < 0 || i >= b.varnum {
		return errors.WithStack(&ErrUnknownVariable{Index: i})
	}
	return nil
}
