// Package ctl parses the CTL formula language into a small AST (Node)
// that the checker package evaluates.
package ctl

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// SyntaxError reports a malformed formula, with the position participle
// recovered from the lexer.
type SyntaxError struct {
	Pos lexer.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ctl: %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// ErrReservedIdentifier reports an atomic proposition whose name
// collides with a CTL keyword (OR, AND, NOT, EX, AX, EF, AF, EG, AG, E,
// A, U).
type ErrReservedIdentifier struct {
	Name string
}

func (e *ErrReservedIdentifier) Error() string {
	return fmt.Sprintf("ctl: %q is a reserved keyword, not a valid atomic proposition name", e.Name)
}
