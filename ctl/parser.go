package ctl

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var (
	buildOnce sync.Once
	parser    *participle.Parser[orExpr]
	buildErr  error
)

func build() {
	parser, buildErr = participle.Build[orExpr](
		participle.Lexer(ctlLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
}

// Parse parses a CTL formula and returns its AST. On a malformed
// formula it returns a *SyntaxError; on a formula that uses a reserved
// keyword as an atomic proposition name it returns
// *ErrReservedIdentifier.
func Parse(formula string) (Node, error) {
	buildOnce.Do(build)
	if buildErr != nil {
		return nil, fmt.Errorf("ctl: failed to build parser: %w", buildErr)
	}

	tree, err := parser.ParseString("", formula)
	if err != nil {
		pe, ok := err.(participle.Error)
		if !ok {
			return nil, err
		}
		return nil, &SyntaxError{Pos: pe.Position(), Msg: pe.Message()}
	}

	node := foldOr(tree)
	if name, bad := firstReservedAtom(node); bad {
		return nil, &ErrReservedIdentifier{Name: name}
	}
	return node, nil
}

func firstReservedAtom(n Node) (string, bool) {
	switch v := n.(type) {
	case Atom:
		return v.Name, reserved[v.Name]
	case Not:
		return firstReservedAtom(v.X)
	case And:
		if name, bad := firstReservedAtom(v.X); bad {
			return name, true
		}
		return firstReservedAtom(v.Y)
	case Or:
		if name, bad := firstReservedAtom(v.X); bad {
			return name, true
		}
		return firstReservedAtom(v.Y)
	case EX:
		return firstReservedAtom(v.X)
	case AX:
		return firstReservedAtom(v.X)
	case EF:
		return firstReservedAtom(v.X)
	case AF:
		return firstReservedAtom(v.X)
	case EG:
		return firstReservedAtom(v.X)
	case AG:
		return firstReservedAtom(v.X)
	case EU:
		if name, bad := firstReservedAtom(v.X); bad {
			return name, true
		}
		return firstReservedAtom(v.Y)
	case AU:
		if name, bad := firstReservedAtom(v.X); bad {
			return name, true
		}
		return firstReservedAtom(v.Y)
	default:
		return "", false
	}
}

// ReportSyntaxError prints a caret-style parse error message for err
// against the original source formula, in the style of cmd/ctlcheck's
// diagnostics.
func ReportSyntaxError(src string, err error) {
	se, ok := err.(*SyntaxError)
	if !ok {
		color.Red("error: %s", err)
		return
	}

	lines := strings.Split(src, "\n")
	if se.Pos.Line <= 0 || se.Pos.Line > len(lines) {
		color.Red("syntax error at unknown location: %s", err)
		return
	}

	line := lines[se.Pos.Line-1]
	caret := strings.Repeat(" ", se.Pos.Column-1) + "^"

	color.Red("syntax error at line %d, column %d:", se.Pos.Line, se.Pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("-> %s\n", se.Msg)
}
