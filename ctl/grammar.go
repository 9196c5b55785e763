package ctl

// The participle grammar below mirrors the BNF:
//
//	expr  := or
//	or    := and ("OR" and)*
//	and   := unary ("AND" unary)*
//	unary := "NOT" unary | "EX" unary | "AX" unary | "EF" unary | "AF" unary
//	       | "EG" unary | "AG" unary
//	       | "E" "[" expr "U" expr "]" | "A" "[" expr "U" expr "]"
//	       | "(" expr ")" | IDENT
//
// Keywords are reserved: an atomic proposition may not be named OR, AND,
// NOT, EX, AX, EF, AF, EG, AG, E, A or U.

type orExpr struct {
	Left *andExpr   `parser:"@@"`
	Rest []*andExpr `parser:"( \"OR\" @@ )*"`
}

type andExpr struct {
	Left *unaryExpr   `parser:"@@"`
	Rest []*unaryExpr `parser:"( \"AND\" @@ )*"`
}

type untilExpr struct {
	Left  *orExpr `parser:"@@"`
	Right *orExpr `parser:"\"U\" @@"`
}

type unaryExpr struct {
	Not   *unaryExpr `parser:"  \"NOT\" @@"`
	EX    *unaryExpr `parser:"| \"EX\" @@"`
	AX    *unaryExpr `parser:"| \"AX\" @@"`
	EF    *unaryExpr `parser:"| \"EF\" @@"`
	AF    *unaryExpr `parser:"| \"AF\" @@"`
	EG    *unaryExpr `parser:"| \"EG\" @@"`
	AG    *unaryExpr `parser:"| \"AG\" @@"`
	EU    *untilExpr `parser:"| \"E\" \"[\" @@ \"]\""`
	AU    *untilExpr `parser:"| \"A\" \"[\" @@ \"]\""`
	Paren *orExpr    `parser:"| \"(\" @@ \")\""`
	Atom  *string    `parser:"| @Ident"`
}

var reserved = map[string]bool{
	"OR": true, "AND": true, "NOT": true,
	"EX": true, "AX": true, "EF": true, "AF": true, "EG": true, "AG": true,
	"E": true, "A": true, "U": true,
}
