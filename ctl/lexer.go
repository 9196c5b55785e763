package ctl

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var ctlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[()\[\]]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
