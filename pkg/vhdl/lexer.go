package vhdl

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// EntityLexer defines the lexical structure of the VHDL subset read by the
// strict front end. Keywords are case-insensitive; anything after the entity
// declaration still has to lex, hence the Operator and Other rules.
var EntityLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},

	// Context clauses
	{Name: "KwLibrary", Pattern: `(?i)\bLIBRARY\b`},
	{Name: "KwUse", Pattern: `(?i)\bUSE\b`},
	{Name: "KwAll", Pattern: `(?i)\bALL\b`},

	// Entity structure
	{Name: "KwEntity", Pattern: `(?i)\bENTITY\b`},
	{Name: "KwIs", Pattern: `(?i)\bIS\b`},
	{Name: "KwEnd", Pattern: `(?i)\bEND\b`},
	{Name: "KwPort", Pattern: `(?i)\bPORT\b`},

	// Port modes
	{Name: "KwInout", Pattern: `(?i)\bINOUT\b`},
	{Name: "KwIn", Pattern: `(?i)\bIN\b`},
	{Name: "KwOut", Pattern: `(?i)\bOUT\b`},
	{Name: "KwBuffer", Pattern: `(?i)\bBUFFER\b`},
	{Name: "KwLinkage", Pattern: `(?i)\bLINKAGE\b`},

	// Range directions
	{Name: "KwDownto", Pattern: `(?i)\bDOWNTO\b`},
	{Name: "KwTo", Pattern: `(?i)\bTO\b`},

	// Punctuation
	{Name: "Assign", Pattern: `:=`},
	{Name: "Arrow", Pattern: `=>`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Semicolon", Pattern: `;`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	// Literals
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Char", Pattern: `'.'`},
	{Name: "Integer", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},

	{Name: "Operator", Pattern: `[-+*/&<>=|]`},
	{Name: "Other", Pattern: `.`},
})
