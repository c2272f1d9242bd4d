/*
Package parser provides a recursive-descent parser for the language.

The parser consumes a finished token sequence, as produced by package lexer,
once from left to right. It produces a list of top-level statements.
Operator precedence is encoded in the grammar, from low to high:

	expression := assignment
	assignment := ( call '.' IDENT | IDENT ) '=' assignment | or
	or         := and ( 'or' and )*
	and        := equality ( 'and' equality )*
	equality   := comparison ( ( '!=' | '==' ) comparison )*
	comparison := term ( ( '>' | '>=' | '<' | '<=' ) term )*
	term       := factor ( ( '-' | '+' ) factor )*
	factor     := unary ( ( '/' | '*' ) unary )*
	unary      := ( '!' | '-' ) unary | call
	call       := primary ( '(' arguments? ')' | '.' IDENT )*
	primary    := literal | '(' expression ')' | IDENT | 'this' | 'super' '.' IDENT

Parsing does not stop at the first error. Whenever a top-level declaration fails
to parse, the error is recorded and the parser synchronizes: it discards tokens
until it has passed a ';' or arrives at a token starting a new declaration.
Parse therefore returns every declaration which could be parsed, together with
a list of errors.

`for` loops are desugared into blocks and while loops.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rotten.parser'.
func tracer() tracing.Trace {
	return tracing.Select("rotten.parser")
}
