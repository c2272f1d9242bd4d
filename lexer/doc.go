/*
Package lexer turns source text into a finished sequence of tokens.

The scanner is generated with lexmachine. Tokens carry their kind, the lexeme,
a position (row and column) and, for numbers and strings, the literal value.
The token sequence produced by Tokenize is always terminated by an EOF token.

	tokens, err := lexer.Tokenize(`var x = "hello";`)
	if err != nil {
		// unexpected characters have been found
	}

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rotten.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("rotten.lexer")
}
