/*
Package interpreter implements a tree-walking evaluator for rotten programs.

An interpreter owns a runtime environment (a stack of memory frames and a
heap of instances) for its whole lifetime. Statements are executed in order;
the value of the last top-level expression statement is the result of a run.

	intp := interpreter.New(interpreter.WithOutput(os.Stdout))
	value, err := intp.Run(`fun add(a, b) { return a + b; } add(2, 3);`)
	// value is runtime.Number(5)

Executing a statement results either in a normal outcome, in a returning
outcome carrying a value, or in an error. Returning outcomes travel up
through blocks and loops and are consumed by the function call they
originate from.

Errors are of type *Error and are reported in the format

	[row:column] Error: message
	lexeme

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interpreter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rotten.interpreter'.
func tracer() tracing.Trace {
	return tracing.Select("rotten.interpreter")
}
