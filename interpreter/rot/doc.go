/*
Command rot runs rotten scripts or, if no script is given, starts an
interactive REPL.

	rot [-h] [-c config.yaml] [-t level] [-d depth] [script]

Options:

	-c file    read configuration from a YAML file
	-t level   trace level [Debug|Info|Error]
	-d depth   maximum call depth, 0 for no limit
	-h         print usage

A configuration file may contain the keys

	trace: Info
	max-call-depth: 512
	prompt: "rot> "
	color: false

Options given on the command line take precedence over the configuration file.

In the REPL, every line is run by the same interpreter, so global definitions
persist. The value of an expression statement is echoed. Lines starting with
a colon are commands:

	:ast <source>   display the syntax tree of source
	:env            display the global bindings
	:quit           leave the REPL (as does <ctrl>D)

A script run exits with status 65 if the script contains syntax errors and
with status 70 on a runtime error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rotten.repl'.
func tracer() tracing.Trace {
	return tracing.Select("rotten.repl")
}
