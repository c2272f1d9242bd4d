/*
Package rotten is a tree-walking interpreter for a small, dynamically typed
scripting language. The language supports variables, control flow, first-class
functions and single-inheritance classes with instance fields and
bound methods.

Package structure is as follows:

■ lexer: Package lexer turns source text into a finished sequence of tokens.

■ ast: Package ast defines the expression and statement trees.

■ parser: Package parser is a recursive-descent parser producing statement lists,
recovering from errors on a per-declaration basis.

■ runtime: Package runtime provides values, the instance heap and the stack of
memory frames an interpreter works on.

■ interpreter: Package interpreter walks statement trees and executes them.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rotten
