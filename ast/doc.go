/*
Package ast defines the abstract syntax tree of the language.

There are two families of nodes: expressions and statements. Both are closed
sets of node types: the interfaces Expression and Statement are sealed, and
tree walkers are expected to switch over the concrete node types exhaustively.
Every composite node exclusively owns its sub-trees.

There is no node for `for` loops: the parser desugars them into blocks and
while loops.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast
