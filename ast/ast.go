package ast

import (
	"github.com/npillmayer/rotten"
)

// Expression is a node of an expression tree.
type Expression interface {
	expressionNode()
}

// Statement is a node of a statement tree.
type Statement interface {
	statementNode()
}

// --- Expressions -----------------------------------------------------------

// Assign is an assignment to a variable: name = value.
type Assign struct {
	Name  rotten.Token
	Value Expression
}

// Binary is an arithmetic, comparison or equality operation.
type Binary struct {
	Left     Expression
	Operator rotten.Token
	Right    Expression
}

// Call is a call of a function or a class. Paren is the closing parenthesis,
// used for error positions.
type Call struct {
	Callee    Expression
	Paren     rotten.Token
	Arguments []Expression
}

// Get is a property access: object.name.
type Get struct {
	Object Expression
	Name   rotten.Token
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Expression Expression
}

// Literal is a constant. Value is one of nil, bool, float64 or string.
type Literal struct {
	Value interface{}
}

// Logical is a short-circuit 'and' or 'or'.
type Logical struct {
	Left     Expression
	Operator rotten.Token
	Right    Expression
}

// Set is a property assignment: object.name = value.
type Set struct {
	Object Expression
	Name   rotten.Token
	Value  Expression
}

// Super is a superclass method access: super.method.
type Super struct {
	Keyword rotten.Token
	Method  rotten.Token
}

// This is the receiver of a method.
type This struct {
	Keyword rotten.Token
}

// Unary is a prefix operation ('!' or '-').
type Unary struct {
	Operator rotten.Token
	Right    Expression
}

// Variable is a reference to a named variable.
type Variable struct {
	Name rotten.Token
}

func (*Assign) expressionNode()   {}
func (*Binary) expressionNode()   {}
func (*Call) expressionNode()     {}
func (*Get) expressionNode()      {}
func (*Grouping) expressionNode() {}
func (*Literal) expressionNode()  {}
func (*Logical) expressionNode()  {}
func (*Set) expressionNode()      {}
func (*Super) expressionNode()    {}
func (*This) expressionNode()     {}
func (*Unary) expressionNode()    {}
func (*Variable) expressionNode() {}

// --- Statements ------------------------------------------------------------

// Block is a sequence of statements, executed in a scope of its own.
type Block struct {
	Statements []Statement
}

// Class is a class declaration. Superclass is nil for classes without a superclass.
type Class struct {
	Name       rotten.Token
	Superclass *Variable
	Methods    []*Function
}

// ExprStmt is an expression evaluated as a statement.
type ExprStmt struct {
	Expression Expression
}

// Function is a function declaration or a method. Body is a Block, as produced
// by the parser.
type Function struct {
	Name   rotten.Token
	Params []rotten.Token
	Body   Statement
}

// If is a conditional statement. Else may be nil.
type If struct {
	Condition Expression
	Then      Statement
	Else      Statement
}

// Return leaves the current function. Value may be nil.
type Return struct {
	Keyword rotten.Token
	Value   Expression
}

// Var declares a variable. Initializer may be nil.
type Var struct {
	Name        rotten.Token
	Initializer Expression
}

// While is a loop.
type While struct {
	Condition Expression
	Body      Statement
}

func (*Block) statementNode()    {}
func (*Class) statementNode()    {}
func (*ExprStmt) statementNode() {}
func (*Function) statementNode() {}
func (*If) statementNode()       {}
func (*Return) statementNode()   {}
func (*Var) statementNode()      {}
func (*While) statementNode()    {}
