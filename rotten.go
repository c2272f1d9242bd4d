package rotten

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Constants are defined by package lexer.
type TokType int

// TokTypeStringer is a type to be provided by a scanner to be able
// to print out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals of the language.
//
// An example would be a token for a numeric literal:
//
//    TokType  = Number     // identifier for this kind of tokens
//    Lexeme   = "3.1416"   // lexeme how it appeared in the input stream
//    Value    = 3.1416     // is a float64 value
//    Position = 7:12       // row and column of the first character
//
// Token.Value() is nil for tokens which do not carry a literal.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Position() Position
}

// --- Positions --------------------------------------------------------

// Position is the location of a token within the source text. Rows and columns
// start at 1.
type Position struct {
	Row    int
	Column int
}

// Pos is a shortcut for creating a position.
func Pos(row, col int) Position {
	return Position{Row: row, Column: col}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}
