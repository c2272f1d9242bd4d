package lexer

import (
	"fmt"

	"github.com/npillmayer/rotten"
)

// EOF marks the end of input.
const EOF rotten.TokType = -1

// Token kinds of the language.
const (
	// Single-character tokens.
	LeftParen rotten.TokType = iota + 1
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Return
	Super
	This
	True
	Var
	While
)

var kindNames = map[rotten.TokType]string{
	EOF:          "end of input",
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Minus:        "-",
	Plus:         "+",
	Semicolon:    ";",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
	Identifier:   "identifier",
	String:       "string",
	Number:       "number",
	And:          "and",
	Class:        "class",
	Else:         "else",
	False:        "false",
	Fun:          "fun",
	For:          "for",
	If:           "if",
	Nil:          "nil",
	Or:           "or",
	Return:       "return",
	Super:        "super",
	This:         "this",
	True:         "true",
	Var:          "var",
	While:        "while",
}

// KindString returns a printable name for a token kind. It is a rotten.TokTypeStringer.
func KindString(t rotten.TokType) string {
	if s, ok := kindNames[t]; ok {
		return s
	}
	return fmt.Sprintf("<token %d>", int(t))
}

var _ rotten.TokTypeStringer = KindString

// The tokens representing literal one- and two-char lexemes.
var literals = []string{"(", ")", "{", "}", ",", ".", "-", "+", ";", "/", "*",
	"!", "!=", "=", "==", ">", ">=", "<", "<="}

// keywords maps reserved identifiers to their token kinds.
var keywords = map[string]rotten.TokType{}

// tokenIds maps literal lexemes to their token kinds.
var tokenIds = map[string]rotten.TokType{}

func init() {
	for k, name := range kindNames {
		if k >= And && k <= While {
			keywords[name] = k
		} else if k >= LeftParen && k <= LessEqual {
			tokenIds[name] = k
		}
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, produced by the scanner.
// Parsers and tests may create their own with MakeToken.
type DefaultToken struct {
	kind   rotten.TokType
	lexeme string
	Val    interface{}
	pos    rotten.Position
}

var _ rotten.Token = DefaultToken{}

// MakeToken creates a token without a literal value.
func MakeToken(typ rotten.TokType, lexeme string, pos rotten.Position) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		pos:    pos,
	}
}

// MakeLiteral creates a token carrying a literal value.
func MakeLiteral(typ rotten.TokType, lexeme string, value interface{}, pos rotten.Position) DefaultToken {
	t := MakeToken(typ, lexeme, pos)
	t.Val = value
	return t
}

func (t DefaultToken) TokType() rotten.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Position() rotten.Position {
	return t.pos
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%s %q @%s>", KindString(t.kind), t.lexeme, t.pos)
}
