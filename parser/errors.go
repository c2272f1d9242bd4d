package parser

import (
	"fmt"
	"strings"

	"github.com/npillmayer/rotten"
	"github.com/npillmayer/rotten/lexer"
)

// ErrorKind classifies parser errors.
type ErrorKind int

// Kinds of parser errors.
const (
	GetTokenError            ErrorKind = iota // token stream exhausted unexpectedly
	LiteralTokenWithoutValue                  // number or string token without a value
	UnexpectedTokenType                       // token may not start an expression
	ExpectToken                               // a token of a certain kind was expected
	InvalidAssignment                         // left-hand side is not assignable
)

// Error is a parser error. Token is the offending token and may be nil
// for GetTokenError.
type Error struct {
	Kind     ErrorKind
	Token    rotten.Token
	Expected rotten.TokType // for ExpectToken
}

func (e *Error) message() string {
	switch e.Kind {
	case GetTokenError:
		return "Failed to get token"
	case LiteralTokenWithoutValue:
		return "Literal type token without value"
	case UnexpectedTokenType:
		return "Unexpected token type"
	case ExpectToken:
		return fmt.Sprintf("'%s' expected", lexer.KindString(e.Expected))
	case InvalidAssignment:
		return "Invalid assignment target"
	}
	return "Unknown parser error"
}

func (e *Error) Error() string {
	if e.Token == nil {
		return "Error: " + e.message()
	}
	pos := e.Token.Position()
	return fmt.Sprintf("[%d:%d] Error: %s\n%s", pos.Row, pos.Column, e.message(), e.Token.Lexeme())
}

// ErrorList collects the errors of a parser run.
type ErrorList []*Error

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}
