package interpreter

import (
	"fmt"

	"github.com/npillmayer/rotten"
	"github.com/npillmayer/rotten/runtime"
)

// ErrorKind classifies runtime errors.
type ErrorKind int

// Kinds of runtime errors.
const (
	Unreachable       ErrorKind = iota // internal error, should never happen
	UnexpectedValue                    // value has the wrong type for an operation
	DivisionByZero                     // right operand of '/' is zero
	UndefinedVariable                  // name is not defined in any frame
	IsNotCallable                      // callee is neither a function nor a class
	ArgumentMismatch                   // wrong number of arguments
	MissingBlock                       // function body is not a block
	CallDepthExceeded                  // calls nested too deeply
)

// Error is a runtime error. Token is the token an error is attributed to;
// it may be nil for internal errors.
type Error struct {
	Kind   ErrorKind
	Token  rotten.Token
	Is     runtime.Value // UnexpectedValue: offending value
	Expect string        // UnexpectedValue: expected kind of value
	Has    int           // ArgumentMismatch: number of arguments
	Want   int           // ArgumentMismatch: arity; CallDepthExceeded: limit
}

func newError(kind ErrorKind, token rotten.Token) *Error {
	return &Error{Kind: kind, Token: token}
}

func unexpected(token rotten.Token, is runtime.Value, expect runtime.Kind) *Error {
	return &Error{Kind: UnexpectedValue, Token: token, Is: is, Expect: expect.String()}
}

func (e *Error) message() string {
	switch e.Kind {
	case Unreachable:
		return "Internal error: unreachable code reached"
	case UnexpectedValue:
		if e.Is == nil {
			return fmt.Sprintf("Unexpected value, expected %s", e.Expect)
		}
		return fmt.Sprintf("Unexpected value '%s' of type %s, expected %s", e.Is, e.Is.Kind(), e.Expect)
	case DivisionByZero:
		return "Division by zero"
	case UndefinedVariable:
		return fmt.Sprintf("Undefined variable '%s'", e.Lexeme())
	case IsNotCallable:
		return "Can only call functions and classes"
	case ArgumentMismatch:
		return fmt.Sprintf("Expected %d arguments but got %d", e.Want, e.Has)
	case MissingBlock:
		return "Function body is not a block"
	case CallDepthExceeded:
		return fmt.Sprintf("Call depth exceeds %d", e.Want)
	}
	return "Unknown runtime error"
}

// Lexeme is the lexeme of the token the error is attributed to, if any.
func (e *Error) Lexeme() string {
	if e.Token == nil {
		return ""
	}
	return e.Token.Lexeme()
}

func (e *Error) Error() string {
	if e.Token == nil {
		return "Error: " + e.message()
	}
	pos := e.Token.Position()
	return fmt.Sprintf("[%d:%d] Error: %s\n%s", pos.Row, pos.Column, e.message(), e.Token.Lexeme())
}
