package runtime

import (
	"github.com/npillmayer/rotten/ast"
)

// CallFn is the call behaviour of a function. It receives the function value
// itself (possibly bound to an instance) and the evaluated arguments, which
// already have been checked against the function's arity.
type CallFn func(fn *Function, args []Value) (Value, error)

// Function is a callable value, either user-defined or built-in.
type Function struct {
	Name   string
	Params []string
	Body   ast.Statement // nil for built-ins
	This   InstanceID    // bound instance, or 0
	Owner  *Class        // class holding this function as a method, or nil
	Call   CallFn
}

// Kind is FunctionKind.
func (fn *Function) Kind() Kind { return FunctionKind }

func (fn *Function) String() string {
	return "native function"
}

// Arity is the number of parameters a function expects.
func (fn *Function) Arity() int {
	return len(fn.Params)
}

// IsBound is true if the function is a method bound to an instance.
func (fn *Function) IsBound() bool {
	return fn.This != NoInstance
}

// Bind returns a copy of fn with its 'this' slot set to an instance.
// fn itself is left untouched.
func (fn *Function) Bind(inst InstanceRef) *Function {
	bound := *fn
	bound.This = inst.ID
	return &bound
}
