package interpreter

import (
	"errors"

	"github.com/npillmayer/rotten"
	"github.com/npillmayer/rotten/ast"
	"github.com/npillmayer/rotten/runtime"
)

// initializerName is the name of the method called on instance creation.
const initializerName = "init"

func (intp *Interpreter) call(e *ast.Call) (runtime.Value, error) {
	callee, err := intp.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		v, err := intp.evaluate(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	switch c := callee.(type) {
	case *runtime.Function:
		return intp.invoke(c, args, e.Paren)
	case *runtime.Class:
		return intp.instantiate(c, args, e.Paren)
	}
	return nil, newError(IsNotCallable, e.Paren)
}

// invoke checks arity and call depth, then calls fn. Errors without position
// are attributed to token.
func (intp *Interpreter) invoke(fn *runtime.Function, args []runtime.Value, token rotten.Token) (runtime.Value, error) {
	if len(args) != fn.Arity() {
		return nil, &Error{Kind: ArgumentMismatch, Token: token, Has: len(args), Want: fn.Arity()}
	}
	if intp.maxDepth > 0 && intp.depth >= intp.maxDepth {
		return nil, &Error{Kind: CallDepthExceeded, Token: token, Want: intp.maxDepth}
	}
	intp.depth++
	defer func() { intp.depth-- }()
	tracer().Debugf("calling %s/%d at depth %d", fn.Name, fn.Arity(), intp.depth)
	v, err := fn.Call(fn, args)
	var rterr *Error
	if errors.As(err, &rterr) && rterr.Token == nil {
		rterr.Token = token
	}
	return v, err
}

// callFunction is the call behaviour of user-defined functions. It executes
// the function body in a new memory frame holding the arguments and, for
// bound methods, 'this' and 'super'.
func (intp *Interpreter) callFunction(fn *runtime.Function, args []runtime.Value) (runtime.Value, error) {
	body, ok := fn.Body.(*ast.Block)
	if !ok {
		return nil, newError(MissingBlock, nil)
	}
	out, err := intp.withFrame(fn.Name, func() (outcome, error) {
		mfst := intp.rt.MemFrameStack
		if fn.IsBound() {
			this, err := intp.rt.Heap.Ref(fn.This)
			if err != nil {
				return normal, newError(Unreachable, nil)
			}
			mfst.Define(thisName, this)
			if fn.Owner != nil && fn.Owner.Superclass != nil {
				mfst.Define(superName, fn.Owner.Superclass)
			}
		}
		for i, param := range fn.Params {
			mfst.Define(param, args[i])
		}
		return intp.executeStatements(body.Statements)
	})
	if err != nil {
		return nil, err
	}
	if out.returning {
		return out.value, nil
	}
	return runtime.Nil{}, nil
}

// instantiate creates a new instance of a class. If the class has an
// initializer, it is called with the arguments; otherwise the arguments
// are ignored.
func (intp *Interpreter) instantiate(class *runtime.Class, args []runtime.Value, token rotten.Token) (runtime.Value, error) {
	inst := intp.rt.Heap.New(class)
	if initializer, found := class.FindMethod(initializerName); found {
		if _, err := intp.invoke(initializer.Bind(inst), args, token); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
