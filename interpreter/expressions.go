package interpreter

import (
	"github.com/npillmayer/rotten"
	"github.com/npillmayer/rotten/ast"
	"github.com/npillmayer/rotten/lexer"
	"github.com/npillmayer/rotten/runtime"
)

// Names of the implicit bindings of method calls.
const (
	thisName  = "this"
	superName = "super"
)

func (intp *Interpreter) evaluate(expr ast.Expression) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Assign:
		v, err := intp.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if !intp.rt.MemFrameStack.Assign(e.Name.Lexeme(), v) {
			return nil, newError(UndefinedVariable, e.Name)
		}
		return v, nil
	case *ast.Binary:
		return intp.binary(e)
	case *ast.Call:
		return intp.call(e)
	case *ast.Get:
		obj, err := intp.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(runtime.InstanceRef)
		if !ok {
			return nil, unexpected(e.Name, obj, runtime.InstanceKind)
		}
		return intp.property(inst, e.Name.Lexeme()), nil
	case *ast.Grouping:
		return intp.evaluate(e.Expression)
	case *ast.Literal:
		v, ok := runtime.FromLiteral(e.Value)
		if !ok {
			return nil, newError(Unreachable, nil)
		}
		return v, nil
	case *ast.Logical:
		return intp.logical(e)
	case *ast.Set:
		obj, err := intp.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(runtime.InstanceRef)
		if !ok {
			return nil, unexpected(e.Name, obj, runtime.InstanceKind)
		}
		v, err := intp.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err = intp.rt.Heap.SetField(inst, e.Name.Lexeme(), v); err != nil {
			return nil, newError(Unreachable, e.Name)
		}
		return v, nil
	case *ast.Super:
		return intp.super(e)
	case *ast.This:
		return intp.lookup(thisName, e.Keyword)
	case *ast.Unary:
		return intp.unary(e)
	case *ast.Variable:
		return intp.lookup(e.Name.Lexeme(), e.Name)
	}
	return nil, newError(Unreachable, nil)
}

func (intp *Interpreter) lookup(name string, token rotten.Token) (runtime.Value, error) {
	v, found := intp.rt.MemFrameStack.Get(name)
	if !found {
		return nil, newError(UndefinedVariable, token)
	}
	return v, nil
}

// property gets a field of an instance or, if there is no such field,
// a method bound to the instance. Unknown properties are nil.
func (intp *Interpreter) property(inst runtime.InstanceRef, name string) runtime.Value {
	if v, found := intp.rt.Heap.Field(inst, name); found {
		return v
	}
	if m, found := inst.Class.FindMethod(name); found {
		return m.Bind(inst)
	}
	return runtime.Nil{}
}

// super resolves 'super.method' with the superclass and instance bound for
// the current method call.
func (intp *Interpreter) super(e *ast.Super) (runtime.Value, error) {
	sv, err := intp.lookup(superName, e.Keyword)
	if err != nil {
		return nil, err
	}
	superclass, ok := sv.(*runtime.Class)
	if !ok {
		return nil, unexpected(e.Keyword, sv, runtime.ClassKind)
	}
	this, err := intp.lookup(thisName, e.Keyword)
	if err != nil {
		return nil, err
	}
	inst, ok := this.(runtime.InstanceRef)
	if !ok {
		return nil, unexpected(e.Keyword, this, runtime.InstanceKind)
	}
	if m, found := superclass.FindMethod(e.Method.Lexeme()); found {
		return m.Bind(inst), nil
	}
	return runtime.Nil{}, nil
}

func (intp *Interpreter) unary(e *ast.Unary) (runtime.Value, error) {
	right, err := intp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.TokType() {
	case lexer.Bang:
		return runtime.Bool(!runtime.Truthy(right)), nil
	case lexer.Minus:
		n, ok := runtime.ToNumber(right)
		if !ok {
			return nil, unexpected(e.Operator, right, runtime.NumberKind)
		}
		return -n, nil
	}
	return nil, newError(Unreachable, e.Operator)
}

func (intp *Interpreter) logical(e *ast.Logical) (runtime.Value, error) {
	left, err := intp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Operator.TokType() {
	case lexer.Or:
		if runtime.Truthy(left) {
			return left, nil
		}
	case lexer.And:
		if !runtime.Truthy(left) {
			return left, nil
		}
	default:
		return nil, newError(Unreachable, e.Operator)
	}
	return intp.evaluate(e.Right)
}

func (intp *Interpreter) binary(e *ast.Binary) (runtime.Value, error) {
	left, err := intp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := intp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	op := e.Operator.TokType()
	switch op {
	case lexer.EqualEqual:
		return runtime.Bool(runtime.Equal(left, right)), nil
	case lexer.BangEqual:
		return runtime.Bool(!runtime.Equal(left, right)), nil
	case lexer.Plus:
		if left.Kind() == runtime.StringKind || right.Kind() == runtime.StringKind {
			return runtime.String(left.String() + right.String()), nil
		}
	}
	l, ok := runtime.ToNumber(left)
	if !ok {
		return nil, unexpected(e.Operator, left, runtime.NumberKind)
	}
	r, ok := runtime.ToNumber(right)
	if !ok {
		return nil, unexpected(e.Operator, right, runtime.NumberKind)
	}
	switch op {
	case lexer.Plus:
		return l + r, nil
	case lexer.Minus:
		return l - r, nil
	case lexer.Star:
		return l * r, nil
	case lexer.Slash:
		if r == 0 {
			return nil, newError(DivisionByZero, e.Operator)
		}
		return l / r, nil
	case lexer.Greater:
		return runtime.Bool(l > r), nil
	case lexer.GreaterEqual:
		return runtime.Bool(l >= r), nil
	case lexer.Less:
		return runtime.Bool(l < r), nil
	case lexer.LessEqual:
		return runtime.Bool(l <= r), nil
	}
	return nil, newError(Unreachable, e.Operator)
}
