package interpreter

import (
	"github.com/npillmayer/rotten/ast"
	"github.com/npillmayer/rotten/runtime"
)

// outcome is the result of executing a statement without error: either
// normal completion or a return, carrying the return value.
type outcome struct {
	returning bool
	value     runtime.Value
}

var normal = outcome{}

func returning(v runtime.Value) outcome {
	return outcome{returning: true, value: v}
}

func (intp *Interpreter) execute(stmt ast.Statement) (outcome, error) {
	switch s := stmt.(type) {
	case *ast.Block:
		return intp.withFrame("block", func() (outcome, error) {
			return intp.executeStatements(s.Statements)
		})
	case *ast.Class:
		return normal, intp.declareClass(s)
	case *ast.ExprStmt:
		_, err := intp.evaluate(s.Expression)
		return normal, err
	case *ast.Function:
		intp.rt.MemFrameStack.Define(s.Name.Lexeme(), intp.makeFunction(s))
		return normal, nil
	case *ast.If:
		cond, err := intp.evaluate(s.Condition)
		if err != nil {
			return normal, err
		}
		if runtime.Truthy(cond) {
			return intp.execute(s.Then)
		}
		if s.Else != nil {
			return intp.execute(s.Else)
		}
		return normal, nil
	case *ast.Return:
		var v runtime.Value = runtime.Nil{}
		if s.Value != nil {
			var err error
			if v, err = intp.evaluate(s.Value); err != nil {
				return normal, err
			}
		}
		return returning(v), nil
	case *ast.Var:
		var v runtime.Value = runtime.Nil{}
		if s.Initializer != nil {
			var err error
			if v, err = intp.evaluate(s.Initializer); err != nil {
				return normal, err
			}
		}
		intp.rt.MemFrameStack.Define(s.Name.Lexeme(), v)
		return normal, nil
	case *ast.While:
		for {
			cond, err := intp.evaluate(s.Condition)
			if err != nil {
				return normal, err
			}
			if !runtime.Truthy(cond) {
				return normal, nil
			}
			if out, err := intp.execute(s.Body); err != nil || out.returning {
				return out, err
			}
		}
	}
	return normal, newError(Unreachable, nil)
}

// executeStatements executes statements in the current frame, stopping at the
// first error or return.
func (intp *Interpreter) executeStatements(stmts []ast.Statement) (outcome, error) {
	for _, stmt := range stmts {
		if out, err := intp.execute(stmt); err != nil || out.returning {
			return out, err
		}
	}
	return normal, nil
}

// withFrame executes f with a new memory frame. The frame is popped
// when f returns, whatever the outcome.
func (intp *Interpreter) withFrame(name string, f func() (outcome, error)) (outcome, error) {
	intp.rt.MemFrameStack.PushNewMemoryFrame(name)
	defer func() {
		if _, err := intp.rt.MemFrameStack.PopMemoryFrame(); err != nil {
			tracer().Errorf("unbalanced memory frames: %v", err)
		}
	}()
	return f()
}

func (intp *Interpreter) makeFunction(decl *ast.Function) *runtime.Function {
	params := make([]string, len(decl.Params))
	for i, p := range decl.Params {
		params[i] = p.Lexeme()
	}
	return &runtime.Function{
		Name:   decl.Name.Lexeme(),
		Params: params,
		Body:   decl.Body,
		Call:   intp.callFunction,
	}
}

// declareClass defines the class name before the class is constructed, so
// that methods may refer to it.
func (intp *Interpreter) declareClass(decl *ast.Class) error {
	name := decl.Name.Lexeme()
	mfst := intp.rt.MemFrameStack
	mfst.Define(name, runtime.Nil{})
	var superclass *runtime.Class
	if decl.Superclass != nil {
		v, err := intp.evaluate(decl.Superclass)
		if err != nil {
			return err
		}
		var ok bool
		if superclass, ok = v.(*runtime.Class); !ok {
			return unexpected(decl.Superclass.Name, v, runtime.ClassKind)
		}
	}
	methods := make([]*runtime.Function, len(decl.Methods))
	for i, m := range decl.Methods {
		methods[i] = intp.makeFunction(m)
	}
	mfst.Assign(name, runtime.NewClass(name, superclass, methods))
	return nil
}
