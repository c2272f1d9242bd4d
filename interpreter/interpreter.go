package interpreter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/rotten/ast"
	"github.com/npillmayer/rotten/lexer"
	"github.com/npillmayer/rotten/parser"
	"github.com/npillmayer/rotten/runtime"
)

// DefaultMaxCallDepth is the default limit for nested calls.
const DefaultMaxCallDepth = 1024

// Interpreter executes statements against a runtime environment, which
// persists between calls to Interpret and Run.
type Interpreter struct {
	rt          *runtime.Runtime
	out         io.Writer
	diagnostics func(error)
	maxDepth    int
	depth       int
}

// Option configures an interpreter.
type Option func(intp *Interpreter)

// WithOutput sets the writer for built-in print. Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(intp *Interpreter) {
		if w != nil {
			intp.out = w
		}
	}
}

// WithDiagnostics sets a handler for parse errors which do not abort a run.
// Default is to trace them.
func WithDiagnostics(h func(error)) Option {
	return func(intp *Interpreter) {
		if h != nil {
			intp.diagnostics = h
		}
	}
}

// WithMaxCallDepth limits the nesting of calls. A limit of 0 disables the check.
func WithMaxCallDepth(n int) Option {
	return func(intp *Interpreter) {
		if n >= 0 {
			intp.maxDepth = n
		}
	}
}

func logDiagnostic(err error) {
	tracer().Errorf("%v", err)
}

// New creates an interpreter with a fresh runtime environment. The global
// memory frame holds the built-in functions.
func New(opts ...Option) *Interpreter {
	intp := &Interpreter{
		rt:          runtime.NewRuntimeEnvironment(),
		out:         os.Stdout,
		diagnostics: logDiagnostic,
		maxDepth:    DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(intp)
	}
	intp.defineBuiltins()
	return intp
}

// Runtime returns the runtime environment of the interpreter.
func (intp *Interpreter) Runtime() *runtime.Runtime {
	return intp.rt
}

// Globals returns the symbol table of the global memory frame.
func (intp *Interpreter) Globals() *runtime.SymbolTable {
	return intp.rt.MemFrameStack.Globals().SymbolTable
}

func (intp *Interpreter) defineBuiltins() {
	printFn := &runtime.Function{
		Name:   "print",
		Params: []string{"text"},
		Call: func(_ *runtime.Function, args []runtime.Value) (runtime.Value, error) {
			if _, err := fmt.Fprintln(intp.out, args[0].String()); err != nil {
				return nil, err
			}
			return runtime.Nil{}, nil
		},
	}
	intp.rt.MemFrameStack.Define(printFn.Name, printFn) // global frame is TOS
}

// Interpret executes statements in order. It returns the value of the last
// top-level expression statement, or nil if there is none. A top-level
// return statement stops execution and yields its value.
func (intp *Interpreter) Interpret(stmts []ast.Statement) (runtime.Value, error) {
	tracer().Debugf("interpreting %d statements", len(stmts))
	var last runtime.Value
	for _, stmt := range stmts {
		if e, ok := stmt.(*ast.ExprStmt); ok {
			v, err := intp.evaluate(e.Expression)
			if err != nil {
				return nil, err
			}
			last = v
			continue
		}
		out, err := intp.execute(stmt)
		if err != nil {
			return nil, err
		}
		if out.returning {
			return out.value, nil
		}
	}
	return last, nil
}

// Run tokenizes, parses and interprets source text. Lexer errors abort the
// run. Parse errors are reported to the diagnostics handler, and every
// statement parsed successfully is executed. If no statement could be
// parsed, the parse errors are returned as a parser.ErrorList.
func (intp *Interpreter) Run(source string) (runtime.Value, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		var errs parser.ErrorList
		if errors.As(err, &errs) {
			for _, e := range errs {
				intp.diagnostics(e)
			}
		}
		if len(stmts) == 0 {
			return nil, err
		}
	}
	return intp.Interpret(stmts)
}

// Run is a shortcut for New(opts...).Run(source).
func Run(source string, opts ...Option) (runtime.Value, error) {
	return New(opts...).Run(source)
}
