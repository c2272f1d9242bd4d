package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/rotten/lexer"
	"github.com/npillmayer/rotten/parser"
	"github.com/npillmayer/rotten/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func run(t *testing.T, source string, opts ...Option) (runtime.Value, string, error) {
	var out bytes.Buffer
	opts = append(opts, WithOutput(&out))
	v, err := New(opts...).Run(source)
	return v, out.String(), err
}

func expectKind(t *testing.T, source string, err error, kind ErrorKind) *Error {
	var rterr *Error
	if !errors.As(err, &rterr) {
		t.Errorf("expected runtime error for %q, have %v", source, err)
		return nil
	}
	if rterr.Kind != kind {
		t.Errorf("expected error kind %d for %q, have %v", kind, source, rterr)
	}
	return rterr
}

func TestValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	inputs := []struct {
		source string
		value  runtime.Value
	}{
		{`"5" + 3;`, runtime.String("53")},
		{`3 + "5";`, runtime.String("35")},
		{`5 + 3;`, runtime.Number(8)},
		{`1.0 / 2.0;`, runtime.Number(0.5)},
		{`2 * 3 - 4 / 2;`, runtime.Number(4)},
		{`true + 1;`, runtime.Number(2)},
		{`"2" * "3";`, runtime.Number(6)},
		{`-"3";`, runtime.Number(-3)},
		{`!nil;`, runtime.Bool(true)},
		{`!"";`, runtime.Bool(true)},
		{`1 < 2;`, runtime.Bool(true)},
		{`2 <= 1;`, runtime.Bool(false)},
		{`nil == nil;`, runtime.Bool(true)},
		{`nil == false;`, runtime.Bool(false)},
		{`1 == true;`, runtime.Bool(false)},
		{`"a" != "a";`, runtime.Bool(false)},
		{`false or "x";`, runtime.String("x")},
		{`0 and "y";`, runtime.Number(0)},
		{`1 and "y";`, runtime.String("y")},
		{`nil or nil;`, runtime.Nil{}},
		{`print == print;`, runtime.Bool(true)},
		{`var x = 1; x = x + 1;`, runtime.Number(2)},
		{`var x;`, nil},
	}
	for _, in := range inputs {
		v, _, err := run(t, in.source)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", in.source, err)
			continue
		}
		if in.value == nil {
			if v != nil {
				t.Errorf("expected no value for %q, have %v", in.source, v)
			}
			continue
		}
		if !runtime.Equal(v, in.value) {
			t.Errorf("expected %q to evaluate to %v, is %v", in.source, in.value, v)
		}
	}
}

func TestRuntimeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	inputs := []struct {
		source string
		kind   ErrorKind
		lexeme string
	}{
		{`1 / 0;`, DivisionByZero, "/"},
		{`1 / false;`, DivisionByZero, "/"},
		{`y = 1;`, UndefinedVariable, "y"},
		{`print(z);`, UndefinedVariable, "z"},
		{`5();`, IsNotCallable, ")"},
		{`"f"(1);`, IsNotCallable, ")"},
		{`5.x;`, UnexpectedValue, "x"},
		{`nil.x = 1;`, UnexpectedValue, "x"},
		{`-nil;`, UnexpectedValue, "-"},
		{`-"a";`, UnexpectedValue, "-"},
		{`nil + 1;`, UnexpectedValue, "+"},
		{`"a" < 1;`, UnexpectedValue, "<"},
		{`print();`, ArgumentMismatch, ")"},
		{`this;`, UndefinedVariable, "this"},
		{`var A = 1; class B < A {}`, UnexpectedValue, "A"},
		{`class A < A {}`, UnexpectedValue, "A"},
	}
	for _, in := range inputs {
		_, _, err := run(t, in.source)
		if rterr := expectKind(t, in.source, err, in.kind); rterr != nil && rterr.Lexeme() != in.lexeme {
			t.Errorf("expected error for %q at %q, is at %q", in.source, in.lexeme, rterr.Lexeme())
		}
	}
}

func TestErrorFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	_, _, err := run(t, "var a = 1;\nb = 2;")
	msg := err.Error()
	if !strings.HasPrefix(msg, "[2:") || !strings.HasSuffix(msg, "Error: Undefined variable 'b'\nb") {
		t.Errorf("unexpected error message %q", msg)
	}
}

func TestScoping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	inputs := []struct {
		source string
		value  runtime.Value
	}{
		{`var x = 1; { var x = 2; } x;`, runtime.Number(1)},
		{`var x = 1; { x = 2; } x;`, runtime.Number(2)},
		{`var x = 1; { var x = x + 1; x; }`, nil},
		{`var s = 0; for (var i = 0; i < 5; i = i + 1) s = s + i; s;`, runtime.Number(10)},
		{`var i = 0; while (i < 3) i = i + 1; i;`, runtime.Number(3)},
		{`var r; if (nil) r = 1; else r = 2; r;`, runtime.Number(2)},
		{`var r = 0; if (1) r = 1; r;`, runtime.Number(1)},
	}
	for _, in := range inputs {
		v, _, err := run(t, in.source)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", in.source, err)
			continue
		}
		if in.value == nil && v == nil {
			continue
		}
		if v == nil || !runtime.Equal(v, in.value) {
			t.Errorf("expected %q to evaluate to %v, is %v", in.source, in.value, v)
		}
	}
}

func TestBlockDoesNotLeak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	_, _, err := run(t, `{ var inner = 1; } inner;`)
	expectKind(t, "inner", err, UndefinedVariable)
}

func TestShortCircuit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	source := `
	var c = 0;
	fun inc() { c = c + 1; return true; }
	0 and inc();
	true or inc();
	c;`
	v, _, err := run(t, source)
	if err != nil {
		t.Fatal(err)
	}
	if !runtime.Equal(v, runtime.Number(0)) {
		t.Errorf("right operands must not be evaluated, c = %v", v)
	}
}

func TestFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	inputs := []struct {
		source string
		value  runtime.Value
	}{
		{`fun add(a, b) { return a + b; } add(2, 3);`, runtime.Number(5)},
		{`fun f() {} f();`, runtime.Nil{}},
		{`fun f() { return; } f();`, runtime.Nil{}},
		{`fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); } fib(10);`, runtime.Number(55)},
		{`fun f() { var i = 0; while (true) { i = i + 1; if (i == 3) return i; } } f();`, runtime.Number(3)},
		{`fun f() { for (var i = 0; ; i = i + 1) { if (i > 1) return i; } } f();`, runtime.Number(2)},
		{`fun f(a) { a = 10; return a; } var a = 1; f(a) + a;`, runtime.Number(11)},
		{`fun f() { return g(); } fun g() { return "g"; } f();`, runtime.String("g")},
		{`fun f() { return 1; } var g = f; g();`, runtime.Number(1)},
		{`fun f() { return 1; } f;`, nil},
	}
	for _, in := range inputs {
		v, _, err := run(t, in.source)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", in.source, err)
			continue
		}
		if in.value == nil {
			if v.Kind() != runtime.FunctionKind {
				t.Errorf("expected %q to evaluate to a function, is %v", in.source, v)
			}
			continue
		}
		if !runtime.Equal(v, in.value) {
			t.Errorf("expected %q to evaluate to %v, is %v", in.source, in.value, v)
		}
	}
}

func TestArgumentMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	source := `fun add(a, b) { return a + b; } add(2);`
	_, _, err := run(t, source)
	if rterr := expectKind(t, source, err, ArgumentMismatch); rterr != nil {
		if rterr.Has != 1 || rterr.Want != 2 {
			t.Errorf("expected mismatch of 1 vs. 2, is %d vs. %d", rterr.Has, rterr.Want)
		}
	}
}

func TestFramesAreReleased(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	intp := New(WithOutput(&bytes.Buffer{}))
	source := `fun f(n) { { var x = n; if (n == 0) return 1 / n; } return f(n - 1); } f(3);`
	if _, err := intp.Run(source); err == nil {
		t.Fatal("expected division by zero")
	}
	if d := intp.Runtime().MemFrameStack.Depth(); d != 1 {
		t.Errorf("expected only the global frame to remain, depth is %d", d)
	}
	if _, err := intp.Run(`fun g() { return 1; } g();`); err != nil {
		t.Error(err)
	}
	if d := intp.Runtime().MemFrameStack.Depth(); d != 1 {
		t.Errorf("expected only the global frame to remain, depth is %d", d)
	}
}

func TestCallDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	source := `fun r(n) { return r(n + 1); } r(0);`
	intp := New(WithMaxCallDepth(50))
	_, err := intp.Run(source)
	if rterr := expectKind(t, source, err, CallDepthExceeded); rterr != nil && rterr.Want != 50 {
		t.Errorf("expected limit to be 50, is %d", rterr.Want)
	}
	if d := intp.Runtime().MemFrameStack.Depth(); d != 1 {
		t.Errorf("expected only the global frame to remain, depth is %d", d)
	}
	v, _, err := run(t, `fun d(n) { if (n == 0) return 0; return d(n - 1); } d(100);`, WithMaxCallDepth(0))
	if err != nil || !runtime.Equal(v, runtime.Number(0)) {
		t.Errorf("expected unlimited recursion to succeed, have %v", err)
	}
}

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	source := `
	print(1);
	print(2.5);
	print("s");
	print(nil);
	print(true);
	print(print);
	class P {}
	print(P);
	print(P());
	print(print("x"));`
	_, out, err := run(t, source)
	if err != nil {
		t.Fatal(err)
	}
	expected := "1\n2.5\ns\nnil\ntrue\nnative function\nP\nP instance\nx\nnil\n"
	if out != expected {
		t.Errorf("expected output %q, have %q", expected, out)
	}
}

func TestTopLevelReturn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	v, out, err := run(t, `return 5; print("not reached");`)
	if err != nil || !runtime.Equal(v, runtime.Number(5)) {
		t.Errorf("expected 5, have %v, error %v", v, err)
	}
	if out != "" {
		t.Errorf("expected no output, have %q", out)
	}
}

func TestParseErrorsDoNotAbort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	var diagnostics []error
	report := func(err error) { diagnostics = append(diagnostics, err) }
	_, out, err := run(t, `var = 1; print("ok"); 1 +; print("still");`, WithDiagnostics(report))
	if err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if out != "ok\nstill\n" {
		t.Errorf("expected both prints to be executed, output is %q", out)
	}
	if len(diagnostics) != 2 {
		t.Errorf("expected 2 parse errors to be reported, have %d", len(diagnostics))
	}
	_, _, err = run(t, `var = 1;`, WithDiagnostics(report))
	var errs parser.ErrorList
	if !errors.As(err, &errs) {
		t.Errorf("expected parse errors if nothing could be parsed, have %v", err)
	}
}

func TestLexerErrorAborts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	_, out, err := run(t, `print("a"); @`)
	var lexerr *lexer.Error
	if !errors.As(err, &lexerr) {
		t.Errorf("expected lexer error, have %v", err)
	}
	if out != "" {
		t.Errorf("nothing should have been executed, output is %q", out)
	}
}

func TestGlobalsPersist(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.interpreter")
	defer teardown()
	//
	intp := New()
	if _, err := intp.Run(`var x = 1;`); err != nil {
		t.Fatal(err)
	}
	v, err := intp.Run(`x + 1;`)
	if err != nil || !runtime.Equal(v, runtime.Number(2)) {
		t.Errorf("expected x + 1 = 2, have %v, error %v", v, err)
	}
	if intp.Globals().ResolveTag("x") == nil || intp.Globals().ResolveTag("print") == nil {
		t.Error("expected x and print to be global")
	}
}
