package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/rotten/interpreter"
	"github.com/npillmayer/rotten/lexer"
	"github.com/npillmayer/rotten/parser"
	"github.com/npillmayer/rotten/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.repl")
	defer teardown()
	//
	opts, args, err := parseOptions([]string{"rot", "-t", "Debug", "-d", "10", "script.rot"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.trace != "Debug" || opts.depth != 10 || opts.help {
		t.Errorf("unexpected options %+v", opts)
	}
	if len(args) != 1 || args[0] != "script.rot" {
		t.Errorf("expected script argument, have %v", args)
	}
	opts, args, err = parseOptions([]string{"rot"})
	if err != nil || opts.depth != -1 || len(args) != 0 {
		t.Errorf("expected no options, have %+v, %v, %v", opts, args, err)
	}
	if _, _, err = parseOptions([]string{"rot", "-d", "x"}); err == nil {
		t.Error("expected invalid depth to be rejected")
	}
}

func TestConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.repl")
	defer teardown()
	//
	path := writeFile(t, "rot.yaml", "trace: Info\nmax-call-depth: 12\ncolor: false\n")
	cfg := defaultConfig()
	if err := loadConfig(path, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Trace != "Info" || cfg.MaxCallDepth != 12 || cfg.Color {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Prompt != "rot> " {
		t.Errorf("expected default prompt to survive, is %q", cfg.Prompt)
	}
	options{trace: "Debug", depth: 0}.apply(&cfg)
	if cfg.Trace != "Debug" || cfg.MaxCallDepth != 0 {
		t.Errorf("expected options to override config, is %+v", cfg)
	}
	path = writeFile(t, "bad.yaml", "colour: true\n")
	if err := loadConfig(path, &cfg); err == nil {
		t.Error("expected unknown key to be rejected")
	}
	path = writeFile(t, "empty.yaml", "")
	if err := loadConfig(path, &cfg); err != nil {
		t.Errorf("expected empty config to be accepted, have %v", err)
	}
}

func TestRunScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.repl")
	defer teardown()
	//
	inputs := []struct {
		source string
		code   int
		out    string
	}{
		{`print("hello");`, exitOK, "hello\n"},
		{`print(1); 1 / 0; print(2);`, exitSoftware, "1\n"},
		{`print(1); var = 2; print(3);`, exitDataErr, "1\n3\n"},
		{`print(1); @`, exitDataErr, ""},
	}
	for _, in := range inputs {
		var stdout, stderr bytes.Buffer
		path := writeFile(t, "script.rot", in.source)
		code := rot([]string{"rot", "-c", writeFile(t, "rot.yaml", "color: false\n"), path}, &stdout, &stderr)
		if code != in.code {
			t.Errorf("expected exit code %d for %q, is %d", in.code, in.source, code)
		}
		if stdout.String() != in.out {
			t.Errorf("expected output %q for %q, is %q", in.out, in.source, stdout.String())
		}
		if code != exitOK && !strings.Contains(stderr.String(), "Error") {
			t.Errorf("expected an error message for %q, have %q", in.source, stderr.String())
		}
	}
	var stdout, stderr bytes.Buffer
	if code := rot([]string{"rot", "does-not-exist.rot"}, &stdout, &stderr); code != exitNoInput {
		t.Errorf("expected missing script to exit with %d, is %d", exitNoInput, code)
	}
	if code := rot([]string{"rot", "-h"}, &stdout, &stderr); code != exitOK || !strings.HasPrefix(stdout.String(), "Usage") {
		t.Errorf("expected usage, have %q", stdout.String())
	}
}

func TestASTLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.repl")
	defer teardown()
	//
	tokens, err := lexer.Tokenize("var x = 1 + 2; print(x);")
	if err != nil {
		t.Fatal(err)
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	ll := astLeveledList(stmts)
	expected := []struct {
		level int
		text  string
	}{
		{0, "var x"}, {1, "+"}, {2, "1"}, {2, "2"},
		{0, "expr"}, {1, "call"}, {2, "print"}, {2, "x"},
	}
	if len(ll) != len(expected) {
		t.Fatalf("expected %d items, have %d: %v", len(expected), len(ll), ll)
	}
	for i, item := range ll {
		if item.Level != expected[i].level || item.Text != expected[i].text {
			t.Errorf("expected item #%d to be %v, is %v", i, expected[i], item)
		}
	}
}

func TestEnvLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.repl")
	defer teardown()
	//
	intp := interpreter.New()
	if _, err := intp.Run(`var a = 1; class C { m() {} n() {} }`); err != nil {
		t.Fatal(err)
	}
	ll := envLeveledList(intp.Globals())
	texts := make([]string, len(ll))
	for i, item := range ll {
		texts[i] = item.Text
	}
	if s := strings.Join(texts, ","); s != "C = C,m(),n(),a = 1,print = native function" {
		t.Errorf("unexpected environment listing %s", s)
	}
}

func TestSessionCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.repl")
	defer teardown()
	//
	s := &Session{intp: interpreter.New(interpreter.WithOutput(&bytes.Buffer{}))}
	if s.Eval("var x = 1;") || s.Eval(":env") || s.Eval(":ast 1 + 2;") || s.Eval(":nope") {
		t.Error("only :quit should end a session")
	}
	if !s.Eval(":quit") {
		t.Error("expected :quit to end the session")
	}
	if v, _ := s.intp.Globals().ResolveTag("x").Value.(runtime.Number); v != 1 {
		t.Errorf("expected x to be defined in the session, is %v", v)
	}
}
