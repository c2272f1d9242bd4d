package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/rotten/ast"
	"github.com/npillmayer/rotten/interpreter"
	"github.com/npillmayer/rotten/lexer"
	"github.com/npillmayer/rotten/parser"
	"github.com/npillmayer/rotten/runtime"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Session is an interactive session with an interpreter.
type Session struct {
	intp *interpreter.Interpreter
	repl *readline.Instance
}

func runREPL(cfg Config) int {
	initDisplay()
	repl, err := readline.New(cfg.Prompt)
	if err != nil {
		tracer().Errorf("%v", err)
		return exitSoftware
	}
	defer repl.Close()
	s := &Session{
		intp: interpreter.New(
			interpreter.WithMaxCallDepth(cfg.MaxCallDepth),
			interpreter.WithDiagnostics(func(err error) {
				pterm.Error.Println(err.Error())
			}),
		),
		repl: repl,
	}
	pterm.Info.Println("Welcome to rot")
	tracer().Infof("Quit with <ctrl>D")
	s.REPL()
	return exitOK
}

// REPL reads and executes lines until end of input or :quit.
func (s *Session) REPL() {
	for {
		line, err := s.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := s.Eval(line); quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval executes a command or a line of source code. It returns true if the
// session should end.
func (s *Session) Eval(line string) bool {
	switch {
	case line == ":quit":
		return true
	case line == ":env":
		s.showEnv()
	case strings.HasPrefix(line, ":ast"):
		s.showAST(strings.TrimSpace(strings.TrimPrefix(line, ":ast")))
	case strings.HasPrefix(line, ":"):
		pterm.Error.Println("Unknown command " + line)
	default:
		v, err := s.intp.Run(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			return false
		}
		if v != nil {
			pterm.Info.Println(v.String())
		}
	}
	return false
}

func (s *Session) showAST(source string) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	if len(stmts) == 0 {
		return
	}
	root := pterm.NewTreeFromLeveledList(astLeveledList(stmts))
	pterm.DefaultTree.WithRoot(root).Render()
}

func (s *Session) showEnv() {
	root := pterm.NewTreeFromLeveledList(envLeveledList(s.intp.Globals()))
	pterm.DefaultTree.WithRoot(root).Render()
}

// astLeveledList flattens syntax trees for display as a pterm tree.
func astLeveledList(stmts []ast.Statement) pterm.LeveledList {
	var ll pterm.LeveledList
	for _, stmt := range stmts {
		ll = leveledNode(stmt, ll, 0)
	}
	return ll
}

func leveledNode(node interface{}, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  ast.Label(node),
	})
	for _, ch := range ast.Children(node) {
		ll = leveledNode(ch, ll, level+1)
	}
	return ll
}

// envLeveledList lists the bindings of a symbol table, methods of classes
// nested below the class.
func envLeveledList(symtab *runtime.SymbolTable) pterm.LeveledList {
	var ll pterm.LeveledList
	symtab.Each(func(name string, tag *runtime.Tag) {
		ll = append(ll, pterm.LeveledListItem{
			Level: 0,
			Text:  name + " = " + tag.Value.String(),
		})
		if class, ok := tag.Value.(*runtime.Class); ok {
			for _, m := range class.MethodNames() {
				ll = append(ll, pterm.LeveledListItem{Level: 1, Text: m + "()"})
			}
		}
	})
	return ll
}
