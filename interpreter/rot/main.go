package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/rotten/interpreter"
)

// Exit codes, following sysexits.h.
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitNoInput  = 66
	exitSoftware = 70
)

const usage = `Usage: rot [-h] [-c config.yaml] [-t level] [-d depth] [script]

  -c file    read configuration from a YAML file
  -t level   trace level [Debug|Info|Error]
  -d depth   maximum call depth, 0 for no limit
  -h         print this help
`

func main() {
	os.Exit(rot(os.Args, os.Stdout, os.Stderr))
}

// rot runs the command and returns its exit code.
func rot(argv []string, stdout, stderr io.Writer) int {
	opts, args, err := parseOptions(argv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	if opts.help {
		fmt.Fprint(stdout, usage)
		return exitOK
	}
	cfg := defaultConfig()
	if opts.configFile != "" {
		if err := loadConfig(opts.configFile, &cfg); err != nil {
			fmt.Fprintln(stderr, err)
			return exitNoInput
		}
	}
	opts.apply(&cfg)
	setTraceLevel(cfg.Trace)
	if !cfg.Color {
		color.NoColor = true
	}
	tracer().Infof("trace level is %s", cfg.Trace)
	if len(args) > 0 {
		return runScript(args[0], cfg, stdout, stderr)
	}
	return runREPL(cfg)
}

// runScript runs a script file. Syntax errors are reported, but statements
// parsed successfully will be executed nonetheless. The first runtime error
// aborts the script.
func runScript(path string, cfg Config, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitNoInput
	}
	red := color.New(color.FgRed)
	syntaxErrors := 0
	intp := interpreter.New(
		interpreter.WithOutput(stdout),
		interpreter.WithMaxCallDepth(cfg.MaxCallDepth),
		interpreter.WithDiagnostics(func(err error) {
			syntaxErrors++
			red.Fprintln(stderr, err.Error())
		}),
	)
	_, err = intp.Run(string(source))
	var rterr *interpreter.Error
	switch {
	case errors.As(err, &rterr):
		red.Fprintln(stderr, rterr.Error())
		return exitSoftware
	case err != nil:
		if syntaxErrors == 0 { // lexer errors are not reported as diagnostics
			red.Fprintln(stderr, err.Error())
		}
		return exitDataErr
	case syntaxErrors > 0:
		return exitDataErr
	}
	return exitOK
}
