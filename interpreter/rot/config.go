package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/npillmayer/rotten/interpreter"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a rot session.
type Config struct {
	Trace        string `yaml:"trace"`
	MaxCallDepth int    `yaml:"max-call-depth"`
	Prompt       string `yaml:"prompt"`
	Color        bool   `yaml:"color"`
}

func defaultConfig() Config {
	return Config{
		Trace:        "Error",
		MaxCallDepth: interpreter.DefaultMaxCallDepth,
		Prompt:       "rot> ",
		Color:        true,
	}
}

// loadConfig reads a YAML configuration file. Keys not present in the file
// leave the corresponding settings of cfg untouched.
func loadConfig(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.MaxCallDepth < 0 {
		return fmt.Errorf("config: max-call-depth must not be negative")
	}
	return nil
}

// options are the command-line options. Unset options are zero, except
// depth, which is -1 if unset.
type options struct {
	help       bool
	configFile string
	trace      string
	depth      int
}

// parseOptions parses the command line; argv[0] is the program name.
// It returns the options and the remaining arguments.
func parseOptions(argv []string) (options, []string, error) {
	opts := options{depth: -1}
	parsed, optind, err := getopt.Getopts(argv, "hc:t:d:")
	if err != nil {
		return opts, nil, err
	}
	for _, opt := range parsed {
		switch opt.Option {
		case 'h':
			opts.help = true
		case 'c':
			opts.configFile = opt.Value
		case 't':
			opts.trace = opt.Value
		case 'd':
			depth, err := strconv.Atoi(opt.Value)
			if err != nil || depth < 0 {
				return opts, nil, fmt.Errorf("invalid -d parameter: %s", opt.Value)
			}
			opts.depth = depth
		}
	}
	return opts, argv[optind:], nil
}

// apply overrides configuration settings with command-line options.
func (opts options) apply(cfg *Config) {
	if opts.trace != "" {
		cfg.Trace = opts.trace
	}
	if opts.depth >= 0 {
		cfg.MaxCallDepth = opts.depth
	}
}

var traceKeys = []string{
	"rotten.lexer",
	"rotten.parser",
	"rotten.runtime",
	"rotten.interpreter",
	"rotten.repl",
}

func setTraceLevel(level string) {
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}
