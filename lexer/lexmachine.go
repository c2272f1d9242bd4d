package lexer

import (
	"strconv"
	"strings"

	"github.com/npillmayer/rotten"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() rotten.Token
	SetErrorHandler(func(error))
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('{', ';', …) and a map for translating literals to their token kinds.
// Keywords are not handled here, but by the action for identifiers.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]rotten.TokType) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), makeToken(tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, input: input, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   string
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Unconsumed input is reported
// to the error handler and skipped.
func (lms *LMScanner) NextToken() rotten.Token {
	before := lms.scanner.TC
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			offset := before
			if ui.FailTC > before {
				offset = ui.FailTC - 1
				lms.scanner.TC = ui.FailTC
			} else {
				lms.scanner.TC = before + 1
			}
			lms.Error(lms.unexpected(offset))
		} else {
			lms.Error(err)
		}
		before = lms.scanner.TC
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return MakeToken(EOF, "", positionAt(lms.input, len(lms.input)))
	}
	token := tok.(*lexmachine.Token)
	t := MakeLiteral(
		rotten.TokType(token.Type),
		string(token.Lexeme),
		token.Value,
		rotten.Pos(token.StartLine, token.StartColumn),
	)
	tracer().Debugf("token %v", t)
	return t
}

func (lms *LMScanner) unexpected(offset int) *Error {
	if offset >= len(lms.input) {
		offset = len(lms.input) - 1
	}
	if offset < 0 {
		offset = 0
	}
	lexeme := ""
	if offset < len(lms.input) {
		lexeme = lms.input[offset : offset+1]
	}
	return &Error{
		Message: "unexpected character",
		Lexeme:  lexeme,
		Pos:     positionAt(lms.input, offset),
	}
}

// positionAt calculates row and column of a byte offset into input.
func positionAt(input string, offset int) rotten.Position {
	if offset > len(input) {
		offset = len(input)
	}
	prefix := input[:offset]
	row := strings.Count(prefix, "\n") + 1
	col := offset - strings.LastIndex(prefix, "\n")
	return rotten.Pos(row, col)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a pre-defined action which wraps a scanned match into a token.
func makeToken(kind rotten.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), nil, m), nil
	}
}

// identifier is an action which separates keywords from identifiers.
func identifier(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	if kw, ok := keywords[string(m.Bytes)]; ok {
		return s.Token(int(kw), nil, m), nil
	}
	return s.Token(int(Identifier), nil, m), nil
}

// number is an action which attaches the numeric value to a number token.
func number(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	f, err := strconv.ParseFloat(string(m.Bytes), 64)
	if err != nil {
		return nil, err
	}
	return s.Token(int(Number), f, m), nil
}

// str is an action which attaches the unquoted content to a string token.
func str(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	return s.Token(int(String), lexeme[1:len(lexeme)-1], m), nil
}
