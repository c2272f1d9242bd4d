package lexer

import (
	"fmt"
	"sync"

	"github.com/npillmayer/rotten"
	"github.com/timtadh/lexmachine"
)

// Error is a lexer error, reporting unexpected input.
type Error struct {
	Message string
	Lexeme  string
	Pos     rotten.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] Error: %s\n%s", e.Pos.Row, e.Pos.Column, e.Message, e.Lexeme)
}

var adapter *LMAdapter
var adapterErr error
var initOnce sync.Once // monitors one-time creation of the DFA

// Lexer returns the lexmachine adapter for the language. The DFA is compiled once.
func Lexer() (*LMAdapter, error) {
	initOnce.Do(func() {
		tracer().Infof("Creating lexer")
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`//[^\n]*`), Skip)
			lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), Skip)
			lexer.Add([]byte(`"([^"]|\r|\n)*"`), str)
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), identifier)
			lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), number)
			lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
		}
		adapter, adapterErr = NewLMAdapter(init, literals, tokenIds)
	})
	return adapter, adapterErr
}

// Tokenize scans a complete source text. The resulting token slice is always
// terminated by an EOF token. If unexpected input has been found, all offending
// positions are traced and the first error is returned together with the tokens
// scanned.
func Tokenize(source string) ([]rotten.Token, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(source)
	if err != nil {
		return nil, err
	}
	var first error
	scan.SetErrorHandler(func(e error) {
		logError(e)
		if first == nil {
			first = e
		}
	})
	var tokens []rotten.Token
	for {
		token := scan.NextToken()
		tokens = append(tokens, token)
		if token.TokType() == EOF {
			break
		}
	}
	tracer().Debugf("scanned %d tokens", len(tokens))
	return tokens, first
}
