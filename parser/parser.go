package parser

import (
	"github.com/npillmayer/rotten"
	"github.com/npillmayer/rotten/ast"
	"github.com/npillmayer/rotten/lexer"
)

// Parser is a recursive-descent parser. Create one with NewParser.
type Parser struct {
	tokens  []rotten.Token
	current int
}

// NewParser creates a parser for a token sequence, which should be terminated
// by an EOF token.
func NewParser(tokens []rotten.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse is a shortcut for NewParser(tokens).Parse().
func Parse(tokens []rotten.Token) ([]ast.Statement, error) {
	return NewParser(tokens).Parse()
}

// Parse parses the complete token sequence. It returns all top-level statements
// which have been parsed successfully. If errors occured, an ErrorList is returned
// as well.
func (p *Parser) Parse() ([]ast.Statement, error) {
	var statements []ast.Statement
	var errs ErrorList
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			tracer().Errorf("%v", err)
			errs = append(errs, asError(err))
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	tracer().Debugf("parsed %d statements, %d errors", len(statements), len(errs))
	if len(errs) > 0 {
		return statements, errs
	}
	return statements, nil
}

func asError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: GetTokenError}
}

// --- Token handling --------------------------------------------------------

func (p *Parser) match(kinds ...rotten.TokType) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind rotten.TokType) bool {
	if p.isAtEnd() {
		return false
	}
	token, err := p.peek()
	return err == nil && token.TokType() == kind
}

func (p *Parser) isAtEnd() bool {
	token, err := p.peek()
	return err != nil || token.TokType() == lexer.EOF
}

func (p *Parser) peek() (rotten.Token, error) {
	if p.current >= len(p.tokens) {
		return nil, &Error{Kind: GetTokenError}
	}
	return p.tokens[p.current], nil
}

func (p *Parser) advance() (rotten.Token, error) {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) previous() (rotten.Token, error) {
	if p.current == 0 || p.current > len(p.tokens) {
		return nil, &Error{Kind: GetTokenError}
	}
	return p.tokens[p.current-1], nil
}

// consume returns the next token if it is of the expected kind. Otherwise
// an ExpectToken error with the offending token is returned.
func (p *Parser) consume(kind rotten.TokType) (rotten.Token, error) {
	if p.check(kind) {
		return p.advance()
	}
	token, err := p.peek()
	if err != nil {
		return nil, err
	}
	return nil, &Error{Kind: ExpectToken, Token: token, Expected: kind}
}

// synchronize discards tokens until a statement boundary is reached.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if prev, err := p.previous(); err == nil && prev.TokType() == lexer.Semicolon {
			return
		}
		if token, err := p.peek(); err == nil {
			switch token.TokType() {
			case lexer.Class, lexer.Fun, lexer.Var, lexer.For, lexer.If, lexer.While, lexer.Return:
				return
			}
		}
		p.advance()
	}
}

// --- Declarations ----------------------------------------------------------

func (p *Parser) declaration() (ast.Statement, error) {
	switch {
	case p.match(lexer.Class):
		return p.classDeclaration()
	case p.match(lexer.Fun):
		return p.function()
	case p.match(lexer.Var):
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) classDeclaration() (ast.Statement, error) {
	name, err := p.consume(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	class := &ast.Class{Name: name}
	if p.match(lexer.Less) {
		supername, err := p.consume(lexer.Identifier)
		if err != nil {
			return nil, err
		}
		class.Superclass = &ast.Variable{Name: supername}
	}
	if _, err := p.consume(lexer.LeftBrace); err != nil {
		return nil, err
	}
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		method, err := p.function()
		if err != nil {
			return nil, err
		}
		class.Methods = append(class.Methods, method)
	}
	if _, err := p.consume(lexer.RightBrace); err != nil {
		return nil, err
	}
	return class, nil
}

// function parses functions as well as methods; the leading 'fun' keyword,
// if any, has already been consumed.
func (p *Parser) function() (*ast.Function, error) {
	name, err := p.consume(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(lexer.LeftParen); err != nil {
		return nil, err
	}
	var params []rotten.Token
	if !p.check(lexer.RightParen) {
		for {
			param, err := p.consume(lexer.Identifier)
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	if _, err = p.consume(lexer.RightParen); err != nil {
		return nil, err
	}
	if _, err = p.consume(lexer.LeftBrace); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Name: name, Params: params, Body: &ast.Block{Statements: body}}, nil
}

func (p *Parser) varDeclaration() (ast.Statement, error) {
	name, err := p.consume(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	decl := &ast.Var{Name: name}
	if p.match(lexer.Equal) {
		if decl.Initializer, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.consume(lexer.Semicolon); err != nil {
		return nil, err
	}
	return decl, nil
}

// --- Statements ------------------------------------------------------------

func (p *Parser) statement() (ast.Statement, error) {
	switch {
	case p.match(lexer.For):
		return p.forStatement()
	case p.match(lexer.If):
		return p.ifStatement()
	case p.match(lexer.Return):
		return p.returnStatement()
	case p.match(lexer.While):
		return p.whileStatement()
	case p.match(lexer.LeftBrace):
		statements, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Statements: statements}, nil
	}
	return p.expressionStatement()
}

// forStatement desugars
//
//    for (init; cond; incr) body
//
// into
//
//    { init; while (cond) { body; incr; } }
//
// A missing condition is replaced by 'true'.
func (p *Parser) forStatement() (ast.Statement, error) {
	if _, err := p.consume(lexer.LeftParen); err != nil {
		return nil, err
	}
	var initializer ast.Statement
	var err error
	switch {
	case p.match(lexer.Semicolon):
	case p.match(lexer.Var):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}
	var cond ast.Expression
	if !p.check(lexer.Semicolon) {
		if cond, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.consume(lexer.Semicolon); err != nil {
		return nil, err
	}
	var incr ast.Expression
	if !p.check(lexer.RightParen) {
		if incr, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.consume(lexer.RightParen); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	loopBody := &ast.Block{Statements: []ast.Statement{body}}
	if incr != nil {
		loopBody.Statements = append(loopBody.Statements, &ast.ExprStmt{Expression: incr})
	}
	if cond == nil {
		cond = &ast.Literal{Value: true}
	}
	loop := &ast.Block{}
	if initializer != nil {
		loop.Statements = append(loop.Statements, initializer)
	}
	loop.Statements = append(loop.Statements, &ast.While{Condition: cond, Body: loopBody})
	return loop, nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	cond, err := p.parenthesized()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Condition: cond}
	if stmt.Then, err = p.statement(); err != nil {
		return nil, err
	}
	if p.match(lexer.Else) {
		if stmt.Else, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) returnStatement() (ast.Statement, error) {
	keyword, err := p.previous()
	if err != nil {
		return nil, err
	}
	stmt := &ast.Return{Keyword: keyword}
	if !p.check(lexer.Semicolon) {
		if stmt.Value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.consume(lexer.Semicolon); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) whileStatement() (ast.Statement, error) {
	cond, err := p.parenthesized()
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Body: body}, nil
}

// block parses declarations up to the closing brace. The opening brace has
// already been consumed.
func (p *Parser) block() ([]ast.Statement, error) {
	var statements []ast.Statement
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(lexer.RightBrace); err != nil {
		return nil, err
	}
	return statements, nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(lexer.Semicolon); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expression: expr}, nil
}

func (p *Parser) parenthesized() (ast.Expression, error) {
	if _, err := p.consume(lexer.LeftParen); err != nil {
		return nil, err
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.consume(lexer.RightParen); err != nil {
		return nil, err
	}
	return expr, nil
}
