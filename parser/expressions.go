package parser

import (
	"github.com/npillmayer/rotten"
	"github.com/npillmayer/rotten/ast"
	"github.com/npillmayer/rotten/lexer"
)

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expression, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.Equal) {
		return expr, nil
	}
	equals, err := p.previous()
	if err != nil {
		return nil, err
	}
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	switch target := expr.(type) {
	case *ast.Variable:
		return &ast.Assign{Name: target.Name, Value: value}, nil
	case *ast.Get:
		return &ast.Set{Object: target.Object, Name: target.Name, Value: value}, nil
	}
	return nil, &Error{Kind: InvalidAssignment, Token: equals}
}

func (p *Parser) or() (ast.Expression, error) {
	return p.logical(p.and, lexer.Or)
}

func (p *Parser) and() (ast.Expression, error) {
	return p.logical(p.equality, lexer.And)
}

func (p *Parser) equality() (ast.Expression, error) {
	return p.binary(p.comparison, lexer.BangEqual, lexer.EqualEqual)
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.binary(p.term, lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual)
}

func (p *Parser) term() (ast.Expression, error) {
	return p.binary(p.factor, lexer.Minus, lexer.Plus)
}

func (p *Parser) factor() (ast.Expression, error) {
	return p.binary(p.unary, lexer.Slash, lexer.Star)
}

// binary parses a left-associative chain of binary operations.
func (p *Parser) binary(operand func() (ast.Expression, error), ops ...rotten.TokType) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		operator, err := p.previous()
		if err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// logical is like binary, but produces short-circuit nodes.
func (p *Parser) logical(operand func() (ast.Expression, error), op rotten.TokType) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(op) {
		operator, err := p.previous()
		if err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	if p.match(lexer.Bang, lexer.Minus) {
		operator, err := p.previous()
		if err != nil {
			return nil, err
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expression, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		if p.match(lexer.LeftParen) {
			if expr, err = p.finishCall(expr); err != nil {
				return nil, err
			}
		} else if p.match(lexer.Dot) {
			name, err := p.consume(lexer.Identifier)
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		} else {
			break
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expression) (ast.Expression, error) {
	var args []ast.Expression
	if !p.check(lexer.RightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	paren, err := p.consume(lexer.RightParen)
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}, nil
}

func (p *Parser) primary() (ast.Expression, error) {
	switch {
	case p.match(lexer.False):
		return &ast.Literal{Value: false}, nil
	case p.match(lexer.True):
		return &ast.Literal{Value: true}, nil
	case p.match(lexer.Nil):
		return &ast.Literal{Value: nil}, nil
	case p.match(lexer.Number, lexer.String):
		token, err := p.previous()
		if err != nil {
			return nil, err
		}
		if token.Value() == nil {
			return nil, &Error{Kind: LiteralTokenWithoutValue, Token: token}
		}
		return &ast.Literal{Value: token.Value()}, nil
	case p.match(lexer.Super):
		keyword, err := p.previous()
		if err != nil {
			return nil, err
		}
		if _, err = p.consume(lexer.Dot); err != nil {
			return nil, err
		}
		method, err := p.consume(lexer.Identifier)
		if err != nil {
			return nil, err
		}
		return &ast.Super{Keyword: keyword, Method: method}, nil
	case p.match(lexer.This):
		keyword, err := p.previous()
		if err != nil {
			return nil, err
		}
		return &ast.This{Keyword: keyword}, nil
	case p.match(lexer.Identifier):
		name, err := p.previous()
		if err != nil {
			return nil, err
		}
		return &ast.Variable{Name: name}, nil
	case p.match(lexer.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err = p.consume(lexer.RightParen); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	}
	token, err := p.peek()
	if err != nil {
		return nil, err
	}
	return nil, &Error{Kind: UnexpectedTokenType, Token: token}
}
