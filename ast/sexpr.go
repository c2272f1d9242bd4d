package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders an expression or statement as an s-expression, e.g.
//
//    (+ 1 (* 2 3))
//
// Nil nodes render as "nil".
func String(node interface{}) string {
	var b strings.Builder
	write(&b, node)
	return b.String()
}

// Label returns a short description of a node, without its sub-trees.
func Label(node interface{}) string {
	switch n := node.(type) {
	case nil:
		return "nil"
	case *Assign:
		return "= " + n.Name.Lexeme()
	case *Binary:
		return n.Operator.Lexeme()
	case *Call:
		return "call"
	case *Get:
		return ". " + n.Name.Lexeme()
	case *Grouping:
		return "group"
	case *Literal:
		return literalString(n.Value)
	case *Logical:
		return n.Operator.Lexeme()
	case *Set:
		return "set " + n.Name.Lexeme()
	case *Super:
		return "super " + n.Method.Lexeme()
	case *This:
		return "this"
	case *Unary:
		return n.Operator.Lexeme()
	case *Variable:
		return n.Name.Lexeme()
	case *Block:
		return "block"
	case *Class:
		if n.Superclass != nil {
			return "class " + n.Name.Lexeme() + " < " + n.Superclass.Name.Lexeme()
		}
		return "class " + n.Name.Lexeme()
	case *ExprStmt:
		return "expr"
	case *Function:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Lexeme()
		}
		return fmt.Sprintf("fun %s (%s)", n.Name.Lexeme(), strings.Join(params, " "))
	case *If:
		return "if"
	case *Return:
		return "return"
	case *Var:
		return "var " + n.Name.Lexeme()
	case *While:
		return "while"
	}
	return fmt.Sprintf("<?%T>", node)
}

// Children returns the direct sub-trees of a node, in source order.
// Optional sub-trees which are absent are left out.
func Children(node interface{}) []interface{} {
	var ch []interface{}
	add := func(nodes ...interface{}) {
		for _, n := range nodes {
			if n != nil {
				ch = append(ch, n)
			}
		}
	}
	switch n := node.(type) {
	case *Assign:
		add(n.Value)
	case *Binary:
		add(n.Left, n.Right)
	case *Call:
		add(n.Callee)
		for _, a := range n.Arguments {
			add(a)
		}
	case *Get:
		add(n.Object)
	case *Grouping:
		add(n.Expression)
	case *Logical:
		add(n.Left, n.Right)
	case *Set:
		add(n.Object, n.Value)
	case *Unary:
		add(n.Right)
	case *Block:
		for _, s := range n.Statements {
			add(s)
		}
	case *Class:
		for _, m := range n.Methods {
			add(m)
		}
	case *ExprStmt:
		add(n.Expression)
	case *Function:
		add(n.Body)
	case *If:
		add(n.Condition, n.Then, n.Else)
	case *Return:
		add(n.Value)
	case *Var:
		add(n.Initializer)
	case *While:
		add(n.Condition, n.Body)
	}
	return ch
}

func write(b *strings.Builder, node interface{}) {
	ch := Children(node)
	switch node.(type) {
	case *Literal, *Variable, *This, *Super, nil:
		b.WriteString(Label(node))
		return
	}
	b.WriteByte('(')
	b.WriteString(Label(node))
	for _, c := range ch {
		b.WriteByte(' ')
		write(b, c)
	}
	b.WriteByte(')')
}

func literalString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return strconv.Quote(x)
	}
	return fmt.Sprintf("%v", v)
}
