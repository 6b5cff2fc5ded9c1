// Package ast defines the abstract syntax tree nodes produced by the
// rx parser: a Program is a sequence of Statement nodes, and every
// Statement/Expression carries enough of its source Token to report
// errors against.
package ast

import "github.com/rx-lang/rx/internal/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() token.Position
}

// Expression is implemented by every expression node.
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node: a script is a sequence of statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) == 0 {
		return token.Position{}
	}
	return p.Statements[0].Pos()
}
