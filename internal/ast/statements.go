package ast

import "github.com/rx-lang/rx/internal/token"

// ExprStmt is an expression evaluated for its side effects; the value
// is discarded.
type ExprStmt struct {
	Token      token.Token
	Expression Expression
}

func (e *ExprStmt) Pos() token.Position { return e.Token.Pos }
func (*ExprStmt) statementNode()        {}

// Assign is a bare `name = value`. The evaluator treats it identically
// to NewVariable: both create-or-overwrite the binding (see SPEC_FULL.md
// Open Question 1).
type Assign struct {
	Token token.Token
	Name  string
	Value Expression
}

func (a *Assign) Pos() token.Position { return a.Token.Pos }
func (*Assign) statementNode()        {}

// NewVariable is `new name = value`.
type NewVariable struct {
	Token token.Token
	Name  string
	Value Expression
}

func (n *NewVariable) Pos() token.Position { return n.Token.Pos }
func (*NewVariable) statementNode()        {}

// If is `if (cond) { ... } diff ...`. ElseIf holds a chained `diff if`;
// Else holds the statements of a plain `diff { ... }` block. Both are
// empty when there is no `diff`.
type If struct {
	Token     token.Token
	Condition Expression
	Then      []Statement
	ElseIf    *If // chained `diff if`
	Else      []Statement
}

func (i *If) Pos() token.Position { return i.Token.Pos }
func (*If) statementNode()        {}

// While is `while (cond) { ... }`.
type While struct {
	Token     token.Token
	Condition Expression
	Body      []Statement
}

func (w *While) Pos() token.Position { return w.Token.Pos }
func (*While) statementNode()        {}

// FunctionDecl is a named function declaration: `ef name(params) { ... }`.
type FunctionDecl struct {
	Token      token.Token
	Name       string
	Parameters []string
	Body       []Statement
}

func (f *FunctionDecl) Pos() token.Position { return f.Token.Pos }
func (*FunctionDecl) statementNode()        {}

// Return is `ret [value]`. Value is nil when omitted (defaults to
// Number(0) at evaluation time).
type Return struct {
	Token token.Token
	Value Expression
}

func (r *Return) Pos() token.Position { return r.Token.Pos }
func (*Return) statementNode()        {}

// SystemCall is `ec(cmd)` used as a statement: spawn a shell, discard
// the value, log a line if the exit status is non-zero.
type SystemCall struct {
	Token   token.Token
	Command Expression
}

func (s *SystemCall) Pos() token.Position { return s.Token.Pos }
func (*SystemCall) statementNode()        {}

// Import is `^libraryName`.
type Import struct {
	Token   token.Token
	Library string
}

func (i *Import) Pos() token.Position { return i.Token.Pos }
func (*Import) statementNode()        {}

// Save is `Save slotName`.
type Save struct {
	Token token.Token
	Slot  string
}

func (s *Save) Pos() token.Position { return s.Token.Pos }
func (*Save) statementNode()        {}

// Message is `Message slotName = value`.
type Message struct {
	Token token.Token
	Slot  string
	Value Expression
}

func (m *Message) Pos() token.Position { return m.Token.Pos }
func (*Message) statementNode()        {}
