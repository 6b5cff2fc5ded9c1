package parser

import (
	"github.com/rx-lang/rx/internal/ast"
	"github.com/rx-lang/rx/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Kind {
	case token.EF:
		return p.parseFunctionDecl()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.RET:
		return p.parseReturn()
	case token.EC:
		return p.parseSystemCall()
	case token.CARET:
		return p.parseImport()
	case token.NEW:
		return p.parseNewVariable()
	case token.SAVE:
		return p.parseSave()
	case token.MESSAGE:
		return p.parseMessage()
	case token.IDENT:
		if p.peekAt(1).Kind == token.ASSIGN {
			return p.parseAssign()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlock() []ast.Statement {
	if _, ok := p.expect(token.LBRACE); !ok {
		p.syncToNewline()
		return nil
	}
	p.skipNewlines()
	var stmts []ast.Statement
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipNewlines()
	}
	p.expect(token.RBRACE)
	return stmts
}

func (p *Parser) parseFunctionDecl() ast.Statement {
	tok := p.advance() // 'ef'
	nameTok, _ := p.expect(token.IDENT)
	params := p.parseParamList()
	body := p.parseBlock()
	return &ast.FunctionDecl{Token: tok, Name: nameTok.Literal, Parameters: params, Body: body}
}

func (p *Parser) parseParamList() []string {
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil
	}
	var params []string
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		if t, ok := p.expect(token.IDENT); ok {
			params = append(params, t.Literal)
		}
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.advance() // 'if'
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	then := p.parseBlock()

	node := &ast.If{Token: tok, Condition: cond, Then: then}

	p.skipNewlines()
	if p.curIs(token.DIFF) {
		p.advance()
		if p.curIs(token.IF) {
			node.ElseIf = p.parseIf().(*ast.If)
		} else {
			node.Else = p.parseBlock()
		}
	}
	return node
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.advance() // 'while'
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	body := p.parseBlock()
	return &ast.While{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.advance() // 'ret'
	if p.curIs(token.NEWLINE) || p.curIs(token.SEMI) || p.curIs(token.RBRACE) || p.curIs(token.EOF) {
		return &ast.Return{Token: tok}
	}
	return &ast.Return{Token: tok, Value: p.parseExpression()}
}

func (p *Parser) parseSystemCall() ast.Statement {
	tok := p.advance() // 'ec'
	p.expect(token.LPAREN)
	cmd := p.parseExpression()
	p.expect(token.RPAREN)
	return &ast.SystemCall{Token: tok, Command: cmd}
}

func (p *Parser) parseImport() ast.Statement {
	tok := p.advance() // '^'
	nameTok, _ := p.expect(token.IDENT)
	return &ast.Import{Token: tok, Library: nameTok.Literal}
}

func (p *Parser) parseNewVariable() ast.Statement {
	tok := p.advance() // 'new'
	nameTok, _ := p.expect(token.IDENT)
	p.expect(token.ASSIGN)
	value := p.parseExpression()
	return &ast.NewVariable{Token: tok, Name: nameTok.Literal, Value: value}
}

func (p *Parser) parseAssign() ast.Statement {
	nameTok := p.advance() // IDENT
	tok := p.advance()     // '='
	value := p.parseExpression()
	return &ast.Assign{Token: tok, Name: nameTok.Literal, Value: value}
}

func (p *Parser) parseSave() ast.Statement {
	tok := p.advance() // 'Save'
	nameTok, _ := p.expect(token.IDENT)
	return &ast.Save{Token: tok, Slot: nameTok.Literal}
}

func (p *Parser) parseMessage() ast.Statement {
	tok := p.advance() // 'Message'
	nameTok, _ := p.expect(token.IDENT)
	p.expect(token.ASSIGN)
	value := p.parseExpression()
	return &ast.Message{Token: tok, Slot: nameTok.Literal, Value: value}
}

func (p *Parser) parseExprStmt() ast.Statement {
	tok := p.cur()
	expr := p.parseExpression()
	return &ast.ExprStmt{Token: tok, Expression: expr}
}
