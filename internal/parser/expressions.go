package parser

import (
	"strconv"

	"github.com/rx-lang/rx/internal/ast"
	"github.com/rx-lang/rx/internal/token"
)

// parseExpression is the entry point of the precedence ladder:
// comparison (lowest) -> additive -> multiplicative -> postfix -> primary.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseComparison()
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAdditive()
	for isComparisonOp(p.cur().Kind) {
		op := p.advance()
		right := p.parseAdditive()
		left = &ast.Binary{Token: op, Left: left, Op: op.Kind, Right: right}
	}
	return left
}

func isComparisonOp(k token.Kind) bool {
	switch k {
	case token.EQ, token.NOT_EQ, token.LT, token.GT, token.LT_EQ, token.GT_EQ:
		return true
	}
	return false
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.curIs(token.PLUS) || p.curIs(token.MINUS) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = &ast.Binary{Token: op, Left: left, Op: op.Kind, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parsePostfix()
	for p.curIs(token.STAR) || p.curIs(token.SLASH) || p.curIs(token.PERCENT) {
		op := p.advance()
		right := p.parsePostfix()
		left = &ast.Binary{Token: op, Left: left, Op: op.Kind, Right: right}
	}
	return left
}

// parsePostfix handles a single chained level of member access, index
// access, and calls (and method calls) atop a primary expression. A
// plain call `(args...)` is only legal when the primary it applies to
// is an Identifier, per the grammar.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()

	for {
		switch p.cur().Kind {
		case token.DOT:
			tok := p.advance()
			nameTok, _ := p.expect(token.IDENT)
			if p.curIs(token.LPAREN) {
				args := p.parseArgList()
				expr = &ast.MethodCall{Token: tok, Receiver: expr, Method: nameTok.Literal, Arguments: args}
			} else {
				expr = &ast.Member{Token: tok, Object: expr, Property: nameTok.Literal}
			}
		case token.LBRACKET:
			tok := p.advance()
			idx := p.parseExpression()
			p.expect(token.RBRACKET)
			expr = &ast.Index{Token: tok, Object: expr, Index: idx}
		case token.LPAREN:
			if ident, ok := expr.(*ast.Identifier); ok {
				args := p.parseArgList()
				expr = &ast.Call{Token: ident.Token, Function: ident.Name, Arguments: args}
				continue
			}
			return expr
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgList() []ast.Expression {
	p.expect(token.LPAREN)
	var args []ast.Expression
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		args = append(args, p.parseExpression())
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RPAREN)
	return args
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur()
	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		val, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errorf(tok.Pos, "invalid numeric literal "+tok.Literal, "NUMBER", tok.Literal)
		}
		return &ast.Number{Token: tok, Value: val}
	case token.STRING:
		p.advance()
		if p.curIs(token.INTERP_LT) {
			return p.parseInterpolation(tok)
		}
		return &ast.String{Token: tok, Value: tok.Literal}
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral()
	case token.EF:
		return p.parseFunctionLiteral()
	case token.TYPEOF:
		return p.parseTypeof()
	case token.EC:
		// ec(...) inside an expression is the value-returning call form;
		// a statement starting with ec is parsed as a SystemCall.
		p.advance()
		return &ast.Call{Token: tok, Function: tok.Literal, Arguments: p.parseArgList()}
	case token.IDENT:
		if tok.Literal == "c" && p.peekAt(1).Kind == token.AT {
			return p.parseColorString()
		}
		p.advance()
		return &ast.Identifier{Token: tok, Name: tok.Literal}
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RPAREN)
		return expr
	default:
		p.errorf(tok.Pos, "unexpected token", "expression", tok.Kind.String())
		p.advance()
		return &ast.Number{Token: tok, Value: 0}
	}
}

func (p *Parser) parseColorString() ast.Expression {
	tok := p.advance() // 'c'
	p.expect(token.AT)
	colorTok, _ := p.expect(token.IDENT)
	strTok, _ := p.expect(token.STRING)
	return &ast.ColorString{Token: tok, Color: colorTok.Literal, Text: strTok.Literal}
}

func (p *Parser) parseTypeof() ast.Expression {
	tok := p.advance() // 'typeof'
	p.expect(token.LPAREN)
	expr := p.parseExpression()
	p.expect(token.RPAREN)
	return &ast.Typeof{Token: tok, Expression: expr}
}

// parseInterpolation is entered once parsePrimary has already consumed
// the leading STRING token and found `<<` immediately following it.
// It alternates evaluated segments and string literals until no more
// `<< expr >>` pairs follow.
func (p *Parser) parseInterpolation(first token.Token) ast.Expression {
	parts := []ast.Expression{&ast.String{Token: first, Value: first.Literal}}
	for p.curIs(token.INTERP_LT) {
		p.advance() // '<<'
		parts = append(parts, p.parseExpression())
		p.expect(token.INTERP_GT)
		if p.curIs(token.STRING) {
			strTok := p.advance()
			parts = append(parts, &ast.String{Token: strTok, Value: strTok.Literal})
		}
	}
	return &ast.Interpolation{Token: first, Parts: parts}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.advance() // '['
	p.skipNewlines()
	var elems []ast.Expression
	for !p.curIs(token.RBRACKET) && !p.curIs(token.EOF) {
		elems = append(elems, p.parseExpression())
		p.skipNewlines()
		if p.curIs(token.COMMA) {
			p.advance()
			p.skipNewlines()
		}
	}
	p.expect(token.RBRACKET)
	return &ast.Array{Token: tok, Elements: elems}
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.advance() // '{'
	p.skipNewlines()
	var props []ast.ObjectProperty
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		nameTok, _ := p.expect(token.IDENT)
		p.expect(token.COLON)
		var value ast.Expression
		if p.curIs(token.EF) {
			value = p.parseFunctionLiteral()
		} else {
			value = p.parseExpression()
		}
		props = append(props, ast.ObjectProperty{Name: nameTok.Literal, Value: value})
		p.skipNewlines()
		if p.curIs(token.COMMA) {
			p.advance()
			p.skipNewlines()
		}
	}
	p.expect(token.RBRACE)
	return &ast.Object{Token: tok, Properties: props}
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	tok := p.advance() // 'ef'
	params := p.parseParamList()
	body := p.parseBlock()
	return &ast.Function{Token: tok, Parameters: params, Body: body}
}
