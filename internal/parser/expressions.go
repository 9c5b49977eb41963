package parser

import (
	"github.com/kplang/kplc/internal/errors"
	"github.com/kplang/kplc/internal/symtab"
	"github.com/kplang/kplc/pkg/token"
)

// followAdditive is FOLLOW(Expression3): the tokens on which the
// additive tail ends. Term2 additionally ends on '+' and '-', and an
// absent argument list on '*' and '/' as well.
var followAdditive = map[token.TokenType]bool{
	token.TO:         true,
	token.DO:         true,
	token.RPAREN:     true,
	token.COMMA:      true,
	token.EQ:         true,
	token.NOT_EQ:     true,
	token.LESS_EQ:    true,
	token.LESS:       true,
	token.GREATER_EQ: true,
	token.GREATER:    true,
	token.RBRACK:     true,
	token.SEMICOLON:  true,
	token.END:        true,
	token.ELSE:       true,
	token.THEN:       true,
}

// parseExpression handles ['+'|'-'] Expression2.
func (p *Parser) parseExpression() {
	switch p.peek.Type {
	case token.PLUS:
		p.eat(token.PLUS)
	case token.MINUS:
		p.eat(token.MINUS)
	}
	p.parseExpression2()
}

// parseExpression2 handles Term Expression3.
func (p *Parser) parseExpression2() {
	p.parseTerm()
	p.parseExpression3()
}

// parseExpression3 handles the additive tail
//
//	Expression3 ::= ('+' Term Expression3) | ('-' Term Expression3) | ε
//
// accepting ε exactly when the lookahead is in FOLLOW(Expression3).
func (p *Parser) parseExpression3() {
	for {
		switch {
		case p.peek.Type == token.PLUS || p.peek.Type == token.MINUS:
			p.advance()
			p.parseTerm()
		case followAdditive[p.peek.Type]:
			return
		default:
			p.fail(errors.New(errors.InvalidExpression, p.peek.Pos, ""))
		}
	}
}

// parseTerm handles Factor Term2.
func (p *Parser) parseTerm() {
	p.parseFactor()
	p.parseTerm2()
}

// parseTerm2 handles the multiplicative tail
//
//	Term2 ::= ('*' Factor Term2) | ('/' Factor Term2) | ε
//
// whose FOLLOW set is FOLLOW(Expression3) plus '+' and '-'.
func (p *Parser) parseTerm2() {
	for {
		switch {
		case p.peek.Type == token.ASTERISK || p.peek.Type == token.SLASH:
			p.advance()
			p.parseFactor()
		case p.peek.Type == token.PLUS || p.peek.Type == token.MINUS || followAdditive[p.peek.Type]:
			return
		default:
			p.fail(errors.New(errors.InvalidTerm, p.peek.Pos, ""))
		}
	}
}

// parseFactor handles NUMBER | CHAR | IDENT Suffix. The identifier's
// admissible kinds depend on the suffix:
//
//	'(' Arguments ')'  — must be a function
//	'[' ... ']'        — must be a variable or parameter
//	ε                  — variable, parameter, constant, or function
func (p *Parser) parseFactor() {
	switch p.peek.Type {
	case token.NUMBER:
		p.eat(token.NUMBER)
	case token.CHARLIT:
		p.eat(token.CHARLIT)
	case token.IDENT:
		p.eat(token.IDENT)
		ident := p.cur
		switch p.peek.Type {
		case token.LPAREN:
			p.checkDeclaredFunction(ident)
			p.parseArguments()
		case token.LBRACK:
			obj := p.checkDeclaredIdent(ident)
			if obj.Kind() != symtab.KindVariable && obj.Kind() != symtab.KindParameter {
				p.fail(errors.Newf(errors.InvalidVariable, ident.Pos,
					"'%s' is not a variable", ident.Literal))
			}
			p.parseIndexes()
		default:
			obj := p.checkDeclaredIdent(ident)
			switch obj.Kind() {
			case symtab.KindVariable, symtab.KindParameter, symtab.KindConstant, symtab.KindFunction:
			default:
				p.fail(errors.Newf(errors.InvalidFactor, ident.Pos,
					"invalid factor '%s'", ident.Literal))
			}
		}
	default:
		p.fail(errors.New(errors.InvalidFactor, p.peek.Pos, ""))
	}
}

// parseIndexes handles ('[' Expression ']')*.
func (p *Parser) parseIndexes() {
	for p.peek.Type == token.LBRACK {
		p.eat(token.LBRACK)
		p.parseExpression()
		p.eat(token.RBRACK)
	}
}

// parseArguments handles [ '(' Expression (',' Expression)* ')' ]. An
// absent argument list is accepted when the lookahead is in
// FOLLOW(Arguments), which also admits the multiplicative and additive
// operators since Arguments ends a Factor.
func (p *Parser) parseArguments() {
	switch {
	case p.peek.Type == token.LPAREN:
		p.eat(token.LPAREN)
		p.parseExpression()
		for p.peek.Type == token.COMMA {
			p.eat(token.COMMA)
			p.parseExpression()
		}
		p.eat(token.RPAREN)
	case p.peek.Type == token.ASTERISK || p.peek.Type == token.SLASH ||
		p.peek.Type == token.PLUS || p.peek.Type == token.MINUS ||
		followAdditive[p.peek.Type]:
		// no arguments
	default:
		p.fail(errors.New(errors.InvalidArguments, p.peek.Pos, ""))
	}
}
