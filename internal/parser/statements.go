package parser

import (
	"github.com/kplang/kplc/internal/errors"
	"github.com/kplang/kplc/internal/symtab"
	"github.com/kplang/kplc/pkg/token"
)

// parseStatements handles Statement (';' Statement)* .
func (p *Parser) parseStatements() {
	p.parseStatement()
	for p.peek.Type == token.SEMICOLON {
		p.eat(token.SEMICOLON)
		p.parseStatement()
	}
}

// parseStatement dispatches on the lookahead. The empty statement is
// accepted exactly when the lookahead is in FOLLOW(Statement):
// ';', 'end', or 'else'.
func (p *Parser) parseStatement() {
	switch p.peek.Type {
	case token.IDENT:
		p.parseAssignSt()
	case token.CALL:
		p.parseCallSt()
	case token.BEGIN:
		p.parseGroupSt()
	case token.IF:
		p.parseIfSt()
	case token.WHILE:
		p.parseWhileSt()
	case token.FOR:
		p.parseForSt()
	case token.SEMICOLON, token.END, token.ELSE:
		// empty statement
	default:
		p.fail(errors.New(errors.InvalidStatement, p.peek.Pos, ""))
	}
}

// parseLValue handles IDENT Indexes. The identifier must resolve to a
// variable, a parameter, or a function; functions are admitted so a
// function body can assign its result to its own name.
func (p *Parser) parseLValue() {
	p.eat(token.IDENT)
	obj := p.checkDeclaredIdent(p.cur)
	switch obj.Kind() {
	case symtab.KindVariable, symtab.KindFunction, symtab.KindParameter:
	default:
		p.fail(errors.Newf(errors.InvalidLValue, p.cur.Pos,
			"invalid lvalue '%s'", p.cur.Literal))
	}
	p.parseIndexes()
}

// parseAssignSt handles LValue ':=' Expression.
func (p *Parser) parseAssignSt() {
	p.parseLValue()
	p.eat(token.ASSIGN)
	p.parseExpression()
}

// parseCallSt handles 'call' IDENT Arguments; the identifier must name
// a procedure.
func (p *Parser) parseCallSt() {
	p.eat(token.CALL)
	p.eat(token.IDENT)
	p.checkDeclaredProcedure(p.cur)
	p.parseArguments()
}

// parseGroupSt handles 'begin' Statements 'end'.
func (p *Parser) parseGroupSt() {
	p.eat(token.BEGIN)
	p.parseStatements()
	p.eat(token.END)
}

// parseIfSt handles 'if' Condition 'then' Statement [ 'else' Statement ].
// An 'else' binds to the nearest 'if'.
func (p *Parser) parseIfSt() {
	p.eat(token.IF)
	p.parseCondition()
	p.eat(token.THEN)
	p.parseStatement()
	if p.peek.Type == token.ELSE {
		p.eat(token.ELSE)
		p.parseStatement()
	}
}

// parseWhileSt handles 'while' Condition 'do' Statement.
func (p *Parser) parseWhileSt() {
	p.eat(token.WHILE)
	p.parseCondition()
	p.eat(token.DO)
	p.parseStatement()
}

// parseForSt handles
//
//	'for' IDENT ':=' Expression 'to' Expression 'do' Statement
//
// The control identifier must resolve to a variable; parameters and
// constants are rejected.
func (p *Parser) parseForSt() {
	p.eat(token.FOR)
	p.eat(token.IDENT)
	p.checkDeclaredVariable(p.cur)

	p.eat(token.ASSIGN)
	p.parseExpression()
	p.eat(token.TO)
	p.parseExpression()
	p.eat(token.DO)
	p.parseStatement()
}

// parseCondition handles Expression CmpOp Expression.
func (p *Parser) parseCondition() {
	p.parseExpression()
	switch p.peek.Type {
	case token.EQ, token.NOT_EQ, token.LESS_EQ, token.LESS, token.GREATER_EQ, token.GREATER:
		p.advance()
	default:
		p.fail(errors.New(errors.InvalidComparator, p.peek.Pos, ""))
	}
	p.parseExpression()
}
