package parser

import (
	"github.com/kplang/kplc/internal/errors"
	"github.com/kplang/kplc/internal/symtab"
	"github.com/kplang/kplc/pkg/token"
)

// The semantic predicates run against the identifier token that was just
// consumed, so their diagnostics carry the identifier's own position.
// Freshness is checked before the object is created, lookup before the
// resolved object's kind is used.

// checkFreshIdent aborts if the name is already declared in the current
// scope. Names are case-sensitive; outer scopes may freely shadow.
func (p *Parser) checkFreshIdent(tok token.Token) {
	if p.table.CurrentScope().FindLocal(tok.Literal) != nil {
		p.fail(errors.Newf(errors.DuplicateIdent, tok.Pos,
			"duplicate identifier '%s'", tok.Literal))
	}
}

// checkDeclaredIdent resolves the name through the scope chain,
// innermost first.
func (p *Parser) checkDeclaredIdent(tok token.Token) symtab.Object {
	obj := p.table.Lookup(tok.Literal)
	if obj == nil {
		p.fail(errors.Newf(errors.UndeclaredIdent, tok.Pos,
			"undeclared identifier '%s'", tok.Literal))
	}
	return obj
}

// checkDeclaredConstant resolves the name and requires a constant.
func (p *Parser) checkDeclaredConstant(tok token.Token) *symtab.Constant {
	obj := p.checkDeclaredIdent(tok)
	c, ok := obj.(*symtab.Constant)
	if !ok {
		p.fail(errors.Newf(errors.InvalidConstant, tok.Pos,
			"'%s' is not a constant", tok.Literal))
	}
	return c
}

// checkDeclaredType resolves the name and requires a type.
func (p *Parser) checkDeclaredType(tok token.Token) *symtab.TypeName {
	obj := p.checkDeclaredIdent(tok)
	t, ok := obj.(*symtab.TypeName)
	if !ok {
		p.fail(errors.Newf(errors.InvalidType, tok.Pos,
			"'%s' is not a type", tok.Literal))
	}
	return t
}

// checkDeclaredVariable resolves the name and requires a variable.
func (p *Parser) checkDeclaredVariable(tok token.Token) *symtab.Variable {
	obj := p.checkDeclaredIdent(tok)
	v, ok := obj.(*symtab.Variable)
	if !ok {
		p.fail(errors.Newf(errors.InvalidVariable, tok.Pos,
			"'%s' is not a variable", tok.Literal))
	}
	return v
}

// checkDeclaredFunction resolves the name and requires a function.
func (p *Parser) checkDeclaredFunction(tok token.Token) *symtab.Function {
	obj := p.checkDeclaredIdent(tok)
	fn, ok := obj.(*symtab.Function)
	if !ok {
		p.fail(errors.Newf(errors.InvalidFunction, tok.Pos,
			"'%s' is not a function", tok.Literal))
	}
	return fn
}

// checkDeclaredProcedure resolves the name and requires a procedure.
func (p *Parser) checkDeclaredProcedure(tok token.Token) *symtab.Procedure {
	obj := p.checkDeclaredIdent(tok)
	proc, ok := obj.(*symtab.Procedure)
	if !ok {
		p.fail(errors.Newf(errors.InvalidProcedure, tok.Pos,
			"'%s' is not a procedure", tok.Literal))
	}
	return proc
}
