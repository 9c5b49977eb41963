package parser

import (
	"github.com/kplang/kplc/internal/errors"
	"github.com/kplang/kplc/internal/symtab"
	"github.com/kplang/kplc/internal/types"
	"github.com/kplang/kplc/pkg/token"
)

// parseProgram handles
//
//	Program ::= 'program' IDENT ';' Block '.'
//
// creating the root program object and keeping its scope open for the
// whole block.
func (p *Parser) parseProgram() {
	p.eat(token.PROGRAM)
	p.eat(token.IDENT)

	prog := p.table.NewProgram(p.cur.Literal)
	p.table.OpenScope(prog.Scope)

	p.eat(token.SEMICOLON)
	p.parseBlock()
	p.eat(token.DOT)

	p.table.CloseScope()
}

// parseBlock handles the declaration sections in their fixed order,
// followed by the compound statement.
func (p *Parser) parseBlock() {
	if p.peek.Type == token.CONST {
		p.parseConstDecls()
	}
	if p.peek.Type == token.TYPE {
		p.parseTypeDecls()
	}
	if p.peek.Type == token.VAR {
		p.parseVarDecls()
	}
	p.parseSubDecls()

	p.eat(token.BEGIN)
	p.parseStatements()
	p.eat(token.END)
}

// parseConstDecls handles 'const' (IDENT '=' Constant ';')+ .
func (p *Parser) parseConstDecls() {
	p.eat(token.CONST)
	for {
		p.eat(token.IDENT)
		p.checkFreshIdent(p.cur)
		obj := p.table.NewConstant(p.cur.Literal)

		p.eat(token.EQ)
		obj.Value = p.parseConstant()
		p.table.Declare(obj)

		p.eat(token.SEMICOLON)
		if p.peek.Type != token.IDENT {
			return
		}
	}
}

// parseTypeDecls handles 'type' (IDENT '=' Type ';')+ .
func (p *Parser) parseTypeDecls() {
	p.eat(token.TYPE)
	for {
		p.eat(token.IDENT)
		p.checkFreshIdent(p.cur)
		obj := p.table.NewTypeName(p.cur.Literal)

		p.eat(token.EQ)
		obj.Actual = p.parseType()
		p.table.Declare(obj)

		p.eat(token.SEMICOLON)
		if p.peek.Type != token.IDENT {
			return
		}
	}
}

// parseVarDecls handles 'var' (IDENT ':' Type ';')+ .
func (p *Parser) parseVarDecls() {
	p.eat(token.VAR)
	for {
		p.eat(token.IDENT)
		p.checkFreshIdent(p.cur)
		obj := p.table.NewVariable(p.cur.Literal)

		p.eat(token.COLON)
		obj.Type = p.parseType()
		p.table.Declare(obj)

		p.eat(token.SEMICOLON)
		if p.peek.Type != token.IDENT {
			return
		}
	}
}

// parseSubDecls handles (FuncDecl | ProcDecl)* .
func (p *Parser) parseSubDecls() {
	for {
		switch p.peek.Type {
		case token.FUNCTION:
			p.parseFuncDecl()
		case token.PROCEDURE:
			p.parseProcDecl()
		default:
			return
		}
	}
}

// parseFuncDecl handles
//
//	FuncDecl ::= 'function' IDENT Params ':' BasicType ';' Block ';'
//
// The function is declared in the enclosing scope before its own scope
// is entered, so its body can refer to it recursively.
func (p *Parser) parseFuncDecl() {
	p.eat(token.FUNCTION)
	p.eat(token.IDENT)

	p.checkFreshIdent(p.cur)
	fn := p.table.NewFunction(p.cur.Literal)
	p.table.Declare(fn)
	p.table.OpenScope(fn.Scope)

	p.parseParams()

	p.eat(token.COLON)
	fn.Return = p.parseBasicType()

	p.eat(token.SEMICOLON)
	p.parseBlock()
	p.eat(token.SEMICOLON)

	p.table.CloseScope()
}

// parseProcDecl handles
//
//	ProcDecl ::= 'procedure' IDENT Params ';' Block ';'
func (p *Parser) parseProcDecl() {
	p.eat(token.PROCEDURE)
	p.eat(token.IDENT)

	p.checkFreshIdent(p.cur)
	proc := p.table.NewProcedure(p.cur.Literal)
	p.table.Declare(proc)
	p.table.OpenScope(proc.Scope)

	p.parseParams()

	p.eat(token.SEMICOLON)
	p.parseBlock()
	p.eat(token.SEMICOLON)

	p.table.CloseScope()
}

// parseParams handles [ '(' Param (';' Param)* ')' ]. An absent
// parameter list is any lookahead other than '('.
func (p *Parser) parseParams() {
	if p.peek.Type != token.LPAREN {
		return
	}
	p.eat(token.LPAREN)
	p.parseParam()
	for p.peek.Type == token.SEMICOLON {
		p.eat(token.SEMICOLON)
		p.parseParam()
	}
	p.eat(token.RPAREN)
}

// parseParam handles a single value or 'var' parameter, declaring it in
// the subprogram's scope and appending it to the parameter list.
func (p *Parser) parseParam() {
	var mode symtab.ParamMode
	switch p.peek.Type {
	case token.IDENT:
		mode = symtab.ByValue
	case token.VAR:
		mode = symtab.ByReference
		p.eat(token.VAR)
	default:
		p.fail(errors.New(errors.InvalidParameter, p.peek.Pos, ""))
	}

	p.eat(token.IDENT)
	p.checkFreshIdent(p.cur)
	param := p.table.NewParameter(p.cur.Literal, mode, p.table.CurrentScope().Owner())

	p.eat(token.COLON)
	param.Type = p.parseBasicType()
	p.table.Declare(param)
}

// parseConstant handles
//
//	Constant ::= '+' Constant2 | '-' Constant2 | CHAR | Constant2
//
// A '-' on anything but an integer constant is a type inconsistency,
// reported at the constant's identifier or literal. A '+' applies no
// check.
func (p *Parser) parseConstant() types.ConstantValue {
	switch p.peek.Type {
	case token.PLUS:
		p.eat(token.PLUS)
		return p.parseConstant2()
	case token.MINUS:
		p.eat(token.MINUS)
		value := p.parseConstant2()
		iv, ok := value.(*types.IntValue)
		if !ok {
			p.fail(errors.New(errors.TypeInconsistency, p.cur.Pos, ""))
		}
		iv.Value = -iv.Value
		return iv
	case token.CHARLIT:
		p.eat(token.CHARLIT)
		return types.NewCharValue(firstRune(p.cur.Literal))
	default:
		return p.parseConstant2()
	}
}

// parseConstant2 handles NUMBER | IDENT where the IDENT must name a
// constant; the result is a copy of the referenced value.
func (p *Parser) parseConstant2() types.ConstantValue {
	switch p.peek.Type {
	case token.NUMBER:
		p.eat(token.NUMBER)
		return types.NewIntValue(p.cur.Value)
	case token.IDENT:
		p.eat(token.IDENT)
		obj := p.checkDeclaredConstant(p.cur)
		return obj.Value.Clone()
	default:
		p.fail(errors.New(errors.InvalidConstant, p.peek.Pos, ""))
		return nil
	}
}

// parseUnsignedConstant handles NUMBER | IDENT | CHAR.
func (p *Parser) parseUnsignedConstant() types.ConstantValue {
	switch p.peek.Type {
	case token.NUMBER:
		p.eat(token.NUMBER)
		return types.NewIntValue(p.cur.Value)
	case token.IDENT:
		p.eat(token.IDENT)
		obj := p.checkDeclaredConstant(p.cur)
		return obj.Value.Clone()
	case token.CHARLIT:
		p.eat(token.CHARLIT)
		return types.NewCharValue(firstRune(p.cur.Literal))
	default:
		p.fail(errors.New(errors.InvalidConstant, p.peek.Pos, ""))
		return nil
	}
}

// parseType handles
//
//	Type ::= 'integer' | 'char' | 'array' '[' NUMBER ']' 'of' Type | IDENT
//
// An IDENT must name a declared type; the result is a deep copy of the
// aliased type, so later uses never share structure with the alias.
func (p *Parser) parseType() types.Type {
	switch p.peek.Type {
	case token.INTEGER:
		p.eat(token.INTEGER)
		return types.NewInt()
	case token.CHAR:
		p.eat(token.CHAR)
		return types.NewChar()
	case token.ARRAY:
		p.eat(token.ARRAY)
		p.eat(token.LBRACK)
		p.eat(token.NUMBER)
		size := p.cur.Value
		p.eat(token.RBRACK)
		p.eat(token.OF)
		return types.NewArray(size, p.parseType())
	case token.IDENT:
		p.eat(token.IDENT)
		obj := p.checkDeclaredType(p.cur)
		return obj.Actual.Clone()
	default:
		p.fail(errors.New(errors.InvalidType, p.peek.Pos, ""))
		return nil
	}
}

// parseBasicType handles 'integer' | 'char', the only types legal for
// parameters and function results.
func (p *Parser) parseBasicType() types.Type {
	switch p.peek.Type {
	case token.INTEGER:
		p.eat(token.INTEGER)
		return types.NewInt()
	case token.CHAR:
		p.eat(token.CHAR)
		return types.NewChar()
	default:
		p.fail(errors.New(errors.InvalidBasicType, p.peek.Pos, ""))
		return nil
	}
}

// firstRune returns the first rune of a character literal's lexeme.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
