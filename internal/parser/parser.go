// Package parser implements the KPL recursive-descent parser.
//
// The grammar is strict LL(1): every decision is made on the lookahead
// token alone, and optional or repeating productions end exactly when the
// lookahead is in their FOLLOW set. The parser builds no syntax tree;
// each declarator creates a symbol-table object in the scope that is
// open at that point, and each identifier use is resolved and
// kind-checked against its grammatical context.
//
// Diagnostics are single-shot: the first violation aborts the parse and
// is returned from Parse as a *errors.CompilerError.
package parser

import (
	"github.com/kplang/kplc/internal/errors"
	"github.com/kplang/kplc/internal/lexer"
	"github.com/kplang/kplc/internal/symtab"
	"github.com/kplang/kplc/pkg/token"
)

// Parser holds the two-token window over the scanner and the symbol
// table being populated.
type Parser struct {
	l     *lexer.Lexer
	table *symtab.Table

	// cur is the most recently consumed token; peek the next one.
	// Grammar predicates look only at peek, lexeme data is read from
	// cur after eat.
	cur  token.Token
	peek token.Token
}

// New creates a parser reading from l with a fresh symbol table.
func New(l *lexer.Lexer) *Parser {
	return &Parser{l: l, table: symtab.New()}
}

// Table returns the symbol table, populated after a successful Parse.
func (p *Parser) Table() *symtab.Table {
	return p.table
}

// bailout carries the first diagnostic out of the production recursion.
type bailout struct {
	err *errors.CompilerError
}

// fail aborts the parse with the given diagnostic.
func (p *Parser) fail(err *errors.CompilerError) {
	panic(bailout{err})
}

// Parse runs the Program production and returns the populated symbol
// table, or the first diagnostic encountered.
func (p *Parser) Parse() (tbl *symtab.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			tbl, err = nil, b.err
		}
	}()

	p.peek = p.nextValidToken()
	p.parseProgram()
	return p.table, nil
}

// nextValidToken pulls the next token from the scanner, aborting on a
// lexical error.
func (p *Parser) nextValidToken() token.Token {
	tok := p.l.NextToken()
	if tok.Type == token.ILLEGAL {
		if errs := p.l.Errors(); len(errs) > 0 {
			p.fail(errs[len(errs)-1])
		}
		p.fail(errors.Newf(errors.IllegalCharacter, tok.Pos,
			"illegal character %q", tok.Literal))
	}
	return tok
}

// advance consumes the lookahead and fetches the next valid token.
func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.nextValidToken()
}

// eat advances if the lookahead has the expected type and otherwise
// aborts with a MissingToken diagnostic at the lookahead's position.
func (p *Parser) eat(expected token.TokenType) {
	if p.peek.Type != expected {
		p.fail(errors.Newf(errors.MissingToken, p.peek.Pos,
			"missing %s", expected.Describe()))
	}
	p.advance()
}
