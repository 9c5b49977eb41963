// Package kpl is the embedding surface of the KPL compiler front end:
// parse a source text and receive the populated symbol table, or the
// first diagnostic.
package kpl

import (
	"fmt"
	"os"

	kplerrors "github.com/kplang/kplc/internal/errors"
	"github.com/kplang/kplc/internal/lexer"
	"github.com/kplang/kplc/internal/parser"
	"github.com/kplang/kplc/internal/printer"
	"github.com/kplang/kplc/internal/symtab"
)

// Parse compiles source and returns its symbol table. file is used only
// for diagnostics and may be empty. On failure the returned error is a
// *errors.CompilerError carrying the source for caret rendering.
func Parse(source, file string) (*symtab.Table, error) {
	l := lexer.New(source)
	p := parser.New(l)
	table, err := p.Parse()
	if err != nil {
		if cerr, ok := err.(*kplerrors.CompilerError); ok {
			cerr.WithSource(source, file)
		}
		return nil, err
	}
	return table, nil
}

// ParseFile reads and compiles the source file at path.
func ParseFile(path string) (*symtab.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(data), path)
}

// Dump renders the table's program object tree.
func Dump(table *symtab.Table) string {
	return printer.Print(table.Program)
}
