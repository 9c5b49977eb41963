// Package errors provides diagnostic reporting for the KPL compiler.
// Every diagnostic carries a kind from the fixed taxonomy plus the
// line/column it fired at; compilation stops at the first one.
package errors

import (
	"fmt"
	"strings"

	"github.com/kplang/kplc/pkg/token"
)

// Kind identifies the class of a diagnostic.
type Kind int

const (
	MissingToken Kind = iota
	InvalidConstant
	InvalidType
	InvalidBasicType
	InvalidParameter
	InvalidStatement
	InvalidLValue
	InvalidComparator
	InvalidExpression
	InvalidTerm
	InvalidFactor
	InvalidArguments
	InvalidVariable
	InvalidFunction
	InvalidProcedure
	TypeInconsistency
	DuplicateIdent
	UndeclaredIdent

	// Lexical diagnostics
	IllegalCharacter
	UnterminatedChar
	UnterminatedComment
)

// kindDescriptions maps kinds to their user-visible descriptions.
var kindDescriptions = [...]string{
	MissingToken:      "missing token",
	InvalidConstant:   "invalid constant",
	InvalidType:       "invalid type",
	InvalidBasicType:  "invalid basic type",
	InvalidParameter:  "invalid parameter",
	InvalidStatement:  "invalid statement",
	InvalidLValue:     "invalid lvalue",
	InvalidComparator: "invalid comparator",
	InvalidExpression: "invalid expression",
	InvalidTerm:       "invalid term",
	InvalidFactor:     "invalid factor",
	InvalidArguments:  "invalid arguments",
	InvalidVariable:   "invalid variable",
	InvalidFunction:   "invalid function",
	InvalidProcedure:  "invalid procedure",
	TypeInconsistency: "type inconsistency",
	DuplicateIdent:    "duplicate identifier",
	UndeclaredIdent:   "undeclared identifier",

	IllegalCharacter:    "illegal character",
	UnterminatedChar:    "unterminated character literal",
	UnterminatedComment: "unterminated comment",
}

// Description returns the user-visible description of the kind.
func (k Kind) Description() string {
	if int(k) < len(kindDescriptions) {
		return kindDescriptions[k]
	}
	return "unknown error"
}

// CompilerError is a single compilation diagnostic with position and,
// optionally, the source context needed for caret rendering.
type CompilerError struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New creates a diagnostic of the given kind at pos. If message is empty
// the kind's description is used.
func New(kind Kind, pos token.Position, message string) *CompilerError {
	if message == "" {
		message = kind.Description()
	}
	return &CompilerError{Kind: kind, Pos: pos, Message: message}
}

// Newf creates a diagnostic with a formatted message.
func Newf(kind Kind, pos token.Position, format string, args ...any) *CompilerError {
	return New(kind, pos, fmt.Sprintf(format, args...))
}

// WithSource attaches source text and file name for caret rendering.
func (e *CompilerError) WithSource(source, file string) *CompilerError {
	e.Source = source
	e.File = file
	return e
}

// Error implements the error interface with the one-line diagnostic form.
func (e *CompilerError) Error() string {
	return fmt.Sprintf("Error: %s at line %d, col %d", e.Message, e.Pos.Line, e.Pos.Column)
}

// Format formats the diagnostic with its source line and a caret pointing
// at the error column. If color is true, ANSI codes are used.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// getSourceLine extracts a specific line from the source code.
// Lines are 1-indexed.
func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
