// Package symtab implements the KPL symbol table: named objects, the
// lexical scopes that hold them, and the scope stack the parser drives
// while compiling a program.
package symtab

import "github.com/kplang/kplc/internal/types"

// ObjectKind discriminates the kinds of named entities.
type ObjectKind int

const (
	KindProgram ObjectKind = iota
	KindConstant
	KindType
	KindVariable
	KindFunction
	KindProcedure
	KindParameter
)

// String returns a human-readable name for the kind.
func (k ObjectKind) String() string {
	switch k {
	case KindProgram:
		return "program"
	case KindConstant:
		return "constant"
	case KindType:
		return "type"
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindProcedure:
		return "procedure"
	case KindParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// Object is a named entity recorded in a scope: the program itself, a
// constant, a type, a variable, a function, a procedure, or a parameter.
// Identifier names are case-sensitive.
type Object interface {
	Name() string
	Kind() ObjectKind
}

// Program is the root object; it owns the outermost scope.
type Program struct {
	name  string
	Scope *Scope
}

// Constant is a declared compile-time constant.
type Constant struct {
	name  string
	Value types.ConstantValue
}

// TypeName is a declared type alias. Actual is the aliased type; users
// of the alias receive deep copies, never Actual itself.
type TypeName struct {
	name   string
	Actual types.Type
}

// Variable is a declared variable. The owner link points back at the
// program or subprogram whose scope holds the variable; it is non-owning.
type Variable struct {
	name  string
	Type  types.Type
	owner Object
}

// ParamMode distinguishes value parameters from 'var' (reference)
// parameters.
type ParamMode int

const (
	ByValue ParamMode = iota
	ByReference
)

// String returns the mode's name.
func (m ParamMode) String() string {
	if m == ByReference {
		return "var"
	}
	return "value"
}

// Parameter is a formal parameter of a function or procedure. It appears
// both in the subprogram's ordered parameter list and in its scope. The
// owner back-reference is non-owning.
type Parameter struct {
	name  string
	Type  types.Type
	Mode  ParamMode
	owner Object
}

// Function is a declared function. It owns its scope; Params lists its
// parameters in declaration order. Return is always a basic type.
type Function struct {
	name   string
	Params []*Parameter
	Return types.Type
	Scope  *Scope
	owner  Object
}

// Procedure is a declared procedure. It owns its scope; Params lists its
// parameters in declaration order.
type Procedure struct {
	name   string
	Params []*Parameter
	Scope  *Scope
	owner  Object
}

func (o *Program) Name() string   { return o.name }
func (o *Constant) Name() string  { return o.name }
func (o *TypeName) Name() string  { return o.name }
func (o *Variable) Name() string  { return o.name }
func (o *Parameter) Name() string { return o.name }
func (o *Function) Name() string  { return o.name }
func (o *Procedure) Name() string { return o.name }

func (o *Program) Kind() ObjectKind   { return KindProgram }
func (o *Constant) Kind() ObjectKind  { return KindConstant }
func (o *TypeName) Kind() ObjectKind  { return KindType }
func (o *Variable) Kind() ObjectKind  { return KindVariable }
func (o *Parameter) Kind() ObjectKind { return KindParameter }
func (o *Function) Kind() ObjectKind  { return KindFunction }
func (o *Procedure) Kind() ObjectKind { return KindProcedure }

// Owner returns the program or subprogram the variable belongs to.
func (o *Variable) Owner() Object { return o.owner }

// Owner returns the subprogram the parameter belongs to.
func (o *Parameter) Owner() Object { return o.owner }

// Owner returns the enclosing program or subprogram.
func (o *Function) Owner() Object { return o.owner }

// Owner returns the enclosing program or subprogram.
func (o *Procedure) Owner() Object { return o.owner }
