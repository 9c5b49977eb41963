package symtab

import "github.com/kplang/kplc/internal/types"

// Table is the symbol table for one compilation: the root program
// object, the currently open scope, and the shared basic type instances.
// Its lifecycle is init -> populate (during the parse) -> read (by the
// dumper) -> release.
type Table struct {
	Program *Program
	current *Scope

	// Shared basic type singletons, usable as shorthand wherever a
	// fresh copy is not required.
	IntType  *types.IntType
	CharType *types.CharType
}

// New creates an empty symbol table with the basic types installed.
func New() *Table {
	return &Table{
		IntType:  types.NewInt(),
		CharType: types.NewChar(),
	}
}

// CurrentScope returns the scope on top of the scope stack, or nil
// before the program scope has been entered.
func (t *Table) CurrentScope() *Scope { return t.current }

// OpenScope pushes s onto the scope stack.
func (t *Table) OpenScope(s *Scope) { t.current = s }

// CloseScope pops the scope stack back to the enclosing scope.
func (t *Table) CloseScope() { t.current = t.current.outer }

// Lookup walks the scope chain from the current scope outward and
// returns the innermost object with the given name, or nil.
func (t *Table) Lookup(name string) Object {
	for s := t.current; s != nil; s = s.outer {
		if obj := s.FindLocal(name); obj != nil {
			return obj
		}
	}
	return nil
}

// Declare records obj in the current scope. Parameters are additionally
// appended to their owning subprogram's parameter list, preserving
// declaration order. Freshness is the caller's responsibility.
func (t *Table) Declare(obj Object) {
	if param, ok := obj.(*Parameter); ok {
		switch owner := param.owner.(type) {
		case *Function:
			owner.Params = append(owner.Params, param)
		case *Procedure:
			owner.Params = append(owner.Params, param)
		}
	}
	t.current.Insert(obj)
}

// NewProgram creates the root program object with its owned scope and
// installs it as the table's program. The program scope has no outer
// scope.
func (t *Table) NewProgram(name string) *Program {
	prog := &Program{name: name}
	prog.Scope = NewScope(prog, t.current)
	t.Program = prog
	return prog
}

// NewConstant creates a constant object; the value is filled in by the
// caller once parsed.
func (t *Table) NewConstant(name string) *Constant {
	return &Constant{name: name}
}

// NewTypeName creates a type alias object; the aliased type is filled in
// by the caller once parsed.
func (t *Table) NewTypeName(name string) *TypeName {
	return &TypeName{name: name}
}

// NewVariable creates a variable object owned by the current scope's
// owner.
func (t *Table) NewVariable(name string) *Variable {
	return &Variable{name: name, owner: t.current.owner}
}

// NewFunction creates a function object with its owned scope nested in
// the current scope.
func (t *Table) NewFunction(name string) *Function {
	fn := &Function{name: name, owner: t.current.owner}
	fn.Scope = NewScope(fn, t.current)
	return fn
}

// NewProcedure creates a procedure object with its owned scope nested in
// the current scope.
func (t *Table) NewProcedure(name string) *Procedure {
	proc := &Procedure{name: name, owner: t.current.owner}
	proc.Scope = NewScope(proc, t.current)
	return proc
}

// NewParameter creates a parameter object for the given owning
// subprogram.
func (t *Table) NewParameter(name string, mode ParamMode, owner Object) *Parameter {
	return &Parameter{name: name, Mode: mode, owner: owner}
}
