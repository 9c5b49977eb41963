package symtab

// Scope is a container of declared objects belonging to a program,
// function, or procedure. Objects are kept in declaration order and must
// have unique names within the scope; callers verify freshness with
// FindLocal before inserting. The owner and outer links are non-owning:
// owner is the object that opened the scope, outer the enclosing scope
// (nil for the program scope).
type Scope struct {
	objects []Object
	owner   Object
	outer   *Scope
}

// NewScope creates a scope owned by owner, nested inside outer.
func NewScope(owner Object, outer *Scope) *Scope {
	return &Scope{owner: owner, outer: outer}
}

// Owner returns the program or subprogram that opened the scope.
func (s *Scope) Owner() Object { return s.owner }

// Outer returns the enclosing scope, or nil for the program scope.
func (s *Scope) Outer() *Scope { return s.outer }

// Objects returns the scope's objects in declaration order. The returned
// slice is the scope's own backing store and must not be mutated.
func (s *Scope) Objects() []Object { return s.objects }

// FindLocal scans this scope only and returns the object with the given
// case-sensitive name, or nil.
func (s *Scope) FindLocal(name string) Object {
	for _, obj := range s.objects {
		if obj.Name() == name {
			return obj
		}
	}
	return nil
}

// Insert appends obj to the scope. It does not check for duplicates;
// the caller has already done so, so that diagnostics fire on the
// identifier token rather than here.
func (s *Scope) Insert(obj Object) {
	s.objects = append(s.objects, obj)
}
