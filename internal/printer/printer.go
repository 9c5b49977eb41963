// Package printer renders a parsed program's object tree in a readable,
// indented form. The output is informational; it exists for the compile
// command's dump and for tests.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/kplang/kplc/internal/symtab"
)

const indentStep = "  "

// Print renders the object tree rooted at obj.
func Print(obj symtab.Object) string {
	var sb strings.Builder
	Fprint(&sb, obj)
	return sb.String()
}

// Fprint renders the object tree rooted at obj to w. Scoped objects
// (program, function, procedure) are followed by their scope's contents,
// one indentation level deeper, in declaration order.
func Fprint(w io.Writer, obj symtab.Object) {
	fprintObject(w, obj, 0)
}

func fprintObject(w io.Writer, obj symtab.Object, depth int) {
	indent := strings.Repeat(indentStep, depth)

	switch o := obj.(type) {
	case *symtab.Program:
		fmt.Fprintf(w, "%sprogram %s\n", indent, o.Name())
		fprintScope(w, o.Scope, depth+1)
	case *symtab.Constant:
		fmt.Fprintf(w, "%sconstant %s = %s\n", indent, o.Name(), o.Value)
	case *symtab.TypeName:
		fmt.Fprintf(w, "%stype %s = %s\n", indent, o.Name(), o.Actual)
	case *symtab.Variable:
		fmt.Fprintf(w, "%svariable %s : %s\n", indent, o.Name(), o.Type)
	case *symtab.Parameter:
		fmt.Fprintf(w, "%sparameter %s : %s (%s)\n", indent, o.Name(), o.Type, o.Mode)
	case *symtab.Function:
		fmt.Fprintf(w, "%sfunction %s : %s\n", indent, o.Name(), o.Return)
		fprintScope(w, o.Scope, depth+1)
	case *symtab.Procedure:
		fmt.Fprintf(w, "%sprocedure %s\n", indent, o.Name())
		fprintScope(w, o.Scope, depth+1)
	default:
		fmt.Fprintf(w, "%s%s %s\n", indent, obj.Kind(), obj.Name())
	}
}

func fprintScope(w io.Writer, scope *symtab.Scope, depth int) {
	for _, obj := range scope.Objects() {
		fprintObject(w, obj, depth)
	}
}
