package printer

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/kplang/kplc/internal/lexer"
	"github.com/kplang/kplc/internal/parser"
	"github.com/kplang/kplc/internal/symtab"
)

func parseSource(t *testing.T, input string) *symtab.Table {
	t.Helper()
	p := parser.New(lexer.New(input))
	table, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return table
}

func TestPrintProgram(t *testing.T) {
	input := `program demo;
const max = 10;
type vec = array [3] of integer;
var v : vec;
    c : char;
function add(a : integer; var b : integer) : integer;
var tmp : integer;
begin tmp := a + b; add := tmp end;
procedure reset;
begin end;
begin call reset end.`

	table := parseSource(t, input)
	got := Print(table.Program)

	want := `program demo
  constant max = 10
  type vec = array [3] of integer
  variable v : array [3] of integer
  variable c : char
  function add : integer
    parameter a : integer (value)
    parameter b : integer (var)
    variable tmp : integer
  procedure reset
`
	if got != want {
		t.Errorf("Print() =\n%s\nwant\n%s", got, want)
	}
}

func TestPrintEmptyProgram(t *testing.T) {
	table := parseSource(t, "program p; begin end.")
	if got := Print(table.Program); got != "program p\n" {
		t.Errorf("Print() = %q, want %q", got, "program p\n")
	}
}

func TestPrintCharConstant(t *testing.T) {
	table := parseSource(t, "program p; const sep = ','; begin end.")
	want := "program p\n  constant sep = ','\n"
	if got := Print(table.Program); got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintNestedScopes(t *testing.T) {
	input := `program nest;
var depth : integer;
function outer(n : integer) : integer;
  const step = 2;
  function inner(m : integer) : integer;
  begin inner := m - step end;
begin outer := inner(n) end;
begin depth := outer(4) end.`

	table := parseSource(t, input)
	snaps.MatchSnapshot(t, Print(table.Program))
}
