package parser

import (
	"testing"

	"github.com/kplang/kplc/internal/errors"
)

func TestEmptyStatements(t *testing.T) {
	// The empty statement is accepted exactly when the lookahead is in
	// FOLLOW(Statement): ';', 'end', or 'else'.
	tests := []struct {
		name  string
		input string
	}{
		{"empty body", "program p; begin end."},
		{"lone semicolon", "program p; begin ; end."},
		{"semicolon run", "program p; begin ;;; end."},
		{"trailing semicolon", "program p; var x: integer; begin x := 1; end."},
		{"empty then branch", "program p; var x: integer; begin if 1 = 2 then else x := 1 end."},
		{"empty else branch", "program p; var x: integer; begin if 1 = 2 then x := 1 else end."},
		{"empty loop body", "program p; var i: integer; begin for i := 1 to 3 do end."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseSource(t, tt.input)
		})
	}
}

func TestInvalidStatement(t *testing.T) {
	expectError(t, "program p; begin 1 end.", errors.InvalidStatement, 1, 18)
}

func TestIfElseChain(t *testing.T) {
	input := `program p;
var x : integer;
begin
  if x < 1 then x := 1
  else if x > 9 then x := 9
  else x := 5
end.`
	parseSource(t, input)
}

func TestWhileStatement(t *testing.T) {
	parseSource(t,
		"program p; var n: integer; begin while n > 0 do n := n - 1 end.")
}

func TestNestedGroupStatements(t *testing.T) {
	input := `program p;
var a : integer;
begin
  begin
    a := 1;
    begin a := 2 end
  end;
  a := 3
end.`
	parseSource(t, input)
}

func TestInvalidComparator(t *testing.T) {
	expectError(t, "program p; begin if 1 then end.", errors.InvalidComparator, 1, 23)
}

func TestComparators(t *testing.T) {
	ops := []string{"=", "<>", "<", ">", "<=", ">="}
	for _, op := range ops {
		t.Run(op, func(t *testing.T) {
			parseSource(t, "program p; begin while 1 "+op+" 2 do end.")
		})
	}
}

func TestCallStatement(t *testing.T) {
	input := `program p;
var a : integer;
procedure q(x : integer; y : char);
begin end;
begin
  call q(a, 'c');
  call q(1 + 2 * 3, 'd')
end.`
	parseSource(t, input)
}

func TestCallWithoutArguments(t *testing.T) {
	parseSource(t, "program p; procedure q; begin end; begin call q end.")
}

func TestCallTargetMustBeProcedure(t *testing.T) {
	cerr := parseError(t,
		"program p; function f: integer; begin f := 1 end; begin call f end.")
	if cerr.Kind != errors.InvalidProcedure {
		t.Errorf("error kind = %s, want invalid procedure", cerr.Kind.Description())
	}
}

func TestAssignToFunctionName(t *testing.T) {
	// A function body sets its result by assigning to the function's
	// own name; the looser rule admits the name anywhere it is visible.
	parseSource(t,
		"program p; function f: integer; begin f := 2 end; begin end.")
}

func TestAssignToParameter(t *testing.T) {
	parseSource(t,
		"program p; procedure q(n: integer); begin n := n + 1 end; begin end.")
}

func TestAssignToProcedureRejected(t *testing.T) {
	cerr := parseError(t,
		"program p; procedure q; begin end; begin q := 1 end.")
	if cerr.Kind != errors.InvalidLValue {
		t.Errorf("error kind = %s, want invalid lvalue", cerr.Kind.Description())
	}
}

func TestIndexedAssignment(t *testing.T) {
	input := `program p;
var grid : array [3] of array [4] of integer;
    i : integer;
begin
  grid[1][2] := 7;
  grid[i + 1][i] := grid[i][0]
end.`
	parseSource(t, input)
}

func TestForStatement(t *testing.T) {
	input := `program p;
var i : integer;
    sum : integer;
begin
  for i := 1 to 10 do sum := sum + i
end.`
	parseSource(t, input)
}
