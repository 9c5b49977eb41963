package kpl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs the KPL sources under testdata through the front end
// using go-snaps for snapshot testing: passing fixtures snapshot the
// object-tree dump, failing ones the diagnostic.
func TestFixtures(t *testing.T) {
	fixtures := []struct {
		name        string
		description string
		expectError bool
	}{
		{
			name:        "minimal",
			description: "empty program body",
		},
		{
			name:        "arrays",
			description: "nested array types and indexed assignment",
		},
		{
			name:        "subprograms",
			description: "function and procedure with value and var parameters",
		},
		{
			name:        "recursion",
			description: "function calling itself through its enclosing declaration",
		},
		{
			name:        "undeclared",
			description: "call of an undeclared procedure",
			expectError: true,
		},
		{
			name:        "duplicate",
			description: "same name declared twice in one scope",
			expectError: true,
		},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			path := filepath.Join("testdata", fixture.name+".kpl")
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading fixture: %v", err)
			}

			table, err := Parse(string(data), fixture.name+".kpl")
			if fixture.expectError {
				if err == nil {
					t.Fatalf("%s: expected a diagnostic, parse succeeded", fixture.description)
				}
				snaps.MatchSnapshot(t, err.Error())
				return
			}
			if err != nil {
				t.Fatalf("%s: %v", fixture.description, err)
			}
			snaps.MatchSnapshot(t, Dump(table))
		})
	}
}
