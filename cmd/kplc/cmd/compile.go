package cmd

import (
	"fmt"
	"os"

	kplerrors "github.com/kplang/kplc/internal/errors"
	"github.com/kplang/kplc/pkg/kpl"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var compileQuiet bool

var compileCmd = &cobra.Command{
	Use:   "compile <file>",
	Short: "Parse a KPL source file and dump its object tree",
	Long: `Parse a KPL source file, building its scopes and declarations.

On success the program's object tree is printed with one indentation
level per scope. On the first grammar or naming violation the
diagnostic is printed with the offending source line and the command
exits with status 1.`,
	Args: cobra.ExactArgs(1),
	Run:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().BoolVarP(&compileQuiet, "quiet", "q", false, "suppress the object tree dump")
}

func runCompile(cmd *cobra.Command, args []string) {
	table, err := kpl.ParseFile(args[0])
	if err != nil {
		if cerr, ok := err.(*kplerrors.CompilerError); ok {
			fmt.Fprintln(os.Stderr, cerr.Format(stderrIsTerminal()))
			os.Exit(1)
		}
		exitWithError("%v", err)
	}

	if !compileQuiet {
		fmt.Print(kpl.Dump(table))
	}
}

// stderrIsTerminal reports whether stderr is attached to a terminal, so
// diagnostics are colored only for interactive use.
func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
