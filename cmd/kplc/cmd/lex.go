package cmd

import (
	"fmt"
	"os"

	"github.com/kplang/kplc/internal/lexer"
	"github.com/kplang/kplc/pkg/token"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a KPL source file",
	Long: `Tokenize (lex) a KPL source file and print the resulting tokens.

This command is useful for debugging the scanner and understanding how
source code is tokenized.`,
	Args: cobra.ExactArgs(1),
	Run:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func runLex(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		exitWithError("reading %s: %v", args[0], err)
	}

	l := lexer.New(string(data))
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if showPos {
			fmt.Printf("%d:%d\t%s\t%s\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
		} else {
			fmt.Printf("%s\t%s\n", tok.Type, tok.Literal)
		}
	}

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(1)
	}
}
