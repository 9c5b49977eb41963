package main

import (
	"os"

	"github.com/kplang/kplc/cmd/kplc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
