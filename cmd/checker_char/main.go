package main

import (
	"os"

	"github.com/hakanyildizphd/vplc/internal/checker"
)

func main() {
	cli := checker.CLI[byte]{
		Name:             "checker_char",
		NewSession:       checker.NewCharSession,
		DefaultLookahead: checker.DefaultCharLookahead,
	}
	os.Exit(cli.Run(os.Args[1:], os.Stdout))
}
