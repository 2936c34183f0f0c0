package main

import (
	"os"

	"github.com/hakanyildizphd/vplc/internal/checker"
)

func main() {
	cli := checker.CLI[float64]{
		Name:             "checker_real",
		NewSession:       checker.NewRealSession,
		DefaultLookahead: checker.DefaultRealLookahead,
	}
	os.Exit(cli.Run(os.Args[1:], os.Stdout))
}
