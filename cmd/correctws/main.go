package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hakanyildizphd/vplc/pkg/textutil"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println()
		fmt.Println("    correctws <inputFile>")
		fmt.Println()
		fmt.Println("    Corrects (overwrites) <inputFile> so that it contains")
		fmt.Println("    space-separated non-empty lines ending with a final")
		fmt.Println("    newline character.")
		fmt.Println()
		return
	}

	if err := textutil.CorrectWhitespaceFile(os.Args[1]); err != nil {
		slog.Error("Failed to correct file", "path", os.Args[1], "error", err)
		os.Exit(1)
	}
}
