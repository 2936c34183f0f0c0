// Package textutil prepares grading fixture files for the checkers:
// reference outputs are expected to contain single-space-separated
// non-empty lines ending with a final newline.
package textutil

import (
	"fmt"
	"os"
	"strings"
)

// CorrectWhitespace normalizes content to that shape: runs of whitespace
// inside a line collapse to one space, leading and trailing whitespace is
// stripped, and empty lines are dropped.
func CorrectWhitespace(content string) string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		b.WriteString(strings.Join(fields, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// CorrectWhitespaceFile rewrites the file at path in place.
func CorrectWhitespaceFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	corrected := CorrectWhitespace(string(content))
	if err := os.WriteFile(path, []byte(corrected), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
