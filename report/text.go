// Package report writes the artifacts produced by the tools: plain-text
// command files and the recurring profile workbook.
package report

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrWrite is returned when an output artifact cannot be written
var ErrWrite = errors.New("failed to write output")

// WriteLines writes each line followed by a newline, replacing any existing file
func WriteLines(filePath string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(filePath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("%w %s: %v", ErrWrite, filePath, err)
	}
	return nil
}
