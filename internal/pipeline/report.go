package pipeline

import (
	"os"
	"strings"
)

// WriteSkipReport writes one "<stem> | <reason>" line per skipped pair,
// newline-terminated, replacing any report from a previous run. Callers
// only invoke it when there is at least one line; a run with no oversized
// pairs leaves the previous report untouched.
func WriteSkipReport(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}
