package naming

import (
	"strings"
	"testing"
)

func TestNormalizeStem(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain stem", "War and Peace", "War and Peace"},
		{"lowercase marker", "Dune.cover", "Dune"},
		{"uppercase marker", "Dune.COVER", "Dune"},
		{"mixed case marker", "Dune.Cover", "Dune"},
		{"surrounding whitespace", "  Dune  ", "Dune"},
		{"whitespace before marker", "Dune .cover", "Dune"},
		{"repeated marker", "Dune.cover.cover", "Dune"},
		{"marker in the middle", "Dune.cover edition", "Dune.cover edition"},
		{"marker only", ".cover", ""},
		{"empty", "", ""},
		{"dot in title", "Fahrenheit 4.51", "Fahrenheit 4.51"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStem(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeStem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeStem_Idempotent(t *testing.T) {
	inputs := []string{
		"Dune.cover",
		"Dune.COVER.cover",
		"  Moby Dick .cover ",
		"plain",
		"",
	}
	for _, in := range inputs {
		once := NormalizeStem(in)
		twice := NormalizeStem(once)
		if once != twice {
			t.Errorf("NormalizeStem not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizeBaseName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean name", "Dune", "Dune"},
		{"path separators", `a/b\c`, "a_b_c"},
		{"reserved punctuation", `what? "yes": <no> | *maybe*`, "what_ _yes_ _no_ _ _maybe_"},
		{"whitespace collapsed", "a \t b\n\nc", "a b c"},
		{"trimmed", "  spaced out  ", "spaced out"},
		{"empty falls back", "", "cover"},
		{"only unsafe chars", `///`, "_"},
		{"only whitespace", " \t ", "cover"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeBaseName(tt.in)
			if got != tt.want {
				t.Errorf("SanitizeBaseName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeBaseName_Truncates(t *testing.T) {
	long := strings.Repeat("x", 500)
	got := SanitizeBaseName(long)
	if len([]rune(got)) != 180 {
		t.Errorf("len = %d, want 180", len([]rune(got)))
	}
}
