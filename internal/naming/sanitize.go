package naming

import (
	"regexp"
	"strings"
)

// maxSanitizedLen caps sanitized base names well below common filesystem
// limits, leaving room for a prefix and extension.
const maxSanitizedLen = 180

// sanitizeFallback is used when sanitization leaves nothing usable.
const sanitizeFallback = "cover"

var (
	reUnsafeChars = regexp.MustCompile(`[\\/:*?"<>|]+`)
	reWhitespace  = regexp.MustCompile(`\s+`)
)

// SanitizeBaseName makes name safe to use as a file base name: characters
// that are unsafe on common filesystems become underscores, whitespace runs
// collapse to a single space, and the result is trimmed and truncated to
// 180 characters. An empty result falls back to "cover".
func SanitizeBaseName(name string) string {
	cleaned := reUnsafeChars.ReplaceAllString(name, "_")
	cleaned = reWhitespace.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if r := []rune(cleaned); len(r) > maxSanitizedLen {
		cleaned = string(r[:maxSanitizedLen])
	}
	if cleaned == "" {
		return sanitizeFallback
	}
	return cleaned
}
