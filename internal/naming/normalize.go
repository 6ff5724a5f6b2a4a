package naming

import "strings"

// coverMarker is the suffix convention used on preview image stems,
// e.g. "War and Peace.cover.tiff".
const coverMarker = ".cover"

// NormalizeStem trims surrounding whitespace and strips any trailing cover
// markers (case-insensitive). The result is stable: normalizing an already
// normalized stem returns it unchanged.
func NormalizeStem(stem string) string {
	s := strings.TrimSpace(stem)
	for {
		lower := strings.ToLower(s)
		if !strings.HasSuffix(lower, coverMarker) {
			return s
		}
		s = strings.TrimSpace(s[:len(s)-len(coverMarker)])
	}
}
