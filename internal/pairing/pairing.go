// Package pairing discovers book/cover files in a directory and groups them
// into upload pairs keyed by normalized stem.
package pairing

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/bookpost/internal/naming"
)

// Image file extensions (lowercase, with leading dot). Everything else that
// survives discovery is treated as a book document.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// Metadata files that must never be paired or uploaded. Hidden files
// (dotfiles) are excluded separately.
var excludedNames = map[string]bool{
	"skipped_too_large.txt": true,
	"Thumbs.db":             true,
	"desktop.ini":           true,
}

// FileEntry is a discovered file with its derived pairing attributes.
type FileEntry struct {
	Path string // absolute or dir-relative path as discovered
	Stem string // normalized stem (pairing key)
	Ext  string // lowercase extension with leading dot
	Size int64
}

// Pair is a matched cover image and book document sharing a stem.
type Pair struct {
	Stem     string
	Image    FileEntry
	Document FileEntry
}

// Build enumerates the regular files directly inside dir, groups them by
// normalized stem, and matches each group into a Pair when it contains at
// least one image and one document. Stems missing either side are returned
// separately. Both slices are sorted case-insensitively by stem, and entries
// within a group are considered in extension order, so the result is
// deterministic for identical directory contents.
func Build(dir string) (pairs []Pair, missing []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	byStem := make(map[string][]FileEntry)
	for _, e := range entries {
		if e.IsDir() || !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if excludedNames[name] || strings.HasPrefix(name, ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, nil, err
		}
		ext := strings.ToLower(filepath.Ext(name))
		stem := naming.NormalizeStem(strings.TrimSuffix(name, filepath.Ext(name)))
		byStem[stem] = append(byStem[stem], FileEntry{
			Path: filepath.Join(dir, name),
			Stem: stem,
			Ext:  ext,
			Size: info.Size(),
		})
	}

	stems := make([]string, 0, len(byStem))
	for stem := range byStem {
		stems = append(stems, stem)
	}
	sortCaseInsensitive(stems)

	for _, stem := range stems {
		group := byStem[stem]
		sort.Slice(group, func(i, j int) bool { return group[i].Ext < group[j].Ext })

		var images, books []FileEntry
		for _, fe := range group {
			if imageExtensions[fe.Ext] {
				images = append(images, fe)
			} else {
				books = append(books, fe)
			}
		}

		if len(images) == 0 || len(books) == 0 {
			missing = append(missing, stem)
			continue
		}
		pairs = append(pairs, Pair{Stem: stem, Image: images[0], Document: books[0]})
	}

	return pairs, missing, nil
}

// sortCaseInsensitive sorts stems by their lowercase form, falling back to
// the raw string so equal-fold stems still order deterministically.
func sortCaseInsensitive(stems []string) {
	sort.Slice(stems, func(i, j int) bool {
		li, lj := strings.ToLower(stems[i]), strings.ToLower(stems[j])
		if li != lj {
			return li < lj
		}
		return stems[i] < stems[j]
	})
}
