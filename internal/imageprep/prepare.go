// Package imageprep makes cover images upload-ready. Web-native formats
// pass through untouched; everything else is re-encoded as JPEG in a scoped
// temporary directory that the caller releases via Cleanup.
package imageprep

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	// Decoders for the non-web cover formats we convert.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/backmassage/bookpost/internal/naming"
)

// jpegQuality is the fixed encode quality for converted covers.
const jpegQuality = 90

// Extensions that require conversion before upload. Anything not listed is
// assumed web-compatible and is passed through as-is.
var convertExtensions = map[string]bool{
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// Prepared is an upload-ready image. Cleanup must be called when the caller
// is done with Path; for pass-through images it is a no-op.
type Prepared struct {
	Path    string
	tempDir string
}

// Cleanup removes the scoped temporary directory holding a converted image.
// Safe to call on every exit path, including after errors.
func (p *Prepared) Cleanup() {
	if p.tempDir != "" {
		os.RemoveAll(p.tempDir)
	}
}

// Prepare returns an upload-ready image for imagePath. If the format is
// already web-compatible the original path is returned without touching the
// file. Otherwise the image is decoded, flattened to RGB, and re-encoded as
// a JPEG named after a sanitized baseName inside a fresh temporary directory.
func Prepare(imagePath, baseName string) (*Prepared, error) {
	ext := strings.ToLower(filepath.Ext(imagePath))
	if !convertExtensions[ext] {
		return &Prepared{Path: imagePath}, nil
	}

	tmpDir, err := os.MkdirTemp("", "bookpost_cover_")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}

	outPath := filepath.Join(tmpDir, naming.SanitizeBaseName(baseName)+".jpg")
	if err := convertToJPEG(imagePath, outPath); err != nil {
		os.RemoveAll(tmpDir)
		return nil, err
	}
	return &Prepared{Path: outPath, tempDir: tmpDir}, nil
}

func convertToJPEG(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("opening image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(srcPath), err)
	}

	// Flatten to an RGB-backed image; the JPEG encoder drops alpha.
	b := img.Bounds()
	rgb := image.NewRGBA(b)
	draw.Draw(rgb, b, img, b.Min, draw.Src)

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("creating converted image: %w", err)
	}
	if err := jpeg.Encode(dst, rgb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		dst.Close()
		return fmt.Errorf("encoding JPEG: %w", err)
	}
	return dst.Close()
}
