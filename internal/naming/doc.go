// Package naming provides stem normalization for cover/book pairing and
// filename sanitization for temporary upload artifacts.
//
// A "stem" is a file's base name without its extension. Cover images are
// often exported as "<book>.cover.<ext>"; NormalizeStem strips the cover
// marker so the image and the book share a pairing key.
package naming
