package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrFrontMatter    = errors.New("front matter parsing failed")
)
