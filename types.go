package md2html

// Input contains conversion parameters.
type Input struct {
	Markdown    string // document content (the custom dialect, or CommonMark with WithCommonMark)
	FrontMatter bool   // extract and parse a leading --- YAML block
	Standalone  bool   // wrap the fragment in a complete HTML5 document
	Title       string // document title for standalone output (fallback: front matter title)
}

// defaultDocumentTitle is used for standalone output when neither
// Input.Title nor front matter provides one.
const defaultDocumentTitle = "Document"

// Option configures a Service.
type Option func(*Service)

// WithCommonMark replaces the dialect line engine with a Goldmark
// renderer for standard Markdown input.
func WithCommonMark() Option {
	return func(s *Service) {
		s.converter = newGoldmarkConverter()
	}
}
