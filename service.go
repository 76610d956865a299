package md2html

import (
	"context"
	"fmt"
)

// documentTemplate wraps a fragment in a complete HTML5 document for
// standalone output.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// htmlConverter abstracts dialect-to-HTML conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Service orchestrates the markup-to-HTML pipeline.
type Service struct {
	converter htmlConverter
}

// New creates a Service with the dialect line engine as converter.
// Use options to customize behavior (e.g., WithCommonMark).
func New(opts ...Option) *Service {
	s := &Service{converter: newLineEngine()}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the pipeline and returns the HTML fragment, or a full
// document when input.Standalone is set. The context is used for
// cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content := NormalizeLineEndings(input.Markdown)

	var meta Metadata
	if input.FrontMatter {
		var err error
		meta, content, err = ExtractFrontMatter(content)
		if err != nil {
			return "", err
		}
	}

	fragment, err := s.converter.ToHTML(ctx, content)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	if !input.Standalone {
		return fragment, nil
	}

	title := input.Title
	if title == "" {
		title = meta.Title
	}
	if title == "" {
		title = defaultDocumentTitle
	}
	return fmt.Sprintf(documentTemplate, title, fragment), nil
}
