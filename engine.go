package md2html

import (
	"context"
	"strings"
)

// lineEngine converts the custom dialect to an HTML fragment: the block
// classifier groups lines, the inline transformer rewrites content, and
// the renderer serializes tags. It is the default htmlConverter.
type lineEngine struct{}

func newLineEngine() *lineEngine {
	return &lineEngine{}
}

// ToHTML runs the one-pass line transducer. The transform is total over
// any input; the only failure mode is context cancellation.
func (e *lineEngine) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out := &renderer{}
	c := newClassifier(out)
	for _, line := range strings.Split(content, "\n") {
		c.feed(line)
	}
	c.flush()

	return out.String(), nil
}
