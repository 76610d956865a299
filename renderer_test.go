package md2html

import (
	"fmt"
	"testing"
)

func TestRendererParagraphBuffering(t *testing.T) {
	r := &renderer{}
	r.paragraphLine("a")
	r.paragraphLine("b")
	r.paragraphLine("c")
	r.closeParagraph()

	want := "<p>\n    a<br/>\n    b<br/>\n    c\n</p>\n"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRendererParagraphBufferReused(t *testing.T) {
	r := &renderer{}
	r.paragraphLine("first")
	r.closeParagraph()
	r.paragraphLine("second")
	r.closeParagraph()

	want := "<p>\n    first\n</p>\n<p>\n    second\n</p>\n"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRendererEmptyBuffer(t *testing.T) {
	r := &renderer{}
	if got := r.String(); got != "" {
		t.Errorf("String() = %q, want empty string", got)
	}
}

func TestRendererHeadingLevels(t *testing.T) {
	for level := 1; level <= 6; level++ {
		r := &renderer{}
		r.heading(level, "T")
		want := fmt.Sprintf("<h%d>T</h%d>\n", level, level)
		if got := r.String(); got != want {
			t.Errorf("heading(%d) = %q, want %q", level, got, want)
		}
	}
}
