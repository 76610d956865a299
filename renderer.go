package md2html

import (
	"fmt"
	"strings"
)

// contentIndent prefixes list items and paragraph lines.
const contentIndent = "    "

// renderer owns the output buffer and the tag vocabulary. Paragraph
// lines are buffered until the paragraph closes so the <br/> marker
// lands between lines, never after the last. Content is emitted
// verbatim: no HTML escaping.
type renderer struct {
	lines []string
	para  []string
}

func (r *renderer) heading(level int, text string) {
	r.lines = append(r.lines, fmt.Sprintf("<h%d>%s</h%d>", level, text, level))
}

func (r *renderer) openList(ordered bool) {
	if ordered {
		r.lines = append(r.lines, "<ol>")
	} else {
		r.lines = append(r.lines, "<ul>")
	}
}

func (r *renderer) closeList(ordered bool) {
	if ordered {
		r.lines = append(r.lines, "</ol>")
	} else {
		r.lines = append(r.lines, "</ul>")
	}
}

func (r *renderer) item(text string) {
	r.lines = append(r.lines, contentIndent+"<li>"+text+"</li>")
}

func (r *renderer) paragraphLine(text string) {
	r.para = append(r.para, text)
}

func (r *renderer) closeParagraph() {
	r.lines = append(r.lines, "<p>")
	for i, line := range r.para {
		if i < len(r.para)-1 {
			line += "<br/>"
		}
		r.lines = append(r.lines, contentIndent+line)
	}
	r.lines = append(r.lines, "</p>")
	r.para = r.para[:0]
}

// String renders the accumulated buffer. Non-empty output ends with
// exactly one newline; a document that emitted nothing renders as the
// empty string.
func (r *renderer) String() string {
	if len(r.lines) == 0 {
		return ""
	}
	return strings.Join(r.lines, "\n") + "\n"
}
