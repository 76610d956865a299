package md2html

import (
	"regexp"
	"strings"
)

// LineKind tags a single input line after trimming.
type LineKind int

// Line classifications, evaluated in this order (first match wins).
const (
	LineHeading LineKind = iota
	LineUnorderedItem
	LineOrderedItem
	LineBlank
	LineText
)

// List markers. The mapping is intentional: "- " collects into the
// unordered list and "* " collects into the ordered list.
const (
	unorderedMarker = "- "
	orderedMarker   = "* "
)

// headingPattern matches one to six leading '#' followed by whitespace.
// A longer run, or a run without a separator, classifies as text.
var headingPattern = regexp.MustCompile(`^(#{1,6})[ \t]`)

// classifyLine tags one line. Both ends are trimmed before matching, so
// indented markers are recognized. level is meaningful only for
// LineHeading; text carries the content with block syntax stripped.
func classifyLine(line string) (kind LineKind, level int, text string) {
	trimmed := strings.TrimSpace(line)

	if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
		level = len(m[1])
		return LineHeading, level, strings.TrimSpace(trimmed[level:])
	}
	if rest, ok := strings.CutPrefix(trimmed, unorderedMarker); ok {
		return LineUnorderedItem, 0, strings.TrimSpace(rest)
	}
	if rest, ok := strings.CutPrefix(trimmed, orderedMarker); ok {
		return LineOrderedItem, 0, strings.TrimSpace(rest)
	}
	if trimmed == "" {
		return LineBlank, 0, ""
	}
	return LineText, 0, trimmed
}

// blockState is the single open-container state. At most one container
// is open at any time; every transition closes the mismatched one first.
type blockState int

const (
	stateNone blockState = iota
	stateUnorderedList
	stateOrderedList
	stateParagraph
)

// classifier groups input lines into blocks and drives the renderer.
type classifier struct {
	state blockState
	out   *renderer
}

func newClassifier(out *renderer) *classifier {
	return &classifier{out: out}
}

// feed processes one raw input line.
func (c *classifier) feed(line string) {
	kind, level, text := classifyLine(line)

	switch kind {
	case LineHeading:
		// Headings never stay open across lines.
		c.closeOpen()
		c.out.heading(level, Transform(text))

	case LineUnorderedItem:
		if c.state != stateUnorderedList {
			c.closeOpen()
			c.out.openList(false)
			c.state = stateUnorderedList
		}
		c.out.item(Transform(text))

	case LineOrderedItem:
		if c.state != stateOrderedList {
			c.closeOpen()
			c.out.openList(true)
			c.state = stateOrderedList
		}
		c.out.item(Transform(text))

	case LineBlank:
		c.closeOpen()

	case LineText:
		if c.state != stateParagraph {
			c.closeOpen()
			c.state = stateParagraph
		}
		c.out.paragraphLine(Transform(text))
	}
}

// flush closes whatever is still open at end of input.
func (c *classifier) flush() {
	c.closeOpen()
}

// closeOpen emits the closing tag for the current container, if any,
// and resets the state to none.
func (c *classifier) closeOpen() {
	switch c.state {
	case stateUnorderedList:
		c.out.closeList(false)
	case stateOrderedList:
		c.out.closeList(true)
	case stateParagraph:
		c.out.closeParagraph()
	}
	c.state = stateNone
}
