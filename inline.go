package md2html

import (
	"crypto/md5" // #nosec G501 -- the digest syntax is content addressing, not cryptography
	"encoding/hex"
	"strings"
)

// Inline delimiters, rewritten in the order listed in Transform.
const (
	digestOpen    = "[["
	digestClose   = "]]"
	filterOpen    = "(("
	filterClose   = "))"
	boldDelim     = "**"
	emphasisDelim = "__"
)

// Transform rewrites the inline syntaxes inside a block's text content.
// Pass order is fixed: digest output is opaque hex that must not be
// re-scanned by the later passes. There is no escaping mechanism;
// delimiter characters appearing in prose will trigger substitution.
func Transform(text string) string {
	text = replaceSpans(text, digestOpen, digestClose, digestSpan)
	text = replaceSpans(text, filterOpen, filterClose, stripC)
	text = replaceSpans(text, boldDelim, boldDelim, func(inner string) string {
		return "<b>" + inner + "</b>"
	})
	text = replaceSpans(text, emphasisDelim, emphasisDelim, func(inner string) string {
		return "<em>" + inner + "</em>"
	})
	return text
}

// replaceSpans rewrites every non-overlapping span between open and the
// nearest following closing delimiter (shortest match, left to right).
// Unmatched delimiters are left verbatim.
func replaceSpans(s, open, closing string, rewrite func(string) string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, open)
		if start < 0 {
			break
		}
		innerStart := start + len(open)
		length := strings.Index(s[innerStart:], closing)
		if length < 0 {
			break
		}
		b.WriteString(s[:start])
		b.WriteString(rewrite(s[innerStart : innerStart+length]))
		s = s[innerStart+length+len(closing):]
	}
	b.WriteString(s)
	return b.String()
}

// digestSpan replaces span content with the lowercase hex MD5 digest of
// its exact bytes (no trimming of inner whitespace).
func digestSpan(inner string) string {
	sum := md5.Sum([]byte(inner)) // #nosec G401
	return hex.EncodeToString(sum[:])
}

// stripC deletes every ASCII 'c' and 'C' from the span content.
func stripC(inner string) string {
	return strings.Map(func(r rune) rune {
		if r == 'c' || r == 'C' {
			return -1
		}
		return r
	}, inner)
}
