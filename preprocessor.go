package md2html

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// crlfOrCR matches Windows and old-Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// frontMatterDelimiter opens and closes a leading YAML metadata block.
const frontMatterDelimiter = "---"

// Metadata holds document fields parsed from YAML front matter.
type Metadata struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"`
}

// ExtractFrontMatter splits a leading ----delimited YAML block from the
// content and parses it. A document without front matter (or with an
// unclosed leading delimiter) is returned untouched with zero Metadata.
func ExtractFrontMatter(content string) (Metadata, string, error) {
	var meta Metadata

	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterDelimiter {
		return meta, content, nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != frontMatterDelimiter {
			continue
		}
		block := strings.Join(lines[1:i], "\n")
		if strings.TrimSpace(block) != "" {
			if err := yamlutil.Unmarshal([]byte(block), &meta); err != nil {
				return Metadata{}, content, fmt.Errorf("%w: %v", ErrFrontMatter, err)
			}
		}
		return meta, strings.Join(lines[i+1:], "\n"), nil
	}

	return Metadata{}, content, nil
}
