// Package md2html converts a line-oriented lightweight markup dialect
// into an HTML fragment.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := md2html.New()
//	html, err := svc.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\n- item",
//	})
//
// # Dialect
//
// The dialect is deliberately small and processed as a streaming line
// transducer, not a tree parser:
//
//   - "# " through "###### " open headings h1-h6
//   - "- " items collect into <ul>, "* " items into <ol> (the asterisk
//     marks the ordered list in this dialect; keep it that way)
//   - consecutive text lines collect into a <p> with <br/> between lines
//   - blank lines close whatever container is open
//
// Within block content, four inline rewrites apply in fixed order:
// [[text]] becomes the MD5 hex digest of text, ((text)) becomes text
// with every c/C removed, **text** becomes <b>text</b>, and __text__
// becomes <em>text</em>.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Line-ending normalization
//  2. YAML front matter extraction (opt-in via Input.FrontMatter)
//  3. HTML conversion (the line engine, or Goldmark with WithCommonMark)
//  4. Standalone document wrapping (opt-in via Input.Standalone)
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2html.New(md2html.WithCommonMark())
//
// WithCommonMark swaps the line engine for a Goldmark renderer, for
// documents written in standard Markdown rather than the custom dialect.
package md2html
