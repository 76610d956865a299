package md2html

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestServiceConvertFragment(t *testing.T) {
	svc := New()

	got, err := svc.Convert(context.Background(), Input{Markdown: "# Hello\n\n- one\n- two"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	want := "<h1>Hello</h1>\n<ul>\n    <li>one</li>\n    <li>two</li>\n</ul>\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestServiceConvertNormalizesLineEndings(t *testing.T) {
	svc := New()

	got, err := svc.Convert(context.Background(), Input{Markdown: "a\r\nb"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	want := "<p>\n    a<br/>\n    b\n</p>\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestServiceConvertEmptyDocument(t *testing.T) {
	svc := New()

	got, err := svc.Convert(context.Background(), Input{Markdown: ""})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if got != "" {
		t.Errorf("Convert(empty) = %q, want empty string", got)
	}
}

func TestServiceConvertStandalone(t *testing.T) {
	svc := New()

	got, err := svc.Convert(context.Background(), Input{
		Markdown:   "# H",
		Standalone: true,
		Title:      "My Doc",
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	for _, want := range []string{"<!DOCTYPE html>", "<title>My Doc</title>", "<h1>H</h1>", "</html>"} {
		if !strings.Contains(got, want) {
			t.Errorf("Convert() output missing %q:\n%s", want, got)
		}
	}
}

func TestServiceConvertStandaloneTitleFallback(t *testing.T) {
	svc := New()

	tests := []struct {
		name      string
		input     Input
		wantTitle string
	}{
		{
			name: "explicit title wins over front matter",
			input: Input{
				Markdown:    "---\ntitle: FM\n---\nbody",
				FrontMatter: true,
				Standalone:  true,
				Title:       "Explicit",
			},
			wantTitle: "<title>Explicit</title>",
		},
		{
			name: "front matter title",
			input: Input{
				Markdown:    "---\ntitle: FM\n---\nbody",
				FrontMatter: true,
				Standalone:  true,
			},
			wantTitle: "<title>FM</title>",
		},
		{
			name: "default title",
			input: Input{
				Markdown:   "body",
				Standalone: true,
			},
			wantTitle: "<title>Document</title>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Convert(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Convert() error: %v", err)
			}
			if !strings.Contains(got, tt.wantTitle) {
				t.Errorf("Convert() output missing %q:\n%s", tt.wantTitle, got)
			}
		})
	}
}

func TestServiceConvertFrontMatterStripped(t *testing.T) {
	svc := New()

	got, err := svc.Convert(context.Background(), Input{
		Markdown:    "---\ntitle: T\n---\n# H",
		FrontMatter: true,
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	want := "<h1>H</h1>\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestServiceConvertFrontMatterDisabledByDefault(t *testing.T) {
	svc := New()

	got, err := svc.Convert(context.Background(), Input{Markdown: "---\ntitle: T\n---"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	// Without the opt-in the delimiters are ordinary paragraph text.
	if !strings.Contains(got, "title: T") {
		t.Errorf("Convert() = %q, want front matter rendered as content", got)
	}
}

func TestServiceConvertFrontMatterError(t *testing.T) {
	svc := New()

	_, err := svc.Convert(context.Background(), Input{
		Markdown:    "---\ntitle: [unclosed\n---\nbody",
		FrontMatter: true,
	})
	if !errors.Is(err, ErrFrontMatter) {
		t.Errorf("err = %v, want ErrFrontMatter", err)
	}
}

func TestServiceConvertCancelledContext(t *testing.T) {
	svc := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Convert(ctx, Input{Markdown: "# H"}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
