// Package dox translates Doxygen-style documentation comments into
// Markdown. The pipeline is three pure stages: lexing into tokens, parsing
// into grammar items, and generation with per-document section state.
package dox

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/open-cli-collective/doxymd/pkg/symbols"
)

// mdRenderer is a pre-configured goldmark instance with GFM table support,
// used for HTML previews of generated Markdown.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// Options configures a conversion.
type Options struct {
	// Symbols overrides the emoji shortcode table. Nil means the shared
	// default table.
	Symbols symbols.Table
}

// ToMarkdown converts one documentation comment body (already stripped of
// comment delimiters) to Markdown.
func ToMarkdown(input string) (string, error) {
	return ToMarkdownWithOptions(input, Options{})
}

// ToMarkdownWithOptions converts a comment body to Markdown with
// configurable options.
func ToMarkdownWithOptions(input string, opts Options) (string, error) {
	table := opts.Symbols
	if table == nil {
		table = symbols.Default()
	}

	items, err := Parse(Lex(input))
	if err != nil {
		return "", err
	}

	return Render(items, table)
}

// ToHTML converts a comment body to Markdown and renders it to HTML.
func ToHTML(input string) (string, error) {
	markdown, err := ToMarkdown(input)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
