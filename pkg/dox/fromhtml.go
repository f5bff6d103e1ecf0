// fromhtml.go converts legacy HTML documentation fragments to Markdown,
// for migrating docs into the annotation dialect's output format.
package dox

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// FromHTML converts an HTML documentation fragment to Markdown.
func FromHTML(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markdown), nil
}
