// Package pipeline holds the page-assembly transforms that sit between
// the markdown renderer and the files written to disk: title
// extraction, template placeholder substitution, and base-path
// rewriting of the generated HTML.
package pipeline

import (
	"errors"
	"strings"
)

// ErrNoTitle indicates the markdown source has no level-1 heading.
var ErrNoTitle = errors.New("no h1 title found in markdown")

// ExtractTitle returns the text of the first level-1 heading line.
// It scans raw markdown lines independently of the renderer. A line
// that is exactly "#" yields an empty title.
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:]), nil
		}
		if line == "#" {
			return "", nil
		}
	}
	return "", ErrNoTitle
}
