package mdsite

import (
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// RenderHTML converts one markdown document to its HTML string. This
// is the rendering core's single entry point: a pure function with no
// shared state, safe to call from any number of goroutines.
func RenderHTML(markdownText string) (string, error) {
	return markdown.Render(markdownText)
}

// ExtractTitle returns the text of the document's first level-1
// heading. It scans raw markdown lines and does not involve the
// renderer.
func ExtractTitle(markdownText string) (string, error) {
	return pipeline.ExtractTitle(markdownText)
}
