package mdsite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// BuildPage assembles one finished HTML page from markdown source and
// a template: render the content, extract the title, substitute both
// into the template, then rewrite root-relative references to the base
// path. Pure with respect to the filesystem.
func BuildPage(markdownText, template, basePath string) (string, error) {
	content, err := markdown.Render(markdownText)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	title, err := pipeline.ExtractTitle(markdownText)
	if err != nil {
		return "", err
	}

	page := pipeline.ApplyTemplate(template, title, content)

	page, err = pipeline.RewriteBasePath(page, basePath)
	if err != nil {
		return "", fmt.Errorf("rewriting base path: %w", err)
	}
	return page, nil
}

// generatePage reads one markdown file, builds the page, and writes it
// to destPath, creating parent directories as needed.
func generatePage(fromPath, template, destPath, basePath string) error {
	markdownText, err := os.ReadFile(fromPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", fromPath, err)
	}

	page, err := BuildPage(string(markdownText), template, basePath)
	if err != nil {
		return fmt.Errorf("generating %s: %w", fromPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(destPath), err)
	}
	if err := os.WriteFile(destPath, []byte(page), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	return nil
}
