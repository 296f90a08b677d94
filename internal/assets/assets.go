// Package assets ships the embedded fallback page template and
// stylesheet used when a site does not provide its own.
package assets

import (
	"embed"
	"errors"
	"fmt"
)

//go:embed templates/*
var templates embed.FS

//go:embed styles/*
var styles embed.FS

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("embedded template not found")
	ErrStyleNotFound    = errors.New("embedded style not found")
)

// DefaultName is the name of the template and stylesheet shipped with
// the binary.
const DefaultName = "default"

// Template returns an embedded page template by name (no extension).
func Template(name string) (string, error) {
	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// Style returns an embedded stylesheet by name (no extension).
func Style(name string) (string, error) {
	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}
