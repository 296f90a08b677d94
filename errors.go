package mdsite

import "errors"

// Sentinel errors for site build operations.
var (
	ErrContentDirNotFound = errors.New("content directory not found")
	ErrTemplateNotFound   = errors.New("template file not found")
	ErrEmptyOutputDir     = errors.New("output directory cannot be empty")
)
