package markdown

import "errors"

// Sentinel errors for document parsing and rendering.
// All are fail-fast: a malformed construct aborts the whole document.
var (
	ErrEmptyDocument         = errors.New("markdown document is empty")
	ErrUnbalancedDelimiter   = errors.New("unbalanced inline delimiter")
	ErrMalformedInlineTarget = errors.New("malformed inline link or image target")
	ErrStructure             = errors.New("invalid node structure")
	ErrUnknownSpan           = errors.New("unknown span type")
)
