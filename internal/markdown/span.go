package markdown

import "fmt"

// SpanType tags an inline run with its formatting variant.
type SpanType int

const (
	SpanPlain SpanType = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
	SpanImage
)

// Span is a contiguous inline run of text. URL is set only for link and
// image spans (the destination; for images the Text field is the alt
// text). Spans are transient: produced by Tokenize, consumed 1:1 into
// leaf nodes.
type Span struct {
	Type SpanType
	Text string
	URL  string
}

// Node converts the span to its leaf node.
func (s Span) Node() (*Node, error) {
	switch s.Type {
	case SpanPlain:
		return Text(s.Text), nil
	case SpanBold:
		return Leaf("b", s.Text), nil
	case SpanItalic:
		return Leaf("i", s.Text), nil
	case SpanCode:
		return Leaf("code", s.Text), nil
	case SpanLink:
		return Leaf("a", s.Text, Attribute{Name: "href", Value: s.URL}), nil
	case SpanImage:
		return Leaf("img", "", Attribute{Name: "src", Value: s.URL}, Attribute{Name: "alt", Value: s.Text}), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSpan, s.Type)
	}
}
