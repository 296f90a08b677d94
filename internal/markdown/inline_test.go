package markdown

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "plain text only",
			input: "just words",
			want:  []Span{{Type: SpanPlain, Text: "just words"}},
		},
		{
			name:  "bold in the middle",
			input: "This is **bold** text",
			want: []Span{
				{Type: SpanPlain, Text: "This is "},
				{Type: SpanBold, Text: "bold"},
				{Type: SpanPlain, Text: " text"},
			},
		},
		{
			name:  "italic with underscores",
			input: "an _italic_ word",
			want: []Span{
				{Type: SpanPlain, Text: "an "},
				{Type: SpanItalic, Text: "italic"},
				{Type: SpanPlain, Text: " word"},
			},
		},
		{
			name:  "inline code",
			input: "run `go vet` first",
			want: []Span{
				{Type: SpanPlain, Text: "run "},
				{Type: SpanCode, Text: "go vet"},
				{Type: SpanPlain, Text: " first"},
			},
		},
		{
			name:  "code pass protects inner delimiters",
			input: "use `**argv` here",
			want: []Span{
				{Type: SpanPlain, Text: "use "},
				{Type: SpanCode, Text: "**argv"},
				{Type: SpanPlain, Text: " here"},
			},
		},
		{
			name:  "delimiter at start drops empty piece",
			input: "**bold** tail",
			want: []Span{
				{Type: SpanBold, Text: "bold"},
				{Type: SpanPlain, Text: " tail"},
			},
		},
		{
			name:  "two bold runs",
			input: "**a** and **b**",
			want: []Span{
				{Type: SpanBold, Text: "a"},
				{Type: SpanPlain, Text: " and "},
				{Type: SpanBold, Text: "b"},
			},
		},
		{
			name:  "image",
			input: "look ![a cat](/img/cat.png) here",
			want: []Span{
				{Type: SpanPlain, Text: "look "},
				{Type: SpanImage, Text: "a cat", URL: "/img/cat.png"},
				{Type: SpanPlain, Text: " here"},
			},
		},
		{
			name:  "link",
			input: "see [docs](https://example.com)",
			want: []Span{
				{Type: SpanPlain, Text: "see "},
				{Type: SpanLink, Text: "docs", URL: "https://example.com"},
			},
		},
		{
			name:  "image before link precedence",
			input: "![x](u1) and [y](u2)",
			want: []Span{
				{Type: SpanImage, Text: "x", URL: "u1"},
				{Type: SpanPlain, Text: " and "},
				{Type: SpanLink, Text: "y", URL: "u2"},
			},
		},
		{
			name:  "link at end with trailing text after earlier link",
			input: "[a](1) mid [b](2) end",
			want: []Span{
				{Type: SpanLink, Text: "a", URL: "1"},
				{Type: SpanPlain, Text: " mid "},
				{Type: SpanLink, Text: "b", URL: "2"},
				{Type: SpanPlain, Text: " end"},
			},
		},
		{
			name:  "all variants together",
			input: "This is **text** with an _italic_ word and a `code block` and an ![alt text](https://example.com/img.jpeg) and a [link](https://example.com)",
			want: []Span{
				{Type: SpanPlain, Text: "This is "},
				{Type: SpanBold, Text: "text"},
				{Type: SpanPlain, Text: " with an "},
				{Type: SpanItalic, Text: "italic"},
				{Type: SpanPlain, Text: " word and a "},
				{Type: SpanCode, Text: "code block"},
				{Type: SpanPlain, Text: " and an "},
				{Type: SpanImage, Text: "alt text", URL: "https://example.com/img.jpeg"},
				{Type: SpanPlain, Text: " and a "},
				{Type: SpanLink, Text: "link", URL: "https://example.com"},
			},
		},
		{
			name:  "empty input yields no spans",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			assertSpans(t, got, tt.want)
		})
	}
}

func TestTokenizeUnbalancedDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		delimiter string
	}{
		{name: "lone backtick", input: "has `one backtick", delimiter: "`"},
		{name: "unclosed bold", input: "is **never closed", delimiter: "**"},
		{name: "three italics", input: "_a_ and _b", delimiter: "_"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Tokenize(tt.input)
			if !errors.Is(err, ErrUnbalancedDelimiter) {
				t.Fatalf("Tokenize() error = %v, want ErrUnbalancedDelimiter", err)
			}
			if !strings.Contains(err.Error(), tt.delimiter) {
				t.Errorf("error %q does not name delimiter %q", err, tt.delimiter)
			}
		})
	}
}

// Balanced delimiter counts yield exactly n/2 typed spans; the typed
// spans never contain the delimiter.
func TestTokenizeBalancedCounts(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 6} {
		n := n
		input := strings.Repeat("x **b** ", n/2)
		got, err := Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q) error = %v", input, err)
		}

		bold := 0
		for _, span := range got {
			if span.Type == SpanBold {
				bold++
			}
			if strings.Contains(span.Text, "**") {
				t.Errorf("span %q still contains delimiter", span.Text)
			}
		}
		if bold != n/2 {
			t.Errorf("got %d bold spans for %d delimiters, want %d", bold, n, n/2)
		}
	}
}

func TestSpanNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span Span
		want *Node
	}{
		{
			name: "plain to untagged leaf",
			span: Span{Type: SpanPlain, Text: "hi"},
			want: Text("hi"),
		},
		{
			name: "bold",
			span: Span{Type: SpanBold, Text: "hi"},
			want: Leaf("b", "hi"),
		},
		{
			name: "italic",
			span: Span{Type: SpanItalic, Text: "hi"},
			want: Leaf("i", "hi"),
		},
		{
			name: "code",
			span: Span{Type: SpanCode, Text: "hi"},
			want: Leaf("code", "hi"),
		},
		{
			name: "link carries href",
			span: Span{Type: SpanLink, Text: "docs", URL: "https://example.com"},
			want: Leaf("a", "docs", Attribute{Name: "href", Value: "https://example.com"}),
		},
		{
			name: "image carries src and alt with empty value",
			span: Span{Type: SpanImage, Text: "a cat", URL: "/cat.png"},
			want: Leaf("img", "", Attribute{Name: "src", Value: "/cat.png"}, Attribute{Name: "alt", Value: "a cat"}),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.span.Node()
			if err != nil {
				t.Fatalf("Node() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Node() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpanNodeUnknownType(t *testing.T) {
	t.Parallel()

	if _, err := (Span{Type: SpanType(99)}).Node(); !errors.Is(err, ErrUnknownSpan) {
		t.Errorf("Node() error = %v, want ErrUnknownSpan", err)
	}
}

func assertSpans(t *testing.T, got, want []Span) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d spans %+v, want %d %+v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("span[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
