package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Inline extraction patterns. Alt text and link text may not contain
// brackets; URLs may not contain parentheses.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^()]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()]*)\)`)
)

// stage is one pure transform in the inline pipeline. Each stage splits
// or rewrites only spans still tagged SpanPlain and passes everything
// else through untouched, so formatting never nests.
type stage func([]Span) ([]Span, error)

// inlineStages run in a fixed order: delimiters processed later never
// re-split content an earlier pass already tagged, and the link pass
// runs after images so bracket syntax is not captured twice.
var inlineStages = []stage{
	delimiterStage("`", SpanCode),
	delimiterStage("**", SpanBold),
	delimiterStage("_", SpanItalic),
	extractImages,
	extractLinks,
}

// Tokenize converts one run of raw inline text into an ordered span
// sequence. An odd number of delimiter occurrences within one plain
// span fails with ErrUnbalancedDelimiter.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{{Type: SpanPlain, Text: text}}

	var err error
	for _, apply := range inlineStages {
		spans, err = apply(spans)
		if err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// delimiterStage builds the split-on-delimiter pass for one marker.
// Pieces at odd split index become spanType; even pieces stay plain;
// empty pieces are dropped.
func delimiterStage(delimiter string, spanType SpanType) stage {
	return func(spans []Span) ([]Span, error) {
		var out []Span
		for _, span := range spans {
			if span.Type != SpanPlain {
				out = append(out, span)
				continue
			}

			pieces := strings.Split(span.Text, delimiter)
			if len(pieces)%2 == 0 {
				return nil, fmt.Errorf("%w: %q not closed in %q", ErrUnbalancedDelimiter, delimiter, span.Text)
			}

			for i, piece := range pieces {
				if piece == "" {
					continue
				}
				if i%2 == 0 {
					out = append(out, Span{Type: SpanPlain, Text: piece})
				} else {
					out = append(out, Span{Type: spanType, Text: piece})
				}
			}
		}
		return out, nil
	}
}

// extractImages scans plain spans for ![alt](url) occurrences.
func extractImages(spans []Span) ([]Span, error) {
	return extractTargets(spans, imagePattern, SpanImage, false)
}

// extractLinks scans plain spans for [text](url) occurrences, skipping
// matches immediately preceded by '!' so image syntax that survived the
// image pass is never re-captured as a link.
func extractLinks(spans []Span) ([]Span, error) {
	return extractTargets(spans, linkPattern, SpanLink, true)
}

func extractTargets(spans []Span, pattern *regexp.Regexp, spanType SpanType, skipBang bool) ([]Span, error) {
	var out []Span
	for _, span := range spans {
		if span.Type != SpanPlain {
			out = append(out, span)
			continue
		}

		rest := span.Text
		for {
			match := findTarget(rest, pattern, skipBang)
			if match == nil {
				break
			}
			text, url := match[1], match[2]

			pieces := strings.SplitN(rest, match[0], 2)
			if len(pieces) != 2 {
				return nil, fmt.Errorf("%w: %q in %q", ErrMalformedInlineTarget, match[0], rest)
			}
			if pieces[0] != "" {
				out = append(out, Span{Type: SpanPlain, Text: pieces[0]})
			}
			out = append(out, Span{Type: spanType, Text: text, URL: url})
			rest = pieces[1]
		}
		if rest != "" {
			out = append(out, Span{Type: SpanPlain, Text: rest})
		}
	}
	return out, nil
}

// findTarget returns the first acceptable match as [full, text, url],
// or nil. With skipBang set, a match whose preceding byte is '!' is
// rejected and scanning resumes after it.
func findTarget(text string, pattern *regexp.Regexp, skipBang bool) []string {
	offset := 0
	for {
		loc := pattern.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			return nil
		}
		start := offset + loc[0]
		if skipBang && start > 0 && text[start-1] == '!' {
			offset += loc[1]
			continue
		}
		return []string{
			text[start : offset+loc[1]],
			text[offset+loc[2] : offset+loc[3]],
			text[offset+loc[4] : offset+loc[5]],
		}
	}
}
