package markdown

import (
	"regexp"
	"strings"
)

// BlockType tags a block with its structural type.
type BlockType int

const (
	BlockParagraph BlockType = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

const codeFence = "```"

var (
	orderedItemPattern = regexp.MustCompile(`^\d+\.`)
	horizontalRule     = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
)

// Segment splits a document into blocks on blank-line separators.
// Each block is trimmed of surrounding whitespace; blocks that trim to
// nothing are dropped. A zero-length document fails with
// ErrEmptyDocument.
func Segment(document string) ([]string, error) {
	if len(document) == 0 {
		return nil, ErrEmptyDocument
	}

	var blocks []string
	for _, candidate := range strings.Split(document, "\n\n") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		blocks = append(blocks, candidate)
	}
	return blocks, nil
}

// Classify assigns a block its structural type. First match wins.
// Horizontal-rule lines deliberately classify as Paragraph: the dialect
// has no rule element.
func Classify(block string) BlockType {
	if strings.HasPrefix(block, "#") {
		return BlockHeading
	}
	if strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence) {
		return BlockCode
	}
	if horizontalRule.MatchString(block) {
		return BlockParagraph
	}

	lines := strings.Split(block, "\n")
	if everyLine(lines, func(line string) bool { return strings.HasPrefix(line, ">") }) {
		return BlockQuote
	}
	if everyLine(lines, func(line string) bool { return strings.HasPrefix(line, "-") }) {
		return BlockUnorderedList
	}
	if everyLine(lines, orderedItemPattern.MatchString) {
		return BlockOrderedList
	}
	return BlockParagraph
}

// everyLine reports whether every line satisfies the marker check.
// Lines are tested independently; there is no continuation support, so
// a list item spanning physical lines demotes the block to Paragraph.
func everyLine(lines []string, match func(string) bool) bool {
	for _, line := range lines {
		if !match(line) {
			return false
		}
	}
	return true
}
