// Package markdown renders a restricted markdown dialect to HTML.
//
// The pipeline is a pure function of the input string: Segment splits
// the document into blocks, Classify tags each block, Tokenize splits
// inline text into typed spans, and ToNode assembles everything into a
// single div-rooted node tree that HTML serializes. Parsing is
// single-pass and fail-fast: a malformed construct aborts the document
// with one of the package sentinels.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

var orderedMarker = regexp.MustCompile(`^\d+\.\s*`)

// Render converts a markdown document to its HTML string.
func Render(document string) (string, error) {
	node, err := ToNode(document)
	if err != nil {
		return "", err
	}
	return node.HTML()
}

// ToNode converts a markdown document to a node tree rooted at a div.
func ToNode(document string) (*Node, error) {
	blocks, err := Segment(document)
	if err != nil {
		return nil, err
	}

	nodes := make([]*Node, 0, len(blocks))
	for _, block := range blocks {
		node, err := blockNode(block)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return Parent("div", nodes), nil
}

// blockNode strips one block's syntax and wraps its content in the tag
// its type requires.
func blockNode(block string) (*Node, error) {
	switch Classify(block) {
	case BlockHeading:
		return headingNode(block)
	case BlockCode:
		return codeNode(block)
	case BlockQuote:
		return quoteNode(block)
	case BlockUnorderedList:
		return listNode(block, "ul", stripUnorderedMarker)
	case BlockOrderedList:
		return listNode(block, "ol", stripOrderedMarker)
	case BlockParagraph:
		return paragraphNode(block)
	default:
		return paragraphNode(block)
	}
}

// headingNode counts leading '#' markers, clamping the output level to
// h6 (a level-7+ heading still renders as h6).
func headingNode(block string) (*Node, error) {
	level := 0
	for level < len(block) && block[level] == '#' {
		level++
	}
	if level > 6 {
		level = 6
	}

	text := strings.TrimSpace(strings.TrimLeft(block, "#"))
	children, err := inlineChildren(text)
	if err != nil {
		return nil, err
	}
	return Parent(fmt.Sprintf("h%d", level), children), nil
}

// codeNode strips the fences and wraps the interior verbatim: code
// block content is never tokenized.
func codeNode(block string) (*Node, error) {
	content := strings.TrimSuffix(strings.TrimPrefix(block, codeFence), codeFence)
	content = strings.TrimSpace(content)
	return Parent("pre", []*Node{Leaf("code", content)}), nil
}

// quoteNode strips a leading '>' and at most one following space from
// every line, then tokenizes the rejoined text.
func quoteNode(block string) (*Node, error) {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		line = strings.TrimPrefix(line, ">")
		line = strings.TrimPrefix(line, " ")
		lines[i] = line
	}

	children, err := inlineChildren(strings.Join(lines, "\n"))
	if err != nil {
		return nil, err
	}
	return Parent("blockquote", children), nil
}

// listNode tokenizes each non-empty line independently after stripping
// its marker and wraps every item in an li.
func listNode(block, tag string, stripMarker func(string) string) (*Node, error) {
	var items []*Node
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		children, err := inlineChildren(stripMarker(line))
		if err != nil {
			return nil, err
		}
		items = append(items, Parent("li", children))
	}
	return Parent(tag, items), nil
}

func stripUnorderedMarker(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, "-"))
}

func stripOrderedMarker(line string) string {
	return orderedMarker.ReplaceAllString(line, "")
}

// paragraphNode collapses internal newlines to single spaces so a
// multi-line paragraph renders as one flowed line, then tokenizes the
// whole block. No other block type gets this normalization.
func paragraphNode(block string) (*Node, error) {
	text := strings.ReplaceAll(block, "\n", " ")
	children, err := inlineChildren(text)
	if err != nil {
		return nil, err
	}
	return Parent("p", children), nil
}

// inlineChildren tokenizes text and converts each span to its leaf.
func inlineChildren(text string) ([]*Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	children := make([]*Node, 0, len(spans))
	for _, span := range spans {
		node, err := span.Node()
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return children, nil
}
