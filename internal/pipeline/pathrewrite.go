package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteBasePath prefixes root-relative href and src attributes with
// the site base path, so a site served under e.g. /my-site/ keeps its
// internal references working. With basePath "/" (or empty) the HTML
// is returned unchanged.
//
// Rewritten: any element's href or src whose value starts with a
// single "/". Left alone: absolute URLs, protocol-relative "//" values,
// anchors, and paths already relative.
func RewriteBasePath(htmlContent, basePath string) (string, error) {
	if basePath == "" || basePath == "/" {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, strings.TrimSuffix(basePath, "/"))

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and
// fragments. Returns the parsed node and whether it was a fragment.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	bodyContext := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), bodyContext)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the tree back to a string. Fragments render child
// by child to avoid gaining an <html><body> wrapper.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var sb strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&sb, c); err != nil {
				return "", err
			}
		}
		return sb.String(), nil
	}

	if err := html.Render(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// rewriteNode walks the DOM rewriting root-relative references.
func rewriteNode(n *html.Node, basePath string) {
	if n.Type == html.ElementNode {
		rewriteAttr(n, "href", basePath)
		rewriteAttr(n, "src", basePath)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, basePath)
	}
}

// rewriteAttr prefixes one attribute's value when it is root-relative.
func rewriteAttr(n *html.Node, attrName, basePath string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName {
			continue
		}
		if !isRootRelative(attr.Val) {
			continue
		}
		n.Attr[i].Val = basePath + attr.Val
	}
}

// isRootRelative reports whether the value is a root-relative path.
// Protocol-relative URLs ("//host/...") are not.
func isRootRelative(val string) bool {
	return strings.HasPrefix(val, "/") && !strings.HasPrefix(val, "//")
}
