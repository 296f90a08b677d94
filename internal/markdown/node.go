package markdown

import (
	"fmt"
	"strings"
)

// Attribute is a single HTML attribute. Attributes are kept in a slice
// so that insertion order survives into the rendered output.
type Attribute struct {
	Name  string
	Value string
}

// nodeKind discriminates the two node variants.
type nodeKind int

const (
	leafKind nodeKind = iota
	parentKind
)

// Node is one element of an HTML tree: either a leaf carrying a literal
// value or a parent carrying an ordered, non-empty list of children.
// The zero Node is invalid; use Text, Leaf or Parent.
type Node struct {
	kind     nodeKind
	tag      string // empty on a leaf means "render the value untagged"
	value    string
	hasValue bool // distinguishes an empty value from an absent one
	attrs    []Attribute
	children []*Node
}

// Text returns an untagged leaf that renders its value verbatim.
func Text(value string) *Node {
	return &Node{kind: leafKind, value: value, hasValue: true}
}

// Leaf returns a leaf node wrapped in the given tag.
func Leaf(tag, value string, attrs ...Attribute) *Node {
	return &Node{kind: leafKind, tag: tag, value: value, hasValue: true, attrs: attrs}
}

// Parent returns a parent node wrapping the given children.
func Parent(tag string, children []*Node, attrs ...Attribute) *Node {
	return &Node{kind: parentKind, tag: tag, attrs: attrs, children: children}
}

// HTML renders the node and its subtree to an HTML string.
// Structural violations surface as ErrStructure: a parent without
// children or without a tag, or a leaf whose value was never set.
func (n *Node) HTML() (string, error) {
	switch n.kind {
	case parentKind:
		return n.parentHTML()
	default:
		return n.leafHTML()
	}
}

func (n *Node) leafHTML() (string, error) {
	if !n.hasValue {
		return "", fmt.Errorf("%w: leaf node has no value", ErrStructure)
	}
	if n.tag == "" {
		return n.value, nil
	}
	return "<" + n.tag + n.attrHTML() + ">" + n.value + "</" + n.tag + ">", nil
}

func (n *Node) parentHTML() (string, error) {
	if n.tag == "" {
		return "", fmt.Errorf("%w: parent node has no tag", ErrStructure)
	}
	if len(n.children) == 0 {
		return "", fmt.Errorf("%w: parent node %q has no children", ErrStructure, n.tag)
	}

	var sb strings.Builder
	sb.WriteString("<" + n.tag + n.attrHTML() + ">")
	for _, child := range n.children {
		inner, err := child.HTML()
		if err != nil {
			return "", err
		}
		sb.WriteString(inner)
	}
	sb.WriteString("</" + n.tag + ">")
	return sb.String(), nil
}

// attrHTML renders the attribute segment with exactly one leading space
// when attributes are present and nothing otherwise.
func (n *Node) attrHTML() string {
	if len(n.attrs) == 0 {
		return ""
	}
	pairs := make([]string, len(n.attrs))
	for i, a := range n.attrs {
		pairs[i] = a.Name + `="` + a.Value + `"`
	}
	return " " + strings.Join(pairs, " ")
}

// Equal reports deep equality of two trees. Test helper, not part of
// the rendering contract.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind || n.tag != other.tag {
		return false
	}
	if n.hasValue != other.hasValue || n.value != other.value {
		return false
	}
	if len(n.attrs) != len(other.attrs) {
		return false
	}
	for i := range n.attrs {
		if n.attrs[i] != other.attrs[i] {
			return false
		}
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}
