package dom

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

// https://html.spec.whatwg.org/#void-elements
func isVoid(localName string) bool {
	switch localName {
	case "area", "base", "br", "col", "embed", "hr", "img", "input", "link",
		"meta", "source", "track", "wbr":
		return true
	}
	return false
}

// InnerHTML is https://html.spec.whatwg.org/#serialising-html-fragments
func (n *Node) InnerHTML() string {
	var b strings.Builder
	for _, child := range n.ChildNodes {
		serializeNode(&b, child)
	}
	return b.String()
}

// OuterHTML serialises n together with its children.
func (n *Node) OuterHTML() string {
	var b strings.Builder
	serializeNode(&b, n)
	return b.String()
}

func serializeNode(b *strings.Builder, n *Node) {
	switch n.NodeType {
	case ElementNode:
		b.WriteString("<" + n.LocalName)
		for _, name := range n.Attributes.Names() {
			b.WriteString(" " + name + "=\"" + escapeString(n.GetAttribute(name), true) + "\"")
		}
		b.WriteString(">")
		if isVoid(n.LocalName) {
			return
		}
		for _, child := range n.ChildNodes {
			serializeNode(b, child)
		}
		b.WriteString("</" + n.LocalName + ">")
	case TextNode:
		if n.ParentNode != nil && n.ParentNode.NodeType == ElementNode {
			switch n.ParentNode.LocalName {
			case "style", "script", "xmp", "iframe", "noembed", "noframes", "plaintext":
				b.WriteString(n.Data)
				return
			}
		}
		b.WriteString(escapeString(n.Data, false))
	case CommentNode:
		b.WriteString("<!--" + n.Data + "-->")
	case DocumentNode, DocumentFragmentNode:
		for _, child := range n.ChildNodes {
			serializeNode(b, child)
		}
	}
}

// SetInnerHTML replaces every child of n with the nodes parsed from markup,
// using n as the fragment parsing context.
func (n *Node) SetInnerHTML(markup string) error {
	if n.NodeType != ElementNode {
		return errors.Wrapf(ErrHierarchyRequest, "cannot set inner HTML of %s", n.NodeName)
	}
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     n.LocalName,
		DataAtom: atom.Lookup([]byte(n.LocalName)),
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return errors.Wrap(err, "parse fragment")
	}
	nodes := make([]*Node, 0, len(parsed))
	for _, p := range parsed {
		if c := n.OwnerDocument.importNode(p); c != nil {
			nodes = append(nodes, c)
		}
	}
	return n.ReplaceChildren(nodes...)
}

// importNode converts a parsed node and its subtree into nodes owned by d.
// Doctypes and other node kinds that cannot appear in a fragment are
// dropped.
func (d *Document) importNode(p *html.Node) *Node {
	var n *Node
	switch p.Type {
	case html.ElementNode:
		n = d.CreateElement(p.Data)
		for _, a := range p.Attr {
			n.SetAttribute(a.Key, a.Val)
		}
	case html.TextNode:
		return d.CreateTextNode(p.Data)
	case html.CommentNode:
		return d.CreateComment(p.Data)
	default:
		return nil
	}
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if child := d.importNode(c); child != nil {
			n.ChildNodes = append(n.ChildNodes, child)
			child.ParentNode = n
		}
	}
	n.link()
	return n
}
