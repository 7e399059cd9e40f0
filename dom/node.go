package dom

import (
	"github.com/pkg/errors"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

var (
	// ErrHierarchyRequest is https://dom.spec.whatwg.org/#hierarchyrequesterror
	ErrHierarchyRequest = errors.New("hierarchy request")
	// ErrNotFound is https://dom.spec.whatwg.org/#notfounderror
	ErrNotFound = errors.New("node is not a child")
)

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Document
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Data is the content of text and comment nodes.
	Data string

	*Element
}

func NewTextNode(od *Document, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Data:          text,
	}
}

func NewComment(od *Document, data string) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Data:          data,
	}
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// IsConnected reports whether n is in its owner document's tree.
func (n *Node) IsConnected() bool {
	root := n.getRoot()
	return root.NodeType == DocumentNode
}

// Contains is https://dom.spec.whatwg.org/#dom-node-contains
func (n *Node) Contains(other *Node) bool {
	for i := other; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// TextContent concatenates the data of every descendant text node.
func (n *Node) TextContent() string {
	switch n.NodeType {
	case TextNode, CommentNode:
		return n.Data
	}
	s := ""
	for _, child := range n.ChildNodes {
		if child.NodeType == CommentNode {
			continue
		}
		s += child.TextContent()
	}
	return s
}

// https://dom.spec.whatwg.org/#concept-node-ensure-pre-insertion-validity
func (n *Node) ensurePreInsertionValidity(on, child *Node) error {
	switch n.NodeType {
	case DocumentNode, DocumentFragmentNode, ElementNode:
	default:
		return errors.Wrapf(ErrHierarchyRequest, "%s cannot have children", n.NodeName)
	}
	if on == nil {
		return errors.Wrap(ErrHierarchyRequest, "nil node")
	}
	if on.Contains(n) {
		return errors.Wrapf(ErrHierarchyRequest, "%s is an ancestor of %s", on.NodeName, n.NodeName)
	}
	if child != nil && child.ParentNode != n {
		return errors.Wrapf(ErrNotFound, "%s is not a child of %s", child.NodeName, n.NodeName)
	}
	return nil
}

// InsertBefore is https://dom.spec.whatwg.org/#dom-node-insertbefore
// A nil child appends.
func (n *Node) InsertBefore(on, child *Node) (*Node, error) {
	if err := n.ensurePreInsertionValidity(on, child); err != nil {
		return nil, err
	}
	if child == on {
		return on, nil
	}
	if on.ParentNode != nil {
		on.ParentNode.detach(on)
	}
	i := len(n.ChildNodes)
	if child != nil {
		i = n.ChildNodes.Contains(child)
	}
	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	n.link()
	return on, nil
}

// AppendChild is https://dom.spec.whatwg.org/#dom-node-appendchild
func (n *Node) AppendChild(on *Node) (*Node, error) {
	return n.InsertBefore(on, nil)
}

// RemoveChild is https://dom.spec.whatwg.org/#dom-node-removechild
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	if child == nil || child.ParentNode != n {
		return nil, errors.Wrapf(ErrNotFound, "not a child of %s", n.NodeName)
	}
	n.detach(child)
	return child, nil
}

// ReplaceChildren drops every child and appends nodes in order.
func (n *Node) ReplaceChildren(nodes ...*Node) error {
	for len(n.ChildNodes) > 0 {
		n.detach(n.ChildNodes[0])
	}
	for _, node := range nodes {
		if _, err := n.AppendChild(node); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) detach(child *Node) {
	n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	child.ParentNode = nil
	child.PreviousSibling = nil
	child.NextSibling = nil
	n.link()
}

// link rebuilds the first/last and sibling pointers from ChildNodes.
func (n *Node) link() {
	n.FirstChild, n.LastChild = nil, nil
	for i, child := range n.ChildNodes {
		child.PreviousSibling, child.NextSibling = nil, nil
		if i > 0 {
			child.PreviousSibling = n.ChildNodes[i-1]
		}
		if i < len(n.ChildNodes)-1 {
			child.NextSibling = n.ChildNodes[i+1]
		}
	}
	if len(n.ChildNodes) > 0 {
		n.FirstChild = n.ChildNodes[0]
		n.LastChild = n.ChildNodes[len(n.ChildNodes)-1]
	}
}

func (n *Node) getRoot() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}

	return prev
}

// walk visits n and its descendants in tree order until f returns false.
func (n *Node) walk(f func(*Node) bool) bool {
	if !f(n) {
		return false
	}
	for _, child := range n.ChildNodes {
		if !child.walk(f) {
			return false
		}
	}
	return true
}
