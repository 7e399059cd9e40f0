package html

import (
	"github.com/heathj/elemkit/dom"
	"github.com/heathj/elemkit/errs"
)

var (
	_ Document = (*MemoryDocument)(nil)
	_ Element  = (*MemoryElement)(nil)
)

// MemoryDocument adapts an in-memory dom.Document to Document.
type MemoryDocument struct {
	*dom.Document
}

// NewMemoryDocument wraps d, or a fresh HTML document when d is nil.
func NewMemoryDocument(d *dom.Document) *MemoryDocument {
	if d == nil {
		d = dom.NewHTMLDocument()
	}
	return &MemoryDocument{Document: d}
}

func (d *MemoryDocument) CreateElement(localName string) Element {
	return &MemoryElement{Node: d.Document.CreateElement(localName)}
}

func (d *MemoryDocument) QuerySelector(selectors string) (Element, error) {
	n, err := d.Document.QuerySelector(selectors)
	if err != nil || n == nil {
		return nil, err
	}
	return &MemoryElement{Node: n}, nil
}

// Wrap returns n as an Element.
func (d *MemoryDocument) Wrap(n *dom.Node) Element {
	return &MemoryElement{Node: n}
}

// MemoryElement adapts a dom element node to Element.
type MemoryElement struct {
	*dom.Node
}

func (e *MemoryElement) AddClass(names ...string) {
	e.ClassList().Add(names...)
}

func (e *MemoryElement) ParentNode() Element {
	if e == nil || e.Node == nil {
		return nil
	}
	if e.Node.ParentNode == nil || e.Node.ParentNode.NodeType != dom.ElementNode {
		return nil
	}
	return &MemoryElement{Node: e.Node.ParentNode}
}

func (e *MemoryElement) Detach() (bool, error) {
	parent := e.Node.ParentNode
	if parent == nil {
		return false, nil
	}
	_, err := parent.RemoveChild(e.Node)
	return true, err
}

func (e *MemoryElement) AppendChild(child Element) error {
	c, err := unwrap(child)
	if err != nil {
		return err
	}
	_, err = e.Node.AppendChild(c)
	return err
}

func (e *MemoryElement) InsertBefore(newChild, refChild Element) error {
	n, err := unwrap(newChild)
	if err != nil {
		return err
	}
	r, err := unwrap(refChild)
	if err != nil {
		return err
	}
	_, err = e.Node.InsertBefore(n, r)
	return err
}

func (e *MemoryElement) RemoveChild(child Element) error {
	c, err := unwrap(child)
	if err != nil {
		return err
	}
	_, err = e.Node.RemoveChild(c)
	return err
}

func (e *MemoryElement) Same(other Element) bool {
	o, ok := other.(*MemoryElement)
	return ok && o != nil && o.Node == e.Node
}

func unwrap(el Element) (*dom.Node, error) {
	m, ok := el.(*MemoryElement)
	if !ok || m == nil || m.Node == nil {
		return nil, errs.Mismatch("element", "a *MemoryElement", el)
	}
	return m.Node, nil
}
