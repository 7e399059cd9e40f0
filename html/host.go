package html

// Document is the part of a host document HTML needs.
type Document interface {
	CreateElement(localName string) Element
	// QuerySelector returns nil when nothing matches.
	QuerySelector(selectors string) (Element, error)
}

// Element is the part of a host element HTML needs. Implementations wrap a
// live DOM node; two Elements wrapping the same node must be Same.
type Element interface {
	GetAttribute(name string) string
	SetAttribute(name, value string)
	HasAttribute(name string) bool
	RemoveAttribute(name string)
	SetID(id string)
	AddClass(names ...string)
	SetInnerHTML(markup string) error

	// ParentNode returns nil when the element is detached or its parent is
	// not an element.
	ParentNode() Element
	// Detach removes the element from whatever node holds it, element or
	// not, and reports whether it had a parent.
	Detach() (bool, error)
	AppendChild(child Element) error
	InsertBefore(newChild, refChild Element) error
	RemoveChild(child Element) error

	Same(other Element) bool
}
