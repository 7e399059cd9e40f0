package dom

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Name, Value  string
	OwnerElement *Node
}

// NamedNodeMap keeps attributes in insertion order, which is the order they
// are serialised in.
type NamedNodeMap struct {
	attrs             []*Attr
	AssociatedElement *Node
}

func NewNamedNodeMap(oe *Node) *NamedNodeMap {
	return &NamedNodeMap{AssociatedElement: oe}
}

func (n *NamedNodeMap) Length() int {
	return len(n.attrs)
}

func (n *NamedNodeMap) Item(i int) *Attr {
	if i < 0 || i >= len(n.attrs) {
		return nil
	}
	return n.attrs[i]
}

func (n *NamedNodeMap) Names() []string {
	names := make([]string, 0, len(n.attrs))
	for _, a := range n.attrs {
		names = append(names, a.Name)
	}
	return names
}

// HTML attribute names are matched case-insensitively.
func (n *NamedNodeMap) index(qn string) int {
	qn = lower(qn)
	for i, a := range n.attrs {
		if a.Name == qn {
			return i
		}
	}
	return -1
}

func (n *NamedNodeMap) GetNamedItem(qn string) *Attr {
	if i := n.index(qn); i >= 0 {
		return n.attrs[i]
	}
	return nil
}

// SetNamedItem stores s, replacing the value of an attribute with the same
// name in place. It returns the attribute that was replaced, if any.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	s.Name = lower(s.Name)
	s.OwnerElement = n.AssociatedElement
	if i := n.index(s.Name); i >= 0 {
		old := n.attrs[i]
		n.attrs[i] = s
		return old
	}
	n.attrs = append(n.attrs, s)
	return nil
}

func (n *NamedNodeMap) RemoveNamedItem(qn string) *Attr {
	i := n.index(qn)
	if i < 0 {
		return nil
	}
	old := n.attrs[i]
	n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
	old.OwnerElement = nil
	return old
}
