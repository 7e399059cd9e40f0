package dom

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	*Node
	DocumentElement, Head, Body *Node
}

// NewHTMLDocument returns a document holding an empty html, head and body.
func NewHTMLDocument() *Document {
	d := &Document{
		Node: &Node{
			NodeType: DocumentNode,
			NodeName: "#document",
		},
	}
	d.DocumentElement = d.CreateElement("html")
	d.Head = d.CreateElement("head")
	d.Body = d.CreateElement("body")
	// none of these can fail: each parent is a fresh element
	d.AppendChild(d.DocumentElement)
	d.DocumentElement.AppendChild(d.Head)
	d.DocumentElement.AppendChild(d.Body)
	return d
}

// ParseHTMLDocument builds a document from markup; the markup becomes the
// body's content.
func ParseHTMLDocument(markup string) (*Document, error) {
	d := NewHTMLDocument()
	if err := d.Body.SetInnerHTML(markup); err != nil {
		return nil, errors.Wrap(err, "parse document")
	}
	return d, nil
}

// CreateElement is https://dom.spec.whatwg.org/#dom-document-createelement
// The local name is lower-cased, as it is for HTML documents.
func (d *Document) CreateElement(localName string) *Node {
	return newElement(d, localName)
}

func (d *Document) CreateTextNode(data string) *Node {
	return NewTextNode(d, data)
}

func (d *Document) CreateComment(data string) *Node {
	return NewComment(d, data)
}

// GetElementByID returns the first element in tree order whose id is id.
func (d *Document) GetElementByID(id string) *Node {
	var found *Node
	d.walk(func(n *Node) bool {
		if n.NodeType == ElementNode && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// QuerySelector is https://dom.spec.whatwg.org/#dom-parentnode-queryselector
// restricted to the grammar parseSelector understands.
func (d *Document) QuerySelector(selectors string) (*Node, error) {
	return d.Node.QuerySelector(selectors)
}

// QuerySelector returns the first descendant of n matching selectors.
func (n *Node) QuerySelector(selectors string) (*Node, error) {
	all, err := n.querySelectorAll(selectors, true)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (n *Node) QuerySelectorAll(selectors string) (NodeList, error) {
	return n.querySelectorAll(selectors, false)
}

func (n *Node) querySelectorAll(selectors string, first bool) (NodeList, error) {
	sel, err := parseSelector(selectors)
	if err != nil {
		return nil, err
	}
	var found NodeList
	for _, child := range n.ChildNodes {
		ok := child.walk(func(c *Node) bool {
			if c.NodeType == ElementNode && sel.match(c) {
				found = append(found, c)
				return !first
			}
			return true
		})
		if !ok {
			break
		}
	}
	logrus.WithField("query", selectors).Debugf("matched %d elements", len(found))
	return found, nil
}
