package dom

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers hold state, so each call gets its own.
func lower(s string) string { return cases.Lower(language.Und).String(s) }
func upper(s string) string { return cases.Upper(language.Und).String(s) }

// Element is an individual HTML element that gets added to the DOM.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	LocalName, TagName string
	Attributes         *NamedNodeMap
}

func newElement(od *Document, name string) *Node {
	local := lower(name)
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      upper(local),
		OwnerDocument: od,
		Element: &Element{
			LocalName: local,
			TagName:   upper(local),
		},
	}
	n.Attributes = NewNamedNodeMap(n)
	return n
}

func (e *Element) HasAttributes() bool {
	return e.Attributes.Length() > 0
}

func (e *Element) GetAttributeNames() []string {
	return e.Attributes.Names()
}

// GetAttribute returns "" for a missing attribute; use HasAttribute to tell
// the two apart.
func (e *Element) GetAttribute(qualifiedName string) string {
	if a := e.Attributes.GetNamedItem(qualifiedName); a != nil {
		return a.Value
	}
	return ""
}

func (e *Element) SetAttribute(qualifiedName, value string) {
	e.Attributes.SetNamedItem(&Attr{Name: qualifiedName, Value: value})
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	e.Attributes.RemoveNamedItem(qualifiedName)
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e.Attributes.GetNamedItem(qualifiedName) != nil
}

// ToggleAttribute is https://dom.spec.whatwg.org/#dom-element-toggleattribute
func (e *Element) ToggleAttribute(qualifiedName string, force ...bool) bool {
	present := e.HasAttribute(qualifiedName)
	want := !present
	if len(force) > 0 {
		want = force[0]
	}
	switch {
	case want && !present:
		e.SetAttribute(qualifiedName, "")
	case !want && present:
		e.RemoveAttribute(qualifiedName)
	}
	return want
}

func (e *Element) ID() string {
	return e.GetAttribute("id")
}

func (e *Element) SetID(id string) {
	e.SetAttribute("id", id)
}

// ClassList is https://dom.spec.whatwg.org/#dom-element-classlist
func (e *Element) ClassList() *DOMTokenList {
	return &DOMTokenList{element: e, attribute: "class"}
}

// Dataset returns every data-* attribute keyed by the part after the prefix.
func (e *Element) Dataset() map[string]string {
	set := map[string]string{}
	for _, name := range e.Attributes.Names() {
		if strings.HasPrefix(name, "data-") {
			set[strings.TrimPrefix(name, "data-")] = e.GetAttribute(name)
		}
	}
	return set
}
