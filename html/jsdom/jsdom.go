//go:build js
// +build js

// Package jsdom runs html.HTML against the browser's DOM.
package jsdom

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/heathj/elemkit/errs"
	"github.com/heathj/elemkit/html"
	"github.com/pkg/errors"
	"honnef.co/go/js/dom"
)

var (
	_ html.Document = (*Document)(nil)
	_ html.Element  = (*Element)(nil)
)

// Document wraps the window's document.
type Document struct {
	doc dom.Document
}

func NewDocument() *Document {
	return &Document{doc: dom.GetWindow().Document()}
}

func (d *Document) CreateElement(localName string) html.Element {
	return &Element{el: d.doc.CreateElement(localName)}
}

func (d *Document) QuerySelector(selectors string) (el html.Element, err error) {
	defer catch(&err)
	found := d.doc.QuerySelector(selectors)
	if found == nil {
		return nil, nil
	}
	return &Element{el: found}, nil
}

// Wrap returns an element obtained elsewhere, such as from an event target,
// as an html.Element.
func Wrap(el dom.Element) html.Element {
	return &Element{el: el}
}

type Element struct {
	el dom.Element
}

// Underlying returns the wrapped element.
func (e *Element) Underlying() dom.Element {
	return e.el
}

func (e *Element) GetAttribute(name string) string {
	return e.el.GetAttribute(name)
}

func (e *Element) SetAttribute(name, value string) {
	e.el.SetAttribute(name, value)
}

func (e *Element) HasAttribute(name string) bool {
	return e.el.HasAttribute(name)
}

func (e *Element) RemoveAttribute(name string) {
	e.el.RemoveAttribute(name)
}

func (e *Element) SetID(id string) {
	e.el.SetID(id)
}

func (e *Element) AddClass(names ...string) {
	list := e.el.Class()
	for _, name := range names {
		list.Add(name)
	}
}

func (e *Element) SetInnerHTML(markup string) (err error) {
	defer catch(&err)
	e.el.SetInnerHTML(markup)
	return nil
}

func (e *Element) ParentNode() html.Element {
	parent, ok := e.el.ParentNode().(dom.Element)
	if !ok || parent == nil {
		return nil
	}
	return &Element{el: parent}
}

func (e *Element) Detach() (detached bool, err error) {
	parent := e.el.ParentNode()
	if parent == nil || parent.Underlying() == nil {
		return false, nil
	}
	defer catch(&err)
	parent.RemoveChild(e.el)
	return true, nil
}

func (e *Element) AppendChild(child html.Element) (err error) {
	c, err := unwrap(child)
	if err != nil {
		return err
	}
	defer catch(&err)
	e.el.AppendChild(c)
	return nil
}

func (e *Element) InsertBefore(newChild, refChild html.Element) (err error) {
	n, err := unwrap(newChild)
	if err != nil {
		return err
	}
	r, err := unwrap(refChild)
	if err != nil {
		return err
	}
	defer catch(&err)
	e.el.InsertBefore(n, r)
	return nil
}

func (e *Element) RemoveChild(child html.Element) (err error) {
	c, err := unwrap(child)
	if err != nil {
		return err
	}
	defer catch(&err)
	e.el.RemoveChild(c)
	return nil
}

func (e *Element) Same(other html.Element) bool {
	o, ok := other.(*Element)
	return ok && o != nil && o.el.Underlying() == e.el.Underlying()
}

func unwrap(el html.Element) (dom.Element, error) {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return nil, errs.Mismatch("element", "a *jsdom.Element", el)
	}
	return e.el, nil
}

// catch turns a thrown DOMException into err.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(*js.Error); ok {
		*err = errors.Wrap(jsErr, "dom")
		return
	}
	panic(r)
}
