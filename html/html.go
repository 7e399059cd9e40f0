package html

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/heathj/elemkit/class"
	"github.com/heathj/elemkit/errs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HTML owns a single host element and the props, state and callbacks that
// drive it.
type HTML struct {
	*class.Class

	doc  Document
	html Element
}

// Attribute is one name/value pair for SetAttributes.
type Attribute struct {
	Name  string
	Value interface{}
}

// New returns an HTML without an element. props, state and callbacks are
// copied. A nil doc gets a fresh in-memory document.
func New(doc Document, props, state class.Values, callbacks map[string]class.Callback) *HTML {
	if doc == nil {
		doc = NewMemoryDocument(nil)
	}
	h := &HTML{
		Class: class.New(props.Clone(), state.Clone()),
		doc:   doc,
	}
	cbs := make(map[string]class.Callback, len(callbacks))
	for name, cb := range callbacks {
		cbs[name] = cb
	}
	h.SetCallbacks(cbs)
	return h
}

// Document returns the document elements are created in and queried from.
func (h *HTML) Document() Document {
	return h.doc
}

// Element returns the owned element, or nil before CreateHTML or SetHTML.
func (h *HTML) Element() Element {
	return h.html
}

func (h *HTML) element() (Element, error) {
	if h.html == nil {
		return nil, errors.Wrap(errs.ErrNoElement, "create or set the element first")
	}
	return h.html, nil
}

// SetHTML adopts an element: the first match of a selector string, or an
// Element as is.
func (h *HTML) SetHTML(target interface{}) error {
	switch t := target.(type) {
	case string:
		if t == "" {
			return errs.Required("element query")
		}
		el, err := h.doc.QuerySelector(t)
		if err != nil {
			return errors.Wrapf(err, "query %q", t)
		}
		if el == nil {
			logrus.WithField("query", t).Warn("query did not find matches")
			return errs.NotFound("element matching", t)
		}
		h.html = el
	case Element:
		if missing(t) {
			return errs.Required("element")
		}
		h.html = t
	default:
		return errs.Required("element")
	}
	return nil
}

// SetAttribute sets one attribute. true sets it without a value, false leaves
// the element untouched and any other value is set in its fmt.Sprint form.
func (h *HTML) SetAttribute(name string, value interface{}) error {
	return h.SetAttributes(Attribute{Name: name, Value: value})
}

// SetAttributes is SetAttribute for each of attrs, in order. Nothing is set
// unless every pair is valid.
func (h *HTML) SetAttributes(attrs ...Attribute) error {
	el, err := h.element()
	if err != nil {
		return err
	}
	if len(attrs) == 0 {
		return errs.Required("attribute name")
	}
	for _, a := range attrs {
		if a.Name == "" {
			return errs.Required("attribute name")
		}
		if a.Value == nil {
			return errs.Required(fmt.Sprintf("value of attribute %q", a.Name))
		}
	}
	for _, a := range attrs {
		switch v := a.Value.(type) {
		case bool:
			if v {
				el.SetAttribute(a.Name, "")
			}
		default:
			el.SetAttribute(a.Name, fmt.Sprint(v))
		}
	}
	return nil
}

// RemoveAttribute removes each of names that is present.
func (h *HTML) RemoveAttribute(names ...string) error {
	el, err := h.element()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return errs.Required("attribute name")
	}
	for _, name := range names {
		if name == "" {
			return errs.Required("attribute name")
		}
	}
	for _, name := range names {
		if el.HasAttribute(name) {
			el.RemoveAttribute(name)
		}
	}
	return nil
}

// CreateHTML creates the element from the props: its id when the id state
// is on, a data-* attribute per dataset entry, inner as its first child and
// one class per classes entry. An empty nodeName creates a div. The previous
// element, if any, is left where it is.
func (h *HTML) CreateHTML(nodeName string, inner Element) error {
	if nodeName == "" {
		nodeName = "div"
	}
	dataset, err := h.dataset()
	if err != nil {
		return err
	}
	classes, err := h.classes()
	if err != nil {
		return err
	}

	el := h.doc.CreateElement(cases.Upper(language.Und).String(nodeName))
	h.html = el
	if id, ok := h.Prop("id"); ok && h.flag("id") {
		el.SetID(fmt.Sprint(id))
	}
	for _, key := range dataset.Keys() {
		v, _ := dataset.Get(key)
		el.SetAttribute("data-"+key, fmt.Sprint(v))
	}
	if inner != nil {
		if err := el.AppendChild(inner); err != nil {
			return errors.Wrap(err, "append inner content")
		}
	}
	if len(classes) > 0 {
		el.AddClass(classes...)
	}
	logrus.WithFields(logrus.Fields{
		"node":    nodeName,
		"dataset": len(dataset),
		"classes": len(classes),
	}).Debug("element created")
	return nil
}

// flag reports whether the state entry name is set and truthy.
func (h *HTML) flag(name string) bool {
	v, ok := h.StateValue(name)
	return ok && class.Truthy(v)
}

func (h *HTML) dataset() (class.Values, error) {
	raw, ok := h.Prop("dataset")
	if !ok || raw == nil {
		return nil, nil
	}
	switch m := raw.(type) {
	case class.Values:
		return m, nil
	case map[string]interface{}:
		return class.Values(m), nil
	case map[string]string:
		v := class.Values{}
		for key, value := range m {
			v[key] = value
		}
		return v, nil
	case map[interface{}]interface{}:
		v := class.Values{}
		for key, value := range m {
			v[fmt.Sprint(key)] = value
		}
		return v, nil
	}
	return nil, errs.Mismatch("dataset prop", "a mapping", raw)
}

func (h *HTML) classes() ([]string, error) {
	raw, ok := h.Prop("classes")
	if !ok || raw == nil {
		return nil, nil
	}
	switch c := raw.(type) {
	case []string:
		return c, nil
	case []interface{}:
		names := make([]string, 0, len(c))
		for _, name := range c {
			names = append(names, fmt.Sprint(name))
		}
		return names, nil
	case string:
		return strings.Fields(c), nil
	}
	return nil, errs.Mismatch("classes prop", "a list", raw)
}

// RemoveHTML detaches the element from its parent, which may be an element,
// a document or a fragment. An element without a parent is left alone.
func (h *HTML) RemoveHTML() error {
	el, err := h.element()
	if err != nil {
		return err
	}
	detached, err := el.Detach()
	if err != nil {
		return errors.Wrap(err, "detach element")
	}
	if !detached {
		logrus.Debug("element has no parent, nothing to remove")
	}
	return nil
}

// AppendChild appends an Element, or the element of another HTML, as the last
// child. A string replaces the whole inner markup instead.
func (h *HTML) AppendChild(content interface{}) error {
	el, err := h.element()
	if err != nil {
		return err
	}
	switch c := content.(type) {
	case nil:
		return errs.Required("element child")
	case bool:
		if !c {
			return errs.Required("element child")
		}
	case *HTML:
		if c == nil {
			return errs.Required("element child")
		}
		child, err := c.element()
		if err != nil {
			return err
		}
		return el.AppendChild(child)
	case Element:
		if missing(c) {
			return errs.Required("element child")
		}
		return el.AppendChild(c)
	case string:
		return el.SetInnerHTML(c)
	}
	return errs.Mismatch("element child", "an Element or markup", content)
}

// InsertBefore inserts newChild right before oldChild, which must already be
// a child of the element.
func (h *HTML) InsertBefore(newChild, oldChild Element) error {
	el, err := h.element()
	if err != nil {
		return err
	}
	if missing(newChild) {
		return errs.Required("new child")
	}
	if missing(oldChild) {
		return errs.Required("old child")
	}
	if !isChild(el, oldChild) {
		return errors.Wrap(errs.ErrNotFound, "old child is not a child of the element")
	}
	return el.InsertBefore(newChild, oldChild)
}

// RemoveChild removes child, which must be a child of the element.
func (h *HTML) RemoveChild(child Element) error {
	el, err := h.element()
	if err != nil {
		return err
	}
	if missing(child) {
		return errs.Required("element child")
	}
	if !isChild(el, child) {
		return errors.Wrap(errs.ErrNotFound, "not a child of the element")
	}
	return el.RemoveChild(child)
}

// missing reports a nil Element, including a typed nil pointer.
func missing(el Element) bool {
	if el == nil {
		return true
	}
	v := reflect.ValueOf(el)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func isChild(parent, child Element) bool {
	p := child.ParentNode()
	return p != nil && p.Same(parent)
}

// Switch negates the state entry name and the attribute name, each only if
// present. The two are toggled independently and can disagree.
func (h *HTML) Switch(name string) error {
	if name == "" {
		return errs.Required("state name")
	}
	el, err := h.element()
	if err != nil {
		return err
	}
	ok, err := h.HasState(name)
	if err != nil {
		return err
	}
	if ok {
		v, _ := h.StateValue(name)
		if err := h.SetState(name, !class.Truthy(v)); err != nil {
			return err
		}
	}
	if el.HasAttribute(name) {
		el.SetAttribute(name, strconv.FormatBool(!attributeTruthy(el.GetAttribute(name))))
	}
	return nil
}

// attributeTruthy reads "true"/"false" style values as booleans and treats
// any other non-empty value as set.
func attributeTruthy(v string) bool {
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v != ""
}

// Event names Change, Click, Focusout and Submit dispatch.
const (
	EventChange   = "change"
	EventClick    = "click"
	EventFocusout = "focusout"
	EventSubmit   = "submit"
)

// Change runs the "change" callback.
func (h *HTML) Change(params class.Params) error {
	return h.dispatch(EventChange, EventChange, params)
}

// Click runs the "click" callback.
func (h *HTML) Click(params class.Params) error {
	return h.dispatch(EventClick, EventClick, params)
}

// Focusout runs the "focusout" callback.
func (h *HTML) Focusout(params class.Params) error {
	return h.dispatch(EventFocusout, EventFocusout, params)
}

// Submit runs the callback registered as class.DefaultName, not "submit".
// Defaults registered under "submit" are still layered in.
func (h *HTML) Submit(params class.Params) error {
	return h.dispatch(EventSubmit, class.DefaultName, params)
}

// dispatch executes target with element set to h, then event's default
// params, then params.
func (h *HTML) dispatch(event, target string, params class.Params) error {
	defaults, _ := h.CallbackParams(event)
	payload := class.Params{"element": h}.Merge(defaults, params)
	logrus.WithFields(logrus.Fields{
		"event":    event,
		"callback": target,
	}).Debug("dispatching")
	return h.Execute(target, payload)
}
