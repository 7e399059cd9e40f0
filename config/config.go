// Package config reads element definitions from YAML.
//
// A definition file is a stream of YAML documents, one element each:
//
//	tag: form
//	parent: "#app"
//	content: <input name="q">
//	props:
//	  id: search
//	  classes: [search, wide]
//	  dataset: {kind: quick}
//	state:
//	  id: true
//	callbacks:
//	  default:
//	    handler: search
//	    params: {limit: 10}
package config

import (
	"io"
	"os"

	"github.com/heathj/elemkit/class"
	"github.com/heathj/elemkit/errs"
	"github.com/heathj/elemkit/html"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// CallbackDefinition names a handler and its default params. An empty
// Handler registers the logging default.
type CallbackDefinition struct {
	Handler string                 `yaml:"handler"`
	Params  map[string]interface{} `yaml:"params"`
}

type Definition struct {
	Tag string `yaml:"tag"`
	// Parent is a selector for the element the new one is appended to.
	Parent string `yaml:"parent"`
	// Content is inner markup set after the element is created.
	Content   string                        `yaml:"content"`
	Props     map[string]interface{}        `yaml:"props"`
	State     map[string]interface{}        `yaml:"state"`
	Callbacks map[string]CallbackDefinition `yaml:"callbacks"`
}

// Load decodes every document in r. Unknown keys are an error.
func Load(r io.Reader) ([]*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var defs []*Definition
	for {
		def := &Definition{}
		err := dec.Decode(def)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "decode definition %d", len(defs))
		}
		defs = append(defs, def)
	}
	logrus.WithField("definitions", len(defs)).Debug("definitions loaded")
	return defs, nil
}

func LoadFile(path string) ([]*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open definitions")
	}
	defer f.Close()
	defs, err := Load(f)
	return defs, errors.Wrap(err, path)
}

// BindCallbacks resolves every handler name against handlers.
func (d *Definition) BindCallbacks(handlers map[string]class.Func) (map[string]class.Callback, error) {
	cbs := make(map[string]class.Callback, len(d.Callbacks))
	for name, cd := range d.Callbacks {
		cb := class.Callback{Params: class.Params(cd.Params)}
		if cd.Handler != "" {
			f, ok := handlers[cd.Handler]
			if !ok {
				return nil, errors.Wrapf(errs.NotFound("handler", cd.Handler), "callback %q", name)
			}
			cb.Func = f
		}
		cbs[name] = cb
	}
	return cbs, nil
}

// Build creates the element d describes in doc and, when Parent is set,
// appends it there.
func (d *Definition) Build(doc html.Document, handlers map[string]class.Func) (*html.HTML, error) {
	cbs, err := d.BindCallbacks(handlers)
	if err != nil {
		return nil, err
	}
	h := html.New(doc, class.Values(d.Props), class.Values(d.State), cbs)
	if err := h.CreateHTML(d.Tag, nil); err != nil {
		return nil, errors.Wrapf(err, "create %s", d.Tag)
	}
	if d.Content != "" {
		if err := h.AppendChild(d.Content); err != nil {
			return nil, errors.Wrap(err, "set content")
		}
	}
	if d.Parent == "" {
		return h, nil
	}
	parent := html.New(h.Document(), nil, nil, nil)
	if err := parent.SetHTML(d.Parent); err != nil {
		return nil, errors.Wrap(err, "find parent")
	}
	if err := parent.AppendChild(h); err != nil {
		return nil, errors.Wrap(err, "attach to parent")
	}
	return h, nil
}

// BuildAll builds defs in order, so a later definition can use an earlier
// one as its parent. A nil doc gets one in-memory document shared by all.
func BuildAll(doc html.Document, defs []*Definition, handlers map[string]class.Func) ([]*html.HTML, error) {
	if doc == nil {
		doc = html.NewMemoryDocument(nil)
	}
	built := make([]*html.HTML, 0, len(defs))
	for i, d := range defs {
		h, err := d.Build(doc, handlers)
		if err != nil {
			return nil, errors.Wrapf(err, "definition %d", i)
		}
		built = append(built, h)
	}
	return built, nil
}
