package class

import (
	"github.com/heathj/elemkit/errs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Func is a callback body.
type Func func(Params)

// Callback pairs a Func with the params it is called with unless the caller
// overrides them.
type Callback struct {
	Func   Func
	Params Params
}

// DefaultName is the callback registered by SetCallbacks(nil), and the one
// html.HTML.Submit executes.
const DefaultName = "default"

// LogParams is the Func given to callbacks registered without one.
func LogParams(params Params) {
	logrus.WithFields(logrus.Fields(params)).Info("callback executed")
}

// SetCallbacks registers every entry of callbacks, replacing entries with the
// same name and keeping the rest. A nil map registers DefaultName.
func (c *Class) SetCallbacks(callbacks map[string]Callback) {
	if c.callbacks == nil {
		c.callbacks = make(map[string]Callback)
	}
	if callbacks == nil {
		callbacks = map[string]Callback{DefaultName: {}}
	}
	for name, cb := range callbacks {
		if cb.Func == nil {
			cb.Func = LogParams
		}
		if cb.Params == nil {
			cb.Params = Params{}
		}
		c.callbacks[name] = cb
	}
}

// Execute calls the callback registered as name with its default params
// overlaid by params.
func (c *Class) Execute(name interface{}, params Params) error {
	key, ok := name.(string)
	if !ok || key == "" {
		return errs.Required("callback name")
	}
	cb, ok := c.callbacks[key]
	if !ok {
		logrus.WithField("callback", key).Error("callback was not found")
		return errs.NotFound("callback", key)
	}
	cb.Func(cb.Params.Merge(params))
	return nil
}

// HasCallback reports whether a callback is registered as name.
func (c *Class) HasCallback(name interface{}) (bool, error) {
	key, err := errs.Name("callback name", name)
	if err != nil {
		return false, err
	}
	if c.callbacks == nil {
		return false, errors.Wrap(errs.ErrNotInitialized, "no callbacks have been set")
	}
	_, ok := c.callbacks[key]
	return ok, nil
}

// CallbackParams returns a copy of the default params registered for name.
func (c *Class) CallbackParams(name string) (Params, bool) {
	cb, ok := c.callbacks[name]
	if !ok {
		return nil, false
	}
	return cb.Params.Merge(), true
}
