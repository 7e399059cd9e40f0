package class

import (
	"github.com/heathj/elemkit/errs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Class carries props, state and named callbacks for a wrapper. The zero
// value is usable; its props and state are created on the first set.
type Class struct {
	props     Values
	state     Values
	callbacks map[string]Callback
}

// New returns a Class whose props and state are initialised with the given
// values. Either may be nil.
func New(props, state Values) *Class {
	c := &Class{}
	c.SetProps(props)
	c.SetState(state)
	return c
}

// SetProps sets a single prop when props is a string, using value[0] or nil,
// and merges every entry when props is a mapping.
func (c *Class) SetProps(props interface{}, value ...interface{}) error {
	if c.props == nil {
		c.props = Values{}
	}
	return set(c.props, "prop", props, value)
}

// HasProp reports whether a prop called name has been set.
func (c *Class) HasProp(name interface{}) (bool, error) {
	return has(c.props, "prop", name)
}

// Prop returns the prop name and whether it is set.
func (c *Class) Prop(name string) (interface{}, bool) {
	return c.props.Get(name)
}

// Props returns a copy of every prop.
func (c *Class) Props() Values {
	return c.props.Clone()
}

// SetState is SetProps for state.
func (c *Class) SetState(state interface{}, value ...interface{}) error {
	if c.state == nil {
		c.state = Values{}
	}
	return set(c.state, "state", state, value)
}

// HasState reports whether a state entry called name has been set.
func (c *Class) HasState(name interface{}) (bool, error) {
	return has(c.state, "state", name)
}

// StateValue returns the state entry name and whether it is set.
func (c *Class) StateValue(name string) (interface{}, bool) {
	return c.state.Get(name)
}

// State returns a copy of the whole state.
func (c *Class) State() Values {
	return c.state.Clone()
}

func set(dst Values, kind string, in interface{}, value []interface{}) error {
	if in == nil {
		return nil
	}
	if key, ok := in.(string); ok {
		if key == "" {
			return errs.Required(kind + " name")
		}
		var v interface{}
		if len(value) > 0 {
			v = value[0]
		}
		dst.Set(key, v)
		return nil
	}
	items, ok := toValues(in)
	if !ok {
		logrus.WithField("kind", kind).Warnf("not setting any %s from %T", kind, in)
		return errs.Mismatch(kind, "a string or a mapping", in)
	}
	dst.Merge(items)
	return nil
}

func has(src Values, kind string, name interface{}) (bool, error) {
	key, err := errs.Name(kind+" name", name)
	if err != nil {
		return false, err
	}
	if src == nil {
		return false, errors.Wrapf(errs.ErrNotInitialized, "no %s has been set", kind)
	}
	return src.Has(key), nil
}
