package class

import (
	"fmt"
	"reflect"
	"sort"
)

// Values is a string keyed bag used for both props and state.
type Values map[string]interface{}

// Params are the arguments handed to a callback.
type Params map[string]interface{}

func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

func (v Values) Get(key string) (interface{}, bool) {
	value, ok := v[key]
	return value, ok
}

func (v Values) Set(key string, value interface{}) {
	v[key] = value
}

// Merge copies every entry of items into v, overwriting existing keys.
func (v Values) Merge(items map[string]interface{}) {
	for key, value := range items {
		v[key] = value
	}
}

func (v Values) Clone() Values {
	c := make(Values, len(v))
	c.Merge(v)
	return c
}

// Keys returns the keys of v in sorted order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a new Params holding p overlaid with each of layers in turn;
// later layers win.
func (p Params) Merge(layers ...Params) Params {
	merged := make(Params, len(p))
	for key, value := range p {
		merged[key] = value
	}
	for _, layer := range layers {
		for key, value := range layer {
			merged[key] = value
		}
	}
	return merged
}

// Truthy reports whether value counts as set when used as a flag. nil, false,
// zero numbers, "" and nil maps or slices do not.
func Truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Ptr, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() != 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return true
}

// toValues accepts the mapping shapes props and state arrive in, including
// the ones yaml and json decoders produce.
func toValues(in interface{}) (Values, bool) {
	switch m := in.(type) {
	case Values:
		return m, true
	case map[string]interface{}:
		return Values(m), true
	case Params:
		return Values(m), true
	case map[string]string:
		v := make(Values, len(m))
		for key, value := range m {
			v[key] = value
		}
		return v, true
	case map[interface{}]interface{}:
		v := make(Values, len(m))
		for key, value := range m {
			v[fmt.Sprint(key)] = value
		}
		return v, true
	}
	return nil, false
}
