package class

import (
	"testing"

	"github.com/heathj/elemkit/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPropsSingle(t *testing.T) {
	tests := []struct {
		key   string
		value interface{}
	}{
		{"id", "main"},
		{"count", 3},
		{"open", true},
		{"dataset", map[string]interface{}{"role": "menu"}},
		{"empty", nil},
	}
	c := New(nil, nil)
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			require.NoError(t, c.SetProps(tt.key, tt.value))
			ok, err := c.HasProp(tt.key)
			require.NoError(t, err)
			assert.True(t, ok)
			got, _ := c.Prop(tt.key)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestSetPropsWithoutValue(t *testing.T) {
	c := New(nil, nil)
	require.NoError(t, c.SetProps("id"))
	v, ok := c.Prop("id")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestSetPropsMerge(t *testing.T) {
	c := New(Values{"id": "a", "keep": 1}, nil)
	m := map[string]interface{}{"id": "b", "classes": []string{"x"}}

	require.NoError(t, c.SetProps(m))
	first := c.Props()
	require.NoError(t, c.SetProps(m))
	assert.Equal(t, first, c.Props())

	assert.Equal(t, Values{"id": "b", "keep": 1, "classes": []string{"x"}}, c.Props())
}

func TestSetPropsStringMap(t *testing.T) {
	c := &Class{}
	require.NoError(t, c.SetState(map[string]string{"mode": "dark"}))
	v, _ := c.StateValue("mode")
	assert.Equal(t, "dark", v)
}

func TestSetPropsWrongShape(t *testing.T) {
	c := New(Values{"id": "a"}, nil)
	err := c.SetProps(42)
	assert.ErrorIs(t, err, errs.ErrTypeMismatch)
	assert.Equal(t, Values{"id": "a"}, c.Props())

	err = c.SetState([]string{"open"})
	assert.ErrorIs(t, err, errs.ErrTypeMismatch)
	assert.Empty(t, c.State())
}

func TestHasValidation(t *testing.T) {
	c := New(Values{"id": "a"}, Values{"open": true})
	c.SetCallbacks(map[string]Callback{"click": {}})
	checks := map[string]func(interface{}) (bool, error){
		"prop":     c.HasProp,
		"state":    c.HasState,
		"callback": c.HasCallback,
	}
	for kind, check := range checks {
		t.Run(kind, func(t *testing.T) {
			_, err := check(nil)
			assert.ErrorIs(t, err, errs.ErrArgumentRequired)
			_, err = check("")
			assert.ErrorIs(t, err, errs.ErrArgumentRequired)
			_, err = check(7)
			assert.ErrorIs(t, err, errs.ErrTypeMismatch)
			ok, err := check("missing")
			assert.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestHasBeforeInitialised(t *testing.T) {
	c := &Class{}
	_, err := c.HasProp("id")
	assert.ErrorIs(t, err, errs.ErrNotInitialized)
	_, err = c.HasState("id")
	assert.ErrorIs(t, err, errs.ErrNotInitialized)
	_, err = c.HasCallback("click")
	assert.ErrorIs(t, err, errs.ErrNotInitialized)

	require.NoError(t, c.SetProps("id", "x"))
	ok, err := c.HasProp("id")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestStateIndependentOfProps(t *testing.T) {
	c := New(Values{"id": "a"}, Values{"id": false})
	p, _ := c.Prop("id")
	s, _ := c.StateValue("id")
	assert.Equal(t, "a", p)
	assert.Equal(t, false, s)

	props := c.Props()
	props["id"] = "changed"
	p, _ = c.Prop("id")
	assert.Equal(t, "a", p)
}

func TestTruthy(t *testing.T) {
	type flag bool
	tests := []struct {
		in   interface{}
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{"", false},
		{"false", true},
		{0, false},
		{1, true},
		{0.0, false},
		{uint8(2), true},
		{flag(true), true},
		{map[string]interface{}(nil), false},
		{map[string]interface{}{}, true},
		{struct{}{}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truthy(tt.in), "%#v", tt.in)
	}
}
