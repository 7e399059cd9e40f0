package html

import (
	"testing"

	"github.com/heathj/elemkit/class"
	"github.com/heathj/elemkit/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorder(into *map[string]class.Params, name string) class.Func {
	return func(p class.Params) {
		(*into)[name] = p
	}
}

func TestEvents(t *testing.T) {
	got := map[string]class.Params{}
	callbacks := map[string]class.Callback{
		EventChange:   {Func: recorder(&got, EventChange), Params: class.Params{"field": "name", "strict": true}},
		EventClick:    {Func: recorder(&got, EventClick)},
		EventFocusout: {Func: recorder(&got, EventFocusout), Params: class.Params{"validate": true}},
	}
	h := New(nil, nil, nil, callbacks)
	require.NoError(t, h.CreateHTML("input", nil))

	tests := []struct {
		event  string
		fire   func(class.Params) error
		params class.Params
		want   class.Params
	}{
		{EventChange, h.Change, class.Params{"strict": false}, class.Params{"element": h, "field": "name", "strict": false}},
		{EventChange, h.Change, nil, class.Params{"element": h, "field": "name", "strict": true}},
		{EventClick, h.Click, class.Params{"x": 3}, class.Params{"element": h, "x": 3}},
		{EventFocusout, h.Focusout, nil, class.Params{"element": h, "validate": true}},
	}
	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			require.NoError(t, tt.fire(tt.params))
			assert.Equal(t, tt.want, got[tt.event])
		})
	}
}

func TestEventsUnregistered(t *testing.T) {
	h := New(nil, nil, nil, nil)
	for name, fire := range map[string]func(class.Params) error{
		EventChange:   h.Change,
		EventClick:    h.Click,
		EventFocusout: h.Focusout,
		EventSubmit:   h.Submit,
	} {
		assert.ErrorIs(t, fire(nil), errs.ErrNotFound, name)
	}
}

func TestSubmitRunsDefault(t *testing.T) {
	got := map[string]class.Params{}
	h := New(nil, nil, nil, map[string]class.Callback{
		class.DefaultName: {Func: recorder(&got, class.DefaultName), Params: class.Params{"method": "post", "a": 0}},
		EventSubmit:       {Func: recorder(&got, EventSubmit), Params: class.Params{"a": 1}},
	})

	require.NoError(t, h.Submit(class.Params{"b": 2}))
	assert.NotContains(t, got, EventSubmit)
	assert.Equal(t, class.Params{"element": h, "method": "post", "a": 1, "b": 2}, got[class.DefaultName])
}

func TestSubmitWithoutSubmitDefaults(t *testing.T) {
	var got class.Params
	h := New(nil, nil, nil, map[string]class.Callback{
		class.DefaultName: {Func: func(p class.Params) { got = p }},
	})
	require.NoError(t, h.Submit(nil))
	assert.Equal(t, class.Params{"element": h}, got)
}

func TestCallerCanOverrideElement(t *testing.T) {
	var got class.Params
	h := New(nil, nil, nil, map[string]class.Callback{
		EventClick: {Func: func(p class.Params) { got = p }},
	})
	require.NoError(t, h.Click(class.Params{"element": "other"}))
	assert.Equal(t, "other", got["element"])
}
