package dom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<nav id="top" class="bar main">
<ul><li class="item" data-k="1">a</li><li class="item active" data-k="2">b</li></ul>
</nav>
<form name="login"><input type="text" name="user"><button type="submit">go</button></form>`

func TestQuerySelector(t *testing.T) {
	d, err := ParseHTMLDocument(page)
	require.NoError(t, err)

	tests := []struct {
		sel  string
		want string
	}{
		{"#top", "nav"},
		{"nav.bar.main", "nav"},
		{"li.active", "li"},
		{"[data-k='2']", "li"},
		{"form [name=user]", "input"},
		{"button[type=submit]", "button"},
		{"NAV li", "li"},
		{"table, form", "form"},
		{"*", "html"},
	}
	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			n, err := d.QuerySelector(tt.sel)
			require.NoError(t, err)
			require.NotNil(t, n)
			assert.Equal(t, tt.want, n.LocalName)
		})
	}

	n, err := d.QuerySelector("li.active")
	require.NoError(t, err)
	assert.Equal(t, "b", n.TextContent())

	n, err = d.QuerySelector("section")
	assert.NoError(t, err)
	assert.Nil(t, n)
}

func TestQuerySelectorAll(t *testing.T) {
	d, err := ParseHTMLDocument(page)
	require.NoError(t, err)
	all, err := d.QuerySelectorAll(".item")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	all, err = d.QuerySelectorAll("form input, form button")
	require.NoError(t, err)
	assert.Equal(t, []string{"input", "button"}, names(all))
}

func TestQuerySelectorSyntax(t *testing.T) {
	d := NewHTMLDocument()
	for _, sel := range []string{"", "#", "div.", "[x", "a>b", "a,,b", "[=v]"} {
		_, err := d.QuerySelector(sel)
		assert.True(t, errors.Is(err, ErrSyntax), "%q", sel)
	}
}
