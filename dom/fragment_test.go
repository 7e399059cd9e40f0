package dom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInnerHTMLRoundTrip(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>one</p><p>two</p>", "<p>one</p><p>two</p>"},
		{"<P CLASS=x>shout</P>", `<p class="x">shout</p>`},
		{"<br><img src='a.png'>", `<br><img src="a.png">`},
		{"<span title='a &quot;b&quot;'>&lt;tag&gt; &amp;</span>", `<span title="a &quot;b&quot;">&lt;tag&gt; &amp;</span>`},
		{"<!-- note --><b>x</b>", "<!-- note --><b>x</b>"},
		{"<ul><li>a<li>b</ul>", "<ul><li>a</li><li>b</li></ul>"},
		{"<script>if (a < b) {}</script>", "<script>if (a < b) {}</script>"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d := NewHTMLDocument()
			div := d.CreateElement("div")
			require.NoError(t, div.SetInnerHTML(tt.in))
			assert.Equal(t, tt.out, div.InnerHTML())
			checkLinks(t, div)
		})
	}
}

func TestSetInnerHTMLReplacesChildren(t *testing.T) {
	d := NewHTMLDocument()
	div := d.CreateElement("div")
	old := d.CreateElement("span")
	_, err := div.AppendChild(old)
	require.NoError(t, err)

	require.NoError(t, div.SetInnerHTML("<em>new</em>"))
	assert.Nil(t, old.ParentNode)
	require.Len(t, div.ChildNodes, 1)
	assert.Equal(t, "em", div.FirstChild.LocalName)
	assert.Same(t, d, div.FirstChild.OwnerDocument)
	assert.Equal(t, "new", div.TextContent())
}

func TestSetInnerHTMLOnText(t *testing.T) {
	d := NewHTMLDocument()
	err := d.CreateTextNode("x").SetInnerHTML("<b></b>")
	assert.True(t, errors.Is(err, ErrHierarchyRequest))
}

func TestOuterHTML(t *testing.T) {
	d, err := ParseHTMLDocument(`<form id="f"><input name="q"></form>`)
	require.NoError(t, err)
	form := d.GetElementByID("f")
	require.NotNil(t, form)
	assert.Equal(t, `<form id="f"><input name="q"></form>`, form.OuterHTML())
	assert.Equal(t, `<html><head></head><body><form id="f"><input name="q"></form></body></html>`, d.OuterHTML())
}
