package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	p := NewParser()

	html, err := p.Render("**Good** day\nsecond line")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>Good</strong>")
	assert.Contains(t, html, "<br />")
}

func TestRenderOmitsRawHTML(t *testing.T) {
	html, err := NewParser().Render("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestParseDocumentWithFrontMatter(t *testing.T) {
	source := strings.Join([]string{
		"---",
		"title: Morning pages",
		"mood: grateful",
		"tags: [gratitude, family]",
		"date: 2024-05-01",
		"private: true",
		"---",
		"Slept well and called my sister.",
		"",
	}, "\n")

	doc, err := NewParser().ParseDocument([]byte(source))
	require.NoError(t, err)
	assert.Equal(t, "Morning pages", doc.Meta.Title)
	assert.Equal(t, "grateful", doc.Meta.Mood)
	assert.Equal(t, []string{"gratitude", "family"}, doc.Meta.Tags)
	assert.Equal(t, "2024-05-01", doc.Meta.Date)
	assert.True(t, doc.Meta.Private)
	assert.Equal(t, "Slept well and called my sister.\n", doc.Body)
}

func TestParseDocumentWithoutFrontMatter(t *testing.T) {
	doc, err := NewParser().ParseDocument([]byte("Just text."))
	require.NoError(t, err)
	assert.Equal(t, "Just text.", doc.Body)
	assert.Empty(t, doc.Meta.Title)
}

func TestParseDocumentInvalidFrontMatter(t *testing.T) {
	_, err := NewParser().ParseDocument([]byte("---\ntags: [unclosed\n---\nbody"))
	assert.Error(t, err)
}
