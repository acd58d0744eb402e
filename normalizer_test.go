package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tags stripped", "<p>Hi</p>", "Hi"},
		{"tag with attributes", `<img src="a.jpg" alt="x" />before<br/>after`, "beforeafter"},
		{"nested brackets left alone", "<<p>>text", "<>text"},
		{"non-breaking spaces removed", "a\u00a0b\u00a0c", "abc"},
		{"crlf becomes lf", "line one\r\nline two", "line one\nline two"},
		{"sentence break after period", "Hello world. 3.14 is pi.", "Hello world.\n3.14 is pi."},
		{"trailing whitespace consumed", "One. Two. ", "One.\nTwo.\n"},
		{"digit before period keeps line", "version 2. 0 is out", "version 2. 0 is out"},
		{"abbreviation splits too", "Mr. Smith arrived", "Mr.\nSmith arrived"},
		{"whitespace run consumed", "End.   Next", "End.\nNext"},
		{"reflow after stripping", "<p>End.</p> Next", "End.\nNext"},
		{"leading newlines stripped", "\n\n\nText", "Text"},
		{"leading newlines from stripped markup", "<p></p>\r\n\r\nText", "Text"},
		{"empty", "", ""},
	}

	n := NewNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.CleanText(tt.input))
		})
	}
}

func TestExtractImages(t *testing.T) {
	n := NewNormalizer()

	t.Run("order and duplicates preserved", func(t *testing.T) {
		introtext := `<p>a</p><img src="images/a.jpg" alt="x"><img src="b.png"><img src="images/a.jpg">`
		images := n.ExtractImages(introtext)
		assert.Equal(t, []string{"images/a.jpg", "b.png", "images/a.jpg"}, images)
	})

	t.Run("no images", func(t *testing.T) {
		assert.Empty(t, n.ExtractImages("<p>plain text</p>"))
	})

	t.Run("src must be first attribute", func(t *testing.T) {
		// The legacy export always writes src first; other orders are
		// not image references for this pipeline.
		assert.Empty(t, n.ExtractImages(`<img alt="x" src="a.jpg">`))
	})
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer()

	record := RawRecord{
		"created":   "2021-11-30 08:15:00",
		"catid":     "5",
		"title":     "First snow",
		"introtext": `<p>It snowed. All day.</p><img src="images/snow.jpg" alt="snow">`,
	}

	article, err := n.Normalize(record)
	require.NoError(t, err)

	assert.Equal(t, "First snow", article.Title)
	assert.Equal(t, "2021-11-30 08:15:00", article.Date)
	assert.Equal(t, "It snowed.\nAll day.", article.Body)
	assert.Equal(t, []string{"images/snow.jpg"}, article.Images)
}

func TestNormalizeExtractsFromOriginalText(t *testing.T) {
	n := NewNormalizer()

	// The img tag is stripped from the body, but its src survives into
	// Images because extraction runs against the original introtext.
	record := RawRecord{
		"created":   "2021-01-01 00:00:00",
		"title":     "T",
		"introtext": `before<img src="images/pic.jpg">after`,
	}

	article, err := n.Normalize(record)
	require.NoError(t, err)

	assert.Equal(t, "beforeafter", article.Body)
	assert.Equal(t, []string{"images/pic.jpg"}, article.Images)
}

func TestNormalizeMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		record RawRecord
		field  string
	}{
		{
			"missing title",
			RawRecord{"created": "2021-01-01 00:00:00", "introtext": "x"},
			"title",
		},
		{
			"missing introtext",
			RawRecord{"created": "2021-01-01 00:00:00", "title": "T"},
			"introtext",
		},
		{
			"missing created",
			RawRecord{"title": "T", "introtext": "x"},
			"created",
		},
		{
			"non-string title",
			RawRecord{"created": "2021-01-01 00:00:00", "title": 42, "introtext": "x"},
			"title",
		},
	}

	n := NewNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.Normalize(tt.record)
			require.Error(t, err)

			var schemaErr *SchemaViolationError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.field, schemaErr.Field)
		})
	}
}
