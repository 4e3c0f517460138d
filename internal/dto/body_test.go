package dto

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	body, err := ParseJSON(strings.NewReader(`{"listing":{"title":"Loft","price":1200,"image":{"url":"u"}}}`))
	require.NoError(t, err)

	listing, ok := body["listing"].(Body)
	require.True(t, ok)
	assert.Equal(t, "Loft", listing["title"])
	assert.Equal(t, json.Number("1200"), listing["price"])

	image, ok := listing["image"].(Body)
	require.True(t, ok)
	assert.Equal(t, "u", image["url"])
}

func TestParseJSON_Empty(t *testing.T) {
	body, err := ParseJSON(strings.NewReader("  "))
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestParseJSON_Invalid(t *testing.T) {
	for _, raw := range []string{`{"listing":`, `[1,2]`, `{"a":1} {"b":2}`} {
		_, err := ParseJSON(strings.NewReader(raw))
		assert.Error(t, err, raw)
	}
}

func TestParseForm(t *testing.T) {
	values := url.Values{
		"listing[title]":        {"Loft", "ignored"},
		"listing[price]":        {"1200"},
		"listing[image][url]":   {"https://example.com/a.jpg"},
		"listing[image][extra]": {"x"},
		"_method":               {"PUT"},
		"plain":                 {"v"},
	}

	body := ParseForm(values)

	_, hasMethod := body[MethodOverrideField]
	assert.False(t, hasMethod)
	assert.Equal(t, "v", body["plain"])

	listing, ok := body["listing"].(Body)
	require.True(t, ok)
	assert.Equal(t, "Loft", listing["title"])
	assert.Equal(t, "1200", listing["price"])

	image, ok := listing["image"].(Body)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a.jpg", image["url"])
	assert.Equal(t, "x", image["extra"])
}

func TestParseForm_LeafDoesNotReplaceObject(t *testing.T) {
	body := ParseForm(url.Values{
		"listing":        {"flat"},
		"listing[title]": {"Loft"},
	})

	listing, ok := body["listing"].(Body)
	require.True(t, ok)
	assert.Equal(t, "Loft", listing["title"])
}

func TestSplitFormKey(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitFormKey("a[b][c]"))
	assert.Equal(t, []string{"a"}, splitFormKey("a"))
	assert.Equal(t, []string{"[b]"}, splitFormKey("[b]"))
	assert.Equal(t, []string{"a[b"}, splitFormKey("a[b"))
	assert.Equal(t, []string{"a[b]c]"}, splitFormKey("a[b]c]"))
}

func TestListingInput_ToUpdate(t *testing.T) {
	in := &ListingInput{Title: "T", Description: "D", Location: "L", Country: "C"}

	update := in.ToUpdate()

	require.NotNil(t, update.Title)
	assert.Equal(t, "T", *update.Title)
	assert.Nil(t, update.Price)
	assert.Nil(t, update.Image)
}

func TestReviewInput_ToModel(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))

	review := (&ReviewInput{Comment: "Nice", Rating: 4}).ToModel(now)

	assert.Equal(t, "Nice", review.Comment)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, now.UTC(), review.CreatedAt)
}
