package views

import (
	"bytes"
	"io/fs"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"staynest/internal/models"
)

func TestFormatPrice(t *testing.T) {
	p := func(v float64) *float64 { return &v }

	assert.Equal(t, "", FormatPrice(nil))
	assert.Equal(t, "0", FormatPrice(p(0)))
	assert.Equal(t, "999", FormatPrice(p(999)))
	assert.Equal(t, "1,500", FormatPrice(p(1500)))
	assert.Equal(t, "1,234,567", FormatPrice(p(1234567)))
	assert.Equal(t, "12.50", FormatPrice(p(12.5)))
	assert.Equal(t, "0.25", FormatPrice(p(0.25)))

	// cents carry into the whole part
	assert.Equal(t, "2", FormatPrice(p(1.999)))
	assert.Equal(t, "1,501", FormatPrice(p(1500.996)))
	assert.Equal(t, "1,500.10", FormatPrice(p(1500.104)))

	// beyond int64
	assert.Equal(t, "10,000,000,000,000,000,000", FormatPrice(p(1e19)))
	assert.NotContains(t, FormatPrice(p(math.MaxFloat64)), "Inf")

	assert.Equal(t, "-1,500.50", FormatPrice(p(-1500.5)))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "★★★★★", Stars(9))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, FallbackImageURL, ImageURL(nil))
	assert.Equal(t, FallbackImageURL, ImageURL(&models.Image{}))
	assert.Equal(t, "u", ImageURL(&models.Image{URL: "u"}))
}

func TestTemplates_Render(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"listings/index", "listings/new", "listings/edit", "listings/show", "error"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}

	price := 800.0
	listing := models.Listing{
		ID:          primitive.NewObjectID(),
		Title:       "Treehouse",
		Description: "Among the trees",
		Price:       &price,
		Location:    "Portland",
		Country:     "United States",
	}
	review := models.Review{ID: primitive.NewObjectID(), Comment: "Magical", Rating: 4, CreatedAt: time.Now()}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "listings/show", map[string]any{
		"Title":   listing.Title,
		"Listing": &models.ListingDetails{Listing: listing, ReviewDocs: []models.Review{review}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Magical")
	assert.Contains(t, buf.String(), "/listings/"+listing.ID.Hex()+"/reviews/"+review.ID.Hex()+"?_method=DELETE")
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"css/style.css", "js/script.js"} {
		_, err := fs.Stat(Static(), name)
		assert.NoError(t, err, name)
	}
}
