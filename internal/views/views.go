package views

import (
	"embed"
	"html/template"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"staynest/internal/models"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// FallbackImageURL is shown for listings without an image.
const FallbackImageURL = "https://images.unsplash.com/photo-1625505826533-5c80aca7d157?auto=format&fit=crop&w=800&q=60"

// Templates parses every view. Names follow the define blocks, e.g. "listings/show".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html", "templates/listings/*.html")
}

// Static exposes the css and js directories.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"price":    FormatPrice,
		"imageURL": ImageURL,
		"stars":    Stars,
	}
}

// FormatPrice renders a price rounded to cents with thousands separators, or "" when unset.
func FormatPrice(price *float64) string {
	if price == nil {
		return ""
	}
	p := *price
	// past 1e15 a float64 has no cents left to round
	if math.Abs(p) < 1e15 {
		p = math.Round(p*100) / 100
	}

	var b strings.Builder
	if p < 0 {
		b.WriteByte('-')
		p = -p
	}
	whole, frac := math.Modf(p)
	digits := strconv.FormatFloat(whole, 'f', 0, 64)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != 0 {
		b.WriteString(strconv.FormatFloat(frac, 'f', 2, 64)[1:])
	}
	return b.String()
}

func ImageURL(img *models.Image) string {
	if img == nil || img.URL == "" {
		return FallbackImageURL
	}
	return img.URL
}

// Stars renders a rating as filled and empty stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > models.MaxRating {
		rating = models.MaxRating
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", models.MaxRating-rating)
}
