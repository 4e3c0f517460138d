package seed

import "staynest/internal/models"

func price(v float64) *float64 { return &v }

func image(url string) *models.Image {
	return &models.Image{Filename: "listingimage", URL: url}
}

// SampleListings returns a fresh copy of the demo data set.
func SampleListings() []models.Listing {
	return []models.Listing{
		{
			Title:       "Cozy Beachfront Cottage",
			Description: "Escape to this charming beachfront cottage for a relaxing getaway. Enjoy stunning ocean views and easy access to the beach.",
			Image:       image("https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?auto=format&fit=crop&w=800&q=60"),
			Price:       price(1500),
			Location:    "Malibu",
			Country:     "United States",
		},
		{
			Title:       "Modern Loft in Downtown",
			Description: "Stay in the heart of the city in this stylish loft apartment. Perfect for urban explorers!",
			Image:       image("https://images.unsplash.com/photo-1501785888041-af3ef285b470?auto=format&fit=crop&w=800&q=60"),
			Price:       price(1200),
			Location:    "New York City",
			Country:     "United States",
		},
		{
			Title:       "Mountain Retreat",
			Description: "Unplug and unwind in this peaceful mountain cabin. Surrounded by nature, it's a perfect place to recharge.",
			Image:       image("https://images.unsplash.com/photo-1571896349842-33c89424de2d?auto=format&fit=crop&w=800&q=60"),
			Price:       price(1000),
			Location:    "Aspen",
			Country:     "United States",
		},
		{
			Title:       "Historic Villa in Tuscany",
			Description: "Experience the charm of Tuscany in this beautifully restored villa. Explore the rolling hills and vineyards.",
			Image:       image("https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&w=800&q=60"),
			Price:       price(2500),
			Location:    "Florence",
			Country:     "Italy",
		},
		{
			Title:       "Secluded Treehouse Getaway",
			Description: "Live among the treetops in this unique treehouse retreat. A true nature lover's paradise.",
			Image:       image("https://images.unsplash.com/photo-1488462237308-ecaa28b729d7?auto=format&fit=crop&w=800&q=60"),
			Price:       price(800),
			Location:    "Portland",
			Country:     "United States",
		},
		{
			Title:       "Beachfront Paradise",
			Description: "Step out of your door onto the sandy beach. This beachfront condo offers the ultimate relaxation.",
			Image:       image("https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?auto=format&fit=crop&w=800&q=60"),
			Price:       price(2000),
			Location:    "Cancun",
			Country:     "Mexico",
		},
		{
			Title:       "Rustic Cabin by the Lake",
			Description: "Spend your days fishing and kayaking on the serene lake. This cozy cabin is perfect for outdoor enthusiasts.",
			Image:       image("https://images.unsplash.com/photo-1470770841072-f978cf4d019e?auto=format&fit=crop&w=800&q=60"),
			Price:       price(900),
			Location:    "Lake Tahoe",
			Country:     "United States",
		},
		{
			Title:       "Luxury Penthouse with City Views",
			Description: "Indulge in luxury living with panoramic city views from this stunning penthouse apartment.",
			Image:       image("https://images.unsplash.com/photo-1622396481328-9b1b78cdd9fd?auto=format&fit=crop&w=800&q=60"),
			Price:       price(3500),
			Location:    "Los Angeles",
			Country:     "United States",
		},
		{
			Title:       "Ski-In/Ski-Out Chalet",
			Description: "Hit the slopes right from your doorstep in this ski-in/ski-out chalet in the Swiss Alps.",
			Image:       image("https://images.unsplash.com/photo-1502784444187-359ac186c5bb?auto=format&fit=crop&w=800&q=60"),
			Price:       price(3000),
			Location:    "Verbier",
			Country:     "Switzerland",
		},
		{
			Title:       "Safari Lodge in the Serengeti",
			Description: "Experience the thrill of the wild in a comfortable safari lodge. Witness the Great Migration up close.",
			Image:       image("https://images.unsplash.com/photo-1493246507139-91e8fad9978e?auto=format&fit=crop&w=800&q=60"),
			Price:       price(4000),
			Location:    "Serengeti National Park",
			Country:     "Tanzania",
		},
		{
			Title:       "Charming Studio near the Old Town",
			Description: "A compact studio for city breaks, a short walk from cafes and the old town square.",
			Location:    "Prague",
			Country:     "Czech Republic",
		},
	}
}
