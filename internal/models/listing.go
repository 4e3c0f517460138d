package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const ListingsCollection = "listings"

type Image struct {
	Filename string `bson:"filename,omitempty"`
	URL      string `bson:"url,omitempty"`
}

// Listing is a rentable property. Reviews holds the ids of its reviews in display order.
type Listing struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	Image       *Image               `bson:"image,omitempty"`
	Price       *float64             `bson:"price,omitempty"`
	Location    string               `bson:"location"`
	Country     string               `bson:"country"`
	Reviews     []primitive.ObjectID `bson:"reviews"`
}

// ListingUpdate lists the fields submitted on edit; nil fields are left as stored.
type ListingUpdate struct {
	Title       *string
	Description *string
	Image       *Image
	Price       *float64
	Location    *string
	Country     *string
}

// ListingDetails is a listing with its reviews expanded, in listing order.
type ListingDetails struct {
	Listing
	ReviewDocs []Review
}
