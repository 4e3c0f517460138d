package dto

import "staynest/internal/models"

// ListingInput is the validated content of a {listing: {...}} payload.
type ListingInput struct {
	Title       string
	Description string
	Location    string
	Country     string
	Price       *float64
	Image       *ImageInput
}

type ImageInput struct {
	Filename string
	URL      string
}

func (in *ListingInput) ToModel() *models.Listing {
	return &models.Listing{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.image(),
		Price:       in.Price,
		Location:    in.Location,
		Country:     in.Country,
	}
}

// ToUpdate keeps absent optional fields nil so they are not overwritten.
func (in *ListingInput) ToUpdate() models.ListingUpdate {
	return models.ListingUpdate{
		Title:       &in.Title,
		Description: &in.Description,
		Image:       in.image(),
		Price:       in.Price,
		Location:    &in.Location,
		Country:     &in.Country,
	}
}

func (in *ListingInput) image() *models.Image {
	if in.Image == nil {
		return nil
	}
	return &models.Image{Filename: in.Image.Filename, URL: in.Image.URL}
}
