package validator

import "staynest/internal/dto"

// ValidateListing checks a {listing: {...}} payload. The input is only returned when valid.
func (v *Validator) ValidateListing(body dto.Body) (*dto.ListingInput, FieldErrors) {
	var errs FieldErrors
	root := v.object("", body, &errs)

	var in dto.ListingInput
	if listing, ok := root.requiredObject("listing"); ok {
		in.Title = listing.requiredString("title")
		in.Description = listing.requiredString("description")

		if image, ok := listing.optionalObject("image"); ok {
			in.Image = &dto.ImageInput{
				Filename: image.optionalString("filename"),
				URL:      image.optionalString("url"),
			}
			image.done()
		}

		in.Price = listing.optionalNumber("price", "gte=0")
		in.Location = listing.requiredString("location")
		in.Country = listing.requiredString("country")
		listing.done()
	}
	root.done()

	if !errs.Valid() {
		return nil, errs
	}
	return &in, nil
}
