package profile

import "context"

// Repository persists natal profiles.
type Repository interface {
	Create(ctx context.Context, p Profile) error
	ListByUser(ctx context.Context, userID string) ([]Profile, error)
	Get(ctx context.Context, profileID string) (Profile, bool, error)
	Update(ctx context.Context, p Profile) error
	Delete(ctx context.Context, profileID string) error
}

// Location is a resolved birth place.
type Location struct {
	Longitude float64
	Latitude  float64
	PlaceName string
}

// Geocoder resolves a free-form place description to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (Location, error)
}
