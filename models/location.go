package models

import "fmt"

// Location is a validated geographic point. Construct through NewLocation;
// a zero Location is only meaningful behind a nil pointer.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// NewLocation validates the coordinate pair and returns an immutable value.
func NewLocation(lat, lng float64) (Location, error) {
	if lat < -90 || lat > 90 {
		return Location{}, fmt.Errorf("latitude %.6f out of range [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		return Location{}, fmt.Errorf("longitude %.6f out of range [-180, 180]", lng)
	}
	return Location{Latitude: lat, Longitude: lng}, nil
}
