package valueobject

import "math"

type Location struct {
	Latitude  float64
	Longitude float64
}

func NewLocation(lat, lng float64) *Location {
	return &Location{
		Latitude:  lat,
		Longitude: lng,
	}
}

func (l *Location) IsValid() bool {
	if math.IsNaN(l.Latitude) || math.IsNaN(l.Longitude) {
		return false
	}
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// IsNullIsland reports the (0,0) fix that location providers emit when they have no data.
func (l *Location) IsNullIsland() bool {
	return l.Latitude == 0 && l.Longitude == 0
}
