package response

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/qibla"
	qiblauc "github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/qibla"
)

type QiblaResponse struct {
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Bearing      float64  `json:"bearing"`
	DistanceKm   float64  `json:"distance_km"`
	CompassPoint string   `json:"compass_point"`
	Rotation     *float64 `json:"rotation,omitempty"`
}

func QiblaFromDirection(d *qiblauc.Direction) QiblaResponse {
	return QiblaResponse{
		Latitude:     d.Observer.Latitude,
		Longitude:    d.Observer.Longitude,
		Bearing:      d.Result.Bearing,
		DistanceKm:   d.Result.DistanceKm,
		CompassPoint: d.CompassPoint,
		Rotation:     d.Rotation,
	}
}

// QiblaPathFeature wraps the great-circle route as a GeoJSON Feature whose
// properties carry the bearing and distance.
func QiblaPathFeature(path orb.LineString, result *qibla.Result) *geojson.Feature {
	feature := geojson.NewFeature(path)
	feature.Properties["bearing"] = result.Bearing
	feature.Properties["distance_km"] = result.DistanceKm
	feature.Properties["destination"] = "Kaaba"
	return feature
}
