// Package qibla computes the direction and great-circle distance from an
// observer to the Kaaba.
package qibla

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
)

const EarthRadiusKm = 6371.0

// Kaaba is the fixed destination of every bearing computed here.
var Kaaba = valueobject.Location{Latitude: 21.4225, Longitude: 39.8262}

type Result struct {
	Bearing    float64
	DistanceKm float64
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Compute returns the initial great-circle bearing and the haversine distance
// from observer to the Kaaba. Callers must reject invalid coordinates first.
// At the Kaaba itself atan2(0, 0) yields a bearing of 0.
func Compute(observer valueobject.Location) Result {
	phiO := toRadians(observer.Latitude)
	phiK := toRadians(Kaaba.Latitude)
	deltaLambda := toRadians(Kaaba.Longitude - observer.Longitude)

	y := math.Sin(deltaLambda) * math.Cos(phiK)
	x := math.Cos(phiO)*math.Sin(phiK) - math.Sin(phiO)*math.Cos(phiK)*math.Cos(deltaLambda)

	return Result{
		Bearing:    Normalize(toDegrees(math.Atan2(y, x))),
		DistanceKm: haversineKm(phiO, phiK, phiK-phiO, deltaLambda),
	}
}

// RelativeHeading is the rotation a compass indicator needs so that it points
// at the Qibla while the device faces deviceHeading.
func RelativeHeading(bearing, deviceHeading float64) float64 {
	return Normalize(bearing - deviceHeading)
}

// Normalize folds any angle in degrees into [0, 360).
func Normalize(deg float64) float64 {
	n := math.Mod(math.Mod(deg, 360)+360, 360)
	if n >= 360 {
		return 0
	}
	return n
}

func CompassPoint(bearing float64) string {
	idx := int(math.Floor(Normalize(bearing)/22.5+0.5)) % len(compassPoints)
	return compassPoints[idx]
}

// Path samples the great circle from observer to the Kaaba into segments
// pieces. Points are (longitude, latitude) as GeoJSON expects.
func Path(observer valueobject.Location, segments int) orb.LineString {
	if segments < 1 {
		segments = 1
	}

	start := orb.Point{observer.Longitude, observer.Latitude}
	end := orb.Point{Kaaba.Longitude, Kaaba.Latitude}

	phi1, lambda1 := toRadians(observer.Latitude), toRadians(observer.Longitude)
	phi2, lambda2 := toRadians(Kaaba.Latitude), toRadians(Kaaba.Longitude)

	delta := haversineKm(phi1, phi2, phi2-phi1, lambda2-lambda1) / EarthRadiusKm
	sinDelta := math.Sin(delta)
	if math.Abs(sinDelta) < 1e-12 {
		// coincident or antipodal endpoints: the great circle is not unique
		return orb.LineString{start, end}
	}

	line := make(orb.LineString, 0, segments+1)
	line = append(line, start)
	for i := 1; i < segments; i++ {
		f := float64(i) / float64(segments)
		a := math.Sin((1-f)*delta) / sinDelta
		b := math.Sin(f*delta) / sinDelta

		x := a*math.Cos(phi1)*math.Cos(lambda1) + b*math.Cos(phi2)*math.Cos(lambda2)
		y := a*math.Cos(phi1)*math.Sin(lambda1) + b*math.Cos(phi2)*math.Sin(lambda2)
		z := a*math.Sin(phi1) + b*math.Sin(phi2)

		lat := math.Atan2(z, math.Sqrt(x*x+y*y))
		lng := math.Atan2(y, x)
		line = append(line, orb.Point{toDegrees(lng), toDegrees(lat)})
	}
	line = append(line, end)

	return line
}

func haversineKm(phi1, phi2, deltaPhi, deltaLambda float64) float64 {
	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
