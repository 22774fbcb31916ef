package qibla

import (
	"context"
	"math"

	"github.com/paulmach/orb"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/qibla"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/observability"
)

const (
	DefaultSegments = 32
	MaxSegments     = 512
)

type Direction struct {
	Observer     valueobject.Location
	Result       qibla.Result
	CompassPoint string
	// Rotation is set when a device heading was supplied.
	Rotation *float64
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Direction computes the Qibla for loc. The (0, 0) sentinel reported by
// devices without a GPS fix is rejected along with out-of-range input.
// A heading must be finite.
func (s *Service) Direction(_ context.Context, loc valueobject.Location, heading *float64) (*Direction, error) {
	if err := validate(loc); err != nil {
		return nil, err
	}
	if heading != nil && (math.IsNaN(*heading) || math.IsInf(*heading, 0)) {
		return nil, domain.ErrInvalidHeading
	}

	result := qibla.Compute(loc)
	observability.QiblaComputations.Inc()

	d := &Direction{
		Observer:     loc,
		Result:       result,
		CompassPoint: qibla.CompassPoint(result.Bearing),
	}
	if heading != nil {
		rotation := qibla.RelativeHeading(result.Bearing, *heading)
		d.Rotation = &rotation
	}
	return d, nil
}

// Path returns the great-circle route to the Kaaba. segments outside
// [1, MaxSegments] are clamped, zero means DefaultSegments.
func (s *Service) Path(_ context.Context, loc valueobject.Location, segments int) (orb.LineString, *qibla.Result, error) {
	if err := validate(loc); err != nil {
		return nil, nil, err
	}

	switch {
	case segments == 0:
		segments = DefaultSegments
	case segments < 1:
		segments = 1
	case segments > MaxSegments:
		segments = MaxSegments
	}

	result := qibla.Compute(loc)
	observability.QiblaComputations.Inc()

	return qibla.Path(loc, segments), &result, nil
}

func validate(loc valueobject.Location) error {
	if !loc.IsValid() || loc.IsNullIsland() {
		return domain.ErrInvalidLocation
	}
	return nil
}
