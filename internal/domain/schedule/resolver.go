// Package schedule selects the current and next prayer of a day.
package schedule

import (
	"time"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
)

type Slot struct {
	// Index is the position of the prayer in the list passed to Resolve.
	Index  int
	Prayer entity.Prayer
	Athan  valueobject.ClockTime
}

type Selection struct {
	Current        *Slot
	Next           Slot
	NextIsTomorrow bool
	// Skipped lists the names of entries whose athan could not be parsed.
	Skipped []string
}

// Resolve picks the first slot whose athan is strictly after now as next,
// wrapping to the first slot of the list once the last athan has passed.
// Current is the slot before next, or nil before the first athan of the day.
// Slots must be ordered by athan; malformed athans are skipped.
func Resolve(slots []entity.Prayer, now valueobject.ClockTime) (*Selection, error) {
	if len(slots) == 0 {
		return nil, domain.ErrEmptySchedule
	}

	var (
		parsed  []Slot
		skipped []string
	)
	for i, p := range slots {
		athan, err := valueobject.ParseClock(p.Athan)
		if err != nil {
			skipped = append(skipped, p.Name)
			continue
		}
		parsed = append(parsed, Slot{Index: i, Prayer: p, Athan: athan})
	}

	if len(parsed) == 0 {
		return nil, domain.ErrEmptySchedule
	}

	sel := &Selection{Skipped: skipped}

	nextIdx := -1
	for i, s := range parsed {
		if s.Athan.After(now) {
			nextIdx = i
			break
		}
	}

	switch {
	case nextIdx == -1:
		sel.Next = parsed[0]
		sel.NextIsTomorrow = true
		last := parsed[len(parsed)-1]
		sel.Current = &last
	case nextIdx == 0:
		sel.Next = parsed[0]
	default:
		sel.Next = parsed[nextIdx]
		prev := parsed[nextIdx-1]
		sel.Current = &prev
	}

	return sel, nil
}

func (s *Selection) UntilNext(now valueobject.ClockTime) time.Duration {
	return now.Until(s.Next.Athan)
}

// Progress is the elapsed fraction of the current prayer period in [0, 1].
func (s *Selection) Progress(now valueobject.ClockTime) float64 {
	if s.Current == nil {
		return 0
	}
	period := s.Current.Athan.Until(s.Next.Athan)
	if period <= 0 {
		return 0
	}
	elapsed := s.Current.Athan.Until(now)
	if elapsed > period {
		return 1
	}
	return float64(elapsed) / float64(period)
}
