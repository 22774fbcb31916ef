package schedule

import (
	"fmt"
	"strings"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
)

// Validate checks a schedule before it is published: at least one prayer,
// unique non-empty names, parseable times, iqamah not before athan and
// athans in ascending order.
func Validate(prayers []entity.Prayer) error {
	if len(prayers) == 0 {
		return fmt.Errorf("%w: no prayers", domain.ErrInvalidSchedule)
	}

	seen := make(map[string]bool, len(prayers))
	var previous *valueobject.ClockTime

	for _, p := range prayers {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return fmt.Errorf("%w: prayer without a name", domain.ErrInvalidSchedule)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("%w: %s listed twice", domain.ErrInvalidSchedule, name)
		}
		seen[key] = true

		athan, err := valueobject.ParseClock(p.Athan)
		if err != nil {
			return fmt.Errorf("%w: %s athan: %w", domain.ErrInvalidSchedule, name, err)
		}
		iqamah, err := valueobject.ParseClock(p.Iqamah)
		if err != nil {
			return fmt.Errorf("%w: %s iqamah: %w", domain.ErrInvalidSchedule, name, err)
		}

		if iqamah.Before(athan) {
			return fmt.Errorf("%w: %s iqamah %s is before athan %s", domain.ErrInvalidSchedule, name, iqamah, athan)
		}
		if previous != nil && !athan.After(*previous) {
			return fmt.Errorf("%w: %s athan %s is not after the previous prayer", domain.ErrInvalidSchedule, name, athan)
		}
		previous = &athan
	}

	return nil
}
