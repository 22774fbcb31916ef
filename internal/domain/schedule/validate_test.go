package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/schedule"
)

func TestValidate(t *testing.T) {
	t.Run("accepts a full day", func(t *testing.T) {
		assert.NoError(t, schedule.Validate(daySlots()))
	})

	t.Run("accepts iqamah equal to athan", func(t *testing.T) {
		err := schedule.Validate([]entity.Prayer{{Name: entity.Jummah, Athan: "1:30 PM", Iqamah: "1:30 PM"}})

		assert.NoError(t, err)
	})

	tests := []struct {
		name    string
		prayers []entity.Prayer
	}{
		{"empty", nil},
		{"blank name", []entity.Prayer{{Name: " ", Athan: "05:00", Iqamah: "05:20"}}},
		{"duplicate name", []entity.Prayer{
			{Name: "Fajr", Athan: "05:00", Iqamah: "05:20"},
			{Name: "fajr", Athan: "06:00", Iqamah: "06:20"},
		}},
		{"malformed athan", []entity.Prayer{{Name: "Fajr", Athan: "5 o'clock", Iqamah: "05:20"}}},
		{"malformed iqamah", []entity.Prayer{{Name: "Fajr", Athan: "05:00", Iqamah: ""}}},
		{"iqamah before athan", []entity.Prayer{{Name: "Fajr", Athan: "05:00", Iqamah: "04:50"}}},
		{"athans out of order", []entity.Prayer{
			{Name: "Fajr", Athan: "05:00", Iqamah: "05:20"},
			{Name: "Dhuhr", Athan: "04:00", Iqamah: "04:20"},
		}},
		{"equal athans", []entity.Prayer{
			{Name: "Fajr", Athan: "05:00", Iqamah: "05:20"},
			{Name: "Sunrise", Athan: "5:00 AM", Iqamah: "5:00 AM"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, schedule.Validate(tt.prayers), domain.ErrInvalidSchedule)
		})
	}
}
