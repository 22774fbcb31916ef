package prayer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/export"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/schedule"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/pkg/pagination"
)

// Publish stores the mosque's own schedule for date. It replaces any earlier
// publication and takes precedence over the calculation from then on.
func (s *Service) Publish(ctx context.Context, date time.Time, prayers []entity.Prayer) (*entity.DailySchedule, error) {
	cleaned := make([]entity.Prayer, len(prayers))
	for i, p := range prayers {
		cleaned[i] = entity.Prayer{
			Name:   strings.TrimSpace(p.Name),
			Athan:  strings.TrimSpace(p.Athan),
			Iqamah: strings.TrimSpace(p.Iqamah),
		}
	}

	if err := schedule.Validate(cleaned); err != nil {
		return nil, err
	}

	day := entity.NewDailySchedule(date, s.settings.Timezone, entity.SourcePublished, cleaned)
	if err := s.repo.Upsert(ctx, day); err != nil {
		return nil, fmt.Errorf("publishing schedule: %w", err)
	}

	s.logger.Info("schedule published", zap.String("date", day.DateString()), zap.Int("prayers", len(cleaned)))
	return day, nil
}

// Unpublish removes the published schedule for date; the calculated one is
// served again afterwards.
func (s *Service) Unpublish(ctx context.Context, date time.Time) error {
	if err := s.repo.Delete(ctx, civilDate(date)); err != nil {
		return fmt.Errorf("unpublishing schedule: %w", err)
	}
	s.logger.Info("schedule unpublished", zap.String("date", date.Format(time.DateOnly)))
	return nil
}

// ListPublished returns a page of published days, newest first.
func (s *Service) ListPublished(ctx context.Context, page, perPage int) ([]entity.DailySchedule, *pagination.Info, error) {
	schedules, info, err := s.repo.ListPublished(ctx, pagination.NewParams(page, perPage))
	if err != nil {
		return nil, nil, fmt.Errorf("listing published schedules: %w", err)
	}
	for i := range schedules {
		schedules[i].Timezone = s.settings.Timezone
	}
	return schedules, info, nil
}

type ImportResult struct {
	Days    int
	Prayers int
}

// ImportCSV publishes every day found in a date,name,athan,iqamah file. Rows
// are grouped by date in file order; one invalid day rejects the whole import.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(export.CSVHeader)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", domain.ErrInvalidSchedule)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSchedule, err)
	}
	for i, column := range export.CSVHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), column) {
			return nil, fmt.Errorf("%w: header must be %s", domain.ErrInvalidSchedule, strings.Join(export.CSVHeader, ","))
		}
	}

	var (
		order  []string
		byDate = make(map[string]*entity.DailySchedule)
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSchedule, err)
		}

		line, _ := reader.FieldPos(0)
		date, err := time.Parse(time.DateOnly, strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", domain.ErrInvalidDate, line, record[0])
		}

		key := date.Format(time.DateOnly)
		day, ok := byDate[key]
		if !ok {
			day = entity.NewDailySchedule(date, s.settings.Timezone, entity.SourcePublished, nil)
			byDate[key] = day
			order = append(order, key)
		}
		day.Prayers = append(day.Prayers, entity.Prayer{
			Name:   strings.TrimSpace(record[1]),
			Athan:  strings.TrimSpace(record[2]),
			Iqamah: strings.TrimSpace(record[3]),
		})
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("%w: no rows", domain.ErrInvalidSchedule)
	}

	result := &ImportResult{}
	schedules := make([]entity.DailySchedule, 0, len(order))
	for _, key := range order {
		day := byDate[key]
		if err := schedule.Validate(day.Prayers); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		schedules = append(schedules, *day)
		result.Days++
		result.Prayers += len(day.Prayers)
	}

	if err := s.repo.UpsertMany(ctx, schedules); err != nil {
		return nil, fmt.Errorf("importing schedules: %w", err)
	}

	s.logger.Info("schedules imported", zap.Int("days", result.Days), zap.Int("prayers", result.Prayers))
	return result, nil
}
