package timetable

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
)

//go:generate mockgen -source=service.go -destination=../../mocks/timetable_mocks.go -package=mocks

type TimetableSource interface {
	Timetable(ctx context.Context, year int, month time.Month) (*entity.Timetable, error)
}

type Renderer interface {
	Export(t *entity.Timetable) ([]byte, error)
	ContentType() string
	Extension() string
}

type File struct {
	Name        string
	ContentType string
	Body        []byte
}

type PublishedFile struct {
	Format string
	Key    string
	URL    string
}

type Service struct {
	source    TimetableSource
	renderers map[string]Renderer
	formats   []string
	storage   storage.FileStorage
	logger    *zap.Logger
}

// NewService registers renderers under their file extension; publishing
// uploads one file per renderer in the order given.
func NewService(source TimetableSource, fileStorage storage.FileStorage, logger *zap.Logger, renderers ...Renderer) *Service {
	s := &Service{
		source:    source,
		renderers: make(map[string]Renderer, len(renderers)),
		storage:   fileStorage,
		logger:    logger,
	}
	for _, r := range renderers {
		s.renderers[r.Extension()] = r
		s.formats = append(s.formats, r.Extension())
	}
	return s
}

func (s *Service) Formats() []string {
	return s.formats
}

func (s *Service) Render(ctx context.Context, year int, month time.Month, format string) (*File, error) {
	renderer, ok := s.renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	t, err := s.source.Timetable(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return s.render(t, renderer)
}

// Publish renders the month in every format and uploads the files to
// timetables/YYYY-MM.<ext>.
func (s *Service) Publish(ctx context.Context, year int, month time.Month) ([]PublishedFile, error) {
	t, err := s.source.Timetable(ctx, year, month)
	if err != nil {
		return nil, err
	}

	published := make([]PublishedFile, 0, len(s.formats))
	for _, format := range s.formats {
		file, err := s.render(t, s.renderers[format])
		if err != nil {
			return nil, err
		}

		key := "timetables/" + file.Name
		if err := s.storage.Upload(ctx, key, bytes.NewReader(file.Body), file.ContentType, int64(len(file.Body))); err != nil {
			return nil, fmt.Errorf("uploading %s: %w", key, err)
		}

		published = append(published, PublishedFile{Format: format, Key: key, URL: s.storage.GetURL(key)})
		s.logger.Info("timetable published", zap.String("key", key), zap.Int("bytes", len(file.Body)))
	}

	return published, nil
}

func (s *Service) render(t *entity.Timetable, renderer Renderer) (*File, error) {
	body, err := renderer.Export(t)
	if err != nil {
		return nil, fmt.Errorf("rendering %s timetable: %w", renderer.Extension(), err)
	}
	return &File{
		Name:        fmt.Sprintf("%04d-%02d.%s", t.Year, int(t.Month), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}
