// Package export renders month timetables as downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
)

const ContentTypeCSV = "text/csv; charset=utf-8"

// CSVHeader is shared with the schedule import so an exported month can be
// edited and published back.
var CSVHeader = []string{"date", "name", "athan", "iqamah"}

type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) ContentType() string {
	return ContentTypeCSV
}

func (e *CSVExporter) Extension() string {
	return "csv"
}

// Export writes one row per prayer.
func (e *CSVExporter) Export(t *entity.Timetable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}

	for _, day := range t.Days {
		date := day.DateString()
		for _, p := range day.Prayers {
			if err := w.Write([]string{date, p.Name, p.Athan, p.Iqamah}); err != nil {
				return nil, fmt.Errorf("writing csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}
