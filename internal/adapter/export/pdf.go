package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
)

const ContentTypePDF = "application/pdf"

// PDFExporter prints a month as a single landscape table, one row per day
// with athan and iqamah columns per prayer.
type PDFExporter struct {
	now func() time.Time
}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{now: time.Now}
}

func (e *PDFExporter) ContentType() string {
	return ContentTypePDF
}

func (e *PDFExporter) Extension() string {
	return "pdf"
}

func (e *PDFExporter) Export(t *entity.Timetable) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	e.addHeader(pdf, t)
	e.addTable(pdf, t)
	e.addFooter(pdf, t)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generating pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (e *PDFExporter) addHeader(pdf *gofpdf.Fpdf, t *entity.Timetable) {
	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(0, 77, 64)
	pdf.CellFormat(0, 10, t.MosqueName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 7, fmt.Sprintf("Prayer Timetable - %s", t.Title()), "", 1, "C", false, 0, "")
	if t.Timezone != "" {
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, t.Timezone, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
}

func (e *PDFExporter) addTable(pdf *gofpdf.Fpdf, t *entity.Timetable) {
	names := t.PrayerNames()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	const dateWidth, dayWidth = 24.0, 14.0
	colWidth := usable - dateWidth - dayWidth
	if len(names) > 0 {
		colWidth /= float64(len(names) * 2)
	}

	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(0, 77, 64)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(dateWidth, 7, "Date", "1", 0, "C", true, 0, "")
		pdf.CellFormat(dayWidth, 7, "Day", "1", 0, "C", true, 0, "")
		for _, name := range names {
			pdf.CellFormat(colWidth*2, 7, name, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 7)
		pdf.SetFillColor(224, 242, 241)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(dateWidth+dayWidth, 5, "", "1", 0, "C", true, 0, "")
		for range names {
			pdf.CellFormat(colWidth, 5, "Athan", "1", 0, "C", true, 0, "")
			pdf.CellFormat(colWidth, 5, "Iqamah", "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	header()

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(40, 40, 40)
	for i, day := range t.Days {
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)

		pdf.CellFormat(dateWidth, 5.5, day.DateString(), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(dayWidth, 5.5, day.Date.Weekday().String()[:3], "1", 0, "C", fill, 0, "")
		for _, name := range names {
			p, ok := day.Find(name)
			if !ok {
				p = entity.Prayer{Athan: "-", Iqamah: "-"}
			}
			pdf.CellFormat(colWidth, 5.5, p.Athan, "1", 0, "C", fill, 0, "")
			pdf.CellFormat(colWidth, 5.5, p.Iqamah, "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

func (e *PDFExporter) addFooter(pdf *gofpdf.Fpdf, t *entity.Timetable) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(120, 120, 120)

	published := 0
	for _, day := range t.Days {
		if day.Source == entity.SourcePublished {
			published++
		}
	}

	note := fmt.Sprintf("Generated %s. %d of %d days use the published schedule; the rest are calculated.",
		e.now().Format("2006-01-02 15:04"), published, len(t.Days))
	pdf.CellFormat(0, 5, note, "", 1, "L", false, 0, "")
}
