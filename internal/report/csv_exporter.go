package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/superrjump/extractor/pkg/models"
)

// CSVExporter writes one row per question, with the bounding box spread over
// four columns for spreadsheet review.
type CSVExporter struct{}

func (e *CSVExporter) Export(extraction *models.Extraction, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"question_number", "question_text", "max_marks", "page_number", "x1", "y1", "x2", "y2"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, q := range extraction.Questions {
		row := []string{
			strconv.Itoa(q.Number),
			q.Text,
			strconv.Itoa(q.MaxMarks),
			strconv.Itoa(q.Page),
			formatCoord(q.Bounds.X1),
			formatCoord(q.Bounds.Y1),
			formatCoord(q.Bounds.X2),
			formatCoord(q.Bounds.Y2),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
