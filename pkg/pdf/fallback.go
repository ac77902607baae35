package pdf

import (
	"strings"
	"unicode/utf8"

	"github.com/superrjump/extractor/pkg/models"
)

const (
	minFallbackLineLen = 20
	maxFallbackLines   = 50
	fallbackLinesPage  = 10
)

// fallbackSegment is the degraded strategy used when no header pattern
// matched anywhere in the document. It keeps the first 50 lines longer than
// 20 characters and emits one record per line. Page numbers are an estimate
// of 10 lines per page, not the real page boundaries.
func fallbackSegment(text string) []models.QuestionRecord {
	var records []models.QuestionRecord
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if utf8.RuneCountInString(trimmed) <= minFallbackLineLen {
			continue
		}
		idx := len(records)
		if idx >= maxFallbackLines {
			break
		}

		y1 := 200 + float64(idx%fallbackLinesPage)*120
		records = append(records, models.QuestionRecord{
			Number:   idx + 1,
			Text:     truncate(trimmed, maxQuestionTextLen),
			MaxMarks: defaultMaxMarks,
			Page:     idx/fallbackLinesPage + 1,
			Bounds:   models.BoundingBox{X1: 100, Y1: y1, X2: 2700, Y2: y1 + 120},
		})
	}
	return records
}
