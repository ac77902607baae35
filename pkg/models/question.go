package models

// BoundingBox is an estimated region for a question on its page. The
// coordinates come from a fixed per-page layout assumption, not from measured
// glyph positions.
type BoundingBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// QuestionRecord represents a single question detected in an exam paper.
type QuestionRecord struct {
	Number   int         `json:"question_number"` // Question number (1, 2, 3, ...)
	Text     string      `json:"question_text"`   // Cleaned question text, at most 500 characters
	MaxMarks int         `json:"max_marks"`       // Marks for the question, defaults to 2
	Page     int         `json:"page_number"`     // 1-based source page
	Bounds   BoundingBox `json:"bounding_box"`    // Estimated question region
}

// Strategy identifies which segmentation strategy produced an extraction.
type Strategy string

const (
	// StrategyPattern is the primary header-pattern segmentation.
	StrategyPattern Strategy = "pattern"
	// StrategyFallback is the degraded line-based segmentation, used only
	// when no header pattern matched anywhere in the document.
	StrategyFallback Strategy = "fallback"
)

// Extraction represents the entire result of extracting one exam paper.
type Extraction struct {
	ID          string           `json:"id"`          // Unique extraction ID
	Source      string           `json:"source"`      // Path of the source PDF
	Strategy    Strategy         `json:"strategy"`    // Strategy that produced the questions
	TotalCount  int              `json:"totalCount"`  // Total number of questions
	Questions   []QuestionRecord `json:"questions"`   // Questions in detection order
	ExtractedAt string           `json:"extractedAt"` // When this was generated
}
