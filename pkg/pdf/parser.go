package pdf

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/superrjump/extractor/pkg/models"
)

// Type aliases for convenience
type Question = models.QuestionRecord
type Extraction = models.Extraction

// CurrentTimestamp returns the current time in RFC3339 format
func CurrentTimestamp() string {
	return time.Now().Format(time.RFC3339)
}

// Parser extracts structured questions from a single PDF exam paper.
type Parser struct {
	pdfPath string
	source  TextSource
	log     *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithTextSource replaces the default PDF text source.
func WithTextSource(src TextSource) Option {
	return func(p *Parser) { p.source = src }
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) { p.log = log }
}

// NewParser creates a parser for the PDF at pdfPath.
func NewParser(pdfPath string, opts ...Option) *Parser {
	p := &Parser{
		pdfPath: pdfPath,
		source:  NewLibraryTextSource(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts questions from the PDF. Text-extraction failures propagate
// unmodified; after that the call cannot fail, and an empty question list is
// a legitimate result. Exactly one strategy produces the output: the header
// patterns, or the line fallback when the patterns match nothing at all.
func (p *Parser) Parse() (*models.Extraction, error) {
	text, err := p.source.ExtractText(p.pdfPath)
	if err != nil {
		return nil, err
	}

	questions := segmentQuestions(text)
	strategy := models.StrategyPattern
	if len(questions) == 0 {
		p.log.Debug("no question headers matched, using line fallback",
			zap.String("path", p.pdfPath))
		questions = fallbackSegment(text)
		strategy = models.StrategyFallback
	}
	if questions == nil {
		questions = []models.QuestionRecord{}
	}

	p.log.Info("parsed questions",
		zap.String("path", p.pdfPath),
		zap.Int("count", len(questions)),
		zap.String("strategy", string(strategy)))

	return &models.Extraction{
		ID:          uuid.NewString(),
		Source:      p.pdfPath,
		Strategy:    strategy,
		TotalCount:  len(questions),
		Questions:   questions,
		ExtractedAt: CurrentTimestamp(),
	}, nil
}

// ParseFile is a convenience function that takes a filename and returns the
// parsed extraction.
func ParseFile(filename string) (*models.Extraction, error) {
	parser := NewParser(filename)
	return parser.Parse()
}
