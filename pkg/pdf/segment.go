package pdf

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/superrjump/extractor/pkg/models"
)

const (
	maxQuestionTextLen = 500
	minQuestionTextLen = 10
	defaultMaxMarks    = 2
)

// headerPattern is one recognizer for the start of a question. A question's
// body runs from the end of its header to the next header of the same
// pattern or the end of the page.
type headerPattern struct {
	name string
	re   *regexp.Regexp
}

// The three header shapes seen across exam-paper house styles, in fixed
// priority order. Each pattern is applied to every page independently and
// the candidates are concatenated, not merged, so a line satisfying two
// patterns can emit two candidates. The sequence check below is what keeps
// incidental numerals (page numbers, marks values) out of the result.
var headerPatterns = []headerPattern{
	{name: "numeric", re: regexp.MustCompile(`(?m)^[ \t]*([0-9]+)\.[ \t]*`)},
	{name: "q", re: regexp.MustCompile(`(?mi)^[ \t]*q\.?[ \t]*([0-9]+):?[ \t]*`)},
	{name: "question", re: regexp.MustCompile(`(?mi)^[ \t]*question[ \t]*([0-9]+):?[ \t]*`)},
}

var (
	pageMarkerPattern = regexp.MustCompile(`===PAGE_([0-9]+)===`)
	marksPattern      = regexp.MustCompile(`(?i)[\[(][ \t]*([0-9]+)[ \t]*(?:marks?|m|pts?)[ \t]*[\])]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	punctuationGap    = regexp.MustCompile(`\s+([.,;:!?])`)
)

// pageText is one page's worth of extracted text.
type pageText struct {
	number int
	text   string
}

// splitPages recovers (page number, page text) pairs from the marker-
// delimited blob. Text without any marker is treated as a single page 1.
func splitPages(text string) []pageText {
	markers := pageMarkerPattern.FindAllStringSubmatchIndex(text, -1)
	if len(markers) == 0 {
		return []pageText{{number: 1, text: text}}
	}

	pages := make([]pageText, 0, len(markers))
	for i, m := range markers {
		num, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil || num < 1 {
			continue
		}
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		pages = append(pages, pageText{number: num, text: text[m[1]:end]})
	}
	return pages
}

// segmentQuestions turns the page-delimited text blob into question records.
// Candidates are accepted only when their header number is exactly one
// greater than the last accepted number; the very first accepted number may
// be anything. Both counters are local to this call, so concurrent
// extractions do not interact.
func segmentQuestions(text string) []models.QuestionRecord {
	var records []models.QuestionRecord
	lastAccepted := 0
	anyAccepted := false

	for _, page := range splitPages(text) {
		for _, pattern := range headerPatterns {
			matches := pattern.re.FindAllStringSubmatchIndex(page.text, -1)
			for i, m := range matches {
				num, err := strconv.Atoi(page.text[m[2]:m[3]])
				if err != nil || num < 1 {
					continue
				}
				if anyAccepted && num != lastAccepted+1 {
					continue
				}

				end := len(page.text)
				if i+1 < len(matches) {
					end = matches[i+1][0]
				}
				body := page.text[m[1]:end]

				marks := defaultMaxMarks
				if mm := marksPattern.FindStringSubmatchIndex(body); mm != nil {
					if v, convErr := strconv.Atoi(body[mm[2]:mm[3]]); convErr == nil && v > 0 {
						marks = v
					}
					body = body[:mm[0]] + body[mm[1]:]
				}

				body = cleanText(body)
				if utf8.RuneCountInString(body) < minQuestionTextLen {
					continue
				}

				lastAccepted = num
				anyAccepted = true
				records = append(records, models.QuestionRecord{
					Number:   num,
					Text:     truncate(body, maxQuestionTextLen),
					MaxMarks: marks,
					Page:     page.number,
					Bounds:   patternBounds(num),
				})
			}
		}
	}
	return records
}

// patternBounds estimates a question's region from its number alone,
// assuming 20 questions per page in a fixed vertical rhythm.
func patternBounds(number int) models.BoundingBox {
	y1 := 200 + float64((number-1)%20)*120
	return models.BoundingBox{X1: 100, Y1: y1, X2: 2700, Y2: y1 + 100}
}

// cleanText collapses whitespace runs, closes gaps before punctuation and
// trims the result.
func cleanText(s string) string {
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = punctuationGap.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// truncate limits s to at most n characters.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
