package pdf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superrjump/extractor/pkg/models"
)

func TestSegmentQuestionsNumericHeaders(t *testing.T) {
	text := "===PAGE_1===\n1. What is 2+2? [2 marks]\n2. Name the capital of France.\n"

	records := segmentQuestions(text)
	require.Len(t, records, 2)

	assert.Equal(t, 1, records[0].Number)
	assert.Equal(t, "What is 2+2?", records[0].Text)
	assert.Equal(t, 2, records[0].MaxMarks)
	assert.Equal(t, 1, records[0].Page)

	assert.Equal(t, 2, records[1].Number)
	assert.Equal(t, "Name the capital of France.", records[1].Text)
	assert.Equal(t, 2, records[1].MaxMarks)
	assert.Equal(t, 1, records[1].Page)
}

func TestSegmentQuestionsSequentialCheck(t *testing.T) {
	text := "===PAGE_1===\n" +
		"1. Describe the water cycle in detail.\n" +
		"2. Explain photosynthesis step by step.\n" +
		"4. This number skips three and must be dropped.\n"

	records := segmentQuestions(text)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Number)
	assert.Equal(t, 2, records[1].Number)
}

func TestSegmentQuestionsFirstNumberMayBeAnything(t *testing.T) {
	text := "===PAGE_1===\n" +
		"7. The first accepted number is unconstrained.\n" +
		"8. But the next one must increment by one.\n" +
		"10. And this gap means this one is dropped.\n"

	records := segmentQuestions(text)
	require.Len(t, records, 2)
	assert.Equal(t, 7, records[0].Number)
	assert.Equal(t, 8, records[1].Number)
}

func TestSegmentQuestionsMarksAnnotations(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantMarks int
		wantText  string
	}{
		{
			name:      "square bracket marks",
			body:      "Explain the causes of World War I. [5 marks]",
			wantMarks: 5,
			wantText:  "Explain the causes of World War I.",
		},
		{
			name:      "parenthesized M",
			body:      "Balance the chemical equation below. (3 M)",
			wantMarks: 3,
			wantText:  "Balance the chemical equation below.",
		},
		{
			name:      "pts suffix",
			body:      "Derive the quadratic formula. [10 pts]",
			wantMarks: 10,
			wantText:  "Derive the quadratic formula.",
		},
		{
			name:      "no annotation defaults to 2",
			body:      "State Newton's laws of motion.",
			wantMarks: 2,
			wantText:  "State Newton's laws of motion.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "===PAGE_1===\n1. " + tt.body + "\n"
			records := segmentQuestions(text)
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantMarks, records[0].MaxMarks)
			assert.Equal(t, tt.wantText, records[0].Text)
		})
	}
}

func TestSegmentQuestionsShortBodyRejected(t *testing.T) {
	text := "===PAGE_1===\n1. Ok\n2. This body is long enough to keep.\n"

	records := segmentQuestions(text)
	require.Len(t, records, 1)
	// "1. Ok" matched the header but its body is below the minimum length,
	// so 2 becomes the first accepted number.
	assert.Equal(t, 2, records[0].Number)
}

func TestSegmentQuestionsTextTruncatedTo500(t *testing.T) {
	long := strings.Repeat("All work and no play makes a dull exam. ", 20)
	text := "===PAGE_1===\n1. " + long + "\n"

	records := segmentQuestions(text)
	require.Len(t, records, 1)
	assert.Len(t, []rune(records[0].Text), 500)
}

func TestSegmentQuestionsQHeaderStyles(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"q colon", "===PAGE_1===\nQ1: Describe the structure of a plant cell.\n"},
		{"q period", "===PAGE_1===\nq.1 Describe the structure of a plant cell.\n"},
		{"question word", "===PAGE_1===\nQuestion 1: Describe the structure of a plant cell.\n"},
		{"question lowercase", "===PAGE_1===\nquestion 1 Describe the structure of a plant cell.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := segmentQuestions(tt.text)
			require.Len(t, records, 1)
			assert.Equal(t, 1, records[0].Number)
			assert.Equal(t, "Describe the structure of a plant cell.", records[0].Text)
		})
	}
}

func TestSegmentQuestionsSequenceSpansPatterns(t *testing.T) {
	// The numeric pass accepts question 1, then the Q pass may continue the
	// sequence: the last-accepted counter is global, not per-pattern.
	text := "===PAGE_1===\n" +
		"1. Define the term ecosystem with one example.\n" +
		"===PAGE_2===\n" +
		"Q2: Compare renewable and non-renewable energy.\n"

	records := segmentQuestions(text)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Number)
	assert.Equal(t, 1, records[0].Page)
	assert.Equal(t, 2, records[1].Number)
	assert.Equal(t, 2, records[1].Page)
}

func TestSegmentQuestionsBoundingBox(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("===PAGE_1===\n")
	for i := 1; i <= 21; i++ {
		fmt.Fprintf(&sb, "%d. A question body long enough to be accepted.\n", i)
	}

	records := segmentQuestions(sb.String())
	require.Len(t, records, 21)

	first := records[0].Bounds
	assert.Equal(t, models.BoundingBox{X1: 100, Y1: 200, X2: 2700, Y2: 300}, first)

	// Question 21 wraps around the 20-slot page layout back to the top.
	last := records[20].Bounds
	assert.Equal(t, models.BoundingBox{X1: 100, Y1: 200, X2: 2700, Y2: 300}, last)

	second := records[1].Bounds
	assert.Equal(t, 320.0, second.Y1)
	assert.Equal(t, 420.0, second.Y2)
}

func TestSegmentQuestionsPunctuationSpacing(t *testing.T) {
	text := "===PAGE_1===\n1. What   is the boiling point of water , in celsius ?\n"

	records := segmentQuestions(text)
	require.Len(t, records, 1)
	assert.Equal(t, "What is the boiling point of water, in celsius?", records[0].Text)
}

func TestSegmentQuestionsNoMatches(t *testing.T) {
	text := "===PAGE_1===\nThis page has prose but no question headers at all.\n"
	assert.Empty(t, segmentQuestions(text))
}

func TestSplitPages(t *testing.T) {
	text := "===PAGE_1===\nfirst page text\n===PAGE_2===\nsecond page text\n"

	pages := splitPages(text)
	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].number)
	assert.Equal(t, "\nfirst page text\n", pages[0].text)
	assert.Equal(t, 2, pages[1].number)
	assert.Equal(t, "\nsecond page text\n", pages[1].text)
}

func TestSplitPagesWithoutMarkers(t *testing.T) {
	pages := splitPages("no markers here")
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].number)
	assert.Equal(t, "no markers here", pages[0].text)
}
