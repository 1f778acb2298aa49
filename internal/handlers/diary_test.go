package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reverie-app/journal-backend/internal/models"
)

func TestParseDate(t *testing.T) {
	day, err := parseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 14, day.Day())

	ts, err := parseDate("2025-03-14T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 18, ts.Hour())

	_, err = parseDate("14/03/2025")
	assert.Error(t, err)
}

func TestPeriodBoundsDay(t *testing.T) {
	anchor := time.Date(2025, 3, 14, 16, 45, 0, 0, time.UTC)
	start, end, err := periodBounds("day", anchor)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), end)
}

func TestPeriodBoundsWeekStartsSunday(t *testing.T) {
	// 2025-03-14 is a Friday; the containing week starts Sunday 2025-03-09.
	anchor := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	start, end, err := periodBounds("week", anchor)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), end)

	// A Sunday anchor is its own week start.
	sunday := time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC)
	start, _, err = periodBounds("week", sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), start)
}

func TestPeriodBoundsMonth(t *testing.T) {
	anchor := time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC)
	start, end, err := periodBounds("month", anchor)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestPeriodBoundsUnknown(t *testing.T) {
	_, _, err := periodBounds("year", time.Now())
	assert.Error(t, err)
}

func TestClassifierInputIncludesPromptAnswers(t *testing.T) {
	req := CreateDiaryRequest{
		Entry: "Went for a long walk.",
		Prompts: []models.PromptAnswer{
			{Question: "What made you smile today?", Answer: "The weather"},
			{Question: "What are you grateful for?", Answer: ""},
		},
	}

	text := classifierInput(req)
	assert.Contains(t, text, "Went for a long walk.")
	assert.Contains(t, text, "What made you smile today? The weather")
	assert.NotContains(t, text, "grateful")
}

func TestClassifierInputNoPrompts(t *testing.T) {
	req := CreateDiaryRequest{Entry: "Just the entry."}
	assert.Equal(t, "Just the entry.", classifierInput(req))
}
