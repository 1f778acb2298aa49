package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentStreak(t *testing.T) {
	today := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	days := []ActivityDay{
		{Date: "2025-06-08", Count: 3},
		{Date: "2025-06-09", Count: 1},
		{Date: "2025-06-10", Count: 5},
	}
	assert.Equal(t, 3, CurrentStreak(days, today))
}

func TestCurrentStreakAllowsUnfinishedToday(t *testing.T) {
	today := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	days := []ActivityDay{
		{Date: "2025-06-08", Count: 2},
		{Date: "2025-06-09", Count: 4},
	}
	assert.Equal(t, 2, CurrentStreak(days, today))
}

func TestCurrentStreakBrokenByGap(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	days := []ActivityDay{
		{Date: "2025-06-06", Count: 2},
		{Date: "2025-06-07", Count: 1},
		{Date: "2025-06-10", Count: 1},
	}
	assert.Equal(t, 1, CurrentStreak(days, today))
}

func TestCurrentStreakNoActivity(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, CurrentStreak(nil, today))
}

func TestCurrentStreakIgnoresZeroCountDays(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	days := []ActivityDay{
		{Date: "2025-06-09", Count: 0},
		{Date: "2025-06-10", Count: 2},
	}
	assert.Equal(t, 1, CurrentStreak(days, today))
}
