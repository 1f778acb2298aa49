package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/reverie-app/journal-backend/internal/database"
)

// ActivityDay is one day of event counts for the insights view.
type ActivityDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// RecordActivity inserts a page-view (or keep-alive) event. userID may be
// empty for anonymous traffic.
func RecordActivity(ctx context.Context, userID, path, eventType string) error {
	if len(path) > 500 {
		path = path[:500]
	}
	if eventType == "" {
		eventType = "page_view"
	}

	var uid sql.NullString
	if userID != "" {
		uid = sql.NullString{String: userID, Valid: true}
	}

	_, err := database.PostgresDB.ExecContext(ctx, `
		INSERT INTO activity_events (user_id, path, event_type, created_at)
		VALUES ($1, $2, $3, NOW())
	`, uid, path, eventType)
	return err
}

// ActivityPerDay returns the user's daily event counts within [from, toEnd).
func ActivityPerDay(ctx context.Context, userID string, from, toEnd time.Time) ([]ActivityDay, error) {
	rows, err := database.PostgresDB.QueryContext(ctx, `
		SELECT (created_at)::date AS d, COUNT(*)
		FROM activity_events
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		GROUP BY (created_at)::date
		ORDER BY d
	`, userID, from, toEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]ActivityDay, 0)
	for rows.Next() {
		var d time.Time
		var c int
		if err := rows.Scan(&d, &c); err != nil {
			return nil, err
		}
		days = append(days, ActivityDay{Date: d.Format("2006-01-02"), Count: c})
	}
	return days, rows.Err()
}

// ActivityTotals returns the user's total events and distinct active days in
// [from, toEnd).
func ActivityTotals(ctx context.Context, userID string, from, toEnd time.Time) (total, activeDays int, err error) {
	err = database.PostgresDB.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT (created_at)::date)
		FROM activity_events
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
	`, userID, from, toEnd).Scan(&total, &activeDays)
	return total, activeDays, err
}

// CurrentStreak counts consecutive active days ending today (or yesterday, so
// an unfinished day doesn't break a streak).
func CurrentStreak(days []ActivityDay, today time.Time) int {
	active := make(map[string]bool, len(days))
	for _, d := range days {
		if d.Count > 0 {
			active[d.Date] = true
		}
	}

	day := today
	if !active[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for active[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
