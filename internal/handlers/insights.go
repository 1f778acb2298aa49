package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/reverie-app/journal-backend/internal/middleware"
	"github.com/reverie-app/journal-backend/internal/services"
)

type RecordActivityRequest struct {
	Path string `json:"path"`
}

// RecordActivity records a page view. The user id is taken from the token
// when one is present; anonymous events are kept too.
func RecordActivity(w http.ResponseWriter, r *http.Request) {
	var req RecordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	path := req.Path
	if path == "" {
		path = r.URL.Path
	}

	userID := ""
	if token := middleware.ExtractBearerToken(r.Header.Get("Authorization")); token != "" {
		if id, err := middleware.UserIDFromToken(token, cfg.JWTSecret); err == nil {
			userID = id
		}
	}

	if err := services.RecordActivity(r.Context(), userID, path, "page_view"); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record activity")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GetInsights returns the user's activity summary: events per day, totals,
// and the current daily streak. Defaults to the last 30 days.
func GetInsights(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	now := time.Now().UTC()
	to := now
	from := now.AddDate(0, 0, -30)
	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			from = t.UTC()
		}
	}
	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			to = t.UTC()
		}
	}
	if from.After(to) {
		from, to = to, from
	}
	toEnd := to.AddDate(0, 0, 1) // exclusive upper bound (end of "to" day)

	days, err := services.ActivityPerDay(r.Context(), userID, from, toEnd)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch activity")
		return
	}

	total, activeDays, err := services.ActivityTotals(r.Context(), userID, from, toEnd)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch activity totals")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"from":           from.Format("2006-01-02"),
		"to":             to.Format("2006-01-02"),
		"events_per_day": days,
		"total_events":   total,
		"active_days":    activeDays,
		"streak":         services.CurrentStreak(days, now),
	})
}
