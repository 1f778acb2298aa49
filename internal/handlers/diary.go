package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/reverie-app/journal-backend/internal/database"
	"github.com/reverie-app/journal-backend/internal/middleware"
	"github.com/reverie-app/journal-backend/internal/models"
	"github.com/reverie-app/journal-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateDiaryRequest struct {
	Entry       string                `json:"entry"`
	Date        string                `json:"date"`
	JournalType string                `json:"journalType"`
	Prompts     []models.PromptAnswer `json:"prompts"`
}

// parseDate accepts both a plain day (2024-05-01) and a full timestamp, since
// the frontend serializes Date objects.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// classifierInput concatenates the free text and any guided prompt answers so
// the classifier sees the whole entry.
func classifierInput(req CreateDiaryRequest) string {
	if len(req.Prompts) == 0 {
		return req.Entry
	}
	var b strings.Builder
	b.WriteString(req.Entry)
	for _, p := range req.Prompts {
		if p.Answer == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(p.Question)
		b.WriteString(" ")
		b.WriteString(p.Answer)
	}
	return b.String()
}

// CreateDiaryEntry classifies the entry's mood via the completion API and
// persists the entry. The save fails entirely when classification fails.
func CreateDiaryEntry(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var req CreateDiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Entry) == "" {
		writeError(w, http.StatusBadRequest, "Entry text is required")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		date = parsed
	}

	analysis, err := services.ClassifyMood(r.Context(), classifierInput(req))
	if err != nil {
		log.Printf("mood classification failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save diary entry")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entry := models.DiaryEntry{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		Entry:         req.Entry,
		Date:          date,
		Mood:          analysis.Mood,
		MoodIntensity: analysis.Intensity,
		JournalType:   req.JournalType,
		Prompts:       req.Prompts,
		CreatedAt:     time.Now(),
	}

	if _, err := database.DB.Collection("diary_entries").InsertOne(ctx, entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save diary entry")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Entry saved successfully",
		"mood":      analysis.Mood,
		"intensity": analysis.Intensity,
	})
}

// GetDiaryEntries lists the user's entries, optionally narrowed to the
// half-open interval [day, day+1) when ?date= is given.
func GetDiaryEntries(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	filter := bson.M{"user_id": userID}
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		day, err := parseDate(dateStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		filter["date"] = bson.M{"$gte": start, "$lt": start.AddDate(0, 0, 1)}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("diary_entries").Find(ctx, filter,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch diary entries")
		return
	}
	defer cursor.Close(ctx)

	entries := make([]models.DiaryEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch diary entries")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// periodBounds computes the [start, end) interval for a stats period anchored
// at the given date. Weeks start on Sunday; months on day 1.
func periodBounds(period string, anchor time.Time) (time.Time, time.Time, error) {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	switch period {
	case "day":
		return day, day.AddDate(0, 0, 1), nil
	case "week":
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return start, start.AddDate(0, 0, 7), nil
	case "month":
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return start, start.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", period)
	}
}

// GetDiaryStats returns per-mood counts and average intensity within a
// day/week/month interval, scoped to the authenticated user.
func GetDiaryStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "day"
	}

	anchor := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := parseDate(dateStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		anchor = parsed
	}

	start, end, err := periodBounds(period, anchor)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Period must be day, week, or month")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"user_id": userID,
			"date":    bson.M{"$gte": start, "$lt": end},
		}},
		{"$group": bson.M{
			"_id":              "$mood",
			"count":            bson.M{"$sum": 1},
			"averageIntensity": bson.M{"$avg": "$mood_intensity"},
		}},
	}

	cursor, err := database.DB.Collection("diary_entries").Aggregate(ctx, pipeline)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute mood stats")
		return
	}
	defer cursor.Close(ctx)

	stats := make([]models.MoodStat, 0)
	if err := cursor.All(ctx, &stats); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute mood stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// onThisDayAnalysis is the LLM summary shown above past entries.
type onThisDayAnalysis struct {
	Patterns   string `json:"patterns"`
	Insights   string `json:"insights"`
	Reflection string `json:"reflection"`
}

// GetOnThisDay finds past entries sharing the anchor date's month and day and
// summarizes them. With no matching entries the AI call is skipped.
func GetOnThisDay(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	anchor := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := parseDate(dateStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		anchor = parsed
	}
	startOfDay := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"user_id": userID,
		"$expr": bson.M{"$and": bson.A{
			bson.M{"$eq": bson.A{bson.M{"$month": "$date"}, int(anchor.Month())}},
			bson.M{"$eq": bson.A{bson.M{"$dayOfMonth": "$date"}, anchor.Day()}},
			bson.M{"$lt": bson.A{"$date", startOfDay}},
		}},
	}

	cursor, err := database.DB.Collection("diary_entries").Find(ctx, filter,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch memories")
		return
	}
	defer cursor.Close(ctx)

	entries := make([]models.DiaryEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch memories")
		return
	}

	if len(entries) == 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"entries":  entries,
			"analysis": nil,
		})
		return
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s (%s, intensity %d): %s\n", e.Date.Format("2006-01-02"), e.Mood, e.MoodIntensity, e.Entry)
	}

	reply, err := services.AI.CompleteWithSystem(r.Context(), services.OnThisDayPrompt, nil, b.String())
	if err != nil {
		log.Printf("on-this-day analysis failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze memories")
		return
	}

	var analysis onThisDayAnalysis
	if err := json.Unmarshal([]byte(services.ExtractJSONObject(reply)), &analysis); err != nil {
		log.Printf("on-this-day parse failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze memories")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries":  entries,
		"analysis": analysis,
	})
}

// moodAnalysisFallback is returned when the upstream call or parse fails, so
// the insights view degrades instead of erroring.
var moodAnalysisFallback = map[string]string{
	"trend":       "unknown",
	"suggestions": "We were unable to analyze your mood trends right now. Please try again later.",
	"warnings":    "",
}

// GetMoodAnalysis summarizes the user's last seven days of entries into
// trend/suggestions/warnings.
func GetMoodAnalysis(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	now := time.Now()
	from := now.AddDate(0, 0, -7)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("diary_entries").Find(ctx, bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lt": now},
	}, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch entries")
		return
	}
	defer cursor.Close(ctx)

	entries := make([]models.DiaryEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch entries")
		return
	}

	if len(entries) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{
			"trend":       "no data",
			"suggestions": "Write a few journal entries this week to see your mood trends.",
			"warnings":    "",
		})
		return
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %s (intensity %d)\n", e.Date.Format("2006-01-02"), e.Mood, e.MoodIntensity)
	}

	reply, err := services.AI.CompleteWithSystem(r.Context(), services.MoodAnalysisPrompt, nil, b.String())
	if err != nil {
		log.Printf("mood analysis failed: %v", err)
		writeJSON(w, http.StatusOK, moodAnalysisFallback)
		return
	}

	var analysis map[string]string
	if err := json.Unmarshal([]byte(services.ExtractJSONObject(reply)), &analysis); err != nil {
		log.Printf("mood analysis parse failed: %v", err)
		writeJSON(w, http.StatusOK, moodAnalysisFallback)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}
