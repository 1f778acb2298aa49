package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/reverie-app/journal-backend/internal/database"
	"github.com/reverie-app/journal-backend/internal/middleware"
	"github.com/reverie-app/journal-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SaveMorningThoughtsRequest struct {
	Date     string   `json:"date"`
	Thoughts []string `json:"thoughts"`
}

// validDayString checks the YYYY-MM-DD key used by morning thoughts.
func validDayString(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// GetMorningThoughts returns the thought list for a day, or an empty list
// when none was saved.
func GetMorningThoughts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	date := r.URL.Query().Get("date")
	if !validDayString(date) {
		writeError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var doc models.MorningThought
	err := database.DB.Collection("morning_thoughts").
		FindOne(ctx, bson.M{"user_id": userID, "date": date}).
		Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeJSON(w, http.StatusOK, map[string]interface{}{"date": date, "thoughts": []string{}})
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch morning thoughts")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"date": doc.Date, "thoughts": doc.Thoughts})
}

// SaveMorningThoughts upserts the full thought list for a (user, date) pair.
// The unique index on (user_id, date) guarantees at most one document per day.
func SaveMorningThoughts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var req SaveMorningThoughtsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validDayString(req.Date) {
		writeError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	if req.Thoughts == nil {
		req.Thoughts = []string{}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err := database.DB.Collection("morning_thoughts").UpdateOne(ctx,
		bson.M{"user_id": userID, "date": req.Date},
		bson.M{"$set": bson.M{"thoughts": req.Thoughts}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save morning thoughts")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"date": req.Date, "thoughts": req.Thoughts})
}
