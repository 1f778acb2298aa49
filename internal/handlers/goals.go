package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/reverie-app/journal-backend/internal/database"
	"github.com/reverie-app/journal-backend/internal/middleware"
	"github.com/reverie-app/journal-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateGoalRequest struct {
	Description     string                 `json:"description"`
	Category        string                 `json:"category"`
	Deadline        *time.Time             `json:"deadline,omitempty"`
	Progress        int                    `json:"progress"`
	Completed       bool                   `json:"completed"`
	SubTasks        []models.SubTask       `json:"subTasks"`
	ProgressHistory []models.ProgressPoint `json:"progressHistory"`
}

// GoalPatch carries a partial update. Pointer fields distinguish "not sent"
// from zero values; array fields replace the stored arrays wholesale
// (last-write-wins, the client owns history appends).
type GoalPatch struct {
	Description     *string                 `json:"description,omitempty"`
	Category        *string                 `json:"category,omitempty"`
	Deadline        *time.Time              `json:"deadline,omitempty"`
	Progress        *int                    `json:"progress,omitempty"`
	Completed       *bool                   `json:"completed,omitempty"`
	SubTasks        *[]models.SubTask       `json:"subTasks,omitempty"`
	ProgressHistory *[]models.ProgressPoint `json:"progressHistory,omitempty"`
}

// applyGoalPatch merges a patch into a goal. Progress is clamped to [0,100];
// a goal at full progress is always completed, regardless of what the patch
// says about the completed flag.
func applyGoalPatch(goal *models.Goal, patch GoalPatch) {
	if patch.Description != nil {
		goal.Description = *patch.Description
	}
	if patch.Category != nil {
		goal.Category = *patch.Category
	}
	if patch.Deadline != nil {
		goal.Deadline = patch.Deadline
	}
	if patch.Completed != nil {
		goal.Completed = *patch.Completed
	}
	if patch.Progress != nil {
		p := *patch.Progress
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		goal.Progress = p
	}
	if goal.Progress == 100 {
		goal.Completed = true
	}
	if patch.SubTasks != nil {
		goal.SubTasks = *patch.SubTasks
	}
	if patch.ProgressHistory != nil {
		goal.ProgressHistory = *patch.ProgressHistory
	}
}

// GetGoals lists the user's goals, newest first.
func GetGoals(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("goals").Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch goals")
		return
	}
	defer cursor.Close(ctx)

	goals := make([]models.Goal, 0)
	if err := cursor.All(ctx, &goals); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch goals")
		return
	}

	writeJSON(w, http.StatusOK, goals)
}

// CreateGoal inserts a new goal for the user.
func CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var req CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "Description is required")
		return
	}
	if req.Category == "" {
		req.Category = "Personal"
	}

	goal := models.Goal{
		ID:              primitive.NewObjectID(),
		UserID:          userID,
		Description:     req.Description,
		Category:        req.Category,
		Deadline:        req.Deadline,
		SubTasks:        req.SubTasks,
		ProgressHistory: req.ProgressHistory,
		CreatedAt:       time.Now(),
	}
	if goal.SubTasks == nil {
		goal.SubTasks = []models.SubTask{}
	}
	if goal.ProgressHistory == nil {
		goal.ProgressHistory = []models.ProgressPoint{}
	}
	patch := GoalPatch{Progress: &req.Progress}
	if req.Completed {
		patch.Completed = &req.Completed
	}
	applyGoalPatch(&goal, patch)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("goals").InsertOne(ctx, goal); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

// goalFilter builds the owner-scoped filter for a goal id from the URL.
func goalFilter(r *http.Request) (bson.M, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return nil, false
	}
	return bson.M{
		"_id":     id,
		"user_id": middleware.UserIDFromContext(r.Context()),
	}, true
}

// UpdateGoal applies a partial update to an owned goal and returns it.
func UpdateGoal(w http.ResponseWriter, r *http.Request) {
	filter, ok := goalFilter(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid goal id")
		return
	}

	var patch GoalPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	goals := database.DB.Collection("goals")

	var goal models.Goal
	if err := goals.FindOne(ctx, filter).Decode(&goal); err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusNotFound, "Goal not found")
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to update goal")
		}
		return
	}

	applyGoalPatch(&goal, patch)

	if _, err := goals.ReplaceOne(ctx, filter, goal); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

// DeleteGoal removes an owned goal.
func DeleteGoal(w http.ResponseWriter, r *http.Request) {
	filter, ok := goalFilter(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid goal id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := database.DB.Collection("goals").DeleteOne(ctx, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}
	if result.DeletedCount == 0 {
		writeError(w, http.StatusNotFound, "Goal not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal deleted successfully"})
}
