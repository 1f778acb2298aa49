package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/reverie-app/journal-backend/internal/database"
	"github.com/reverie-app/journal-backend/internal/models"
	"github.com/reverie-app/journal-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetRecipes returns the catalog, optionally filtered by mood. Lists are
// cached in Redis per mood since the catalog rarely changes.
func GetRecipes(w http.ResponseWriter, r *http.Request) {
	mood := strings.TrimSpace(r.URL.Query().Get("mood"))
	if mood != "" && !models.IsValidMood(mood) {
		writeError(w, http.StatusBadRequest, "Unknown mood")
		return
	}

	cacheKey := services.RecipeCacheKey(mood)

	var recipes []models.Recipe
	if services.Cache.Get(r.Context(), cacheKey, &recipes) {
		writeJSON(w, http.StatusOK, recipes)
		return
	}

	filter := bson.M{}
	if mood != "" {
		filter["mood"] = mood
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("recipes").Find(ctx, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch recipes")
		return
	}
	defer cursor.Close(ctx)

	recipes = make([]models.Recipe, 0)
	if err := cursor.All(ctx, &recipes); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch recipes")
		return
	}

	services.Cache.Set(r.Context(), cacheKey, recipes, services.RecipeCacheTTL)

	writeJSON(w, http.StatusOK, recipes)
}

// CreateRecipe adds a recipe to the catalog. Validation is minimal beyond the
// schema: a name and a known mood.
func CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(recipe.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if !models.IsValidMood(recipe.Mood) {
		writeError(w, http.StatusBadRequest, "Unknown mood")
		return
	}

	recipe.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("recipes").InsertOne(ctx, recipe); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create recipe")
		return
	}

	services.Cache.Delete(r.Context(), services.RecipeCacheKey(""), services.RecipeCacheKey(recipe.Mood))

	writeJSON(w, http.StatusCreated, recipe)
}

// UploadRecipeImage uploads a recipe photo to Cloudinary and returns its URL.
func UploadRecipeImage(w http.ResponseWriter, r *http.Request) {
	if cloudinaryService == nil {
		writeError(w, http.StatusServiceUnavailable, "Image uploads are not available")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	url, err := cloudinaryService.UploadFile(r.Context(), file, "recipes")
	if err != nil {
		log.Printf("recipe image upload failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
