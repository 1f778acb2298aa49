package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/reverie-app/journal-backend/internal/config"
	"github.com/reverie-app/journal-backend/internal/services"
)

// Package-level handles initialized from main, teacher-style: the handler
// functions are plain functions, not methods.
var (
	cfg               *config.Config
	cloudinaryService *services.CloudinaryService
)

// Init wires the configuration into the handlers package.
func Init(c *config.Config) {
	cfg = c
}

// InitCloudinary enables the image-upload endpoint.
func InitCloudinary(c *config.Config) error {
	service, err := services.NewCloudinaryService(c.CloudinaryName, c.CloudinaryAPIKey, c.CloudinaryAPISecret)
	if err != nil {
		return err
	}
	cloudinaryService = service
	return nil
}

// writeJSON writes a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeError writes the {"error": ...} envelope the frontend expects.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// queryInt reads a non-negative integer query parameter with a default.
func queryInt(r *http.Request, name string, def int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
