package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/reverie-app/journal-backend/internal/database"
	"github.com/reverie-app/journal-backend/internal/middleware"
	"github.com/reverie-app/journal-backend/internal/models"
	"github.com/reverie-app/journal-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// AuthResponse carries the token the frontend stores in localStorage.
type AuthResponse struct {
	Token  string       `json:"token"`
	UserID string       `json:"userId"`
	User   *models.User `json:"user,omitempty"`
}

// Register creates a user and returns a signed token.
func Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users := database.DB.Collection("users")

	count, err := users.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		writeError(w, http.StatusConflict, "User with this email already exists")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		CreatedAt: time.Now(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
	}

	if _, err := users.InsertOne(ctx, user); err != nil {
		// Unique index on email races the CountDocuments check above.
		if mongo.IsDuplicateKeyError(err) {
			writeError(w, http.StatusConflict, "User with this email already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := middleware.GenerateToken(user.ID.Hex(), cfg.JWTSecret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Token:  token,
		UserID: user.ID.Hex(),
		User:   &user,
	})
}

// Login verifies credentials and returns a fresh token. Unknown email and
// wrong password produce the same message.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := database.DB.Collection("users").FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
		} else {
			writeError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	valid, err := utils.VerifyPassword(req.Password, user.Password)
	if err != nil || !valid {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := middleware.GenerateToken(user.ID.Hex(), cfg.JWTSecret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Token:  token,
		UserID: user.ID.Hex(),
		User:   &user,
	})
}

// ResetPassword replaces a user's password hash, keyed by email.
func ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "Email and new password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	result, err := database.DB.Collection("users").UpdateOne(ctx,
		bson.M{"email": req.Email},
		bson.M{"$set": bson.M{"password": hashed}},
	)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if result.MatchedCount == 0 {
		writeError(w, http.StatusNotFound, "No account found for this email")
		return
	}

	log.Printf("password reset for %s", req.Email)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}

// Health is the authenticated health check.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"userId": middleware.UserIDFromContext(r.Context()),
	})
}
