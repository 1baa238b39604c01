package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"campus-eats/models"
	"campus-eats/store"
	"campus-eats/utils"
)

// AuthController handles signup, login and session verification.
type AuthController struct {
	Users store.UserStore
}

// NewAuthController creates a new AuthController.
func NewAuthController(users store.UserStore) *AuthController {
	return &AuthController{Users: users}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=user admin"`
}

// Signup registers a new user. Passwords are stored as bcrypt hashes.
func (ac *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, err)
		return
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Phone:     req.Phone,
		City:      req.City,
		State:     req.State,
		Role:      req.Role,
		Cart:      []models.CartItem{},
		CreatedAt: time.Now().UTC(),
	}
	if err := ac.Users.Insert(r.Context(), user); err != nil {
		respondError(w, err)
		return
	}

	log.Info().Str("email", user.Email).Msg("user registered")
	respondMessage(w, http.StatusCreated, "User registered successfully.")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=user admin"`
}

// Login authenticates a user by email, password and role, returning a
// JWT and a user summary.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	user, err := ac.Users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "User not found. Please sign up.")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid credentials.")
		return
	}
	if user.Role != req.Role {
		respondMessage(w, http.StatusBadRequest, "Invalid role for this user.")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((24 * time.Hour).Seconds()),
	})

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful!",
		"token":   token,
		"user": map[string]string{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// VerifyToken checks a bearer token and confirms the user still exists.
func (ac *AuthController) VerifyToken(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"valid": false, "message": "No token provided"})
		return
	}

	claims, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"valid": false, "message": "Invalid token"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"valid": false, "message": "Invalid token"})
		return
	}
	user, err := ac.Users.FindByID(r.Context(), userID)
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{"valid": false, "message": "User not found"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"valid": true,
		"user": map[string]string{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		HttpOnly: true,
		MaxAge:   -1,
	})
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}
