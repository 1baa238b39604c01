package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campus-eats/services"
	"campus-eats/store"
)

// ProfileController handles user profile requests.
type ProfileController struct {
	Users  store.UserStore
	Orders *services.OrderService
}

// NewProfileController creates a new ProfileController.
func NewProfileController(users store.UserStore, orders *services.OrderService) *ProfileController {
	return &ProfileController{Users: users, Orders: orders}
}

// GetProfile fetches a user's profile. The password never serializes.
func (pc *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["userId"])
	if err != nil {
		respondError(w, services.ErrInvalidID)
		return
	}
	user, err := pc.Users.FindByID(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// UpdateProfile updates a user's name and email.
func (pc *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["userId"])
	if err != nil {
		respondError(w, services.ErrInvalidID)
		return
	}

	var req struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, err := pc.Users.UpdateProfile(r.Context(), userID, req.Name, req.Email)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// DeleteProfile deletes a user account. Orders are kept; they reference
// the user id but are not owned by the user document.
func (pc *ProfileController) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["userId"])
	if err != nil {
		respondError(w, services.ErrInvalidID)
		return
	}
	if err := pc.Users.Delete(r.Context(), userID); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "User account deleted successfully")
}

// GetOrderHistory fetches all orders of a user, newest first.
func (pc *ProfileController) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	orders, err := pc.Orders.ListByUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respondError(w, err)
		return
	}
	if len(orders) == 0 {
		respondMessage(w, http.StatusNotFound, "No orders found for this user.")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}
