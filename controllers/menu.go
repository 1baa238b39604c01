package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campus-eats/models"
	"campus-eats/services"
	"campus-eats/store"
)

// MenuController handles menu CRUD requests.
type MenuController struct {
	Menus store.MenuStore
}

// NewMenuController creates a new MenuController.
func NewMenuController(menus store.MenuStore) *MenuController {
	return &MenuController{Menus: menus}
}

type menuRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required"`
	Stock    int     `json:"stock" validate:"gte=0"`
	ImageURL string  `json:"imageUrl"`
}

// GetMenu lists every menu item.
func (mc *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := mc.Menus.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// AddMenu creates a menu item.
func (mc *MenuController) AddMenu(w http.ResponseWriter, r *http.Request) {
	var req menuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	item := &models.MenuItem{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
	}
	if err := mc.Menus.Insert(r.Context(), item); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Menu added successfully",
		"menu":    item,
	})
}

// UpdateMenu replaces a menu item's fields.
func (mc *MenuController) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, services.ErrInvalidID)
		return
	}

	var req menuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	item := &models.MenuItem{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
	}
	if err := mc.Menus.Update(r.Context(), id, item); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Menu updated successfully")
}

// DeleteMenu removes a menu item. Existing carts and orders keep their
// snapshots of it.
func (mc *MenuController) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, services.ErrInvalidID)
		return
	}
	if err := mc.Menus.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Menu deleted successfully")
}
