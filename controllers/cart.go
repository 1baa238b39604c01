package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"campus-eats/services"
)

// CartController handles cart-related requests.
type CartController struct {
	Cart   *services.CartService
	Orders *services.OrderService
}

// NewCartController creates a new CartController.
func NewCartController(cart *services.CartService, orders *services.OrderService) *CartController {
	return &CartController{Cart: cart, Orders: orders}
}

type cartRequest struct {
	UserID   string `json:"userId" validate:"required"`
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity"`
}

// AddToCart adds a menu item to the user's cart.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	cart, err := cc.Cart.Add(r.Context(), req.UserID, req.ItemID, req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Item added to cart",
		"cart":    cart,
	})
}

// ViewCart retrieves the user's cart.
func (cc *CartController) ViewCart(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	cart, err := cc.Cart.View(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"cart": cart})
}

// UpdateQuantity sets the quantity of a cart line. Quantities below one
// are rejected; removal goes through RemoveItem.
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	cart, err := cc.Cart.Update(r.Context(), req.UserID, req.ItemID, req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Quantity updated successfully",
		"cart":    cart,
	})
}

// RemoveItem deletes a line from the user's cart.
func (cc *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	cart, err := cc.Cart.Remove(r.Context(), req.UserID, req.ItemID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Item removed from cart successfully",
		"cart":    cart,
	})
}

// Checkout converts the user's cart into an order.
func (cc *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	order, err := cc.Orders.Checkout(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Order placed successfully!",
		"order":   order,
	})
}
