package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"campus-eats/services"
)

// OrderController handles order-lifecycle requests.
type OrderController struct {
	Orders *services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// GetOrders retrieves all orders.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := oc.Orders.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// GetOrder retrieves a single order by its identifier.
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := oc.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// GetUserOrders retrieves all orders belonging to a user, newest first.
func (oc *OrderController) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := oc.Orders.ListByUser(r.Context(), mux.Vars(r)["userId"])
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

// UpdateStatus moves an order to a new status.
func (oc *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	order, err := oc.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Order status updated successfully",
		"order":   order,
	})
}
