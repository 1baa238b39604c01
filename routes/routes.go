// routes/routes.go
package routes

import (
	"campus-eats/controllers"
	"campus-eats/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application.
func RegisterRoutes(
	router *mux.Router,
	authController *controllers.AuthController,
	menuController *controllers.MenuController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
	profileController *controllers.ProfileController,
	analyticsController *controllers.AnalyticsController,
) {
	// Public routes
	router.HandleFunc("/auth/signup", authController.Signup).Methods("POST")
	router.HandleFunc("/auth/login", authController.Login).Methods("POST")
	router.HandleFunc("/auth/verify-token", authController.VerifyToken).Methods("POST")
	router.HandleFunc("/auth/logout", authController.Logout).Methods("POST")
	router.HandleFunc("/menus/getmenu", menuController.GetMenu).Methods("GET")

	// Cart routes
	cart := router.PathPrefix("/cart").Subrouter()
	cart.Use(middleware.AuthMiddleware)
	cart.HandleFunc("/add", cartController.AddToCart).Methods("POST")
	cart.HandleFunc("/viewCart/{userId}", cartController.ViewCart).Methods("GET")
	cart.HandleFunc("/update", cartController.UpdateQuantity).Methods("POST")
	cart.HandleFunc("/remove", cartController.RemoveItem).Methods("POST")
	cart.HandleFunc("/checkout/{userId}", cartController.Checkout).Methods("POST")

	// Order routes
	orders := router.PathPrefix("/orders").Subrouter()
	orders.Use(middleware.AuthMiddleware)
	orders.HandleFunc("/getorder/{id}", orderController.GetOrder).Methods("GET")
	orders.HandleFunc("/userOrder/{userId}", orderController.GetUserOrders).Methods("GET")

	orderAdmin := router.PathPrefix("/orders").Subrouter()
	orderAdmin.Use(middleware.AuthMiddleware)
	orderAdmin.Use(middleware.AdminMiddleware)
	orderAdmin.HandleFunc("", orderController.GetOrders).Methods("GET")
	orderAdmin.HandleFunc("/updateStatus/{id}", orderController.UpdateStatus).Methods("PUT")

	// Profile routes
	profile := router.PathPrefix("/profile").Subrouter()
	profile.Use(middleware.AuthMiddleware)
	profile.HandleFunc("/users/{userId}", profileController.GetProfile).Methods("GET")
	profile.HandleFunc("/users/{userId}", profileController.UpdateProfile).Methods("PUT")
	profile.HandleFunc("/users/{userId}", profileController.DeleteProfile).Methods("DELETE")
	profile.HandleFunc("/orders/user/{userId}", profileController.GetOrderHistory).Methods("GET")

	// Admin menu routes
	menuAdmin := router.PathPrefix("/menus").Subrouter()
	menuAdmin.Use(middleware.AuthMiddleware)
	menuAdmin.Use(middleware.AdminMiddleware)
	menuAdmin.HandleFunc("/addmenu", menuController.AddMenu).Methods("POST")
	menuAdmin.HandleFunc("/{id}", menuController.UpdateMenu).Methods("PUT")
	menuAdmin.HandleFunc("/{id}", menuController.DeleteMenu).Methods("DELETE")

	// Analytics
	analytics := router.PathPrefix("/api").Subrouter()
	analytics.Use(middleware.AuthMiddleware)
	analytics.Use(middleware.AdminMiddleware)
	analytics.HandleFunc("/analytics", analyticsController.GetAnalytics).Methods("GET")
}
