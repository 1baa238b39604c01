// main.go
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"campus-eats/controllers"
	"campus-eats/routes"
	"campus-eats/services"
	"campus-eats/store/mongostore"
	"campus-eats/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, proceeding with environment variables")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Set the JWT secret key
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}
	utils.JwtKey = []byte(secret)

	// Connect to MongoDB
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	client, err := mongostore.Connect(context.Background(), mongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	st := mongostore.New(client)

	// Email is optional; a nil service disables order mails
	emailService := utils.NewEmailService()
	if emailService == nil {
		log.Info().Msg("POSTMARK_API_TOKEN not set, order emails disabled")
	}

	// Services
	cartService := services.NewCartService(st)
	var mailer services.Mailer
	if emailService != nil {
		mailer = emailService
	}
	orderService := services.NewOrderService(st, mailer)
	analyticsService := services.NewAnalyticsService(st)

	// Controllers
	authController := controllers.NewAuthController(st.Users())
	menuController := controllers.NewMenuController(st.Menus())
	cartController := controllers.NewCartController(cartService, orderService)
	orderController := controllers.NewOrderController(orderService)
	profileController := controllers.NewProfileController(st.Users(), orderService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, authController, menuController, cartController,
		orderController, profileController, analyticsController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Info().Str("port", port).Msg("server is running")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
