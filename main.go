// main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/clublibertad/clubfees-backend/handlers"
	"github.com/clublibertad/clubfees-backend/repository"
	"github.com/clublibertad/clubfees-backend/routes"
	"github.com/clublibertad/clubfees-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("ClubFees API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Initialize database
	if err := repository.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repository.CloseDB()

	if err := repository.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	// Initialize stores and services
	store := repository.NewStore(repository.GetDB())
	membership := repository.NewMembershipRepository(repository.GetDB())

	feeService := services.NewFeeService(store)
	generationService := services.NewGenerationService(store)
	expirationService := services.NewExpirationService(store)
	paymentService := services.NewPaymentService(store)
	memberService := services.NewMemberService(store, membership)
	sportService := services.NewSportService(store, membership)
	enrollmentService := services.NewEnrollmentService(store, membership)
	promotionService := services.NewPromotionService(store, membership)
	reportService := services.NewReportService(store)

	// Start the fee scheduler
	scheduler := services.NewScheduler(
		generationService,
		expirationService,
		getEnvOrDefault("FEE_GENERATION_SCHEDULE", "0 3 1 * *"),
		getEnvOrDefault("FEE_SWEEP_SCHEDULE", "0 4 * * *"),
	)
	scheduler.Start()
	defer scheduler.Stop()

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, &routes.Handlers{
		Fees:        handlers.NewFeeHandler(feeService, generationService, expirationService),
		Payments:    handlers.NewPaymentHandler(paymentService),
		Members:     handlers.NewMemberHandler(memberService, feeService),
		Sports:      handlers.NewSportHandler(sportService),
		Enrollments: handlers.NewEnrollmentHandler(enrollmentService),
		Promotions:  handlers.NewPromotionHandler(promotionService),
		Reports:     handlers.NewReportHandler(reportService),
	})

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// Helper function to get environment variable with default value
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
