package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/agrimart/repayment/docs"
	"github.com/agrimart/repayment/internal/config"
	"github.com/agrimart/repayment/internal/database"
	"github.com/agrimart/repayment/internal/gateway"
	"github.com/agrimart/repayment/internal/notification"
	"github.com/agrimart/repayment/internal/purchase"
	"github.com/agrimart/repayment/internal/repayment"
	"github.com/agrimart/repayment/internal/tariff"
	"github.com/agrimart/repayment/internal/vendor"
	mw "github.com/agrimart/repayment/pkg/middleware"
)

// @title           Agrimart Repayment API
// @version         1.0
// @description     Credit repayment settlement service for the Agrimart marketplace
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database successfully")

	// Payment gateway client (sandbox until provider credentials are wired)
	gatewayClient := gateway.NewSandbox()
	if cfg.GatewayKeyID != "" {
		log.Println("Gateway credentials configured but provider client not yet implemented; using sandbox")
	}

	// Tariff feature
	tariffRepo := tariff.NewRepository(db)
	tariffService := tariff.NewService(tariffRepo)
	tariffHandler := tariff.NewHandler(tariffService)

	// Vendor feature
	vendorRepo := vendor.NewRepository(db)
	vendorService := vendor.NewService(vendorRepo)
	vendorHandler := vendor.NewHandler(vendorService)

	// Purchase feature
	purchaseRepo := purchase.NewRepository(db)
	purchaseService := purchase.NewService(purchaseRepo)
	purchaseHandler := purchase.NewHandler(purchaseService)

	// Notification feature
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	// Repayment feature (settlement core wired to its collaborators)
	repaymentService := repayment.NewService(purchaseService, tariffService, gatewayClient, notificationService)
	repaymentHandler := repayment.NewHandler(repaymentService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.TestIdentityMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/vendors", vendorHandler.Routes())
		r.Mount("/purchases", purchaseHandler.Routes())
		r.Mount("/repayments", repaymentHandler.Routes())
		r.Mount("/tariffs", tariffHandler.Routes())
		r.Mount("/notifications", notificationHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
