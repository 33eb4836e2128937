package main

import (
	"context"
	"log"
	"os"

	"github.com/Het4705/chic-dashboard-haven/internal/ai"
	"github.com/Het4705/chic-dashboard-haven/internal/analytics"
	"github.com/Het4705/chic-dashboard-haven/internal/bootstrap"
	"github.com/Het4705/chic-dashboard-haven/internal/catalog"
	"github.com/Het4705/chic-dashboard-haven/internal/database"
	"github.com/Het4705/chic-dashboard-haven/internal/handlers"
	"github.com/Het4705/chic-dashboard-haven/internal/media"
	"github.com/Het4705/chic-dashboard-haven/internal/orders"
	"github.com/Het4705/chic-dashboard-haven/internal/reels"
	"github.com/Het4705/chic-dashboard-haven/internal/routes"
	"github.com/Het4705/chic-dashboard-haven/internal/store"
	"github.com/Het4705/chic-dashboard-haven/internal/users"
	"github.com/joho/godotenv"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// --- Document Store Connection ---
	db, closeDB, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to document store: %v", err)
	}
	defer closeDB()

	docs := store.NewMongo(db)

	// --- Media Store Client ---
	uploader := media.NewCloudinaryFromEnv()
	if uploader.CloudName == "" {
		log.Println("WARNING: CLOUDINARY_CLOUD_NAME is not set. Uploads will fail until it is configured.")
	}

	// --- AI Service (optional) ---
	var aiService *ai.AIService
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		aiService, err = ai.NewAIService(context.Background(), geminiKey)
		if err != nil {
			log.Fatalf("Failed to initialize AI Service: %v", err)
		}
		defer aiService.Close()
	} else {
		log.Println("GEMINI_API_KEY not set, AI description assistance disabled")
	}

	// --- First-Run Admin Account ---
	if err := bootstrap.EnsureAdmin(context.Background(), docs); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// --- Application Setup ---
	productSvc := catalog.NewProductService(docs, uploader)
	collectionSvc := catalog.NewCollectionService(docs, uploader)
	orderSvc := orders.NewService(docs)
	userSvc := users.NewService(docs)

	app := &handlers.Handlers{
		Store:       docs,
		Media:       uploader,
		Products:    productSvc,
		Collections: collectionSvc,
		Orders:      orderSvc,
		Users:       userSvc,
		Reels:       reels.NewService(docs, productSvc),
		Analytics:   analytics.NewService(orderSvc, userSvc, productSvc),
		AIService:   aiService,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting admin console API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
