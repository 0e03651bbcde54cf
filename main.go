package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	aiControllers "github.com/shihab103/Supper-Shop-Server/controllers/ai"
	"github.com/shihab103/Supper-Shop-Server/middleware"
	"github.com/shihab103/Supper-Shop-Server/routes"
	"github.com/shihab103/Supper-Shop-Server/store"
)

const databaseName = "SupperShop"

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Init DB; a failed connection is fatal, everything else degrades
	// per endpoint.
	db := initDatabase(ctx)
	st := store.NewMongoStore(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Identity verifier for the gated endpoints
	var verifier middleware.TokenVerifier
	if creds := os.Getenv("FIREBASE_CREDENTIALS"); creds != "" {
		fv, err := middleware.NewFirebaseVerifier(ctx, creds)
		if err != nil {
			log.Fatalf("Failed to init identity verifier: %v", err)
		}
		verifier = fv
	} else {
		logger.Warn("FIREBASE_CREDENTIALS not set; protected endpoints will reject all requests")
	}

	// Chat assistant; retrieval calls back into this server's own
	// public catalog listing.
	assistant := aiControllers.Assistant{
		ProductsURL: os.Getenv("SELF_BASE_URL"),
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
		Logger:      logger,
	}
	if assistant.ProductsURL == "" {
		assistant.ProductsURL = "http://localhost:" + port
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gen, err := aiControllers.NewGeminiGenerator(ctx, apiKey)
		if err != nil {
			log.Fatalf("Failed to init Gemini client: %v", err)
		}
		assistant.Generator = gen
	} else {
		logger.Warn("GEMINI_API_KEY not set; the chat endpoint will answer 500")
	}

	// Gin setup
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID(logger))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello world")
	})

	routes.SetupRoutes(r, routes.Deps{
		Store:     st,
		Verifier:  verifier,
		Assistant: assistant,
		Logger:    logger,
	})

	logger.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase connects the process-wide Mongo client and pings the
// deployment before any route is served.
func initDatabase(ctx context.Context) *mongo.Database {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatalf("MONGODB_URI is not set")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Database("admin").RunCommand(pingCtx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		log.Fatalf("DB ping failed: %v", err)
	}

	return client.Database(databaseName)
}
