package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/models"
	"github.com/vanshpar/pc-builder-api/routes"
	"github.com/vanshpar/pc-builder-api/seed"
)

func main() {
	log.Println("starting pc-builder api...")

	// Load environment variables
	_ = godotenv.Load()

	// Prices render as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Service{},
		&models.ServiceBooking{},
		&models.AIConversation{},
		&models.CompatibilityRule{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if os.Getenv("SEED_ON_START") == "true" {
		if err := seed.Run(db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// initDatabase opens Postgres when configured, otherwise a local SQLite file
// so the service runs with zero setup in development.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect DB: %v", err)
		}
		return db
	}

	storage := os.Getenv("SQLITE_STORAGE")
	if storage == "" {
		storage = filepath.Join("data", "dev.sqlite")
	}
	if err := os.MkdirAll(filepath.Dir(storage), 0o755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}
	log.Printf("no database configured, using SQLite at %s", storage)
	db, err := gorm.Open(sqlite.Open(storage), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open SQLite: %v", err)
	}
	return db
}
