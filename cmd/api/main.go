package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/amishharsoor/views-golang/internal/config"
	"github.com/amishharsoor/views-golang/internal/database"
	"github.com/amishharsoor/views-golang/internal/handlers"
	"github.com/amishharsoor/views-golang/internal/routes"
	"github.com/amishharsoor/views-golang/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()

	// --- Database Connection ---
	db, dialect, err := database.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db, dialect); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	if err := database.SeedAuthor(db, dialect, cfg.AuthorID, cfg.AuthorEmail, cfg.AuthorName); err != nil {
		log.Fatalf("Failed to seed author: %v", err)
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		Posts: store.NewPostStore(db, dialect),
		Users: store.NewUserStore(db, dialect),
	}

	router := routes.SetupRouter(app, cfg)

	// --- Start Server ---
	log.Printf("Starting Views API server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
