package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/skilllinker/skilllinker/db"
	"github.com/skilllinker/skilllinker/internal/auth"
	"github.com/skilllinker/skilllinker/internal/notifier"
	"github.com/skilllinker/skilllinker/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	database, err := db.ConnectDatabase(os.Getenv("DATABASE_URL"))

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	dispatcher := notifier.NewDispatcher()
	defer dispatcher.Stop()

	r := router.NewRouter(database, dispatcher)

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
