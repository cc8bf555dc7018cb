package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found — falling back to system environment variables")
	} else {
		log.Println("✅ .env file loaded")
	}

	log.Printf("Using configuration: port=%s env=%s mongodb=***", Port(), Env())
}

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "3000"
}

func MongoURI() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

func MongoDB() string {
	if db := os.Getenv("MONGODB_DB"); db != "" {
		return db
	}
	return "leatherworking-tracker"
}

func Env() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}

func IsProduction() bool {
	return Env() == "production"
}

// AllowedOrigins is the production CORS allow-list.
func AllowedOrigins() []string {
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:5173"}
}
