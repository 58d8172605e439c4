package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Database and server settings, loaded from the environment
var (
	ServerPort       string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	AllowedOrigins   string
	ReseedOnStart    bool
)

// Load reads the .env file if present and populates the exported settings.
// Must be called before database.InitDB.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("PORT", "5000")
	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "pageant")
	AllowedOrigins = getEnv("ALLOWED_ORIGINS", "*")
	ReseedOnStart = getEnv("RESEED_ON_START", "false") == "true"
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
