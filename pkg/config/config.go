package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the full environment surface shared by the three services.
// Each binary passes its own defaults to Load; fields a service does not
// use (UploadDir for cart, CartServiceURL for catalogue) stay at their
// zero value.
type Config struct {
	AppEnv   string
	LogLevel string

	Port          int
	MongoURI      string
	MongoDatabase string

	UploadDir      string
	CartServiceURL string
	CORSOrigins    string
}

// Load reads a .env file if present, then overlays the environment on top
// of the supplied defaults.
func Load(def Config) Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:         getEnv("APP_ENV", orStr(def.AppEnv, "dev")),
		LogLevel:       getEnv("LOG_LEVEL", orStr(def.LogLevel, "info")),
		Port:           getEnvInt("PORT", def.Port),
		MongoURI:       getEnv("MONGODB_URI", orStr(def.MongoURI, "mongodb://mongodb:27017")),
		MongoDatabase:  getEnv("MONGODB_DATABASE", def.MongoDatabase),
		UploadDir:      getEnv("UPLOAD_DIR", def.UploadDir),
		CartServiceURL: getEnv("CART_SERVICE_URL", def.CartServiceURL),
		CORSOrigins:    getEnv("CORS_ORIGINS", orStr(def.CORSOrigins, "*")),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func orStr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
