package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort     string
	DatabaseDSN  string
	JWTSecret    string
	CORSOrigins  string
	GeminiAPIKey string // empty disables insights (fallback text is served)
	MerchantName string
	MerchantInfo string
}

func Load() *Config {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=restoflow port=5432 sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		MerchantName: getEnv("MERCHANT_NAME", "RestoFlow Pro"),
		MerchantInfo: getEnv("MERCHANT_INFO", "123 Tasty Street, Food City | Tel: +1 234 567 890"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set; it is required")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("[WARN] GEMINI_API_KEY not set; sales insights will return the fallback message")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
