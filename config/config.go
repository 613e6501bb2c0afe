package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	MPESA_CONSUMER_KEY    string
	MPESA_CONSUMER_SECRET string
	MPESA_SHORTCODE       string
	MPESA_PASSKEY         string
	MPESA_CALLBACK_URL    string

	// PAYMENT_DELAY simulates the round trip to the mobile-money gateway.
	PAYMENT_DELAY time.Duration
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	// Google sign-in is disabled when these are unset.
	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	// Real STK pushes are disabled when these are unset.
	MPESA_CONSUMER_KEY = getEnv("MPESA_CONSUMER_KEY", "")
	MPESA_CONSUMER_SECRET = getEnv("MPESA_CONSUMER_SECRET", "")
	MPESA_SHORTCODE = getEnv("MPESA_SHORTCODE", "")
	MPESA_PASSKEY = getEnv("MPESA_PASSKEY", "")
	MPESA_CALLBACK_URL = getEnv("MPESA_CALLBACK_URL", "")

	delayMs, convErr := strconv.Atoi(getEnv("PAYMENT_DELAY_MS", "2000"))
	if convErr != nil || delayMs < 0 {
		delayMs = 2000
	}
	PAYMENT_DELAY = time.Duration(delayMs) * time.Millisecond
}

func GoogleEnabled() bool {
	return GOOGLE_CLIENT_ID != "" && GOOGLE_CLIENT_SECRET != "" && GOOGLE_REDIRECT_URL != ""
}

func MpesaEnabled() bool {
	return MPESA_CONSUMER_KEY != "" && MPESA_CONSUMER_SECRET != "" &&
		MPESA_SHORTCODE != "" && MPESA_PASSKEY != "" && MPESA_CALLBACK_URL != ""
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
