package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the app reads from the environment.
// Built once in LoadConfig and passed down explicitly; handlers
// never reach into os.Getenv themselves.
type Config struct {
	Port string

	// Razorpay credentials. The secret doubles as the HMAC key
	// for callback signature verification.
	RazorpayKeyID  string
	RazorpaySecret string

	// CORS allow-list (comma separated in ALLOWED_ORIGINS).
	AllowedOrigins []string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string
}

var defaultOrigins = []string{
	"https://jaleifoundation.com",
	"https://www.jaleifoundation.com",
}

// =======================
// ENV LOADER
// =======================
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	cfg := &Config{
		Port:           GetEnv("PORT", "3000"),
		RazorpayKeyID:  GetEnv("RAZORPAY_KEY"),
		RazorpaySecret: GetEnv("RAZORPAY_SECRET"),
		AllowedOrigins: splitOrigins(GetEnv("ALLOWED_ORIGINS")),
		DBUser:         GetEnv("DB_USER"),
		DBPassword:     GetEnv("DB_PASSWORD"),
		DBHost:         GetEnv("DB_HOST"),
		DBPort:         GetEnv("DB_PORT", "5432"),
		DBName:         GetEnv("DB_NAME"),
		DBSSLMode:      GetEnv("DB_SSLMODE", "require"),
	}

	if cfg.RazorpayKeyID == "" {
		log.Println("❌ RAZORPAY_KEY is not set!")
	}
	if cfg.RazorpaySecret == "" {
		log.Println("❌ RAZORPAY_SECRET is not set!")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return defaultOrigins
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultOrigins
	}
	return out
}
