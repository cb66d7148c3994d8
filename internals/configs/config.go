package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	JWTSecret       string
	DefaultCurrency string
	AppEnv          string
)

/* =======================
   ENV LOADER
======================= */

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	DefaultCurrency = GetEnv("DEFAULT_CURRENCY", "USD")
	AppEnv = GetEnv("APP_ENV", "development")

	if JWTSecret == "" {
		log.Println("warning: JWT_SECRET is not set, authenticated routes will reject every request")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

/* =======================
   LOGGER
======================= */

// NewLogger builds the process-wide zap logger. Production config outside
// development so log output stays machine-parseable in deployment.
func NewLogger() *zap.Logger {
	var logger *zap.Logger
	var err error
	if strings.EqualFold(AppEnv, "development") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	return logger
}
