package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	APIPrefix string

	LogLevel  string
	LogFormat string

	KVBackend  string // memory, sqlite, postgres, redis
	DBDsn      string
	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AuthProvider string // local, gotrue
	JWTKey       string
	TokenTTL     time.Duration
	SaltRound    int

	GoTrueURL        string
	GoTrueServiceKey string
	GoTrueAnonKey    string

	SendGridAPIKey string
	EmailSender    string

	QuizSeedSchedule string
	QuizSeedOnStart  bool
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		APIPrefix: strings.TrimRight(getEnv("API_PREFIX", "/make-server-97f4c85e"), "/"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		KVBackend:  getEnv("KV_BACKEND", "sqlite"),
		DBDsn:      buildPostgresDSN(),
		SQLitePath: getEnv("SQLITE_PATH", "educare.db"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		AuthProvider: getEnv("AUTH_PROVIDER", "local"),
		JWTKey:       getEnv("JWT_SECRET_KEY", "defaultSecret"),
		TokenTTL:     getEnvDuration("TOKEN_TTL", 24*time.Hour),
		SaltRound:    getEnvInt("SALT_ROUND", 10),

		GoTrueURL:        getEnv("GOTRUE_URL", ""),
		GoTrueServiceKey: getEnv("GOTRUE_SERVICE_KEY", ""),
		GoTrueAnonKey:    getEnv("GOTRUE_ANON_KEY", ""),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "hello@educare.app"),

		QuizSeedSchedule: getEnv("QUIZ_SEED_SCHEDULE", ""),
		QuizSeedOnStart:  getEnvBool("QUIZ_SEED_ON_START", true),
	}

	// Validate critical configuration
	if cfg.AuthProvider == "local" && cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if cfg.AuthProvider == "gotrue" && cfg.GoTrueURL == "" {
		log.Println("Warning: AUTH_PROVIDER=gotrue but GOTRUE_URL is empty.")
	}

	return cfg
}

func buildPostgresDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "educare"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
