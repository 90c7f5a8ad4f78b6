package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort        = "8080"
	defaultCommissionBps  = 1500
	defaultSSLMode        = "disable"
	defaultAllowedOrigins = "http://localhost:3000"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	AppPort  string
	AppEnv   string
	LogLevel string

	JWTSecret         string
	InternalSecretKey string
	CORSOrigins       []string

	// DefaultCommissionBps is applied to newly registered vendors.
	DefaultCommissionBps int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:               os.Getenv("DB_HOST"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBPort:               os.Getenv("DB_PORT"),
		DBSSLMode:            getEnv("DB_SSLMODE", defaultSSLMode),
		AppPort:              getEnv("APP_PORT", defaultAppPort),
		AppEnv:               os.Getenv("APP_ENV"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		InternalSecretKey:    os.Getenv("INTERNAL_SECRET_KEY"),
		CORSOrigins:          splitList(getEnv("CORS_ORIGINS", defaultAllowedOrigins)),
		DefaultCommissionBps: getEnvInt("DEFAULT_COMMISSION_BPS", defaultCommissionBps),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 10000 {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
