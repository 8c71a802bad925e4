// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// Env holds the configuration values for the application.
type Env struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	LogLevel    string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

// Load reads the environment and returns an Env. Only the database URL and
// JWT secret are mandatory; everything else has a workable local default.
func Load() (Env, error) {
	e := Env{
		Port:           get("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		LogLevel:       get("LOG_LEVEL", "info"),
		MinioEndpoint:  get("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    get("MINIO_BUCKET", "inspection-photos"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
	}
	if e.DatabaseURL == "" {
		return Env{}, fmt.Errorf("missing env DATABASE_URL")
	}
	if e.JWTSecret == "" {
		return Env{}, fmt.Errorf("missing env JWT_SECRET")
	}
	return e, nil
}

// get returns the value of the environment variable k or def if not set.
func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
