// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	CORS   CORSConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// MongoConfig contains document store connection settings.
type MongoConfig struct {
	URI      string
	Database string
}

// AuthConfig contains token signing settings. The secret is required
// configuration; it is never compiled into the binary.
type AuthConfig struct {
	JWTSecret string
}

// CORSConfig contains browser cross-origin settings.
type CORSConfig struct {
	AllowedOrigin string
}

// Load reads configuration from environment variables.
// Returns error if required variables are not set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	serverHost, err := getRequiredEnv("SERVER_HOST")
	if err != nil {
		return nil, err
	}

	serverPort, err := getRequiredEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}

	mongoURI, err := getRequiredEnv("MONGO_URI")
	if err != nil {
		return nil, err
	}

	mongoDB, err := getRequiredEnv("MONGO_DB")
	if err != nil {
		return nil, err
	}

	jwtSecret, err := getRequiredEnv("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: serverHost,
			Port: serverPort,
		},
		Mongo: MongoConfig{
			URI:      mongoURI,
			Database: mongoDB,
		},
		Auth: AuthConfig{
			JWTSecret: jwtSecret,
		},
		CORS: CORSConfig{
			AllowedOrigin: corsOrigin,
		},
	}

	return cfg, nil
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}
