package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	JWTSecret  string
	ServerPort string
	// Latency is an artificial delay applied to register and login,
	// standing in for the upstream call a real deployment would make.
	Latency time.Duration
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	latencyMS, err := strconv.Atoi(getEnv("SIMULATED_LATENCY_MS", "500"))
	if err != nil {
		latencyMS = 500
	}

	return &Config{
		DBPath:     getEnv("DB_PATH", "placement_prep.db"),
		JWTSecret:  getEnv("JWT_SECRET", "secret"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Latency:    time.Duration(latencyMS) * time.Millisecond,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
