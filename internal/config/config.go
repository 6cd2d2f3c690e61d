package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string // optional; parse-only mode when empty
	Port        string

	// Parser configuration
	TraceParser bool // log every heuristic decision the pipeline makes
	MaxUploadMB int64
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	maxUploadMB := int64(10)
	if v, err := strconv.ParseInt(os.Getenv("MAX_UPLOAD_MB"), 10, 64); err == nil && v > 0 {
		maxUploadMB = v
	}

	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        port,
		TraceParser: os.Getenv("PARSER_TRACE") == "1" || os.Getenv("PARSER_TRACE") == "true",
		MaxUploadMB: maxUploadMB,
	}
}
