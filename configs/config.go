package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	SERVER_PORT                  string
	SERVICE_NAME                 string
	LOG_LEVEL                    string
	OTEL_URL                     string
	NODE_URL                     string
	CONTRACT_ADDRESS             string
	CONTRACT_ABI_PATH            string
	GAS_LIMIT_HEADROOM           uint64
	MAX_RETRIES                  int
	RETRY_BACKOFF_SECONDS        int
	CONFIRMATION_TIMEOUT_SECONDS int
	TIMEOUT_IN_SECONDS           int
)

// LoadEnv loads the environment variables from a .env file
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	LoadEnvValues()

	return nil
}

func LoadEnvValues() {
	SERVER_PORT = GetEnv("SERVER_PORT", "8080")
	SERVICE_NAME = GetEnv("SERVICE_NAME", "prestamodefi")
	LOG_LEVEL = GetEnv("LOG_LEVEL", "info")
	OTEL_URL = GetEnv("OTEL_URL", "")
	NODE_URL = GetEnv("NODE_URL", "http://127.0.0.1:7545")
	CONTRACT_ADDRESS = GetEnv("CONTRACT_ADDRESS", "")
	CONTRACT_ABI_PATH = GetEnv("CONTRACT_ABI_PATH", "")
	GAS_LIMIT_HEADROOM, _ = strconv.ParseUint(GetEnv("GAS_LIMIT_HEADROOM", "100000"), 10, 64)
	MAX_RETRIES, _ = strconv.Atoi(GetEnv("MAX_RETRIES", "3"))
	RETRY_BACKOFF_SECONDS, _ = strconv.Atoi(GetEnv("RETRY_BACKOFF_SECONDS", "10"))
	CONFIRMATION_TIMEOUT_SECONDS, _ = strconv.Atoi(GetEnv("CONFIRMATION_TIMEOUT_SECONDS", "120"))
	TIMEOUT_IN_SECONDS, _ = strconv.Atoi(GetEnv("TIMEOUT_IN_SECONDS", "20"))
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
