package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// HTTP server
	ListenAddr string
	APIKey     string

	// Game session
	BotName   string
	MCHost    string
	MCPort    int
	MCVersion string

	// Persistence; empty DSN keeps the action log in memory
	ActionDBDSN string

	// Local model runtime
	OllamaEndpoint string
	OllamaModel    string
	ChatDispatch   bool

	// Startup and dispatch tuning
	ConnectAttempts int
	ConnectDelay    time.Duration
	MoveTimeout     time.Duration
	ActionTimeout   time.Duration
}

func Load() Config {
	return Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":3001"),
		APIKey:     getEnv("API_KEY", ""),

		BotName:   getEnv("BOT_NAME", "craftagent"),
		MCHost:    getEnv("MC_HOST", "localhost"),
		MCPort:    getIntEnv("MC_PORT", 25565),
		MCVersion: getEnv("MC_VERSION", "1.21.1"),

		ActionDBDSN: getEnv("ACTION_DB_DSN", ""),

		OllamaEndpoint: getEnv("OLLAMA_ENDPOINT", "http://localhost:11434"),
		OllamaModel:    getEnv("OLLAMA_MODEL", "llama3.2"),
		ChatDispatch:   getBoolEnv("CHAT_DISPATCH", false),

		ConnectAttempts: getIntEnv("CONNECT_ATTEMPTS", 5),
		ConnectDelay:    getDurationEnv("CONNECT_DELAY", 3*time.Second),
		MoveTimeout:     getDurationEnv("MOVE_TIMEOUT", 120*time.Second),
		ActionTimeout:   getDurationEnv("ACTION_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
