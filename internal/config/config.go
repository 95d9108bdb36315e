package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Assistant AssistantConfig
	Services  ServicesConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StoreConfig struct {
	// Path to the SQLite file backing the local key-value store.
	Path string
}

type AssistantConfig struct {
	// MaxSuggestions caps how many offered actions a reply may carry.
	MaxSuggestions int
	SpeechLang     string
}

type ServicesConfig struct {
	// SimulatedLatency is the fixed delay applied by the mock auth,
	// payment, comparison and geocoding services.
	SimulatedLatency time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "store.db"),
		},
		Assistant: AssistantConfig{
			MaxSuggestions: getEnvInt("ASSISTANT_MAX_SUGGESTIONS", 3),
			SpeechLang:     getEnv("ASSISTANT_SPEECH_LANG", "en-US"),
		},
		Services: ServicesConfig{
			SimulatedLatency: getEnvDuration("SERVICES_SIMULATED_LATENCY", time.Second),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		fmt.Printf("Warning: invalid duration for %s, using default\n", key)
	}
	return defaultValue
}
