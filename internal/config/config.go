package config

import (
	"os"
)

type Config struct {
	Port          string
	DataFilePath  string
	SessionSecret string
	StaticDir     string
	IndexFile     string
	GinMode       string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8000"),
		DataFilePath:  getEnv("DATA_FILE_PATH", "data.json"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		StaticDir:     getEnv("STATIC_DIR", "static"),
		IndexFile:     getEnv("INDEX_FILE", "templates/index.html"),
		GinMode:       getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
