// Package config carga la configuración desde variables de entorno.
// Se lee una vez al arrancar y se trata como inmutable.
package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Port string

	// Storage: si DBDSN está vacío se usan repos in-memory (dev/tests).
	DBDSN string

	// Logging
	LogLevel  string
	LogFormat string
	AppName   string

	// Rate limit del POST de adopciones (requests por minuto por IP)
	AdoptionsPerMinute int
}

func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		DBDSN:              strings.TrimSpace(os.Getenv("DB_DSN")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		AppName:            getEnv("APP_NAME", "pet-adoptions"),
		AdoptionsPerMinute: getEnvInt("ADOPTIONS_PER_MINUTE", 60),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
