package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries every runtime knob. Values come from the environment, with a
// .env file loaded by main when present.
type Config struct {
	Port string

	PostgresUser     string
	PostgresHost     string
	PostgresPassword string
	PostgresDatabase string
	PostgresPort     string

	RedisURL string

	GatewayURL        string
	GatewayTimeout    time.Duration
	GatewayMaxRetries int

	// Auto-deploy of freshly approved chaincodes.
	AutoDeploy     bool
	DefaultChannel string
	DefaultPeers   []string

	Workers    int
	TaskBuffer int
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDatabase: os.Getenv("POSTGRES_DB"),
		PostgresPort:     os.Getenv("POSTGRES_PORT"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		GatewayURL:        getEnv("GATEWAY_URL", "http://localhost:3001"),
		GatewayTimeout:    time.Duration(getEnvInt("GATEWAY_TIMEOUT", 30)) * time.Second,
		GatewayMaxRetries: getEnvInt("GATEWAY_MAX_RETRIES", 3),

		AutoDeploy:     getEnvBool("AUTO_DEPLOY", false),
		DefaultChannel: getEnv("DEFAULT_CHANNEL", "ibnchannel"),
		DefaultPeers:   getEnvList("DEFAULT_PEERS", nil),

		Workers:    getEnvInt("WORKERS", 4),
		TaskBuffer: getEnvInt("TASK_BUFFER", 64),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
