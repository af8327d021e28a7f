package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string

	// Rate limit quotas, requests per minute per bucket.
	RatePublicPerMin  int
	RateLoginPerMin   int
	RateAPIUserPerMin int
	RateAPIIPPerMin   int

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MySQLDSN:          getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/rants?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RatePublicPerMin:  getEnvInt("RATE_PUBLIC_PER_MIN", 10),
		RateLoginPerMin:   getEnvInt("RATE_LOGIN_PER_MIN", 5),
		RateAPIUserPerMin: getEnvInt("RATE_API_USER_PER_MIN", 60),
		RateAPIIPPerMin:   getEnvInt("RATE_API_IP_PER_MIN", 20),
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
