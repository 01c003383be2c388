package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Debug          bool
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	MetricsUser    string
	MetricsPass    string
	PprofSecret    string
	RateLimitRPS   float64
	RateLimitBurst int
	SeedData       bool
}

// LoadConfig reads .env when present and falls back to process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment without touching .env.
func FromEnv() *Config {
	return &Config{
		Port:           getEnv("PORT", "3333"),
		Debug:          getEnvBool("DEBUG", false),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		MetricsUser:    getEnv("METRICS_USER", ""),
		MetricsPass:    getEnv("METRICS_PASS", ""),
		PprofSecret:    getEnv("PPROF_SECRET", ""),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 30),
		SeedData:       getEnvBool("SEED_DATA", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}
