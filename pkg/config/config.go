package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	AuthAPI AuthAPIConfig
}

// AppConfig holds storefront-level configuration
type AppConfig struct {
	Env        string
	AdminEmail string
	KeyPrefix  string
}

// RedisConfig holds Redis configuration for the durable key-value store
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthAPIConfig holds auth backend configuration
type AuthAPIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Load loads configuration from the environment. A .env file in the working
// directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Env:        getEnv("APP_ENV", "development"),
			AdminEmail: getEnv("ADMIN_EMAIL", "admin@gmail.com"),
			KeyPrefix:  getEnv("STORAGE_KEY_PREFIX", "@HotelApp"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		AuthAPI: AuthAPIConfig{
			BaseURL:        getEnv("AUTH_API_URL", "http://localhost:3000/api"),
			TimeoutSeconds: getEnvAsInt("AUTH_API_TIMEOUT_SECONDS", 10),
		},
	}, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
