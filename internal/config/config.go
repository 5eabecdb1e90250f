package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Logger  LoggerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
}

// GatewayConfig holds the NestPay merchant credentials and deployment
// selection. StoreKey may stay empty when 3-D Secure is not used.
type GatewayConfig struct {
	ClientID    string // merchant number assigned by the bank
	Username    string // API user
	Password    string // API password
	StoreKey    string // shared secret for the 3-D Secure hash
	Bank        string // isbank, akbank, denizbank, ...
	Environment string // TEST or PROD
	Timeout     int    // request timeout in seconds
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// Load reads configuration from the environment, with an optional .env file
// for local development
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Gateway: GatewayConfig{
			ClientID:    getEnv("NESTPAY_CLIENT_ID", ""),
			Username:    getEnv("NESTPAY_USERNAME", ""),
			Password:    getEnv("NESTPAY_PASSWORD", ""),
			StoreKey:    getEnv("NESTPAY_STORE_KEY", ""),
			Bank:        getEnv("NESTPAY_BANK", "isbank"),
			Environment: getEnv("NESTPAY_ENVIRONMENT", "TEST"),
			Timeout:     getEnvAsInt("NESTPAY_TIMEOUT", 30),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	if cfg.Gateway.ClientID == "" {
		return nil, fmt.Errorf("NESTPAY_CLIENT_ID is required")
	}
	if cfg.Gateway.Username == "" {
		return nil, fmt.Errorf("NESTPAY_USERNAME is required")
	}
	if cfg.Gateway.Password == "" {
		return nil, fmt.Errorf("NESTPAY_PASSWORD is required")
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
