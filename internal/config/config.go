package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins []string
	Mongo       MongoConfig
	Shopify     ShopifyConfig
	Zencoder    ZencoderConfig
	API         APIConfig
	LogLevel    string
}

type MongoConfig struct {
	URI    string
	DBName string
}

type ShopifyConfig struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
}

type ZencoderConfig struct {
	ClientID  string
	SecretKey string
	BaseURL   string
}

type APIConfig struct {
	// BaseURL is the public address of this service, used when registering
	// webhook callbacks with external platforms.
	BaseURL string
	// AdminKeyHash is a bcrypt hash of the admin API key guarding mutating
	// back-office routes.
	AdminKeyHash string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "backoffice")
	viper.SetDefault("SHOPIFY_API_VERSION", "2024-01")
	viper.SetDefault("ZENCODER_BASE_URL", "https://api.zencoder.com/v2")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		CORSOrigins: strings.Split(getEnvOrViper("CORS_ORIGINS", "*"), ","),
		Mongo: MongoConfig{
			URI:    getEnvOrViper("MONGO_URL", "mongodb://localhost:27017"),
			DBName: getEnvOrViper("DB_NAME", "backoffice"),
		},
		Shopify: ShopifyConfig{
			ShopDomain:  getEnvOrViper("SHOPIFY_STORE", ""),
			AccessToken: getEnvOrViper("SHOPIFY_ADMIN_TOKEN", ""),
			APIVersion:  getEnvOrViper("SHOPIFY_API_VERSION", "2024-01"),
		},
		Zencoder: ZencoderConfig{
			ClientID:  getEnvOrViper("ZENCODER_CLIENT_ID", ""),
			SecretKey: getEnvOrViper("ZENCODER_SECRET_KEY", ""),
			BaseURL:   getEnvOrViper("ZENCODER_BASE_URL", "https://api.zencoder.com/v2"),
		},
		API: APIConfig{
			BaseURL:      getEnvOrViper("API_BASE_URL", "http://localhost:8080"),
			AdminKeyHash: getEnvOrViper("ADMIN_API_KEY_HASH", ""),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}
	if cfg.Mongo.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
