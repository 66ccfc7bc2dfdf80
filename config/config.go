package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every externally supplied setting of the catalog API.
type Config struct {
	ServiceName string
	DatabaseURL string
	Port        string
	LogLevel    string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present, so local runs need no exports.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVICE_NAME", "catalog-api")
	v.SetDefault("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=catalog port=5432 sslmode=disable")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	return &Config{
		ServiceName: v.GetString("SERVICE_NAME"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
	}
}
