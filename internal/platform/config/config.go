package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	RateLimit          string   // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string // browser UI origins allowed to call the API
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}
		log.Println("Warning: CORS_ALLOWED_ORIGINS not set. Defaulting to http://localhost:3000.")
	}

	return cfg, nil
}
