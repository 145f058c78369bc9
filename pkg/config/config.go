package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// RateLimit is a ulule/limiter formatted rate, e.g. "300-M".
	RateLimit string

	// AllowedOrigins is the comma separated CORS origin list.
	AllowedOrigins []string

	// SMS gateway settings. SMS sending is disabled when the gateway URL
	// is empty.
	SMSGatewayURL string
	SMSSenderID   string
	SMSWorkers    int
}

// SMSEnabled reports whether outbound SMS delivery is configured.
func (c *Config) SMSEnabled() bool {
	return c.SMSGatewayURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SMS_GATEWAY_URL", "")
	viper.SetDefault("SMS_SENDER_ID", "GURUFN")
	viper.SetDefault("SMS_WORKERS", 4)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	origins := viper.GetString("ALLOWED_ORIGINS")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	cfg.SMSGatewayURL = viper.GetString("SMS_GATEWAY_URL")
	cfg.SMSSenderID = viper.GetString("SMS_SENDER_ID")
	cfg.SMSWorkers = viper.GetInt("SMS_WORKERS")
	if cfg.SMSWorkers < 1 {
		cfg.SMSWorkers = 4
	}
	if !cfg.SMSEnabled() {
		log.Println("Warning: SMS_GATEWAY_URL not set. SMS notifications are disabled.")
	}

	return cfg, nil
}
