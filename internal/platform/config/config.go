package config

import (
	"log"
	"strings"

	"github.com/SscSPs/temple_admin_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	MigrationsPath string

	// Tax policy years accepted by the settings API
	TaxYearRange domain.YearRange

	RateLimit          string // ulule/limiter formatted rate, e.g. "300-M"
	RedisURL           string // Optional; shares rate limit counters between instances
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("TAX_MIN_YEAR", domain.DefaultYearRange.Min)
	v.SetDefault("TAX_MAX_YEAR", domain.DefaultYearRange.Max)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		TaxYearRange: domain.YearRange{
			Min: v.GetInt("TAX_MIN_YEAR"),
			Max: v.GetInt("TAX_MAX_YEAR"),
		},
		RateLimit:          v.GetString("RATE_LIMIT"),
		RedisURL:           v.GetString("REDIS_URL"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.TaxYearRange.Min > cfg.TaxYearRange.Max {
		log.Printf("Warning: TAX_MIN_YEAR (%d) is after TAX_MAX_YEAR (%d). Using defaults.\n", cfg.TaxYearRange.Min, cfg.TaxYearRange.Max)
		cfg.TaxYearRange = domain.DefaultYearRange
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
