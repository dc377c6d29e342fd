package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// RolloverMonth is the month (1-12) in which a new collection year
	// starts. Before this month, "now" still belongs to the previous year's
	// cycle.
	RolloverMonth int

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// DriftSweepSpec is a cron spec for the periodic status drift sweep.
	// Empty disables the sweep.
	DriftSweepSpec string

	// CORSAllowedOrigins lists origins allowed to call the API.
	CORSAllowedOrigins []string

	// HTTP server timeouts.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ROLLOVER_MONTH", 10)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("DRIFT_SWEEP_SPEC", "@hourly")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("READ_TIMEOUT", "10s")
	viper.SetDefault("WRITE_TIMEOUT", "10s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	rolloverMonth := viper.GetInt("ROLLOVER_MONTH")
	if rolloverMonth < 1 || rolloverMonth > 12 {
		log.Printf("Warning: Invalid value for ROLLOVER_MONTH (%d). Defaulting to 10.\n", rolloverMonth)
		rolloverMonth = 10
	}

	readTimeout, err := time.ParseDuration(viper.GetString("READ_TIMEOUT"))
	if err != nil {
		readTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for READ_TIMEOUT. Defaulting to %s.\n", readTimeout.String())
	}
	writeTimeout, err := time.ParseDuration(viper.GetString("WRITE_TIMEOUT"))
	if err != nil {
		writeTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for WRITE_TIMEOUT. Defaulting to %s.\n", writeTimeout.String())
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RolloverMonth = rolloverMonth
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.DriftSweepSpec = viper.GetString("DRIFT_SWEEP_SPEC")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")
	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout

	return cfg, nil
}
