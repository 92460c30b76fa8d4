package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config holds all application configuration
type Config struct {
	Host            string
	Port            int
	Debug           bool
	BotToken        string
	ShutdownTimeout time.Duration
	RateLimit       int // requests per minute per client IP, 0 disables limiting
}

// Load reads configuration from environment variables, then applies
// command-line flag overrides from args
func Load(args []string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	port, err := getEnvInt("PORT", 5000)
	if err != nil {
		return nil, err
	}
	debug, err := getEnvBool("DEBUG", false)
	if err != nil {
		return nil, err
	}
	shutdownSeconds, err := getEnvInt("SHUTDOWN_TIMEOUT", 10)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getEnvInt("RATE_LIMIT", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:            getEnv("HOST", "0.0.0.0"),
		Port:            port,
		Debug:           debug,
		BotToken:        os.Getenv("BOT_TOKEN"),
		ShutdownTimeout: time.Duration(shutdownSeconds) * time.Second,
		RateLimit:       rateLimit,
	}

	flags := pflag.NewFlagSet("subota", pflag.ContinueOnError)
	flags.StringVar(&cfg.Host, "host", cfg.Host, "address to listen on")
	flags.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	flags.BoolVarP(&cfg.Debug, "debug", "d", cfg.Debug, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that configuration values are usable
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT must not be negative")
	}
	return nil
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// BotEnabled reports whether the Telegram bot should be started
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
