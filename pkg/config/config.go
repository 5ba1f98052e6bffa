package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Database configuration
	Database DatabaseConfig `mapstructure:"database"`

	// JWT configuration
	JWT JWTConfig `mapstructure:"jwt"`

	// Payment configuration
	Payment PaymentConfig `mapstructure:"payment"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	SecretKey      string `mapstructure:"secret_key"`
	AccessTokenTTL int    `mapstructure:"access_token_ttl"`
	Issuer         string `mapstructure:"issuer"`
}

// PaymentConfig holds the simulated payment processor configuration.
// SuccessRate applies to online payments only; cash payments always succeed.
type PaymentConfig struct {
	Amount        float64 `mapstructure:"amount"`
	SuccessRate   float64 `mapstructure:"success_rate"`
	WebhookSecret string  `mapstructure:"webhook_secret"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/hms")

	// Set default values
	setDefaults()

	// Enable environment variable support
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 4000)
	viper.SetDefault("server.read_timeout", 15)
	viper.SetDefault("server.write_timeout", 15)
	viper.SetDefault("server.idle_timeout", 60)

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "hospital")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", 300)

	viper.SetDefault("jwt.secret_key", "")
	viper.SetDefault("jwt.access_token_ttl", 86400)
	viper.SetDefault("jwt.issuer", "hospital-api")

	viper.SetDefault("payment.amount", 50)
	viper.SetDefault("payment.success_rate", 0.9)
	viper.SetDefault("payment.webhook_secret", "")

	viper.SetDefault("log_level", "info")
}

// validate rejects configurations the server cannot safely start with
func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if cfg.Payment.SuccessRate < 0 || cfg.Payment.SuccessRate > 1 {
		return fmt.Errorf("payment.success_rate must be between 0 and 1")
	}
	if cfg.Payment.Amount <= 0 {
		return fmt.Errorf("payment.amount must be positive")
	}
	return nil
}
