package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the process needs, loaded once in main and
// injected from there. No package reads the environment on its own.
type Config struct {
	Port string

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLDatabase string

	StripeSecretKey     string
	StripeWebhookSecret string

	// AppBaseURL is the public origin used to build checkout redirect URLs.
	AppBaseURL string

	// FirebaseCredentialsFile is optional; the SDK falls back to
	// application-default credentials when empty.
	FirebaseCredentialsFile string
}

// Load reads configuration from the environment with the same defaults the
// local docker-compose setup uses.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("MYSQL_USER", "user")
	v.SetDefault("MYSQL_PWD", "password")
	v.SetDefault("MYSQL_HOST", "tcp(127.0.0.1:3306)")
	v.SetDefault("MYSQL_DATABASE", "unwokeai_db")
	v.SetDefault("APP_BASE_URL", "http://localhost:5173")

	cfg := &Config{
		Port:                    v.GetString("PORT"),
		MySQLUser:               v.GetString("MYSQL_USER"),
		MySQLPassword:           v.GetString("MYSQL_PWD"),
		MySQLHost:               v.GetString("MYSQL_HOST"),
		MySQLDatabase:           v.GetString("MYSQL_DATABASE"),
		StripeSecretKey:         v.GetString("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:     v.GetString("STRIPE_WEBHOOK_SECRET"),
		AppBaseURL:              v.GetString("APP_BASE_URL"),
		FirebaseCredentialsFile: v.GetString("GOOGLE_APPLICATION_CREDENTIALS"),
	}

	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("config: STRIPE_SECRET_KEY is required")
	}

	return cfg, nil
}

// DSN builds the MySQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@%s/%s?parseTime=true&loc=Local",
		c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLDatabase)
}
