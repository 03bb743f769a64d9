package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	MigrationsPath string
	LogLevel       string
}

// Load reads configuration from environment variables with an optional
// config.yaml next to the binary. Every key has a development default.
func Load() *Config {
	viper.SetDefault("SERVER_ADDR", ":8080")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "chirper")
	viper.SetDefault("DB_PASSWORD", "chirper_dev_password")
	viper.SetDefault("DB_NAME", "chirper")
	viper.SetDefault("DB_SSLMODE", "disable")

	viper.SetDefault("MIGRATIONS_PATH", "./migrations")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	_ = viper.ReadInConfig() // config file is optional

	return &Config{
		ServerAddr:     viper.GetString("SERVER_ADDR"),
		DBHost:         viper.GetString("DB_HOST"),
		DBPort:         viper.GetString("DB_PORT"),
		DBUser:         viper.GetString("DB_USER"),
		DBPassword:     viper.GetString("DB_PASSWORD"),
		DBName:         viper.GetString("DB_NAME"),
		DBSSLMode:      viper.GetString("DB_SSLMODE"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
	}
}

// DSN renders the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
