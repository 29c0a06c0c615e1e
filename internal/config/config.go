package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the process needs at startup. Values come from
// config.yaml when present, with CT_-prefixed environment variables taking
// precedence (e.g. CT_DATABASE_URL, CT_SMTP_PASSWORD).
type Config struct {
	HTTPAddr    string
	DatabaseURL string
	RedisAddr   string
	SMTP        SMTP
	Reminder    Reminder
	Auth        Auth
}

type SMTP struct {
	Host         string
	Port         int
	Username     string
	Password     string
	AuthDisabled bool
}

type Reminder struct {
	Recipient string
	Schedule  string // "HH:MM" local time of the daily evaluation run
}

type Auth struct {
	Username     string
	PasswordHash string // bcrypt hash of the operator password
	JWTSecret    string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("reminder.schedule", "09:00")
	v.SetDefault("auth.username", "admin")

	v.SetEnvPrefix("CT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		HTTPAddr:    v.GetString("http.addr"),
		DatabaseURL: v.GetString("database.url"),
		RedisAddr:   v.GetString("redis.addr"),
		SMTP: SMTP{
			Host:         v.GetString("smtp.host"),
			Port:         v.GetInt("smtp.port"),
			Username:     v.GetString("smtp.username"),
			Password:     v.GetString("smtp.password"),
			AuthDisabled: v.GetBool("smtp.auth_disabled"),
		},
		Reminder: Reminder{
			Recipient: v.GetString("reminder.recipient"),
			Schedule:  v.GetString("reminder.schedule"),
		},
		Auth: Auth{
			Username:     v.GetString("auth.username"),
			PasswordHash: v.GetString("auth.password_hash"),
			JWTSecret:    v.GetString("auth.jwt_secret"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("database.url is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwt_secret is required")
	}
	if _, err := time.Parse("15:04", cfg.Reminder.Schedule); err != nil {
		return nil, fmt.Errorf("reminder.schedule must be HH:MM: %w", err)
	}

	return cfg, nil
}
