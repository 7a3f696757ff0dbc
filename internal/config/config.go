package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Environment   string
	DBDSN         string
	ServerPort    string
	SessionSecret string
	SeedPassword  string
}

func Load() (*Config, error) {
	// .env подхватывается, если лежит рядом; в проде всё приходит из окружения
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	cfg := &Config{
		Environment:   v.GetString("APP_ENV"),
		DBDSN:         v.GetString("DB_DSN"),
		ServerPort:    v.GetString("SERVER_PORT"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		SeedPassword:  v.GetString("SEED_PASSWORD"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SeedPassword == "" {
		cfg.SeedPassword = "Пароль123"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	return nil
}
