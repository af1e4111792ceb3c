package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/joho/godotenv"
)

// Config is read from the environment. It shares variable names with the server.
type Config struct {
	MongoURI      string `env:"LEADSADMIN_MONGO_URI"`
	MongoDatabase string `env:"LEADSADMIN_MONGO_DATABASE" envDefault:"leads_admin"`
	LogFile       string `env:"LEADSCTL_LOG_FILE"`
}

// loadConfig loads envFile (or ./.env when envFile is empty and the file
// exists) into the process environment, then parses Config from it.
// Variables already set in the environment win over the file.
func loadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.MongoURI = strings.TrimSpace(cfg.MongoURI)
	cfg.MongoDatabase = strings.TrimSpace(cfg.MongoDatabase)
	return cfg, nil
}

func (c Config) validate() error {
	if c.MongoURI == "" {
		return errors.New("no MongoDB URI: set LEADSADMIN_MONGO_URI or pass --mongo-uri")
	}
	if err := wafflemongo.ValidateURI(c.MongoURI); err != nil {
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if c.MongoDatabase == "" {
		return errors.New("no database name: set LEADSADMIN_MONGO_DATABASE or pass --database")
	}
	return nil
}
