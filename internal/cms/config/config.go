package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MongoURI     string
	Port         string
	DBName       string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Long-poll settings for the deletion-progress endpoint.
	DeletionPollInterval time.Duration
	DeletionPollTimeout  time.Duration
}

func LoadConfig() (*Config, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		MongoURI:             mongoURI,
		Port:                 port,
		DBName:               getEnv("DB_NAME", "casetrack_db"),
		ReadTimeout:          getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:         getEnvDuration("SERVER_WRITE_TIMEOUT", 45*time.Second),
		DeletionPollInterval: getEnvDuration("DELETION_POLL_INTERVAL", time.Second),
		DeletionPollTimeout:  getEnvDuration("DELETION_POLL_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.DeletionPollInterval <= 0 {
		return fmt.Errorf("DELETION_POLL_INTERVAL must be positive")
	}
	if c.DeletionPollTimeout < c.DeletionPollInterval {
		return fmt.Errorf("DELETION_POLL_TIMEOUT must not be shorter than DELETION_POLL_INTERVAL")
	}
	// The write timeout bounds how long a long-poll response can stay open.
	if c.WriteTimeout <= c.DeletionPollTimeout {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must exceed DELETION_POLL_TIMEOUT")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
