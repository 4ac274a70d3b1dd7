package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries the session tunables. All fields come from UNO_* environment
// variables, optionally via a .env file.
type Config struct {
	MinPlayers       int `split_words:"true" default:"2"`
	MaxPlayers       int `split_words:"true" default:"10"`
	StartingHandSize int `split_words:"true" default:"7"`
	CodeLength       int `split_words:"true" default:"8"`
}

// Load reads the environment, after loading a .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("uno", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the built-in defaults without touching the environment.
func Default() *Config {
	return &Config{
		MinPlayers:       2,
		MaxPlayers:       10,
		StartingHandSize: 7,
		CodeLength:       8,
	}
}
