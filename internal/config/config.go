package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Addr              string   `envconfig:"ADDR" default:":4000"`
	AllowedOrigins    []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	HistoryDBPath     string   `envconfig:"HISTORY_DB" default:"history.db"`
	SentenceCacheSize int      `envconfig:"SENTENCE_CACHE_SIZE" default:"256"`
	Debug             bool     `envconfig:"DEBUG" default:"false"`
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
