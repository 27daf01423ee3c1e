// internal/config/config.go
//
// Environment configuration for the word scramble server.
// Responsibilities:
//   - Parse env vars (after godotenv has loaded .env) into Config via struct tags.
//   - Validate LOG_LEVEL, LOG_FORMAT and WORDS_LANGUAGE once, at load time,
//     and keep the parsed values so callers never re-parse them.
//
// Environment variables:
//   PORT, LOG_LEVEL, LOG_FORMAT, CLIENT_ORIGIN, REQUEST_TIMEOUT,
//   WORDS_ROOTS_FILE, WORDS_DICTIONARY_FILE, WORDS_LANGUAGE

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port           string        `env:"PORT"                  envDefault:"5175"`
	LogLevel       string        `env:"LOG_LEVEL"             envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT"            envDefault:"json"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN"         envDefault:"http://localhost:5173"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"       envDefault:"10s"`
	RootsFile      string        `env:"WORDS_ROOTS_FILE"`
	DictionaryFile string        `env:"WORDS_DICTIONARY_FILE"`
	Language       string        `env:"WORDS_LANGUAGE"        envDefault:"en"`

	level zerolog.Level // parsed LogLevel, set by Load
	lang  language.Tag  // parsed Language, set by Load
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	tag, err := language.Parse(cfg.Language)
	if err != nil {
		return Config{}, fmt.Errorf("config: WORDS_LANGUAGE %q: %w", cfg.Language, err)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return Config{}, fmt.Errorf("config: LOG_FORMAT must be json or console, got %q", cfg.LogFormat)
	}

	cfg.level, cfg.lang = lvl, tag
	return cfg, nil
}

// Level returns the log level parsed by Load.
func (c Config) Level() zerolog.Level { return c.level }

// Lang returns the lookup language parsed by Load.
func (c Config) Lang() language.Tag { return c.lang }

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }
