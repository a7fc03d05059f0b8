// Package config loads process configuration for the terminal demo
// client: where the lexicon file lives, what seed to start a game
// with, and how verbose to log. This is the one place in the repo that
// actually needs the teacher's ambient-config story (declared in its
// go.mod, exercised there only by its unretrieved App Engine
// deployment files); here it backs a real entry point.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the process-level configuration for cmd/skraflctl.
type Config struct {
	LexiconPath string
	Seed        int64
	LogLevel    string
}

const (
	defaultLexiconPath = "words.txt"
	defaultSeed        = 1
	defaultLogLevel    = "info"
)

// Load reads LEXICON_PATH, GAME_SEED, and LOG_LEVEL from the process
// environment, first loading envFile into the environment if it
// exists (a missing .env is not an error, matching godotenv's own
// convention of a silently-optional file in development).
func Load(envFile string) Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("config: no .env file loaded from %s: %v", envFile, err)
		}
	}
	cfg := Config{
		LexiconPath: defaultLexiconPath,
		Seed:        defaultSeed,
		LogLevel:    defaultLogLevel,
	}
	if v := os.Getenv("LEXICON_PATH"); v != "" {
		cfg.LexiconPath = v
	}
	if v := os.Getenv("GAME_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// Logger builds a *log.Logger whose prefix reflects LogLevel, in the
// teacher's go-app/main.go idiom of a single process-wide *log.Logger
// configured once at startup.
func (c Config) Logger() *log.Logger {
	return log.New(os.Stderr, "["+c.LogLevel+"] ", log.LstdFlags)
}
