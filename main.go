package main

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	lang := cfg.Lang()
	lists, err := loadWords(words.Source{
		RootsFile:      cfg.RootsFile,
		DictionaryFile: cfg.DictionaryFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	roots, dict := lists.Stats()
	log.Info().
		Int("roots", roots).
		Int("dictionary", dict).
		Stringer("dictionaryLanguage", lists.Dictionary().Language()).
		Stringer("lookupLanguage", lang).
		Msg("word lists loaded")

	srv := httpserver.New(
		store.NewMemoryStore(),
		lists,
		game.NewValidator(lists.Dictionary(), lang),
		httpserver.Options{ClientOrigin: cfg.ClientOrigin, RequestTimeout: cfg.RequestTimeout},
	)
	log.Info().Str("port", cfg.Port).Msg("starting wordscramble server")
	if err := srv.Start(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// loadWords loads the configured lists and falls back to the embedded
// defaults when a configured file is missing, unreadable or has no roots.
func loadWords(src words.Source) (*words.Lists, error) {
	lists, err := words.Load(src)
	if err == nil {
		return lists, nil
	}
	if src.RootsFile == "" && src.DictionaryFile == "" {
		return nil, err
	}
	ev := log.Warn().Err(err)
	if errors.Is(err, game.ErrEmptyWordList) {
		ev = ev.Bool("emptyRoots", true)
	}
	ev.Msg("configured word lists unusable, using embedded defaults")
	return words.LoadDefaults()
}

func setupLogging(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
