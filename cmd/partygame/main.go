package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/KirkDiggler/socialchaos/internal/common/clock"
	"github.com/KirkDiggler/socialchaos/internal/common/uuid"
	"github.com/KirkDiggler/socialchaos/internal/handlers/cli"
	"github.com/KirkDiggler/socialchaos/internal/prompts"
	"github.com/KirkDiggler/socialchaos/internal/random"
	"github.com/KirkDiggler/socialchaos/internal/services/session"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn"))
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
	log.Logger = logger

	// Load the prompt bank
	bank, err := loadPrompts(getEnv("PARTYGAME_PROMPTS_FILE", ""))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load prompts")
	}

	seed, err := strconv.ParseInt(getEnv("PARTYGAME_SEED", "0"), 10, 64)
	if err != nil {
		log.Fatal().Err(err).Msg("PARTYGAME_SEED must be an integer")
	}

	// Initialize session service
	sessionSvc, err := session.New(&session.Config{
		Prompts:       bank,
		AvatarBaseURL: getEnv("PARTYGAME_AVATAR_URL", session.DefaultAvatarBaseURL),
		Logger:        &logger,
		Random:        random.New(&random.Config{Seed: seed}),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session service")
	}

	handler, err := cli.New(&cli.Config{
		SessionService: sessionSvc,
		Out:            os.Stdout,
		Logger:         &logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create command handler")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := handler.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("Game loop stopped")
		os.Exit(1)
	}
}

// loadPrompts reads the prompt file when one is configured, otherwise the embedded defaults
func loadPrompts(path string) (*prompts.Bank, error) {
	if path == "" {
		return prompts.LoadDefaults()
	}
	return prompts.LoadFile(path)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
