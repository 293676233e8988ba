package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"inkwellcms.org/inkwell-admin/internal/admin/httpserver"
	"inkwellcms.org/inkwell-admin/internal/admin/httpserver/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("load .env")
	}
	configureLogging()

	rootCtx := context.Background()
	cfg := httpserver.Config{
		Address:         getEnv("ADMIN_HTTP_ADDR", ":8080"),
		BasePath:        getEnv("ADMIN_BASE_PATH", "/admin"),
		Environment:     getEnv("ADMIN_ENVIRONMENT", "Development"),
		SessionHashKey:  []byte(os.Getenv("ADMIN_SESSION_HASH_KEY")),
		SessionBlockKey: []byte(os.Getenv("ADMIN_SESSION_BLOCK_KEY")),
		Authenticator:   buildAuthenticator(rootCtx),
	}

	srv := httpserver.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	log.Info().Str("address", cfg.Address).Str("base_path", cfg.BasePath).Msg("admin server listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		cancel()
		stop()
		os.Exit(1)
	}
}

func configureLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level, err := zerolog.ParseLevel(getEnv("ADMIN_LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if getEnv("ADMIN_LOG_FORMAT", "console") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func buildAuthenticator(ctx context.Context) middleware.Authenticator {
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Info().Msg("FIREBASE_PROJECT_ID not set; using passthrough authenticator")
		return nil
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: projectID,
	})
	if err != nil {
		log.Error().Err(err).Msg("initialise Firebase app")
		return nil
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Error().Err(err).Msg("initialise Firebase auth client")
		return nil
	}

	log.Info().Str("project", projectID).Msg("Firebase authenticator enabled")
	return middleware.NewFirebaseAuthenticator(client)
}
