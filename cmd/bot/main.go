package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/escala-bot/internal/config"
	"github.com/diegoclair/escala-bot/internal/database"
	"github.com/diegoclair/escala-bot/internal/domain/service"
	"github.com/diegoclair/escala-bot/internal/export"
	"github.com/diegoclair/escala-bot/internal/handlers"
	"github.com/diegoclair/escala-bot/internal/logger"
	"github.com/diegoclair/escala-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()

	logg, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync() //nolint:errcheck

	if envErr != nil {
		logg.Warn(".env file not found")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logg.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	logg.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logg.Fatal("failed to run migrations", zap.Error(err))
	}

	slackClient := slack.New(cfg.SlackBotToken)

	svc := service.NewInstance(database.NewInstance(db), slackClient, export.NewExporter(nil), cfg.OutputDir, logg)

	svc.Publisher.Start()
	defer svc.Publisher.Stop()

	handler := handlers.New(svc.Roster, svc.Schedule, cfg.SlackSigningSecret, logg)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", handlers.HandleHealth)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logg.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error("failed to shut down server", zap.Error(err))
	}
	logg.Info("server stopped")
}
