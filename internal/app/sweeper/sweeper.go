// Package sweeper собирает фоновое приложение деактивации пользователей,
// не заходивших на платформу дольше порога неактивности.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/course-platform/internal/config"
	sweeperservice "github.com/magabrotheeeer/course-platform/internal/services/sweeper"
	"github.com/magabrotheeeer/course-platform/internal/storage"
)

// App инкапсулирует фоновый процесс деактивации.
type App struct {
	sweeperService *sweeperservice.SweeperService
	db             *storage.Storage
	interval       time.Duration
	logger         *slog.Logger
}

// New создает приложение деактивации неактивных пользователей.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}

	sweeperService := sweeperservice.NewSweeperService(db, cfg.InactivityThreshold, logger)

	return &App{
		sweeperService: sweeperService,
		db:             db,
		interval:       cfg.SweepInterval,
		logger:         logger,
	}, nil
}

// Run запускает цикл деактивации и блокируется до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	a.sweeperService.Run(ctx, a.interval)

	a.logger.Info("sweeper service shutting down gracefully")
	if err := a.db.DB.Close(); err != nil {
		a.logger.Error("failed to close database", slog.Any("err", err))
	}
	return nil
}
