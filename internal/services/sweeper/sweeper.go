// Package services содержит фоновую деактивацию давно не входивших пользователей.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/course-platform/internal/lib/sl"
)

// UserRepository определяет методы деактивации пользователей в хранилище.
type UserRepository interface {
	// DeactivateInactiveUsers деактивирует пользователей, не входивших
	// с момента threshold, и возвращает их количество.
	DeactivateInactiveUsers(ctx context.Context, threshold time.Time) (int, error)
}

// SweeperService периодически деактивирует неактивные учетные записи.
// Пользователи без единого входа не трогаются: им не от чего отсчитывать простой.
type SweeperService struct {
	repo      UserRepository
	threshold time.Duration
	log       *slog.Logger
}

// NewSweeperService создает новый экземпляр SweeperService.
func NewSweeperService(repo UserRepository, threshold time.Duration, log *slog.Logger) *SweeperService {
	return &SweeperService{
		repo:      repo,
		threshold: threshold,
		log:       log,
	}
}

// Run запускает цикл деактивации с интервалом interval до отмены контекста.
// Первый проход выполняется сразу.
func (s *SweeperService) Run(ctx context.Context, interval time.Duration) {
	s.Sweep(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Sweep выполняет один проход деактивации.
func (s *SweeperService) Sweep(ctx context.Context) {
	s.log.Info("starting inactive users sweep")
	threshold := time.Now().Add(-s.threshold)
	count, err := s.repo.DeactivateInactiveUsers(ctx, threshold)
	if err != nil {
		s.log.Error("failed to deactivate inactive users", sl.Err(err))
		return
	}
	if count == 0 {
		s.log.Info("no inactive users found")
		return
	}
	s.log.Info("deactivated inactive users", slog.Int("count", count))
}
