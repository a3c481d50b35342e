// Package services содержит бизнес-логику переключения подписок на курсы.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/course-platform/internal/authz"
	"github.com/magabrotheeeer/course-platform/internal/errs"
	"github.com/magabrotheeeer/course-platform/internal/models"
)

// Результаты переключения подписки.
const (
	ResultAdded   = "added"
	ResultRemoved = "removed"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет ребро подписки и возвращает его ID.
	CreateSubscription(ctx context.Context, sub models.Subscription) (int, error)
	// RemoveSubscription удаляет ребро подписки и возвращает число удалённых строк.
	RemoveSubscription(ctx context.Context, userUID string, courseID int) (int, error)
	// SubscriptionExists сообщает, существует ли ребро подписки.
	SubscriptionExists(ctx context.Context, userUID string, courseID int) (bool, error)
}

// CourseRepository нужен подписке только для проверки существования курса.
type CourseRepository interface {
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
}

// SubscriptionService реализует идемпотентное переключение подписки.
type SubscriptionService struct {
	repo    SubscriptionRepository
	courses CourseRepository
	log     *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, courses CourseRepository, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:    repo,
		courses: courses,
		log:     log,
	}
}

// Toggle переключает подписку актора на курс: существующее ребро удаляется,
// отсутствующее создается. Конкурентная гонка двух переключений разрешается
// через уникальное ограничение пары: конфликт вставки означает, что ребро
// уже появилось, и сводится к результату "added".
func (s *SubscriptionService) Toggle(ctx context.Context, actor authz.Actor, courseID int) (string, error) {
	if !actor.Authenticated {
		return "", errs.ErrUnauthorized
	}
	if _, err := s.courses.ReadCourse(ctx, courseID); err != nil {
		return "", err
	}

	exists, err := s.repo.SubscriptionExists(ctx, actor.UID, courseID)
	if err != nil {
		return "", err
	}
	if exists {
		if _, err := s.repo.RemoveSubscription(ctx, actor.UID, courseID); err != nil {
			return "", err
		}
		s.log.Info("subscription removed",
			slog.String("user_uid", actor.UID), slog.Int("course_id", courseID))
		return ResultRemoved, nil
	}

	sub := models.Subscription{UserUID: actor.UID, CourseID: courseID}
	if _, err := s.repo.CreateSubscription(ctx, sub); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			// Ребро вставил конкурентный запрос, итоговое состояние совпадает.
			return ResultAdded, nil
		}
		return "", err
	}
	s.log.Info("subscription added",
		slog.String("user_uid", actor.UID), slog.Int("course_id", courseID))
	return ResultAdded, nil
}
