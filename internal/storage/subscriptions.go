package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/course-platform/internal/models"
)

// CreateSubscription вставляет ребро подписки (user_uid, course_id).
// Конкурентная вставка дубликата упирается в уникальное ограничение пары
// и возвращает errs.ErrConflict.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (int, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (user_uid, course_id)
			  VALUES ($1, $2)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query, sub.UserUID, sub.CourseID).Scan(&newID); err != nil {
		return 0, mapError(op, err)
	}
	return newID, nil
}

// RemoveSubscription удаляет ребро подписки и возвращает число удалённых строк.
// Ноль строк — допустимый исход: ребро уже удалено конкурентным запросом.
func (s *Storage) RemoveSubscription(ctx context.Context, userUID string, courseID int) (int, error) {
	const op = "storage.RemoveSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM subscriptions WHERE user_uid = $1 AND course_id = $2`
	result, err := s.DB.ExecContext(ctx, query, userUID, courseID)
	if err != nil {
		return 0, mapError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// SubscriptionExists сообщает, существует ли ребро подписки.
func (s *Storage) SubscriptionExists(ctx context.Context, userUID string, courseID int) (bool, error) {
	const op = "storage.SubscriptionExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (
				SELECT 1 FROM subscriptions WHERE user_uid = $1 AND course_id = $2
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, userUID, courseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
