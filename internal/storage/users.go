package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/course-platform/internal/models"
)

// RegisterUser сохраняет нового пользователя и возвращает его UID.
// Дубликат email возвращает errs.ErrConflict.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (email, username, password_hash, role, is_active)
			  VALUES ($1, $2, $3, $4, true)
			  RETURNING uid`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash, user.Role).Scan(&newUID); err != nil {
		return "", mapError(op, err)
	}
	return newUID, nil
}

// GetUserByEmail возвращает пользователя по email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, username, password_hash, role, is_active, last_login_at, created_at
			  FROM users
			  WHERE email = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, email), op)
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, username, password_hash, role, is_active, last_login_at, created_at
			  FROM users
			  WHERE uid = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, userUID), op)
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var lastLogin sql.NullTime
	if err := row.Scan(&u.UID, &u.Email, &u.Username, &u.PasswordHash,
		&u.Role, &u.IsActive, &lastLogin, &u.CreatedAt); err != nil {
		return nil, mapError(op, err)
	}
	if lastLogin.Valid {
		u.LastLoginAt = &lastLogin.Time
	}
	return u, nil
}

// UpdateUserProfile обновляет собственные данные пользователя.
func (s *Storage) UpdateUserProfile(ctx context.Context, userUID, username string) (int, error) {
	const op = "storage.UpdateUserProfile"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET username = $1 WHERE uid = $2`
	result, err := s.DB.ExecContext(ctx, query, username, userUID)
	if err != nil {
		return 0, mapError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// TouchLastLogin фиксирует время последнего входа пользователя.
func (s *Storage) TouchLastLogin(ctx context.Context, userUID string) error {
	const op = "storage.TouchLastLogin"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET last_login_at = now() WHERE uid = $1`
	if _, err := s.DB.ExecContext(ctx, query, userUID); err != nil {
		return mapError(op, err)
	}
	return nil
}

// DeactivateInactiveUsers деактивирует пользователей, не входивших дольше
// threshold. Работает одним UPDATE с фильтром по времени, поэтому безопасно
// выполняется параллельно с пользовательским трафиком.
func (s *Storage) DeactivateInactiveUsers(ctx context.Context, threshold time.Time) (int, error) {
	const op = "storage.DeactivateInactiveUsers"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET is_active = false
			  WHERE is_active = true
			    AND last_login_at IS NOT NULL
			    AND last_login_at < $1`
	result, err := s.DB.ExecContext(ctx, query, threshold)
	if err != nil {
		return 0, mapError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
