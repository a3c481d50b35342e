package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/course-platform/internal/models"
)

// CreateLesson вставляет новый урок и возвращает его ID.
func (s *Storage) CreateLesson(ctx context.Context, lesson models.Lesson) (int, error) {
	const op = "storage.CreateLesson"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO lessons (course_id, title, description, video_url, owner_uid)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		lesson.CourseID, lesson.Title, lesson.Description, lesson.VideoURL, lesson.OwnerUID).Scan(&newID)
	if err != nil {
		return 0, mapError(op, err)
	}
	return newID, nil
}

// ReadLesson возвращает урок по ID.
func (s *Storage) ReadLesson(ctx context.Context, id int) (*models.Lesson, error) {
	const op = "storage.ReadLesson"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, course_id, title, description, video_url, owner_uid, created_at
			  FROM lessons WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)
	return scanLesson(row, op)
}

func scanLesson(row *sql.Row, op string) (*models.Lesson, error) {
	var result models.Lesson
	var videoURL, ownerUID sql.NullString
	if err := row.Scan(&result.ID, &result.CourseID, &result.Title, &result.Description,
		&videoURL, &ownerUID, &result.CreatedAt); err != nil {
		return nil, mapError(op, err)
	}
	if videoURL.Valid {
		result.VideoURL = &videoURL.String
	}
	if ownerUID.Valid {
		result.OwnerUID = &ownerUID.String
	}
	return &result, nil
}

// UpdateLesson обновляет урок и возвращает количество изменённых строк.
func (s *Storage) UpdateLesson(ctx context.Context, lesson models.Lesson, id int) (int, error) {
	const op = "storage.UpdateLesson"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE lessons
			  SET title = $1, description = $2, video_url = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query,
		lesson.Title, lesson.Description, lesson.VideoURL, id)
	if err != nil {
		return 0, mapError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveLesson удаляет урок по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveLesson(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveLesson"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM lessons WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, mapError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListLessons возвращает уроки владельца с пагинацией.
func (s *Storage) ListLessons(ctx context.Context, ownerUID string, limit, offset int) ([]*models.Lesson, error) {
	const op = "storage.ListLessons"
	query := `SELECT id, course_id, title, description, video_url, owner_uid, created_at
			  FROM lessons
			  WHERE owner_uid = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`
	return s.listLessons(ctx, op, query, ownerUID, limit, offset)
}

// ListAllLessons возвращает все уроки с пагинацией. Доступно модераторам.
func (s *Storage) ListAllLessons(ctx context.Context, limit, offset int) ([]*models.Lesson, error) {
	const op = "storage.ListAllLessons"
	query := `SELECT id, course_id, title, description, video_url, owner_uid, created_at
			  FROM lessons
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	return s.listLessons(ctx, op, query, limit, offset)
}

func (s *Storage) listLessons(ctx context.Context, op, query string, args ...any) ([]*models.Lesson, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Lesson
	for rows.Next() {
		var item models.Lesson
		var videoURL, ownerUID sql.NullString
		if err := rows.Scan(&item.ID, &item.CourseID, &item.Title, &item.Description,
			&videoURL, &ownerUID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if videoURL.Valid {
			item.VideoURL = &videoURL.String
		}
		if ownerUID.Valid {
			item.OwnerUID = &ownerUID.String
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
