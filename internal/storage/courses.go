package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/course-platform/internal/models"
)

// CreateCourse вставляет новый курс и возвращает его ID.
func (s *Storage) CreateCourse(ctx context.Context, course models.Course) (int, error) {
	const op = "storage.CreateCourse"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO courses (title, description, price, owner_uid)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		course.Title, course.Description, course.Price, course.OwnerUID).Scan(&newID)
	if err != nil {
		return 0, mapError(op, err)
	}
	return newID, nil
}

// ReadCourse возвращает курс по ID.
func (s *Storage) ReadCourse(ctx context.Context, id int) (*models.Course, error) {
	const op = "storage.ReadCourse"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, price, owner_uid, created_at, updated_at
			  FROM courses WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Course
	var ownerUID sql.NullString
	if err := row.Scan(&result.ID, &result.Title, &result.Description, &result.Price,
		&ownerUID, &result.CreatedAt, &result.UpdatedAt); err != nil {
		return nil, mapError(op, err)
	}
	if ownerUID.Valid {
		result.OwnerUID = &ownerUID.String
	}
	return &result, nil
}

// UpdateCourse обновляет курс и возвращает количество изменённых строк.
// updated_at двигается вместе с изменением: от него отсчитывается
// четырёхчасовое окно уведомлений.
func (s *Storage) UpdateCourse(ctx context.Context, course models.Course, id int) (int, error) {
	const op = "storage.UpdateCourse"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE courses
			  SET title = $1, description = $2, price = $3, updated_at = now()
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query,
		course.Title, course.Description, course.Price, id)
	if err != nil {
		return 0, mapError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveCourse удаляет курс по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveCourse(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveCourse"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM courses WHERE id = $1`
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

// ListCourses возвращает каталог курсов с пагинацией.
// Каталог на чтение общий для всех аутентифицированных пользователей.
func (s *Storage) ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, error) {
	const op = "storage.ListCourses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, price, owner_uid, created_at, updated_at
			  FROM courses
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Course
	for rows.Next() {
		var item models.Course
		var ownerUID sql.NullString
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price,
			&ownerUID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
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

// ListSubscriberEmails возвращает email всех подписчиков курса.
func (s *Storage) ListSubscriberEmails(ctx context.Context, courseID int) ([]string, error) {
	const op = "storage.ListSubscriberEmails"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT u.email
			  FROM subscriptions s
			  JOIN users u ON u.uid = s.user_uid
			  WHERE s.course_id = $1 AND u.email <> ''`
	rows, err := s.DB.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return emails, nil
}
