// Package services содержит бизнес-логику для управления уроками курсов.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/course-platform/internal/authz"
	"github.com/magabrotheeeer/course-platform/internal/lib/videohost"
	"github.com/magabrotheeeer/course-platform/internal/models"
)

// LessonRepository определяет методы для работы с уроками в хранилище.
type LessonRepository interface {
	// CreateLesson добавляет новый урок и возвращает его ID.
	CreateLesson(ctx context.Context, lesson models.Lesson) (int, error)
	// ReadLesson возвращает урок по ID.
	ReadLesson(ctx context.Context, id int) (*models.Lesson, error)
	// UpdateLesson обновляет урок по ID и возвращает количество изменённых строк.
	UpdateLesson(ctx context.Context, lesson models.Lesson, id int) (int, error)
	// RemoveLesson удаляет урок по ID и возвращает количество удалённых строк.
	RemoveLesson(ctx context.Context, id int) (int, error)
	// ListLessons возвращает уроки владельца с пагинацией.
	ListLessons(ctx context.Context, ownerUID string, limit, offset int) ([]*models.Lesson, error)
	// ListAllLessons возвращает все уроки с пагинацией.
	ListAllLessons(ctx context.Context, limit, offset int) ([]*models.Lesson, error)
}

// CourseRepository нужен уроку только для проверки существования курса.
type CourseRepository interface {
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
}

// LessonService реализует бизнес-логику работы с уроками.
type LessonService struct {
	repo    LessonRepository
	courses CourseRepository
	log     *slog.Logger
}

// NewLessonService создает новый экземпляр LessonService.
func NewLessonService(repo LessonRepository, courses CourseRepository, log *slog.Logger) *LessonService {
	return &LessonService{
		repo:    repo,
		courses: courses,
		log:     log,
	}
}

// Create создает урок внутри существующего курса. Ссылка на видео
// проверяется по списку разрешённых хостингов до обращения к хранилищу.
func (s *LessonService) Create(ctx context.Context, actor authz.Actor, req models.DummyLesson) (int, error) {
	if err := authz.AuthorizeAction(actor, authz.ActionCreate); err != nil {
		return 0, err
	}
	if err := videohost.Validate(req.VideoURL); err != nil {
		return 0, err
	}
	if _, err := s.courses.ReadCourse(ctx, req.CourseID); err != nil {
		return 0, err
	}

	ownerUID := actor.UID
	lesson := models.Lesson{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		OwnerUID:    &ownerUID,
	}
	if req.VideoURL != "" {
		lesson.VideoURL = &req.VideoURL
	}
	id, err := s.repo.CreateLesson(ctx, lesson)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new lesson", slog.Int("id", id), slog.Int("course_id", req.CourseID))
	return id, nil
}

// Read возвращает урок по ID. Чужой урок для не-модератора
// неотличим от несуществующего.
func (s *LessonService) Read(ctx context.Context, actor authz.Actor, id int) (*models.Lesson, error) {
	lesson, err := s.repo.ReadLesson(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.ActionRetrieve, authz.KindLesson, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// Update обновляет урок. Ссылка на видео проверяется заново.
func (s *LessonService) Update(ctx context.Context, actor authz.Actor, id int, req models.DummyLesson) error {
	if err := videohost.Validate(req.VideoURL); err != nil {
		return err
	}
	current, err := s.repo.ReadLesson(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, authz.ActionUpdate, authz.KindLesson, current); err != nil {
		return err
	}

	lesson := models.Lesson{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.VideoURL != "" {
		lesson.VideoURL = &req.VideoURL
	}
	if _, err := s.repo.UpdateLesson(ctx, lesson, id); err != nil {
		return err
	}
	s.log.Info("updated lesson in storage", slog.Int("id", id))
	return nil
}

// Remove удаляет урок. Удалять может только владелец, причём не-модератор.
func (s *LessonService) Remove(ctx context.Context, actor authz.Actor, id int) error {
	current, err := s.repo.ReadLesson(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, authz.ActionDestroy, authz.KindLesson, current); err != nil {
		return err
	}
	if _, err := s.repo.RemoveLesson(ctx, id); err != nil {
		return err
	}
	return nil
}

// List возвращает уроки в зависимости от роли актора: модератор видит все,
// остальные — только собственные.
func (s *LessonService) List(ctx context.Context, actor authz.Actor, limit, offset int) ([]*models.Lesson, error) {
	if err := authz.AuthorizeAction(actor, authz.ActionList); err != nil {
		return nil, err
	}
	if actor.IsModerator() {
		return s.repo.ListAllLessons(ctx, limit, offset)
	}
	return s.repo.ListLessons(ctx, actor.UID, limit, offset)
}
