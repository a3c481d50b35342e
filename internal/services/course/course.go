// Package services содержит бизнес-логику для управления курсами,
// их кешированием и уведомлением подписчиков об обновлениях.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/course-platform/internal/authz"
	"github.com/magabrotheeeer/course-platform/internal/lib/sl"
	"github.com/magabrotheeeer/course-platform/internal/models"
)

// notifyWindow — минимальный интервал между уведомлениями об обновлении
// одного и того же курса.
const notifyWindow = 4 * time.Hour

// CourseRepository определяет методы для работы с курсами в хранилище.
type CourseRepository interface {
	// CreateCourse добавляет новый курс и возвращает его ID.
	CreateCourse(ctx context.Context, course models.Course) (int, error)
	// ReadCourse возвращает курс по ID.
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
	// UpdateCourse обновляет курс по ID и возвращает количество изменённых строк.
	UpdateCourse(ctx context.Context, course models.Course, id int) (int, error)
	// RemoveCourse удаляет курс по ID и возвращает количество удалённых строк.
	RemoveCourse(ctx context.Context, id int) (int, error)
	// ListCourses возвращает каталог курсов с пагинацией.
	ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Dispatcher публикует события обновления курса в брокер уведомлений.
type Dispatcher interface {
	CourseUpdated(event models.CourseUpdatedEvent) error
}

// CourseService реализует бизнес-логику работы с курсами.
type CourseService struct {
	repo       CourseRepository
	cache      Cache
	dispatcher Dispatcher
	log        *slog.Logger
}

// NewCourseService создает новый экземпляр CourseService.
func NewCourseService(repo CourseRepository, cache Cache, dispatcher Dispatcher, log *slog.Logger) *CourseService {
	return &CourseService{
		repo:       repo,
		cache:      cache,
		dispatcher: dispatcher,
		log:        log,
	}
}

// Create создает новый курс, принадлежащий актору, и возвращает ID.
// Модераторам создание запрещено.
func (s *CourseService) Create(ctx context.Context, actor authz.Actor, req models.DummyCourse) (int, error) {
	if err := authz.AuthorizeAction(actor, authz.ActionCreate); err != nil {
		return 0, err
	}

	ownerUID := actor.UID
	course := models.Course{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		OwnerUID:    &ownerUID,
	}
	id, err := s.repo.CreateCourse(ctx, course)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new course", slog.Int("id", id))
	return id, nil
}

// Read возвращает курс по ID, используя кеш или репозиторий.
// Каталог на чтение открыт любому аутентифицированному актору.
func (s *CourseService) Read(ctx context.Context, actor authz.Actor, id int) (*models.Course, error) {
	var result *models.Course
	cacheKey := fmt.Sprintf("course:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if !found {
		result, err = s.repo.ReadCourse(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to cache course", slog.String("key", cacheKey), sl.Err(err))
		}
	}

	if err := authz.Authorize(actor, authz.ActionRetrieve, authz.KindCourse, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Update обновляет курс и уведомляет подписчиков, если с предыдущего
// обновления прошло больше четырёх часов. Сбой публикации не откатывает
// уже выполненное обновление.
func (s *CourseService) Update(ctx context.Context, actor authz.Actor, id int, req models.DummyCourse) error {
	current, err := s.repo.ReadCourse(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, authz.ActionUpdate, authz.KindCourse, current); err != nil {
		return err
	}

	course := models.Course{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}
	if _, err := s.repo.UpdateCourse(ctx, course, id); err != nil {
		return err
	}
	s.log.Info("updated course in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("course:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate course cache", slog.String("key", cacheKey), sl.Err(err))
	}

	if time.Since(current.UpdatedAt) >= notifyWindow {
		event := models.CourseUpdatedEvent{CourseID: id, Title: req.Title}
		if err := s.dispatcher.CourseUpdated(event); err != nil {
			s.log.Error("failed to publish course updated event", slog.Int("id", id), sl.Err(err))
		}
	} else {
		s.log.Info("course updated recently, notification suppressed", slog.Int("id", id))
	}
	return nil
}

// Remove удаляет курс по ID и инвалидирует кеш. Удалять курс может
// только его владелец, причём не-модератор.
func (s *CourseService) Remove(ctx context.Context, actor authz.Actor, id int) error {
	current, err := s.repo.ReadCourse(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, authz.ActionDestroy, authz.KindCourse, current); err != nil {
		return err
	}

	cacheKey := fmt.Sprintf("course:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate course cache", slog.String("key", cacheKey), sl.Err(err))
	}

	if _, err := s.repo.RemoveCourse(ctx, id); err != nil {
		return err
	}
	return nil
}

// List возвращает каталог курсов с пагинацией.
func (s *CourseService) List(ctx context.Context, actor authz.Actor, limit, offset int) ([]*models.Course, error) {
	if err := authz.AuthorizeAction(actor, authz.ActionList); err != nil {
		return nil, err
	}
	return s.repo.ListCourses(ctx, limit, offset)
}
