// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/course-platform/internal/authz"
	"github.com/magabrotheeeer/course-platform/internal/errs"
	"github.com/magabrotheeeer/course-platform/internal/lib/jwt"
	"github.com/magabrotheeeer/course-platform/internal/lib/password"
	"github.com/magabrotheeeer/course-platform/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)
	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// UpdateUserProfile обновляет собственные данные пользователя.
	UpdateUserProfile(ctx context.Context, userUID, username string) (int, error)
	// TouchLastLogin фиксирует время последнего входа пользователя.
	TouchLastLogin(ctx context.Context, userUID string) error
}

// AuthService отвечает за регистрацию, авторизацию, валидацию JWT и профиль.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтной ролью "user".
// Повторная регистрация на занятый email возвращает errs.ErrConflict.
func (s *AuthService) Register(ctx context.Context, req models.DummyRegister) (string, error) {
	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return "", err
	}
	user := models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashed,
		Role:         models.RoleUser, // дефолтная роль при регистрации
		IsActive:     true,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя, двигает время последнего входа
// и генерирует JWT. Неверные реквизиты и деактивированная учетная запись
// неразличимы для клиента: обе дают errs.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (token, role string, err error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", errs.ErrUnauthorized
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", errs.ErrUnauthorized
	}
	if !user.IsActive {
		return "", "", errs.ErrUnauthorized
	}
	token, err = s.jwtMaker.GenerateToken(user.Username, user.Role, user.UID)
	if err != nil {
		return "", "", err
	}
	if err := s.users.TouchLastLogin(ctx, user.UID); err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}

// ValidateToken проверяет JWT и возвращает актора для движка авторизации.
func (s *AuthService) ValidateToken(_ context.Context, token string) (authz.Actor, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return authz.Actor{}, fmt.Errorf("%w: %w", errs.ErrUnauthorized, err)
	}
	return authz.Actor{
		UID:           claims.UserUID,
		Username:      claims.Username,
		Role:          claims.Role,
		Authenticated: true,
	}, nil
}

// Profile возвращает собственный профиль актора.
func (s *AuthService) Profile(ctx context.Context, actor authz.Actor) (*models.User, error) {
	if !actor.Authenticated {
		return nil, errs.ErrUnauthorized
	}
	user, err := s.users.GetUser(ctx, actor.UID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile обновляет собственный профиль актора.
func (s *AuthService) UpdateProfile(ctx context.Context, actor authz.Actor, req models.DummyProfile) error {
	if !actor.Authenticated {
		return errs.ErrUnauthorized
	}
	count, err := s.users.UpdateUserProfile(ctx, actor.UID, req.Username)
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.ErrNotFound
	}
	return nil
}
