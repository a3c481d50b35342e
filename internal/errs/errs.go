// Package errs определяет доменные ошибки сервиса.
//
// Сервисы возвращают эти ошибки, а HTTP-слой сопоставляет их со статус-кодами.
// Все ошибки терминальны в рамках запроса: ядро не делает автоматических повторов.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound — запрошенная сущность не существует либо скрыта областью видимости актора.
	ErrNotFound = errors.New("not found")
	// ErrForbidden — сущность видна актору, но действие запрещено правилами доступа.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized — запрос без аутентификации.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict — нарушение уникального ограничения при конкурентной записи.
	ErrConflict = errors.New("conflict")
)

// ValidationError описывает некорректные входные данные с привязкой к полю.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("field %s: %s", e.Field, e.Message)
}

// NewValidation создает ValidationError для поля field с сообщением msg.
func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidation сообщает, является ли err ошибкой валидации.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ProviderError оборачивает ошибку внешнего платежного провайдера,
// сохраняя его сообщение дословно. Локальное состояние при этой ошибке
// не изменяется; уже созданные удаленные объекты не компенсируются.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider: %s", e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsProvider сообщает, вызвана ли err сбоем платежного провайдера.
func IsProvider(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
