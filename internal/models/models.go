// Package models содержит доменные структуры платформы онлайн-курсов,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// RoleModerator — роль модератора: право редактировать чужие курсы и уроки,
// но не создавать и не удалять их.
const RoleModerator = "moderator"

// RoleUser — роль обычного пользователя по умолчанию.
const RoleUser = "user"

// User представляет учетную запись пользователя.
// LastLoginAt может быть nil — пользователь ещё ни разу не входил.
type User struct {
	UID          string
	Email        string
	Username     string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}

// Course представляет курс каталога. OwnerUID может быть nil —
// такой курс считается ничейным и не проходит ни одну проверку владения.
type Course struct {
	ID          int
	Title       string
	Description string
	Price       float64 // цена в основных единицах валюты (рубли)
	OwnerUID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Lesson представляет урок, принадлежащий ровно одному курсу.
// VideoURL ограничен списком разрешённых видеохостингов.
type Lesson struct {
	ID          int
	CourseID    int
	Title       string
	Description string
	VideoURL    *string
	OwnerUID    *string
	CreatedAt   time.Time
}

// Subscription — ребро "пользователь подписан на курс".
// Пара (UserUID, CourseID) уникальна, самостоятельного жизненного цикла нет.
type Subscription struct {
	ID        int
	UserUID   string
	CourseID  int
	CreatedAt time.Time
}

// Payment — неизменяемая запись попытки оплаты курса.
// Создается ровно один раз после успешного прохождения всей цепочки
// провайдера и после этого никогда не изменяется.
type Payment struct {
	ID              int
	UserUID         string
	CourseID        int
	Amount          float64
	StripeProductID string
	StripePriceID   string
	StripeSessionID string
	PaymentLink     string
	CreatedAt       time.Time
}

// Owner возвращает UID владельца курса либо nil для ничейного курса.
func (c *Course) Owner() *string { return c.OwnerUID }

// Owner возвращает UID владельца урока либо nil для ничейного урока.
func (l *Lesson) Owner() *string { return l.OwnerUID }

// Owner у пользователя — сам пользователь: профиль доступен только его хозяину.
func (u *User) Owner() *string { return &u.UID }

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,alphanum"`
	Password string `json:"password" validate:"required,min=8"`
}

// DummyLogin используется для приёма данных входа из JSON-запроса.
type DummyLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// DummyCourse используется для приёма данных курса из JSON-запроса.
type DummyCourse struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// DummyLesson используется для приёма данных урока из JSON-запроса.
type DummyLesson struct {
	CourseID    int    `json:"course_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
}

// DummyToggle используется для приёма запроса переключения подписки.
type DummyToggle struct {
	CourseID int `json:"course_id" validate:"required"`
}

// DummyPayment используется для приёма запроса на оплату курса.
type DummyPayment struct {
	CourseID int `json:"course_id" validate:"required"`
}

// DummyProfile используется для обновления собственного профиля.
type DummyProfile struct {
	Username string `json:"username" validate:"required,alphanum"`
}

// CourseUpdatedEvent — сообщение о том, что материалы курса обновились.
// Публикуется не чаще одного раза в четыре часа на курс.
type CourseUpdatedEvent struct {
	CourseID int    `json:"course_id"`
	Title    string `json:"title"`
}
