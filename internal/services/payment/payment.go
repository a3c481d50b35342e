// Package services содержит бизнес-логику оформления платежей за курсы.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/course-platform/internal/authz"
	"github.com/magabrotheeeer/course-platform/internal/errs"
	"github.com/magabrotheeeer/course-platform/internal/lib/money"
	"github.com/magabrotheeeer/course-platform/internal/models"
	"github.com/magabrotheeeer/course-platform/internal/paymentprovider"
)

// PaymentRepository определяет методы для работы с платежами в хранилище.
type PaymentRepository interface {
	// CreatePayment вставляет запись платежа и возвращает её ID.
	CreatePayment(ctx context.Context, payment models.Payment) (int, error)
	// ListPayments возвращает платежи пользователя, новые первыми.
	ListPayments(ctx context.Context, userUID string, limit, offset int) ([]*models.Payment, error)
}

// CourseRepository нужен платежу только для чтения оплачиваемого курса.
type CourseRepository interface {
	ReadCourse(ctx context.Context, id int) (*models.Course, error)
}

// Provider описывает цепочку вызовов платежного провайдера.
type Provider interface {
	CreateProduct(ctx context.Context, name, description string) (*paymentprovider.Product, error)
	CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (*paymentprovider.Price, error)
	CreateCheckoutSession(ctx context.Context, priceID string) (*paymentprovider.Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*paymentprovider.Session, error)
}

// PaymentService оформляет оплату курса через трёхшаговую цепочку провайдера.
type PaymentService struct {
	repo     PaymentRepository
	courses  CourseRepository
	provider Provider
	currency string
	log      *slog.Logger
}

// NewPaymentService создает новый экземпляр PaymentService.
func NewPaymentService(repo PaymentRepository, courses CourseRepository,
	provider Provider, currency string, log *slog.Logger) *PaymentService {
	return &PaymentService{
		repo:     repo,
		courses:  courses,
		provider: provider,
		currency: currency,
		log:      log,
	}
}

// Initiate проводит цепочку продукт → цена → checkout-сессия и после её
// полного успеха записывает платеж локально. Повторный вызов для того же
// курса создает новую цепочку и новую запись: дедупликации нет. Ошибка
// любого шага обрывает цепочку без компенсации уже созданных удаленных
// объектов и без локальной записи.
func (s *PaymentService) Initiate(ctx context.Context, actor authz.Actor, courseID int) (*models.Payment, error) {
	if !actor.Authenticated {
		return nil, errs.ErrUnauthorized
	}
	course, err := s.courses.ReadCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.Price <= 0 {
		return nil, errs.NewValidation("price", "course is not payable")
	}

	product, err := s.provider.CreateProduct(ctx, course.Title, course.Description)
	if err != nil {
		return nil, err
	}
	price, err := s.provider.CreatePrice(ctx, product.ID, money.ToKopecks(course.Price), s.currency)
	if err != nil {
		return nil, err
	}
	session, err := s.provider.CreateCheckoutSession(ctx, price.ID)
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		UserUID:         actor.UID,
		CourseID:        courseID,
		Amount:          course.Price,
		StripeProductID: product.ID,
		StripePriceID:   price.ID,
		StripeSessionID: session.ID,
		PaymentLink:     session.URL,
	}
	id, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		return nil, err
	}
	payment.ID = id
	s.log.Info("payment initiated",
		slog.Int("id", id), slog.Int("course_id", courseID), slog.String("session_id", session.ID))
	return &payment, nil
}

// List возвращает платежи актора с пагинацией.
func (s *PaymentService) List(ctx context.Context, actor authz.Actor, limit, offset int) ([]*models.Payment, error) {
	if !actor.Authenticated {
		return nil, errs.ErrUnauthorized
	}
	return s.repo.ListPayments(ctx, actor.UID, limit, offset)
}

// SessionStatus запрашивает у провайдера текущий статус checkout-сессии.
// Локальная запись платежа не обновляется: она фиксирует факт оформления,
// а не исход оплаты.
func (s *PaymentService) SessionStatus(ctx context.Context, actor authz.Actor, sessionID string) (*paymentprovider.Session, error) {
	if !actor.Authenticated {
		return nil, errs.ErrUnauthorized
	}
	return s.provider.RetrieveSession(ctx, sessionID)
}
