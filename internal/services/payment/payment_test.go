package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-platform/internal/authz"
	"github.com/magabrotheeeer/course-platform/internal/errs"
	"github.com/magabrotheeeer/course-platform/internal/models"
	"github.com/magabrotheeeer/course-platform/internal/paymentprovider"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreatePayment(ctx context.Context, payment models.Payment) (int, error) {
	args := m.Called(ctx, payment)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListPayments(ctx context.Context, userUID string, limit, offset int) ([]*models.Payment, error) {
	args := m.Called(ctx, userUID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Payment), args.Error(1)
}

type CourseRepoMock struct{ mock.Mock }

func (m *CourseRepoMock) ReadCourse(ctx context.Context, id int) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

type ProviderMock struct{ mock.Mock }

func (m *ProviderMock) CreateProduct(ctx context.Context, name, description string) (*paymentprovider.Product, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.Product), args.Error(1)
}
func (m *ProviderMock) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (*paymentprovider.Price, error) {
	args := m.Called(ctx, productID, unitAmount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.Price), args.Error(1)
}
func (m *ProviderMock) CreateCheckoutSession(ctx context.Context, priceID string) (*paymentprovider.Session, error) {
	args := m.Called(ctx, priceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.Session), args.Error(1)
}
func (m *ProviderMock) RetrieveSession(ctx context.Context, sessionID string) (*paymentprovider.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentprovider.Session), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newService(repo *RepoMock, courses *CourseRepoMock, provider *ProviderMock) *PaymentService {
	return NewPaymentService(repo, courses, provider, "rub", newNoopLogger())
}

func TestPaymentService_Initiate(t *testing.T) {
	user := authz.Actor{UID: "user-uid", Username: "ivan", Role: models.RoleUser, Authenticated: true}
	course := &models.Course{ID: 7, Title: "Go с нуля", Description: "базовый курс", Price: 4990.50}

	t.Run("full chain then local record", func(t *testing.T) {
		repo := new(RepoMock)
		courses := new(CourseRepoMock)
		provider := new(ProviderMock)
		svc := newService(repo, courses, provider)

		courses.On("ReadCourse", mock.Anything, 7).Return(course, nil).Once()
		provider.On("CreateProduct", mock.Anything, "Go с нуля", "базовый курс").
			Return(&paymentprovider.Product{ID: "prod_1"}, nil).Once()
		provider.On("CreatePrice", mock.Anything, "prod_1", int64(499050), "rub").
			Return(&paymentprovider.Price{ID: "price_1"}, nil).Once()
		provider.On("CreateCheckoutSession", mock.Anything, "price_1").
			Return(&paymentprovider.Session{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil).Once()
		repo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p models.Payment) bool {
			return p.UserUID == "user-uid" &&
				p.CourseID == 7 &&
				p.Amount == course.Price &&
				p.StripeProductID == "prod_1" &&
				p.StripePriceID == "price_1" &&
				p.StripeSessionID == "cs_1" &&
				p.PaymentLink == "https://pay.example/cs_1"
		})).Return(3, nil).Once()

		payment, err := svc.Initiate(context.Background(), user, 7)
		assert.NoError(t, err)
		assert.Equal(t, 3, payment.ID)
		assert.Equal(t, "https://pay.example/cs_1", payment.PaymentLink)

		repo.AssertExpectations(t)
		courses.AssertExpectations(t)
		provider.AssertExpectations(t)
	})

	t.Run("free course rejected before any provider call", func(t *testing.T) {
		repo := new(RepoMock)
		courses := new(CourseRepoMock)
		provider := new(ProviderMock)
		svc := newService(repo, courses, provider)

		free := &models.Course{ID: 8, Title: "Бесплатный курс", Price: 0}
		courses.On("ReadCourse", mock.Anything, 8).Return(free, nil).Once()

		_, err := svc.Initiate(context.Background(), user, 8)
		assert.True(t, errs.IsValidation(err))

		provider.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("price step failure stops chain without local record", func(t *testing.T) {
		repo := new(RepoMock)
		courses := new(CourseRepoMock)
		provider := new(ProviderMock)
		svc := newService(repo, courses, provider)

		courses.On("ReadCourse", mock.Anything, 7).Return(course, nil).Once()
		provider.On("CreateProduct", mock.Anything, mock.Anything, mock.Anything).
			Return(&paymentprovider.Product{ID: "prod_1"}, nil).Once()
		provider.On("CreatePrice", mock.Anything, "prod_1", mock.Anything, "rub").
			Return(nil, &errs.ProviderError{Message: "invalid currency"}).Once()

		_, err := svc.Initiate(context.Background(), user, 7)
		assert.True(t, errs.IsProvider(err))
		assert.Contains(t, err.Error(), "invalid currency")

		// CreateCheckoutSession и CreatePayment не вызываются.
		provider.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("missing course", func(t *testing.T) {
		repo := new(RepoMock)
		courses := new(CourseRepoMock)
		provider := new(ProviderMock)
		svc := newService(repo, courses, provider)

		courses.On("ReadCourse", mock.Anything, 99).Return(nil, errs.ErrNotFound).Once()

		_, err := svc.Initiate(context.Background(), user, 99)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unauthenticated actor", func(t *testing.T) {
		svc := newService(new(RepoMock), new(CourseRepoMock), new(ProviderMock))

		_, err := svc.Initiate(context.Background(), authz.Actor{}, 7)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestPaymentService_List(t *testing.T) {
	user := authz.Actor{UID: "user-uid", Authenticated: true}
	payments := []*models.Payment{{ID: 1, UserUID: "user-uid", CourseID: 7}}

	t.Run("returns own payments", func(t *testing.T) {
		repo := new(RepoMock)
		svc := newService(repo, new(CourseRepoMock), new(ProviderMock))
		repo.On("ListPayments", mock.Anything, "user-uid", 10, 0).Return(payments, nil).Once()

		got, err := svc.List(context.Background(), user, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, payments, got)
		repo.AssertExpectations(t)
	})

	t.Run("unauthenticated actor", func(t *testing.T) {
		svc := newService(new(RepoMock), new(CourseRepoMock), new(ProviderMock))

		_, err := svc.List(context.Background(), authz.Actor{}, 10, 0)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestPaymentService_SessionStatus(t *testing.T) {
	user := authz.Actor{UID: "user-uid", Authenticated: true}

	t.Run("returns provider status verbatim", func(t *testing.T) {
		provider := new(ProviderMock)
		svc := newService(new(RepoMock), new(CourseRepoMock), provider)
		provider.On("RetrieveSession", mock.Anything, "cs_1").
			Return(&paymentprovider.Session{ID: "cs_1", Status: "complete", PaymentStatus: "paid"}, nil).Once()

		session, err := svc.SessionStatus(context.Background(), user, "cs_1")
		assert.NoError(t, err)
		assert.Equal(t, "complete", session.Status)
		assert.Equal(t, "paid", session.PaymentStatus)
		provider.AssertExpectations(t)
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		provider := new(ProviderMock)
		svc := newService(new(RepoMock), new(CourseRepoMock), provider)
		provider.On("RetrieveSession", mock.Anything, "cs_missing").
			Return(nil, &errs.ProviderError{Message: "no such session"}).Once()

		_, err := svc.SessionStatus(context.Background(), user, "cs_missing")
		assert.True(t, errs.IsProvider(err))
		provider.AssertExpectations(t)
	})
}
