package paymentcreate

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-platform/internal/authz"
	"github.com/magabrotheeeer/course-platform/internal/errs"
	"github.com/magabrotheeeer/course-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-platform/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Initiate(ctx context.Context, actor authz.Actor, courseID int) (*models.Payment, error) {
	args := m.Called(ctx, actor, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func TestPaymentCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	user := authz.Actor{UID: "user-uid", Username: "ivan", Role: models.RoleUser, Authenticated: true}

	tests := []struct {
		name           string
		requestBody    string
		actor          authz.Actor
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешная инициация платежа",
			requestBody: `{"course_id": 7}`,
			actor:       user,
			setupMock: func(m *MockService) {
				m.On("Initiate", mock.Anything, user, 7).Return(&models.Payment{
					ID:              42,
					UserUID:         "user-uid",
					CourseID:        7,
					Amount:          4990.50,
					StripeProductID: "prod_123",
					StripePriceID:   "price_456",
					StripeSessionID: "cs_789",
					PaymentLink:     "https://checkout.stripe.com/pay/cs_789",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"payment_link":"https://checkout.stripe.com/pay/cs_789"`,
		},
		{
			name:        "бесплатный курс нельзя оплатить",
			requestBody: `{"course_id": 3}`,
			actor:       user,
			setupMock: func(m *MockService) {
				m.On("Initiate", mock.Anything, user, 3).
					Return(nil, errs.NewValidation("price", "course is not payable"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `course is not payable`,
		},
		{
			name:        "сбой провайдера возвращает 502 с его сообщением",
			requestBody: `{"course_id": 7}`,
			actor:       user,
			setupMock: func(m *MockService) {
				m.On("Initiate", mock.Anything, user, 7).
					Return(nil, &errs.ProviderError{Message: "invalid currency"})
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `payment provider: invalid currency`,
		},
		{
			name:        "курс не найден",
			requestBody: `{"course_id": 99}`,
			actor:       user,
			setupMock: func(m *MockService) {
				m.On("Initiate", mock.Anything, user, 99).Return(nil, errs.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `not found`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    `{"course_id":`,
			actor:          user,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "отсутствует course_id",
			requestBody:    `{}`,
			actor:          user,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field CourseID is a required field`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/payments",
				bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			ctx := context.WithValue(req.Context(), middlewarectx.ActorKey, tt.actor)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
