package toggle

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

func (m *MockService) Toggle(ctx context.Context, actor authz.Actor, courseID int) (string, error) {
	args := m.Called(ctx, actor, courseID)
	return args.String(0), args.Error(1)
}

func TestToggleHandler(t *testing.T) {
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
			name:        "подписка добавлена",
			requestBody: `{"course_id": 1}`,
			actor:       user,
			setupMock: func(m *MockService) {
				m.On("Toggle", mock.Anything, user, 1).Return("added", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"result":"added"`,
		},
		{
			name:        "подписка снята",
			requestBody: `{"course_id": 1}`,
			actor:       user,
			setupMock: func(m *MockService) {
				m.On("Toggle", mock.Anything, user, 1).Return("removed", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"result":"removed"`,
		},
		{
			name:        "курс не найден",
			requestBody: `{"course_id": 99}`,
			actor:       user,
			setupMock: func(m *MockService) {
				m.On("Toggle", mock.Anything, user, 99).Return("", errs.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `not found`,
		},
		{
			name:        "неавторизованный пользователь",
			requestBody: `{"course_id": 1}`,
			actor:       authz.Actor{},
			setupMock: func(m *MockService) {
				m.On("Toggle", mock.Anything, authz.Actor{}, 1).Return("", errs.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `unauthorized`,
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

			req := httptest.NewRequest(http.MethodPost, "/subscriptions/toggle",
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
