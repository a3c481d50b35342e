package update

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
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

func (m *MockService) Update(ctx context.Context, actor authz.Actor, id int, req models.DummyCourse) error {
	args := m.Called(ctx, actor, id, req)
	return args.Error(0)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	owner := authz.Actor{UID: "owner-uid", Username: "ivan", Role: models.RoleUser, Authenticated: true}

	tests := []struct {
		name           string
		url            string
		body           string
		actor          authz.Actor
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешное обновление курса",
			url:   "/courses/1",
			body:  `{"title":"Go с нуля","price":4990}`,
			actor: owner,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, owner, 1,
					models.DummyCourse{Title: "Go с нуля", Price: 4990}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:  "чужой курс скрыт областью видимости",
			url:   "/courses/2",
			body:  `{"title":"Go с нуля","price":4990}`,
			actor: owner,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, owner, 2, mock.Anything).Return(errs.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `not found`,
		},
		{
			name:           "некорректный id в URL",
			url:            "/courses/abc",
			body:           `{"title":"Go с нуля","price":4990}`,
			actor:          owner,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `failed to decode id from url`,
		},
		{
			name:           "отрицательная цена",
			url:            "/courses/1",
			body:           `{"title":"Go с нуля","price":-5}`,
			actor:          owner,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Price must not be negative`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, tt.url, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", strings.TrimPrefix(tt.url, "/courses/"))
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middlewarectx.ActorKey, tt.actor)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
