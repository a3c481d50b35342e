package read

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

func (m *MockService) Read(ctx context.Context, actor authz.Actor, id int) (*models.Course, error) {
	args := m.Called(ctx, actor, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	user := authz.Actor{UID: "user-uid", Username: "ivan", Role: models.RoleUser, Authenticated: true}

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение курса",
			url:  "/courses/123",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, user, 123).
					Return(&models.Course{ID: 123, Title: "Go с нуля", Price: 4990}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"Title":"Go с нуля"`,
		},
		{
			name: "курс не найден",
			url:  "/courses/999",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, user, 999).Return(nil, errs.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `not found`,
		},
		{
			name:           "некорректный id в URL",
			url:            "/courses/abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `failed to decode id from url`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", strings.TrimPrefix(tt.url, "/courses/"))
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middlewarectx.ActorKey, user)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
