package middlewarectx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-platform/internal/authz"
	"github.com/magabrotheeeer/course-platform/internal/errs"
	"github.com/magabrotheeeer/course-platform/internal/lib/jwt"
	"github.com/magabrotheeeer/course-platform/internal/models"
)

type AuthMock struct{ mock.Mock }

func (m *AuthMock) ValidateToken(ctx context.Context, token string) (authz.Actor, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(authz.Actor), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	validActor := authz.Actor{UID: "uid-1", Username: "ivan", Role: models.RoleUser, Authenticated: true}

	tests := []struct {
		name       string
		header     string
		setupMocks func(a *AuthMock)
		wantStatus int
		wantActor  bool
	}{
		{
			name:   "valid token puts actor into context",
			header: "Bearer good-token",
			setupMocks: func(a *AuthMock) {
				a.On("ValidateToken", mock.Anything, "good-token").Return(validActor, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantActor:  true,
		},
		{
			name:       "missing header",
			header:     "",
			setupMocks: func(_ *AuthMock) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			setupMocks: func(_ *AuthMock) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer stale-token",
			setupMocks: func(a *AuthMock) {
				a.On("ValidateToken", mock.Anything, "stale-token").
					Return(authz.Actor{}, errs.ErrUnauthorized).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(AuthMock)
			tt.setupMocks(auth)

			var gotActor authz.Actor
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotActor = ActorFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			JWTMiddleware(auth, newNoopLogger())(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantActor {
				assert.Equal(t, validActor, gotActor)
			}

			auth.AssertExpectations(t)
		})
	}
}

func TestJWTMiddleware_WithRealMaker(t *testing.T) {
	// Сквозная проверка с настоящим генератором токенов.
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	token, err := maker.GenerateToken("ivan", models.RoleModerator, "uid-1")
	assert.NoError(t, err)

	auth := new(AuthMock)
	auth.On("ValidateToken", mock.Anything, token).Return(authz.Actor{
		UID: "uid-1", Username: "ivan", Role: models.RoleModerator, Authenticated: true,
	}, nil).Once()

	var actor authz.Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = ActorFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lessons", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	JWTMiddleware(auth, newNoopLogger())(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, actor.IsModerator())
}

func TestActorFromContext_Missing(t *testing.T) {
	actor := ActorFromContext(context.Background())
	assert.False(t, actor.Authenticated)
}
