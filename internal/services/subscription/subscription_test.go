package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/course-platform/internal/authz"
	"github.com/magabrotheeeer/course-platform/internal/errs"
	"github.com/magabrotheeeer/course-platform/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateSubscription(ctx context.Context, sub models.Subscription) (int, error) {
	args := m.Called(ctx, sub)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveSubscription(ctx context.Context, userUID string, courseID int) (int, error) {
	args := m.Called(ctx, userUID, courseID)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) SubscriptionExists(ctx context.Context, userUID string, courseID int) (bool, error) {
	args := m.Called(ctx, userUID, courseID)
	return args.Bool(0), args.Error(1)
}

type CourseRepoMock struct{ mock.Mock }

func (m *CourseRepoMock) ReadCourse(ctx context.Context, id int) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSubscriptionService_Toggle(t *testing.T) {
	user := authz.Actor{UID: "user-uid", Username: "ivan", Role: models.RoleUser, Authenticated: true}
	course := &models.Course{ID: 7, Title: "Go с нуля"}

	tests := []struct {
		name       string
		actor      authz.Actor
		courseID   int
		setupMocks func(r *RepoMock, c *CourseRepoMock)
		want       string
		wantErr    error
	}{
		{
			name:     "no edge yet, toggle adds",
			actor:    user,
			courseID: 7,
			setupMocks: func(r *RepoMock, c *CourseRepoMock) {
				c.On("ReadCourse", mock.Anything, 7).Return(course, nil).Once()
				r.On("SubscriptionExists", mock.Anything, "user-uid", 7).Return(false, nil).Once()
				r.On("CreateSubscription", mock.Anything, models.Subscription{UserUID: "user-uid", CourseID: 7}).
					Return(1, nil).Once()
			},
			want: ResultAdded,
		},
		{
			name:     "edge exists, toggle removes",
			actor:    user,
			courseID: 7,
			setupMocks: func(r *RepoMock, c *CourseRepoMock) {
				c.On("ReadCourse", mock.Anything, 7).Return(course, nil).Once()
				r.On("SubscriptionExists", mock.Anything, "user-uid", 7).Return(true, nil).Once()
				r.On("RemoveSubscription", mock.Anything, "user-uid", 7).Return(1, nil).Once()
			},
			want: ResultRemoved,
		},
		{
			name:     "concurrent insert conflict reconciled to added",
			actor:    user,
			courseID: 7,
			setupMocks: func(r *RepoMock, c *CourseRepoMock) {
				c.On("ReadCourse", mock.Anything, 7).Return(course, nil).Once()
				r.On("SubscriptionExists", mock.Anything, "user-uid", 7).Return(false, nil).Once()
				r.On("CreateSubscription", mock.Anything, mock.Anything).Return(0, errs.ErrConflict).Once()
			},
			want: ResultAdded,
		},
		{
			name:     "concurrent delete already removed the edge",
			actor:    user,
			courseID: 7,
			setupMocks: func(r *RepoMock, c *CourseRepoMock) {
				c.On("ReadCourse", mock.Anything, 7).Return(course, nil).Once()
				r.On("SubscriptionExists", mock.Anything, "user-uid", 7).Return(true, nil).Once()
				r.On("RemoveSubscription", mock.Anything, "user-uid", 7).Return(0, nil).Once()
			},
			want: ResultRemoved,
		},
		{
			name:     "missing course",
			actor:    user,
			courseID: 99,
			setupMocks: func(_ *RepoMock, c *CourseRepoMock) {
				c.On("ReadCourse", mock.Anything, 99).Return(nil, errs.ErrNotFound).Once()
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:       "unauthenticated actor",
			actor:      authz.Actor{},
			courseID:   7,
			setupMocks: func(_ *RepoMock, _ *CourseRepoMock) {},
			wantErr:    errs.ErrUnauthorized,
		},
		{
			name:     "storage error propagates",
			actor:    user,
			courseID: 7,
			setupMocks: func(r *RepoMock, c *CourseRepoMock) {
				c.On("ReadCourse", mock.Anything, 7).Return(course, nil).Once()
				r.On("SubscriptionExists", mock.Anything, "user-uid", 7).
					Return(false, errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			courses := new(CourseRepoMock)
			svc := NewSubscriptionService(repo, courses, newNoopLogger())
			tt.setupMocks(repo, courses)

			got, err := svc.Toggle(context.Background(), tt.actor, tt.courseID)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Empty(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			repo.AssertExpectations(t)
			courses.AssertExpectations(t)
		})
	}
}
