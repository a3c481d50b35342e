// Package courseplatform предоставляет маршруты основного приложения.
package courseplatform

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/course-platform/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/course-platform/internal/http/handlers/auth/register"
	coursecreate "github.com/magabrotheeeer/course-platform/internal/http/handlers/course/create"
	courselist "github.com/magabrotheeeer/course-platform/internal/http/handlers/course/list"
	courseread "github.com/magabrotheeeer/course-platform/internal/http/handlers/course/read"
	courseremove "github.com/magabrotheeeer/course-platform/internal/http/handlers/course/remove"
	courseupdate "github.com/magabrotheeeer/course-platform/internal/http/handlers/course/update"
	lessoncreate "github.com/magabrotheeeer/course-platform/internal/http/handlers/lesson/create"
	lessonlist "github.com/magabrotheeeer/course-platform/internal/http/handlers/lesson/list"
	lessonread "github.com/magabrotheeeer/course-platform/internal/http/handlers/lesson/read"
	lessonremove "github.com/magabrotheeeer/course-platform/internal/http/handlers/lesson/remove"
	lessonupdate "github.com/magabrotheeeer/course-platform/internal/http/handlers/lesson/update"
	"github.com/magabrotheeeer/course-platform/internal/http/handlers/payment/paymentcreate"
	"github.com/magabrotheeeer/course-platform/internal/http/handlers/payment/paymentlist"
	"github.com/magabrotheeeer/course-platform/internal/http/handlers/payment/paymentstatus"
	"github.com/magabrotheeeer/course-platform/internal/http/handlers/subscription/toggle"
	"github.com/magabrotheeeer/course-platform/internal/http/handlers/user/profileread"
	"github.com/magabrotheeeer/course-platform/internal/http/handlers/user/profileupdate"
	"github.com/magabrotheeeer/course-platform/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/course-platform/internal/services/auth"
	courseservice "github.com/magabrotheeeer/course-platform/internal/services/course"
	lessonservice "github.com/magabrotheeeer/course-platform/internal/services/lesson"
	paymentservice "github.com/magabrotheeeer/course-platform/internal/services/payment"
	subscriptionservice "github.com/magabrotheeeer/course-platform/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	courseService *courseservice.CourseService,
	lessonService *lessonservice.LessonService,
	subscriptionService *subscriptionservice.SubscriptionService,
	paymentService *paymentservice.PaymentService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/profile", profileread.New(logger, authService).ServeHTTP)
			r.Put("/profile", profileupdate.New(logger, authService).ServeHTTP)

			r.Post("/courses", coursecreate.New(logger, courseService).ServeHTTP)
			r.Get("/courses", courselist.New(logger, courseService).ServeHTTP)
			r.Get("/courses/{id}", courseread.New(logger, courseService).ServeHTTP)
			r.Put("/courses/{id}", courseupdate.New(logger, courseService).ServeHTTP)
			r.Delete("/courses/{id}", courseremove.New(logger, courseService).ServeHTTP)

			r.Post("/lessons", lessoncreate.New(logger, lessonService).ServeHTTP)
			r.Get("/lessons", lessonlist.New(logger, lessonService).ServeHTTP)
			r.Get("/lessons/{id}", lessonread.New(logger, lessonService).ServeHTTP)
			r.Put("/lessons/{id}", lessonupdate.New(logger, lessonService).ServeHTTP)
			r.Delete("/lessons/{id}", lessonremove.New(logger, lessonService).ServeHTTP)

			r.Post("/subscriptions/toggle", toggle.New(logger, subscriptionService).ServeHTTP)

			r.Post("/payments", paymentcreate.New(logger, paymentService).ServeHTTP)
			r.Get("/payments/list", paymentlist.New(logger, paymentService).ServeHTTP)
			r.Get("/payments/sessions/{id}", paymentstatus.New(logger, paymentService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
