// Package paymentstatus реализует HTTP-обработчик проверки статуса
// checkout-сессии у платежного провайдера.
//
// Статус запрашивается у провайдера напрямую; локальная запись платежа
// при этом не меняется.
package paymentstatus

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/course-platform/internal/authz"
	"github.com/magabrotheeeer/course-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-platform/internal/http/response"
	"github.com/magabrotheeeer/course-platform/internal/lib/sl"
	"github.com/magabrotheeeer/course-platform/internal/paymentprovider"
)

// Handler обрабатывает запросы статуса checkout-сессии.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики проверки сессии.
type Service interface {
	SessionStatus(ctx context.Context, actor authz.Actor, sessionID string) (*paymentprovider.Session, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Статус checkout-сессии
// @Tags Payments
// @Produce  json
// @Param id path string true "ID сессии провайдера"
// @Success 200 {object} map[string]any "Статус сессии"
// @Failure 400 {object} response.ErrorResponse "Пустой ID сессии"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 502 {object} response.ErrorResponse "Сбой платежного провайдера"
// @Security BearerAuth
// @Router /payments/sessions/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.paymentstatus"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		log.Error("empty session id in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	actor := middlewarectx.ActorFromContext(r.Context())
	session, err := h.service.SessionStatus(r.Context(), actor, sessionID)
	if err != nil {
		log.Error("failed to retrieve session status", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("session status retrieved",
		slog.String("session_id", session.ID),
		slog.String("status", session.Status),
	)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"session_id":     session.ID,
		"status":         session.Status,
		"payment_status": session.PaymentStatus,
	}))
}
