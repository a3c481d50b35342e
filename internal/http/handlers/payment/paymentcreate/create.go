// Package paymentcreate реализует HTTP-обработчик инициации оплаты курса.
//
// Обработчик запускает цепочку из трёх обращений к платежному провайдеру
// и возвращает клиенту ссылку на страницу оплаты.
package paymentcreate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/course-platform/internal/authz"
	"github.com/magabrotheeeer/course-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/course-platform/internal/http/response"
	"github.com/magabrotheeeer/course-platform/internal/lib/sl"
	"github.com/magabrotheeeer/course-platform/internal/models"
)

// Handler управляет HTTP-запросами на оплату курсов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики инициации платежа.
type Service interface {
	Initiate(ctx context.Context, actor authz.Actor, courseID int) (*models.Payment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Инициировать оплату курса
// @Description Создаёт у провайдера продукт, цену и checkout-сессию, возвращает ссылку на оплату.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body models.DummyPayment true "Курс для оплаты"
// @Success 200 {object} map[string]any "Ссылка на оплату и данные платежа"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или бесплатный курс"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Курс не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Сбой платежного провайдера"
// @Security BearerAuth
// @Router /payments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.paymentcreate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPayment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	actor := middlewarectx.ActorFromContext(r.Context())
	payment, err := h.service.Initiate(r.Context(), actor, req.CourseID)
	if err != nil {
		log.Error("failed to initiate payment", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("payment initiated",
		slog.Int("payment_id", payment.ID),
		slog.Int("course_id", payment.CourseID),
		slog.String("session_id", payment.StripeSessionID),
	)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id":           payment.ID,
		"course_id":    payment.CourseID,
		"amount":       payment.Amount,
		"session_id":   payment.StripeSessionID,
		"payment_link": payment.PaymentLink,
	}))
}
