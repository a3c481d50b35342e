// Package notify публикует доменные события платформы в брокер уведомлений.
package notify

import (
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/course-platform/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/course-platform/internal/models"
)

// Publisher отправляет события в RabbitMQ.
type Publisher struct {
	ch  *amqp.Channel
	log *slog.Logger
}

// NewPublisher создает новый экземпляр Publisher.
func NewPublisher(ch *amqp.Channel, log *slog.Logger) *Publisher {
	return &Publisher{ch: ch, log: log}
}

// CourseUpdated публикует событие обновления материалов курса.
func (p *Publisher) CourseUpdated(event models.CourseUpdatedEvent) error {
	return rabbitmq.PublishMessage(p.ch, rabbitmq.Exchange, rabbitmq.RoutingKeyCourseUpdated, event)
}
