package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Exchange — общий exchange уведомлений платформы.
const Exchange = "notifications"

// QueueCourseUpdated — очередь событий "материалы курса обновились".
const QueueCourseUpdated = "notifications.course_updated"

// RoutingKeyCourseUpdated — ключ маршрутизации событий обновления курса.
const RoutingKeyCourseUpdated = "course.updated"

// SetupChannel открывает канал и декларирует exchange с очередью уведомлений.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.ExchangeDeclare(
		Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	_, err = ch.QueueDeclare(
		QueueCourseUpdated,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.QueueBind(QueueCourseUpdated, RoutingKeyCourseUpdated, Exchange, false, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ch, nil
}
