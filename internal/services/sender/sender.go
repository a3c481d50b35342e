// Package services содержит отправку почтовых уведомлений подписчикам курсов.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/course-platform/internal/lib/sl"
	"github.com/magabrotheeeer/course-platform/internal/lib/smtp"
	"github.com/magabrotheeeer/course-platform/internal/models"
)

// SubscriberRepository возвращает адресатов уведомления по курсу.
type SubscriberRepository interface {
	// ListSubscriberEmails возвращает email всех подписчиков курса.
	ListSubscriberEmails(ctx context.Context, courseID int) ([]string, error)
}

// SenderService рассылает письма об обновлении материалов курса.
type SenderService struct {
	repo      SubscriberRepository
	transport smtp.TransportInterface
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(repo SubscriberRepository, transport smtp.TransportInterface, log *slog.Logger) *SenderService {
	return &SenderService{
		repo:      repo,
		transport: transport,
		log:       log,
	}
}

// SendCourseUpdatedInfo обрабатывает событие обновления курса из брокера:
// загружает адреса подписчиков и отправляет каждому письмо. Подписчики
// без email пропускаются ещё на уровне выборки.
func (s *SenderService) SendCourseUpdatedInfo(ctx context.Context, body []byte) error {
	var event models.CourseUpdatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	emails, err := s.repo.ListSubscriberEmails(ctx, event.CourseID)
	if err != nil {
		s.log.Error("failed to list subscriber emails", slog.Int("course_id", event.CourseID), sl.Err(err))
		return err
	}
	if len(emails) == 0 {
		s.log.Info("course has no subscribers to notify", slog.Int("course_id", event.CourseID))
		return nil
	}

	subject := "Обновление материалов курса"
	bodyText := fmt.Sprintf("Здравствуйте!\n\nМатериалы курса «%s» обновились.\n\nЗайдите на платформу, чтобы посмотреть изменения.",
		event.Title)

	if err := s.sendEmail(emails, subject, bodyText); err != nil {
		return err
	}
	s.log.Info("course update notifications sent",
		slog.Int("course_id", event.CourseID), slog.Int("recipients", len(emails)))
	return nil
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", "from", s.transport.GetSMTPUser(), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "recipient", addr, sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err := wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err := wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err := client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	return nil
}
