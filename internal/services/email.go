package services

import (
	"context"
	"fmt"
	"log/slog"

	"fitstudio/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendBookingRequest notifies the trainer of a new booking request using the "booking_request" template.
func (s *emailService) SendBookingRequest(ctx context.Context, data *domain.BookingRequestEmailData) error {
	if data == nil {
		return fmt.Errorf("booking request email data is nil")
	}
	if data.TrainerEmail == "" {
		return fmt.Errorf("trainer email is required")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("booking_request", data)
	if err != nil {
		return fmt.Errorf("failed to render booking_request template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.TrainerEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send booking request email: %w", err)
	}
	s.logger.InfoContext(ctx, "booking request email sent", "to", data.TrainerEmail)
	return nil
}
