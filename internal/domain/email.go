package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// BookingRequestEmailData holds data for the trainer's booking request notification.
type BookingRequestEmailData struct {
	TrainerEmail string
	TrainerName  string
	UserEmail    string
	Sessions     []*SessionSlot
	TotalPrice   float64
	RequestedAt  string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendBookingRequest(ctx context.Context, data *BookingRequestEmailData) error
}
