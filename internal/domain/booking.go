package domain

import (
	"context"
	"time"
)

// Trainer is a studio trainer whose weekly grid can be booked.
// swagger:model Trainer
type Trainer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingRequest is a submitted selection awaiting the trainer's confirmation.
// swagger:model BookingRequest
type BookingRequest struct {
	ID               string    `json:"id"`
	TrainerID        string    `json:"trainer_id"`
	UserID           string    `json:"user_id"`
	ClassIdentifiers []string  `json:"classIdentifiers"`
	TotalPrice       float64   `json:"totalPrice"`
	UserEmail        string    `json:"userEmail"`
	TrainerName      string    `json:"trainerName"`
	TrainerEmail     string    `json:"trainerEmail"`
	CurrentTime      time.Time `json:"currentTime"`
}

// NewBookingRequest returns a BookingRequest. ID is set by the repository on create.
func NewBookingRequest(trainer *Trainer, userID, userEmail string, classIdentifiers []string, totalPrice float64, now time.Time) *BookingRequest {
	return &BookingRequest{
		TrainerID:        trainer.ID,
		UserID:           userID,
		ClassIdentifiers: classIdentifiers,
		TotalPrice:       totalPrice,
		UserEmail:        userEmail,
		TrainerName:      trainer.Name,
		TrainerEmail:     trainer.Email,
		CurrentTime:      now,
	}
}

// TrainerSchedule is a trainer's classified week plus the caller's selection.
type TrainerSchedule struct {
	Trainer    *Trainer       `json:"trainer"`
	Grid       WeekGrid       `json:"grid"`
	Listed     []*SessionSlot `json:"listed"`
	TotalPrice float64        `json:"total_price"`
}

// SubmitBookingInput carries a booking submission.
// FixedSessions are non-removable slots chosen outside the selection flow.
type SubmitBookingInput struct {
	UserID        string
	UserEmail     string
	TrainerID     string
	FixedSessions []SessionKey
}

// TrainerRepository defines storage for trainers.
type TrainerRepository interface {
	GetByID(ctx context.Context, id string) (*Trainer, error)
}

// ScheduleRepository defines storage for trainers' weekly slots.
type ScheduleRepository interface {
	ListSlotsByTrainerID(ctx context.Context, trainerID string) ([]*SessionSlot, error)
}

// BookingRequestRepository defines storage for submitted booking requests.
type BookingRequestRepository interface {
	Create(ctx context.Context, req *BookingRequest) error
	ListByTrainerID(ctx context.Context, trainerID string, page PaginationParams) ([]*BookingRequest, int, error)
}

// SelectionStore owns each user's per-trainer selection.
// Update runs fn with exclusive access to the selection.
type SelectionStore interface {
	Update(ctx context.Context, userID, trainerID string, fn func(*ListedSessions) error) error
}

// BookingService defines the business logic for browsing and booking a trainer's week.
type BookingService interface {
	GetTrainerSchedule(ctx context.Context, userID, trainerID string) (*TrainerSchedule, error)
	ListSelection(ctx context.Context, userID, trainerID string) ([]*SessionSlot, float64, error)
	AddSelection(ctx context.Context, userID, trainerID string, key SessionKey) ([]*SessionSlot, error)
	RemoveSelection(ctx context.Context, userID, trainerID string, key SessionKey) ([]*SessionSlot, error)
	ClearSelection(ctx context.Context, userID, trainerID string) error
	SubmitBookingRequest(ctx context.Context, in SubmitBookingInput) (*BookingRequest, error)
	ListBookingRequests(ctx context.Context, trainerID string, page PaginationParams) ([]*BookingRequest, int, error)
}

// MonthlySummary is the admin dashboard rollup for one month.
// swagger:model MonthlySummary
type MonthlySummary struct {
	Month          MonthBucket `json:"month"`
	PreviousMonth  MonthBucket `json:"previous_month"`
	TotalRevenue   float64     `json:"totalRevenue"`
	TotalRefunded  float64     `json:"totalRefunded"`
	PaymentCount   float64     `json:"paymentCount"`
	RefundCount    float64     `json:"refundCount"`
	RevenueChange  Change      `json:"revenueChange"`
	RefundedChange Change      `json:"refundedChange"`
	PaymentChange  Change      `json:"paymentCountChange"`
	RefundChange   Change      `json:"refundCountChange"`
}

// AnalyticsService defines the admin analytics operations.
type AnalyticsService interface {
	Months(ctx context.Context) ([]MonthBucket, error)
	MonthlySummary(ctx context.Context, month MonthKey) (*MonthlySummary, error)
	DailySeries(ctx context.Context, month MonthKey) ([]DailyRecord, error)
}
