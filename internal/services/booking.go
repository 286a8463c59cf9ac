package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fitstudio/internal/domain"
)

type bookingService struct {
	trainerRepo    domain.TrainerRepository
	scheduleRepo   domain.ScheduleRepository
	requestRepo    domain.BookingRequestRepository
	selections     domain.SelectionStore
	email          domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewBookingService creates a BookingService. email may be nil, in which case
// no trainer notification is sent.
func NewBookingService(
	trainerRepo domain.TrainerRepository,
	scheduleRepo domain.ScheduleRepository,
	requestRepo domain.BookingRequestRepository,
	selections domain.SelectionStore,
	email domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		trainerRepo:    trainerRepo,
		scheduleRepo:   scheduleRepo,
		requestRepo:    requestRepo,
		selections:     selections,
		email:          email,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// loadWeek fetches the trainer and their grouped weekly slots.
func (s *bookingService) loadWeek(ctx context.Context, trainerID string) (*domain.Trainer, []*domain.SessionSlot, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get trainer: %w", err)
	}
	slots, err := s.scheduleRepo.ListSlotsByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, nil, fmt.Errorf("list slots: %w", err)
	}
	return trainer, slots, nil
}

// snapshot returns a copy of the user's current selection.
func (s *bookingService) snapshot(ctx context.Context, userID, trainerID string) ([]*domain.SessionSlot, error) {
	var listed []*domain.SessionSlot
	err := s.selections.Update(ctx, userID, trainerID, func(l *domain.ListedSessions) error {
		listed = l.List()
		return nil
	})
	return listed, err
}

func (s *bookingService) GetTrainerSchedule(ctx context.Context, userID, trainerID string) (*domain.TrainerSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trainer, slots, err := s.loadWeek(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	listed, err := s.snapshot(ctx, userID, trainerID)
	if err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	set := domain.NewListedSessions()
	for _, l := range listed {
		set.Add(l)
	}

	return &domain.TrainerSchedule{
		Trainer:    trainer,
		Grid:       domain.BuildWeekGrid(slots, set),
		Listed:     listed,
		TotalPrice: domain.TotalPrice(nil, listed),
	}, nil
}

func (s *bookingService) ListSelection(ctx context.Context, userID, trainerID string) ([]*domain.SessionSlot, float64, error) {
	listed, err := s.snapshot(ctx, userID, trainerID)
	if err != nil {
		return nil, 0, fmt.Errorf("read selection: %w", err)
	}
	return listed, domain.TotalPrice(nil, listed), nil
}

func (s *bookingService) AddSelection(ctx context.Context, userID, trainerID string, key domain.SessionKey) ([]*domain.SessionSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	_, slots, err := s.loadWeek(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	cell, ok := domain.BuildWeekGrid(slots, nil).Find(key)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !cell.State.Selectable() {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotNotSelectable, cell.State)
	}

	var listed []*domain.SessionSlot
	err = s.selections.Update(ctx, userID, trainerID, func(l *domain.ListedSessions) error {
		l.Add(cell.Slot)
		listed = l.List()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update selection: %w", err)
	}
	return listed, nil
}

func (s *bookingService) RemoveSelection(ctx context.Context, userID, trainerID string, key domain.SessionKey) ([]*domain.SessionSlot, error) {
	var listed []*domain.SessionSlot
	err := s.selections.Update(ctx, userID, trainerID, func(l *domain.ListedSessions) error {
		l.Remove(key)
		listed = l.List()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update selection: %w", err)
	}
	return listed, nil
}

func (s *bookingService) ClearSelection(ctx context.Context, userID, trainerID string) error {
	err := s.selections.Update(ctx, userID, trainerID, func(l *domain.ListedSessions) error {
		l.Clear()
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear selection: %w", err)
	}
	return nil
}

func (s *bookingService) SubmitBookingRequest(ctx context.Context, in domain.SubmitBookingInput) (*domain.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trainer, slots, err := s.loadWeek(ctx, in.TrainerID)
	if err != nil {
		return nil, err
	}
	grid := domain.BuildWeekGrid(slots, nil)

	fixed := make([]*domain.SessionSlot, 0, len(in.FixedSessions))
	fixedKeys := make(map[domain.SessionKey]struct{}, len(in.FixedSessions))
	for _, key := range in.FixedSessions {
		if _, dup := fixedKeys[key]; dup {
			continue
		}
		cell, ok := grid.Find(key)
		if !ok {
			return nil, fmt.Errorf("fixed session %s %s-%s: %w", key.Day, key.TimeStart, key.TimeEnd, domain.ErrNotFound)
		}
		fixedKeys[key] = struct{}{}
		fixed = append(fixed, cell.Slot)
	}

	stored, err := s.snapshot(ctx, in.UserID, in.TrainerID)
	if err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	// Listed entries are resolved against the current week, not the copy taken at add time.
	listed := make([]*domain.SessionSlot, 0, len(stored))
	for _, sl := range stored {
		key := sl.Key()
		if _, dup := fixedKeys[key]; dup {
			continue
		}
		cell, ok := grid.Find(key)
		if !ok {
			return nil, fmt.Errorf("listed session %s %s-%s: %w", key.Day, key.TimeStart, key.TimeEnd, domain.ErrNotFound)
		}
		if !cell.State.Selectable() {
			return nil, fmt.Errorf("listed session %s %s-%s: %w: %s", key.Day, key.TimeStart, key.TimeEnd, domain.ErrSlotNotSelectable, cell.State)
		}
		listed = append(listed, cell.Slot)
	}
	if len(fixed) == 0 && len(listed) == 0 {
		return nil, domain.ErrEmptySelection
	}

	req := domain.NewBookingRequest(
		trainer,
		in.UserID,
		in.UserEmail,
		domain.ClassIdentifiers(fixed, listed),
		domain.TotalPrice(fixed, listed),
		s.now().UTC(),
	)
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create booking request: %w", err)
	}

	// Only the submitted entries are cleared; anything added meanwhile stays listed.
	err = s.selections.Update(ctx, in.UserID, in.TrainerID, func(l *domain.ListedSessions) error {
		for _, sl := range stored {
			l.Remove(sl.Key())
		}
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "clear selection failed", "user_id", in.UserID, "trainer_id", in.TrainerID, "err", err)
	}

	if s.email != nil {
		data := &domain.BookingRequestEmailData{
			TrainerEmail: trainer.Email,
			TrainerName:  trainer.Name,
			UserEmail:    in.UserEmail,
			Sessions:     append(fixed, listed...),
			TotalPrice:   req.TotalPrice,
			RequestedAt:  req.CurrentTime.Format(time.RFC1123),
		}
		if err := s.email.SendBookingRequest(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "booking request email failed", "booking_request_id", req.ID, "err", err)
		}
	}

	return req, nil
}

func (s *bookingService) ListBookingRequests(ctx context.Context, trainerID string, page domain.PaginationParams) ([]*domain.BookingRequest, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, domain.ErrNotFound
		}
		return nil, 0, fmt.Errorf("get trainer: %w", err)
	}
	reqs, total, err := s.requestRepo.ListByTrainerID(ctx, trainerID, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list booking requests: %w", err)
	}
	return reqs, total, nil
}
