package domain

import "errors"

// Sentinel errors shared by services, repositories and the HTTP layer.
var (
	ErrNotFound          = errors.New("not found")
	ErrSlotNotSelectable = errors.New("slot cannot be selected")
	ErrEmptySelection    = errors.New("no sessions selected")
	ErrInvalidMonth      = errors.New("invalid month")
)
