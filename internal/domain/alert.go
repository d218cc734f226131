package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyAlert is an anonymous distress signal with a location.
// It moves once from unhandled to handled.
type EmergencyAlert struct {
	ID        uuid.UUID
	Phone     string
	Point     Point
	CreatedAt time.Time
	Handled   bool
	HandledAt *time.Time
	HandledBy *uuid.UUID
	Notes     string
}
