package application

import (
	"time"

	"github.com/gigamonkey/scheduler/internal/domain"
)

// Solution is one complete schedule: every meeting committed to
// exactly one slot, no participant double-booked.
type Solution struct {
	Meetings    []*domain.Meeting
	GeneratedAt time.Time
}
