package domain

import "errors"

var (
	ErrNoCandidateSlots = errors.New("meeting has no candidate slots")
	ErrNoName           = errors.New("meeting name is required")
)
