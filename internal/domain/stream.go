package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamAssignmentsRecompute = "stream:assignments:recompute"
)

// Reasons carried by AssignmentRecomputeEvent.
const (
	ReasonStopsChanged     = "stops_changed"
	ReasonCoverageChanged  = "coverage_changed"
	ReasonEmployeesChanged = "employees_changed"
)

// AssignmentRecomputeEvent asks the worker to rebuild employee assignments.
type AssignmentRecomputeEvent struct {
	ID          uuid.UUID `json:"id"`
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requested_at"`
}

func NewAssignmentRecomputeEvent(reason string) AssignmentRecomputeEvent {
	return AssignmentRecomputeEvent{
		ID:          uuid.New(),
		Reason:      reason,
		RequestedAt: time.Now().UTC(),
	}
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
