package match

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotLive          = errors.New("match is not live")
	ErrNotScheduled     = errors.New("match is not scheduled")
	ErrNotFinal         = errors.New("match is not final")
	ErrReservedType     = errors.New("event type is reserved for match lifecycle")
	ErrEmptyType        = errors.New("event type is required")
	ErrInvalidPayload   = errors.New("event payload must be a JSON object")
	ErrInvalidTimestamp = errors.New("event timestamp is required")
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinal     Status = "final"
	StatusAbandoned Status = "abandoned"
)

func (s Status) String() string {
	return string(s)
}

const (
	EventKickoff      = "KICKOFF"
	EventFinalWhistle = "FINAL_WHISTLE"
)

const UnknownSport = "unknown"

type Match struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Sport         string
	Status        Status
	CreatedAt     time.Time
	StartedAt     *time.Time
	FinalizedAt   *time.Time
}

func (m *Match) EnsureStartable() error {
	if m.Status != StatusScheduled {
		return ErrNotScheduled
	}
	return nil
}

// EnsureLive guards appends and finalization.
func (m *Match) EnsureLive() error {
	if m.Status != StatusLive {
		return ErrNotLive
	}
	return nil
}

func (m *Match) EnsureFinal() error {
	if m.Status != StatusFinal {
		return ErrNotFinal
	}
	return nil
}

// NormalizeEventType upper-cases the type and refuses lifecycle types.
func NormalizeEventType(t string) (string, error) {
	norm := strings.ToUpper(strings.TrimSpace(t))
	if norm == "" {
		return "", ErrEmptyType
	}
	if norm == EventKickoff || norm == EventFinalWhistle {
		return "", ErrReservedType
	}
	return norm, nil
}

type AssignmentStatus string

const (
	AssignmentOffered  AssignmentStatus = "offered"
	AssignmentAccepted AssignmentStatus = "accepted"
	AssignmentDeclined AssignmentStatus = "declined"
	AssignmentReplaced AssignmentStatus = "replaced"
)

type RefereeAssignment struct {
	ID            uuid.UUID
	MatchID       uuid.UUID
	RefereeUserID uuid.UUID
	Status        AssignmentStatus
	OfferedAt     time.Time
	RespondedAt   *time.Time
}
