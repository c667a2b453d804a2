package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid slot status")
	ErrIllegalTransition = errors.New("illegal slot transition")
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusHeld   Status = "held"
	StatusBooked Status = "booked"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusHeld, StatusBooked:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// open→held on hold, held→booked and open→booked on payment, held→open on release.
// booked is terminal.
var transitions = map[Status][]Status{
	StatusOpen: {StatusHeld, StatusBooked},
	StatusHeld: {StatusBooked, StatusOpen},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Slot struct {
	ID         uuid.UUID
	CourtID    uuid.UUID
	Start      time.Time
	End        time.Time
	PriceCents int32
	Currency   string
	Status     Status
}
