package match

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAwardKind = errors.New("award kind must be man_of_match or best_goal")
	ErrInvalidWinnerRef = errors.New("award winner_ref must be 1 to 255 characters")
)

// AwardKind is decided at most once per match.
type AwardKind string

const (
	AwardManOfMatch AwardKind = "man_of_match"
	AwardBestGoal   AwardKind = "best_goal"
)

const maxWinnerRefLen = 255

func NewAwardKind(s string) (AwardKind, error) {
	k := AwardKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case AwardManOfMatch, AwardBestGoal:
		return k, nil
	default:
		return "", ErrInvalidAwardKind
	}
}

// Award names a player id or an event reference as the winner of one kind.
type Award struct {
	ID              uuid.UUID
	MatchID         uuid.UUID
	Kind            AwardKind
	WinnerRef       string
	DecidedByUserID uuid.UUID
	DecidedAt       time.Time
}

func NormalizeWinnerRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || len(ref) > maxWinnerRefLen {
		return "", ErrInvalidWinnerRef
	}
	return ref, nil
}
