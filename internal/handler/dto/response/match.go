package response

import (
	"encoding/json"
	"time"

	"courtside/internal/domain/match"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
)

type MatchResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	Sport         string     `json:"sport"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	FinalizedAt   *time.Time `json:"finalized_at,omitempty"`
}

func FromMatchView(v *queries.MatchView) *MatchResponse {
	return copyFrom[MatchResponse](v)
}

type EventResponse struct {
	Seq             int             `json:"seq"`
	Timestamp       time.Time       `json:"ts"`
	Type            string          `json:"type"`
	Payload         json.RawMessage `json:"payload"`
	CreatedByUserID uuid.UUID       `json:"created_by_user_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

func FromEvent(ev *match.Event) *EventResponse {
	return copyFrom[EventResponse](ev)
}

func FromEventViews(views []*queries.MatchEventView) []*EventResponse {
	out := make([]*EventResponse, len(views))
	for i, v := range views {
		out[i] = copyFrom[EventResponse](v)
	}
	return out
}

type SnapshotResponse struct {
	MatchID  uuid.UUID        `json:"match_id"`
	Status   string           `json:"status"`
	Events   []*EventResponse `json:"events"`
	Checksum string           `json:"checksum"`
}

func FromSnapshotView(v *queries.MatchSnapshotView) *SnapshotResponse {
	return &SnapshotResponse{
		MatchID:  v.MatchID,
		Status:   v.Status,
		Events:   FromEventViews(v.Events),
		Checksum: v.Checksum,
	}
}

type AssignmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	MatchID       uuid.UUID  `json:"match_id"`
	RefereeUserID uuid.UUID  `json:"referee_user_id"`
	Status        string     `json:"status"`
	OfferedAt     time.Time  `json:"offered_at"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
}

func FromAssignment(a *match.RefereeAssignment) *AssignmentResponse {
	return copyFrom[AssignmentResponse](a)
}

type AwardResponse struct {
	ID              uuid.UUID `json:"id"`
	MatchID         uuid.UUID `json:"match_id"`
	Kind            string    `json:"kind"`
	WinnerRef       string    `json:"winner_ref"`
	DecidedByUserID uuid.UUID `json:"decided_by_user_id"`
	DecidedAt       time.Time `json:"decided_at"`
}

func FromAward(a *match.Award) *AwardResponse {
	return copyFrom[AwardResponse](a)
}

func FromAwardViews(views []*queries.MatchAwardView) []*AwardResponse {
	out := make([]*AwardResponse, len(views))
	for i, v := range views {
		out[i] = copyFrom[AwardResponse](v)
	}
	return out
}
