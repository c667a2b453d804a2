package request

import (
	"encoding/json"
	"time"

	"courtside/internal/usecase/commands"

	"github.com/google/uuid"
)

type AppendEventRequest struct {
	Seq       int             `json:"seq" binding:"required,min=1"`
	Timestamp time.Time       `json:"ts" binding:"required"`
	Type      string          `json:"type" binding:"required,max=64"`
	Payload   json.RawMessage `json:"payload"`
}

func (r AppendEventRequest) ToParams(matchID uuid.UUID, author commands.Actor) commands.AppendParams {
	return commands.AppendParams{
		MatchID:   matchID,
		Seq:       r.Seq,
		Timestamp: r.Timestamp,
		Type:      r.Type,
		Payload:   r.Payload,
		Author:    author,
	}
}

type OfferRefereeRequest struct {
	RefereeUserID uuid.UUID `json:"referee_user_id" binding:"required"`
}

type DecideAwardRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=man_of_match best_goal"`
	WinnerRef string `json:"winner_ref" binding:"required,max=255"`
}

func (r DecideAwardRequest) ToParams(matchID uuid.UUID, author commands.Actor) commands.AwardParams {
	return commands.AwardParams{
		MatchID:   matchID,
		Kind:      r.Kind,
		WinnerRef: r.WinnerRef,
		Author:    author,
	}
}
