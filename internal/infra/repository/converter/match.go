package converter

import (
	"courtside/internal/domain/match"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"
)

func MatchFromInfra(row sqlc.Match) *match.Match {
	return &match.Match{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		Sport:         row.Sport,
		Status:        match.Status(row.Status),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		StartedAt:     pgconv.TimePtrFromPgtype(row.StartedAt),
		FinalizedAt:   pgconv.TimePtrFromPgtype(row.FinalizedAt),
	}
}

func MatchEventFromInfra(row sqlc.MatchEvent) match.Event {
	return match.Event{
		ID:              row.ID,
		MatchID:         row.MatchID,
		Seq:             int(row.Seq),
		Timestamp:       pgconv.TimeFromPgtype(row.Ts),
		Type:            row.Type,
		Payload:         row.PayloadJson,
		CreatedByUserID: row.CreatedByUserID,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func MatchEventsFromInfra(rows []sqlc.MatchEvent) []match.Event {
	events := make([]match.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, MatchEventFromInfra(row))
	}
	return events
}

func AssignmentFromInfra(row sqlc.RefereeAssignment) *match.RefereeAssignment {
	return &match.RefereeAssignment{
		ID:            row.ID,
		MatchID:       row.MatchID,
		RefereeUserID: row.RefereeUserID,
		Status:        match.AssignmentStatus(row.Status),
		OfferedAt:     pgconv.TimeFromPgtype(row.OfferedAt),
		RespondedAt:   pgconv.TimePtrFromPgtype(row.RespondedAt),
	}
}

func AwardFromInfra(row sqlc.MatchAward) *match.Award {
	return &match.Award{
		ID:              row.ID,
		MatchID:         row.MatchID,
		Kind:            match.AwardKind(row.Kind),
		WinnerRef:       row.WinnerRef,
		DecidedByUserID: row.DecidedByUserID,
		DecidedAt:       pgconv.TimeFromPgtype(row.DecidedAt),
	}
}

func AwardsFromInfra(rows []sqlc.MatchAward) []match.Award {
	awards := make([]match.Award, 0, len(rows))
	for _, row := range rows {
		awards = append(awards, *AwardFromInfra(row))
	}
	return awards
}
