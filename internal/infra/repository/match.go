package repository

import (
	"context"
	"time"

	"courtside/internal/domain/match"
	"courtside/internal/infra"
	"courtside/internal/infra/repository/converter"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=match.go -destination=../../../tests/mock/repository/match_mock.go -package=repositorymock

type MatchWriteQueries interface {
	CreateMatch(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMatchParams) (sqlc.Match, error)
	GetMatchForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Match, error)
	StartMatch(ctx context.Context, db sqlc.DBTX, arg sqlc.StartMatchParams) (int64, error)
	FinalizeMatch(ctx context.Context, db sqlc.DBTX, arg sqlc.FinalizeMatchParams) (int64, error)
	GetMaxMatchEventSeq(ctx context.Context, db sqlc.DBTX, matchID uuid.UUID) (int32, error)
	InsertMatchEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertMatchEventParams) (sqlc.MatchEvent, error)
	UpsertRefereeOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRefereeOfferParams) (sqlc.RefereeAssignment, error)
	AcceptRefereeAssignment(ctx context.Context, db sqlc.DBTX, arg sqlc.AcceptRefereeAssignmentParams) (sqlc.RefereeAssignment, error)
	HasAcceptedAssignment(ctx context.Context, db sqlc.DBTX, arg sqlc.HasAcceptedAssignmentParams) (bool, error)
	InsertMatchAward(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertMatchAwardParams) (sqlc.MatchAward, error)
}

type MatchRepository struct {
	queries MatchWriteQueries
	db      sqlc.DBTX
}

func NewMatchRepository(queries MatchWriteQueries, db sqlc.DBTX) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      db,
	}
}

// CreateForReservation is idempotent per reservation; created is false when a match already exists.
func (r *MatchRepository) CreateForReservation(ctx context.Context, reservationID uuid.UUID, sport string) (*match.Match, bool, error) {
	row, err := r.queries.CreateMatch(ctx, r.db, sqlc.CreateMatchParams{
		ReservationID: reservationID,
		Sport:         sport,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to create match", err)
	}
	return converter.MatchFromInfra(row), true, nil
}

func (r *MatchRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*match.Match, error) {
	row, err := r.queries.GetMatchForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock match", err)
	}
	return converter.MatchFromInfra(row), nil
}

func (r *MatchRepository) Start(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.queries.StartMatch(ctx, r.db, sqlc.StartMatchParams{
		StartedAt: pgconv.TimeToPgtype(at),
		ID:        id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to start match", err)
	}
	return affected == 1, nil
}

func (r *MatchRepository) Finalize(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.queries.FinalizeMatch(ctx, r.db, sqlc.FinalizeMatchParams{
		FinalizedAt: pgconv.TimeToPgtype(at),
		ID:          id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to finalize match", err)
	}
	return affected == 1, nil
}

func (r *MatchRepository) MaxSeq(ctx context.Context, matchID uuid.UUID) (int, error) {
	maxSeq, err := r.queries.GetMaxMatchEventSeq(ctx, r.db, matchID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read max event seq", err)
	}
	return int(maxSeq), nil
}

// InsertEvent surfaces a (match_id, seq) collision as KindDuplicateKey.
func (r *MatchRepository) InsertEvent(ctx context.Context, ev match.Event) (*match.Event, error) {
	row, err := r.queries.InsertMatchEvent(ctx, r.db, sqlc.InsertMatchEventParams{
		MatchID:         ev.MatchID,
		Seq:             int32(ev.Seq), // #nosec G115 -- seq is bounded by max+1 checks
		Ts:              pgconv.TimeToPgtype(ev.Timestamp),
		Type:            ev.Type,
		PayloadJson:     ev.Payload,
		CreatedByUserID: ev.CreatedByUserID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert match event", err)
	}
	out := converter.MatchEventFromInfra(row)
	return &out, nil
}

func (r *MatchRepository) OfferReferee(ctx context.Context, matchID, refereeID uuid.UUID, at time.Time) (*match.RefereeAssignment, error) {
	row, err := r.queries.UpsertRefereeOffer(ctx, r.db, sqlc.UpsertRefereeOfferParams{
		MatchID:       matchID,
		RefereeUserID: refereeID,
		OfferedAt:     pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to offer referee assignment", err)
	}
	return converter.AssignmentFromInfra(row), nil
}

// AcceptReferee returns KindNotFound when the referee holds no open offer for the match.
func (r *MatchRepository) AcceptReferee(ctx context.Context, matchID, refereeID uuid.UUID, at time.Time) (*match.RefereeAssignment, error) {
	row, err := r.queries.AcceptRefereeAssignment(ctx, r.db, sqlc.AcceptRefereeAssignmentParams{
		RespondedAt:   pgconv.TimeToPgtype(at),
		MatchID:       matchID,
		RefereeUserID: refereeID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to accept referee assignment", err)
	}
	return converter.AssignmentFromInfra(row), nil
}

func (r *MatchRepository) HasAcceptedReferee(ctx context.Context, matchID, userID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasAcceptedAssignment(ctx, r.db, sqlc.HasAcceptedAssignmentParams{
		MatchID:       matchID,
		RefereeUserID: userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check referee assignment", err)
	}
	return ok, nil
}

// InsertAward surfaces a second award of the same kind as KindDuplicateKey.
func (r *MatchRepository) InsertAward(ctx context.Context, a match.Award) (*match.Award, error) {
	row, err := r.queries.InsertMatchAward(ctx, r.db, sqlc.InsertMatchAwardParams{
		MatchID:         a.MatchID,
		Kind:            string(a.Kind),
		WinnerRef:       a.WinnerRef,
		DecidedByUserID: a.DecidedByUserID,
		DecidedAt:       pgconv.TimeToPgtype(a.DecidedAt),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert match award", err)
	}
	return converter.AwardFromInfra(row), nil
}
