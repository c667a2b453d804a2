package readstore

import (
	"context"

	"courtside/internal/domain/match"
	"courtside/internal/infra"
	"courtside/internal/infra/repository/converter"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=match.go -destination=../../../tests/mock/readstore/match_mock.go -package=readstoremock

type MatchViewQueries interface {
	GetMatchByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Match, error)
	ListMatchEvents(ctx context.Context, db sqlc.DBTX, matchID uuid.UUID) ([]sqlc.MatchEvent, error)
	ListMatchAwards(ctx context.Context, db sqlc.DBTX, matchID uuid.UUID) ([]sqlc.MatchAward, error)
}

type MatchReadStore struct {
	queries MatchViewQueries
	db      sqlc.DBTX
}

func NewMatchReadStore(queries MatchViewQueries, db sqlc.DBTX) *MatchReadStore {
	return &MatchReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MatchReadStore) FindByID(ctx context.Context, id uuid.UUID) (*match.Match, error) {
	row, err := r.queries.GetMatchByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("match not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find match by ID", err)
	}
	return converter.MatchFromInfra(row), nil
}

// ListEvents returns the log ordered by seq.
func (r *MatchReadStore) ListEvents(ctx context.Context, matchID uuid.UUID) ([]match.Event, error) {
	rows, err := r.queries.ListMatchEvents(ctx, r.db, matchID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list match events", err)
	}
	return converter.MatchEventsFromInfra(rows), nil
}

func (r *MatchReadStore) ListAwards(ctx context.Context, matchID uuid.UUID) ([]match.Award, error) {
	rows, err := r.queries.ListMatchAwards(ctx, r.db, matchID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list match awards", err)
	}
	return converter.AwardsFromInfra(rows), nil
}
