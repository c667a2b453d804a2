package queries

import (
	"context"

	"courtside/internal/domain/match"
	"courtside/internal/infra"
	"courtside/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=match.go -destination=../../../tests/mock/queries/match_mock.go -package=queriesmock

var (
	ErrMatchNotFound = errs.Mark(errs.New("match not found"), errs.ErrNotFound)
	ErrMatchNotFinal = errs.Mark(errs.New("snapshot is only available for final matches"), errs.ErrConflict)
)

type MatchReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*match.Match, error)
	ListEvents(ctx context.Context, matchID uuid.UUID) ([]match.Event, error)
	ListAwards(ctx context.Context, matchID uuid.UUID) ([]match.Award, error)
}

type MatchQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MatchView, error)
	ListEvents(ctx context.Context, matchID uuid.UUID) ([]*MatchEventView, error)
	Snapshot(ctx context.Context, matchID uuid.UUID) (*MatchSnapshotView, error)
	ListAwards(ctx context.Context, matchID uuid.UUID) ([]*MatchAwardView, error)
}

type matchQueriesImpl struct {
	store MatchReadStore
}

func NewMatchQueries(store MatchReadStore) MatchQueries {
	return &matchQueriesImpl{store: store}
}

func (q *matchQueriesImpl) find(ctx context.Context, id uuid.UUID) (*match.Match, error) {
	m, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (q *matchQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MatchView, error) {
	m, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &MatchView{
		ID:            m.ID,
		ReservationID: m.ReservationID,
		Sport:         m.Sport,
		Status:        m.Status.String(),
		CreatedAt:     m.CreatedAt,
		StartedAt:     m.StartedAt,
		FinalizedAt:   m.FinalizedAt,
	}, nil
}

func (q *matchQueriesImpl) ListEvents(ctx context.Context, matchID uuid.UUID) ([]*MatchEventView, error) {
	if _, err := q.find(ctx, matchID); err != nil {
		return nil, err
	}
	events, err := q.store.ListEvents(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return toEventViews(events), nil
}

// Snapshot is the report input for a finished match: its ordered log plus a checksum over it.
func (q *matchQueriesImpl) Snapshot(ctx context.Context, matchID uuid.UUID) (*MatchSnapshotView, error) {
	m, err := q.find(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if err := m.EnsureFinal(); err != nil {
		return nil, ErrMatchNotFinal
	}

	events, err := q.store.ListEvents(ctx, matchID)
	if err != nil {
		return nil, err
	}
	snap, err := match.NewSnapshot(m, events)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build match snapshot")
	}

	return &MatchSnapshotView{
		MatchID:  snap.MatchID,
		Status:   snap.Status.String(),
		Events:   toEventViews(snap.Events),
		Checksum: snap.Checksum,
	}, nil
}

func (q *matchQueriesImpl) ListAwards(ctx context.Context, matchID uuid.UUID) ([]*MatchAwardView, error) {
	if _, err := q.find(ctx, matchID); err != nil {
		return nil, err
	}
	awards, err := q.store.ListAwards(ctx, matchID)
	if err != nil {
		return nil, err
	}
	views := make([]*MatchAwardView, 0, len(awards))
	for _, a := range awards {
		views = append(views, &MatchAwardView{
			ID:              a.ID,
			MatchID:         a.MatchID,
			Kind:            string(a.Kind),
			WinnerRef:       a.WinnerRef,
			DecidedByUserID: a.DecidedByUserID,
			DecidedAt:       a.DecidedAt,
		})
	}
	return views, nil
}

func toEventViews(events []match.Event) []*MatchEventView {
	views := make([]*MatchEventView, 0, len(events))
	for _, ev := range events {
		views = append(views, &MatchEventView{
			Seq:             ev.Seq,
			Timestamp:       ev.Timestamp,
			Type:            ev.Type,
			Payload:         ev.Payload,
			CreatedByUserID: ev.CreatedByUserID,
			CreatedAt:       ev.CreatedAt,
		})
	}
	return views
}
