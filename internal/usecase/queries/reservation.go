package queries

import (
	"context"
	"time"

	"courtside/internal/domain/user"
	"courtside/internal/infra"
	"courtside/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

var ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// GetByID hides reservations of other users behind NotFound, except for super admins.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if view.BookedByUserID != actorID && !actorRole.IsSuperAdmin() {
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReservationView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByUserFirstPage(ctx, userID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
