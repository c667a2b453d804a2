package readstore

import (
	"context"
	"time"

	"courtside/internal/infra"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"
	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation_mock.go -package=readstoremock

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewRow, error)
	ListReservationViewsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsByUserParams) ([]sqlc.ListReservationViewsByUserRow, error)
	ListReservationViewsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsByUserKeysetParams) ([]sqlc.ListReservationViewsByUserKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return toReservationView(reservationRow(row)), nil
}

func (r *ReservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByUser(ctx, r.db, sqlc.ListReservationViewsByUserParams{
		UserID:   userID,
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(reservationRow(row))
	}
	return result, nil
}

func (r *ReservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByUserKeyset(ctx, r.db, sqlc.ListReservationViewsByUserKeysetParams{
		UserID:        userID,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations with keyset", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(reservationRow(row))
	}
	return result, nil
}

// reservationRow is the column set shared by every reservation view query.
type reservationRow struct {
	ID              uuid.UUID
	SlotID          pgtype.UUID
	BookedByUserID  uuid.UUID
	ActorType       string
	ActorID         pgtype.Text
	UseOwnCourt     bool
	CustomVenueJson []byte
	Status          string
	PaymentID       pgtype.UUID
	ExpiresAt       pgtype.Timestamptz
	CancelReason    pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
	SlotStartTs     pgtype.Timestamptz
	SlotEndTs       pgtype.Timestamptz
	SlotPriceCents  pgtype.Int4
	SlotCurrency    pgtype.Text
	CourtName       pgtype.Text
}

func toReservationView(row reservationRow) *queries.ReservationView {
	view := &queries.ReservationView{
		ID:             row.ID,
		SlotID:         pgconv.UUIDPtrFromPgtype(row.SlotID),
		BookedByUserID: row.BookedByUserID,
		ActorType:      row.ActorType,
		ActorID:        pgconv.StringPtrFromPgtype(row.ActorID),
		UseOwnCourt:    row.UseOwnCourt,
		CustomVenue:    row.CustomVenueJson,
		Status:         row.Status,
		PaymentID:      pgconv.UUIDPtrFromPgtype(row.PaymentID),
		ExpiresAt:      pgconv.TimePtrFromPgtype(row.ExpiresAt),
		CancelReason:   pgconv.StringPtrFromPgtype(row.CancelReason),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.SlotStartTs.Valid {
		view.Slot = &queries.SlotSummary{
			Start:      row.SlotStartTs.Time,
			End:        row.SlotEndTs.Time,
			PriceCents: row.SlotPriceCents.Int32,
			Currency:   row.SlotCurrency.String,
			CourtName:  row.CourtName.String,
		}
	}
	return view
}
