package converter

import (
	"courtside/internal/domain/reservation"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	params := sqlc.CreateReservationParams{
		ID:             res.ID(),
		SlotID:         pgconv.UUIDPtrToPgtype(res.SlotID()),
		BookedByUserID: res.BookedBy(),
		ActorType:      res.Actor().Type().String(),
		ActorID:        pgconv.StringPtrToPgtype(res.Actor().ID()),
		UseOwnCourt:    res.UseOwnCourt(),
		Status:         res.Status().String(),
		ExpiresAt:      pgconv.TimePtrToPgtype(res.ExpiresAt()),
	}

	if venue := res.CustomVenue(); venue != nil {
		params.CustomVenueJson = venue.Raw()
	}

	return params
}

func ReservationFromInfra(row sqlc.Reservation) *reservation.Reservation {
	return reservation.Reconstruct(reservation.ReconstructParams{
		ID:           row.ID,
		SlotID:       pgconv.UUIDPtrFromPgtype(row.SlotID),
		BookedBy:     row.BookedByUserID,
		ActorType:    row.ActorType,
		ActorID:      pgconv.StringPtrFromPgtype(row.ActorID),
		UseOwnCourt:  row.UseOwnCourt,
		CustomVenue:  row.CustomVenueJson,
		Status:       row.Status,
		PaymentID:    pgconv.UUIDPtrFromPgtype(row.PaymentID),
		ExpiresAt:    pgconv.TimePtrFromPgtype(row.ExpiresAt),
		CancelReason: pgconv.StringPtrFromPgtype(row.CancelReason),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
