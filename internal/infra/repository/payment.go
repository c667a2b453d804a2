package repository

import (
	"context"

	"courtside/internal/domain/payment"
	"courtside/internal/infra"
	"courtside/internal/infra/repository/converter"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/repository/payment_mock.go -package=repositorymock

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (sqlc.Payment, error)
	GetPaymentByReservationID(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) (sqlc.Payment, error)
	GetPaymentByProviderRefForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPaymentByProviderRefForUpdateParams) (sqlc.Payment, error)
	UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) (int64, error)
	InsertPaymentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentEventParams) (uuid.UUID, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts p unless the reservation already has a payment, in which case created is false.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) (*payment.Payment, bool, error) {
	row, err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToInfra(p))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to create payment", err)
	}
	return converter.PaymentFromInfra(row), true, nil
}

func (r *PaymentRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByReservationID(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get payment by reservation", err)
	}
	return converter.PaymentFromInfra(row), nil
}

func (r *PaymentRepository) FindByProviderRefForUpdate(ctx context.Context, provider, ref string) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByProviderRefForUpdate(ctx, r.db, sqlc.GetPaymentByProviderRefForUpdateParams{
		Provider:    provider,
		ProviderRef: ref,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	return converter.PaymentFromInfra(row), nil
}

// UpdateStatus only moves forward along the payment state machine; false means the
// current status does not allow next.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, next payment.Status) (bool, error) {
	sources := payment.SourcesOf(next)
	allowed := make([]string, len(sources))
	for i, s := range sources {
		allowed[i] = s.String()
	}
	affected, err := r.queries.UpdatePaymentStatus(ctx, r.db, sqlc.UpdatePaymentStatusParams{
		Status:          next.String(),
		ID:              id,
		AllowedStatuses: allowed,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update payment status", err)
	}
	return affected == 1, nil
}

// InsertEvent records a provider notification. inserted is false when the
// (provider, provider_event_id) pair was already stored.
func (r *PaymentRepository) InsertEvent(ctx context.Context, ev payment.Event) (uuid.UUID, bool, error) {
	id, err := r.queries.InsertPaymentEvent(ctx, r.db, converter.PaymentEventToInfra(ev))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, infra.WrapRepoErr("failed to insert payment event", err)
	}
	return id, true, nil
}
