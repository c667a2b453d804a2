//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"courtside/internal/infra"
	"courtside/internal/pkg/clock"
	"courtside/internal/pkg/metrics"
	"courtside/internal/usecase/shared"
	sharedmock "courtside/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// uowFixture wires a mocked unit of work whose Within runs the closure against mocked repositories.
type uowFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	slots         *sharedmock.MockSlotRepository
	reservations  *sharedmock.MockReservationRepository
	payments      *sharedmock.MockPaymentRepository
	matches       *sharedmock.MockMatchRepository
	notifications *sharedmock.MockNotificationRepository
	clock         *clock.MockClock
	metrics       *metrics.Mock
	logger        *slog.Logger
}

func newUoWFixture(t *testing.T) *uowFixture {
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		slots:         sharedmock.NewMockSlotRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		payments:      sharedmock.NewMockPaymentRepository(ctrl),
		matches:       sharedmock.NewMockMatchRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		clock:         clock.NewMockClock(fixedNow),
		metrics:       metrics.NewMock(),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Slots().Return(f.slots).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
	f.tx.EXPECT().Matches().Return(f.matches).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	return f
}

// expectTx lets exactly one transaction run.
func (f *uowFixture) expectTx() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func notFound() error {
	return infra.WrapRepoErr("row not found", pgx.ErrNoRows)
}
