//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"courtside/internal/pkg/clock"
	"courtside/internal/usecase/queries"
	queriesmock "courtside/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlotQueries_ListAvailable(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	courtID := uuid.New()

	t.Run("zero window defaults to one week from now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSlotReadStore(ctrl)
		store.EXPECT().ListAvailable(ctx, courtID, now, now.Add(7*24*time.Hour)).Return(nil, nil)

		_, err := queries.NewSlotQueries(store, clock.NewMockClock(now)).ListAvailable(ctx, courtID, time.Time{}, time.Time{})
		require.NoError(t, err)
	})

	t.Run("explicit window is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSlotReadStore(ctrl)
		from, to := now.Add(time.Hour), now.Add(5*time.Hour)
		store.EXPECT().ListAvailable(ctx, courtID, from, to).Return([]*queries.SlotView{{ID: uuid.New()}}, nil)

		got, err := queries.NewSlotQueries(store, clock.NewMockClock(now)).ListAvailable(ctx, courtID, from, to)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("inverted or oversized windows are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSlotReadStore(ctrl)
		q := queries.NewSlotQueries(store, clock.NewMockClock(now))

		_, err := q.ListAvailable(ctx, courtID, now, now.Add(-time.Hour))
		assert.ErrorIs(t, err, queries.ErrInvalidSlotRange)
		_, err = q.ListAvailable(ctx, courtID, now, now.Add(32*24*time.Hour))
		assert.ErrorIs(t, err, queries.ErrInvalidSlotRange)
	})
}
