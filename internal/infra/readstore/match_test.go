//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"courtside/internal/domain/match"
	"courtside/internal/infra"
	"courtside/internal/infra/readstore"
	sqlc "courtside/internal/infra/sqlc/generated"
	readstoremock "courtside/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMatchReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	matchID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockMatchViewQueries(ctrl)
		store := readstore.NewMatchReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetMatchByID(ctx, gomock.Any(), matchID).Return(sqlc.Match{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, matchID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("live match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockMatchViewQueries(ctrl)
		store := readstore.NewMatchReadStore(mockQueries, &mockDBTX{})

		started := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
		mockQueries.EXPECT().GetMatchByID(ctx, gomock.Any(), matchID).Return(sqlc.Match{
			ID:        matchID,
			Sport:     "tennis",
			Status:    "live",
			StartedAt: pgtype.Timestamptz{Time: started, Valid: true},
		}, nil)

		m, err := store.FindByID(ctx, matchID)
		require.NoError(t, err)
		assert.Equal(t, match.StatusLive, m.Status)
		require.NotNil(t, m.StartedAt)
		assert.Equal(t, started, *m.StartedAt)
		assert.Nil(t, m.FinalizedAt)
	})
}

func TestMatchReadStore_ListEvents(t *testing.T) {
	ctx := context.Background()
	matchID := uuid.New()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockMatchViewQueries(ctrl)
	store := readstore.NewMatchReadStore(mockQueries, &mockDBTX{})

	ts := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	mockQueries.EXPECT().ListMatchEvents(ctx, gomock.Any(), matchID).Return([]sqlc.MatchEvent{
		{MatchID: matchID, Seq: 1, Ts: pgtype.Timestamptz{Time: ts, Valid: true}, Type: "KICKOFF", PayloadJson: []byte(`{}`)},
		{MatchID: matchID, Seq: 2, Ts: pgtype.Timestamptz{Time: ts.Add(time.Minute), Valid: true}, Type: "GOAL", PayloadJson: []byte(`{"team":"home"}`)},
	}, nil)

	events, err := store.ListEvents(ctx, matchID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Seq)
	assert.Equal(t, "GOAL", events[1].Type)
	assert.JSONEq(t, `{"team":"home"}`, string(events[1].Payload))
}

func TestMatchReadStore_ListAwards(t *testing.T) {
	ctx := context.Background()
	matchID := uuid.New()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockMatchViewQueries(ctrl)
	store := readstore.NewMatchReadStore(mockQueries, &mockDBTX{})

	decided := time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC)
	mockQueries.EXPECT().ListMatchAwards(ctx, gomock.Any(), matchID).Return([]sqlc.MatchAward{
		{MatchID: matchID, Kind: "best_goal", WinnerRef: "event-12", DecidedAt: pgtype.Timestamptz{Time: decided, Valid: true}},
	}, nil)

	awards, err := store.ListAwards(ctx, matchID)
	require.NoError(t, err)
	require.Len(t, awards, 1)
	assert.Equal(t, match.AwardBestGoal, awards[0].Kind)
	assert.Equal(t, decided, awards[0].DecidedAt)
}
