//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"courtside/internal/domain/match"
	"courtside/internal/infra"
	"courtside/internal/infra/repository"
	sqlc "courtside/internal/infra/sqlc/generated"
	repositorymock "courtside/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMatchRepository_CreateForReservation(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewMatchRepository(mockQueries, mockDB)

	params := sqlc.CreateMatchParams{ReservationID: reservationID, Sport: "padel"}
	gomock.InOrder(
		mockQueries.EXPECT().CreateMatch(ctx, mockDB, params).Return(sqlc.Match{
			ID:            uuid.New(),
			ReservationID: reservationID,
			Sport:         "padel",
			Status:        "scheduled",
		}, nil),
		mockQueries.EXPECT().CreateMatch(ctx, mockDB, params).Return(sqlc.Match{}, pgx.ErrNoRows),
	)

	m, created, err := repo.CreateForReservation(ctx, reservationID, "padel")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, match.StatusScheduled, m.Status)

	m, created, err = repo.CreateForReservation(ctx, reservationID, "padel")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, m)
}

func TestMatchRepository_InsertEvent(t *testing.T) {
	ctx := context.Background()
	matchID := uuid.New()
	author := uuid.New()
	ts := time.Date(2025, 6, 1, 18, 5, 0, 0, time.UTC)

	ev := match.Event{
		MatchID:         matchID,
		Seq:             3,
		Timestamp:       ts,
		Type:            "GOAL",
		Payload:         json.RawMessage(`{"team":"home"}`),
		CreatedByUserID: author,
	}
	params := sqlc.InsertMatchEventParams{
		MatchID:         matchID,
		Seq:             3,
		Ts:              pgtype.Timestamptz{Time: ts, Valid: true},
		Type:            "GOAL",
		PayloadJson:     []byte(`{"team":"home"}`),
		CreatedByUserID: author,
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMatchRepository(mockQueries, mockDB)

		mockQueries.EXPECT().InsertMatchEvent(ctx, mockDB, params).Return(sqlc.MatchEvent{
			ID:              uuid.New(),
			MatchID:         matchID,
			Seq:             3,
			Ts:              params.Ts,
			Type:            "GOAL",
			PayloadJson:     params.PayloadJson,
			CreatedByUserID: author,
		}, nil)

		got, err := repo.InsertEvent(ctx, ev)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Seq)
		assert.Equal(t, ts, got.Timestamp)
	})

	t.Run("seq collision is a duplicate key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMatchRepository(mockQueries, mockDB)

		dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_match_events_match_seq"}
		mockQueries.EXPECT().InsertMatchEvent(ctx, mockDB, params).Return(sqlc.MatchEvent{}, dup)

		_, err := repo.InsertEvent(ctx, ev)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "uq_match_events_match_seq", infra.ConstraintName(err))
	})
}

func TestMatchRepository_AcceptReferee_NoOffer(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewMatchRepository(mockQueries, mockDB)

	mockQueries.EXPECT().AcceptRefereeAssignment(ctx, mockDB, gomock.Any()).Return(sqlc.RefereeAssignment{}, pgx.ErrNoRows)

	_, err := repo.AcceptReferee(ctx, uuid.New(), uuid.New(), time.Now())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestMatchRepository_InsertAward(t *testing.T) {
	ctx := context.Background()
	matchID := uuid.New()
	decider := uuid.New()
	decided := time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewMatchRepository(mockQueries, mockDB)

	params := sqlc.InsertMatchAwardParams{
		MatchID:         matchID,
		Kind:            "man_of_match",
		WinnerRef:       "player-7",
		DecidedByUserID: decider,
		DecidedAt:       pgtype.Timestamptz{Time: decided, Valid: true},
	}
	gomock.InOrder(
		mockQueries.EXPECT().InsertMatchAward(ctx, mockDB, params).Return(sqlc.MatchAward{
			ID:              uuid.New(),
			MatchID:         matchID,
			Kind:            "man_of_match",
			WinnerRef:       "player-7",
			DecidedByUserID: decider,
			DecidedAt:       params.DecidedAt,
		}, nil),
		mockQueries.EXPECT().InsertMatchAward(ctx, mockDB, params).Return(sqlc.MatchAward{},
			&pgconn.PgError{Code: "23505", ConstraintName: "uq_match_awards_match_kind"}),
	)

	award := match.Award{MatchID: matchID, Kind: match.AwardManOfMatch, WinnerRef: "player-7", DecidedByUserID: decider, DecidedAt: decided}

	got, err := repo.InsertAward(ctx, award)
	require.NoError(t, err)
	assert.Equal(t, match.AwardManOfMatch, got.Kind)
	assert.Equal(t, decided, got.DecidedAt)

	_, err = repo.InsertAward(ctx, award)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}
