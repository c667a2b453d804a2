//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"courtside/internal/domain/match"
	"courtside/internal/domain/outbox"
	"courtside/internal/domain/user"
	"courtside/internal/infra"
	"courtside/internal/pkg/errs"
	"courtside/internal/usecase/commands"
	"courtside/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMatchCommands(f *uowFixture) commands.MatchCommands {
	return commands.NewMatchUseCase(f.uow, f.clock, f.metrics, f.logger)
}

func echoEvent(_ context.Context, ev match.Event) (*match.Event, error) {
	ev.ID = uuid.New()
	return &ev, nil
}

func TestAppend(t *testing.T) {
	ctx := context.Background()
	referee := commands.Actor{UserID: uuid.New(), Role: user.RoleReferee}
	ts := time.Date(2025, 6, 1, 19, 5, 0, 0, time.FixedZone("ICT", 7*3600))

	t.Run("success: next seq by accepted referee", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusLive).BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().HasAcceptedReferee(ctx, m.ID, referee.UserID).Return(true, nil)
		f.matches.EXPECT().MaxSeq(ctx, m.ID).Return(2, nil)
		f.matches.EXPECT().InsertEvent(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, ev match.Event) (*match.Event, error) {
			assert.Equal(t, 3, ev.Seq)
			assert.Equal(t, "GOAL", ev.Type)
			assert.Equal(t, time.UTC, ev.Timestamp.Location())
			assert.JSONEq(t, `{"player":7,"team":"home"}`, string(ev.Payload))
			return echoEvent(ctx, ev)
		})

		got, err := newMatchCommands(f).Append(ctx, commands.AppendParams{
			MatchID:   m.ID,
			Seq:       3,
			Timestamp: ts,
			Type:      "goal",
			Payload:   []byte(`{"team":"home","player":7}`),
			Author:    referee,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, got.Seq)
		assert.Equal(t, 1, f.metrics.MatchEvents())
	})

	t.Run("out of order: gap is refused and nothing written", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusLive).BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().HasAcceptedReferee(ctx, m.ID, referee.UserID).Return(true, nil)
		f.matches.EXPECT().MaxSeq(ctx, m.ID).Return(2, nil)

		_, err := newMatchCommands(f).Append(ctx, commands.AppendParams{MatchID: m.ID, Seq: 4, Timestamp: ts, Type: "GOAL", Author: referee})

		var ooo *match.OutOfOrderError
		require.True(t, errors.As(err, &ooo))
		assert.Equal(t, 3, ooo.Expected)
		assert.Equal(t, 4, ooo.Got)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Equal(t, 1, f.metrics.MatchOutOfOrder())
	})

	t.Run("out of order: unique violation from a racing writer", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusLive).BuildDomain()
		dup := infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505", ConstraintName: "uq_match_events_match_seq"})

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().MaxSeq(ctx, m.ID).Return(0, nil)
		f.matches.EXPECT().InsertEvent(ctx, gomock.Any()).Return(nil, dup)

		_, err := newMatchCommands(f).Append(ctx, commands.AppendParams{
			MatchID: m.ID, Seq: 1, Timestamp: ts, Type: "GOAL",
			Author: commands.Actor{UserID: uuid.New(), Role: user.RoleSuperAdmin},
		})

		var ooo *match.OutOfOrderError
		require.True(t, errors.As(err, &ooo))
		assert.Equal(t, 1, ooo.Expected)
	})

	t.Run("rejected: match is final", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusFinal).BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)

		_, err := newMatchCommands(f).Append(ctx, commands.AppendParams{MatchID: m.ID, Seq: 9, Timestamp: ts, Type: "GOAL", Author: referee})

		require.ErrorIs(t, err, commands.ErrMatchNotLive)
	})

	t.Run("forbidden: referee without accepted assignment", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusLive).BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().HasAcceptedReferee(ctx, m.ID, referee.UserID).Return(false, nil)

		_, err := newMatchCommands(f).Append(ctx, commands.AppendParams{MatchID: m.ID, Seq: 1, Timestamp: ts, Type: "GOAL", Author: referee})

		require.ErrorIs(t, err, commands.ErrNotAllowed)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("forbidden: organizer cannot write events", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusLive).BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)

		_, err := newMatchCommands(f).Append(ctx, commands.AppendParams{
			MatchID: m.ID, Seq: 1, Timestamp: ts, Type: "GOAL",
			Author: commands.Actor{UserID: uuid.New(), Role: user.RoleOrganizer},
		})

		require.ErrorIs(t, err, commands.ErrNotAllowed)
	})

	t.Run("not found", func(t *testing.T) {
		f := newUoWFixture(t)
		id := uuid.New()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, id).Return(nil, notFound())

		_, err := newMatchCommands(f).Append(ctx, commands.AppendParams{MatchID: id, Seq: 1, Timestamp: ts, Type: "GOAL", Author: referee})

		require.ErrorIs(t, err, commands.ErrMatchNotFound)
	})

	validation := []struct {
		name   string
		params commands.AppendParams
		want   error
	}{
		{name: "reserved kickoff", params: commands.AppendParams{Seq: 1, Timestamp: ts, Type: "kickoff"}, want: match.ErrReservedType},
		{name: "reserved final whistle", params: commands.AppendParams{Seq: 1, Timestamp: ts, Type: "FINAL_WHISTLE"}, want: match.ErrReservedType},
		{name: "empty type", params: commands.AppendParams{Seq: 1, Timestamp: ts, Type: " "}, want: match.ErrEmptyType},
		{name: "array payload", params: commands.AppendParams{Seq: 1, Timestamp: ts, Type: "GOAL", Payload: []byte(`[1]`)}, want: match.ErrInvalidPayload},
		{name: "no timestamp", params: commands.AppendParams{Seq: 1, Type: "GOAL"}, want: match.ErrInvalidTimestamp},
	}
	for _, tc := range validation {
		t.Run("validation: "+tc.name, func(t *testing.T) {
			f := newUoWFixture(t)

			_, err := newMatchCommands(f).Append(ctx, tc.params)

			require.ErrorIs(t, err, tc.want)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestStartMatch(t *testing.T) {
	ctx := context.Background()
	admin := commands.Actor{UserID: uuid.New(), Role: user.RoleSuperAdmin}

	t.Run("success: kickoff at seq 1", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().Start(ctx, m.ID, fixedNow).Return(true, nil)
		f.matches.EXPECT().MaxSeq(ctx, m.ID).Return(0, nil)
		f.matches.EXPECT().InsertEvent(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, ev match.Event) (*match.Event, error) {
			assert.Equal(t, match.EventKickoff, ev.Type)
			assert.Equal(t, json.RawMessage(`{}`), ev.Payload)
			assert.Equal(t, admin.UserID, ev.CreatedByUserID)
			return echoEvent(ctx, ev)
		})

		got, err := newMatchCommands(f).StartMatch(ctx, m.ID, admin)

		require.NoError(t, err)
		assert.Equal(t, 1, got.Seq)
	})

	t.Run("conflict: already live", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusLive).BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)

		_, err := newMatchCommands(f).StartMatch(ctx, m.ID, admin)

		require.ErrorIs(t, err, commands.ErrMatchNotScheduled)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})
}

func TestFinalizeMatch(t *testing.T) {
	ctx := context.Background()
	referee := commands.Actor{UserID: uuid.New(), Role: user.RoleReferee}

	t.Run("success: final whistle and report job", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusLive).BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().HasAcceptedReferee(ctx, m.ID, referee.UserID).Return(true, nil)
		f.matches.EXPECT().Finalize(ctx, m.ID, fixedNow).Return(true, nil)
		f.matches.EXPECT().MaxSeq(ctx, m.ID).Return(5, nil)
		f.matches.EXPECT().InsertEvent(ctx, gomock.Any()).DoAndReturn(echoEvent)
		f.notifications.EXPECT().CreateJob(ctx, outbox.KindMatch, outbox.TopicMatchFinalized, gomock.Any(), fixedNow).
			DoAndReturn(func(_ context.Context, _, _ string, payload []byte, _ time.Time) error {
				var body outbox.MatchFinalized
				require.NoError(t, json.Unmarshal(payload, &body))
				assert.Equal(t, 6, body.EventCount)
				return nil
			})

		got, err := newMatchCommands(f).FinalizeMatch(ctx, m.ID, referee)

		require.NoError(t, err)
		assert.Equal(t, 6, got.Seq)
		assert.Equal(t, match.EventFinalWhistle, got.Type)
	})

	t.Run("conflict: still scheduled", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().HasAcceptedReferee(ctx, m.ID, referee.UserID).Return(true, nil)

		_, err := newMatchCommands(f).FinalizeMatch(ctx, m.ID, referee)

		require.ErrorIs(t, err, commands.ErrMatchNotLive)
	})
}

func TestRefereeAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("organizer offers", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().BuildDomain()
		refereeID := uuid.New()
		offer := &match.RefereeAssignment{ID: uuid.New(), MatchID: m.ID, RefereeUserID: refereeID, Status: match.AssignmentOffered}

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().OfferReferee(ctx, m.ID, refereeID, fixedNow).Return(offer, nil)

		got, err := newMatchCommands(f).OfferReferee(ctx, m.ID, refereeID, commands.Actor{UserID: uuid.New(), Role: user.RoleOrganizer})

		require.NoError(t, err)
		assert.Equal(t, match.AssignmentOffered, got.Status)
	})

	t.Run("commentator may not offer", func(t *testing.T) {
		f := newUoWFixture(t)

		_, err := newMatchCommands(f).OfferReferee(ctx, uuid.New(), uuid.New(), commands.Actor{UserID: uuid.New(), Role: user.RoleCommentator})

		require.ErrorIs(t, err, commands.ErrNotAllowed)
	})

	t.Run("offer on a final match is refused", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusFinal).BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)

		_, err := newMatchCommands(f).OfferReferee(ctx, m.ID, uuid.New(), commands.Actor{UserID: uuid.New(), Role: user.RoleSuperAdmin})

		require.ErrorIs(t, err, commands.ErrMatchClosed)
	})

	t.Run("referee accepts own offer", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().BuildDomain()
		referee := commands.Actor{UserID: uuid.New(), Role: user.RoleReferee}
		accepted := &match.RefereeAssignment{ID: uuid.New(), MatchID: m.ID, RefereeUserID: referee.UserID, Status: match.AssignmentAccepted}

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().AcceptReferee(ctx, m.ID, referee.UserID, fixedNow).Return(accepted, nil)

		got, err := newMatchCommands(f).AcceptAssignment(ctx, m.ID, referee)

		require.NoError(t, err)
		assert.Equal(t, match.AssignmentAccepted, got.Status)
	})

	t.Run("accept without offer", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().BuildDomain()
		referee := commands.Actor{UserID: uuid.New(), Role: user.RoleReferee}

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().AcceptReferee(ctx, m.ID, referee.UserID, fixedNow).Return(nil, notFound())

		_, err := newMatchCommands(f).AcceptAssignment(ctx, m.ID, referee)

		require.ErrorIs(t, err, commands.ErrAssignmentNotFound)
	})
}

func TestDecideAward(t *testing.T) {
	ctx := context.Background()
	organizer := commands.Actor{UserID: uuid.New(), Role: user.RoleOrganizer}

	t.Run("organizer decides on a final match", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusFinal).BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().InsertAward(ctx, match.Award{
			MatchID:         m.ID,
			Kind:            match.AwardManOfMatch,
			WinnerRef:       "player-7",
			DecidedByUserID: organizer.UserID,
			DecidedAt:       fixedNow,
		}).DoAndReturn(func(_ context.Context, a match.Award) (*match.Award, error) {
			a.ID = uuid.New()
			return &a, nil
		})

		got, err := newMatchCommands(f).DecideAward(ctx, commands.AwardParams{
			MatchID: m.ID, Kind: "MAN_OF_MATCH", WinnerRef: " player-7 ", Author: organizer,
		})

		require.NoError(t, err)
		assert.Equal(t, match.AwardManOfMatch, got.Kind)
		assert.Equal(t, "player-7", got.WinnerRef)
	})

	t.Run("accepted referee decides", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusFinal).BuildDomain()
		referee := commands.Actor{UserID: uuid.New(), Role: user.RoleReferee}

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().HasAcceptedReferee(ctx, m.ID, referee.UserID).Return(true, nil)
		f.matches.EXPECT().InsertAward(ctx, gomock.Any()).Return(&match.Award{ID: uuid.New(), Kind: match.AwardBestGoal}, nil)

		_, err := newMatchCommands(f).DecideAward(ctx, commands.AwardParams{
			MatchID: m.ID, Kind: "best_goal", WinnerRef: "event-12", Author: referee,
		})

		require.NoError(t, err)
	})

	t.Run("second award of the same kind conflicts", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusFinal).BuildDomain()
		dup := infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505", ConstraintName: "uq_match_awards_match_kind"})

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)
		f.matches.EXPECT().InsertAward(ctx, gomock.Any()).Return(nil, dup)

		_, err := newMatchCommands(f).DecideAward(ctx, commands.AwardParams{
			MatchID: m.ID, Kind: "best_goal", WinnerRef: "event-12", Author: organizer,
		})

		require.ErrorIs(t, err, commands.ErrAwardDecided)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("live match is refused", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusLive).BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)

		_, err := newMatchCommands(f).DecideAward(ctx, commands.AwardParams{
			MatchID: m.ID, Kind: "best_goal", WinnerRef: "event-12", Author: organizer,
		})

		require.ErrorIs(t, err, commands.ErrMatchNotFinal)
	})

	t.Run("commentator is forbidden", func(t *testing.T) {
		f := newUoWFixture(t)
		m := builder.NewMatchBuilder().WithStatus(match.StatusFinal).BuildDomain()

		f.expectTx()
		f.matches.EXPECT().GetForUpdate(ctx, m.ID).Return(m, nil)

		_, err := newMatchCommands(f).DecideAward(ctx, commands.AwardParams{
			MatchID: m.ID, Kind: "best_goal", WinnerRef: "event-12",
			Author: commands.Actor{UserID: uuid.New(), Role: user.RoleCommentator},
		})

		require.ErrorIs(t, err, commands.ErrNotAllowed)
	})

	t.Run("unknown kind never opens a transaction", func(t *testing.T) {
		f := newUoWFixture(t)

		_, err := newMatchCommands(f).DecideAward(ctx, commands.AwardParams{
			MatchID: uuid.New(), Kind: "mvp", WinnerRef: "player-7", Author: organizer,
		})

		require.ErrorIs(t, err, match.ErrInvalidAwardKind)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
