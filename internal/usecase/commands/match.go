package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"courtside/internal/domain/match"
	"courtside/internal/domain/outbox"
	"courtside/internal/domain/user"
	"courtside/internal/infra"
	"courtside/internal/pkg/clock"
	"courtside/internal/pkg/errs"
	"courtside/internal/pkg/metrics"
	"courtside/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=match.go -destination=../../../tests/mock/commands/match_mock.go -package=commandsmock

type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

type AppendParams struct {
	MatchID   uuid.UUID
	Seq       int
	Timestamp time.Time
	Type      string
	Payload   []byte
	Author    Actor
}

type AwardParams struct {
	MatchID   uuid.UUID
	Kind      string
	WinnerRef string
	Author    Actor
}

type MatchCommands interface {
	Append(ctx context.Context, p AppendParams) (*match.Event, error)
	StartMatch(ctx context.Context, matchID uuid.UUID, actor Actor) (*match.Event, error)
	FinalizeMatch(ctx context.Context, matchID uuid.UUID, actor Actor) (*match.Event, error)
	OfferReferee(ctx context.Context, matchID, refereeID uuid.UUID, actor Actor) (*match.RefereeAssignment, error)
	AcceptAssignment(ctx context.Context, matchID uuid.UUID, actor Actor) (*match.RefereeAssignment, error)
	DecideAward(ctx context.Context, p AwardParams) (*match.Award, error)
}

type matchUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics metrics.Metrics
	logger  *slog.Logger
}

func NewMatchUseCase(uow shared.UnitOfWork, clk clock.Clock, m metrics.Metrics, logger *slog.Logger) MatchCommands {
	return &matchUseCaseImpl{uow: uow, clock: clk, metrics: m, logger: logger}
}

// Append holds the match row lock for the whole check-then-insert, so appends to one match are serial.
func (uc *matchUseCaseImpl) Append(ctx context.Context, p AppendParams) (*match.Event, error) {
	typ, err := match.NormalizeEventType(p.Type)
	if err != nil {
		return nil, validation(err)
	}
	payload, err := match.NormalizePayload(p.Payload)
	if err != nil {
		return nil, validation(err)
	}
	if p.Timestamp.IsZero() {
		return nil, validation(match.ErrInvalidTimestamp)
	}

	var appended *match.Event
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appended = nil

		m, err := uc.lockMatch(ctx, tx, p.MatchID)
		if err != nil {
			return err
		}
		if err := m.EnsureLive(); err != nil {
			return ErrMatchNotLive
		}
		if err := uc.authorizeOfficial(ctx, tx, m.ID, p.Author); err != nil {
			return err
		}

		ev, err := uc.appendAt(ctx, tx, m.ID, p.Seq, p.Timestamp, typ, payload, p.Author.UserID)
		if err != nil {
			return err
		}
		appended = ev
		return nil
	})
	if err != nil {
		var ooo *match.OutOfOrderError
		if errs.As(err, &ooo) {
			uc.metrics.IncMatchEventOutOfOrder()
		}
		return nil, err
	}

	uc.metrics.IncMatchEventAppended()
	return appended, nil
}

func (uc *matchUseCaseImpl) StartMatch(ctx context.Context, matchID uuid.UUID, actor Actor) (*match.Event, error) {
	var kickoff *match.Event
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		kickoff = nil

		m, err := uc.lockMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		if err := uc.authorizeOfficial(ctx, tx, m.ID, actor); err != nil {
			return err
		}
		if err := m.EnsureStartable(); err != nil {
			return errs.Wrapf(ErrMatchNotScheduled, "match is %s", m.Status)
		}

		now := uc.clock.Now()
		ok, err := tx.Matches().Start(ctx, m.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMatchNotScheduled
		}

		ev, err := uc.appendLifecycle(ctx, tx, m.ID, match.EventKickoff, now, actor.UserID)
		if err != nil {
			return err
		}
		kickoff = ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncMatchEventAppended()
	uc.logger.InfoContext(ctx, "match started", "match_id", matchID.String(), "seq", kickoff.Seq)
	return kickoff, nil
}

func (uc *matchUseCaseImpl) FinalizeMatch(ctx context.Context, matchID uuid.UUID, actor Actor) (*match.Event, error) {
	var whistle *match.Event
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		whistle = nil

		m, err := uc.lockMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		if err := uc.authorizeOfficial(ctx, tx, m.ID, actor); err != nil {
			return err
		}
		if err := m.EnsureLive(); err != nil {
			return errs.Wrapf(ErrMatchNotLive, "match is %s", m.Status)
		}

		now := uc.clock.Now()
		ok, err := tx.Matches().Finalize(ctx, m.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMatchNotLive
		}

		ev, err := uc.appendLifecycle(ctx, tx, m.ID, match.EventFinalWhistle, now, actor.UserID)
		if err != nil {
			return err
		}
		whistle = ev

		return enqueue(ctx, tx, uc.clock, outbox.KindMatch, outbox.TopicMatchFinalized, outbox.MatchFinalized{
			MatchID:     m.ID,
			FinalizedAt: now,
			EventCount:  ev.Seq,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncMatchEventAppended()
	uc.logger.InfoContext(ctx, "match finalized", "match_id", matchID.String(), "events", whistle.Seq)
	return whistle, nil
}

func (uc *matchUseCaseImpl) OfferReferee(ctx context.Context, matchID, refereeID uuid.UUID, actor Actor) (*match.RefereeAssignment, error) {
	if !actor.Role.CanRunMatches() {
		return nil, ErrNotAllowed
	}

	var offer *match.RefereeAssignment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := uc.lockMatch(ctx, tx, matchID)
		if err != nil {
			return err
		}
		if m.Status != match.StatusScheduled && m.Status != match.StatusLive {
			return errs.Wrapf(ErrMatchClosed, "match is %s", m.Status)
		}
		offer, err = tx.Matches().OfferReferee(ctx, m.ID, refereeID, uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return offer, nil
}

func (uc *matchUseCaseImpl) AcceptAssignment(ctx context.Context, matchID uuid.UUID, actor Actor) (*match.RefereeAssignment, error) {
	if actor.Role != user.RoleReferee {
		return nil, ErrNotAllowed
	}

	var accepted *match.RefereeAssignment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := uc.lockMatch(ctx, tx, matchID); err != nil {
			return err
		}
		a, err := tx.Matches().AcceptReferee(ctx, matchID, actor.UserID, uc.clock.Now())
		if err != nil {
			return notFoundAs(err, ErrAssignmentNotFound)
		}
		accepted = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

// DecideAward records one award per kind on a final match. Organizers and officials may decide.
func (uc *matchUseCaseImpl) DecideAward(ctx context.Context, p AwardParams) (*match.Award, error) {
	kind, err := match.NewAwardKind(p.Kind)
	if err != nil {
		return nil, validation(err)
	}
	ref, err := match.NormalizeWinnerRef(p.WinnerRef)
	if err != nil {
		return nil, validation(err)
	}

	var decided *match.Award
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		decided = nil

		m, err := uc.lockMatch(ctx, tx, p.MatchID)
		if err != nil {
			return err
		}
		if !p.Author.Role.CanRunMatches() {
			if err := uc.authorizeOfficial(ctx, tx, m.ID, p.Author); err != nil {
				return err
			}
		}
		if err := m.EnsureFinal(); err != nil {
			return errs.Wrapf(ErrMatchNotFinal, "match is %s", m.Status)
		}

		a, err := tx.Matches().InsertAward(ctx, match.Award{
			MatchID:         m.ID,
			Kind:            kind,
			WinnerRef:       ref,
			DecidedByUserID: p.Author.UserID,
			DecidedAt:       uc.clock.Now(),
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Wrapf(ErrAwardDecided, "kind %s", kind)
			}
			return err
		}
		decided = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "match award decided", "match_id", p.MatchID.String(), "kind", string(kind))
	return decided, nil
}

func (uc *matchUseCaseImpl) lockMatch(ctx context.Context, tx shared.Tx, id uuid.UUID) (*match.Match, error) {
	m, err := tx.Matches().GetForUpdate(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrMatchNotFound)
	}
	return m, nil
}

// authorizeOfficial admits super admins and referees who accepted an assignment for the match.
func (uc *matchUseCaseImpl) authorizeOfficial(ctx context.Context, tx shared.Tx, matchID uuid.UUID, actor Actor) error {
	if actor.Role.IsSuperAdmin() {
		return nil
	}
	if actor.Role != user.RoleReferee {
		return ErrNotAllowed
	}
	ok, err := tx.Matches().HasAcceptedReferee(ctx, matchID, actor.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAllowed
	}
	return nil
}

// appendLifecycle writes KICKOFF or FINAL_WHISTLE at the next free seq.
func (uc *matchUseCaseImpl) appendLifecycle(ctx context.Context, tx shared.Tx, matchID uuid.UUID, typ string, at time.Time, author uuid.UUID) (*match.Event, error) {
	maxSeq, err := tx.Matches().MaxSeq(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return uc.insert(ctx, tx, maxSeq, match.Event{
		MatchID:         matchID,
		Seq:             maxSeq + 1,
		Timestamp:       at,
		Type:            typ,
		Payload:         json.RawMessage(`{}`),
		CreatedByUserID: author,
	})
}

func (uc *matchUseCaseImpl) appendAt(
	ctx context.Context,
	tx shared.Tx,
	matchID uuid.UUID,
	seq int,
	ts time.Time,
	typ string,
	payload json.RawMessage,
	author uuid.UUID,
) (*match.Event, error) {
	maxSeq, err := tx.Matches().MaxSeq(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if err := match.CheckNext(maxSeq, seq); err != nil {
		return nil, errs.Mark(err, errs.ErrConflict)
	}
	return uc.insert(ctx, tx, maxSeq, match.Event{
		MatchID:         matchID,
		Seq:             seq,
		Timestamp:       ts,
		Type:            typ,
		Payload:         payload,
		CreatedByUserID: author,
	})
}

// insert reports a (match_id, seq) collision as out of order.
func (uc *matchUseCaseImpl) insert(ctx context.Context, tx shared.Tx, maxSeq int, ev match.Event) (*match.Event, error) {
	ev.Timestamp = ev.Timestamp.UTC()
	out, err := tx.Matches().InsertEvent(ctx, ev)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(&match.OutOfOrderError{Expected: maxSeq + 1, Got: ev.Seq}, errs.ErrConflict)
		}
		return nil, err
	}
	return out, nil
}
