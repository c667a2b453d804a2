package reservation

import (
	"time"

	"courtside/internal/pkg/clock"

	"github.com/google/uuid"
)

const DefaultHoldTTL = 15 * time.Minute

// Factory stamps new holds with an id and an expiry of now + HoldTTL.
type Factory struct {
	Clock   clock.Clock
	HoldTTL time.Duration
}

func NewFactory(clock clock.Clock, holdTTL time.Duration) *Factory {
	if holdTTL <= 0 {
		holdTTL = DefaultHoldTTL
	}
	return &Factory{
		Clock:   clock,
		HoldTTL: holdTTL,
	}
}

func (f *Factory) NewSlotHold(slotID, userID uuid.UUID, actor ActorInfo) *Reservation {
	sid := slotID
	return f.newHold(&sid, userID, actor, false, nil)
}

func (f *Factory) NewOwnCourtHold(userID uuid.UUID, actor ActorInfo, venue CustomVenue) *Reservation {
	return f.newHold(nil, userID, actor, true, &venue)
}

func (f *Factory) newHold(slotID *uuid.UUID, userID uuid.UUID, actor ActorInfo, ownCourt bool, venue *CustomVenue) *Reservation {
	now := f.Clock.Now()
	expiresAt := now.Add(f.HoldTTL)
	return &Reservation{
		id:          uuid.New(),
		slotID:      slotID,
		bookedBy:    userID,
		actor:       actor,
		useOwnCourt: ownCourt,
		customVenue: venue,
		status:      StatusPending,
		expiresAt:   &expiresAt,
		createdAt:   now,
		updatedAt:   now,
	}
}
