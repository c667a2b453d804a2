package commands

import (
	"courtside/internal/pkg/errs"
)

var (
	ErrSlotNotFound        = errs.Mark(errs.New("slot not found"), errs.ErrNotFound)
	ErrSlotConflict        = errs.Mark(errs.New("slot is not available"), errs.ErrConflict)
	ErrSlotRequired        = errs.Mark(errs.New("slot id is required unless using own court"), errs.ErrValidation)
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrReservationConflict = errs.Mark(errs.New("reservation state conflict"), errs.ErrConflict)
	ErrMatchNotFound       = errs.Mark(errs.New("match not found"), errs.ErrNotFound)
	ErrMatchNotLive        = errs.Mark(errs.New("match is not live"), errs.ErrConflict)
	ErrMatchNotScheduled   = errs.Mark(errs.New("match is not scheduled"), errs.ErrConflict)
	ErrMatchClosed         = errs.Mark(errs.New("match is closed"), errs.ErrConflict)
	ErrMatchNotFinal       = errs.Mark(errs.New("match is not final"), errs.ErrConflict)
	ErrAwardDecided        = errs.Mark(errs.New("award of this kind is already decided for match"), errs.ErrConflict)
	ErrAssignmentNotFound  = errs.Mark(errs.New("no open referee offer for match"), errs.ErrNotFound)
	ErrNotAllowed          = errs.Mark(errs.New("actor is not allowed to perform this action"), errs.ErrForbidden)
)

// validation tags a domain input error so handlers answer 400.
func validation(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

// notFoundAs replaces a repository not-found with the usecase error, leaving other failures intact.
func notFoundAs(err, target error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return target
	}
	return err
}
