package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAccommodation = errors.New("unknown accommodation")
	ErrUnknownCabin         = errors.New("unknown cabin")
	ErrUnknownActivity      = errors.New("unknown activity")
	ErrInvalidLeg           = errors.New("invalid stay leg")
	ErrMissingItinerary     = errors.New("configuration has no itinerary")
	ErrInvalidGuests        = errors.New("invalid party size")
	ErrUnknownGuest         = errors.New("activity days for a guest not in the party")
	ErrInvalidActivityDays  = errors.New("activity days out of range")
)

// Error reports a configuration that validation should have rejected before
// it reached pricing.
type Error struct {
	Field string
	ID    string
	Err   error
}

func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("pricing %s: %v %q", e.Field, e.Err, e.ID)
	}
	return fmt.Sprintf("pricing %s: %v", e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
