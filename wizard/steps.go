// Package wizard sequences the booking steps and holds the server-side state
// of a guest moving through them.
package wizard

import (
	"dive-booking/booking"
	"dive-booking/catalog"
	"dive-booking/schedule"
	"dive-booking/validation"
)

// StepID names one screen of the booking wizard.
type StepID string

const (
	StepTripType            StepID = "trip-type"
	StepDates               StepID = "dates"
	StepGuests              StepID = "guests"
	StepAccommodation       StepID = "accommodation"
	StepActivities          StepID = "activities"
	StepReview              StepID = "review"
	StepCabin               StepID = "cabin"
	StepResortAccommodation StepID = "resort-accommodation"
	StepPelagianDates       StepID = "pelagian-dates"
	StepPelagianCabin       StepID = "pelagian-cabin"
	StepResortDates         StepID = "resort-dates"
)

var stepTitles = map[StepID]string{
	StepTripType:            "Trip Type",
	StepDates:               "Dates",
	StepGuests:              "Guests",
	StepAccommodation:       "Accommodation",
	StepActivities:          "Activities",
	StepReview:              "Review",
	StepCabin:               "Cabin",
	StepResortAccommodation: "Resort Accommodation",
	StepPelagianDates:       "Pelagian Dates",
	StepPelagianCabin:       "Pelagian Cabin",
	StepResortDates:         "Resort Dates",
}

// Title returns the display name of the step.
func (s StepID) Title() string { return stepTitles[s] }

var baseSteps = []StepID{StepTripType, StepDates, StepGuests}

type sequenceKey struct {
	trip  booking.TripType
	order booking.CombinationOrder
}

var sequences = map[sequenceKey][]StepID{
	{booking.TripResortOnly, ""}:   {StepAccommodation, StepActivities, StepReview},
	{booking.TripPelagianOnly, ""}: {StepCabin, StepReview},
	{booking.TripCombinationStay, booking.ResortFirst}: {
		StepResortAccommodation, StepPelagianDates, StepPelagianCabin, StepActivities, StepReview,
	},
	{booking.TripCombinationStay, booking.PelagianFirst}: {
		StepPelagianDates, StepPelagianCabin, StepResortDates, StepResortAccommodation, StepActivities, StepReview,
	},
}

// StepsFor returns the ordered steps for a trip type and, for combination
// stays, an order. Unknown or incomplete choices yield only the base steps.
func StepsFor(trip booking.TripType, order booking.CombinationOrder) []StepID {
	key := sequenceKey{trip: trip}
	if trip == booking.TripCombinationStay {
		key.order = order
	}
	tail := sequences[key]
	out := make([]StepID, 0, len(baseSteps)+len(tail))
	out = append(out, baseSteps...)
	return append(out, tail...)
}

// FirstLeg returns the leg collected on the Dates step.
func FirstLeg(trip booking.TripType, order booking.CombinationOrder) (schedule.LegType, bool) {
	switch {
	case trip == booking.TripResortOnly:
		return schedule.LegResort, true
	case trip == booking.TripPelagianOnly:
		return schedule.LegLiveaboard, true
	case trip == booking.TripCombinationStay && order == booking.ResortFirst:
		return schedule.LegResort, true
	case trip == booking.TripCombinationStay && order == booking.PelagianFirst:
		return schedule.LegLiveaboard, true
	}
	return "", false
}

// Gate returns the errors that keep the wizard from leaving step on draft d.
func Gate(step StepID, d booking.Draft, lookup catalog.Lookup, rules schedule.Rules) validation.FieldErrors {
	switch step {
	case StepTripType:
		return booking.ValidateTripType(d)
	case StepDates:
		leg, ok := FirstLeg(d.TripType, d.CombinationOrder)
		if !ok {
			return booking.ValidateTripType(d)
		}
		if leg == schedule.LegResort {
			return booking.ValidateResortDates(d, rules)
		}
		return booking.ValidateLiveaboardDates(d, rules)
	case StepGuests:
		return booking.ValidateGuests(d)
	case StepAccommodation, StepResortAccommodation:
		return booking.ValidateAccommodation(d, lookup)
	case StepCabin, StepPelagianCabin:
		return booking.ValidateCabin(d, lookup)
	case StepPelagianDates:
		return booking.ValidateLiveaboardDates(d, rules)
	case StepResortDates:
		return booking.ValidateResortDates(d, rules)
	case StepActivities:
		return booking.ValidateActivities(d, lookup)
	case StepReview:
		return booking.Validate(d, lookup, rules)
	}
	return nil
}
