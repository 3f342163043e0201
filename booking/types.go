// Package booking models the configuration a guest builds up in the booking
// wizard and the rules that decide when it can be submitted.
package booking

import "fmt"

// TripType selects which stay legs a trip is made of.
type TripType string

const (
	TripResortOnly      TripType = "resort-only"
	TripPelagianOnly    TripType = "pelagian-only"
	TripCombinationStay TripType = "combination-stay"
)

func (t TripType) IsValid() bool {
	switch t {
	case TripResortOnly, TripPelagianOnly, TripCombinationStay:
		return true
	}
	return false
}

// HasResortLeg reports whether trips of this type include a resort stay.
func (t TripType) HasResortLeg() bool {
	return t == TripResortOnly || t == TripCombinationStay
}

// HasLiveaboardLeg reports whether trips of this type include a liveaboard cruise.
func (t TripType) HasLiveaboardLeg() bool {
	return t == TripPelagianOnly || t == TripCombinationStay
}

func ParseTripType(s string) (TripType, error) {
	t := TripType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid trip type: %s", s)
	}
	return t, nil
}

// CombinationOrder decides which leg of a combination stay comes first.
type CombinationOrder string

const (
	ResortFirst   CombinationOrder = "resort-first"
	PelagianFirst CombinationOrder = "pelagian-first"
)

func (o CombinationOrder) IsValid() bool {
	return o == ResortFirst || o == PelagianFirst
}

func ParseCombinationOrder(s string) (CombinationOrder, error) {
	o := CombinationOrder(s)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid combination order: %s", s)
	}
	return o, nil
}

// VisitCount drives the returning-visitor discount tier.
type VisitCount string

const (
	VisitFirst       VisitCount = "first"
	VisitSecondThird VisitCount = "second-third"
	VisitFourthPlus  VisitCount = "fourth-plus"
)

func (v VisitCount) IsValid() bool {
	switch v {
	case VisitFirst, VisitSecondThird, VisitFourthPlus:
		return true
	}
	return false
}

func ParseVisitCount(s string) (VisitCount, error) {
	v := VisitCount(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid visit count: %s", s)
	}
	return v, nil
}

// Form field names used as FieldError keys. They match the JSON names of Draft.
const (
	FieldTripType          = "tripType"
	FieldCombinationOrder  = "combinationOrder"
	FieldResortArrival     = "resortArrivalDate"
	FieldResortDeparture   = "resortDepartureDate"
	FieldAccommodation     = "accommodationId"
	FieldPelagianArrival   = "pelagianArrivalDate"
	FieldPelagianDeparture = "pelagianDepartureDate"
	FieldCabin             = "pelagianCabinId"
	FieldAdults            = "adults"
	FieldChildren          = "children"
	FieldInfants           = "infants"
	FieldVisitCount        = "visitCount"
	FieldActivity          = "activityId"
	FieldActivityDays      = "activityDays"
	FieldFirstName         = "firstName"
	FieldLastName          = "lastName"
	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldSpecialRequests   = "specialRequests"
)
