package booking

import (
	"strings"

	"cloud.google.com/go/civil"

	"dive-booking/schedule"
)

// Contact is how the reservations team reaches the guest.
type Contact struct {
	FirstName       string `json:"firstName" validate:"min=2"`
	LastName        string `json:"lastName" validate:"min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"min=5"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// Draft is the partially filled configuration the wizard accumulates. Any
// field may be missing or invalid until Validate reports no errors.
type Draft struct {
	TripType         TripType         `json:"tripType,omitempty"`
	CombinationOrder CombinationOrder `json:"combinationOrder,omitempty"`

	ResortArrivalDate   *civil.Date `json:"resortArrivalDate,omitempty"`
	ResortDepartureDate *civil.Date `json:"resortDepartureDate,omitempty"`
	AccommodationID     string      `json:"accommodationId,omitempty"`

	LiveaboardArrivalDate   *civil.Date `json:"pelagianArrivalDate,omitempty"`
	LiveaboardDepartureDate *civil.Date `json:"pelagianDepartureDate,omitempty"`
	CabinID                 string      `json:"pelagianCabinId,omitempty"`

	// Single arrival/departure pair sent by older single-leg clients.
	ArrivalDate   *civil.Date `json:"arrivalDate,omitempty"`
	DepartureDate *civil.Date `json:"departureDate,omitempty"`

	Adults     int        `json:"adults"`
	Children   int        `json:"children"`
	Infants    int        `json:"infants"`
	VisitCount VisitCount `json:"visitCount,omitempty"`

	ActivityID   string             `json:"activityId,omitempty"`
	ActivityDays ActivityAllocation `json:"activityDays,omitempty"`

	Contact
}

// NewDraft returns the wizard's starting state: two adults on a first visit.
func NewDraft() Draft {
	return Draft{Adults: 2, VisitCount: VisitFirst}
}

// Guests returns the party size.
func (d Draft) Guests() GuestCount {
	return GuestCount{Adults: d.Adults, Children: d.Children, Infants: d.Infants}
}

// Normalize trims free-text fields and moves a legacy arrival/departure pair
// onto the leg of a single-leg trip when that leg has no dates of its own.
func (d *Draft) Normalize() {
	d.AccommodationID = strings.TrimSpace(d.AccommodationID)
	d.CabinID = strings.TrimSpace(d.CabinID)
	d.ActivityID = strings.TrimSpace(d.ActivityID)
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.SpecialRequests = strings.TrimSpace(d.SpecialRequests)

	if d.ArrivalDate == nil && d.DepartureDate == nil {
		return
	}
	switch d.TripType {
	case TripResortOnly:
		if d.ResortArrivalDate == nil && d.ResortDepartureDate == nil {
			d.ResortArrivalDate, d.ResortDepartureDate = copyDate(d.ArrivalDate), copyDate(d.DepartureDate)
		}
	case TripPelagianOnly:
		if d.LiveaboardArrivalDate == nil && d.LiveaboardDepartureDate == nil {
			d.LiveaboardArrivalDate, d.LiveaboardDepartureDate = copyDate(d.ArrivalDate), copyDate(d.DepartureDate)
		}
	}
}

// ResetItinerary clears every selection that depends on the trip type.
func (d *Draft) ResetItinerary() {
	d.ResortArrivalDate, d.ResortDepartureDate = nil, nil
	d.LiveaboardArrivalDate, d.LiveaboardDepartureDate = nil, nil
	d.ArrivalDate, d.DepartureDate = nil, nil
	d.AccommodationID = ""
	d.CabinID = ""
	d.ActivityID = ""
	d.ActivityDays = nil
}

// ResortNights returns the nights of the resort leg, or zero when its dates are incomplete.
func (d Draft) ResortNights() int {
	if !d.TripType.HasResortLeg() || d.ResortArrivalDate == nil || d.ResortDepartureDate == nil {
		return 0
	}
	return schedule.Nights(*d.ResortArrivalDate, *d.ResortDepartureDate)
}

// LiveaboardNights returns the nights of the liveaboard leg, or zero when its dates are incomplete.
func (d Draft) LiveaboardNights() int {
	if !d.TripType.HasLiveaboardLeg() || d.LiveaboardArrivalDate == nil || d.LiveaboardDepartureDate == nil {
		return 0
	}
	return schedule.Nights(*d.LiveaboardArrivalDate, *d.LiveaboardDepartureDate)
}

// TotalNights sums the nights of every leg with complete dates.
func (d Draft) TotalNights() int {
	return d.ResortNights() + d.LiveaboardNights()
}

// FillDefaultAllocation books every billable guest on the default package for
// the maximum days when a resort trip has a package but no allocation yet. It
// reports whether the allocation was filled.
func (d *Draft) FillDefaultAllocation() bool {
	if !d.TripType.HasResortLeg() || d.ActivityID == "" || len(d.ActivityDays) > 0 {
		return false
	}
	d.ActivityDays = DefaultAllocation(d.Guests(), d.TotalNights())
	return true
}

// Clone returns a copy that shares no pointers or maps with d.
func (d Draft) Clone() Draft {
	out := d
	out.ResortArrivalDate = copyDate(d.ResortArrivalDate)
	out.ResortDepartureDate = copyDate(d.ResortDepartureDate)
	out.LiveaboardArrivalDate = copyDate(d.LiveaboardArrivalDate)
	out.LiveaboardDepartureDate = copyDate(d.LiveaboardDepartureDate)
	out.ArrivalDate = copyDate(d.ArrivalDate)
	out.DepartureDate = copyDate(d.DepartureDate)
	out.ActivityDays = d.ActivityDays.Clone()
	return out
}

func copyDate(d *civil.Date) *civil.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
