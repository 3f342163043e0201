// Package pricing turns a booking configuration into a price quote.
package pricing

import (
	"dive-booking/booking"
	"dive-booking/catalog"
)

// Discount reasons reported on a Quote.
const (
	ReasonNone         = "none"
	ReasonStayLength   = "stay-length"
	ReasonVisitLoyalty = "visitor-loyalty"
)

// Stay-length thresholds in total nights. Both are strict.
const (
	ShortStayNights = 7
	LongStayNights  = 14
)

// ActivityLine is one guest's activity charge.
type ActivityLine struct {
	GuestID     string `json:"guestId"`
	ActivityID  string `json:"activityId"`
	Days        int    `json:"days"`
	PricePerDay Amount `json:"pricePerDay"`
	Total       Amount `json:"total"`
}

// Quote is the full breakdown of a configuration's price.
type Quote struct {
	ResortNights     int `json:"resortNights"`
	LiveaboardNights int `json:"liveaboardNights"`
	TotalNights      int `json:"totalNights"`
	BillableGuests   int `json:"billableGuests"`

	Accommodation Amount         `json:"accommodationTotal"`
	Activities    Amount         `json:"activityTotal"`
	ActivityLines []ActivityLine `json:"activityLines,omitempty"`
	Cabin         Amount         `json:"cabinTotal"`
	Flights       Amount         `json:"flightTotal"`

	Discountable   Amount `json:"discountableAmount"`
	StayRate       int    `json:"stayDiscountRate"`
	VisitorRate    int    `json:"visitorDiscountRate"`
	DiscountRate   int    `json:"discountRate"`
	DiscountReason string `json:"discountReason"`
	Discount       Amount `json:"discount"`
	Subtotal       Amount `json:"subtotal"`
	Total          Amount `json:"total"`
}

// Engine prices configurations against a catalog.
type Engine struct {
	Lookup      catalog.Lookup
	FlightPrice int64
}

// NewEngine returns an Engine pricing against cat.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{Lookup: cat, FlightPrice: cat.FlightPrice()}
}

// StayRate is the stay-length discount percent for the given total nights.
func StayRate(totalNights int) int {
	switch {
	case totalNights > LongStayNights:
		return 10
	case totalNights > ShortStayNights:
		return 5
	}
	return 0
}

// VisitorRate is the loyalty discount percent for a visit count.
func VisitorRate(v booking.VisitCount) int {
	switch v {
	case booking.VisitSecondThird:
		return 5
	case booking.VisitFourthPlus:
		return 10
	}
	return 0
}

// EffectiveRate picks the single discount applied. The tiers never stack and
// a nonzero stay rate wins even when the visitor rate is higher.
func EffectiveRate(stayRate, visitorRate int) (int, string) {
	if stayRate > 0 {
		return stayRate, ReasonStayLength
	}
	if visitorRate > 0 {
		return visitorRate, ReasonVisitLoyalty
	}
	return 0, ReasonNone
}

// Price computes the quote for cfg. It never prices an unknown catalog id as
// zero; such configurations fail with an *Error.
func (e *Engine) Price(cfg booking.Configuration) (Quote, error) {
	if cfg.Itinerary == nil {
		return Quote{}, &Error{Field: booking.FieldTripType, Err: ErrMissingItinerary}
	}

	if err := checkParty(cfg); err != nil {
		return Quote{}, err
	}

	guests := int64(cfg.Guests.Billable())
	q := Quote{BillableGuests: int(guests)}

	if r, ok := cfg.Itinerary.Resort(); ok {
		if r.Leg.Departure.Before(r.Leg.Arrival) {
			return Quote{}, &Error{Field: booking.FieldResortDeparture, Err: ErrInvalidLeg}
		}
		acc, found := e.Lookup.FindAccommodation(r.AccommodationID)
		if !found {
			return Quote{}, &Error{Field: booking.FieldAccommodation, ID: r.AccommodationID, Err: ErrUnknownAccommodation}
		}
		if err := checkAllocation(cfg); err != nil {
			return Quote{}, err
		}
		q.ResortNights = r.Leg.Nights()
		q.Accommodation = FromMajor(acc.PricePerNight) * Amount(guests*int64(q.ResortNights))

		for _, pkg := range cfg.GuestPackages() {
			act, found := e.Lookup.FindActivity(pkg.ActivityID)
			if !found {
				return Quote{}, &Error{Field: booking.FieldActivityDays + "." + pkg.GuestID, ID: pkg.ActivityID, Err: ErrUnknownActivity}
			}
			line := ActivityLine{
				GuestID:     pkg.GuestID,
				ActivityID:  act.ID,
				Days:        pkg.Days,
				PricePerDay: FromMajor(act.PricePerDay),
			}
			line.Total = line.PricePerDay * Amount(pkg.Days)
			q.ActivityLines = append(q.ActivityLines, line)
			q.Activities += line.Total
		}
	}

	if l, ok := cfg.Itinerary.Liveaboard(); ok {
		if l.Leg.Departure.Before(l.Leg.Arrival) {
			return Quote{}, &Error{Field: booking.FieldPelagianDeparture, Err: ErrInvalidLeg}
		}
		cabin, found := e.Lookup.FindCabin(l.CabinID)
		if !found {
			return Quote{}, &Error{Field: booking.FieldCabin, ID: l.CabinID, Err: ErrUnknownCabin}
		}
		q.LiveaboardNights = l.Leg.Nights()
		q.Cabin = FromMajor(cabin.PricePerNight) * Amount(guests*int64(q.LiveaboardNights))
	}

	q.TotalNights = q.ResortNights + q.LiveaboardNights
	q.Flights = FromMajor(e.FlightPrice) * Amount(guests)

	q.Discountable = q.Accommodation + q.Activities + q.Cabin
	q.StayRate = StayRate(q.TotalNights)
	q.VisitorRate = VisitorRate(cfg.VisitCount)
	q.DiscountRate, q.DiscountReason = EffectiveRate(q.StayRate, q.VisitorRate)
	q.Discount = percentOf(q.Discountable, q.DiscountRate)
	q.Subtotal = q.Discountable + q.Flights
	q.Total = q.Subtotal - q.Discount
	return q, nil
}

// checkParty rejects party sizes that would price as negative or unbounded
// amounts.
func checkParty(cfg booking.Configuration) error {
	g := cfg.Guests
	switch {
	case g.Adults < 1 || g.Adults > booking.MaxPartySize:
		return &Error{Field: booking.FieldAdults, Err: ErrInvalidGuests}
	case g.Children < 0 || g.Children > booking.MaxPartySize:
		return &Error{Field: booking.FieldChildren, Err: ErrInvalidGuests}
	case g.Infants < 0 || g.Infants > booking.MaxPartySize:
		return &Error{Field: booking.FieldInfants, Err: ErrInvalidGuests}
	}
	return nil
}

// checkAllocation rejects activity days for guests outside the party and
// day counts outside [0, MaxActivityDays].
func checkAllocation(cfg booking.Configuration) error {
	g := cfg.Guests
	limit := booking.MaxActivityDays(cfg.TotalNights())
	for _, id := range cfg.Activities.GuestIDs() {
		field := booking.FieldActivityDays + "." + id
		if !g.HasGuest(id) {
			return &Error{Field: field, ID: id, Err: ErrUnknownGuest}
		}
		if days := cfg.Activities[id].Days; days < 0 || days > limit {
			return &Error{Field: field, Err: ErrInvalidActivityDays}
		}
	}
	return nil
}
