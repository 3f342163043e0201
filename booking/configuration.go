package booking

import (
	"cloud.google.com/go/civil"

	"dive-booking/schedule"
	"dive-booking/validation"
)

// StayLeg is one contiguous stay at the resort or aboard the yacht.
type StayLeg struct {
	Arrival   civil.Date `json:"arrival"`
	Departure civil.Date `json:"departure"`
}

// Nights returns the whole nights between arrival and departure, never negative.
func (l StayLeg) Nights() int { return schedule.Nights(l.Arrival, l.Departure) }

// ResortStay is the resort leg together with its room choice.
type ResortStay struct {
	Leg             StayLeg `json:"leg"`
	AccommodationID string  `json:"accommodationId"`
}

// LiveaboardStay is the cruise leg together with its cabin choice.
type LiveaboardStay struct {
	Leg     StayLeg `json:"leg"`
	CabinID string  `json:"cabinId"`
}

// Itinerary is the trip-type variant of a configuration. Each implementation
// carries exactly the legs that belong to its trip type.
type Itinerary interface {
	TripType() TripType
	Resort() (ResortStay, bool)
	Liveaboard() (LiveaboardStay, bool)
	itinerary()
}

type ResortOnly struct {
	Stay ResortStay
}

func (ResortOnly) TripType() TripType { return TripResortOnly }
func (i ResortOnly) Resort() (ResortStay, bool) { return i.Stay, true }
func (ResortOnly) Liveaboard() (LiveaboardStay, bool) { return LiveaboardStay{}, false }
func (ResortOnly) itinerary() {}

type LiveaboardOnly struct {
	Stay LiveaboardStay
}

func (LiveaboardOnly) TripType() TripType { return TripPelagianOnly }
func (LiveaboardOnly) Resort() (ResortStay, bool) { return ResortStay{}, false }
func (i LiveaboardOnly) Liveaboard() (LiveaboardStay, bool) { return i.Stay, true }
func (LiveaboardOnly) itinerary() {}

type Combination struct {
	Order          CombinationOrder
	ResortStay     ResortStay
	LiveaboardStay LiveaboardStay
}

func (Combination) TripType() TripType { return TripCombinationStay }
func (i Combination) Resort() (ResortStay, bool) { return i.ResortStay, true }
func (i Combination) Liveaboard() (LiveaboardStay, bool) { return i.LiveaboardStay, true }
func (Combination) itinerary() {}

// Configuration is a structurally complete booking: the itinerary variant plus
// everything that applies to every trip type.
type Configuration struct {
	Itinerary  Itinerary
	Guests     GuestCount
	VisitCount VisitCount
	// ActivityID and Activities are only set for itineraries with a resort leg.
	ActivityID string
	Activities ActivityAllocation
	Contact    Contact
}

// TotalNights sums the nights of every leg.
func (c Configuration) TotalNights() int {
	total := 0
	if r, ok := c.Itinerary.Resort(); ok {
		total += r.Leg.Nights()
	}
	if l, ok := c.Itinerary.Liveaboard(); ok {
		total += l.Leg.Nights()
	}
	return total
}

// GuestPackage is one guest's resolved activity booking.
type GuestPackage struct {
	GuestID    string
	ActivityID string
	Days       int
}

// GuestPackages resolves each allocated guest's activity against the default
// package, in guest order. Guests without days are omitted.
func (c Configuration) GuestPackages() []GuestPackage {
	if _, ok := c.Itinerary.Resort(); !ok {
		return nil
	}
	var out []GuestPackage
	for _, id := range c.Guests.GuestIDs() {
		ga, ok := c.Activities[id]
		if !ok || ga.Days == 0 {
			continue
		}
		activityID := ga.ActivityID
		if activityID == "" {
			activityID = c.ActivityID
		}
		out = append(out, GuestPackage{GuestID: id, ActivityID: activityID, Days: ga.Days})
	}
	return out
}

// Configuration converts a draft into its trip-type variant. It checks only
// that the fields the variant needs are present; schedule, catalog and contact
// rules are Validate's job.
func (d Draft) Configuration() (Configuration, error) {
	var errs validation.FieldErrors

	resort := func() ResortStay {
		if d.ResortArrivalDate == nil {
			errs.Add(FieldResortArrival, "resort arrival date is required")
		}
		if d.ResortDepartureDate == nil {
			errs.Add(FieldResortDeparture, "resort departure date is required")
		}
		if d.AccommodationID == "" {
			errs.Add(FieldAccommodation, "accommodation is required")
		}
		return ResortStay{Leg: leg(d.ResortArrivalDate, d.ResortDepartureDate), AccommodationID: d.AccommodationID}
	}
	liveaboard := func() LiveaboardStay {
		if d.LiveaboardArrivalDate == nil {
			errs.Add(FieldPelagianArrival, "liveaboard arrival date is required")
		}
		if d.LiveaboardDepartureDate == nil {
			errs.Add(FieldPelagianDeparture, "liveaboard departure date is required")
		}
		if d.CabinID == "" {
			errs.Add(FieldCabin, "cabin is required")
		}
		return LiveaboardStay{Leg: leg(d.LiveaboardArrivalDate, d.LiveaboardDepartureDate), CabinID: d.CabinID}
	}

	var it Itinerary
	switch d.TripType {
	case TripResortOnly:
		it = ResortOnly{Stay: resort()}
	case TripPelagianOnly:
		it = LiveaboardOnly{Stay: liveaboard()}
	case TripCombinationStay:
		if !d.CombinationOrder.IsValid() {
			errs.Add(FieldCombinationOrder, "combination order is required")
		}
		it = Combination{Order: d.CombinationOrder, ResortStay: resort(), LiveaboardStay: liveaboard()}
	default:
		errs.Add(FieldTripType, "trip type is required")
	}
	if err := errs.Err(); err != nil {
		return Configuration{}, err
	}

	cfg := Configuration{
		Itinerary:  it,
		Guests:     d.Guests(),
		VisitCount: d.VisitCount,
		Contact:    d.Contact,
	}
	if d.TripType.HasResortLeg() {
		cfg.ActivityID = d.ActivityID
		cfg.Activities = d.ActivityDays.Prune(cfg.Guests)
	}
	return cfg, nil
}

// Draft returns the flat form of c, the inverse of Draft.Configuration.
func (c Configuration) Draft() Draft {
	d := Draft{
		Adults:     c.Guests.Adults,
		Children:   c.Guests.Children,
		Infants:    c.Guests.Infants,
		VisitCount: c.VisitCount,
		Contact:    c.Contact,
	}
	if c.Itinerary == nil {
		return d
	}
	d.TripType = c.Itinerary.TripType()
	if comb, ok := c.Itinerary.(Combination); ok {
		d.CombinationOrder = comb.Order
	}
	if r, ok := c.Itinerary.Resort(); ok {
		d.ResortArrivalDate = copyDate(&r.Leg.Arrival)
		d.ResortDepartureDate = copyDate(&r.Leg.Departure)
		d.AccommodationID = r.AccommodationID
		d.ActivityID = c.ActivityID
		d.ActivityDays = c.Activities.Clone()
	}
	if l, ok := c.Itinerary.Liveaboard(); ok {
		d.LiveaboardArrivalDate = copyDate(&l.Leg.Arrival)
		d.LiveaboardDepartureDate = copyDate(&l.Leg.Departure)
		d.CabinID = l.CabinID
	}
	return d
}

func leg(arrival, departure *civil.Date) StayLeg {
	var l StayLeg
	if arrival != nil {
		l.Arrival = *arrival
	}
	if departure != nil {
		l.Departure = *departure
	}
	return l
}
