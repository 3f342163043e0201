package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"dive-booking/booking"
	"dive-booking/pricing"
)

// Booking is a submitted booking request. Records are written once and never
// updated.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	TripType         string `gorm:"column:trip_type;size:32;index" json:"tripType"`
	CombinationOrder string `gorm:"column:combination_order;size:32" json:"combinationOrder,omitempty"`

	ResortArrivalDate   *Date  `gorm:"column:resort_arrival_date" json:"resortArrivalDate,omitempty"`
	ResortDepartureDate *Date  `gorm:"column:resort_departure_date" json:"resortDepartureDate,omitempty"`
	AccommodationID     string `gorm:"column:accommodation_id;size:64" json:"accommodationId,omitempty"`

	PelagianArrivalDate   *Date  `gorm:"column:pelagian_arrival_date" json:"pelagianArrivalDate,omitempty"`
	PelagianDepartureDate *Date  `gorm:"column:pelagian_departure_date" json:"pelagianDepartureDate,omitempty"`
	PelagianCabinID       string `gorm:"column:pelagian_cabin_id;size:64" json:"pelagianCabinId,omitempty"`

	// Older single-leg readers only know this pair.
	ArrivalDate   *Date `gorm:"column:arrival_date" json:"arrivalDate,omitempty"`
	DepartureDate *Date `gorm:"column:departure_date" json:"departureDate,omitempty"`

	Adults     int    `gorm:"column:adults;default:1" json:"adults"`
	Children   int    `gorm:"column:children;default:0" json:"children"`
	Infants    int    `gorm:"column:infants;default:0" json:"infants"`
	VisitCount string `gorm:"column:visit_count;size:32" json:"visitCount"`

	ActivityID   string         `gorm:"column:activity_id;size:64" json:"activityId,omitempty"`
	ActivityDays datatypes.JSON `gorm:"column:activity_days" json:"activityDays,omitempty"`

	FirstName       string `gorm:"column:first_name;size:128" json:"firstName"`
	LastName        string `gorm:"column:last_name;size:128" json:"lastName"`
	Email           string `gorm:"column:email;size:255;index" json:"email"`
	Phone           string `gorm:"column:phone;size:64" json:"phone"`
	SpecialRequests string `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`

	// TotalPrice is in minor currency units.
	TotalPrice     int64  `gorm:"column:total_price" json:"totalPrice"`
	TotalNights    int    `gorm:"column:total_nights" json:"totalNights"`
	DiscountRate   int    `gorm:"column:discount_rate" json:"discountRate"`
	DiscountReason string `gorm:"column:discount_reason;size:32" json:"discountReason"`
}

// NewBooking builds the record for a priced configuration.
func NewBooking(cfg booking.Configuration, q pricing.Quote) (*Booking, error) {
	if cfg.Itinerary == nil {
		return nil, fmt.Errorf("new booking: configuration has no itinerary")
	}
	d := cfg.Draft()
	b := &Booking{
		TripType:         string(d.TripType),
		CombinationOrder: string(d.CombinationOrder),

		ResortArrivalDate:   NewDate(d.ResortArrivalDate),
		ResortDepartureDate: NewDate(d.ResortDepartureDate),
		AccommodationID:     d.AccommodationID,

		PelagianArrivalDate:   NewDate(d.LiveaboardArrivalDate),
		PelagianDepartureDate: NewDate(d.LiveaboardDepartureDate),
		PelagianCabinID:       d.CabinID,

		Adults:     d.Adults,
		Children:   d.Children,
		Infants:    d.Infants,
		VisitCount: string(d.VisitCount),
		ActivityID: d.ActivityID,

		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		Phone:           d.Phone,
		SpecialRequests: d.SpecialRequests,

		TotalPrice:     q.Total.MinorUnits(),
		TotalNights:    q.TotalNights,
		DiscountRate:   q.DiscountRate,
		DiscountReason: q.DiscountReason,
	}

	switch d.TripType {
	case booking.TripResortOnly:
		b.ArrivalDate, b.DepartureDate = NewDate(d.ResortArrivalDate), NewDate(d.ResortDepartureDate)
	case booking.TripPelagianOnly:
		b.ArrivalDate, b.DepartureDate = NewDate(d.LiveaboardArrivalDate), NewDate(d.LiveaboardDepartureDate)
	}

	if d.ActivityDays != nil {
		raw, err := json.Marshal(d.ActivityDays)
		if err != nil {
			return nil, fmt.Errorf("encode activity days: %w", err)
		}
		b.ActivityDays = datatypes.JSON(raw)
	}
	return b, nil
}

// Draft rebuilds the submitted form from the record.
func (b *Booking) Draft() (booking.Draft, error) {
	d := booking.Draft{
		TripType:         booking.TripType(b.TripType),
		CombinationOrder: booking.CombinationOrder(b.CombinationOrder),

		ResortArrivalDate:   b.ResortArrivalDate.Civil(),
		ResortDepartureDate: b.ResortDepartureDate.Civil(),
		AccommodationID:     b.AccommodationID,

		LiveaboardArrivalDate:   b.PelagianArrivalDate.Civil(),
		LiveaboardDepartureDate: b.PelagianDepartureDate.Civil(),
		CabinID:                 b.PelagianCabinID,

		Adults:     b.Adults,
		Children:   b.Children,
		Infants:    b.Infants,
		VisitCount: booking.VisitCount(b.VisitCount),
		ActivityID: b.ActivityID,

		Contact: booking.Contact{
			FirstName:       b.FirstName,
			LastName:        b.LastName,
			Email:           b.Email,
			Phone:           b.Phone,
			SpecialRequests: b.SpecialRequests,
		},
	}

	// Rows written by single-leg clients may only carry the legacy pair.
	if d.ResortArrivalDate == nil && d.LiveaboardArrivalDate == nil {
		d.ArrivalDate, d.DepartureDate = b.ArrivalDate.Civil(), b.DepartureDate.Civil()
		d.Normalize()
		d.ArrivalDate, d.DepartureDate = nil, nil
	}

	if len(b.ActivityDays) > 0 {
		if err := json.Unmarshal(b.ActivityDays, &d.ActivityDays); err != nil {
			return booking.Draft{}, fmt.Errorf("decode activity days of booking %d: %w", b.ID, err)
		}
	}
	return d, nil
}

// Configuration returns the record's configuration.
func (b *Booking) Configuration() (booking.Configuration, error) {
	d, err := b.Draft()
	if err != nil {
		return booking.Configuration{}, err
	}
	return d.Configuration()
}

// Clone returns a deep copy.
func (b *Booking) Clone() *Booking {
	out := *b
	out.ResortArrivalDate = cloneDate(b.ResortArrivalDate)
	out.ResortDepartureDate = cloneDate(b.ResortDepartureDate)
	out.PelagianArrivalDate = cloneDate(b.PelagianArrivalDate)
	out.PelagianDepartureDate = cloneDate(b.PelagianDepartureDate)
	out.ArrivalDate = cloneDate(b.ArrivalDate)
	out.DepartureDate = cloneDate(b.DepartureDate)
	if b.ActivityDays != nil {
		out.ActivityDays = append(datatypes.JSON(nil), b.ActivityDays...)
	}
	return &out
}

func cloneDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
