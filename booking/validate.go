package booking

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"dive-booking/catalog"
	"dive-booking/schedule"
	"dive-booking/validation"
)

var (
	validateOnce    sync.Once
	structValidator *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		structValidator = v
	})
	return structValidator
}

// guestFields mirrors the guest step of the form for struct-tag validation.
type guestFields struct {
	Adults   int `json:"adults" validate:"min=1,max=50"`
	Children int `json:"children" validate:"min=0,max=50"`
	Infants  int `json:"infants" validate:"min=0,max=50"`
}

// Validate checks a draft for submission. It reports every failing rule at
// once; an empty result means the draft is submit-eligible.
func Validate(d Draft, lookup catalog.Lookup, rules schedule.Rules) validation.FieldErrors {
	var errs validation.FieldErrors

	errs.Merge("", ValidateTripType(d))
	if d.TripType.HasResortLeg() {
		errs.Merge("", ValidateResortStay(d, lookup, rules))
		errs.Merge("", ValidateActivities(d, lookup))
	}
	if d.TripType.HasLiveaboardLeg() {
		errs.Merge("", ValidateLiveaboardStay(d, lookup, rules))
	}
	errs.Merge("", ValidateGuests(d))
	errs.Merge("", ValidateContact(d.Contact))
	return errs
}

// ValidateTripType checks the trip type and, for combination stays, the order.
func ValidateTripType(d Draft) validation.FieldErrors {
	var errs validation.FieldErrors
	switch {
	case d.TripType == "":
		errs.Add(FieldTripType, "trip type is required")
	case !d.TripType.IsValid():
		errs.Add(FieldTripType, fmt.Sprintf("unknown trip type %q", d.TripType))
	case d.TripType == TripCombinationStay && !d.CombinationOrder.IsValid():
		errs.Add(FieldCombinationOrder, "choose which part of the combination stay comes first")
	}
	return errs
}

// ValidateResortDates checks only the resort leg's schedule.
func ValidateResortDates(d Draft, rules schedule.Rules) validation.FieldErrors {
	return legErrors(rules.ValidateLeg(schedule.LegResort, d.ResortArrivalDate, d.ResortDepartureDate),
		FieldResortArrival, FieldResortDeparture)
}

// ValidateLiveaboardDates checks only the liveaboard leg's schedule.
func ValidateLiveaboardDates(d Draft, rules schedule.Rules) validation.FieldErrors {
	return legErrors(rules.ValidateLeg(schedule.LegLiveaboard, d.LiveaboardArrivalDate, d.LiveaboardDepartureDate),
		FieldPelagianArrival, FieldPelagianDeparture)
}

// ValidateAccommodation checks that an accommodation is chosen and still offered.
func ValidateAccommodation(d Draft, lookup catalog.Lookup) validation.FieldErrors {
	var errs validation.FieldErrors
	if d.AccommodationID == "" {
		errs.Add(FieldAccommodation, "please select an accommodation")
	} else if _, ok := lookup.FindAccommodation(d.AccommodationID); !ok {
		errs.Add(FieldAccommodation, fmt.Sprintf("accommodation %q is not available", d.AccommodationID))
	}
	return errs
}

// ValidateCabin checks that a cabin is chosen and still offered.
func ValidateCabin(d Draft, lookup catalog.Lookup) validation.FieldErrors {
	var errs validation.FieldErrors
	if d.CabinID == "" {
		errs.Add(FieldCabin, "please select a cabin")
	} else if _, ok := lookup.FindCabin(d.CabinID); !ok {
		errs.Add(FieldCabin, fmt.Sprintf("cabin %q is not available", d.CabinID))
	}
	return errs
}

// ValidateResortStay checks the resort leg's dates and accommodation.
func ValidateResortStay(d Draft, lookup catalog.Lookup, rules schedule.Rules) validation.FieldErrors {
	errs := ValidateResortDates(d, rules)
	errs.Merge("", ValidateAccommodation(d, lookup))
	return errs
}

// ValidateLiveaboardStay checks the liveaboard leg's dates and cabin.
func ValidateLiveaboardStay(d Draft, lookup catalog.Lookup, rules schedule.Rules) validation.FieldErrors {
	errs := ValidateLiveaboardDates(d, rules)
	errs.Merge("", ValidateCabin(d, lookup))
	return errs
}

// ValidateActivities checks the default package and the per-guest allocation.
// Allocation errors are keyed "activityDays.<guest id>".
func ValidateActivities(d Draft, lookup catalog.Lookup) validation.FieldErrors {
	var errs validation.FieldErrors

	if d.ActivityID == "" {
		errs.Add(FieldActivity, "please select an activity package")
	} else if _, ok := lookup.FindActivity(d.ActivityID); !ok {
		errs.Add(FieldActivity, fmt.Sprintf("activity %q is not available", d.ActivityID))
	}

	guests := d.Guests()
	limit := MaxActivityDays(d.TotalNights())
	for _, id := range d.ActivityDays.GuestIDs() {
		ga := d.ActivityDays[id]
		field := FieldActivityDays + "." + id
		if !guests.HasGuest(id) {
			errs.Add(field, fmt.Sprintf("%s is not part of this booking", id))
			continue
		}
		if ga.ActivityID != "" {
			if _, ok := lookup.FindActivity(ga.ActivityID); !ok {
				errs.Add(field, fmt.Sprintf("activity %q is not available", ga.ActivityID))
			}
		}
		switch {
		case ga.Days < 0:
			errs.Add(field, "activity days cannot be negative")
		case ga.Days > limit:
			errs.Add(field, fmt.Sprintf("at most %d activity days for a %d-night stay", limit, d.TotalNights()))
		}
	}
	return errs
}

// ValidateGuests checks the party size and visit count.
func ValidateGuests(d Draft) validation.FieldErrors {
	errs := structErrors(guestFields{Adults: d.Adults, Children: d.Children, Infants: d.Infants})
	if !d.VisitCount.IsValid() {
		errs.Add(FieldVisitCount, "please tell us how often you have visited")
	}
	return errs
}

// ValidateContact checks the contact step.
func ValidateContact(c Contact) validation.FieldErrors {
	return structErrors(c)
}

func structErrors(s interface{}) validation.FieldErrors {
	var errs validation.FieldErrors
	err := getValidator().Struct(s)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("", err.Error())
		return errs
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), tagMessage(fe))
	}
	return errs
}

func tagMessage(fe validator.FieldError) string {
	if fe.Tag() == "min" {
		switch fe.Field() {
		case FieldFirstName:
			return "first name must be at least 2 characters"
		case FieldLastName:
			return "last name must be at least 2 characters"
		case FieldPhone:
			return "phone number must be at least 5 characters"
		case FieldAdults:
			return "at least one adult is required"
		}
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

func legErrors(errs validation.FieldErrors, arrivalField, departureField string) validation.FieldErrors {
	out := make(validation.FieldErrors, 0, len(errs))
	for _, e := range errs {
		field := e.Field
		switch field {
		case "arrival":
			field = arrivalField
		case "departure":
			field = departureField
		}
		out = append(out, validation.FieldError{Field: field, Message: e.Message})
	}
	return out
}
