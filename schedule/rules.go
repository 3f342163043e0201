// Package schedule encodes the fixed weekly flight and cruise schedule that
// constrains arrival and departure dates for each stay leg.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"dive-booking/validation"
)

// LegType identifies which schedule a stay leg follows.
type LegType string

const (
	LegResort     LegType = "resort"
	LegLiveaboard LegType = "liveaboard"
)

// DefaultStayDays is the offset SuggestDeparture starts scanning from.
const DefaultStayDays = 7

var allowedWeekdays = map[LegType][]time.Weekday{
	LegResort:     {time.Monday, time.Friday},
	LegLiveaboard: {time.Monday},
}

// ParseLegType accepts "resort", "liveaboard" and the yacht's name "pelagian".
func ParseLegType(s string) (LegType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(LegResort):
		return LegResort, nil
	case string(LegLiveaboard), "pelagian":
		return LegLiveaboard, nil
	}
	return "", fmt.Errorf("unknown leg type %q", s)
}

// AllowedWeekdays returns the weekdays a leg may start or end on.
func AllowedWeekdays(leg LegType) []time.Weekday {
	return append([]time.Weekday(nil), allowedWeekdays[leg]...)
}

// Weekday returns the day of the week of d.
func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// OnSchedule reports whether d falls on one of the leg's allowed weekdays.
func OnSchedule(leg LegType, d civil.Date) bool {
	wd := Weekday(d)
	for _, allowed := range allowedWeekdays[leg] {
		if wd == allowed {
			return true
		}
	}
	return false
}

// Nights returns the whole days between arrival and departure, floored at zero.
func Nights(arrival, departure civil.Date) int {
	n := departure.DaysSince(arrival)
	if n < 0 {
		return 0
	}
	return n
}

// Rules evaluates schedule predicates against a calendar "today".
type Rules struct {
	// Today returns the current local calendar day. Nil means the process's local zone.
	Today func() civil.Date
}

// NewRules returns Rules whose notion of today follows loc.
func NewRules(loc *time.Location) Rules {
	if loc == nil {
		loc = time.Local
	}
	return Rules{Today: func() civil.Date { return civil.DateOf(time.Now().In(loc)) }}
}

// FixedRules returns Rules pinned to a given day.
func FixedRules(today civil.Date) Rules {
	return Rules{Today: func() civil.Date { return today }}
}

func (r Rules) today() civil.Date {
	if r.Today == nil {
		return civil.DateOf(time.Now())
	}
	return r.Today()
}

// IsValidArrival reports whether d is today or later and on the leg's schedule.
func (r Rules) IsValidArrival(leg LegType, d civil.Date) bool {
	if !d.IsValid() || d.Before(r.today()) {
		return false
	}
	return OnSchedule(leg, d)
}

// IsValidDeparture reports whether d is on the leg's schedule and strictly after arrival.
func (r Rules) IsValidDeparture(leg LegType, d, arrival civil.Date) bool {
	if !d.IsValid() || !arrival.IsValid() {
		return false
	}
	return OnSchedule(leg, d) && d.After(arrival)
}

// SuggestDeparture returns arrival plus DefaultStayDays, rolled forward to the
// first date on the leg's schedule. For a Monday liveaboard arrival that is the
// following Monday.
func (r Rules) SuggestDeparture(leg LegType, arrival civil.Date) civil.Date {
	d := arrival.AddDays(DefaultStayDays)
	for i := 0; i < 7 && !OnSchedule(leg, d); i++ {
		d = d.AddDays(1)
	}
	return d
}

// ValidateLeg checks a leg's dates and returns errors keyed "arrival" and "departure".
func (r Rules) ValidateLeg(leg LegType, arrival, departure *civil.Date) validation.FieldErrors {
	var errs validation.FieldErrors

	switch {
	case arrival == nil:
		errs.Add("arrival", "arrival date is required")
	case !arrival.IsValid():
		errs.Add("arrival", "arrival date is not a calendar date")
	case arrival.Before(r.today()):
		errs.Add("arrival", "arrival date is in the past")
	case !OnSchedule(leg, *arrival):
		errs.Add("arrival", scheduleMessage(leg, "arrivals"))
	}

	switch {
	case departure == nil:
		errs.Add("departure", "departure date is required")
	case !departure.IsValid():
		errs.Add("departure", "departure date is not a calendar date")
	case !OnSchedule(leg, *departure):
		errs.Add("departure", scheduleMessage(leg, "departures"))
	case arrival != nil && arrival.IsValid() && !departure.After(*arrival):
		errs.Add("departure", "departure must be after arrival")
	}

	return errs
}

func scheduleMessage(leg LegType, what string) string {
	days := allowedWeekdays[leg]
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String() + "s"
	}
	subject := "Resort"
	if leg == LegLiveaboard {
		subject = "Liveaboard"
	}
	return fmt.Sprintf("%s %s are only possible on %s", subject, what, strings.Join(names, " and "))
}
