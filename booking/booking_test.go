package booking

import (
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dive-booking/catalog"
	"dive-booking/schedule"
	"dive-booking/validation"
)

// 2026-10-18 is a Sunday.
var today = civil.Date{Year: 2026, Month: time.October, Day: 18}

func day(offset int) *civil.Date {
	d := today.AddDays(offset)
	return &d
}

func resortDraft() Draft {
	d := NewDraft()
	d.TripType = TripResortOnly
	d.ResortArrivalDate = day(1)   // Monday
	d.ResortDepartureDate = day(8) // Monday
	d.AccommodationID = "ocean-bungalow"
	d.ActivityID = "unlimited-dive"
	d.ActivityDays = ActivityAllocation{"adult-1": {Days: 6}, "adult-2": {Days: 4}}
	d.Contact = Contact{FirstName: "Ana", LastName: "Reyes", Email: "ana@example.com", Phone: "+63 912 345"}
	return d
}

func TestGuestIDs(t *testing.T) {
	g := GuestCount{Adults: 2, Children: 1, Infants: 3}
	assert.Equal(t, []string{"adult-1", "adult-2", "child-1"}, g.GuestIDs())
	assert.Equal(t, 3, g.Billable())

	assert.True(t, g.HasGuest("adult-2"))
	assert.True(t, g.HasGuest("child-1"))
	assert.False(t, g.HasGuest("adult-3"))
	assert.False(t, g.HasGuest("child-0"))
	assert.False(t, g.HasGuest("infant-1"))
	assert.False(t, g.HasGuest("adult-x"))

	for _, alias := range []string{"adult-01", "adult-+2", "adult- 1", "child-01", "adult-1 "} {
		assert.False(t, g.HasGuest(alias), alias)
	}
}

func TestActivityAllocation_PruneDropsAliases(t *testing.T) {
	a := ActivityAllocation{
		"adult-1":  {Days: 2},
		"adult-01": {Days: 6},
		"adult-+2": {Days: 6},
	}
	assert.Equal(t, ActivityAllocation{"adult-1": {Days: 2}}, a.Prune(GuestCount{Adults: 2}))
}

func TestDraft_FillDefaultAllocation(t *testing.T) {
	d := resortDraft()
	d.ActivityDays = nil
	require.True(t, d.FillDefaultAllocation())
	assert.Equal(t, ActivityAllocation{"adult-1": {Days: 6}, "adult-2": {Days: 6}}, d.ActivityDays)

	d.ActivityDays = ActivityAllocation{"adult-1": {Days: 1}}
	assert.False(t, d.FillDefaultAllocation(), "an existing allocation is kept")
	assert.Equal(t, ActivityAllocation{"adult-1": {Days: 1}}, d.ActivityDays)

	d = resortDraft()
	d.ActivityDays, d.ActivityID = nil, ""
	assert.False(t, d.FillDefaultAllocation())
	assert.Nil(t, d.ActivityDays)

	d = NewDraft()
	d.TripType = TripPelagianOnly
	d.ActivityID = "unlimited-dive"
	assert.False(t, d.FillDefaultAllocation(), "no activities aboard")
}

func TestMaxActivityDays(t *testing.T) {
	assert.Equal(t, 0, MaxActivityDays(0))
	assert.Equal(t, 0, MaxActivityDays(1))
	assert.Equal(t, 6, MaxActivityDays(7))
}

func TestActivityAllocation_PruneKeepsRemainingGuests(t *testing.T) {
	a := ActivityAllocation{
		"adult-1": {Days: 3},
		"adult-2": {ActivityID: "snorkeling", Days: 2},
		"child-1": {Days: 1},
	}
	pruned := a.Prune(GuestCount{Adults: 2})

	assert.Equal(t, ActivityAllocation{
		"adult-1": {Days: 3},
		"adult-2": {ActivityID: "snorkeling", Days: 2},
	}, pruned)
	assert.Len(t, a, 3, "original untouched")
}

func TestDefaultAllocation(t *testing.T) {
	a := DefaultAllocation(GuestCount{Adults: 1, Children: 1, Infants: 1}, 7)
	assert.Equal(t, ActivityAllocation{"adult-1": {Days: 6}, "child-1": {Days: 6}}, a)
	assert.Equal(t, 12, a.TotalDays())
}

func TestGuestActivity_UnmarshalAcceptsBareDays(t *testing.T) {
	var a ActivityAllocation
	require.NoError(t, json.Unmarshal([]byte(`{"adult-1":4,"adult-2":{"activityId":"snorkeling","days":2}}`), &a))
	assert.Equal(t, GuestActivity{Days: 4}, a["adult-1"])
	assert.Equal(t, GuestActivity{ActivityID: "snorkeling", Days: 2}, a["adult-2"])

	assert.Error(t, json.Unmarshal([]byte(`{"adult-1":"four"}`), &a))
}

func TestDraft_JSONDates(t *testing.T) {
	raw := `{"tripType":"pelagian-only","pelagianArrivalDate":"2026-10-19","pelagianDepartureDate":"2026-10-26","pelagianCabinId":"master-stateroom","adults":2}`
	var d Draft
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	require.NotNil(t, d.LiveaboardArrivalDate)
	assert.Equal(t, *day(1), *d.LiveaboardArrivalDate)
	assert.Equal(t, 7, d.LiveaboardNights())
	assert.Equal(t, 0, d.ResortNights())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"pelagianDepartureDate":"2026-10-26"`)
}

func TestDraft_NormalizeMovesLegacyPair(t *testing.T) {
	d := Draft{TripType: TripResortOnly, ArrivalDate: day(1), DepartureDate: day(5), Contact: Contact{FirstName: "  Ana "}}
	d.Normalize()
	require.NotNil(t, d.ResortArrivalDate)
	assert.Equal(t, *day(1), *d.ResortArrivalDate)
	assert.Equal(t, *day(5), *d.ResortDepartureDate)
	assert.Equal(t, "Ana", d.FirstName)

	d = Draft{TripType: TripPelagianOnly, ArrivalDate: day(1), DepartureDate: day(8)}
	d.Normalize()
	assert.Equal(t, *day(8), *d.LiveaboardDepartureDate)
	assert.Nil(t, d.ResortArrivalDate)

	d = Draft{TripType: TripCombinationStay, ArrivalDate: day(1), DepartureDate: day(8)}
	d.Normalize()
	assert.Nil(t, d.ResortArrivalDate)
	assert.Nil(t, d.LiveaboardArrivalDate)
}

func TestDraft_CloneIsIndependent(t *testing.T) {
	d := resortDraft()
	c := d.Clone()
	*c.ResortArrivalDate = today
	c.ActivityDays["adult-1"] = GuestActivity{Days: 1}

	assert.Equal(t, *day(1), *d.ResortArrivalDate)
	assert.Equal(t, 6, d.ActivityDays["adult-1"].Days)
}

func TestDraft_ResetItinerary(t *testing.T) {
	d := resortDraft()
	d.ResetItinerary()
	assert.Nil(t, d.ResortArrivalDate)
	assert.Empty(t, d.AccommodationID)
	assert.Empty(t, d.ActivityID)
	assert.Nil(t, d.ActivityDays)
	assert.Equal(t, 2, d.Adults)
	assert.Equal(t, "Ana", d.FirstName)
}

func TestConfiguration_Variants(t *testing.T) {
	cfg, err := resortDraft().Configuration()
	require.NoError(t, err)
	assert.IsType(t, ResortOnly{}, cfg.Itinerary)
	_, hasCabin := cfg.Itinerary.Liveaboard()
	assert.False(t, hasCabin)
	assert.Equal(t, 7, cfg.TotalNights())

	d := NewDraft()
	d.TripType = TripCombinationStay
	d.CombinationOrder = PelagianFirst
	d.LiveaboardArrivalDate, d.LiveaboardDepartureDate, d.CabinID = day(1), day(8), "deluxe-stateroom"
	d.ResortArrivalDate, d.ResortDepartureDate, d.AccommodationID = day(8), day(12), "palm-bungalow"
	cfg, err = d.Configuration()
	require.NoError(t, err)
	comb, ok := cfg.Itinerary.(Combination)
	require.True(t, ok)
	assert.Equal(t, PelagianFirst, comb.Order)
	assert.Equal(t, 11, cfg.TotalNights())
}

func TestConfiguration_MissingFields(t *testing.T) {
	d := NewDraft()
	d.TripType = TripCombinationStay
	_, err := d.Configuration()
	require.Error(t, err)

	var fe validation.FieldErrors
	require.ErrorAs(t, err, &fe)
	for _, field := range []string{FieldCombinationOrder, FieldResortArrival, FieldAccommodation, FieldPelagianArrival, FieldCabin} {
		assert.True(t, fe.Has(field), field)
	}

	_, err = NewDraft().Configuration()
	require.ErrorAs(t, err, &fe)
	assert.True(t, fe.Has(FieldTripType))
}

func TestConfiguration_LiveaboardDropsActivities(t *testing.T) {
	d := NewDraft()
	d.TripType = TripPelagianOnly
	d.LiveaboardArrivalDate, d.LiveaboardDepartureDate, d.CabinID = day(1), day(8), "ocean-view-cabin"
	d.ActivityID = "snorkeling"
	d.ActivityDays = ActivityAllocation{"adult-1": {Days: 3}}

	cfg, err := d.Configuration()
	require.NoError(t, err)
	assert.Empty(t, cfg.ActivityID)
	assert.Nil(t, cfg.Activities)
	assert.Nil(t, cfg.GuestPackages())
}

func TestConfiguration_GuestPackages(t *testing.T) {
	d := resortDraft()
	d.Children = 1
	d.ActivityDays["adult-2"] = GuestActivity{ActivityID: "snorkeling", Days: 4}
	d.ActivityDays["child-1"] = GuestActivity{Days: 0}

	cfg, err := d.Configuration()
	require.NoError(t, err)
	assert.Equal(t, []GuestPackage{
		{GuestID: "adult-1", ActivityID: "unlimited-dive", Days: 6},
		{GuestID: "adult-2", ActivityID: "snorkeling", Days: 4},
	}, cfg.GuestPackages())
}

func TestConfiguration_DraftRoundTrip(t *testing.T) {
	d := resortDraft()
	cfg, err := d.Configuration()
	require.NoError(t, err)

	back := cfg.Draft()
	assert.Equal(t, d, back)
}

func TestValidate_CompleteDrafts(t *testing.T) {
	cat := catalog.Default()
	rules := schedule.FixedRules(today)

	assert.Empty(t, Validate(resortDraft(), cat, rules))

	d := resortDraft()
	d.ResetItinerary()
	d.TripType = TripPelagianOnly
	d.LiveaboardArrivalDate, d.LiveaboardDepartureDate, d.CabinID = day(1), day(8), "master-stateroom"
	assert.Empty(t, Validate(d, cat, rules))
}

func TestValidate_ReportsEverything(t *testing.T) {
	d := Draft{
		TripType:            TripCombinationStay,
		CombinationOrder:    ResortFirst,
		ResortArrivalDate:   day(2), // Tuesday
		ResortDepartureDate: day(1),
		AccommodationID:     "tree-house",
		CabinID:             "",
		Adults:              0,
		Children:            -1,
		ActivityID:          "",
		Contact:             Contact{FirstName: "A", LastName: "", Email: "not-an-email", Phone: "123"},
	}
	errs := Validate(d, catalog.Default(), schedule.FixedRules(today))
	byField := errs.ByField()

	for _, field := range []string{
		FieldResortArrival, FieldAccommodation, FieldPelagianArrival, FieldPelagianDeparture,
		FieldCabin, FieldActivity, FieldAdults, FieldChildren, FieldVisitCount,
		FieldFirstName, FieldLastName, FieldEmail, FieldPhone,
	} {
		assert.Contains(t, byField, field)
	}
	assert.Equal(t, "Resort arrivals are only possible on Mondays and Fridays", byField[FieldResortArrival])
	assert.Equal(t, `accommodation "tree-house" is not available`, byField[FieldAccommodation])
	assert.Equal(t, "first name must be at least 2 characters", byField[FieldFirstName])
	assert.Equal(t, "please enter a valid email address", byField[FieldEmail])
	assert.Equal(t, "at least one adult is required", byField[FieldAdults])
	assert.NotContains(t, byField, FieldSpecialRequests)
}

func TestValidate_MissingTripType(t *testing.T) {
	d := resortDraft()
	d.TripType = ""
	errs := Validate(d, catalog.Default(), schedule.FixedRules(today))
	assert.Equal(t, []string{FieldTripType}, fieldNames(errs))

	d.TripType = "cruise"
	errs = Validate(d, catalog.Default(), schedule.FixedRules(today))
	assert.True(t, errs.Has(FieldTripType))
}

func TestValidateActivities(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name   string
		alloc  ActivityAllocation
		fields []string
	}{
		{"at cap", ActivityAllocation{"adult-1": {Days: 6}}, nil},
		{"over cap", ActivityAllocation{"adult-1": {Days: 7}}, []string{"activityDays.adult-1"}},
		{"negative", ActivityAllocation{"adult-2": {Days: -1}}, []string{"activityDays.adult-2"}},
		{"unknown guest", ActivityAllocation{"child-1": {Days: 1}}, []string{"activityDays.child-1"}},
		{"unknown activity", ActivityAllocation{"adult-1": {ActivityID: "kitesurf", Days: 1}}, []string{"activityDays.adult-1"}},
		{"zero-padded alias", ActivityAllocation{"adult-1": {Days: 6}, "adult-01": {Days: 6}}, []string{"activityDays.adult-01"}},
		{"signed alias", ActivityAllocation{"adult-+2": {Days: 6}}, []string{"activityDays.adult-+2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := resortDraft()
			d.ActivityDays = tt.alloc
			assert.Equal(t, tt.fields, fieldNames(ValidateActivities(d, cat)))
		})
	}
}

func TestValidateActivities_RequiresPackage(t *testing.T) {
	d := resortDraft()
	d.ActivityID = "no-activity"
	assert.Empty(t, ValidateActivities(d, catalog.Default()))

	d.ActivityID = ""
	assert.True(t, ValidateActivities(d, catalog.Default()).Has(FieldActivity))
}

func TestValidateGuests_PartySizeCap(t *testing.T) {
	d := resortDraft()
	d.Adults = MaxPartySize
	assert.Empty(t, ValidateGuests(d))

	d.Adults = MaxPartySize + 1
	d.Children = MaxPartySize + 1
	byField := ValidateGuests(d).ByField()
	assert.Equal(t, "adults must be at most 50", byField[FieldAdults])
	assert.Equal(t, "children must be at most 50", byField[FieldChildren])

	d = resortDraft()
	d.Adults = 0
	assert.Equal(t, "at least one adult is required", ValidateGuests(d).ByField()[FieldAdults])
}

func TestValidateContact(t *testing.T) {
	ok := Contact{FirstName: "Jo", LastName: "Li", Email: "jo@li.dev", Phone: "12345"}
	assert.Empty(t, ValidateContact(ok))

	bad := ok
	bad.Email = ""
	assert.Equal(t, "email is required", ValidateContact(bad).ByField()[FieldEmail])

	bad = ok
	bad.Phone = "1234"
	assert.Equal(t, []string{FieldPhone}, fieldNames(ValidateContact(bad)))
}

func fieldNames(errs validation.FieldErrors) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}
