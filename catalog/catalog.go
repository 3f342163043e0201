// Package catalog holds the read-only reference data the booking wizard sells:
// resort accommodation, liveaboard cabins, activity packages and the flight fare.
package catalog

// FlightPrice is the per-person round-trip charter fare, charged once per trip.
const FlightPrice int64 = 900

// Accommodation is a resort room option priced per person per night.
type Accommodation struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PricePerNight int64    `json:"pricePerNight"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
}

// Cabin is a liveaboard cabin option priced per person per night.
type Cabin struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PricePerNight int64    `json:"pricePerNight"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
}

// Activity is a resort activity package priced per person per day. A zero
// price stands for "no activity".
type Activity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PricePerDay int64    `json:"pricePerDay"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// Lookup resolves catalog ids. Every method reports absence with ok=false.
type Lookup interface {
	FindAccommodation(id string) (Accommodation, bool)
	FindCabin(id string) (Cabin, bool)
	FindActivity(id string) (Activity, bool)
}

// Catalog is an immutable, in-memory Lookup.
type Catalog struct {
	accommodations []Accommodation
	cabins         []Cabin
	activities     []Activity
	flightPrice    int64
}

// New builds a catalog from the given tables. The slices are copied.
func New(accommodations []Accommodation, cabins []Cabin, activities []Activity, flightPrice int64) *Catalog {
	return &Catalog{
		accommodations: append([]Accommodation(nil), accommodations...),
		cabins:         append([]Cabin(nil), cabins...),
		activities:     append([]Activity(nil), activities...),
		flightPrice:    flightPrice,
	}
}

// Default returns the catalog currently on sale.
func Default() *Catalog {
	return New(defaultAccommodations, defaultCabins, defaultActivities, FlightPrice)
}

func (c *Catalog) FindAccommodation(id string) (Accommodation, bool) {
	for _, a := range c.accommodations {
		if a.ID == id {
			return a, true
		}
	}
	return Accommodation{}, false
}

func (c *Catalog) FindCabin(id string) (Cabin, bool) {
	for _, cb := range c.cabins {
		if cb.ID == id {
			return cb, true
		}
	}
	return Cabin{}, false
}

func (c *Catalog) FindActivity(id string) (Activity, bool) {
	for _, a := range c.activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// FlightPrice returns the per-person flight fare in whole currency units.
func (c *Catalog) FlightPrice() int64 { return c.flightPrice }

func (c *Catalog) Accommodations() []Accommodation {
	return append([]Accommodation(nil), c.accommodations...)
}

func (c *Catalog) Cabins() []Cabin { return append([]Cabin(nil), c.cabins...) }

func (c *Catalog) Activities() []Activity { return append([]Activity(nil), c.activities...) }
