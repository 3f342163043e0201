package catalog

var defaultAccommodations = []Accommodation{
	{
		ID:            "ocean-bungalow",
		Name:          "Ocean Bungalow",
		PricePerNight: 490,
		Description:   "Spacious beachfront accommodation with ocean views and easy water access.",
		Features:      []string{"Beachfront", "King or Twin Beds", "Air Conditioned"},
	},
	{
		ID:            "palm-bungalow",
		Name:          "Palm Bungalow",
		PricePerNight: 420,
		Description:   "Secluded accommodation set among the palms, steps from the water.",
		Features:      []string{"Garden View", "King or Twin Beds", "Air Conditioned"},
	},
	{
		ID:            "one-bedroom-villa",
		Name:          "One-Bedroom Villa",
		PricePerNight: 590,
		Description:   "Private villa with pool, expansive deck and direct beach access.",
		Features:      []string{"Beachfront", "Private Pool", "Spacious Deck"},
	},
	{
		ID:            "two-bedroom-villa",
		Name:          "Two-Bedroom Villa",
		PricePerNight: 690,
		Description:   "Two master suites, private pool and expansive living areas.",
		Features:      []string{"Beachfront", "Private Pool", "Two Bedrooms"},
	},
}

var defaultCabins = []Cabin{
	{
		ID:            "master-stateroom",
		Name:          "Master Stateroom",
		PricePerNight: 780,
		Description:   "Full-beam stateroom on the main deck with panoramic windows.",
		Features:      []string{"Full Beam", "King Bed", "Panoramic Windows"},
	},
	{
		ID:            "deluxe-stateroom",
		Name:          "Deluxe Stateroom",
		PricePerNight: 690,
		Description:   "Upper-deck stateroom with private balcony access.",
		Features:      []string{"Upper Deck", "Queen or Twin Beds", "Balcony Access"},
	},
	{
		ID:            "ocean-view-cabin",
		Name:          "Ocean View Cabin",
		PricePerNight: 590,
		Description:   "Lower-deck cabin with portholes and en-suite bathroom.",
		Features:      []string{"Lower Deck", "Twin Beds", "En-suite"},
	},
}

var defaultActivities = []Activity{
	{
		ID:          "unlimited-dive",
		Name:        "Unlimited Dive Package",
		PricePerDay: 295,
		Description: "Unlimited shore diving and up to three guided boat dives per day, equipment and nitrox included.",
		Features:    []string{"Unlimited Shore Diving", "Three Boat Dives Daily", "Equipment Included", "Nitrox Included"},
	},
	{
		ID:          "snorkeling",
		Name:        "Snorkeling Package",
		PricePerDay: 205,
		Description: "Unlimited shore snorkeling plus two guided boat snorkeling excursions daily.",
		Features:    []string{"Unlimited Shore Snorkeling", "Two Guided Boat Tours Daily", "Equipment Included"},
	},
	{
		ID:          "spa-relaxation",
		Name:        "Spa & Relaxation Package",
		PricePerDay: 150,
		Description: "Daily spa treatments, morning yoga sessions and healthy refreshments.",
		Features:    []string{"Daily Treatments", "Morning Yoga", "Wellness Focus"},
	},
	{
		ID:          "no-activity",
		Name:        "No Activity Package",
		PricePerDay: 0,
		Description: "No pre-selected package; individual activities can be arranged at the resort.",
		Features:    []string{},
	},
}
