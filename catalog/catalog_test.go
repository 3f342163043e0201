package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Lookups(t *testing.T) {
	c := Default()

	acc, ok := c.FindAccommodation("ocean-bungalow")
	require.True(t, ok)
	assert.Equal(t, int64(490), acc.PricePerNight)

	act, ok := c.FindActivity("unlimited-dive")
	require.True(t, ok)
	assert.Equal(t, int64(295), act.PricePerDay)

	none, ok := c.FindActivity("no-activity")
	require.True(t, ok)
	assert.Zero(t, none.PricePerDay)

	_, ok = c.FindCabin("master-stateroom")
	assert.True(t, ok)

	assert.Equal(t, int64(900), c.FlightPrice())
}

func TestDefault_UnknownIDs(t *testing.T) {
	c := Default()

	_, ok := c.FindAccommodation("penthouse")
	assert.False(t, ok)
	_, ok = c.FindCabin("")
	assert.False(t, ok)
	_, ok = c.FindActivity("ocean-bungalow")
	assert.False(t, ok)
}

func TestCatalog_ListsAreCopies(t *testing.T) {
	c := Default()

	list := c.Accommodations()
	list[0].PricePerNight = 1

	acc, ok := c.FindAccommodation(list[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, int64(1), acc.PricePerNight)
}
