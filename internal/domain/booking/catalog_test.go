package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

func testCatalog() *Catalog {
	return NewCatalog([]models.Service{
		{ID: 1, Name: "Haircut", DurationMin: 30, Price: 25},
		{
			ID:     2,
			Name:   "Spa Day",
			IsPack: true,
			SubServices: []models.SubService{
				{Position: 1, Name: "Massage", DurationMin: 60, StaffID: 2},
				{Position: 0, Name: "Facial", DurationMin: 45, StaffID: 1},
			},
		},
	})
}

func TestResolveExactName(t *testing.T) {
	d, err := testCatalog().Resolve("Haircut")
	require.NoError(t, err)
	assert.Equal(t, 30, d.DurationMin)
	assert.Equal(t, 25.0, d.Price)
	assert.False(t, d.IsPack())
}

func TestResolveIsCaseSensitive(t *testing.T) {
	_, err := testCatalog().Resolve("haircut")
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = testCatalog().Resolve("Blowout")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestResolveOrdersSubServicesByPosition(t *testing.T) {
	d, err := testCatalog().Resolve("Spa Day")
	require.NoError(t, err)
	require.Len(t, d.SubServices, 2)
	assert.Equal(t, "Facial", d.SubServices[0].Name)
	assert.Equal(t, "Massage", d.SubServices[1].Name)
}

func TestPackDurationDefaultsToSumOfSubs(t *testing.T) {
	d, err := testCatalog().Resolve("Spa Day")
	require.NoError(t, err)
	assert.Equal(t, 105, d.DurationMin)
}

func TestPackExplicitDurationWins(t *testing.T) {
	catalog := NewCatalog([]models.Service{{
		Name:        "Express Pack",
		IsPack:      true,
		DurationMin: 90,
		SubServices: []models.SubService{
			{Position: 0, Name: "Step", DurationMin: 120, StaffID: 1},
		},
	}})

	d, err := catalog.Resolve("Express Pack")
	require.NoError(t, err)
	assert.Equal(t, 90, d.DurationMin)
}

func TestEffectiveDuration(t *testing.T) {
	d, err := testCatalog().Resolve("Haircut")
	require.NoError(t, err)

	overrides := []models.DurationOverride{
		{StaffID: 7, ServiceID: 1, DurationMin: 45},
		{StaffID: 7, ServiceID: 2, DurationMin: 200},
	}

	staff := uint(7)
	assert.Equal(t, 45, EffectiveDuration(d, overrides, &staff))

	other := uint(8)
	assert.Equal(t, 30, EffectiveDuration(d, overrides, &other))
	assert.Equal(t, 30, EffectiveDuration(d, overrides, nil))
}
