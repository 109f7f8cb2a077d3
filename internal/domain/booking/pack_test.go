package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

func bridalPack() *Descriptor {
	svc := models.Service{
		Name:   "Bridal Package",
		IsPack: true,
		SubServices: []models.SubService{
			{Position: 0, Name: "Hair Styling", DurationMin: 60, StaffID: 1},
			{Position: 1, Name: "Makeup", DurationMin: 30, StaffID: 2, StartsAfterPrevious: true},
		},
	}
	catalog := NewCatalog([]models.Service{svc})
	d, _ := catalog.Resolve("Bridal Package")
	return d
}

func TestExpandPackSequential(t *testing.T) {
	// anchor 14:00: styling 14:00-15:00, makeup follows 15:00-15:30
	slots, err := ExpandPack(bridalPack(), 840)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, "Hair Styling", slots[0].Name)
	assert.Equal(t, 840, slots[0].StartMin)
	assert.Equal(t, 900, slots[0].EndMin())
	assert.Equal(t, uint(1), slots[0].StaffID)

	assert.Equal(t, "Makeup", slots[1].Name)
	assert.Equal(t, 900, slots[1].StartMin)
	assert.Equal(t, 930, slots[1].EndMin())
	assert.Equal(t, uint(2), slots[1].StaffID)
}

func TestExpandPackParallel(t *testing.T) {
	d := bridalPack()
	d.SubServices[1].StartsAfterPrevious = false

	slots, err := ExpandPack(d, 840)
	require.NoError(t, err)

	// both tracks start at the anchor
	assert.Equal(t, 840, slots[0].StartMin)
	assert.Equal(t, 840, slots[1].StartMin)
}

func TestExpandPackSharedGroupID(t *testing.T) {
	slots, err := ExpandPack(bridalPack(), 600)
	require.NoError(t, err)

	assert.NotEmpty(t, slots[0].PackID)
	assert.Equal(t, slots[0].PackID, slots[1].PackID)
	assert.Equal(t, 0, slots[0].Index)
	assert.Equal(t, 1, slots[1].Index)
	assert.Equal(t, 2, slots[0].Total)
	assert.Equal(t, "Bridal Package", slots[0].PackName)
}

func TestExpandPackRejectsFlatService(t *testing.T) {
	flat := &Descriptor{Service: models.Service{Name: "Haircut"}}
	_, err := ExpandPack(flat, 600)
	assert.ErrorIs(t, err, ErrNotAPack)
}

func TestExpandPackRejectsEmptyPack(t *testing.T) {
	empty := &Descriptor{Service: models.Service{Name: "Empty", IsPack: true}}
	_, err := ExpandPack(empty, 600)
	assert.ErrorIs(t, err, ErrEmptyPack)
}
