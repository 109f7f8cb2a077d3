package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

// packFixture adds a two-step pack to the salon: styling by staff 1,
// then makeup by staff 2 immediately after.
func packFixture() *fakeRepo {
	repo := salonFixture()
	repo.services = append(repo.services, models.Service{
		ID: 3, SalonID: 1, Name: "Bridal Package", IsPack: true, Price: 150, Active: true,
		SubServices: []models.SubService{
			{Position: 0, Name: "Hair Styling", DurationMin: 60, StaffID: 1},
			{Position: 1, Name: "Makeup", DurationMin: 30, StaffID: 2, StartsAfterPrevious: true},
		},
	})
	return repo
}

func packInput(clock string) BookPackInput {
	return BookPackInput{
		SalonID:     1,
		ServiceName: "Bridal Package",
		Date:        testDay,
		Time:        clock,
		Customer: domain.CustomerFields{
			FullName: "Daniela Ruiz",
			Phone:    "+5215599887766",
		},
	}
}

func TestBookPackSequentialChain(t *testing.T) {
	repo := packFixture()
	uc := NewBookPack(repo, NopLocker{}, nil)

	result, err := uc.Execute(context.Background(), packInput("14:00"))
	require.NoError(t, err)
	require.Len(t, result.Appointments, 2)
	assert.NotEmpty(t, result.PackID)

	styling := result.Appointments[0]
	makeup := result.Appointments[1]

	assert.Equal(t, "Hair Styling", styling.ServiceName)
	assert.Equal(t, "14:00", styling.StartClock)
	assert.Equal(t, 60, styling.DurationMin)

	assert.Equal(t, "Makeup", makeup.ServiceName)
	assert.Equal(t, "15:00", makeup.StartClock)
	assert.Equal(t, 30, makeup.DurationMin)

	// both rows carry the same grouping id and ordered indexes
	require.NotNil(t, styling.PackID)
	require.NotNil(t, makeup.PackID)
	assert.Equal(t, *styling.PackID, *makeup.PackID)
	assert.Equal(t, result.PackID, *styling.PackID)
	assert.Equal(t, 0, styling.PackIndex)
	assert.Equal(t, 1, makeup.PackIndex)
	assert.Equal(t, 2, styling.PackSize)
	assert.Equal(t, "Bridal Package", styling.PackName)
}

func TestBookPackAtomicRejection(t *testing.T) {
	repo := packFixture()
	bookUC := NewBookAppointment(repo, NopLocker{}, nil)
	packUC := NewBookPack(repo, NopLocker{}, nil)

	// staff 2 is busy 15:00-16:00, which collides with the makeup step
	_, err := bookUC.Execute(context.Background(), bookInput("Haircut", "15:00", uintPtr(2)))
	require.NoError(t, err)

	_, err = packUC.Execute(context.Background(), packInput("14:00"))
	require.Error(t, err)

	var partial *domain.PackPartialFailureError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.SubIndex)
	assert.Equal(t, "Makeup", partial.SubName)
	assert.True(t, domain.IsConflict(partial.Err))

	// the styling step must not have been persisted either
	assert.Len(t, repo.appointments, 1)
}

func TestBookPackParallelStepsShareClient(t *testing.T) {
	repo := packFixture()
	// makeup runs on a parallel track, staff 2 alongside staff 1
	repo.services[2].SubServices[1].StartsAfterPrevious = false

	uc := NewBookPack(repo, NopLocker{}, nil)

	result, err := uc.Execute(context.Background(), packInput("14:00"))
	require.NoError(t, err)
	assert.Equal(t, "14:00", result.Appointments[0].StartClock)
	assert.Equal(t, "14:00", result.Appointments[1].StartClock)
}

func TestBookPackParallelSameStaffConflicts(t *testing.T) {
	repo := packFixture()
	// both parallel steps demand staff 1 at the anchor: impossible
	repo.services[2].SubServices[1].StartsAfterPrevious = false
	repo.services[2].SubServices[1].StaffID = 1

	uc := NewBookPack(repo, NopLocker{}, nil)

	_, err := uc.Execute(context.Background(), packInput("14:00"))
	var partial *domain.PackPartialFailureError
	require.ErrorAs(t, err, &partial)
	assert.Len(t, repo.appointments, 0)
}

func TestBookPackRejectsFlatService(t *testing.T) {
	repo := packFixture()
	uc := NewBookPack(repo, NopLocker{}, nil)

	in := packInput("14:00")
	in.ServiceName = "Haircut"
	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotAPack)
}

func TestBookPackStepOutsideStaffHours(t *testing.T) {
	repo := packFixture()
	uc := NewBookPack(repo, NopLocker{}, nil)

	// styling 17:30-18:30 spills past closing on the very first step
	_, err := uc.Execute(context.Background(), packInput("17:30"))
	var partial *domain.PackPartialFailureError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 0, partial.SubIndex)
	assert.Len(t, repo.appointments, 0)
}
