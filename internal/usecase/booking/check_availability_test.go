package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

func availabilityInput(clock string, staffID *uint) CheckAvailabilityInput {
	return CheckAvailabilityInput{
		SalonID:     1,
		ServiceName: "Haircut",
		Date:        testDay,
		Time:        clock,
		StaffID:     staffID,
	}
}

func TestCheckAvailabilityOpenSlot(t *testing.T) {
	repo := salonFixture()
	uc := NewCheckAvailability(repo)

	result, err := uc.Execute(context.Background(), availabilityInput("10:00", uintPtr(1)))
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Empty(t, result.Reason)
}

func TestCheckAvailabilityRejectionIsAResult(t *testing.T) {
	repo := salonFixture()
	bookUC := NewBookAppointment(repo, NopLocker{}, nil)
	uc := NewCheckAvailability(repo)

	_, err := bookUC.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), availabilityInput("10:15", uintPtr(1)))
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, domain.ReasonOverlap, result.Reason)
}

func TestCheckAvailabilityBusinessClosedWins(t *testing.T) {
	repo := salonFixture()
	// close Tuesdays entirely; the staff schedule still says open
	for i := range repo.hours {
		if repo.hours[i].Weekday == int(time.Tuesday) {
			repo.hours[i].Enabled = false
		}
	}

	uc := NewCheckAvailability(repo)
	result, err := uc.Execute(context.Background(), availabilityInput("10:00", uintPtr(1)))
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, domain.ReasonBusinessClosed, result.Reason)
}

func TestCheckAvailabilityServiceDayOff(t *testing.T) {
	repo := salonFixture()
	// Haircut only on Saturdays
	repo.services[0].AvailableDays = models.NewWeekdaySet(time.Saturday)

	uc := NewCheckAvailability(repo)
	result, err := uc.Execute(context.Background(), availabilityInput("10:00", uintPtr(1)))
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, domain.ReasonServiceDayOff, result.Reason)
}

func TestCheckAvailabilityOutsideStaffHours(t *testing.T) {
	repo := salonFixture()
	// staff 1 works afternoons only on Tuesdays
	for i := range repo.staffHours {
		if repo.staffHours[i].StaffID == 1 && repo.staffHours[i].Weekday == int(time.Tuesday) {
			repo.staffHours[i].StartTime = "13:00"
		}
	}

	uc := NewCheckAvailability(repo)
	result, err := uc.Execute(context.Background(), availabilityInput("10:00", uintPtr(1)))
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, domain.ReasonOutsideStaffHours, result.Reason)

	// salon-level check without a staff member still passes
	result, err = uc.Execute(context.Background(), availabilityInput("10:00", nil))
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestFreeSlotsWalksTheDay(t *testing.T) {
	repo := salonFixture()
	bookUC := NewBookAppointment(repo, NopLocker{}, nil)
	uc := NewFreeSlots(repo)

	// occupy 10:00-11:00 for staff 1
	_, err := bookUC.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)

	slots, err := uc.Execute(context.Background(), FreeSlotsInput{
		SalonID:     1,
		ServiceName: "Haircut",
		StaffID:     uintPtr(1),
		Date:        testDay,
	})
	require.NoError(t, err)

	// 09:00-18:00 in 60-minute steps minus the taken hour
	require.Len(t, slots, 8)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "10:00", slots[0].End)
	assert.Equal(t, "11:00", slots[1].Start)
	for _, s := range slots {
		assert.NotEqual(t, "10:00", s.Start)
	}
}

func TestFreeSlotsClosedDayIsEmpty(t *testing.T) {
	repo := salonFixture()
	for i := range repo.hours {
		repo.hours[i].Enabled = false
	}

	uc := NewFreeSlots(repo)
	slots, err := uc.Execute(context.Background(), FreeSlotsInput{
		SalonID:     1,
		ServiceName: "Haircut",
		Date:        testDay,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFreeSlotsIntersectsStaffWindow(t *testing.T) {
	repo := salonFixture()
	for i := range repo.staffHours {
		if repo.staffHours[i].StaffID == 1 {
			repo.staffHours[i].StartTime = "14:00"
			repo.staffHours[i].EndTime = "16:00"
		}
	}

	uc := NewFreeSlots(repo)
	slots, err := uc.Execute(context.Background(), FreeSlotsInput{
		SalonID:     1,
		ServiceName: "Haircut",
		StaffID:     uintPtr(1),
		Date:        testDay,
	})
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, "14:00", slots[0].Start)
	assert.Equal(t, "15:00", slots[1].Start)
}
