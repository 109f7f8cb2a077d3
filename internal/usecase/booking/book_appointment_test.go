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

const testDay = "2027-06-15" // a Tuesday

func uintPtr(v uint) *uint { return &v }

// salonFixture is a salon open 09:00-18:00 every day with two staff
// members on the same schedule.
func salonFixture() *fakeRepo {
	repo := newFakeRepo()

	repo.salons = []models.Salon{{
		ID:       1,
		Name:     "Luna Beauty Studio",
		Slug:     "luna-beauty",
		Timezone: "UTC",
	}}

	for wd := 0; wd < 7; wd++ {
		repo.hours = append(repo.hours, models.BusinessHours{
			SalonID: 1, Weekday: wd, Enabled: true,
			StartTime: "09:00", EndTime: "18:00",
		})
		for _, staffID := range []uint{1, 2} {
			repo.staffHours = append(repo.staffHours, models.StaffWorkingHours{
				StaffID: staffID, Weekday: wd, Enabled: true,
				StartTime: "09:00", EndTime: "18:00",
			})
		}
	}

	repo.staff = []models.StaffMember{
		{ID: 1, SalonID: 1, Name: "Ana", Active: true},
		{ID: 2, SalonID: 1, Name: "Bea", Active: true},
	}

	repo.services = []models.Service{
		{ID: 1, SalonID: 1, Name: "Haircut", DurationMin: 60, Price: 25, Active: true},
		{
			ID: 2, SalonID: 1, Name: "Color & Highlights",
			DurationMin: 90, Price: 80, Active: true,
			RequiresDeposit: true, DepositAmount: 30,
			DepositMethod: models.DepositMethodTransfer,
		},
	}

	return repo
}

func bookInput(service, clock string, staffID *uint) BookAppointmentInput {
	return BookAppointmentInput{
		SalonID:     1,
		ServiceName: service,
		StaffID:     staffID,
		Date:        testDay,
		Time:        clock,
		Customer: domain.CustomerFields{
			FullName: "Carla Mendes",
			Phone:    "+5215511223344",
		},
	}
}

func TestBookAppointmentCreates(t *testing.T) {
	repo := salonFixture()
	uc := NewBookAppointment(repo, NopLocker{}, nil)

	ap, err := uc.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)

	assert.Equal(t, "Haircut", ap.ServiceName)
	assert.Equal(t, "10:00", ap.StartClock)
	assert.Equal(t, 60, ap.DurationMin)
	assert.Equal(t, domain.PaymentNotRequired, ap.PaymentStatus)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)

	require.Len(t, repo.appointments, 1)
	require.Len(t, repo.customers, 1)
	assert.Equal(t, repo.customers[0].ID, ap.CustomerID)
}

func TestBookAppointmentReusesCustomerByPhone(t *testing.T) {
	repo := salonFixture()
	uc := NewBookAppointment(repo, NopLocker{}, nil)

	first, err := uc.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)

	in := bookInput("Haircut", "14:00", uintPtr(1))
	in.Customer.FullName = "Carla M. Mendes" // same phone, newer name
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)
	require.Len(t, repo.customers, 1)
	assert.Equal(t, "Carla M. Mendes", repo.customers[0].FullName)
}

func TestBookAppointmentRejectsOverlap(t *testing.T) {
	repo := salonFixture()
	uc := NewBookAppointment(repo, NopLocker{}, nil)

	_, err := uc.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)

	// 10:15 with the same staff member overlaps 10:00-11:00
	_, err = uc.Execute(context.Background(), bookInput("Haircut", "10:15", uintPtr(1)))
	require.Error(t, err)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ReasonOverlap, conflict.Reason)

	// nothing extra persisted
	assert.Len(t, repo.appointments, 1)
}

func TestBookAppointmentTouchingSlotAllowed(t *testing.T) {
	repo := salonFixture()
	uc := NewBookAppointment(repo, NopLocker{}, nil)

	_, err := uc.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)

	// 11:00 starts exactly where the previous one ends
	_, err = uc.Execute(context.Background(), bookInput("Haircut", "11:00", uintPtr(1)))
	require.NoError(t, err)
	assert.Len(t, repo.appointments, 2)
}

func TestBookAppointmentOtherStaffSameSlot(t *testing.T) {
	repo := salonFixture()
	uc := NewBookAppointment(repo, NopLocker{}, nil)

	_, err := uc.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(2)))
	require.NoError(t, err)
}

func TestBookAppointmentWholeSalonBlock(t *testing.T) {
	repo := salonFixture()
	day, _ := time.Parse("2006-01-02", testDay)
	repo.occupations = []models.Occupation{{
		ID: 1, SalonID: 1, StaffID: nil,
		Date: day, StartClock: "10:00", DurationMin: 120,
		Reason: "staff training",
	}}

	uc := NewBookAppointment(repo, NopLocker{}, nil)

	_, err := uc.Execute(context.Background(), bookInput("Haircut", "10:30", uintPtr(2)))
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestBookAppointmentOutsideBusinessHours(t *testing.T) {
	repo := salonFixture()
	uc := NewBookAppointment(repo, NopLocker{}, nil)

	// ends 18:30, past closing
	_, err := uc.Execute(context.Background(), bookInput("Haircut", "17:30", uintPtr(1)))
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ReasonOutsideBusiness, conflict.Reason)
}

func TestBookAppointmentMinAdvance(t *testing.T) {
	repo := salonFixture()
	uc := NewBookAppointment(repo, NopLocker{}, nil)

	in := bookInput("Haircut", "10:00", uintPtr(1))
	in.Date = "2020-01-01" // long past
	in.EnforceMinAdvance = true

	_, err := uc.Execute(context.Background(), in)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ReasonTooSoon, conflict.Reason)
}

func TestBookAppointmentDepositPending(t *testing.T) {
	repo := salonFixture()
	uc := NewBookAppointment(repo, NopLocker{}, nil)

	ap, err := uc.Execute(context.Background(), bookInput("Color & Highlights", "10:00", uintPtr(1)))
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, ap.PaymentStatus)
	assert.Nil(t, ap.PaymentMethod)
}

func TestBookAppointmentDepositPaidUpfront(t *testing.T) {
	repo := salonFixture()
	uc := NewBookAppointment(repo, NopLocker{}, nil)

	in := bookInput("Color & Highlights", "10:00", uintPtr(1))
	in.DepositMarkedPaid = true

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, ap.PaymentStatus)
	require.NotNil(t, ap.PaymentMethod)
	assert.Equal(t, models.DepositMethodTransfer, *ap.PaymentMethod)
}

func TestBookAppointmentUnknownService(t *testing.T) {
	repo := salonFixture()
	uc := NewBookAppointment(repo, NopLocker{}, nil)

	_, err := uc.Execute(context.Background(), bookInput("haircut", "10:00", uintPtr(1)))
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestBookAppointmentStaffDurationOverride(t *testing.T) {
	repo := salonFixture()
	repo.overrides = []models.DurationOverride{
		{StaffID: 1, ServiceID: 1, DurationMin: 45},
	}
	uc := NewBookAppointment(repo, NopLocker{}, nil)

	ap, err := uc.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)
	assert.Equal(t, 45, ap.DurationMin)
}
