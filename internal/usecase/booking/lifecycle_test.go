package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

func TestCancelAppointment(t *testing.T) {
	repo := salonFixture()
	bookUC := NewBookAppointment(repo, NopLocker{}, nil)
	cancelUC := NewCancelAppointment(repo)

	ap, err := bookUC.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)

	cancelled, err := cancelUC.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// terminal: cannot cancel twice
	_, err = cancelUC.Execute(context.Background(), 1, ap.ID)
	var state *domain.InvalidStateError
	require.ErrorAs(t, err, &state)
}

func TestCancelledSlotBecomesBookable(t *testing.T) {
	repo := salonFixture()
	bookUC := NewBookAppointment(repo, NopLocker{}, nil)
	cancelUC := NewCancelAppointment(repo)

	ap, err := bookUC.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)

	// the freed window no longer blocks
	_, err = bookUC.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)
}

func TestCancelKeepsPaidDeposit(t *testing.T) {
	repo := salonFixture()
	bookUC := NewBookAppointment(repo, NopLocker{}, nil)
	cancelUC := NewCancelAppointment(repo)

	in := bookInput("Color & Highlights", "10:00", uintPtr(1))
	in.DepositMarkedPaid = true
	ap, err := bookUC.Execute(context.Background(), in)
	require.NoError(t, err)

	cancelled, err := cancelUC.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, cancelled.PaymentStatus)
}

func TestCompleteAppointment(t *testing.T) {
	repo := salonFixture()
	bookUC := NewBookAppointment(repo, NopLocker{}, nil)
	completeUC := NewCompleteAppointment(repo)

	ap, err := bookUC.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)

	done, err := completeUC.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), done.Status)
	require.NotNil(t, done.CompletedAt)
}

func TestMarkDepositPaid(t *testing.T) {
	repo := salonFixture()
	bookUC := NewBookAppointment(repo, NopLocker{}, nil)
	depositUC := NewMarkDepositPaid(repo)

	ap, err := bookUC.Execute(context.Background(), bookInput("Color & Highlights", "10:00", uintPtr(1)))
	require.NoError(t, err)
	require.Equal(t, domain.PaymentPending, ap.PaymentStatus)

	paid, err := depositUC.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, paid.PaymentStatus)
	require.NotNil(t, paid.PaymentMethod)
	assert.Equal(t, models.DepositMethodTransfer, *paid.PaymentMethod)

	// paid is terminal
	_, err = depositUC.Execute(context.Background(), 1, ap.ID)
	assert.Error(t, err)
}

func TestMarkDepositPaidRejectsNotRequired(t *testing.T) {
	repo := salonFixture()
	bookUC := NewBookAppointment(repo, NopLocker{}, nil)
	depositUC := NewMarkDepositPaid(repo)

	ap, err := bookUC.Execute(context.Background(), bookInput("Haircut", "10:00", uintPtr(1)))
	require.NoError(t, err)

	_, err = depositUC.Execute(context.Background(), 1, ap.ID)
	assert.Error(t, err)
}

func TestGetCustomerSummary(t *testing.T) {
	repo := salonFixture()
	bookUC := NewBookAppointment(repo, NopLocker{}, nil)
	summaryUC := NewGetCustomerSummary(repo)

	clocks := []string{"09:00", "10:00", "11:00", "12:00", "13:00"}
	var customerID uint
	for _, clock := range clocks {
		ap, err := bookUC.Execute(context.Background(), bookInput("Haircut", clock, uintPtr(1)))
		require.NoError(t, err)
		customerID = ap.CustomerID
	}

	summary, err := summaryUC.Execute(context.Background(), 1, customerID, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalReservations)
	assert.Equal(t, domain.TierFrequent, summary.LoyaltyTier)
	assert.Len(t, summary.History, 5)

	// latest first
	assert.Equal(t, "13:00", summary.History[0].StartClock)
}

func TestGetCustomerSummaryUnknownCustomer(t *testing.T) {
	repo := salonFixture()
	summaryUC := NewGetCustomerSummary(repo)

	_, err := summaryUC.Execute(context.Background(), 1, 999, 0)
	assert.Error(t, err)
}

func TestSaveServiceValidatesDeposit(t *testing.T) {
	repo := salonFixture()
	uc := NewSaveService(repo)

	svc := &models.Service{
		SalonID:         1,
		Name:            "Balayage",
		DurationMin:     120,
		Price:           40,
		RequiresDeposit: true,
		DepositAmount:   50, // above the price
		DepositMethod:   models.DepositMethodOnline,
	}

	err := uc.Execute(context.Background(), svc)
	var invalid *domain.InvalidDepositError
	require.ErrorAs(t, err, &invalid)

	svc.DepositAmount = 20
	require.NoError(t, uc.Execute(context.Background(), svc))
}

func TestSaveServiceRejectsEmptyPack(t *testing.T) {
	repo := salonFixture()
	uc := NewSaveService(repo)

	svc := &models.Service{SalonID: 1, Name: "Hollow Pack", IsPack: true}
	err := uc.Execute(context.Background(), svc)
	assert.ErrorIs(t, err, domain.ErrEmptyPack)
}

func TestSaveServiceNormalizesSubServices(t *testing.T) {
	repo := salonFixture()
	uc := NewSaveService(repo)

	svc := &models.Service{
		SalonID: 1, Name: "Duo", IsPack: true, Price: 100,
		SubServices: []models.SubService{
			{Name: "First", DurationMin: 30, StaffID: 1, StartsAfterPrevious: true},
			{Name: "Second", DurationMin: 30, StaffID: 2, StartsAfterPrevious: true},
		},
	}

	require.NoError(t, uc.Execute(context.Background(), svc))
	assert.Equal(t, 0, svc.SubServices[0].Position)
	assert.Equal(t, 1, svc.SubServices[1].Position)
	// the first step has no predecessor
	assert.False(t, svc.SubServices[0].StartsAfterPrevious)
	assert.True(t, svc.SubServices[1].StartsAfterPrevious)
}
