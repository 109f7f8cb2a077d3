package booking

import (
	"context"
	"time"

	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

// CustomerFields is everything the booking flow knows about a customer.
// Phone is the identity key; the rest updates in place on upsert.
type CustomerFields struct {
	FullName  string
	Phone     string
	Email     string
	Birthdate *time.Time
}

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Services --------
	ListServices(
		ctx context.Context,
		salonID uint,
	) ([]models.Service, error)

	SaveService(
		ctx context.Context,
		svc *models.Service,
	) error

	// -------- Calendar --------
	ListBusinessHours(
		ctx context.Context,
		salonID uint,
	) ([]models.BusinessHours, error)

	ListStaffHours(
		ctx context.Context,
		staffID uint,
	) ([]models.StaffWorkingHours, error)

	ListDurationOverrides(
		ctx context.Context,
		staffID uint,
	) ([]models.DurationOverride, error)

	GetStaff(
		ctx context.Context,
		salonID uint,
		staffID uint,
	) (*models.StaffMember, error)

	// -------- Customer --------
	UpsertCustomerByPhone(
		ctx context.Context,
		salonID uint,
		fields CustomerFields,
	) (*models.Customer, error)

	GetCustomer(
		ctx context.Context,
		salonID uint,
		customerID uint,
	) (*models.Customer, error)

	ListCustomerAppointments(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	// -------- Conflict space --------
	ListDayAppointments(
		ctx context.Context,
		salonID uint,
		day time.Time,
	) ([]models.Appointment, error)

	ListDayOccupations(
		ctx context.Context,
		salonID uint,
		day time.Time,
	) ([]models.Occupation, error)

	// -------- Appointment (create / state change) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CreateAppointments(
		ctx context.Context,
		aps []*models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Occupation --------
	CreateOccupation(
		ctx context.Context,
		oc *models.Occupation,
	) error

	DeleteOccupation(
		ctx context.Context,
		salonID uint,
		occupationID uint,
	) error

	// -------- Transactions --------
	// WithTx runs fn against a transactional view of the repository.
	// The conflict check plus the appointment insert must share one
	// transaction; ListDayAppointments takes a locking read inside it.
	WithTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
