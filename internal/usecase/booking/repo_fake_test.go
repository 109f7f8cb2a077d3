package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

// fakeRepo is an in-memory domain.Repository. WithTx runs the callback
// against a copy and only publishes it on success, so pack atomicity is
// observable from tests.
type fakeRepo struct {
	salons       []models.Salon
	services     []models.Service
	hours        []models.BusinessHours
	staffHours   []models.StaffWorkingHours
	overrides    []models.DurationOverride
	staff        []models.StaffMember
	customers    []models.Customer
	appointments []models.Appointment
	occupations  []models.Occupation

	nextCustomerID    uint
	nextAppointmentID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextCustomerID: 1, nextAppointmentID: 1}
}

func (f *fakeRepo) GetSalonByID(ctx context.Context, id uint) (*models.Salon, error) {
	for i := range f.salons {
		if f.salons[i].ID == id {
			s := f.salons[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetSalonBySlug(ctx context.Context, slug string) (*models.Salon, error) {
	for i := range f.salons {
		if f.salons[i].Slug == slug {
			s := f.salons[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListServices(ctx context.Context, salonID uint) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range f.services {
		if svc.SalonID == salonID {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeRepo) SaveService(ctx context.Context, svc *models.Service) error {
	for i := range f.services {
		if f.services[i].ID == svc.ID && svc.ID != 0 {
			f.services[i] = *svc
			return nil
		}
	}
	svc.ID = uint(len(f.services) + 1)
	f.services = append(f.services, *svc)
	return nil
}

func (f *fakeRepo) ListBusinessHours(ctx context.Context, salonID uint) ([]models.BusinessHours, error) {
	var out []models.BusinessHours
	for _, h := range f.hours {
		if h.SalonID == salonID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListStaffHours(ctx context.Context, staffID uint) ([]models.StaffWorkingHours, error) {
	var out []models.StaffWorkingHours
	for _, h := range f.staffHours {
		if h.StaffID == staffID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListDurationOverrides(ctx context.Context, staffID uint) ([]models.DurationOverride, error) {
	var out []models.DurationOverride
	for _, ov := range f.overrides {
		if ov.StaffID == staffID {
			out = append(out, ov)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetStaff(ctx context.Context, salonID, staffID uint) (*models.StaffMember, error) {
	for i := range f.staff {
		if f.staff[i].ID == staffID && f.staff[i].SalonID == salonID {
			s := f.staff[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpsertCustomerByPhone(ctx context.Context, salonID uint, fields domain.CustomerFields) (*models.Customer, error) {
	for i := range f.customers {
		if f.customers[i].SalonID == salonID && f.customers[i].Phone == fields.Phone {
			f.customers[i].FullName = fields.FullName
			f.customers[i].Email = fields.Email
			f.customers[i].Birthdate = fields.Birthdate
			c := f.customers[i]
			return &c, nil
		}
	}

	c := models.Customer{
		ID:        f.nextCustomerID,
		SalonID:   salonID,
		FullName:  fields.FullName,
		Phone:     fields.Phone,
		Email:     fields.Email,
		Birthdate: fields.Birthdate,
	}
	f.nextCustomerID++
	f.customers = append(f.customers, c)
	return &c, nil
}

func (f *fakeRepo) GetCustomer(ctx context.Context, salonID, customerID uint) (*models.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == customerID && f.customers[i].SalonID == salonID {
			c := f.customers[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListCustomerAppointments(ctx context.Context, customerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CustomerID == customerID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListDayAppointments(ctx context.Context, salonID uint, day time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID == salonID && ap.Date.Equal(day) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListDayOccupations(ctx context.Context, salonID uint, day time.Time) ([]models.Occupation, error) {
	var out []models.Occupation
	for _, oc := range f.occupations {
		if oc.SalonID == salonID && oc.Date.Equal(day) {
			out = append(out, oc)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = f.nextAppointmentID
	f.nextAppointmentID++
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) CreateAppointments(ctx context.Context, aps []*models.Appointment) error {
	for _, ap := range aps {
		if err := f.CreateAppointment(ctx, ap); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, salonID, appointmentID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == appointmentID && f.appointments[i].SalonID == salonID {
			ap := f.appointments[i]
			return &ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreateOccupation(ctx context.Context, oc *models.Occupation) error {
	oc.ID = uint(len(f.occupations) + 1)
	f.occupations = append(f.occupations, *oc)
	return nil
}

func (f *fakeRepo) DeleteOccupation(ctx context.Context, salonID, occupationID uint) error {
	for i := range f.occupations {
		if f.occupations[i].ID == occupationID && f.occupations[i].SalonID == salonID {
			f.occupations = append(f.occupations[:i], f.occupations[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) WithTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	clone := *f
	clone.customers = append([]models.Customer(nil), f.customers...)
	clone.appointments = append([]models.Appointment(nil), f.appointments...)
	clone.occupations = append([]models.Occupation(nil), f.occupations...)
	clone.services = append([]models.Service(nil), f.services...)

	if err := fn(&clone); err != nil {
		return err
	}

	*f = clone
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)
