package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB

	// set on the transactional copy handed to WithTx callbacks; day
	// listings take a locking read only there.
	inTx bool
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) ListServices(
	ctx context.Context,
	salonID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Preload("SubServices", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("salon_id = ? AND active = true", salonID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) SaveService(
	ctx context.Context,
	svc *models.Service,
) error {

	if svc.ID == 0 {
		return r.db.WithContext(ctx).Create(svc).Error
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("service_id = ?", svc.ID).
			Delete(&models.SubService{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).
			Save(svc).Error
	})
}

// --------------------------------------------------
// Calendar
// --------------------------------------------------

func (r *BookingGormRepository) ListBusinessHours(
	ctx context.Context,
	salonID uint,
) ([]models.BusinessHours, error) {

	var hours []models.BusinessHours
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *BookingGormRepository) ListStaffHours(
	ctx context.Context,
	staffID uint,
) ([]models.StaffWorkingHours, error) {

	var hours []models.StaffWorkingHours
	if err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *BookingGormRepository) ListDurationOverrides(
	ctx context.Context,
	staffID uint,
) ([]models.DurationOverride, error) {

	var overrides []models.DurationOverride
	if err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *BookingGormRepository) GetStaff(
	ctx context.Context,
	salonID uint,
	staffID uint,
) (*models.StaffMember, error) {

	var staff models.StaffMember
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", staffID, salonID).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

// UpsertCustomerByPhone is idempotent on (salon, phone): the unique
// index backs an ON CONFLICT update, so concurrent upserts of the same
// phone resolve to one row, last writer wins.
func (r *BookingGormRepository) UpsertCustomerByPhone(
	ctx context.Context,
	salonID uint,
	fields domain.CustomerFields,
) (*models.Customer, error) {

	customer := models.Customer{
		SalonID:   salonID,
		FullName:  fields.FullName,
		Phone:     fields.Phone,
		Email:     fields.Email,
		Birthdate: fields.Birthdate,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "salon_id"}, {Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "email", "birthdate", "updated_at",
			}),
		}).
		Create(&customer).Error
	if err != nil {
		return nil, err
	}

	// ON CONFLICT ... DO UPDATE does not report the surviving id back
	// through gorm on every driver; read the row to get a stable id.
	var saved models.Customer
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, fields.Phone).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *BookingGormRepository) GetCustomer(
	ctx context.Context,
	salonID uint,
	customerID uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", customerID, salonID).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *BookingGormRepository) ListCustomerAppointments(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC, start_clock DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Conflict space
// --------------------------------------------------

func (r *BookingGormRepository) ListDayAppointments(
	ctx context.Context,
	salonID uint,
	day time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx)
	if r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var aps []models.Appointment
	if err := q.
		Where(
			"salon_id = ? AND date = ? AND status = ?",
			salonID, day, string(domain.StatusScheduled),
		).
		Order("start_clock ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListDayOccupations(
	ctx context.Context,
	salonID uint,
	day time.Time,
) ([]models.Occupation, error) {

	var ocs []models.Occupation
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND date = ?", salonID, day).
		Order("start_clock ASC").
		Find(&ocs).Error; err != nil {
		return nil, err
	}
	return ocs, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) CreateAppointments(
	ctx context.Context,
	aps []*models.Appointment,
) error {
	if len(aps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(aps).Error
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Occupation
// --------------------------------------------------

func (r *BookingGormRepository) CreateOccupation(
	ctx context.Context,
	oc *models.Occupation,
) error {
	return r.db.WithContext(ctx).Create(oc).Error
}

func (r *BookingGormRepository) DeleteOccupation(
	ctx context.Context,
	salonID uint,
	occupationID uint,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", occupationID, salonID).
		Delete(&models.Occupation{}).Error
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *BookingGormRepository) WithTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx, inTx: true})
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
