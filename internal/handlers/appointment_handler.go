package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LunaSuiteApps/salon-scheduler/internal/audit"
	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/httperr"
	"github.com/LunaSuiteApps/salon-scheduler/internal/middleware"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
	"github.com/LunaSuiteApps/salon-scheduler/internal/timezone"
	ucBooking "github.com/LunaSuiteApps/salon-scheduler/internal/usecase/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	book        *ucBooking.BookAppointment
	bookPack    *ucBooking.BookPack
	cancel      *ucBooking.CancelAppointment
	complete    *ucBooking.CompleteAppointment
	markDeposit *ucBooking.MarkDepositPaid
	checkAvail  *ucBooking.CheckAvailability

	audit *audit.Dispatcher
}

func NewAppointmentHandler(
	db *gorm.DB,
	book *ucBooking.BookAppointment,
	bookPack *ucBooking.BookPack,
	cancel *ucBooking.CancelAppointment,
	complete *ucBooking.CompleteAppointment,
	markDeposit *ucBooking.MarkDepositPaid,
	checkAvail *ucBooking.CheckAvailability,
	auditDispatcher *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:          db,
		book:        book,
		bookPack:    bookPack,
		cancel:      cancel,
		complete:    complete,
		markDeposit: markDeposit,
		checkAvail:  checkAvail,
		audit:       auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`

	ServiceName string `json:"service_name" binding:"required"`
	StaffID     *uint  `json:"staff_id"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm

	DepositMarkedPaid bool     `json:"deposit_marked_paid"`
	Notes             string   `json:"notes"`
	InspirationKeys   []string `json:"inspiration_keys"`

	// Force skips the minimum-advance rule so the desk can record
	// walk-ins.
	Force bool `json:"force"`
}

func (r *CreateAppointmentRequest) customerFields() (domain.CustomerFields, bool) {
	phone := validators.NormalizePhone(r.CustomerPhone)
	if !validators.IsPhoneValid(phone) {
		return domain.CustomerFields{}, false
	}
	return domain.CustomerFields{
		FullName: r.CustomerName,
		Phone:    phone,
		Email:    r.CustomerEmail,
	}, true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	customer, ok := req.customerFields()
	if !ok {
		httperr.BadRequest(c, "invalid_phone", "Customer phone is not a valid number.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		SalonID:           salonID,
		ServiceName:       req.ServiceName,
		StaffID:           req.StaffID,
		Date:              req.Date,
		Time:              req.Time,
		Customer:          customer,
		DepositMarkedPaid: req.DepositMarkedPaid,
		Notes:             req.Notes,
		InspirationKeys:   req.InspirationKeys,
		EnforceMinAdvance: !req.Force,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: gin.H{"service": ap.ServiceName, "date": req.Date, "time": req.Time},
	})

	c.JSON(http.StatusCreated, ap)
}

// CreatePack books every step of a pack in one shot. Any step that
// cannot be scheduled rejects the whole request.
func (h *AppointmentHandler) CreatePack(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	customer, ok := req.customerFields()
	if !ok {
		httperr.BadRequest(c, "invalid_phone", "Customer phone is not a valid number.")
		return
	}

	result, err := h.bookPack.Execute(c.Request.Context(), ucBooking.BookPackInput{
		SalonID:           salonID,
		ServiceName:       req.ServiceName,
		Date:              req.Date,
		Time:              req.Time,
		Customer:          customer,
		DepositMarkedPaid: req.DepositMarkedPaid,
		Notes:             req.Notes,
		InspirationKeys:   req.InspirationKeys,
		EnforceMinAdvance: !req.Force,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "pack_booked",
		Entity:   "appointment",
		Metadata: gin.H{"pack_id": result.PackID, "service": req.ServiceName, "steps": len(result.Appointments)},
	})

	c.JSON(http.StatusCreated, result)
}

// ======================================================
// LISTING
// ======================================================

type appointmentView struct {
	models.Appointment
	DerivedStatus string `json:"derived_status"`
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	salon, ok := h.loadSalon(c, salonID)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query param 'date' is required.")
		return
	}

	day, err := parseDayInSalon(salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	var appointments []models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Staff").
		Where("salon_id = ? AND date = ?", salonID, day).
		Order("start_clock ASC").
		Find(&appointments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	c.JSON(http.StatusOK, h.withDerivedStatus(salon, appointments))
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	salon, ok := h.loadSalon(c, salonID)
	if !ok {
		return
	}

	monthStr := c.Query("month")
	if monthStr == "" {
		httperr.BadRequest(c, "missing_month", "Query param 'month' is required.")
		return
	}

	first, err := parseMonthInSalon(salon, monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Month must be YYYY-MM.")
		return
	}
	next := first.AddDate(0, 1, 0)

	var appointments []models.Appointment
	if err := h.db.
		Preload("Customer").
		Preload("Staff").
		Where("salon_id = ? AND date >= ? AND date < ?", salonID, first, next).
		Order("date ASC, start_clock ASC").
		Find(&appointments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	c.JSON(http.StatusOK, h.withDerivedStatus(salon, appointments))
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), salonID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.WriteDomain(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), salonID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.WriteDomain(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) MarkDepositPaid(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.markDeposit.Execute(c.Request.Context(), salonID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.WriteDomain(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "deposit_marked_paid",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) CheckAvailability(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	serviceName := c.Query("service")
	dateStr := c.Query("date")
	timeStr := c.Query("time")
	if serviceName == "" || dateStr == "" || timeStr == "" {
		httperr.BadRequest(c, "missing_params", "Query params 'service', 'date' and 'time' are required.")
		return
	}

	var staffID *uint
	if v := c.Query("staff_id"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
			return
		}
		id := uint(parsed)
		staffID = &id
	}

	result, err := h.checkAvail.Execute(c.Request.Context(), ucBooking.CheckAvailabilityInput{
		SalonID:     salonID,
		ServiceName: serviceName,
		Date:        dateStr,
		Time:        timeStr,
		StaffID:     staffID,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) loadSalon(c *gin.Context, salonID uint) (*models.Salon, bool) {
	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Could not load salon.")
		return nil, false
	}
	return &salon, true
}

func (h *AppointmentHandler) withDerivedStatus(salon *models.Salon, appointments []models.Appointment) []appointmentView {
	now := timezone.NowIn(salon.Timezone)

	views := make([]appointmentView, 0, len(appointments))
	for _, ap := range appointments {
		views = append(views, appointmentView{
			Appointment:   ap,
			DerivedStatus: string(domain.DeriveStatus(&ap, now)),
		})
	}
	return views
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return 0, false
	}
	return uint(id), true
}
