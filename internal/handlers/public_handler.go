package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/httperr"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
	ucBooking "github.com/LunaSuiteApps/salon-scheduler/internal/usecase/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler is the unauthenticated booking surface, keyed by the
// salon's slug. It reuses the exact same use cases as the private API;
// the only public-specific rule is that the minimum advance is always
// enforced.
type PublicHandler struct {
	db *gorm.DB

	book       *ucBooking.BookAppointment
	bookPack   *ucBooking.BookPack
	checkAvail *ucBooking.CheckAvailability
	freeSlots  *ucBooking.FreeSlots
}

func NewPublicHandler(
	db *gorm.DB,
	book *ucBooking.BookAppointment,
	bookPack *ucBooking.BookPack,
	checkAvail *ucBooking.CheckAvailability,
	freeSlots *ucBooking.FreeSlots,
) *PublicHandler {
	return &PublicHandler{
		db:         db,
		book:       book,
		bookPack:   bookPack,
		checkAvail: checkAvail,
		freeSlots:  freeSlots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicBookRequest struct {
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
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.loadSalonBySlug(c)
	if !ok {
		return
	}

	q := h.db.
		Preload("SubServices", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("salon_id = ? AND active = true", salon.ID)

	if query := strings.TrimSpace(strings.ToLower(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon": gin.H{
			"id":      salon.ID,
			"name":    salon.Name,
			"slug":    salon.Slug,
			"phone":   salon.Phone,
			"address": salon.Address,
		},
		"services": services,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) FreeSlots(c *gin.Context) {
	salon, ok := h.loadSalonBySlug(c)
	if !ok {
		return
	}

	serviceName := c.Query("service")
	dateStr := c.Query("date")
	if serviceName == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Query params 'service' and 'date' are required.")
		return
	}

	staffID, ok := h.optionalStaffID(c)
	if !ok {
		return
	}

	slots, err := h.freeSlots.Execute(c.Request.Context(), ucBooking.FreeSlotsInput{
		SalonID:     salon.ID,
		ServiceName: serviceName,
		StaffID:     staffID,
		Date:        dateStr,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

func (h *PublicHandler) CheckAvailability(c *gin.Context) {
	salon, ok := h.loadSalonBySlug(c)
	if !ok {
		return
	}

	serviceName := c.Query("service")
	dateStr := c.Query("date")
	timeStr := c.Query("time")
	if serviceName == "" || dateStr == "" || timeStr == "" {
		httperr.BadRequest(c, "missing_params", "Query params 'service', 'date' and 'time' are required.")
		return
	}

	staffID, ok := h.optionalStaffID(c)
	if !ok {
		return
	}

	result, err := h.checkAvail.Execute(c.Request.Context(), ucBooking.CheckAvailabilityInput{
		SalonID:     salon.ID,
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
// BOOKING
// ======================================================

func (h *PublicHandler) Book(c *gin.Context) {
	salon, ok := h.loadSalonBySlug(c)
	if !ok {
		return
	}

	req, customer, ok := h.bindBookRequest(c)
	if !ok {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		SalonID:           salon.ID,
		ServiceName:       req.ServiceName,
		StaffID:           req.StaffID,
		Date:              req.Date,
		Time:              req.Time,
		Customer:          customer,
		DepositMarkedPaid: req.DepositMarkedPaid,
		Notes:             req.Notes,
		InspirationKeys:   req.InspirationKeys,
		EnforceMinAdvance: true,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment": ap,
		"deposit": gin.H{
			"status": ap.PaymentStatus,
			"method": ap.PaymentMethod,
		},
	})
}

func (h *PublicHandler) BookPack(c *gin.Context) {
	salon, ok := h.loadSalonBySlug(c)
	if !ok {
		return
	}

	req, customer, ok := h.bindBookRequest(c)
	if !ok {
		return
	}

	result, err := h.bookPack.Execute(c.Request.Context(), ucBooking.BookPackInput{
		SalonID:           salon.ID,
		ServiceName:       req.ServiceName,
		Date:              req.Date,
		Time:              req.Time,
		Customer:          customer,
		DepositMarkedPaid: req.DepositMarkedPaid,
		Notes:             req.Notes,
		InspirationKeys:   req.InspirationKeys,
		EnforceMinAdvance: true,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ======================================================
// HELPERS
// ======================================================

func (h *PublicHandler) loadSalonBySlug(c *gin.Context) (*models.Salon, bool) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return nil, false
	}
	return &salon, true
}

func (h *PublicHandler) optionalStaffID(c *gin.Context) (*uint, bool) {
	v := c.Query("staff_id")
	if v == "" {
		return nil, true
	}

	parsed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return nil, false
	}
	id := uint(parsed)
	return &id, true
}

func (h *PublicHandler) bindBookRequest(c *gin.Context) (*PublicBookRequest, domain.CustomerFields, bool) {
	var req PublicBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return nil, domain.CustomerFields{}, false
	}

	phone := validators.NormalizePhone(req.CustomerPhone)
	if !validators.IsPhoneValid(phone) {
		httperr.BadRequest(c, "invalid_phone", "Customer phone is not a valid number.")
		return nil, domain.CustomerFields{}, false
	}

	return &req, domain.CustomerFields{
		FullName: req.CustomerName,
		Phone:    phone,
		Email:    req.CustomerEmail,
	}, true
}
