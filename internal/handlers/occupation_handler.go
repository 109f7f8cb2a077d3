package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LunaSuiteApps/salon-scheduler/internal/audit"
	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/httperr"
	"github.com/LunaSuiteApps/salon-scheduler/internal/httpresp"
	"github.com/LunaSuiteApps/salon-scheduler/internal/middleware"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

// OccupationHandler manages manual calendar blocks: breaks, meetings,
// whole-salon blackouts. Blocks share the conflict space with
// appointments but have no customer.
type OccupationHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewOccupationHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *OccupationHandler {
	return &OccupationHandler{db: db, audit: auditDispatcher}
}

type CreateOccupationRequest struct {
	// Nil staff blocks the whole salon.
	StaffID *uint `json:"staff_id"`

	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	DurationMin int    `json:"duration_min" binding:"required,min=1"`

	Reason string `json:"reason"`
}

func (h *OccupationHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateOccupationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Could not load salon.")
		return
	}

	day, err := parseDayInSalon(&salon, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	startMin, err := domain.ParseClock(req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")
		return
	}

	if req.StaffID != nil {
		var count int64
		h.db.Model(&models.StaffMember{}).
			Where("id = ? AND salon_id = ?", *req.StaffID, salonID).
			Count(&count)
		if count == 0 {
			httperr.NotFound(c, "staff_not_found", "Staff member not found.")
			return
		}
	}

	oc := models.Occupation{
		SalonID:     salonID,
		StaffID:     req.StaffID,
		Date:        day,
		StartClock:  domain.FormatClock(startMin),
		DurationMin: req.DurationMin,
		Reason:      req.Reason,
	}

	if err := h.db.Create(&oc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_occupation", "Could not create block.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "occupation_created",
		Entity:   "occupation",
		EntityID: &oc.ID,
		Metadata: gin.H{"date": req.Date, "time": req.Time, "reason": req.Reason},
	})

	c.JSON(http.StatusCreated, oc)
}

func (h *OccupationHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Could not load salon.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query param 'date' is required.")
		return
	}

	day, err := parseDayInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	var occupations []models.Occupation
	if err := h.db.
		Preload("Staff").
		Where("salon_id = ? AND date = ?", salonID, day).
		Order("start_clock ASC").
		Find(&occupations).Error; err != nil {

		httperr.Internal(c, "failed_to_list_occupations", "Could not list blocks.")
		return
	}

	httpresp.List(c, occupations)
}

func (h *OccupationHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid block id.")
		return
	}

	result := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.Occupation{})
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_occupation", "Could not delete block.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "occupation_not_found", "Block not found.")
		return
	}

	ocID := uint(id)
	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "occupation_deleted",
		Entity:   "occupation",
		EntityID: &ocID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
