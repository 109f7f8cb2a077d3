package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/httperr"
	"github.com/LunaSuiteApps/salon-scheduler/internal/httpresp"
	"github.com/LunaSuiteApps/salon-scheduler/internal/middleware"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type SaveStaffRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone"`
	Active *bool  `json:"active"`
}

type StaffDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type StaffHoursUpdateRequest struct {
	Days []StaffDayConfig `json:"days" binding:"required"`
}

type DurationOverrideConfig struct {
	ServiceID   uint `json:"service_id" binding:"required"`
	DurationMin int  `json:"duration_min" binding:"required,min=1"`
}

type OverridesUpdateRequest struct {
	Overrides []DurationOverrideConfig `json:"overrides" binding:"required"`
}

// ======================================================
// STAFF CRUD
// ======================================================

func (h *StaffHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var staff []models.StaffMember
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_list_staff", "Could not list staff.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req SaveStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	member := models.StaffMember{
		SalonID: salonID,
		Name:    req.Name,
		Phone:   req.Phone,
		Active:  true,
	}
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := h.db.Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Could not create staff member.")
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *StaffHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	member, ok := h.loadStaff(c, salonID)
	if !ok {
		return
	}

	var req SaveStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	member.Name = req.Name
	member.Phone = req.Phone
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := h.db.Save(member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Could not update staff member.")
		return
	}

	c.JSON(http.StatusOK, member)
}

// ======================================================
// WORKING HOURS
// ======================================================

func (h *StaffHandler) GetHours(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	member, ok := h.loadStaff(c, salonID)
	if !ok {
		return
	}

	var hours []models.StaffWorkingHours
	if err := h.db.
		Where("staff_id = ?", member.ID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Could not load working hours.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *StaffHandler) UpdateHours(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	member, ok := h.loadStaff(c, salonID)
	if !ok {
		return
	}

	var req StaffHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	toCreate := make([]models.StaffWorkingHours, 0, len(req.Days))
	for _, d := range req.Days {
		if d.Enabled {
			start, err := domain.ParseClock(d.StartTime)
			if err != nil {
				httperr.BadRequest(c, "invalid_time", "Start time must be HH:MM.")
				return
			}
			end, err := domain.ParseClock(d.EndTime)
			if err != nil {
				httperr.BadRequest(c, "invalid_time", "End time must be HH:MM.")
				return
			}
			if start >= end {
				httperr.BadRequest(c, "inverted_window", "Start time must be before end time.")
				return
			}
		}

		toCreate = append(toCreate, models.StaffWorkingHours{
			StaffID:   member.ID,
			Weekday:   d.Weekday,
			Enabled:   d.Enabled,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", member.ID).
			Delete(&models.StaffWorkingHours{}).Error; err != nil {
			return err
		}
		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Could not save working hours.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// DURATION OVERRIDES
// ======================================================

func (h *StaffHandler) GetOverrides(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	member, ok := h.loadStaff(c, salonID)
	if !ok {
		return
	}

	var overrides []models.DurationOverride
	if err := h.db.
		Where("staff_id = ?", member.ID).
		Order("service_id ASC").
		Find(&overrides).Error; err != nil {

		httperr.Internal(c, "failed_to_get_overrides", "Could not load duration overrides.")
		return
	}

	c.JSON(http.StatusOK, overrides)
}

// UpdateOverrides replaces the staff member's full override set. Every
// referenced service must belong to the same salon.
func (h *StaffHandler) UpdateOverrides(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	member, ok := h.loadStaff(c, salonID)
	if !ok {
		return
	}

	var req OverridesUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	for _, ov := range req.Overrides {
		var count int64
		h.db.Model(&models.Service{}).
			Where("id = ? AND salon_id = ?", ov.ServiceID, salonID).
			Count(&count)
		if count == 0 {
			httperr.BadRequest(c, "service_not_found", "Override references an unknown service.")
			return
		}
	}

	toCreate := make([]models.DurationOverride, 0, len(req.Overrides))
	for _, ov := range req.Overrides {
		toCreate = append(toCreate, models.DurationOverride{
			StaffID:     member.ID,
			ServiceID:   ov.ServiceID,
			DurationMin: ov.DurationMin,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", member.ID).
			Delete(&models.DurationOverride{}).Error; err != nil {
			return err
		}
		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_overrides", "Could not save duration overrides.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// HELPERS
// ======================================================

func (h *StaffHandler) loadStaff(c *gin.Context, salonID uint) (*models.StaffMember, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid staff id.")
		return nil, false
	}

	var member models.StaffMember
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&member).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "staff_not_found", "Staff member not found.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_staff", "Could not load staff member.")
		return nil, false
	}

	return &member, true
}
