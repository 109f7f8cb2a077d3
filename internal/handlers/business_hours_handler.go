package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/LunaSuiteApps/salon-scheduler/internal/domain/booking"
	"github.com/LunaSuiteApps/salon-scheduler/internal/httperr"
	"github.com/LunaSuiteApps/salon-scheduler/internal/middleware"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
)

type BusinessHoursHandler struct {
	db *gorm.DB
}

func NewBusinessHoursHandler(db *gorm.DB) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db}
}

type BusinessDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type BusinessHoursUpdateRequest struct {
	Days []BusinessDayConfig `json:"days" binding:"required"`
}

func (h *BusinessHoursHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var hours []models.BusinessHours
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_business_hours", "Could not load business hours.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update replaces the whole weekly schedule. Enabled days must carry a
// valid, non-inverted window.
func (h *BusinessHoursHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req BusinessHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	toCreate := make([]models.BusinessHours, 0, len(req.Days))
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

		toCreate = append(toCreate, models.BusinessHours{
			SalonID:   salonID,
			Weekday:   d.Weekday,
			Enabled:   d.Enabled,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salon_id = ?", salonID).
			Delete(&models.BusinessHours{}).Error; err != nil {
			return err
		}
		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_business_hours", "Could not save business hours.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
