package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LunaSuiteApps/salon-scheduler/internal/audit"
	"github.com/LunaSuiteApps/salon-scheduler/internal/httperr"
	"github.com/LunaSuiteApps/salon-scheduler/internal/httpresp"
	"github.com/LunaSuiteApps/salon-scheduler/internal/middleware"
	"github.com/LunaSuiteApps/salon-scheduler/internal/models"
	ucBooking "github.com/LunaSuiteApps/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db          *gorm.DB
	saveService *ucBooking.SaveService
	audit       *audit.Dispatcher
}

func NewServiceHandler(
	db *gorm.DB,
	saveService *ucBooking.SaveService,
	auditDispatcher *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{
		db:          db,
		saveService: saveService,
		audit:       auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SubServiceRequest struct {
	Name                string   `json:"name" binding:"required"`
	DurationMin         int      `json:"duration_min" binding:"required,min=1"`
	StaffID             uint     `json:"staff_id" binding:"required"`
	PartialPrice        *float64 `json:"partial_price"`
	StartsAfterPrevious bool     `json:"starts_after_previous"`
}

type SaveServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	IsPack          bool    `json:"is_pack"`
	RequiresDeposit bool    `json:"requires_deposit"`
	DepositAmount   float64 `json:"deposit_amount"`
	DepositMethod   string  `json:"deposit_method"`

	// Weekday numbers, 0 = Sunday. Empty means every business day.
	AvailableDays []int `json:"available_days"`

	Active *bool `json:"active"`

	SubServices []SubServiceRequest `json:"sub_services"`
}

func (r *SaveServiceRequest) apply(svc *models.Service) {
	svc.Name = r.Name
	svc.Description = r.Description
	svc.DurationMin = r.DurationMin
	svc.Price = r.Price
	svc.IsPack = r.IsPack
	svc.RequiresDeposit = r.RequiresDeposit
	svc.DepositAmount = r.DepositAmount

	svc.DepositMethod = r.DepositMethod
	if svc.DepositMethod == "" {
		svc.DepositMethod = models.DepositMethodNotApplicable
	}

	days := make([]time.Weekday, 0, len(r.AvailableDays))
	for _, d := range r.AvailableDays {
		days = append(days, time.Weekday(d))
	}
	svc.AvailableDays = models.NewWeekdaySet(days...)

	svc.Active = true
	if r.Active != nil {
		svc.Active = *r.Active
	}

	svc.SubServices = make([]models.SubService, 0, len(r.SubServices))
	for i, sub := range r.SubServices {
		svc.SubServices = append(svc.SubServices, models.SubService{
			Position:            i,
			Name:                sub.Name,
			DurationMin:         sub.DurationMin,
			StaffID:             sub.StaffID,
			PartialPrice:        sub.PartialPrice,
			StartsAfterPrevious: sub.StartsAfterPrevious,
		})
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	q := h.db.
		Preload("SubServices", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("salon_id = ?", salonID)

	if c.Query("active") == "true" {
		q = q.Where("active = true")
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req SaveServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	h.db.Model(&models.Service{}).
		Where("salon_id = ? AND name = ?", salonID, req.Name).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "service_name_taken", "A service with this name already exists.")
		return
	}

	svc := models.Service{SalonID: salonID}
	req.apply(&svc)

	if err := h.saveService.Execute(c.Request.Context(), &svc); err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: gin.H{"name": svc.Name, "is_pack": svc.IsPack},
	})

	c.JSON(http.StatusCreated, svc)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServiceHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var svc models.Service
	if err := h.db.
		Preload("SubServices").
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&svc).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	var req SaveServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	req.apply(&svc)

	if err := h.saveService.Execute(c.Request.Context(), &svc); err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: gin.H{"name": svc.Name},
	})

	c.JSON(http.StatusOK, svc)
}
